package storage

import "context"

// Store adalah batas kolaborator Blob Store: unggah-by-path dan
// public-URL-by-path. Implementasi konkritnya tidak dipedulikan pemanggil.
type Store interface {
	Upload(ctx context.Context, bucket, path string, data []byte, upsert bool) error
	PublicURL(bucket, path string) string
}
