package genai

import "context"

// ChatLine adalah satu baris riwayat percakapan yang dikirim ke generator
type ChatLine struct {
	Sender string
	Text   string
}

// ReplyGenerator menghasilkan balasan singkat atas nama karyawan dalam
// percakapan dua arah PIC-karyawan. Riwayat yang diberikan pemanggil sudah
// dipotong ke beberapa pesan terakhir.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, history []ChatLine, employeeName, picName string) (string, error)
}
