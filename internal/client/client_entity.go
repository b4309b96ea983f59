package client

import "time"

// Client adalah perusahaan pengguna jasa. ID dipasok user dan immutable
// setelah dibuat.
type Client struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
