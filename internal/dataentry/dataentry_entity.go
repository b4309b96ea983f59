package dataentry

import "time"

const (
	StatusBaru    = "Baru"
	StatusProses  = "Proses"
	StatusPending = "Pending"
	StatusSelesai = "Selesai"
)

// DataEntry adalah tiket laporan/diskusi. Status digerakkan dari luar
// (bukan state machine formal); tiket tidak pernah dihapus.
type DataEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Judul     string    `json:"judul"`
	Deskripsi string    `json:"deskripsi"`
	UserID    string    `json:"userId" gorm:"index"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusBaru, StatusProses, StatusPending, StatusSelesai:
		return true
	}
	return false
}
