package auth

import "time"

const (
	RolePIC      = "PIC"
	RoleAdmin    = "ADMIN"
	RoleKaryawan = "KARYAWAN"
)

// User adalah akun portal. Autentikasi di sistem ini mock: user PIC
// di-seed saat start, tidak ada registrasi mandiri.
type User struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Nama      string `gorm:"not null"`
	Password  string `gorm:"not null"` // bcrypt hash
	Role      string `gorm:"not null;default:'KARYAWAN'"`
	Avatar    string
	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
