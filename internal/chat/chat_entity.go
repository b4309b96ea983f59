package chat

import "time"

// Message adalah satu pesan dalam percakapan dua arah PIC-karyawan.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

// Chat dikunci id lawan bicara (id karyawan). Dibuat kosong saat pertama
// dipakai, pesan hanya ditambahkan, tidak pernah dihapus. IsTyping adalah
// penanda transien bahwa balasan lawan bicara sedang disusun.
type Chat struct {
	Messages []Message `json:"messages"`
	IsTyping bool      `json:"isTyping"`
}
