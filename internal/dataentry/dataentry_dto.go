package dataentry

type CreateEntryRequest struct {
	Judul     string `json:"judul" binding:"required"`
	Deskripsi string `json:"deskripsi" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Baru Proses Pending Selesai"`
}

type SendEntryMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
