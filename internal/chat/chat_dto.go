package chat

type SendMessageRequest struct {
	Text     string `json:"text" binding:"required"`
	ImageURL string `json:"imageUrl"`
}
