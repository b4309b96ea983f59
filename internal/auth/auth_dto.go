package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nama   string `json:"nama"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
