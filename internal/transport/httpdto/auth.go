package httpdto

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}
