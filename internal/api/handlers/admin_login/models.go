package admin_login

type LoginRequest struct {
	Pin string `json:"pin"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}
