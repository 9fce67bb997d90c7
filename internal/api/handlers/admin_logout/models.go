package admin_logout

type LogoutResponse struct {
	Success bool `json:"success"`
}
