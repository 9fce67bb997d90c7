package delete_booking

type DeleteBookingResponse struct {
	Success bool `json:"success"`
}
