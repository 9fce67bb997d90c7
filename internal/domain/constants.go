package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimezone часовой пояс бизнеса по умолчанию.
// День недели для расписания всегда вычисляется в этом поясе,
// а не в поясе машины или клиента.
const DefaultTimezone = "Africa/Johannesburg"

// Business validation constants
const (
	MinOpeningHour = 0
	MaxClosingHour = 24
	MaxNameLength  = 200
	MaxEmailLength = 320
	MaxPhoneLength = 32
	MaxRegLength   = 16
)

// BlockingStatuses статусы бронирований, которые занимают слот.
// Используются при построении множества занятых слотов.
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
}
