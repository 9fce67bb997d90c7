package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Неполная заявка блокируется локально, без обращения к хранилищу:
// услуга (категория, название, цена), дата, слот и контакты клиента
// (имя, email, телефон) обязательны.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if len(req.CustomerEmail) > domain.MaxEmailLength || !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customer email is invalid", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if len(req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer phone is too long", ErrInvalidInput)
	}

	if req.VehicleReg != nil && len(*req.VehicleReg) > domain.MaxRegLength {
		return fmt.Errorf("%w: vehicle registration is too long", ErrInvalidInput)
	}

	if req.ServiceCategory == "" {
		return fmt.Errorf("%w: service category is required", ErrInvalidInput)
	}
	if req.ServiceName == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if req.Price == nil {
		return fmt.Errorf("%w: price is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateService проверяет услугу по каталогу и сверяет цену
func validateService(req *Request) error {
	service, ok := domain.FindService(req.ServiceCategory, req.ServiceName)
	if !ok {
		return ErrServiceNotFound
	}
	if *req.Price != service.Price {
		return fmt.Errorf("%w: got %.2f, catalog says %.2f", ErrPriceMismatch, *req.Price, service.Price)
	}
	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlot проверяет, что слот входит в расписание дня.
// Метка обязана точно совпадать с одним из кандидатов "HH:00".
func validateSlot(slot types.TimeString, date time.Time, schedule domain.WeeklySchedule) error {
	hours := schedule.HoursFor(date.Weekday())
	if hours == nil {
		return ErrClosedDate
	}

	for h := hours.StartHour; h < hours.EndHour; h++ {
		if slot == types.NewSlotLabel(h) {
			return nil
		}
	}

	return ErrInvalidTimeSlot
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
