package get_available_slots

import (
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	getAvailableSlots "github.com/TPD2004/kenton-car-wash/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot часовой слот с признаком доступности.
// Занятые слоты отдаются вместе со свободными - UI показывает их
// задизейбленными, а не прячет.
type Slot struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query-параметра даты
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		}
	}
	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
