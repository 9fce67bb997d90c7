package get_available_slots

import (
	"time"

	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату.
// Slots содержит ПОЛНУЮ последовательность кандидатов с признаком
// доступности; пустой список означает выходной день.
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot часовой слот с признаком доступности
type Slot struct {
	StartTime types.TimeString // Метка слота, например "10:00"
	Available bool             // false, если на слот уже есть подтвержденное бронирование
}

// AvailableOnly возвращает подпоследовательность свободных слотов
func (r *Response) AvailableOnly() []Slot {
	out := make([]Slot, 0, len(r.Slots))
	for _, s := range r.Slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}
