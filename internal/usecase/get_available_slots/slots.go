package get_available_slots

import (
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// GenerateDailySlots возвращает упорядоченный список часовых слотов на дату
// согласно недельному расписанию: по одному слоту "HH:00" на каждый полный
// час в интервале [StartHour, EndHour). Час закрытия слот не порождает:
// при end=17 последний слот - "16:00".
//
// Чистая функция от (даты, расписания): без I/O, без скрытого состояния,
// безопасна для конкурентных вызовов. Выходной день (или интервал нулевой
// длины start==end) дает пустой список - это "в этот день не работаем",
// а не ошибка. Дата может быть любой, в том числе прошедшей: запрет
// бронирования задним числом - забота вызывающего кода.
func GenerateDailySlots(date time.Time, schedule domain.WeeklySchedule) []types.TimeString {
	hours := schedule.HoursFor(date.Weekday())
	if hours == nil {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, hours.EndHour-hours.StartHour)
	for h := hours.StartHour; h < hours.EndHour; h++ {
		slots = append(slots, types.NewSlotLabel(h))
	}

	return slots
}

// MarkAvailability аннотирует кандидатов признаком доступности: слот занят
// тогда и только тогда, когда его метка присутствует в bookedSet как точное
// строковое совпадение. Порядок и длина последовательности сохраняются -
// UI показывает занятые слоты задизейбленными, а не прячет их.
//
// Сравнение чувствительно к формату: "9:00" в bookedSet не заблокирует
// слот "09:00". Канонический формат "HH:00" обязано обеспечивать хранилище.
func MarkAvailability(candidates []types.TimeString, bookedSet map[types.TimeString]struct{}) []Slot {
	result := make([]Slot, len(candidates))
	for i, label := range candidates {
		_, booked := bookedSet[label]
		result[i] = Slot{
			StartTime: label,
			Available: !booked,
		}
	}
	return result
}

// BuildBookedSet строит множество занятых меток из списка start_time
// подтвержденных бронирований
func BuildBookedSet(bookedTimes []types.TimeString) map[types.TimeString]struct{} {
	set := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		set[t] = struct{}{}
	}
	return set
}
