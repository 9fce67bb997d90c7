package domain

import (
	"fmt"
	"time"
)

// OpeningHours is a single day's operating interval in whole hours,
// 24-hour clock. EndHour is the closing time and never produces a slot:
// end=17 means the last bookable slot starts at 16:00.
type OpeningHours struct {
	StartHour int
	EndHour   int
}

// WeeklySchedule is the static opening-hours table, one entry per weekday
// indexed by time.Weekday (0=Sunday ... 6=Saturday). A nil entry means the
// business is closed that day. Загружается один раз при старте и дальше
// не изменяется, поэтому безопасна для конкурентного чтения.
type WeeklySchedule [7]*OpeningHours

// HoursFor returns the operating interval for the weekday, nil if closed
func (s WeeklySchedule) HoursFor(day time.Weekday) *OpeningHours {
	return s[int(day)]
}

// Validate проверяет инварианты расписания при старте сервиса.
// Некорректное расписание - фатальная ошибка конфигурации, а не
// ошибка времени запроса.
func (s WeeklySchedule) Validate() error {
	for day, hours := range s {
		if hours == nil {
			continue // closed
		}
		if hours.StartHour < MinOpeningHour || hours.EndHour > MaxClosingHour {
			return fmt.Errorf("schedule: %s hours %d-%d out of range [%d, %d]",
				time.Weekday(day), hours.StartHour, hours.EndHour, MinOpeningHour, MaxClosingHour)
		}
		if hours.StartHour > hours.EndHour {
			return fmt.Errorf("schedule: %s start hour %d is after end hour %d",
				time.Weekday(day), hours.StartHour, hours.EndHour)
		}
	}
	return nil
}

// DefaultWeeklySchedule расписание по умолчанию:
// Пн-Пт 08:00-17:00, Сб 08:00-12:00, Вс выходной
func DefaultWeeklySchedule() WeeklySchedule {
	weekdays := &OpeningHours{StartHour: 8, EndHour: 17}
	saturday := &OpeningHours{StartHour: 8, EndHour: 12}

	return WeeklySchedule{
		time.Sunday:    nil,
		time.Monday:    weekdays,
		time.Tuesday:   weekdays,
		time.Wednesday: weekdays,
		time.Thursday:  weekdays,
		time.Friday:    weekdays,
		time.Saturday:  saturday,
	}
}
