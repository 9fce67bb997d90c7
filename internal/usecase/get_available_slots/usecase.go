package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
)

// UseCase use case для получения слотов на дату с признаком доступности
type UseCase struct {
	bookingRepo BookingRepository
	schedule    domain.WeeklySchedule
	location    *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// schedule и location валидируются при загрузке конфигурации.
func NewUseCase(
	bookingRepo BookingRepository,
	schedule domain.WeeklySchedule,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		location:    location,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Приводим дату к часовому поясу бизнеса - день недели для
	// расписания зависит от пояса, а не от машины или клиента
	date := uc.businessDate(req.Date)

	// 3. Генерируем кандидатов по расписанию
	candidates := GenerateDailySlots(date, uc.schedule)
	if len(candidates) == 0 {
		// Выходной день - пустой список слотов, не ошибка
		uc.logger.Info("GetAvailableSlots: closed on %s (%s)",
			date.Format(domain.DateFormat), date.Weekday())
		return &Response{Date: date, Slots: []Slot{}}, nil
	}

	// 4. Получаем занятые слоты (только подтвержденные бронирования,
	// фильтрация по статусу - на стороне хранилища)
	bookedTimes, err := uc.bookingRepo.GetBookedTimes(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 5. Помечаем каждого кандидата признаком доступности
	slots := MarkAvailability(candidates, BuildBookedSet(bookedTimes))

	uc.logger.Info("GetAvailableSlots: date=%s, candidates=%d, booked=%d",
		date.Format(domain.DateFormat), len(candidates), len(bookedTimes))

	return &Response{Date: date, Slots: slots}, nil
}

// businessDate нормализует дату к полуночи в поясе бизнеса
func (uc *UseCase) businessDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, uc.location)
}
