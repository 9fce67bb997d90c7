package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	bookingRepo "github.com/TPD2004/kenton-car-wash/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	schedule     domain.WeeklySchedule
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	schedule domain.WeeklySchedule,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		schedule:     schedule,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в сериализуемой транзакции;
// пара "проверили снапшот - вставили" сама по себе не атомарна, поэтому
// конкурентная заявка на тот же слот отсекается либо блокировкой строк,
// либо уникальным индексом в хранилище. Оба случая выглядят для клиента
// одинаково - "слот уже занят, выберите другой".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s/%s, date=%s, time=%s",
		req.ServiceCategory, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных (локально, без похода в БД)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Сверяем услугу и цену с каталогом
	if err := validateService(req); err != nil {
		uc.logger.Warn("CreateBooking: service validation failed: %v", err)
		return nil, err
	}

	// 3. Текущее время и дата в поясе бизнеса
	now := uc.timeProvider.Now().In(uc.location)
	date := uc.businessDate(req.Date)

	// 4. Дата не в прошлом
	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 5. Слот входит в расписание дня
	if err := validateSlot(req.StartTime, date, uc.schedule); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 6. Проверка доступности и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Занятые слоты на дату с блокировкой строк (FOR UPDATE)
		bookedTimes, err := uc.bookingRepo.GetBookedTimes(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get booked times: %v", err)
			return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
		}

		for _, taken := range bookedTimes {
			if taken == req.StartTime {
				uc.logger.Warn("CreateBooking: slot %s on %s already taken",
					req.StartTime, date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
		}

		// 6.2. Создаем бронирование со статусом confirmed
		booking := &domain.Booking{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			VehicleReg:      req.VehicleReg,
			ServiceCategory: req.ServiceCategory,
			ServiceName:     req.ServiceName,
			Price:           *req.Price,
			BookingDate:     date,
			StartTime:       req.StartTime,
			Status:          domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс - последний рубеж против гонки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s on %s",
					req.StartTime, date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		VehicleReg:      result.VehicleReg,
		ServiceCategory: result.ServiceCategory,
		ServiceName:     result.ServiceName,
		Price:           result.Price,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// businessDate нормализует дату к полуночи в поясе бизнеса
func (uc *UseCase) businessDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, uc.location)
}
