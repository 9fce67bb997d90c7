package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found in catalog")

	// ErrPriceMismatch возвращается, когда цена в запросе не совпадает с каталожной
	ErrPriceMismatch = errors.New("create_booking: price does not match catalog")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrClosedDate возвращается, когда на выбранную дату нет рабочих часов
	ErrClosedDate = errors.New("create_booking: closed on this date")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в расписание дня
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят подтвержденным
	// бронированием. Восстановимая ошибка: клиенту следует перезапросить
	// доступные слоты и выбрать другой.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при неполных или некорректных входных данных;
	// локальная ошибка валидации, запрос к хранилищу не выполняется
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
