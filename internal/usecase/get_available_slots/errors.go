package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (например, недоступности хранилища); для вызывающей стороны
	// это восстановимая ошибка - шаг выбора времени показывает
	// ошибку и позволяет повторить запрос
	ErrInternal = errors.New("get_available_slots: internal error")
)
