package auth

import "errors"

var (
	// ErrInvalidSecret возвращается, когда секрет не подходит
	ErrInvalidSecret = errors.New("auth: invalid secret")

	// ErrNoSession возвращается, когда сессионная cookie отсутствует,
	// повреждена или истекла
	ErrNoSession = errors.New("auth: no valid session")

	// ErrBadSecretHash возвращается при некорректном bcrypt-хеше в конфигурации
	ErrBadSecretHash = errors.New("auth: malformed secret hash in config")
)
