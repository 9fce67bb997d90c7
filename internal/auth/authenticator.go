// Package auth аутентификация администратора: проверка общего секрета
// по bcrypt-хешу и сессионные cookie.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator проверяет секрет администратора.
// Интерфейс оставлен подключаемым: сейчас за ним bcrypt-хеш из
// конфигурации, позже может появиться проверка по таблице пользователей.
type Authenticator interface {
	Verify(secret string) error
}

// BcryptAuthenticator сверяет секрет с bcrypt-хешем.
// Сам секрет нигде не хранится и не сравнивается как строка.
type BcryptAuthenticator struct {
	hash []byte
}

// NewBcryptAuthenticator создает аутентификатор из bcrypt-хеша.
// Некорректный хеш - фатальная ошибка конфигурации, ловим её на старте.
func NewBcryptAuthenticator(secretHash string) (*BcryptAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(secretHash)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSecretHash, err)
	}
	return &BcryptAuthenticator{hash: []byte(secretHash)}, nil
}

// Verify возвращает nil, если секрет подходит, иначе ErrInvalidSecret.
// bcrypt сам по себе медленный, что заодно ограничивает скорость перебора.
func (a *BcryptAuthenticator) Verify(secret string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(secret)); err != nil {
		return ErrInvalidSecret
	}
	return nil
}

// HashSecret генерирует bcrypt-хеш секрета (для подготовки конфигурации)
func HashSecret(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
