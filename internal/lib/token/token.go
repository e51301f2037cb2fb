// Package token реализует локальный разбор токена сессии.
//
// Клиент не проверяет подпись — она принадлежит бэкенду. Разбор без
// проверки нужен только для того, чтобы заранее определить истечение
// сессии и не отправлять заведомо неавторизованные запросы.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt извлекает время истечения из токена сессии без проверки
// подписи. Если claim exp отсутствует, возвращается нулевое время.
func ExpiresAt(tokenStr string) (time.Time, error) {
	const op = "token.ExpiresAt"
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// IsExpired сообщает, истёк ли токен к моменту now. Токен без claim
// exp считается неистекающим, некорректный токен — истёкшим.
func IsExpired(tokenStr string, now time.Time) bool {
	expires, err := ExpiresAt(tokenStr)
	if err != nil {
		return true
	}
	if expires.IsZero() {
		return false
	}
	return !now.Before(expires)
}
