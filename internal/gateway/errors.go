package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError — транспортная ошибка: ответ от сервера не получен.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError — сервер ответил статусом вне диапазона 2xx.
// Body содержит тело ответа для диагностики.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Status)
}

// IsAuth сообщает, означает ли статус недействительную сессию.
func (e *HTTPError) IsAuth() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// DecodeError — ответ сервера получен, но его форма некорректна.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsAuthError проверяет, что ошибка шлюза означает недействительную
// сессию. Для такой ошибки клиент переходит в неаутентифицированное
// состояние без попытки обновления токена.
func IsAuthError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.IsAuth()
}
