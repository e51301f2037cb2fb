// Package models содержит доменные модели витрины мини-приложения:
// пользователя, подписку, каталог тарифов, тикеты поддержки,
// настройки и составной пакет данных сессии.
package models

// Роли пользователя в системе.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
	RoleDev   = "DEV"
)

// User представляет пользователя мини-приложения.
// Запись неизменяема в рамках сессии и заменяется целиком
// при каждом успешном обновлении составного представления.
type User struct {
	TelegramID      int64   `json:"telegram_id" validate:"required"` // Идентификатор Telegram
	Name            string  `json:"name"`                            // Отображаемое имя
	Username        string  `json:"username"`                        // Ник в Telegram
	Balance         float64 `json:"balance"`                         // Баланс пользователя
	ReferralBalance float64 `json:"referral_balance"`                // Реферальный баланс
	ReferralCode    string  `json:"referral_code"`                   // Код приглашения
	Role            string  `json:"role" validate:"omitempty,oneof=USER ADMIN DEV"`
	Language        string  `json:"language"` // Язык интерфейса
	IsBlocked       bool    `json:"is_blocked"`
}

// IsAdmin сообщает, доступна ли пользователю админ-консоль.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleDev
}
