package models

// SessionData — составной пакет данных пользователя, который бэкенд
// отдаёт одним запросом. Все поля принадлежат серверу; клиент заменяет
// локальную копию целиком при каждом успешном запросе.
type SessionData struct {
	User              User                 `json:"user"`
	Subscription      OptionalSubscription `json:"subscription"`
	Plans             []Plan               `json:"plans"`
	BotUsername       string               `json:"bot_username"`
	RefLink           string               `json:"ref_link"`
	Features          Features             `json:"features"`
	SupportURL        string               `json:"support_url"`
	TrialAvailable    bool                 `json:"trial_available"`
	DefaultCurrency   string               `json:"default_currency"`
	BotLocale         string               `json:"bot_locale"`
	TicketUnread      int                  `json:"ticket_unread"`
	HasOpenTickets    bool                 `json:"has_open_tickets"`
	AvailableGateways []GatewayOption      `json:"available_gateways"`
}

// AuthResult — результат аутентификации через Telegram initData.
type AuthResult struct {
	OK         bool   `json:"ok"`
	TelegramID int64  `json:"telegram_id"`
	Token      string `json:"token,omitempty"` // Токен сессии, если бэкенд не использует cookie
}

// AuthCheck — ответ проверки наличия веб-учётных данных.
type AuthCheck struct {
	HasCredentials bool    `json:"has_credentials"`
	Name           string  `json:"name"`
	WebUsername    *string `json:"web_username"`
}
