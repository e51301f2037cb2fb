package models

// Типы платёжных шлюзов, поддерживаемых бэкендом.
const (
	GatewayTelegramStars = "TELEGRAM_STARS"
	GatewayYookassa      = "YOOKASSA"
	GatewayYoomoney      = "YOOMONEY"
	GatewayCryptomus     = "CRYPTOMUS"
	GatewayHeleket       = "HELEKET"
	GatewayCryptopay     = "CRYPTOPAY"
	GatewayRobokassa     = "ROBOKASSA"
	GatewayBalance       = "BALANCE"
)

// PaymentGateway — платёжный шлюз в админ-консоли.
type PaymentGateway struct {
	ID       int64             `json:"id"`
	Type     string            `json:"type"`
	Currency string            `json:"currency"`
	IsActive bool              `json:"is_active"`
	Config   map[string]string `json:"config,omitempty"`
}

// GatewayOption — доступный пользователю способ оплаты
// из составного пакета данных сессии.
type GatewayOption struct {
	Type     string `json:"type"`
	Currency string `json:"currency"`
}
