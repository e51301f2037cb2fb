package models

import "time"

// Статусы тикета поддержки. CLOSED — терминальный статус:
// ни одна операция не переводит тикет обратно.
const (
	TicketOpen     = "OPEN"
	TicketAnswered = "ANSWERED"
	TicketWaiting  = "WAITING"
	TicketClosed   = "CLOSED"
)

// Отправители сообщений тикета.
const (
	SenderUser  = "user"
	SenderAdmin = "admin"
)

// Ticket — обращение в поддержку: тема, статус и упорядоченный
// список сообщений. Порядок сообщений всегда серверный,
// клиент никогда не переупорядочивает их локально.
type Ticket struct {
	ID             int64           `json:"id"`
	Subject        string          `json:"subject"`
	Status         string          `json:"status" validate:"omitempty,oneof=OPEN ANSWERED WAITING CLOSED"`
	IsReadByUser   bool            `json:"is_read_by_user"`
	IsReadByAdmin  bool            `json:"is_read_by_admin"`
	Messages       []TicketMessage `json:"messages"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	UserTelegramID int64           `json:"user_telegram_id,omitempty"`
}

// IsClosed сообщает, закрыт ли тикет.
func (t Ticket) IsClosed() bool {
	return t.Status == TicketClosed
}

// TicketMessage — одно сообщение в переписке тикета.
type TicketMessage struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // user или admin
	CreatedAt time.Time `json:"created_at"`
	ImageURL  string    `json:"image_url,omitempty"`
}
