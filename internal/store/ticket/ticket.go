// Package ticket реализует хранилище тикетов поддержки: список
// обращений и одну текущую переписку.
//
// Мутации подтверждаются сервером до применения: локальное состояние
// меняется только после успешного ответа, поэтому после любой
// неудачной операции оно в точности равно состоянию до вызова.
// Порядок сообщений всегда серверный. Статус CLOSED поглощающий:
// ни одна операция хранилища не выводит тикет из него.
package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// ErrTicketClosed возвращается при попытке написать в закрытый тикет.
var ErrTicketClosed = errors.New("ticket is closed")

// API описывает операции шлюза, необходимые хранилищу тикетов.
type API interface {
	Tickets(ctx context.Context) ([]models.Ticket, error)
	Ticket(ctx context.Context, id int64) (*models.Ticket, error)
	CreateTicket(ctx context.Context, subject, message, imageData string) (*models.Ticket, error)
	Reply(ctx context.Context, id int64, text, imageData string) (*models.TicketMessage, error)
	EditMessage(ctx context.Context, ticketID, msgID int64, text string) error
	DeleteMessage(ctx context.Context, ticketID, msgID int64) error
	CloseTicket(ctx context.Context, id int64, resolution string) error
}

// Counters — приёмник агрегатов тикетов. Хранилище сессии
// удовлетворяет этому интерфейсу; запись всегда локальная.
type Counters interface {
	SetTicketCounters(unread int, hasOpen bool)
}

// Store — хранилище тикетов. Конструируется явно, без синглтонов.
type Store struct {
	api      API
	counters Counters // может быть nil
	log      *slog.Logger

	mu      sync.Mutex
	tickets []models.Ticket
	loaded  bool // список хотя бы раз получен с сервера
	current *models.Ticket
	seq     uint64 // номер последнего выданного запроса Open
}

// New создаёт хранилище тикетов. counters может быть nil, если
// агрегаты некому передавать.
func New(api API, counters Counters, log *slog.Logger) *Store {
	return &Store{api: api, counters: counters, log: log}
}

// List заменяет локальный список тикетов серверным целиком.
// Слияния нет: побеждает последний успешный запрос.
func (s *Store) List(ctx context.Context) error {
	const op = "store.ticket.List"
	tickets, err := s.api.Tickets(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.tickets = tickets
	s.loaded = true
	s.recountLocked()
	s.mu.Unlock()
	return nil
}

// Open загружает тикет целиком и делает его текущим, замещая
// предыдущий. Ответ устаревшего запроса отбрасывается.
func (s *Store) Open(ctx context.Context, id int64) error {
	const op = "store.ticket.Open"

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	ticket, err := s.api.Ticket(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		s.log.Debug("stale ticket fetch discarded", slog.Int64("ticket_id", id))
		return nil
	}
	s.current = ticket
	return nil
}

// Create создаёт новый тикет и добавляет серверную копию в начало
// списка.
func (s *Store) Create(ctx context.Context, subject, message, imageData string) (*models.Ticket, error) {
	const op = "store.ticket.Create"
	ticket, err := s.api.CreateTicket(ctx, subject, message, imageData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.tickets = append([]models.Ticket{*ticket}, s.tickets...)
	s.recountLocked()
	s.mu.Unlock()
	return ticket, nil
}

// Reply отправляет сообщение в тикет. Локально сообщение появляется
// только после подтверждения сервером — добавляется серверное эхо
// с присвоенным идентификатором, без временных заглушек.
func (s *Store) Reply(ctx context.Context, id int64, text, imageData string) error {
	const op = "store.ticket.Reply"

	s.mu.Lock()
	if closed, known := s.statusClosedLocked(id); known && closed {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrTicketClosed)
	}
	s.mu.Unlock()

	msg, err := s.api.Reply(ctx, id, text, imageData)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		s.current.Messages = append(s.current.Messages, *msg)
	}
	s.mu.Unlock()
	return nil
}

// EditMessage заменяет текст сообщения после подтверждения сервером.
// Ограничение «только свои сообщения» обеспечивает вызывающая сторона.
func (s *Store) EditMessage(ctx context.Context, ticketID, msgID int64, text string) error {
	const op = "store.ticket.EditMessage"
	if err := s.api.EditMessage(ctx, ticketID, msgID, text); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	if s.current != nil && s.current.ID == ticketID {
		for i := range s.current.Messages {
			if s.current.Messages[i].ID == msgID {
				s.current.Messages[i].Text = text
				break
			}
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteMessage удаляет сообщение после подтверждения сервером.
func (s *Store) DeleteMessage(ctx context.Context, ticketID, msgID int64) error {
	const op = "store.ticket.DeleteMessage"
	if err := s.api.DeleteMessage(ctx, ticketID, msgID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	if s.current != nil && s.current.ID == ticketID {
		kept := s.current.Messages[:0:0]
		for _, m := range s.current.Messages {
			if m.ID != msgID {
				kept = append(kept, m)
			}
		}
		s.current.Messages = kept
	}
	s.mu.Unlock()
	return nil
}

// Close закрывает тикет. Для уже закрытого тикета операция
// завершается успешно без запроса: CLOSED поглощающий.
func (s *Store) Close(ctx context.Context, id int64, resolution string) error {
	const op = "store.ticket.Close"

	s.mu.Lock()
	if closed, known := s.statusClosedLocked(id); known && closed {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.api.CloseTicket(ctx, id, resolution); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Status = models.TicketClosed
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current.Status = models.TicketClosed
	}
	s.recountLocked()
	s.mu.Unlock()
	return nil
}

// statusClosedLocked ищет статус тикета в текущей переписке и в
// списке. Второй результат false, если тикет хранилищу неизвестен.
func (s *Store) statusClosedLocked(id int64) (closed, known bool) {
	if s.current != nil && s.current.ID == id {
		return s.current.IsClosed(), true
	}
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return s.tickets[i].IsClosed(), true
		}
	}
	return false, false
}

// recountLocked пересчитывает агрегаты по полной коллекции и передаёт
// их приёмнику. Непрочитанным считается незакрытый тикет, не
// отмеченный прочитанным пользователем. Пока список ни разу не
// загружен, агрегаты не пересчитываются: действуют счётчики,
// пришедшие в составном пакете данных сессии.
func (s *Store) recountLocked() {
	if s.counters == nil || !s.loaded {
		return
	}
	unread := 0
	hasOpen := false
	for i := range s.tickets {
		if s.tickets[i].IsClosed() {
			continue
		}
		hasOpen = true
		if !s.tickets[i].IsReadByUser {
			unread++
		}
	}
	s.counters.SetTicketCounters(unread, hasOpen)
}

// Tickets возвращает копию списка тикетов.
func (s *Store) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Current возвращает копию текущего тикета или nil.
func (s *Store) Current() *models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	cp.Messages = make([]models.TicketMessage, len(s.current.Messages))
	copy(cp.Messages, s.current.Messages)
	return &cp
}

// Clear сбрасывает хранилище. Вызывается при выходе из аккаунта.
func (s *Store) Clear() {
	s.mu.Lock()
	s.tickets = nil
	s.loaded = false
	s.current = nil
	s.mu.Unlock()
}
