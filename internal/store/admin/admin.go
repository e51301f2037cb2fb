// Package admin реализует хранилище админ-консоли: статистику,
// настройки, платёжные шлюзы, тарифы, пользователей, промокоды,
// рассылки и бренд.
//
// Мутации коллекций следуют единой оптимистичной дисциплине:
// изменение применяется локально сразу, затем выполняется запрос к
// бэкенду; при ошибке состояние откатывается к снимку до мутации, а
// ошибка поднимается вызывающей стороне. При успехе оптимистичное
// значение остаётся как есть без повторной сверки с сервером.
// Исключение — сообщения открытой переписки поддержки: их порядок
// серверный, поэтому они меняются только после подтверждения.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// API описывает операции шлюза, необходимые хранилищу админ-консоли.
type API interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	AdminUsers(ctx context.Context, page int, search string) (*models.UserPage, error)
	SetUserRole(ctx context.Context, telegramID int64, role string) error
	AddBalance(ctx context.Context, telegramID int64, amount float64) error
	AddBonusBalance(ctx context.Context, telegramID int64, amount float64) error
	BlockUser(ctx context.Context, telegramID int64, blocked bool) error
	AdminPlans(ctx context.Context) ([]models.Plan, error)
	CreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error)
	UpdatePlan(ctx context.Context, id int64, plan models.Plan) error
	DeletePlan(ctx context.Context, id int64) error
	TogglePlan(ctx context.Context, id int64) error
	AdminSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) error
	AdminGateways(ctx context.Context) ([]models.PaymentGateway, error)
	UpdateGateway(ctx context.Context, id int64, gw models.PaymentGateway) error
	AdminPromocodes(ctx context.Context) ([]models.Promocode, error)
	CreatePromocode(ctx context.Context, promo models.Promocode) (*models.Promocode, error)
	TogglePromocode(ctx context.Context, id int64) error
	DeletePromocode(ctx context.Context, id int64) error
	AdminBroadcasts(ctx context.Context) ([]models.Broadcast, error)
	CreateBroadcast(ctx context.Context, text, audience string) (*models.Broadcast, error)
	DeleteBroadcast(ctx context.Context, id int64) error
	AdminTickets(ctx context.Context) ([]models.Ticket, error)
	AdminTicket(ctx context.Context, id int64) (*models.Ticket, error)
	AdminReply(ctx context.Context, id int64, text, imageData string) (*models.TicketMessage, error)
	AdminEditMessage(ctx context.Context, ticketID, msgID int64, text string) error
	AdminDeleteMessage(ctx context.Context, ticketID, msgID int64) error
	AdminCloseTicket(ctx context.Context, id int64) error
	DeleteTicket(ctx context.Context, id int64) error
	Brand(ctx context.Context) (*models.Brand, error)
	SaveBrand(ctx context.Context, brand models.Brand) error
}

// Store — хранилище админ-консоли. Локальная копия каждой коллекции
// отражает последнее подтверждённое сервером состояние либо
// оптимистичное значение, ожидающее подтверждения.
type Store struct {
	api API
	log *slog.Logger

	mu         sync.Mutex
	stats      *models.AdminStats
	settings   *models.Settings
	gateways   []models.PaymentGateway
	plans      []models.Plan
	users      models.UserPage
	promocodes []models.Promocode
	broadcasts []models.Broadcast
	tickets    []models.Ticket
	current    *models.Ticket // открытая переписка тикета
	brand      *models.Brand
}

// New создаёт хранилище админ-консоли.
func New(api API, log *slog.Logger) *Store {
	return &Store{api: api, log: log}
}

// FetchStats обновляет сводную статистику.
func (s *Store) FetchStats(ctx context.Context) error {
	const op = "store.admin.FetchStats"
	stats, err := s.api.AdminStats(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// FetchSettings заменяет локальные настройки серверными.
func (s *Store) FetchSettings(ctx context.Context) error {
	const op = "store.admin.FetchSettings"
	settings, err := s.api.AdminSettings(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

// UpdateSettings применяет новые настройки оптимистично и откатывает
// их при ошибке запроса.
func (s *Store) UpdateSettings(ctx context.Context, next models.Settings) error {
	const op = "store.admin.UpdateSettings"
	if err := applyOptimistic(&s.mu, s.log, op, &s.settings, &next, func() error {
		return s.api.UpdateSettings(ctx, next)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FetchGateways заменяет список платёжных шлюзов серверным.
func (s *Store) FetchGateways(ctx context.Context) error {
	const op = "store.admin.FetchGateways"
	gateways, err := s.api.AdminGateways(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.gateways = gateways
	s.mu.Unlock()
	return nil
}

// UpdateGateway оптимистично заменяет настройки шлюза в списке.
func (s *Store) UpdateGateway(ctx context.Context, gw models.PaymentGateway) error {
	const op = "store.admin.UpdateGateway"
	s.mu.Lock()
	next := make([]models.PaymentGateway, len(s.gateways))
	copy(next, s.gateways)
	s.mu.Unlock()
	for i := range next {
		if next[i].ID == gw.ID {
			next[i] = gw
		}
	}
	if err := applyOptimistic(&s.mu, s.log, op, &s.gateways, next, func() error {
		return s.api.UpdateGateway(ctx, gw.ID, gw)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ToggleGateway оптимистично переключает активность шлюза.
func (s *Store) ToggleGateway(ctx context.Context, id int64) error {
	const op = "store.admin.ToggleGateway"
	s.mu.Lock()
	var toggled models.PaymentGateway
	found := false
	next := make([]models.PaymentGateway, len(s.gateways))
	copy(next, s.gateways)
	for i := range next {
		if next[i].ID == id {
			next[i].IsActive = !next[i].IsActive
			toggled = next[i]
			found = true
		}
	}
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("%s: gateway %d not found", op, id)
	}
	if err := applyOptimistic(&s.mu, s.log, op, &s.gateways, next, func() error {
		return s.api.UpdateGateway(ctx, id, toggled)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FetchPlans заменяет список тарифов серверным.
func (s *Store) FetchPlans(ctx context.Context) error {
	const op = "store.admin.FetchPlans"
	plans, err := s.api.AdminPlans(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.plans = plans
	s.mu.Unlock()
	return nil
}

// CreatePlan создаёт тариф. Операция не оптимистична: серверная
// копия с присвоенным идентификатором добавляется после подтверждения.
func (s *Store) CreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error) {
	const op = "store.admin.CreatePlan"
	created, err := s.api.CreatePlan(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.plans = append(s.plans, *created)
	s.mu.Unlock()
	return created, nil
}

// UpdatePlan оптимистично заменяет тариф в списке.
func (s *Store) UpdatePlan(ctx context.Context, plan models.Plan) error {
	const op = "store.admin.UpdatePlan"
	s.mu.Lock()
	next := make([]models.Plan, len(s.plans))
	copy(next, s.plans)
	s.mu.Unlock()
	for i := range next {
		if next[i].ID == plan.ID {
			next[i] = plan
		}
	}
	if err := applyOptimistic(&s.mu, s.log, op, &s.plans, next, func() error {
		return s.api.UpdatePlan(ctx, plan.ID, plan)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeletePlan оптимистично удаляет тариф из списка.
func (s *Store) DeletePlan(ctx context.Context, id int64) error {
	const op = "store.admin.DeletePlan"
	s.mu.Lock()
	next := s.plans[:0:0]
	for _, p := range s.plans {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.mu.Unlock()
	if err := applyOptimistic(&s.mu, s.log, op, &s.plans, next, func() error {
		return s.api.DeletePlan(ctx, id)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// TogglePlan оптимистично переключает активность тарифа.
func (s *Store) TogglePlan(ctx context.Context, id int64) error {
	const op = "store.admin.TogglePlan"
	s.mu.Lock()
	next := make([]models.Plan, len(s.plans))
	copy(next, s.plans)
	s.mu.Unlock()
	for i := range next {
		if next[i].ID == id {
			next[i].IsActive = !next[i].IsActive
		}
	}
	if err := applyOptimistic(&s.mu, s.log, op, &s.plans, next, func() error {
		return s.api.TogglePlan(ctx, id)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FetchUsers заменяет страницу списка пользователей.
func (s *Store) FetchUsers(ctx context.Context, page int, search string) error {
	const op = "store.admin.FetchUsers"
	res, err := s.api.AdminUsers(ctx, page, search)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.users = *res
	s.mu.Unlock()
	return nil
}

// SetUserRole оптимистично меняет роль пользователя на странице.
func (s *Store) SetUserRole(ctx context.Context, telegramID int64, role string) error {
	const op = "store.admin.SetUserRole"
	next := s.patchedUsers(telegramID, func(u *models.User) { u.Role = role })
	if err := applyOptimistic(&s.mu, s.log, op, &s.users, next, func() error {
		return s.api.SetUserRole(ctx, telegramID, role)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AddBalance оптимистично увеличивает баланс пользователя на странице
// на указанную сумму.
func (s *Store) AddBalance(ctx context.Context, telegramID int64, amount float64) error {
	const op = "store.admin.AddBalance"
	next := s.patchedUsers(telegramID, func(u *models.User) { u.Balance += amount })
	if err := applyOptimistic(&s.mu, s.log, op, &s.users, next, func() error {
		return s.api.AddBalance(ctx, telegramID, amount)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AddBonusBalance оптимистично увеличивает бонусный баланс.
func (s *Store) AddBonusBalance(ctx context.Context, telegramID int64, amount float64) error {
	const op = "store.admin.AddBonusBalance"
	next := s.patchedUsers(telegramID, func(u *models.User) { u.ReferralBalance += amount })
	if err := applyOptimistic(&s.mu, s.log, op, &s.users, next, func() error {
		return s.api.AddBonusBalance(ctx, telegramID, amount)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// BlockUser оптимистично блокирует или разблокирует пользователя.
func (s *Store) BlockUser(ctx context.Context, telegramID int64, blocked bool) error {
	const op = "store.admin.BlockUser"
	next := s.patchedUsers(telegramID, func(u *models.User) { u.IsBlocked = blocked })
	if err := applyOptimistic(&s.mu, s.log, op, &s.users, next, func() error {
		return s.api.BlockUser(ctx, telegramID, blocked)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// patchedUsers возвращает копию страницы пользователей с изменённой
// записью указанного пользователя.
func (s *Store) patchedUsers(telegramID int64, patch func(*models.User)) models.UserPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.users
	next.Users = make([]models.User, len(s.users.Users))
	copy(next.Users, s.users.Users)
	for i := range next.Users {
		if next.Users[i].TelegramID == telegramID {
			patch(&next.Users[i])
		}
	}
	return next
}

// FetchPromocodes заменяет список промокодов серверным.
func (s *Store) FetchPromocodes(ctx context.Context) error {
	const op = "store.admin.FetchPromocodes"
	promos, err := s.api.AdminPromocodes(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.promocodes = promos
	s.mu.Unlock()
	return nil
}

// CreatePromocode создаёт промокод; серверная копия добавляется
// после подтверждения.
func (s *Store) CreatePromocode(ctx context.Context, promo models.Promocode) (*models.Promocode, error) {
	const op = "store.admin.CreatePromocode"
	created, err := s.api.CreatePromocode(ctx, promo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.promocodes = append(s.promocodes, *created)
	s.mu.Unlock()
	return created, nil
}

// TogglePromocode оптимистично переключает активность промокода.
func (s *Store) TogglePromocode(ctx context.Context, id int64) error {
	const op = "store.admin.TogglePromocode"
	s.mu.Lock()
	next := make([]models.Promocode, len(s.promocodes))
	copy(next, s.promocodes)
	s.mu.Unlock()
	for i := range next {
		if next[i].ID == id {
			next[i].IsActive = !next[i].IsActive
		}
	}
	if err := applyOptimistic(&s.mu, s.log, op, &s.promocodes, next, func() error {
		return s.api.TogglePromocode(ctx, id)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeletePromocode оптимистично удаляет промокод.
func (s *Store) DeletePromocode(ctx context.Context, id int64) error {
	const op = "store.admin.DeletePromocode"
	s.mu.Lock()
	next := s.promocodes[:0:0]
	for _, p := range s.promocodes {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.mu.Unlock()
	if err := applyOptimistic(&s.mu, s.log, op, &s.promocodes, next, func() error {
		return s.api.DeletePromocode(ctx, id)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FetchBroadcasts заменяет список рассылок серверным.
func (s *Store) FetchBroadcasts(ctx context.Context) error {
	const op = "store.admin.FetchBroadcasts"
	broadcasts, err := s.api.AdminBroadcasts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.broadcasts = broadcasts
	s.mu.Unlock()
	return nil
}

// CreateBroadcast запускает рассылку; серверная копия добавляется
// в начало списка после подтверждения.
func (s *Store) CreateBroadcast(ctx context.Context, text, audience string) (*models.Broadcast, error) {
	const op = "store.admin.CreateBroadcast"
	created, err := s.api.CreateBroadcast(ctx, text, audience)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.broadcasts = append([]models.Broadcast{*created}, s.broadcasts...)
	s.mu.Unlock()
	return created, nil
}

// DeleteBroadcast оптимистично удаляет рассылку.
func (s *Store) DeleteBroadcast(ctx context.Context, id int64) error {
	const op = "store.admin.DeleteBroadcast"
	s.mu.Lock()
	next := s.broadcasts[:0:0]
	for _, b := range s.broadcasts {
		if b.ID != id {
			next = append(next, b)
		}
	}
	s.mu.Unlock()
	if err := applyOptimistic(&s.mu, s.log, op, &s.broadcasts, next, func() error {
		return s.api.DeleteBroadcast(ctx, id)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FetchTickets заменяет список тикетов всех пользователей серверным.
func (s *Store) FetchTickets(ctx context.Context) error {
	const op = "store.admin.FetchTickets"
	tickets, err := s.api.AdminTickets(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.tickets = tickets
	s.mu.Unlock()
	return nil
}

// OpenTicket загружает тикет любого пользователя целиком и делает
// его текущей перепиской поддержки, замещая предыдущую.
func (s *Store) OpenTicket(ctx context.Context, id int64) error {
	const op = "store.admin.OpenTicket"
	ticket, err := s.api.AdminTicket(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.current = ticket
	s.mu.Unlock()
	return nil
}

// ReplyTicket отправляет ответ поддержки. Локально сообщение
// появляется только после подтверждения сервером — к переписке
// добавляется серверное эхо с присвоенным идентификатором.
func (s *Store) ReplyTicket(ctx context.Context, id int64, text, imageData string) error {
	const op = "store.admin.ReplyTicket"
	msg, err := s.api.AdminReply(ctx, id, text, imageData)
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

// EditTicketMessage заменяет текст любого сообщения тикета после
// подтверждения сервером.
func (s *Store) EditTicketMessage(ctx context.Context, ticketID, msgID int64, text string) error {
	const op = "store.admin.EditTicketMessage"
	if err := s.api.AdminEditMessage(ctx, ticketID, msgID, text); err != nil {
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

// DeleteTicketMessage удаляет любое сообщение тикета после
// подтверждения сервером.
func (s *Store) DeleteTicketMessage(ctx context.Context, ticketID, msgID int64) error {
	const op = "store.admin.DeleteTicketMessage"
	if err := s.api.AdminDeleteMessage(ctx, ticketID, msgID); err != nil {
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

// CloseTicket оптимистично закрывает тикет от имени поддержки.
// CLOSED поглощающий: уже закрытый тикет остаётся закрытым.
func (s *Store) CloseTicket(ctx context.Context, id int64) error {
	const op = "store.admin.CloseTicket"
	s.mu.Lock()
	next := make([]models.Ticket, len(s.tickets))
	copy(next, s.tickets)
	s.mu.Unlock()
	for i := range next {
		if next[i].ID == id {
			next[i].Status = models.TicketClosed
		}
	}
	if err := applyOptimistic(&s.mu, s.log, op, &s.tickets, next, func() error {
		return s.api.AdminCloseTicket(ctx, id)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		s.current.Status = models.TicketClosed
	}
	s.mu.Unlock()
	return nil
}

// DeleteTicket оптимистично удаляет тикет.
func (s *Store) DeleteTicket(ctx context.Context, id int64) error {
	const op = "store.admin.DeleteTicket"
	s.mu.Lock()
	next := s.tickets[:0:0]
	for _, t := range s.tickets {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.mu.Unlock()
	if err := applyOptimistic(&s.mu, s.log, op, &s.tickets, next, func() error {
		return s.api.DeleteTicket(ctx, id)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()
	return nil
}

// FetchBrand заменяет локальные атрибуты бренда серверными.
func (s *Store) FetchBrand(ctx context.Context) error {
	const op = "store.admin.FetchBrand"
	brand, err := s.api.Brand(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	s.brand = brand
	s.mu.Unlock()
	return nil
}

// SaveBrand оптимистично сохраняет атрибуты бренда.
func (s *Store) SaveBrand(ctx context.Context, brand models.Brand) error {
	const op = "store.admin.SaveBrand"
	if err := applyOptimistic(&s.mu, s.log, op, &s.brand, &brand, func() error {
		return s.api.SaveBrand(ctx, brand)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Stats возвращает копию статистики или nil.
func (s *Store) Stats() *models.AdminStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	cp := *s.stats
	return &cp
}

// Settings возвращает копию настроек или nil.
func (s *Store) Settings() *models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil
	}
	cp := *s.settings
	return &cp
}

// Gateways возвращает копию списка платёжных шлюзов.
func (s *Store) Gateways() []models.PaymentGateway {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PaymentGateway, len(s.gateways))
	copy(out, s.gateways)
	return out
}

// Plans возвращает копию списка тарифов.
func (s *Store) Plans() []models.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

// Users возвращает копию страницы пользователей.
func (s *Store) Users() models.UserPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.users
	out.Users = make([]models.User, len(s.users.Users))
	copy(out.Users, s.users.Users)
	return out
}

// Promocodes возвращает копию списка промокодов.
func (s *Store) Promocodes() []models.Promocode {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Promocode, len(s.promocodes))
	copy(out, s.promocodes)
	return out
}

// Broadcasts возвращает копию списка рассылок.
func (s *Store) Broadcasts() []models.Broadcast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Broadcast, len(s.broadcasts))
	copy(out, s.broadcasts)
	return out
}

// Tickets возвращает копию списка тикетов.
func (s *Store) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// CurrentTicket возвращает копию текущей переписки поддержки или nil.
func (s *Store) CurrentTicket() *models.Ticket {
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

// Brand возвращает копию атрибутов бренда или nil.
func (s *Store) Brand() *models.Brand {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.brand == nil {
		return nil
	}
	cp := *s.brand
	return &cp
}
