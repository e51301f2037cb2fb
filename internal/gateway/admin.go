package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// AdminStats возвращает сводную статистику.
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	const op = "gateway.AdminStats"
	var stats models.AdminStats
	if err := c.do(ctx, op, http.MethodGet, "/web/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminUsers возвращает страницу списка пользователей.
func (c *Client) AdminUsers(ctx context.Context, page int, search string) (*models.UserPage, error) {
	const op = "gateway.AdminUsers"
	path := fmt.Sprintf("/web/api/admin/users?page=%d", page)
	if search != "" {
		path += "&search=" + search
	}
	var res models.UserPage
	if err := c.do(ctx, op, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AdminUser возвращает карточку пользователя.
func (c *Client) AdminUser(ctx context.Context, telegramID int64) (*models.User, error) {
	const op = "gateway.AdminUser"
	var user models.User
	path := fmt.Sprintf("/web/api/admin/users/%d", telegramID)
	if err := c.do(ctx, op, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserRole меняет роль пользователя.
func (c *Client) SetUserRole(ctx context.Context, telegramID int64, role string) error {
	const op = "gateway.SetUserRole"
	path := fmt.Sprintf("/web/api/admin/users/%d/role", telegramID)
	return c.do(ctx, op, http.MethodPost, path, map[string]string{"role": role}, nil)
}

// AddBalance начисляет пользователю сумму на основной баланс.
func (c *Client) AddBalance(ctx context.Context, telegramID int64, amount float64) error {
	const op = "gateway.AddBalance"
	path := fmt.Sprintf("/web/api/admin/users/%d/balance", telegramID)
	return c.do(ctx, op, http.MethodPost, path, map[string]float64{"amount": amount}, nil)
}

// AddBonusBalance начисляет пользователю бонусную сумму.
func (c *Client) AddBonusBalance(ctx context.Context, telegramID int64, amount float64) error {
	const op = "gateway.AddBonusBalance"
	path := fmt.Sprintf("/web/api/admin/users/%d/bonus-balance", telegramID)
	return c.do(ctx, op, http.MethodPost, path, map[string]float64{"amount": amount}, nil)
}

// BlockUser блокирует или разблокирует пользователя.
func (c *Client) BlockUser(ctx context.Context, telegramID int64, blocked bool) error {
	const op = "gateway.BlockUser"
	path := fmt.Sprintf("/web/api/admin/users/%d/block", telegramID)
	return c.do(ctx, op, http.MethodPost, path, map[string]bool{"blocked": blocked}, nil)
}

// AdminPlans возвращает полный список тарифов, включая неактивные.
func (c *Client) AdminPlans(ctx context.Context) ([]models.Plan, error) {
	const op = "gateway.AdminPlans"
	var plans []models.Plan
	if err := c.do(ctx, op, http.MethodGet, "/web/api/admin/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CreatePlan создаёт тариф и возвращает серверную копию.
func (c *Client) CreatePlan(ctx context.Context, plan models.Plan) (*models.Plan, error) {
	const op = "gateway.CreatePlan"
	var created models.Plan
	if err := c.do(ctx, op, http.MethodPost, "/web/api/admin/plans", plan, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePlan заменяет тариф целиком.
func (c *Client) UpdatePlan(ctx context.Context, id int64, plan models.Plan) error {
	const op = "gateway.UpdatePlan"
	path := fmt.Sprintf("/web/api/admin/plans/%d", id)
	return c.do(ctx, op, http.MethodPut, path, plan, nil)
}

// DeletePlan удаляет тариф.
func (c *Client) DeletePlan(ctx context.Context, id int64) error {
	const op = "gateway.DeletePlan"
	path := fmt.Sprintf("/web/api/admin/plans/%d", id)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

// TogglePlan переключает признак активности тарифа.
func (c *Client) TogglePlan(ctx context.Context, id int64) error {
	const op = "gateway.TogglePlan"
	path := fmt.Sprintf("/web/api/admin/plans/%d/toggle", id)
	return c.do(ctx, op, http.MethodPatch, path, nil, nil)
}

// AdminSettings возвращает полный набор настроек бота.
func (c *Client) AdminSettings(ctx context.Context) (*models.Settings, error) {
	const op = "gateway.AdminSettings"
	var settings models.Settings
	if err := c.do(ctx, op, http.MethodGet, "/web/api/admin/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings отправляет изменённые настройки.
func (c *Client) UpdateSettings(ctx context.Context, settings models.Settings) error {
	const op = "gateway.UpdateSettings"
	return c.do(ctx, op, http.MethodPatch, "/web/api/admin/settings", settings, nil)
}

// AdminGateways возвращает список платёжных шлюзов.
func (c *Client) AdminGateways(ctx context.Context) ([]models.PaymentGateway, error) {
	const op = "gateway.AdminGateways"
	var gateways []models.PaymentGateway
	if err := c.do(ctx, op, http.MethodGet, "/web/api/admin/gateways", nil, &gateways); err != nil {
		return nil, err
	}
	return gateways, nil
}

// UpdateGateway заменяет настройки платёжного шлюза.
func (c *Client) UpdateGateway(ctx context.Context, id int64, gw models.PaymentGateway) error {
	const op = "gateway.UpdateGateway"
	path := fmt.Sprintf("/web/api/admin/gateways/%d", id)
	return c.do(ctx, op, http.MethodPatch, path, gw, nil)
}

// AdminTickets возвращает тикеты всех пользователей.
func (c *Client) AdminTickets(ctx context.Context) ([]models.Ticket, error) {
	const op = "gateway.AdminTickets"
	var tickets []models.Ticket
	if err := c.do(ctx, op, http.MethodGet, "/web/api/admin/tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// AdminTicket возвращает тикет любого пользователя целиком,
// включая список сообщений.
func (c *Client) AdminTicket(ctx context.Context, id int64) (*models.Ticket, error) {
	const op = "gateway.AdminTicket"
	var ticket models.Ticket
	path := fmt.Sprintf("/web/api/admin/tickets/%d", id)
	if err := c.do(ctx, op, http.MethodGet, path, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// AdminReply отправляет ответ поддержки в тикет и возвращает серверное
// эхо сообщения.
func (c *Client) AdminReply(ctx context.Context, id int64, text, imageData string) (*models.TicketMessage, error) {
	const op = "gateway.AdminReply"
	body := map[string]string{"text": text}
	if imageData != "" {
		body["image_data"] = imageData
	}
	var msg models.TicketMessage
	path := fmt.Sprintf("/web/api/admin/tickets/%d/reply", id)
	if err := c.do(ctx, op, http.MethodPost, path, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AdminEditMessage заменяет текст любого сообщения тикета.
func (c *Client) AdminEditMessage(ctx context.Context, ticketID, msgID int64, text string) error {
	const op = "gateway.AdminEditMessage"
	path := fmt.Sprintf("/web/api/admin/tickets/%d/messages/%d", ticketID, msgID)
	return c.do(ctx, op, http.MethodPatch, path, map[string]string{"text": text}, nil)
}

// AdminDeleteMessage удаляет любое сообщение тикета.
func (c *Client) AdminDeleteMessage(ctx context.Context, ticketID, msgID int64) error {
	const op = "gateway.AdminDeleteMessage"
	path := fmt.Sprintf("/web/api/admin/tickets/%d/messages/%d", ticketID, msgID)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

// AdminCloseTicket закрывает тикет от имени поддержки.
func (c *Client) AdminCloseTicket(ctx context.Context, id int64) error {
	const op = "gateway.AdminCloseTicket"
	path := fmt.Sprintf("/web/api/admin/tickets/%d/close", id)
	return c.do(ctx, op, http.MethodPost, path, nil, nil)
}

// DeleteTicket удаляет тикет целиком.
func (c *Client) DeleteTicket(ctx context.Context, id int64) error {
	const op = "gateway.DeleteTicket"
	path := fmt.Sprintf("/web/api/admin/tickets/%d", id)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

// AdminPromocodes возвращает список промокодов.
func (c *Client) AdminPromocodes(ctx context.Context) ([]models.Promocode, error) {
	const op = "gateway.AdminPromocodes"
	var promos []models.Promocode
	if err := c.do(ctx, op, http.MethodGet, "/web/api/admin/promocodes", nil, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// CreatePromocode создаёт промокод и возвращает серверную копию.
func (c *Client) CreatePromocode(ctx context.Context, promo models.Promocode) (*models.Promocode, error) {
	const op = "gateway.CreatePromocode"
	var created models.Promocode
	if err := c.do(ctx, op, http.MethodPost, "/web/api/admin/promocodes", promo, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// TogglePromocode переключает активность промокода.
func (c *Client) TogglePromocode(ctx context.Context, id int64) error {
	const op = "gateway.TogglePromocode"
	path := fmt.Sprintf("/web/api/admin/promocodes/%d/toggle", id)
	return c.do(ctx, op, http.MethodPatch, path, nil, nil)
}

// DeletePromocode удаляет промокод.
func (c *Client) DeletePromocode(ctx context.Context, id int64) error {
	const op = "gateway.DeletePromocode"
	path := fmt.Sprintf("/web/api/admin/promocodes/%d", id)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

// AdminBroadcasts возвращает список рассылок.
func (c *Client) AdminBroadcasts(ctx context.Context) ([]models.Broadcast, error) {
	const op = "gateway.AdminBroadcasts"
	var broadcasts []models.Broadcast
	if err := c.do(ctx, op, http.MethodGet, "/web/api/admin/broadcast", nil, &broadcasts); err != nil {
		return nil, err
	}
	return broadcasts, nil
}

// CreateBroadcast запускает рассылку и возвращает серверную копию.
func (c *Client) CreateBroadcast(ctx context.Context, text, audience string) (*models.Broadcast, error) {
	const op = "gateway.CreateBroadcast"
	body := map[string]string{"text": text, "audience": audience}
	var created models.Broadcast
	if err := c.do(ctx, op, http.MethodPost, "/web/api/admin/broadcast", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteBroadcast удаляет рассылку.
func (c *Client) DeleteBroadcast(ctx context.Context, id int64) error {
	const op = "gateway.DeleteBroadcast"
	path := fmt.Sprintf("/web/api/admin/broadcast/%d", id)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

// SaveBrand сохраняет атрибуты бренда.
func (c *Client) SaveBrand(ctx context.Context, brand models.Brand) error {
	const op = "gateway.SaveBrand"
	return c.do(ctx, op, http.MethodPost, "/web/api/settings/brand", brand, nil)
}
