package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// Tickets возвращает список тикетов текущего пользователя.
func (c *Client) Tickets(ctx context.Context) ([]models.Ticket, error) {
	const op = "gateway.Tickets"
	var tickets []models.Ticket
	if err := c.do(ctx, op, http.MethodGet, "/web/api/tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Ticket возвращает тикет целиком, включая список сообщений.
func (c *Client) Ticket(ctx context.Context, id int64) (*models.Ticket, error) {
	const op = "gateway.Ticket"
	var ticket models.Ticket
	path := fmt.Sprintf("/web/api/tickets/%d", id)
	if err := c.do(ctx, op, http.MethodGet, path, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket создаёт новый тикет и возвращает его серверную копию.
func (c *Client) CreateTicket(ctx context.Context, subject, message, imageData string) (*models.Ticket, error) {
	const op = "gateway.CreateTicket"
	body := map[string]string{"subject": subject, "message": message}
	if imageData != "" {
		body["image_data"] = imageData
	}
	var ticket models.Ticket
	if err := c.do(ctx, op, http.MethodPost, "/web/api/tickets", body, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Reply отправляет сообщение в тикет и возвращает серверное эхо
// сообщения с присвоенным идентификатором и временем создания.
func (c *Client) Reply(ctx context.Context, id int64, text, imageData string) (*models.TicketMessage, error) {
	const op = "gateway.Reply"
	body := map[string]string{"text": text}
	if imageData != "" {
		body["image_data"] = imageData
	}
	var msg models.TicketMessage
	path := fmt.Sprintf("/web/api/tickets/%d/reply", id)
	if err := c.do(ctx, op, http.MethodPost, path, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// EditMessage заменяет текст сообщения тикета.
func (c *Client) EditMessage(ctx context.Context, ticketID, msgID int64, text string) error {
	const op = "gateway.EditMessage"
	path := fmt.Sprintf("/web/api/tickets/%d/messages/%d", ticketID, msgID)
	return c.do(ctx, op, http.MethodPatch, path, map[string]string{"text": text}, nil)
}

// DeleteMessage удаляет сообщение тикета.
func (c *Client) DeleteMessage(ctx context.Context, ticketID, msgID int64) error {
	const op = "gateway.DeleteMessage"
	path := fmt.Sprintf("/web/api/tickets/%d/messages/%d", ticketID, msgID)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

// CloseTicket закрывает тикет с указанием резолюции.
func (c *Client) CloseTicket(ctx context.Context, id int64, resolution string) error {
	const op = "gateway.CloseTicket"
	path := fmt.Sprintf("/web/api/tickets/%d/close", id)
	return c.do(ctx, op, http.MethodPost, path, map[string]string{"resolution": resolution}, nil)
}

// TicketStatus возвращает серверные агрегаты тикетов:
// число непрочитанных и признак наличия открытых.
func (c *Client) TicketStatus(ctx context.Context) (unread int, hasOpen bool, err error) {
	const op = "gateway.TicketStatus"
	var res struct {
		Unread  int  `json:"unread"`
		HasOpen bool `json:"has_open"`
	}
	if err := c.do(ctx, op, http.MethodGet, "/web/api/tickets/status", nil, &res); err != nil {
		return 0, false, err
	}
	return res.Unread, res.HasOpen, nil
}
