package gateway

import (
	"context"
	"net/http"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// SessionData запрашивает составной пакет данных пользователя:
// профиль, подписку, флаги функциональности, каталог тарифов,
// реферальную ссылку и счётчики тикетов.
func (c *Client) SessionData(ctx context.Context) (*models.SessionData, error) {
	const op = "gateway.SessionData"
	var data models.SessionData
	if err := c.do(ctx, op, http.MethodGet, "/web/api/user/data", nil, &data); err != nil {
		return nil, err
	}
	if err := c.checkStruct(op, data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Brand запрашивает отображаемые атрибуты бренда. Запрос
// необязательный: вызывающая сторона подставляет значения
// по умолчанию при ошибке.
func (c *Client) Brand(ctx context.Context) (*models.Brand, error) {
	const op = "gateway.Brand"
	var brand models.Brand
	if err := c.do(ctx, op, http.MethodGet, "/web/api/settings/brand", nil, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// SetCredentials сохраняет веб-учётные данные текущего пользователя.
func (c *Client) SetCredentials(ctx context.Context, webUsername, password string) error {
	const op = "gateway.SetCredentials"
	body := map[string]string{"web_username": webUsername, "password": password}
	return c.do(ctx, op, http.MethodPost, "/web/api/user/credentials", body, nil)
}

// ChangePassword меняет пароль веб-учётных данных.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	const op = "gateway.ChangePassword"
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.do(ctx, op, http.MethodPost, "/web/api/user/credentials/password", body, nil)
}
