package gateway

import (
	"context"
	"net/http"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// LoginTelegram аутентифицирует пользователя по initData от Telegram
// WebApp и возвращает результат с токеном сессии.
func (c *Client) LoginTelegram(ctx context.Context, initData string) (*models.AuthResult, error) {
	const op = "gateway.LoginTelegram"
	var res models.AuthResult
	body := map[string]string{"init_data": initData}
	if err := c.do(ctx, op, http.MethodPost, "/web/api/auth/tg", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckAuth проверяет, заведены ли у пользователя веб-учётные данные.
func (c *Client) CheckAuth(ctx context.Context, telegramID int64) (*models.AuthCheck, error) {
	const op = "gateway.CheckAuth"
	var res models.AuthCheck
	body := map[string]int64{"telegram_id": telegramID}
	if err := c.do(ctx, op, http.MethodPost, "/web/api/auth/check", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register создаёт веб-учётные данные для входа вне Telegram.
func (c *Client) Register(ctx context.Context, telegramID int64, webUsername, password string) error {
	const op = "gateway.Register"
	body := map[string]any{
		"telegram_id":  telegramID,
		"web_username": webUsername,
		"password":     password,
	}
	return c.do(ctx, op, http.MethodPost, "/web/api/auth/register", body, nil)
}

// Login выполняет вход по веб-учётным данным.
func (c *Client) Login(ctx context.Context, webUsername, password string) (*models.AuthResult, error) {
	const op = "gateway.Login"
	var res models.AuthResult
	body := map[string]string{"web_username": webUsername, "password": password}
	if err := c.do(ctx, op, http.MethodPost, "/web/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout завершает сессию на стороне бэкенда.
func (c *Client) Logout(ctx context.Context) error {
	const op = "gateway.Logout"
	return c.do(ctx, op, http.MethodPost, "/web/api/auth/logout", nil, nil)
}
