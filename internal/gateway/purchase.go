package gateway

import (
	"context"
	"net/http"

	"github.com/DanteFuaran/dfc-tg-shop/internal/models"
)

// Buy оформляет покупку тарифа. Ответ содержит либо ссылку на
// внешнюю оплату, либо признак синхронного успеха.
func (c *Client) Buy(ctx context.Context, req models.PurchaseRequest) (*models.PurchaseResponse, error) {
	const op = "gateway.Buy"
	if err := c.validate.Struct(req); err != nil {
		return nil, &DecodeError{Err: err}
	}
	var res models.PurchaseResponse
	if err := c.do(ctx, op, http.MethodPost, "/web/api/purchase", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ActivateTrial активирует пробную подписку.
func (c *Client) ActivateTrial(ctx context.Context) error {
	const op = "gateway.ActivateTrial"
	return c.do(ctx, op, http.MethodPost, "/web/api/trial/activate", nil, nil)
}

// Topup пополняет баланс через выбранный платёжный шлюз.
func (c *Client) Topup(ctx context.Context, req models.TopupRequest) (*models.PurchaseResponse, error) {
	const op = "gateway.Topup"
	if err := c.validate.Struct(req); err != nil {
		return nil, &DecodeError{Err: err}
	}
	var res models.PurchaseResponse
	if err := c.do(ctx, op, http.MethodPost, "/web/api/topup", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ActivatePromocode активирует промокод для текущего пользователя.
func (c *Client) ActivatePromocode(ctx context.Context, code string) (*models.PurchaseResponse, error) {
	const op = "gateway.ActivatePromocode"
	var res models.PurchaseResponse
	body := map[string]string{"code": code}
	if err := c.do(ctx, op, http.MethodPost, "/web/api/promocode/activate", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
