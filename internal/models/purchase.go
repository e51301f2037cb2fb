package models

// PurchaseRequest — запрос покупки тарифа.
type PurchaseRequest struct {
	PlanID       int64  `json:"plan_id" validate:"required"`
	DurationDays int    `json:"duration_days" validate:"required,gt=0"`
	Gateway      string `json:"gateway,omitempty"`
}

// PurchaseResponse — результат покупки либо пополнения:
// синхронный успех или ссылка на внешнюю оплату.
type PurchaseResponse struct {
	OK         bool   `json:"ok,omitempty"`
	PaymentURL string `json:"payment_url,omitempty"`
	Message    string `json:"message,omitempty"`
}

// TopupRequest — запрос пополнения баланса.
type TopupRequest struct {
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Gateway string  `json:"gateway" validate:"required"`
}
