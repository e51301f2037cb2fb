package models

import (
	"encoding/json"
	"time"
)

// Статусы подписки.
const (
	SubscriptionActive   = "ACTIVE"
	SubscriptionExpired  = "EXPIRED"
	SubscriptionDisabled = "DISABLED"
)

// Subscription описывает подписку пользователя на VPN-сервис.
// Нулевые указатели TrafficLimit и DeviceLimit означают отсутствие лимита.
type Subscription struct {
	Status             string    `json:"status" validate:"omitempty,oneof=ACTIVE EXPIRED DISABLED"`
	PlanName           string    `json:"plan_name"`
	PlanID             *int64    `json:"plan_id"`
	ExpireAt           time.Time `json:"expire_at"`
	TrafficLimit       *int64    `json:"traffic_limit"` // Лимит трафика в байтах, nil — безлимит
	DeviceLimit        *int64    `json:"device_limit"`  // Лимит устройств, nil — безлимит
	IsTrial            bool      `json:"is_trial"`
	URL                string    `json:"url"` // Ссылка подключения
	ActiveDevicesCount int       `json:"active_devices_count"`
}

// IsActive сообщает, действует ли подписка.
func (s Subscription) IsActive() bool {
	return s.Status == SubscriptionActive
}

// OptionalSubscription различает отсутствие подписки и её наличие
// при разборе ответа сервера. Бэкенд передаёт отсутствие подписки
// как null или пустой объект; оба варианта нормализуются в nil,
// а не в подписку с нулевыми полями.
type OptionalSubscription struct {
	Subscription *Subscription
}

// UnmarshalJSON выполняет явный шаг нормализации: null и {} означают
// отсутствие подписки, любой непустой объект разбирается целиком.
func (o *OptionalSubscription) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if len(probe) == 0 {
		o.Subscription = nil
		return nil
	}
	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return err
	}
	o.Subscription = &sub
	return nil
}

// MarshalJSON сериализует отсутствующую подписку как null.
func (o OptionalSubscription) MarshalJSON() ([]byte, error) {
	if o.Subscription == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Subscription)
}
