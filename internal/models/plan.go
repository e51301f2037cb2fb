package models

// Plan описывает тариф из каталога. Каталог упорядочен на стороне
// сервера, клиент сохраняет порядок как есть.
type Plan struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Type         string         `json:"type"`
	Tag          string         `json:"tag,omitempty"`
	TrafficLimit *int64         `json:"traffic_limit"` // nil — безлимит
	DeviceLimit  *int64         `json:"device_limit"`  // nil — безлимит
	Durations    []PlanDuration `json:"durations"`
	IsActive     bool           `json:"is_active,omitempty"`
	Availability string         `json:"availability,omitempty"`
}

// PlanDuration — вариант длительности тарифа с ценами в разных валютах.
// Валюты внутри одной длительности уникальны.
type PlanDuration struct {
	Days   int         `json:"days"`
	Prices []PlanPrice `json:"prices"`
}

// PlanPrice — цена в конкретной валюте. Сумма передаётся строкой,
// как её отдаёт бэкенд.
type PlanPrice struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// PriceFor возвращает цену длительности в предпочитаемой валюте.
// Если такой валюты нет, возвращается первая цена из списка.
// Второй результат false только для длительности вовсе без цен.
func (d PlanDuration) PriceFor(currency string) (PlanPrice, bool) {
	for _, p := range d.Prices {
		if p.Currency == currency {
			return p, true
		}
	}
	if len(d.Prices) > 0 {
		return d.Prices[0], true
	}
	return PlanPrice{}, false
}
