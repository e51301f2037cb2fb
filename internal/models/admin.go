package models

import "time"

// AdminStats — сводная статистика для админ-консоли.
type AdminStats struct {
	TotalUsers           int     `json:"total_users"`
	ActiveSubscriptions  int     `json:"active_subscriptions"`
	ExpiredSubscriptions int     `json:"expired_subscriptions"`
	RevenueToday         float64 `json:"revenue_today"`
	RevenueMonth         float64 `json:"revenue_month"`
	TotalRevenue         float64 `json:"total_revenue"`
}

// UserPage — страница списка пользователей с пагинацией.
type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
}

// Типы наград промокодов.
const (
	PromoRewardDuration = "DURATION"
	PromoRewardTraffic  = "TRAFFIC"
	PromoRewardDevices  = "DEVICES"
)

// Promocode — промокод в админ-консоли.
type Promocode struct {
	ID               int64     `json:"id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	IsActive         bool      `json:"is_active"`
	RewardType       string    `json:"reward_type"`
	Reward           *float64  `json:"reward"`
	Availability     string    `json:"availability"`
	Lifetime         *int64    `json:"lifetime"`
	MaxActivations   *int64    `json:"max_activations"`
	ActivationsCount int       `json:"activations_count"`
	IsExpired        bool      `json:"is_expired"`
	IsDepleted       bool      `json:"is_depleted"`
	CreatedAt        time.Time `json:"created_at"`
}

// Статусы рассылок.
const (
	BroadcastProcessing = "PROCESSING"
	BroadcastCompleted  = "COMPLETED"
	BroadcastCanceled   = "CANCELED"
)

// Broadcast — рассылка сообщений аудитории бота.
type Broadcast struct {
	ID           int64     `json:"id"`
	TaskID       string    `json:"task_id"`
	Status       string    `json:"status"`
	Audience     string    `json:"audience"`
	TotalCount   int       `json:"total_count"`
	SuccessCount int       `json:"success_count"`
	FailedCount  int       `json:"failed_count"`
	CreatedAt    time.Time `json:"created_at"`
	Text         string    `json:"text"`
}
