package models

// Features — флаги функциональности, видимые клиенту.
// Принадлежат бэкенду, клиент хранит локальную копию только для чтения.
type Features struct {
	BalanceEnabled       bool   `json:"balance_enabled"`
	BalanceMode          string `json:"balance_mode"`
	CommunityEnabled     bool   `json:"community_enabled"`
	CommunityURL         string `json:"community_url"`
	TosEnabled           bool   `json:"tos_enabled"`
	TosURL               string `json:"tos_url"`
	ReferralEnabled      bool   `json:"referral_enabled"`
	ReferralInviteMsg    string `json:"referral_invite_message"`
	PromocodesEnabled    bool   `json:"promocodes_enabled"`
	ExtraDevicesEnabled  bool   `json:"extra_devices_enabled,omitempty"`
	TrialEnabled         bool   `json:"trial_enabled,omitempty"`
}

// Settings — полный набор настроек бота, доступный администратору.
type Settings struct {
	AccessMode             string  `json:"access_mode"`
	ChannelRequired        bool    `json:"channel_required"`
	ChannelLink            string  `json:"channel_link"`
	RulesRequired          bool    `json:"rules_required"`
	PurchasesAllowed       bool    `json:"purchases_allowed"`
	RegistrationAllowed    bool    `json:"registration_allowed"`
	DefaultCurrency        string  `json:"default_currency"`
	BotLocale              string  `json:"bot_locale"`
	BalanceEnabled         bool    `json:"balance_enabled"`
	BalanceMode            string  `json:"balance_mode"`
	ReferralEnabled        bool    `json:"referral_enabled"`
	ReferralType           string  `json:"referral_type"`
	ReferralReward         float64 `json:"referral_reward"`
	ReferralInviteMsg      string  `json:"referral_invite_message"`
	CommunityEnabled       bool    `json:"community_enabled"`
	CommunityURL           string  `json:"community_url"`
	TosEnabled             bool    `json:"tos_enabled"`
	TosURL                 string  `json:"tos_url"`
	PromocodesEnabled      bool    `json:"promocodes_enabled"`
	NotificationsEnabled   bool    `json:"notifications_enabled"`
	ExtraDevicesEnabled    bool    `json:"extra_devices_enabled"`
	ExtraDevicesPrice      float64 `json:"extra_devices_price"`
	TransfersEnabled       bool    `json:"transfers_enabled"`
	GlobalDiscountEnabled  bool    `json:"global_discount_enabled"`
	GlobalDiscountPercent  float64 `json:"global_discount_percent"`
	LanguageEnabled        bool    `json:"language_enabled"`
	TrialEnabled           bool    `json:"trial_enabled"`
}

// Brand — отображаемые атрибуты бренда. Загружаются отдельным
// необязательным запросом; при недоступности подставляются значения
// по умолчанию.
type Brand struct {
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Slogan string `json:"slogan"`
}

// DefaultBrand возвращает бренд по умолчанию, используемый
// при недоступности серверных настроек бренда.
func DefaultBrand() Brand {
	return Brand{Name: "VPN Shop", Slogan: "Fast & Secure"}
}
