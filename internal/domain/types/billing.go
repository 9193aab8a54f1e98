package types

import "time"

// Plan is a purchasable subscription tier.
type Plan struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency"`
	Interval   string `json:"interval"`
}

// SubscriptionStatus mirrors the payment provider's lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
	SubscriptionPastDue    SubscriptionStatus = "past_due"
)

// Subscription is the caller's current subscription. ClientSecret is only
// populated right after Subscribe and is handed to the payment sheet.
type Subscription struct {
	ID               string             `json:"id"`
	PlanID           string             `json:"plan_id"`
	Status           SubscriptionStatus `json:"status"`
	ClientSecret     string             `json:"client_secret,omitempty"`
	CurrentPeriodEnd time.Time          `json:"current_period_end"`
}

// PushRegistration is the body of POST /notifications/register.
type PushRegistration struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}
