package entities

import "time"

// CheckoutStep is the wizard step a session is currently on.
type CheckoutStep string

const (
	CheckoutStepAddress   CheckoutStep = "address"
	CheckoutStepConfigure CheckoutStep = "configure"
	CheckoutStepRegister  CheckoutStep = "register"
	CheckoutStepCheckout  CheckoutStep = "checkout"
	CheckoutStepCompleted CheckoutStep = "completed"
)

// CheckoutSession holds everything one customer selected across the wizard.
// It is persisted at step boundaries only.
//
// Storage model (DynamoDB):
//   - PK: id
//   - TTL: expires_at (epoch seconds)
type CheckoutSession struct {
	ID         string             `json:"id"`
	Step       CheckoutStep       `json:"step"`
	PostalCode string             `json:"postal_code"`
	City       string             `json:"city"`
	Distance   *DistanceQuote     `json:"distance,omitempty"`
	Catalog    *EditionCatalog    `json:"catalog,omitempty"`
	Draft      *SubscriptionDraft `json:"draft,omitempty"`
	Summary    *QuoteSummary      `json:"summary,omitempty"`
	CustomerID string             `json:"customer_id,omitempty"`
	OrderID    string             `json:"order_id,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

// Frozen reports whether the configuration was confirmed and can no longer
// change.
func (s CheckoutSession) Frozen() bool {
	return s.Summary != nil
}
