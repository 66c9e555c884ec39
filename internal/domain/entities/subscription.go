package entities

import "time"

// Frequency is how often the printed paper is delivered.
type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekend Frequency = "Weekend"
)

// DeliveryMethod is how the paper reaches the customer. The zero value means
// the customer has not chosen yet.
type DeliveryMethod string

const (
	DeliveryMethodUnset         DeliveryMethod = ""
	DeliveryMethodPost          DeliveryMethod = "Post"
	DeliveryMethodDeliveryAgent DeliveryMethod = "DeliveryAgent"
)

// BillingCycle is the payment interval. Annual billing is discounted.
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "Monthly"
	BillingCycleAnnual  BillingCycle = "Annual"
)

// PaymentType is captured at checkout only; no payment is executed.
type PaymentType string

const (
	PaymentTypeDirectDebit PaymentType = "DirectDebit"
	PaymentTypeInvoice     PaymentType = "Invoice"
)

// SubscriptionKindPrinted is the only product sold by the wizard.
const SubscriptionKindPrinted = "Printed"

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekend
}

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodPost || m == DeliveryMethodDeliveryAgent
}

func (c BillingCycle) Valid() bool {
	return c == BillingCycleMonthly || c == BillingCycleAnnual
}

func (p PaymentType) Valid() bool {
	return p == PaymentTypeDirectDebit || p == PaymentTypeInvoice
}

// SubscriptionDraft is the configuration the customer builds on the configure
// step. MonthlyPrice and AnnualPrice are only ever written by the pricing
// engine.
type SubscriptionDraft struct {
	EditionID      *int64         `json:"edition_id"`
	Frequency      Frequency      `json:"frequency"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	BillingCycle   BillingCycle   `json:"billing_cycle"`
	MonthlyPrice   float64        `json:"monthly_price"`
	AnnualPrice    float64        `json:"annual_price"`
	PostalCode     string         `json:"postal_code"`
	DistanceKm     float64        `json:"distance_km"`
}

// SubscriptionOrder is the record submitted when the customer confirms the
// order. Prices are copied from the frozen QuoteSummary.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
type SubscriptionOrder struct {
	ID                  string         `json:"id"`
	CustomerID          string         `json:"customer_id"`
	SessionID           string         `json:"session_id"`
	Created             time.Time      `json:"created"`
	StartDate           time.Time      `json:"start_date"`
	EndDate             time.Time      `json:"end_date"`
	DataPrivacyAccepted bool           `json:"data_privacy_accepted"`
	TermsAccepted       bool           `json:"terms_accepted"`
	Kind                string         `json:"kind"`
	DeliveryMethod      DeliveryMethod `json:"delivery_method"`
	PaymentType         PaymentType    `json:"payment_type"`
	IBANMasked          string         `json:"iban_masked,omitempty"`
	BillingCycle        BillingCycle   `json:"billing_cycle"`
	Frequency           Frequency      `json:"frequency"`
	MonthlyPrice        float64        `json:"monthly_price"`
	AnnualPrice         float64        `json:"annual_price"`
	EditionID           int64          `json:"edition_id"`
	PostalCode          string         `json:"postal_code"`
}
