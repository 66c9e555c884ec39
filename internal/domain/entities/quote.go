package entities

import "time"

// PriceQuote is the output of the pricing engine. Both prices are rounded to
// cents; AnnualPrice <= MonthlyPrice*12 always holds.
type PriceQuote struct {
	MonthlyPrice  float64 `json:"monthly_price"`
	AnnualPrice   float64 `json:"annual_price"`
	AnnualSavings float64 `json:"annual_savings"`
	ShowSavings   bool    `json:"show_savings"`
}

// QuoteSummary is frozen when the customer leaves the configure step. Later
// steps display it as-is and the order copies its prices.
type QuoteSummary struct {
	EditionID           int64          `json:"edition_id"`
	EditionName         string         `json:"edition_name"`
	Frequency           Frequency      `json:"frequency"`
	FrequencyLabel      string         `json:"frequency_label"`
	DeliveryMethod      DeliveryMethod `json:"delivery_method"`
	DeliveryMethodLabel string         `json:"delivery_method_label"`
	BillingCycle        BillingCycle   `json:"billing_cycle"`
	PostalCode          string         `json:"postal_code"`
	City                string         `json:"city"`
	DistanceKm          float64        `json:"distance_km"`
	Quote               PriceQuote     `json:"quote"`
	MonthlyPriceLabel   string         `json:"monthly_price_label"`
	AnnualPriceLabel    string         `json:"annual_price_label"`
	SavingsLabel        string         `json:"savings_label,omitempty"`
	FrozenAt            time.Time      `json:"frozen_at"`
}
