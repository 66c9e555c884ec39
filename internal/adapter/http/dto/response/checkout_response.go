package response

import (
	"sort"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
	"newspaper_checkout/internal/usecase"

	"github.com/samber/lo"
)

type SessionResponse struct {
	ID         string    `json:"id"`
	Step       string    `json:"step"`
	PostalCode string    `json:"postal_code"`
	City       string    `json:"city"`
	DistanceKm *float64  `json:"distance_km,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	Confirmed  bool      `json:"confirmed"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func FromSession(s entities.CheckoutSession) SessionResponse {
	res := SessionResponse{
		ID:         s.ID,
		Step:       string(s.Step),
		PostalCode: s.PostalCode,
		City:       s.City,
		CustomerID: s.CustomerID,
		OrderID:    s.OrderID,
		Confirmed:  s.Frozen(),
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
	}
	if s.Distance != nil && s.Distance.Resolved() {
		km := s.Distance.DistanceKm
		res.DistanceKm = &km
	}
	return res
}

type EditionResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

type QuoteResponse struct {
	MonthlyPrice      float64 `json:"monthly_price"`
	AnnualPrice       float64 `json:"annual_price"`
	AnnualSavings     float64 `json:"annual_savings"`
	ShowSavings       bool    `json:"show_savings"`
	MonthlyPriceLabel string  `json:"monthly_price_label"`
	AnnualPriceLabel  string  `json:"annual_price_label"`
}

func FromQuote(q entities.PriceQuote) QuoteResponse {
	return QuoteResponse{
		MonthlyPrice:      q.MonthlyPrice,
		AnnualPrice:       q.AnnualPrice,
		AnnualSavings:     q.AnnualSavings,
		ShowSavings:       q.ShowSavings,
		MonthlyPriceLabel: pricing.FormatPrice(q.MonthlyPrice),
		AnnualPriceLabel:  pricing.FormatPrice(q.AnnualPrice),
	}
}

// FrequencyQuoteResponse is one row of the price table on the configure step.
type FrequencyQuoteResponse struct {
	Frequency string `json:"frequency"`
	Label     string `json:"label"`
	QuoteResponse
}

func FromPriceTable(table map[entities.Frequency]entities.PriceQuote) []FrequencyQuoteResponse {
	rows := make([]FrequencyQuoteResponse, 0, len(table))
	for f, q := range table {
		rows = append(rows, FrequencyQuoteResponse{
			Frequency:     string(f),
			Label:         pricing.FrequencyLabel(f),
			QuoteResponse: FromQuote(q),
		})
	}
	// Daily first, as on the configure page.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Frequency < rows[j].Frequency })
	return rows
}

type DraftResponse struct {
	EditionID      *int64  `json:"edition_id"`
	Frequency      string  `json:"frequency"`
	DeliveryMethod string  `json:"delivery_method"`
	BillingCycle   string  `json:"billing_cycle"`
	MonthlyPrice   float64 `json:"monthly_price"`
	AnnualPrice    float64 `json:"annual_price"`
	DistanceKm     float64 `json:"distance_km"`
}

type NoticeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ConfigurationResponse struct {
	Session                  SessionResponse          `json:"session"`
	Editions                 []EditionResponse        `json:"editions"`
	Draft                    DraftResponse            `json:"draft"`
	Quote                    QuoteResponse            `json:"quote"`
	PriceTable               []FrequencyQuoteResponse `json:"price_table"`
	CourierEligible          bool                     `json:"courier_eligible"`
	AvailableDeliveryMethods []string                 `json:"available_delivery_methods"`
	Notices                  []NoticeResponse         `json:"notices"`
}

func FromConfiguration(v usecase.ConfigurationView) ConfigurationResponse {
	methods := []string{string(entities.DeliveryMethodPost)}
	if v.CourierEligible {
		methods = append(methods, string(entities.DeliveryMethodDeliveryAgent))
	}
	return ConfigurationResponse{
		Session: FromSession(v.Session),
		Editions: lo.Map(v.Catalog.Editions, func(e entities.Edition, _ int) EditionResponse {
			return EditionResponse{ID: e.ID, Name: e.Name, Picture: e.Picture}
		}),
		Draft: DraftResponse{
			EditionID:      v.Draft.EditionID,
			Frequency:      string(v.Draft.Frequency),
			DeliveryMethod: string(v.Draft.DeliveryMethod),
			BillingCycle:   string(v.Draft.BillingCycle),
			MonthlyPrice:   v.Draft.MonthlyPrice,
			AnnualPrice:    v.Draft.AnnualPrice,
			DistanceKm:     v.Draft.DistanceKm,
		},
		Quote:                    FromQuote(v.Quote),
		PriceTable:               FromPriceTable(v.PriceTable),
		CourierEligible:          v.CourierEligible,
		AvailableDeliveryMethods: methods,
		Notices:                  fromNotices(v.Notices),
	}
}

type SummaryResponse struct {
	EditionID           int64         `json:"edition_id"`
	EditionName         string        `json:"edition_name"`
	Frequency           string        `json:"frequency"`
	FrequencyLabel      string        `json:"frequency_label"`
	DeliveryMethod      string        `json:"delivery_method"`
	DeliveryMethodLabel string        `json:"delivery_method_label"`
	BillingCycle        string        `json:"billing_cycle"`
	PostalCode          string        `json:"postal_code"`
	City                string        `json:"city"`
	DistanceKm          float64       `json:"distance_km"`
	Quote               QuoteResponse `json:"quote"`
	SavingsLabel        string        `json:"savings_label,omitempty"`
	FrozenAt            time.Time     `json:"frozen_at"`
}

func FromSummary(s entities.QuoteSummary) SummaryResponse {
	return SummaryResponse{
		EditionID:           s.EditionID,
		EditionName:         s.EditionName,
		Frequency:           string(s.Frequency),
		FrequencyLabel:      s.FrequencyLabel,
		DeliveryMethod:      string(s.DeliveryMethod),
		DeliveryMethodLabel: s.DeliveryMethodLabel,
		BillingCycle:        string(s.BillingCycle),
		PostalCode:          s.PostalCode,
		City:                s.City,
		DistanceKm:          s.DistanceKm,
		Quote:               FromQuote(s.Quote),
		SavingsLabel:        s.SavingsLabel,
		FrozenAt:            s.FrozenAt,
	}
}

type QuotePreviewResponse struct {
	DistanceKm      float64                  `json:"distance_km"`
	BillingCycle    string                   `json:"billing_cycle"`
	DeliveryMethod  string                   `json:"delivery_method"`
	CourierEligible *bool                    `json:"courier_eligible,omitempty"`
	Quotes          []FrequencyQuoteResponse `json:"quotes"`
	Notices         []NoticeResponse         `json:"notices,omitempty"`
}

func FromQuotePreview(p usecase.QuotePreview) QuotePreviewResponse {
	return QuotePreviewResponse{
		DistanceKm:      p.DistanceKm,
		BillingCycle:    string(p.BillingCycle),
		DeliveryMethod:  string(p.DeliveryMethod),
		CourierEligible: p.CourierEligible,
		Quotes:          FromPriceTable(p.Quotes),
		Notices:         fromNotices(p.Notices),
	}
}

func fromNotices(notices []usecase.Notice) []NoticeResponse {
	return lo.Map(notices, func(n usecase.Notice, _ int) NoticeResponse {
		return NoticeResponse{Code: n.Code, Message: n.Message}
	})
}
