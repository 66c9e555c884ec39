package request

import (
	"strings"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/usecase"
)

// AddressRequest is the address step payload, used both to start a session
// and to change the address later.
type AddressRequest struct {
	PostalCode string `json:"postal_code" binding:"required,plz" example:"70173"`
	City       string `json:"city" binding:"required" example:"Stuttgart"`
}

// ConfigurationRequest changes one or more fields of the draft. Omitted
// fields keep their value.
type ConfigurationRequest struct {
	EditionID      *int64  `json:"edition_id" example:"3"`
	Frequency      *string `json:"frequency" binding:"omitempty,oneof=Daily Weekend" example:"Daily"`
	BillingCycle   *string `json:"billing_cycle" binding:"omitempty,oneof=Monthly Annual" example:"Annual"`
	DeliveryMethod *string `json:"delivery_method" binding:"omitempty,oneof=Post DeliveryAgent" example:"Post"`
}

func (r ConfigurationRequest) Empty() bool {
	return r.EditionID == nil && r.Frequency == nil && r.BillingCycle == nil && r.DeliveryMethod == nil
}

func (r ConfigurationRequest) ToChange() usecase.ConfigurationChange {
	var ch usecase.ConfigurationChange
	if r.EditionID != nil {
		id := *r.EditionID
		ch.EditionID = &id
	}
	if r.Frequency != nil {
		f := entities.Frequency(strings.TrimSpace(*r.Frequency))
		ch.Frequency = &f
	}
	if r.BillingCycle != nil {
		c := entities.BillingCycle(strings.TrimSpace(*r.BillingCycle))
		ch.BillingCycle = &c
	}
	if r.DeliveryMethod != nil {
		m := entities.DeliveryMethod(strings.TrimSpace(*r.DeliveryMethod))
		ch.DeliveryMethod = &m
	}
	return ch
}

// QuoteQuery is the query string of the price preview endpoint.
type QuoteQuery struct {
	DistanceKm      *float64 `form:"distance_km" binding:"required"`
	BillingCycle    string   `form:"billing_cycle" binding:"omitempty,oneof=Monthly Annual"`
	DeliveryMethod  string   `form:"delivery_method" binding:"omitempty,oneof=Post DeliveryAgent"`
	PostalCode      string   `form:"postal_code" binding:"omitempty,plz"`
	HasLocalEdition bool     `form:"has_local_edition"`
}
