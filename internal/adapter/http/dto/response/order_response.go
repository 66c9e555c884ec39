package response

import (
	"time"

	"newspaper_checkout/internal/domain/entities"
)

type AddressResponse struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

func fromAddress(a entities.Address) AddressResponse {
	return AddressResponse{Street1: a.Street1, Street2: a.Street2, City: a.City, PostalCode: a.PostalCode}
}

type CustomerResponse struct {
	ID                    string          `json:"id"`
	Firstname             string          `json:"firstname"`
	Lastname              string          `json:"lastname"`
	Companyname           string          `json:"companyname,omitempty"`
	Email                 string          `json:"email"`
	Phone                 string          `json:"phone,omitempty"`
	DeliveryAddress       AddressResponse `json:"delivery_address"`
	BillingAddress        AddressResponse `json:"billing_address"`
	BillingSameAsDelivery bool            `json:"billing_same_as_delivery"`
	CreatedAt             time.Time       `json:"created_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                    c.ID,
		Firstname:             c.Firstname,
		Lastname:              c.Lastname,
		Companyname:           c.Companyname,
		Email:                 c.Email,
		Phone:                 c.Phone,
		DeliveryAddress:       fromAddress(c.DeliveryAddress),
		BillingAddress:        fromAddress(c.BillingAddress),
		BillingSameAsDelivery: c.BillingSameAsDelivery(),
		CreatedAt:             c.CreatedAt,
	}
}

type OrderResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	Created        time.Time `json:"created"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Kind           string    `json:"kind"`
	EditionID      int64     `json:"edition_id"`
	PostalCode     string    `json:"postal_code"`
	Frequency      string    `json:"frequency"`
	DeliveryMethod string    `json:"delivery_method"`
	BillingCycle   string    `json:"billing_cycle"`
	PaymentType    string    `json:"payment_type"`
	IBAN           string    `json:"iban,omitempty"`
	MonthlyPrice   float64   `json:"monthly_price"`
	AnnualPrice    float64   `json:"annual_price"`
}

func FromOrder(o entities.SubscriptionOrder) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		Created:        o.Created,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		Kind:           o.Kind,
		EditionID:      o.EditionID,
		PostalCode:     o.PostalCode,
		Frequency:      string(o.Frequency),
		DeliveryMethod: string(o.DeliveryMethod),
		BillingCycle:   string(o.BillingCycle),
		PaymentType:    string(o.PaymentType),
		IBAN:           o.IBANMasked,
		MonthlyPrice:   o.MonthlyPrice,
		AnnualPrice:    o.AnnualPrice,
	}
}
