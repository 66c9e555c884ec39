package request

import (
	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/usecase"
)

type PostalAddressRequest struct {
	Street1    string `json:"street1" example:"Königstraße 1"`
	Street2    string `json:"street2"`
	City       string `json:"city" example:"Stuttgart"`
	PostalCode string `json:"postal_code" example:"70173"`
}

func (r PostalAddressRequest) ToEntity() entities.Address {
	return entities.Address{Street1: r.Street1, Street2: r.Street2, City: r.City, PostalCode: r.PostalCode}
}

// RegistrationRequest is the register step form. Field rules are checked by
// the use case so every invalid field is reported at once.
type RegistrationRequest struct {
	Firstname       string                `json:"firstname"`
	Lastname        string                `json:"lastname"`
	Companyname     string                `json:"companyname"`
	Email           string                `json:"email"`
	Password        string                `json:"password"`
	Phone           string                `json:"phone"`
	DeliveryAddress PostalAddressRequest  `json:"delivery_address"`
	BillingAddress  *PostalAddressRequest `json:"billing_address"`
	// BillingSameAsDelivery defaults to true when no billing address is sent.
	BillingSameAsDelivery *bool `json:"billing_same_as_delivery"`
	AcceptPrivacy         bool  `json:"accept_privacy"`
}

func (r RegistrationRequest) ToInput() usecase.RegisterCustomerInput {
	in := usecase.RegisterCustomerInput{
		Firstname:       r.Firstname,
		Lastname:        r.Lastname,
		Companyname:     r.Companyname,
		Email:           r.Email,
		Password:        r.Password,
		Phone:           r.Phone,
		DeliveryAddress: r.DeliveryAddress.ToEntity(),
		AcceptPrivacy:   r.AcceptPrivacy,
	}
	sameAsDelivery := r.BillingSameAsDelivery == nil || *r.BillingSameAsDelivery
	if !sameAsDelivery {
		billing := entities.Address{}
		if r.BillingAddress != nil {
			billing = r.BillingAddress.ToEntity()
		}
		in.BillingAddress = &billing
	}
	return in
}

type PlaceOrderRequest struct {
	PaymentType string `json:"payment_type" binding:"required,oneof=DirectDebit Invoice" example:"DirectDebit"`
	IBAN        string `json:"iban" example:"DE89 3704 0044 0532 0130 00"`
	AcceptTerms bool   `json:"accept_terms"`
}

func (r PlaceOrderRequest) ToInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		PaymentType: entities.PaymentType(r.PaymentType),
		IBAN:        r.IBAN,
		AcceptTerms: r.AcceptTerms,
	}
}
