package entities

import "time"

type Address struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// Customer is the account created on the register step. SessionID is the
// checkout session the account was created in.
//
// Storage model (DynamoDB):
//   - PK: id
//   - email key item: id = "email#<email>", customer_id
type Customer struct {
	ID              string    `json:"id"`
	Firstname       string    `json:"firstname"`
	Lastname        string    `json:"lastname"`
	Companyname     string    `json:"companyname,omitempty"`
	Email           string    `json:"email"`
	SessionID       string    `json:"session_id,omitempty"`
	PasswordHash    string    `json:"-"`
	Phone           string    `json:"phone,omitempty"`
	DeliveryAddress Address   `json:"delivery_address"`
	BillingAddress  Address   `json:"billing_address"`
	CreatedAt       time.Time `json:"created_at"`
}

func (c Customer) BillingSameAsDelivery() bool {
	return c.BillingAddress == c.DeliveryAddress
}
