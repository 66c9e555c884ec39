package interfaces

import (
	"context"

	"newspaper_checkout/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Create returns a zero Customer when the email is already taken.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
}
