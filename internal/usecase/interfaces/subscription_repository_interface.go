package interfaces

import (
	"context"

	"newspaper_checkout/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for SubscriptionOrder.

type ISubscriptionRepository interface {
	Create(ctx context.Context, o entities.SubscriptionOrder) (entities.SubscriptionOrder, error)
	GetByID(ctx context.Context, id string) (entities.SubscriptionOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.SubscriptionOrder, error)
}
