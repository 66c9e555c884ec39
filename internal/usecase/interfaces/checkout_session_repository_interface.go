package interfaces

import (
	"context"
	"time"

	"newspaper_checkout/internal/domain/entities"
)

// ICheckoutSessionRepository is the wizard state store. Sessions are written
// at step boundaries only.
//
// Not-found is signalled by a zero CheckoutSession (empty ID), not an error.
type ICheckoutSessionRepository interface {
	Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
	// Update fails with a zero result once an order was claimed.
	Update(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	// ClaimOrder reserves orderID for the session and completes it. Only one
	// claim per session succeeds; the others get a zero result.
	ClaimOrder(ctx context.Context, id, orderID string, at time.Time) (entities.CheckoutSession, error)
}
