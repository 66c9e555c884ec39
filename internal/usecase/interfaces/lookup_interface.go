package interfaces

import (
	"context"

	"newspaper_checkout/internal/domain/entities"
)

// IDistanceLookup resolves the travel distance from the publishing house.
//
// An unknown postal code is not an error: it is reported through
// DistanceQuote.Status. Errors mean the service could not answer.
type IDistanceLookup interface {
	GetDistance(ctx context.Context, postalCode string) (entities.DistanceQuote, error)
}

// IEditionLookup lists the local editions for a postal code.
//
// An empty catalog means there is no local edition. Errors mean the service
// could not answer or sent data that could not be normalized.
type IEditionLookup interface {
	GetLocalEditions(ctx context.Context, postalCode string) (entities.EditionCatalog, error)
}
