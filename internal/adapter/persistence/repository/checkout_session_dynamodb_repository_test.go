package repository

import (
	"testing"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenCheckoutSession(t *testing.T) entities.CheckoutSession {
	t.Helper()
	now := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	editionID := int64(3)
	catalog := entities.EditionCatalog{PostalCode: "71032", Editions: []entities.Edition{{ID: 3, Name: "Böblinger Bote"}}}
	draft, _, err := pricing.PriceDraft(entities.SubscriptionDraft{
		EditionID:      &editionID,
		Frequency:      entities.FrequencyWeekend,
		DeliveryMethod: entities.DeliveryMethodPost,
		BillingCycle:   entities.BillingCycleAnnual,
		PostalCode:     "71032",
		DistanceKm:     30,
	})
	require.NoError(t, err)
	summary, err := pricing.BuildSummary(draft, catalog, "Böblingen", true, now)
	require.NoError(t, err)

	return entities.CheckoutSession{
		ID:         "sess-1",
		Step:       entities.CheckoutStepRegister,
		PostalCode: "71032",
		City:       "Böblingen",
		Distance:   &entities.DistanceQuote{PostalCode: "71032", DistanceKm: 30, Status: entities.DistanceStatusResolved},
		Catalog:    &catalog,
		Draft:      &draft,
		Summary:    &summary,
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiresAt:  now.Add(24 * time.Hour),
	}
}

func TestCheckoutSessionItem_KeepsFrozenSummary(t *testing.T) {
	s := frozenCheckoutSession(t)

	av, err := attributevalue.MarshalMap(toCheckoutSessionItem(s))
	require.NoError(t, err)

	ttl, ok := av["expires_at"].(*types.AttributeValueMemberN)
	require.True(t, ok, "expires_at must be a number for the TTL to apply")
	assert.Equal(t, "1772530200", ttl.Value)

	summary, ok := av["summary"].(*types.AttributeValueMemberM)
	require.True(t, ok)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "124.09"}, summary.Value["annual_price"])

	var it checkoutSessionItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	got := fromCheckoutSessionItem(it)

	assert.Equal(t, *s.Summary, *got.Summary)
	assert.Equal(t, *s.Draft, *got.Draft)
	assert.Equal(t, *s.Catalog, *got.Catalog)
	assert.True(t, got.ExpiresAt.Equal(s.ExpiresAt))
	assert.True(t, got.Frozen())
}

func TestCheckoutSessionItem_AddressOnly(t *testing.T) {
	s := entities.CheckoutSession{ID: "sess-2", Step: entities.CheckoutStepConfigure, PostalCode: "70173", City: "Stuttgart"}

	got := fromCheckoutSessionItem(toCheckoutSessionItem(s))

	assert.Nil(t, got.Draft)
	assert.Nil(t, got.Summary)
	assert.True(t, got.ExpiresAt.IsZero())
	assert.False(t, got.Frozen())
}

func TestPriceStrings(t *testing.T) {
	assert.Equal(t, "15.00", priceToString(15))
	assert.Equal(t, "172.69", priceToString(172.69))
	assert.Equal(t, 172.69, priceFromString("172.69"))
	assert.Equal(t, 0.0, priceFromString("n/a"))
}
