package repository

import (
	"context"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
	"newspaper_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	defaultSessionsTableName = "checkout_sessions"

	// order_id is written by ClaimOrder only.
	updateCondition     = "attribute_exists(#id) AND attribute_not_exists(order_id)"
	claimOrderCondition = "attribute_exists(#id) AND attribute_not_exists(#order_id)"
)

type checkoutSessionItem struct {
	ID         string        `dynamodbav:"id"`
	Step       string        `dynamodbav:"step"`
	PostalCode string        `dynamodbav:"postal_code,omitempty"`
	City       string        `dynamodbav:"city,omitempty"`
	Distance   *distanceItem `dynamodbav:"distance,omitempty"`
	Catalog    *catalogItem  `dynamodbav:"catalog,omitempty"`
	Draft      *draftItem    `dynamodbav:"draft,omitempty"`
	Summary    *summaryItem  `dynamodbav:"summary,omitempty"`
	CustomerID string        `dynamodbav:"customer_id,omitempty"`
	OrderID    string        `dynamodbav:"order_id,omitempty"`
	CreatedAt  string        `dynamodbav:"created_at"`
	UpdatedAt  string        `dynamodbav:"updated_at"`
	ExpiresAt  int64         `dynamodbav:"expires_at"`
}

type distanceItem struct {
	PostalCode string  `dynamodbav:"postal_code"`
	DistanceKm float64 `dynamodbav:"distance_km"`
	Status     string  `dynamodbav:"status"`
}

type editionItem struct {
	ID      int64  `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Picture string `dynamodbav:"picture,omitempty"`
}

type catalogItem struct {
	PostalCode string        `dynamodbav:"postal_code"`
	Editions   []editionItem `dynamodbav:"editions"`
}

type draftItem struct {
	EditionID      *int64  `dynamodbav:"edition_id,omitempty"`
	Frequency      string  `dynamodbav:"frequency"`
	DeliveryMethod string  `dynamodbav:"delivery_method,omitempty"`
	BillingCycle   string  `dynamodbav:"billing_cycle"`
	MonthlyPrice   string  `dynamodbav:"monthly_price"`
	AnnualPrice    string  `dynamodbav:"annual_price"`
	PostalCode     string  `dynamodbav:"postal_code"`
	DistanceKm     float64 `dynamodbav:"distance_km"`
}

type summaryItem struct {
	EditionID      int64   `dynamodbav:"edition_id"`
	EditionName    string  `dynamodbav:"edition_name"`
	Frequency      string  `dynamodbav:"frequency"`
	DeliveryMethod string  `dynamodbav:"delivery_method"`
	BillingCycle   string  `dynamodbav:"billing_cycle"`
	PostalCode     string  `dynamodbav:"postal_code"`
	City           string  `dynamodbav:"city"`
	DistanceKm     float64 `dynamodbav:"distance_km"`
	MonthlyPrice   string  `dynamodbav:"monthly_price"`
	AnnualPrice    string  `dynamodbav:"annual_price"`
	AnnualSavings  string  `dynamodbav:"annual_savings"`
	ShowSavings    bool    `dynamodbav:"show_savings"`
	FrozenAt       string  `dynamodbav:"frozen_at"`
}

// CheckoutSessionDynamoRepository persists CheckoutSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)

type CheckoutSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutSessionRepository = (*CheckoutSessionDynamoRepository)(nil)

func NewCheckoutSessionDynamoRepository(ddb *dynamodb.Client, tableName string) *CheckoutSessionDynamoRepository {
	return &CheckoutSessionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSessionsTableName),
	}
}

func (r *CheckoutSessionDynamoRepository) Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	if err := r.put(ctx, s, "attribute_not_exists(#id)"); err != nil {
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func (r *CheckoutSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutSession{}, errors.Wrapf(err, "get session %s", id)
	}
	if len(out.Item) == 0 {
		return entities.CheckoutSession{}, nil
	}

	var it checkoutSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutSession{}, err
	}
	return fromCheckoutSessionItem(it), nil
}

// Update replaces the stored session. A session that no longer exists (e.g.
// removed by TTL) or that already holds an order yields an empty result.
func (r *CheckoutSessionDynamoRepository) Update(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	if err := r.put(ctx, s, updateCondition); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CheckoutSession{}, nil
		}
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

// ClaimOrder sets order_id and completes the session in one conditional
// write, so a session can hold one order only.
func (r *CheckoutSessionDynamoRepository) ClaimOrder(ctx context.Context, id, orderID string, at time.Time) (entities.CheckoutSession, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String(claimOrderCondition),
		UpdateExpression:    aws.String("SET #order_id = :order_id, #step = :step, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id":   &types.AttributeValueMemberS{Value: orderID},
			":step":       &types.AttributeValueMemberS{Value: string(entities.CheckoutStepCompleted)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#order_id":   "order_id",
			"#step":       "step",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CheckoutSession{}, nil
		}
		return entities.CheckoutSession{}, errors.Wrapf(err, "claim order for session %s", id)
	}
	if len(out.Attributes) == 0 {
		return entities.CheckoutSession{}, nil
	}

	var it checkoutSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CheckoutSession{}, err
	}
	return fromCheckoutSessionItem(it), nil
}

func (r *CheckoutSessionDynamoRepository) put(ctx context.Context, s entities.CheckoutSession, condition string) error {
	av, err := attributevalue.MarshalMap(toCheckoutSessionItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toCheckoutSessionItem(s entities.CheckoutSession) checkoutSessionItem {
	it := checkoutSessionItem{
		ID:         s.ID,
		Step:       string(s.Step),
		PostalCode: s.PostalCode,
		City:       s.City,
		CustomerID: s.CustomerID,
		OrderID:    s.OrderID,
		CreatedAt:  formatTime(s.CreatedAt),
		UpdatedAt:  formatTime(s.UpdatedAt),
	}
	if !s.ExpiresAt.IsZero() {
		it.ExpiresAt = s.ExpiresAt.Unix()
	}
	if s.Distance != nil {
		it.Distance = &distanceItem{
			PostalCode: s.Distance.PostalCode,
			DistanceKm: s.Distance.DistanceKm,
			Status:     string(s.Distance.Status),
		}
	}
	if s.Catalog != nil {
		it.Catalog = &catalogItem{
			PostalCode: s.Catalog.PostalCode,
			Editions: lo.Map(s.Catalog.Editions, func(e entities.Edition, _ int) editionItem {
				return editionItem{ID: e.ID, Name: e.Name, Picture: e.Picture}
			}),
		}
	}
	if s.Draft != nil {
		it.Draft = &draftItem{
			EditionID:      s.Draft.EditionID,
			Frequency:      string(s.Draft.Frequency),
			DeliveryMethod: string(s.Draft.DeliveryMethod),
			BillingCycle:   string(s.Draft.BillingCycle),
			MonthlyPrice:   priceToString(s.Draft.MonthlyPrice),
			AnnualPrice:    priceToString(s.Draft.AnnualPrice),
			PostalCode:     s.Draft.PostalCode,
			DistanceKm:     s.Draft.DistanceKm,
		}
	}
	if s.Summary != nil {
		it.Summary = &summaryItem{
			EditionID:      s.Summary.EditionID,
			EditionName:    s.Summary.EditionName,
			Frequency:      string(s.Summary.Frequency),
			DeliveryMethod: string(s.Summary.DeliveryMethod),
			BillingCycle:   string(s.Summary.BillingCycle),
			PostalCode:     s.Summary.PostalCode,
			City:           s.Summary.City,
			DistanceKm:     s.Summary.DistanceKm,
			MonthlyPrice:   priceToString(s.Summary.Quote.MonthlyPrice),
			AnnualPrice:    priceToString(s.Summary.Quote.AnnualPrice),
			AnnualSavings:  priceToString(s.Summary.Quote.AnnualSavings),
			ShowSavings:    s.Summary.Quote.ShowSavings,
			FrozenAt:       formatTime(s.Summary.FrozenAt),
		}
	}
	return it
}

func fromCheckoutSessionItem(it checkoutSessionItem) entities.CheckoutSession {
	s := entities.CheckoutSession{
		ID:         it.ID,
		Step:       entities.CheckoutStep(it.Step),
		PostalCode: it.PostalCode,
		City:       it.City,
		CustomerID: it.CustomerID,
		OrderID:    it.OrderID,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
	if it.ExpiresAt > 0 {
		s.ExpiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	if it.Distance != nil {
		s.Distance = &entities.DistanceQuote{
			PostalCode: it.Distance.PostalCode,
			DistanceKm: it.Distance.DistanceKm,
			Status:     entities.DistanceStatus(it.Distance.Status),
		}
	}
	if it.Catalog != nil {
		s.Catalog = &entities.EditionCatalog{
			PostalCode: it.Catalog.PostalCode,
			Editions: lo.Map(it.Catalog.Editions, func(e editionItem, _ int) entities.Edition {
				return entities.Edition{ID: e.ID, Name: e.Name, Picture: e.Picture}
			}),
		}
	}
	if it.Draft != nil {
		s.Draft = &entities.SubscriptionDraft{
			EditionID:      it.Draft.EditionID,
			Frequency:      entities.Frequency(it.Draft.Frequency),
			DeliveryMethod: entities.DeliveryMethod(it.Draft.DeliveryMethod),
			BillingCycle:   entities.BillingCycle(it.Draft.BillingCycle),
			MonthlyPrice:   priceFromString(it.Draft.MonthlyPrice),
			AnnualPrice:    priceFromString(it.Draft.AnnualPrice),
			PostalCode:     it.Draft.PostalCode,
			DistanceKm:     it.Draft.DistanceKm,
		}
	}
	if it.Summary != nil {
		s.Summary = fromSummaryItem(*it.Summary)
	}
	return s
}

// fromSummaryItem restores the display labels from the stored values.
func fromSummaryItem(it summaryItem) *entities.QuoteSummary {
	q := entities.PriceQuote{
		MonthlyPrice:  priceFromString(it.MonthlyPrice),
		AnnualPrice:   priceFromString(it.AnnualPrice),
		AnnualSavings: priceFromString(it.AnnualSavings),
		ShowSavings:   it.ShowSavings,
	}
	sum := &entities.QuoteSummary{
		EditionID:           it.EditionID,
		EditionName:         it.EditionName,
		Frequency:           entities.Frequency(it.Frequency),
		FrequencyLabel:      pricing.FrequencyLabel(entities.Frequency(it.Frequency)),
		DeliveryMethod:      entities.DeliveryMethod(it.DeliveryMethod),
		DeliveryMethodLabel: pricing.DeliveryMethodLabel(entities.DeliveryMethod(it.DeliveryMethod)),
		BillingCycle:        entities.BillingCycle(it.BillingCycle),
		PostalCode:          it.PostalCode,
		City:                it.City,
		DistanceKm:          it.DistanceKm,
		Quote:               q,
		MonthlyPriceLabel:   pricing.FormatPrice(q.MonthlyPrice),
		AnnualPriceLabel:    pricing.FormatPrice(q.AnnualPrice),
		FrozenAt:            parseTime(it.FrozenAt),
	}
	if q.ShowSavings {
		sum.SavingsLabel = "Save " + pricing.FormatPrice(q.AnnualSavings)
	}
	return sum
}
