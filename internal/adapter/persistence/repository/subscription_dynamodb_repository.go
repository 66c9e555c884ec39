package repository

import (
	"context"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

const (
	defaultSubscriptionsTableName = "subscriptions"
	subscriptionsCustomerIDIndex  = "customer_id-index"
)

type subscriptionItem struct {
	ID                  string `dynamodbav:"id"`
	CustomerID          string `dynamodbav:"customer_id"`
	SessionID           string `dynamodbav:"session_id"`
	Created             string `dynamodbav:"created"`
	StartDate           string `dynamodbav:"start_date"`
	EndDate             string `dynamodbav:"end_date"`
	DataPrivacyAccepted bool   `dynamodbav:"data_privacy_accepted"`
	TermsAccepted       bool   `dynamodbav:"terms_accepted"`
	Kind                string `dynamodbav:"kind"`
	DeliveryMethod      string `dynamodbav:"delivery_method"`
	PaymentType         string `dynamodbav:"payment_type"`
	IBANMasked          string `dynamodbav:"iban_masked,omitempty"`
	BillingCycle        string `dynamodbav:"billing_cycle"`
	Frequency           string `dynamodbav:"frequency"`
	MonthlyPrice        string `dynamodbav:"monthly_price"`
	AnnualPrice         string `dynamodbav:"annual_price"`
	EditionID           int64  `dynamodbav:"edition_id"`
	PostalCode          string `dynamodbav:"postal_code"`
}

// SubscriptionDynamoRepository persists SubscriptionOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client, tableName string) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSubscriptionsTableName),
	}
}

// Create yields an empty result when the order id is already taken.
func (r *SubscriptionDynamoRepository) Create(ctx context.Context, o entities.SubscriptionOrder) (entities.SubscriptionOrder, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(o))
	if err != nil {
		return entities.SubscriptionOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.SubscriptionOrder{}, nil
		}
		return entities.SubscriptionOrder{}, errors.Wrap(err, "put subscription")
	}
	return o, nil
}

func (r *SubscriptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubscriptionOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SubscriptionOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubscriptionOrder{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubscriptionOrder{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.SubscriptionOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})

	items := make([]entities.SubscriptionOrder, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it subscriptionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromSubscriptionItem(it))
		}
	}
	return items, nil
}

func toSubscriptionItem(o entities.SubscriptionOrder) subscriptionItem {
	return subscriptionItem{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		SessionID:           o.SessionID,
		Created:             formatTime(o.Created),
		StartDate:           formatTime(o.StartDate),
		EndDate:             formatTime(o.EndDate),
		DataPrivacyAccepted: o.DataPrivacyAccepted,
		TermsAccepted:       o.TermsAccepted,
		Kind:                o.Kind,
		DeliveryMethod:      string(o.DeliveryMethod),
		PaymentType:         string(o.PaymentType),
		IBANMasked:          o.IBANMasked,
		BillingCycle:        string(o.BillingCycle),
		Frequency:           string(o.Frequency),
		MonthlyPrice:        priceToString(o.MonthlyPrice),
		AnnualPrice:         priceToString(o.AnnualPrice),
		EditionID:           o.EditionID,
		PostalCode:          o.PostalCode,
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.SubscriptionOrder {
	return entities.SubscriptionOrder{
		ID:                  it.ID,
		CustomerID:          it.CustomerID,
		SessionID:           it.SessionID,
		Created:             parseTime(it.Created),
		StartDate:           parseTime(it.StartDate),
		EndDate:             parseTime(it.EndDate),
		DataPrivacyAccepted: it.DataPrivacyAccepted,
		TermsAccepted:       it.TermsAccepted,
		Kind:                it.Kind,
		DeliveryMethod:      entities.DeliveryMethod(it.DeliveryMethod),
		PaymentType:         entities.PaymentType(it.PaymentType),
		IBANMasked:          it.IBANMasked,
		BillingCycle:        entities.BillingCycle(it.BillingCycle),
		Frequency:           entities.Frequency(it.Frequency),
		MonthlyPrice:        priceFromString(it.MonthlyPrice),
		AnnualPrice:         priceFromString(it.AnnualPrice),
		EditionID:           it.EditionID,
		PostalCode:          it.PostalCode,
	}
}
