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
	defaultCustomersTableName = "customers"
	emailKeyPrefix            = "email#"
)

type addressItem struct {
	Street1    string `dynamodbav:"street1"`
	Street2    string `dynamodbav:"street2,omitempty"`
	City       string `dynamodbav:"city"`
	PostalCode string `dynamodbav:"postal_code"`
}

type customerItem struct {
	ID              string      `dynamodbav:"id"`
	Firstname       string      `dynamodbav:"firstname"`
	Lastname        string      `dynamodbav:"lastname"`
	Companyname     string      `dynamodbav:"companyname,omitempty"`
	Email           string      `dynamodbav:"email"`
	SessionID       string      `dynamodbav:"session_id,omitempty"`
	PasswordHash    string      `dynamodbav:"password_hash"`
	Phone           string      `dynamodbav:"phone,omitempty"`
	DeliveryAddress addressItem `dynamodbav:"delivery_address"`
	BillingAddress  addressItem `dynamodbav:"billing_address"`
	CreatedAt       string      `dynamodbav:"created_at"`
}

// emailKeyItem reserves an email address for one customer.
type emailKeyItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every customer is written together with an "email#<email>" item in the same
// table. The pair is one transaction, which keeps emails unique.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCustomersTableName),
	}
}

// Create writes the customer and its email key atomically. An existing id or
// an email that is already taken yields an empty result.
func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	customerAV, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	emailAV, err := attributevalue.MarshalMap(emailKeyItem{ID: emailKey(c.Email), CustomerID: c.ID})
	if err != nil {
		return entities.Customer{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     customerAV,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     emailAV,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, errors.Wrap(err, "put customer")
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

// GetByEmail resolves the email key with a consistent read. Emails are
// stored lower-cased.
func (r *CustomerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: emailKey(email)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it emailKeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	if it.CustomerID == "" {
		return entities.Customer{}, nil
	}
	return r.GetByID(ctx, it.CustomerID)
}

func emailKey(email string) string {
	return emailKeyPrefix + email
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{Street1: a.Street1, Street2: a.Street2, City: a.City, PostalCode: a.PostalCode}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{Street1: it.Street1, Street2: it.Street2, City: it.City, PostalCode: it.PostalCode}
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:              c.ID,
		Firstname:       c.Firstname,
		Lastname:        c.Lastname,
		Companyname:     c.Companyname,
		Email:           c.Email,
		SessionID:       c.SessionID,
		PasswordHash:    c.PasswordHash,
		Phone:           c.Phone,
		DeliveryAddress: toAddressItem(c.DeliveryAddress),
		BillingAddress:  toAddressItem(c.BillingAddress),
		CreatedAt:       formatTime(c.CreatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:              it.ID,
		Firstname:       it.Firstname,
		Lastname:        it.Lastname,
		Companyname:     it.Companyname,
		Email:           it.Email,
		SessionID:       it.SessionID,
		PasswordHash:    it.PasswordHash,
		Phone:           it.Phone,
		DeliveryAddress: fromAddressItem(it.DeliveryAddress),
		BillingAddress:  fromAddressItem(it.BillingAddress),
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
