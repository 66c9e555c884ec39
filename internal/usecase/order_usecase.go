package usecase

import (
	"context"
	"strings"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/infrastructure/logger"
	"newspaper_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// OrderStartDelay is the gap between ordering and the first delivery.
const OrderStartDelay = 7 * 24 * time.Hour

// OpenEndDate marks a subscription without a fixed end.
var OpenEndDate = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

type PlaceOrderInput struct {
	PaymentType entities.PaymentType
	IBAN        string
	AcceptTerms bool
}

// IOrderUseCase submits the subscription for a registered customer.
//
//   - POST /checkout/sessions/{id}/order => PlaceOrder()
//   - GET  /orders/{id} => GetOrder()
//   - GET  /customers/{id}/orders => ListCustomerOrders()
type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (entities.SubscriptionOrder, error)
	GetOrder(ctx context.Context, id string) (entities.SubscriptionOrder, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]entities.SubscriptionOrder, error)
}

type OrderUseCase struct {
	sessions      interfaces.ICheckoutSessionRepository
	customers     interfaces.ICustomerRepository
	subscriptions interfaces.ISubscriptionRepository
	now           func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	customers interfaces.ICustomerRepository,
	subscriptions interfaces.ISubscriptionRepository,
) *OrderUseCase {
	return &OrderUseCase{
		sessions:      sessions,
		customers:     customers,
		subscriptions: subscriptions,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// PlaceOrder copies the frozen summary into a subscription order. Prices are
// never recomputed here.
//
// The session is claimed before the order is written, so concurrent or
// repeated submits cannot create a second order. A claim whose order write
// failed is resumed with the same order id on the next submit.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (entities.SubscriptionOrder, error) {
	s, err := loadSession(ctx, u.sessions, sessionID, u.now())
	if err != nil {
		return entities.SubscriptionOrder{}, err
	}
	if s.OrderID != "" {
		placed, err := u.subscriptions.GetByID(ctx, s.OrderID)
		if err != nil {
			return entities.SubscriptionOrder{}, err
		}
		if placed.ID != "" {
			return entities.SubscriptionOrder{}, ErrOrderAlreadyPlaced
		}
		logger.L.Infow("[order][usecase] resuming claimed order", "session_id", s.ID, "order_id", s.OrderID)
	}
	if !s.Frozen() {
		return entities.SubscriptionOrder{}, ErrConfigurationNotConfirmed
	}
	if s.CustomerID == "" {
		return entities.SubscriptionOrder{}, ErrCustomerNotRegistered
	}
	if !in.AcceptTerms {
		return entities.SubscriptionOrder{}, ErrTermsNotAccepted
	}
	if !in.PaymentType.Valid() {
		return entities.SubscriptionOrder{}, ErrInvalidPaymentType
	}
	iban := NormalizeIBAN(in.IBAN)
	if in.PaymentType == entities.PaymentTypeDirectDebit && iban == "" {
		return entities.SubscriptionOrder{}, ErrIBANRequired
	}

	customer, err := u.customers.GetByID(ctx, s.CustomerID)
	if err != nil {
		return entities.SubscriptionOrder{}, err
	}
	if customer.ID == "" {
		return entities.SubscriptionOrder{}, ErrCustomerNotRegistered
	}

	now := u.now()
	orderID := s.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
		claimed, err := u.sessions.ClaimOrder(ctx, s.ID, orderID, now)
		if err != nil {
			logger.L.Errorw("[order][usecase] claim session failed", "session_id", s.ID, "err", err)
			return entities.SubscriptionOrder{}, err
		}
		if claimed.ID == "" {
			logger.L.Infow("[order][usecase] session already claimed", "session_id", s.ID)
			return entities.SubscriptionOrder{}, ErrOrderAlreadyPlaced
		}
	}

	summary := *s.Summary
	o := entities.SubscriptionOrder{
		ID:                  orderID,
		CustomerID:          customer.ID,
		SessionID:           s.ID,
		Created:             now,
		StartDate:           now.Add(OrderStartDelay),
		EndDate:             OpenEndDate,
		DataPrivacyAccepted: true,
		TermsAccepted:       true,
		Kind:                entities.SubscriptionKindPrinted,
		DeliveryMethod:      summary.DeliveryMethod,
		PaymentType:         in.PaymentType,
		BillingCycle:        summary.BillingCycle,
		Frequency:           summary.Frequency,
		MonthlyPrice:        summary.Quote.MonthlyPrice,
		AnnualPrice:         summary.Quote.AnnualPrice,
		EditionID:           summary.EditionID,
		PostalCode:          summary.PostalCode,
	}
	if in.PaymentType == entities.PaymentTypeDirectDebit {
		o.IBANMasked = MaskIBAN(iban)
	}

	created, err := u.subscriptions.Create(ctx, o)
	if err != nil {
		logger.L.Errorw("[order][usecase] save subscription failed", "session_id", s.ID, "order_id", orderID, "err", err)
		return entities.SubscriptionOrder{}, err
	}
	if created.ID == "" {
		return entities.SubscriptionOrder{}, ErrOrderAlreadyPlaced
	}

	logger.L.Infow("[order][usecase] order placed", "order_id", created.ID, "customer_id", customer.ID,
		"payment_type", created.PaymentType, "monthly", created.MonthlyPrice, "annual", created.AnnualPrice)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.SubscriptionOrder, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.SubscriptionOrder{}, ErrInvalidOrderID
	}
	o, err := u.subscriptions.GetByID(ctx, id)
	if err != nil {
		return entities.SubscriptionOrder{}, err
	}
	if o.ID == "" {
		return entities.SubscriptionOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListCustomerOrders(ctx context.Context, customerID string) ([]entities.SubscriptionOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if _, err := uuid.Parse(customerID); err != nil {
		return nil, ErrInvalidCustomerID
	}
	c, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, ErrCustomerNotFound
	}
	orders, err := u.subscriptions.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return lo.Filter(orders, func(o entities.SubscriptionOrder, _ int) bool { return o.ID != "" }), nil
}

// NormalizeIBAN strips blanks and upper-cases the account number.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// MaskIBAN keeps the country code and the last four characters.
func MaskIBAN(iban string) string {
	if len(iban) <= 6 {
		return strings.Repeat("*", len(iban))
	}
	return iban[:2] + strings.Repeat("*", len(iban)-6) + iban[len(iban)-4:]
}
