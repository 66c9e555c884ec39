package usecase

import (
	"context"
	"testing"
	"time"

	"newspaper_checkout/internal/domain/entities"
	mock_interfaces "newspaper_checkout/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

const customerID = "6f1c2f4e-8d0b-4f7e-9a41-2b8d5b0c9e11"

type orderMocks struct {
	sessions      *mock_interfaces.MockICheckoutSessionRepository
	customers     *mock_interfaces.MockICustomerRepository
	subscriptions *mock_interfaces.MockISubscriptionRepository
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, orderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderMocks{
		sessions:      mock_interfaces.NewMockICheckoutSessionRepository(ctrl),
		customers:     mock_interfaces.NewMockICustomerRepository(ctrl),
		subscriptions: mock_interfaces.NewMockISubscriptionRepository(ctrl),
	}
	uc := NewOrderUseCase(m.sessions, m.customers, m.subscriptions)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func registeredSession(t *testing.T) entities.CheckoutSession {
	t.Helper()
	s := frozenSession(t)
	s.CustomerID = customerID
	s.Step = entities.CheckoutStepCheckout
	return s
}

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	debit := PlaceOrderInput{PaymentType: entities.PaymentTypeDirectDebit, IBAN: "de89 3704 0044 0532 0130 00", AcceptTerms: true}

	t.Run("customer not registered", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(frozenSession(t), nil)

		_, err := uc.PlaceOrder(context.Background(), "sess-1", debit)
		if !errors.Is(err, ErrCustomerNotRegistered) {
			t.Fatalf("expected ErrCustomerNotRegistered, got %v", err)
		}
	})

	t.Run("terms not accepted", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(registeredSession(t), nil)

		in := debit
		in.AcceptTerms = false
		_, err := uc.PlaceOrder(context.Background(), "sess-1", in)
		if !errors.Is(err, ErrTermsNotAccepted) {
			t.Fatalf("expected ErrTermsNotAccepted, got %v", err)
		}
	})

	t.Run("direct debit needs iban", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(registeredSession(t), nil)

		in := debit
		in.IBAN = "   "
		_, err := uc.PlaceOrder(context.Background(), "sess-1", in)
		if !errors.Is(err, ErrIBANRequired) {
			t.Fatalf("expected ErrIBANRequired, got %v", err)
		}
	})

	t.Run("invalid payment type", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(registeredSession(t), nil)

		_, err := uc.PlaceOrder(context.Background(), "sess-1", PlaceOrderInput{PaymentType: "Cash", AcceptTerms: true})
		if !errors.Is(err, ErrInvalidPaymentType) {
			t.Fatalf("expected ErrInvalidPaymentType, got %v", err)
		}
	})

	t.Run("already placed", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		s := registeredSession(t)
		s.OrderID = "order-1"
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.subscriptions.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.SubscriptionOrder{ID: "order-1"}, nil)

		_, err := uc.PlaceOrder(context.Background(), "sess-1", debit)
		if !errors.Is(err, ErrOrderAlreadyPlaced) {
			t.Fatalf("expected ErrOrderAlreadyPlaced, got %v", err)
		}
	})

	t.Run("copies frozen summary", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		s := registeredSession(t)
		var claimedID string
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID}, nil)
		m.sessions.EXPECT().ClaimOrder(gomock.Any(), "sess-1", gomock.Any(), fixedNow).DoAndReturn(
			func(_ context.Context, id, orderID string, _ time.Time) (entities.CheckoutSession, error) {
				claimedID = orderID
				claimed := s
				claimed.OrderID = orderID
				claimed.Step = entities.CheckoutStepCompleted
				return claimed, nil
			},
		)
		m.subscriptions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SubscriptionOrder{})).DoAndReturn(
			func(_ context.Context, o entities.SubscriptionOrder) (entities.SubscriptionOrder, error) {
				if o.ID != claimedID {
					t.Fatalf("order id %q differs from claimed id %q", o.ID, claimedID)
				}
				if o.MonthlyPrice != s.Summary.Quote.MonthlyPrice || o.AnnualPrice != s.Summary.Quote.AnnualPrice {
					t.Fatalf("order prices differ from summary: %+v", o)
				}
				if o.DeliveryMethod != entities.DeliveryMethodDeliveryAgent || o.EditionID != 3 || o.PostalCode != "70173" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if !o.StartDate.Equal(fixedNow.AddDate(0, 0, 7)) || !o.EndDate.Equal(OpenEndDate) {
					t.Fatalf("unexpected dates: %v %v", o.StartDate, o.EndDate)
				}
				if o.IBANMasked != "DE****************3000" {
					t.Fatalf("unexpected masked iban %q", o.IBANMasked)
				}
				if o.Kind != entities.SubscriptionKindPrinted || !o.TermsAccepted || !o.DataPrivacyAccepted {
					t.Fatalf("unexpected flags: %+v", o)
				}
				return o, nil
			},
		)

		o, err := uc.PlaceOrder(context.Background(), "sess-1", debit)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if o.ID == "" || o.CustomerID != customerID {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("invoice stores no iban", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(registeredSession(t), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID}, nil)
		m.sessions.EXPECT().ClaimOrder(gomock.Any(), "sess-1", gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "sess-1"}, nil)
		m.subscriptions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.SubscriptionOrder) (entities.SubscriptionOrder, error) {
				if o.IBANMasked != "" {
					t.Fatalf("invoice must not store an iban")
				}
				return o, nil
			},
		)

		o, err := uc.PlaceOrder(context.Background(), "sess-1", PlaceOrderInput{PaymentType: entities.PaymentTypeInvoice, AcceptTerms: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if o.PaymentType != entities.PaymentTypeInvoice {
			t.Fatalf("unexpected payment type %q", o.PaymentType)
		}
	})

	t.Run("claim error writes no order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(registeredSession(t), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID}, nil)
		m.sessions.EXPECT().ClaimOrder(gomock.Any(), "sess-1", gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("throttled"))

		_, err := uc.PlaceOrder(context.Background(), "sess-1", debit)
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})

	t.Run("concurrent submit loses the claim", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(registeredSession(t), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID}, nil)
		m.sessions.EXPECT().ClaimOrder(gomock.Any(), "sess-1", gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, nil)

		_, err := uc.PlaceOrder(context.Background(), "sess-1", debit)
		if !errors.Is(err, ErrOrderAlreadyPlaced) {
			t.Fatalf("expected ErrOrderAlreadyPlaced, got %v", err)
		}
	})

	t.Run("save subscription error", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(registeredSession(t), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID}, nil)
		m.sessions.EXPECT().ClaimOrder(gomock.Any(), "sess-1", gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "sess-1"}, nil)
		m.subscriptions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SubscriptionOrder{}, errors.New("db"))

		_, err := uc.PlaceOrder(context.Background(), "sess-1", debit)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

// A failed order write followed by retries must end with exactly one order,
// stored under the id claimed by the first attempt.
func TestOrderUseCase_PlaceOrder_RetriesKeepOneOrder(t *testing.T) {
	uc, m := newOrderUseCase(t)
	debit := PlaceOrderInput{PaymentType: entities.PaymentTypeDirectDebit, IBAN: "DE89370400440532013000", AcceptTerms: true}

	stored := registeredSession(t)
	orders := map[string]entities.SubscriptionOrder{}
	failWrite := true

	m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").DoAndReturn(
		func(context.Context, string) (entities.CheckoutSession, error) { return stored, nil },
	).AnyTimes()
	m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID}, nil).AnyTimes()
	m.sessions.EXPECT().ClaimOrder(gomock.Any(), "sess-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, orderID string, _ time.Time) (entities.CheckoutSession, error) {
			if stored.OrderID != "" {
				return entities.CheckoutSession{}, nil
			}
			stored.OrderID = orderID
			stored.Step = entities.CheckoutStepCompleted
			return stored, nil
		},
	).Times(1)
	m.subscriptions.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.SubscriptionOrder, error) { return orders[id], nil },
	).AnyTimes()
	m.subscriptions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.SubscriptionOrder) (entities.SubscriptionOrder, error) {
			if failWrite {
				failWrite = false
				return entities.SubscriptionOrder{}, errors.New("timeout")
			}
			if _, ok := orders[o.ID]; ok {
				return entities.SubscriptionOrder{}, nil
			}
			orders[o.ID] = o
			return o, nil
		},
	).Times(2)

	if _, err := uc.PlaceOrder(context.Background(), "sess-1", debit); err == nil {
		t.Fatalf("expected the first attempt to fail")
	}
	claimedID := stored.OrderID
	if claimedID == "" {
		t.Fatalf("expected the session to be claimed")
	}

	o, err := uc.PlaceOrder(context.Background(), "sess-1", debit)
	if err != nil {
		t.Fatalf("retry: unexpected err: %v", err)
	}
	if o.ID != claimedID {
		t.Fatalf("retry stored order %q, want claimed id %q", o.ID, claimedID)
	}

	_, err = uc.PlaceOrder(context.Background(), "sess-1", debit)
	if !errors.Is(err, ErrOrderAlreadyPlaced) {
		t.Fatalf("expected ErrOrderAlreadyPlaced, got %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.GetOrder(context.Background(), "nope")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.subscriptions.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.SubscriptionOrder{}, nil)

		_, err := uc.GetOrder(context.Background(), customerID)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_ListCustomerOrders(t *testing.T) {
	t.Run("unknown customer", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{}, nil)

		_, err := uc.ListCustomerOrders(context.Background(), customerID)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID}, nil)
		m.subscriptions.EXPECT().ListByCustomerID(gomock.Any(), customerID).Return([]entities.SubscriptionOrder{{ID: "o1"}, {}, {ID: "o2"}}, nil)

		orders, err := uc.ListCustomerOrders(context.Background(), customerID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
	})
}

func TestMaskIBAN(t *testing.T) {
	if got := MaskIBAN(NormalizeIBAN("de89 3704 0044 0532 0130 00")); got != "DE****************3000" {
		t.Fatalf("unexpected mask %q", got)
	}
	if got := MaskIBAN("DE12"); got != "****" {
		t.Fatalf("unexpected mask %q", got)
	}
}
