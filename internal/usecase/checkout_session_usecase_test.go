package usecase

import (
	"context"
	"testing"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
	mock_interfaces "newspaper_checkout/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

type checkoutMocks struct {
	sessions *mock_interfaces.MockICheckoutSessionRepository
	distance *mock_interfaces.MockIDistanceLookup
	editions *mock_interfaces.MockIEditionLookup
}

func newCheckoutUseCase(t *testing.T) (*CheckoutSessionUseCase, checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		sessions: mock_interfaces.NewMockICheckoutSessionRepository(ctrl),
		distance: mock_interfaces.NewMockIDistanceLookup(ctrl),
		editions: mock_interfaces.NewMockIEditionLookup(ctrl),
	}
	uc := NewCheckoutSessionUseCase(m.sessions, m.distance, m.editions, pricing.DefaultPolicy, time.Hour)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func stuttgartCatalog(postalCode string) entities.EditionCatalog {
	return entities.EditionCatalog{
		PostalCode: postalCode,
		Editions: []entities.Edition{
			{ID: 3, Name: "Stuttgarter Zeitung"},
			{ID: 7, Name: "Esslinger Zeitung"},
		},
	}
}

func resolved(postalCode string, km float64) entities.DistanceQuote {
	return entities.DistanceQuote{PostalCode: postalCode, DistanceKm: km, Status: entities.DistanceStatusResolved}
}

func newSession(postalCode string) entities.CheckoutSession {
	return entities.CheckoutSession{
		ID:         "sess-1",
		Step:       entities.CheckoutStepConfigure,
		PostalCode: postalCode,
		City:       "Stuttgart",
		CreatedAt:  fixedNow.Add(-time.Minute),
		UpdatedAt:  fixedNow.Add(-time.Minute),
		ExpiresAt:  fixedNow.Add(time.Hour),
	}
}

// loadedSession is a session after a successful configure load.
func loadedSession(t *testing.T, postalCode string, km float64, catalog entities.EditionCatalog, method entities.DeliveryMethod) entities.CheckoutSession {
	t.Helper()
	s := newSession(postalCode)
	dq := resolved(postalCode, km)
	s.Distance = &dq
	s.Catalog = &catalog
	draft := entities.SubscriptionDraft{
		EditionID:      firstEditionID(catalog),
		Frequency:      entities.FrequencyDaily,
		DeliveryMethod: method,
		BillingCycle:   entities.BillingCycleMonthly,
		PostalCode:     postalCode,
		DistanceKm:     km,
	}
	priced, _, err := pricing.PriceDraft(draft)
	if err != nil {
		t.Fatalf("price draft: %v", err)
	}
	s.Draft = &priced
	return s
}

func echoUpdate(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	return s, nil
}

func hasNotice(notices []Notice, code string) bool {
	for _, n := range notices {
		if n.Code == code {
			return true
		}
	}
	return false
}

func TestCheckoutSessionUseCase_StartSession(t *testing.T) {
	t.Run("invalid postal code", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		_, err := uc.StartSession(context.Background(), "7070", "Stuttgart")
		if !errors.Is(err, ErrInvalidPostalCode) {
			t.Fatalf("expected ErrInvalidPostalCode, got %v", err)
		}
	})

	t.Run("missing city", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		_, err := uc.StartSession(context.Background(), "70173", "  ")
		if !errors.Is(err, ErrInvalidCity) {
			t.Fatalf("expected ErrInvalidCity, got %v", err)
		}
	})

	t.Run("distance service down", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.distance.EXPECT().GetDistance(gomock.Any(), "70173").Return(entities.DistanceQuote{}, errors.New("timeout"))

		_, err := uc.StartSession(context.Background(), "70173", "Stuttgart")
		if !errors.Is(err, ErrDistanceLookupFailed) {
			t.Fatalf("expected ErrDistanceLookupFailed, got %v", err)
		}
	})

	t.Run("unknown postal code", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.distance.EXPECT().GetDistance(gomock.Any(), "99999").Return(entities.DistanceQuote{PostalCode: "99999", Status: entities.DistanceStatusNotFound}, nil)

		_, err := uc.StartSession(context.Background(), "99999", "Nowhere")
		if !errors.Is(err, ErrPostalCodeNotFound) {
			t.Fatalf("expected ErrPostalCodeNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.distance.EXPECT().GetDistance(gomock.Any(), "70173").Return(resolved("70173", 18.4), nil)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CheckoutSession{})).DoAndReturn(
			func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
				if s.ID == "" || s.PostalCode != "70173" || s.City != "Stuttgart" || s.Step != entities.CheckoutStepConfigure {
					t.Fatalf("unexpected session: %+v", s)
				}
				if s.Distance == nil || s.Distance.DistanceKm != 18.4 {
					t.Fatalf("expected distance on session, got %+v", s.Distance)
				}
				if !s.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
					t.Fatalf("unexpected expiry %v", s.ExpiresAt)
				}
				return s, nil
			},
		)

		s, err := uc.StartSession(context.Background(), " 70173 ", " Stuttgart ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if s.ID == "" {
			t.Fatalf("expected id")
		}
	})
}

func TestCheckoutSessionUseCase_LoadConfiguration(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		_, err := uc.LoadConfiguration(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{}, nil)

		_, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := newSession("70173")
		s.ExpiresAt = fixedNow.Add(-time.Second)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("no postal code redirects to address step", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession(""), nil)

		_, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionIncomplete) {
			t.Fatalf("expected ErrSessionIncomplete, got %v", err)
		}
	})

	t.Run("defaults to courier when eligible", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("70173"), nil)
		m.distance.EXPECT().GetDistance(gomock.Any(), "70173").Return(resolved("70173", 18.4), nil)
		m.editions.EXPECT().GetLocalEditions(gomock.Any(), "70173").Return(stuttgartCatalog("70173"), nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		v, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !v.CourierEligible || v.Draft.DeliveryMethod != entities.DeliveryMethodDeliveryAgent {
			t.Fatalf("expected courier default, got %+v", v.Draft)
		}
		if v.Draft.EditionID == nil || *v.Draft.EditionID != 3 {
			t.Fatalf("expected first edition, got %v", v.Draft.EditionID)
		}
		if v.Draft.Frequency != entities.FrequencyDaily || v.Draft.BillingCycle != entities.BillingCycleMonthly {
			t.Fatalf("unexpected defaults: %+v", v.Draft)
		}
		if v.Quote.MonthlyPrice != 15.99 || v.Draft.MonthlyPrice != 15.99 {
			t.Fatalf("expected 15.99, got %+v", v.Quote)
		}
		if v.PriceTable[entities.FrequencyWeekend].MonthlyPrice != 8.99 {
			t.Fatalf("unexpected weekend price: %+v", v.PriceTable)
		}
		if len(v.Notices) != 0 {
			t.Fatalf("expected no notices, got %+v", v.Notices)
		}
	})

	t.Run("far address defaults to post with surcharge", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("80331"), nil)
		m.distance.EXPECT().GetDistance(gomock.Any(), "80331").Return(resolved("80331", 190), nil)
		m.editions.EXPECT().GetLocalEditions(gomock.Any(), "80331").Return(stuttgartCatalog("80331"), nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		v, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if v.CourierEligible || v.Draft.DeliveryMethod != entities.DeliveryMethodPost {
			t.Fatalf("expected post, got %+v", v.Draft)
		}
		if v.Quote.MonthlyPrice != 20.99 {
			t.Fatalf("expected 20.99, got %v", v.Quote.MonthlyPrice)
		}
	})

	t.Run("stored courier selection reset when no longer eligible", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 18.4, stuttgartCatalog("70173"), entities.DeliveryMethodDeliveryAgent)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.distance.EXPECT().GetDistance(gomock.Any(), "70173").Return(resolved("70173", 55), nil)
		m.editions.EXPECT().GetLocalEditions(gomock.Any(), "70173").Return(stuttgartCatalog("70173"), nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
				if s.Draft.DeliveryMethod != entities.DeliveryMethodPost {
					t.Fatalf("ineligible courier must not be stored: %+v", s.Draft)
				}
				return s, nil
			},
		)

		v, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !hasNotice(v.Notices, NoticeDeliveryMethodReset) {
			t.Fatalf("expected reset notice, got %+v", v.Notices)
		}
		if v.Quote.MonthlyPrice != 20.99 {
			t.Fatalf("expected repriced 20.99, got %v", v.Quote.MonthlyPrice)
		}
	})

	t.Run("no local edition", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("70173"), nil)
		m.distance.EXPECT().GetDistance(gomock.Any(), "70173").Return(resolved("70173", 10), nil)
		m.editions.EXPECT().GetLocalEditions(gomock.Any(), "70173").Return(entities.EditionCatalog{PostalCode: "70173"}, nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		v, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if v.CourierEligible || v.Draft.DeliveryMethod != entities.DeliveryMethodPost {
			t.Fatalf("courier requires a local edition: %+v", v.Draft)
		}
		if v.Draft.EditionID != nil {
			t.Fatalf("expected no edition, got %v", *v.Draft.EditionID)
		}
		if !hasNotice(v.Notices, NoticeNoLocalEdition) {
			t.Fatalf("expected no local edition notice, got %+v", v.Notices)
		}
	})

	t.Run("edition lookup failure", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("70173"), nil)
		m.distance.EXPECT().GetDistance(gomock.Any(), "70173").Return(resolved("70173", 10), nil).AnyTimes()
		m.editions.EXPECT().GetLocalEditions(gomock.Any(), "70173").Return(entities.EditionCatalog{}, errors.New("502"))

		_, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if !errors.Is(err, ErrEditionLookupFailed) {
			t.Fatalf("expected ErrEditionLookupFailed, got %v", err)
		}
	})

	t.Run("frozen configuration skips lookups", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 18.4, stuttgartCatalog("70173"), entities.DeliveryMethodDeliveryAgent)
		summary, err := pricing.BuildSummary(*s.Draft, *s.Catalog, s.City, true, fixedNow)
		if err != nil {
			t.Fatalf("build summary: %v", err)
		}
		s.Summary = &summary
		s.Step = entities.CheckoutStepRegister
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		v, err := uc.LoadConfiguration(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if v.Quote != summary.Quote {
			t.Fatalf("expected frozen quote, got %+v", v.Quote)
		}
	})
}

func TestCheckoutSessionUseCase_UpdateConfiguration(t *testing.T) {
	courier := entities.DeliveryMethodDeliveryAgent
	annual := entities.BillingCycleAnnual
	weekend := entities.FrequencyWeekend

	t.Run("courier rejected when ineligible", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "80331", 190, stuttgartCatalog("80331"), entities.DeliveryMethodPost)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.UpdateConfiguration(context.Background(), "sess-1", ConfigurationChange{DeliveryMethod: &courier})
		if !errors.Is(err, pricing.ErrCourierNotEligible) {
			t.Fatalf("expected ErrCourierNotEligible, got %v", err)
		}
	})

	t.Run("annual weekend by post", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "71032", 30, stuttgartCatalog("71032"), entities.DeliveryMethodPost)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		v, err := uc.UpdateConfiguration(context.Background(), "sess-1", ConfigurationChange{Frequency: &weekend, BillingCycle: &annual})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if v.Quote.MonthlyPrice != 11.49 || v.Quote.AnnualPrice != 124.09 {
			t.Fatalf("unexpected quote: %+v", v.Quote)
		}
		if v.Draft.AnnualPrice != 124.09 {
			t.Fatalf("draft not repriced: %+v", v.Draft)
		}
		if !hasNotice(v.Notices, NoticeAnnualSavings) {
			t.Fatalf("expected savings notice, got %+v", v.Notices)
		}
	})

	t.Run("switch to courier drops surcharge", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "71032", 30, stuttgartCatalog("71032"), entities.DeliveryMethodPost)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		v, err := uc.UpdateConfiguration(context.Background(), "sess-1", ConfigurationChange{DeliveryMethod: &courier})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if v.Draft.DeliveryMethod != courier || v.Quote.MonthlyPrice != 15.99 {
			t.Fatalf("unexpected draft: %+v", v.Draft)
		}
	})

	t.Run("edition outside catalog", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 10, stuttgartCatalog("70173"), entities.DeliveryMethodPost)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		other := int64(42)
		_, err := uc.UpdateConfiguration(context.Background(), "sess-1", ConfigurationChange{EditionID: &other})
		if !errors.Is(err, ErrEditionNotAvailable) {
			t.Fatalf("expected ErrEditionNotAvailable, got %v", err)
		}
	})

	t.Run("invalid frequency", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 10, stuttgartCatalog("70173"), entities.DeliveryMethodPost)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		bad := entities.Frequency("Hourly")
		_, err := uc.UpdateConfiguration(context.Background(), "sess-1", ConfigurationChange{Frequency: &bad})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("70173"), nil)

		_, err := uc.UpdateConfiguration(context.Background(), "sess-1", ConfigurationChange{Frequency: &weekend})
		if !errors.Is(err, ErrConfigurationNotLoaded) {
			t.Fatalf("expected ErrConfigurationNotLoaded, got %v", err)
		}
	})

	t.Run("frozen", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 10, stuttgartCatalog("70173"), entities.DeliveryMethodPost)
		s.Summary = &entities.QuoteSummary{EditionID: 3}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.UpdateConfiguration(context.Background(), "sess-1", ConfigurationChange{Frequency: &weekend})
		if !errors.Is(err, ErrConfigurationFrozen) {
			t.Fatalf("expected ErrConfigurationFrozen, got %v", err)
		}
	})
}

func TestCheckoutSessionUseCase_ConfirmConfiguration(t *testing.T) {
	t.Run("freezes summary and moves to register", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 45, stuttgartCatalog("70173"), entities.DeliveryMethodDeliveryAgent)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
				if s.Step != entities.CheckoutStepRegister || s.Summary == nil {
					t.Fatalf("expected frozen session at register step, got %+v", s)
				}
				return s, nil
			},
		)

		summary, err := uc.ConfirmConfiguration(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if summary.EditionName != "Stuttgarter Zeitung" || summary.DeliveryMethodLabel != "Morning Courier" {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if summary.Quote.MonthlyPrice != 15.99 || summary.MonthlyPriceLabel != "€15.99" {
			t.Fatalf("unexpected price: %+v", summary)
		}
		if !summary.FrozenAt.Equal(fixedNow) {
			t.Fatalf("unexpected frozen time %v", summary.FrozenAt)
		}
	})

	t.Run("already frozen returns stored summary", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 45, stuttgartCatalog("70173"), entities.DeliveryMethodPost)
		stored := entities.QuoteSummary{EditionID: 3, Quote: entities.PriceQuote{MonthlyPrice: 18.49}}
		s.Summary = &stored
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		summary, err := uc.ConfirmConfiguration(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if summary.Quote.MonthlyPrice != 18.49 {
			t.Fatalf("expected stored summary, got %+v", summary)
		}
	})

	t.Run("no edition available", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 10, entities.EditionCatalog{PostalCode: "70173"}, entities.DeliveryMethodPost)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.ConfirmConfiguration(context.Background(), "sess-1")
		if !errors.Is(err, ErrNoEditionAvailable) {
			t.Fatalf("expected ErrNoEditionAvailable, got %v", err)
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("70173"), nil)

		_, err := uc.ConfirmConfiguration(context.Background(), "sess-1")
		if !errors.Is(err, ErrConfigurationNotLoaded) {
			t.Fatalf("expected ErrConfigurationNotLoaded, got %v", err)
		}
	})
}

func TestCheckoutSessionUseCase_GetSummary(t *testing.T) {
	uc, m := newCheckoutUseCase(t)
	m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("70173"), nil)

	_, err := uc.GetSummary(context.Background(), "sess-1")
	if !errors.Is(err, ErrConfigurationNotConfirmed) {
		t.Fatalf("expected ErrConfigurationNotConfirmed, got %v", err)
	}
}

func TestCheckoutSessionUseCase_ChangeAddress(t *testing.T) {
	t.Run("frozen", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 10, stuttgartCatalog("70173"), entities.DeliveryMethodPost)
		s.Summary = &entities.QuoteSummary{EditionID: 3}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.ChangeAddress(context.Background(), "sess-1", "80331", "München")
		if !errors.Is(err, ErrConfigurationFrozen) {
			t.Fatalf("expected ErrConfigurationFrozen, got %v", err)
		}
	})

	t.Run("move out of courier area", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		s := loadedSession(t, "70173", 10, stuttgartCatalog("70173"), entities.DeliveryMethodDeliveryAgent)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.distance.EXPECT().GetDistance(gomock.Any(), "80331").Return(resolved("80331", 190), nil)
		m.editions.EXPECT().GetLocalEditions(gomock.Any(), "80331").Return(entities.EditionCatalog{
			PostalCode: "80331",
			Editions:   []entities.Edition{{ID: 9, Name: "Münchner Ausgabe"}},
		}, nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		v, err := uc.ChangeAddress(context.Background(), "sess-1", "80331", "München")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if v.Session.PostalCode != "80331" || v.Session.City != "München" {
			t.Fatalf("address not stored: %+v", v.Session)
		}
		if v.Draft.DeliveryMethod != entities.DeliveryMethodPost || !hasNotice(v.Notices, NoticeDeliveryMethodReset) {
			t.Fatalf("expected courier reset, got %+v / %+v", v.Draft, v.Notices)
		}
		if v.Draft.EditionID == nil || *v.Draft.EditionID != 9 || !hasNotice(v.Notices, NoticeEditionReset) {
			t.Fatalf("expected edition reset, got %+v", v.Draft)
		}
		if v.Draft.DistanceKm != 190 || v.Quote.MonthlyPrice != 20.99 {
			t.Fatalf("expected repricing at new distance, got %+v", v.Quote)
		}
	})

	t.Run("unknown postal code", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(newSession("70173"), nil)
		m.distance.EXPECT().GetDistance(gomock.Any(), "99999").Return(entities.DistanceQuote{PostalCode: "99999", Status: entities.DistanceStatusNotFound}, nil)
		m.editions.EXPECT().GetLocalEditions(gomock.Any(), "99999").Return(entities.EditionCatalog{PostalCode: "99999"}, nil).AnyTimes()

		_, err := uc.ChangeAddress(context.Background(), "sess-1", "99999", "Nowhere")
		if !errors.Is(err, ErrPostalCodeNotFound) {
			t.Fatalf("expected ErrPostalCodeNotFound, got %v", err)
		}
	})
}
