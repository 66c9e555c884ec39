package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
	"newspaper_checkout/internal/infrastructure/logger"
	"newspaper_checkout/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

const (
	NoticeDeliveryMethodReset = "DELIVERY_METHOD_RESET"
	NoticeNoLocalEdition      = "NO_LOCAL_EDITION"
	NoticeEditionReset        = "EDITION_RESET"
	NoticeAnnualSavings       = "ANNUAL_SAVINGS"
)

const deliveryMethodResetMessage = "Courier delivery is not available for this address. Your paper will be delivered by post."

var postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// Notice is a non-fatal message the UI must show, e.g. when the courier
// selection had to be reset to postal delivery.
type Notice struct {
	Code    string
	Message string
}

// ConfigurationChange carries the fields the customer changed on the
// configure step. Nil fields are left untouched.
type ConfigurationChange struct {
	EditionID      *int64
	Frequency      *entities.Frequency
	BillingCycle   *entities.BillingCycle
	DeliveryMethod *entities.DeliveryMethod
}

// ConfigurationView is everything the configure step renders.
type ConfigurationView struct {
	Session         entities.CheckoutSession
	Catalog         entities.EditionCatalog
	Draft           entities.SubscriptionDraft
	Quote           entities.PriceQuote
	PriceTable      map[entities.Frequency]entities.PriceQuote
	CourierEligible bool
	Notices         []Notice
}

// ICheckoutSessionUseCase drives the address and configure steps and owns the
// session-scoped wizard state.
//
//   - POST /checkout/sessions => StartSession()
//   - PUT  /checkout/sessions/{id}/address => ChangeAddress()
//   - GET/PATCH /checkout/sessions/{id}/configuration => LoadConfiguration() / UpdateConfiguration()
//   - POST /checkout/sessions/{id}/configuration/confirm => ConfirmConfiguration()

type ICheckoutSessionUseCase interface {
	StartSession(ctx context.Context, postalCode, city string) (entities.CheckoutSession, error)
	GetSession(ctx context.Context, id string) (entities.CheckoutSession, error)
	ChangeAddress(ctx context.Context, id, postalCode, city string) (ConfigurationView, error)
	LoadConfiguration(ctx context.Context, id string) (ConfigurationView, error)
	UpdateConfiguration(ctx context.Context, id string, change ConfigurationChange) (ConfigurationView, error)
	ConfirmConfiguration(ctx context.Context, id string) (entities.QuoteSummary, error)
	GetSummary(ctx context.Context, id string) (entities.QuoteSummary, error)
}

type CheckoutSessionUseCase struct {
	sessions interfaces.ICheckoutSessionRepository
	distance interfaces.IDistanceLookup
	editions interfaces.IEditionLookup
	policy   pricing.EligibilityPolicy
	ttl      time.Duration
	now      func() time.Time
}

var _ ICheckoutSessionUseCase = (*CheckoutSessionUseCase)(nil)

func NewCheckoutSessionUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	distance interfaces.IDistanceLookup,
	editions interfaces.IEditionLookup,
	policy pricing.EligibilityPolicy,
	ttl time.Duration,
) *CheckoutSessionUseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CheckoutSessionUseCase{
		sessions: sessions,
		distance: distance,
		editions: editions,
		policy:   policy,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutSessionUseCase) StartSession(ctx context.Context, postalCode, city string) (entities.CheckoutSession, error) {
	postalCode, city, err := normalizeAddress(postalCode, city)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	logger.L.Infow("[checkout][usecase] start session", "postal_code", postalCode)

	dq, err := u.distance.GetDistance(ctx, postalCode)
	if err != nil {
		logger.L.Warnw("[checkout][usecase] distance lookup failed", "postal_code", postalCode, "err", err)
		return entities.CheckoutSession{}, errors.Mark(errors.Wrap(err, "distance lookup"), ErrDistanceLookupFailed)
	}
	if !dq.Resolved() {
		return entities.CheckoutSession{}, errors.Wrapf(ErrPostalCodeNotFound, "postal code %s", postalCode)
	}

	now := u.now()
	s := entities.CheckoutSession{
		ID:         uuid.NewString(),
		Step:       entities.CheckoutStepConfigure,
		PostalCode: postalCode,
		City:       city,
		Distance:   &dq,
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiresAt:  now.Add(u.ttl),
	}
	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	logger.L.Infow("[checkout][usecase] session started", "session_id", created.ID, "distance_km", dq.DistanceKm)
	return created, nil
}

func (u *CheckoutSessionUseCase) GetSession(ctx context.Context, id string) (entities.CheckoutSession, error) {
	return loadSession(ctx, u.sessions, id, u.now())
}

func (u *CheckoutSessionUseCase) ChangeAddress(ctx context.Context, id, postalCode, city string) (ConfigurationView, error) {
	postalCode, city, err := normalizeAddress(postalCode, city)
	if err != nil {
		return ConfigurationView{}, err
	}
	s, err := loadSession(ctx, u.sessions, id, u.now())
	if err != nil {
		return ConfigurationView{}, err
	}
	if s.Frozen() {
		return ConfigurationView{}, ErrConfigurationFrozen
	}

	dq, catalog, err := u.lookup(ctx, postalCode)
	if err != nil {
		return ConfigurationView{}, err
	}
	logger.L.Infow("[checkout][usecase] address changed", "session_id", s.ID, "from", s.PostalCode, "to", postalCode)
	s.PostalCode = postalCode
	s.City = city

	view, err := u.applyLookups(s, dq, catalog)
	if err != nil {
		return ConfigurationView{}, err
	}
	return u.save(ctx, view)
}

// LoadConfiguration fetches distance and editions concurrently and
// (re)builds the draft. Once the configuration is frozen the stored state is
// returned without new lookups.
func (u *CheckoutSessionUseCase) LoadConfiguration(ctx context.Context, id string) (ConfigurationView, error) {
	s, err := loadSession(ctx, u.sessions, id, u.now())
	if err != nil {
		return ConfigurationView{}, err
	}
	if s.PostalCode == "" {
		return ConfigurationView{}, ErrSessionIncomplete
	}
	if s.Frozen() {
		return u.frozenView(s), nil
	}

	dq, catalog, err := u.lookup(ctx, s.PostalCode)
	if err != nil {
		return ConfigurationView{}, err
	}
	view, err := u.applyLookups(s, dq, catalog)
	if err != nil {
		return ConfigurationView{}, err
	}
	return u.save(ctx, view)
}

func (u *CheckoutSessionUseCase) UpdateConfiguration(ctx context.Context, id string, change ConfigurationChange) (ConfigurationView, error) {
	s, err := loadSession(ctx, u.sessions, id, u.now())
	if err != nil {
		return ConfigurationView{}, err
	}
	if s.Frozen() {
		return ConfigurationView{}, ErrConfigurationFrozen
	}
	if s.PostalCode == "" {
		return ConfigurationView{}, ErrSessionIncomplete
	}
	if s.Draft == nil || s.Catalog == nil || s.Distance == nil {
		return ConfigurationView{}, ErrConfigurationNotLoaded
	}

	draft := *s.Draft
	eligible := u.courierEligible(s)

	if change.EditionID != nil {
		if _, ok := s.Catalog.Find(*change.EditionID); !ok {
			return ConfigurationView{}, errors.Wrapf(ErrEditionNotAvailable, "edition %d", *change.EditionID)
		}
		editionID := *change.EditionID
		draft.EditionID = &editionID
	}
	if change.Frequency != nil {
		if !change.Frequency.Valid() {
			return ConfigurationView{}, errors.Wrapf(ErrInvalidConfiguration, "frequency %q", *change.Frequency)
		}
		draft.Frequency = *change.Frequency
	}
	if change.BillingCycle != nil {
		if !change.BillingCycle.Valid() {
			return ConfigurationView{}, errors.Wrapf(ErrInvalidConfiguration, "billing cycle %q", *change.BillingCycle)
		}
		draft.BillingCycle = *change.BillingCycle
	}
	if change.DeliveryMethod != nil {
		method, err := pricing.SelectDeliveryMethod(draft.DeliveryMethod, *change.DeliveryMethod, eligible)
		if err != nil {
			logger.L.Infow("[checkout][usecase] delivery method rejected", "session_id", s.ID, "requested", *change.DeliveryMethod, "err", err)
			return ConfigurationView{}, err
		}
		draft.DeliveryMethod = method
	}

	s.Draft = &draft
	view, err := u.buildView(s, nil)
	if err != nil {
		return ConfigurationView{}, err
	}
	return u.save(ctx, view)
}

func (u *CheckoutSessionUseCase) ConfirmConfiguration(ctx context.Context, id string) (entities.QuoteSummary, error) {
	s, err := loadSession(ctx, u.sessions, id, u.now())
	if err != nil {
		return entities.QuoteSummary{}, err
	}
	if s.Frozen() {
		return *s.Summary, nil
	}
	if s.PostalCode == "" {
		return entities.QuoteSummary{}, ErrSessionIncomplete
	}
	if s.Draft == nil || s.Catalog == nil || s.Distance == nil {
		return entities.QuoteSummary{}, ErrConfigurationNotLoaded
	}
	if s.Catalog.IsEmpty() {
		return entities.QuoteSummary{}, ErrNoEditionAvailable
	}

	summary, err := pricing.BuildSummary(*s.Draft, *s.Catalog, s.City, u.courierEligible(s), u.now())
	if err != nil {
		logger.L.Warnw("[checkout][usecase] confirm rejected", "session_id", s.ID, "err", err)
		return entities.QuoteSummary{}, err
	}

	s.Summary = &summary
	s.Step = entities.CheckoutStepRegister
	s.UpdatedAt = u.now()
	updated, err := u.sessions.Update(ctx, s)
	if err != nil {
		return entities.QuoteSummary{}, err
	}
	if updated.ID == "" {
		return entities.QuoteSummary{}, ErrSessionNotFound
	}
	logger.L.Infow("[checkout][usecase] configuration confirmed", "session_id", s.ID,
		"monthly", summary.Quote.MonthlyPrice, "annual", summary.Quote.AnnualPrice, "delivery", summary.DeliveryMethod)
	return summary, nil
}

func (u *CheckoutSessionUseCase) GetSummary(ctx context.Context, id string) (entities.QuoteSummary, error) {
	s, err := loadSession(ctx, u.sessions, id, u.now())
	if err != nil {
		return entities.QuoteSummary{}, err
	}
	if !s.Frozen() {
		return entities.QuoteSummary{}, ErrConfigurationNotConfirmed
	}
	return *s.Summary, nil
}

// lookup runs both collaborator calls at once; both results are required
// before eligibility can be decided.
func (u *CheckoutSessionUseCase) lookup(ctx context.Context, postalCode string) (entities.DistanceQuote, entities.EditionCatalog, error) {
	var (
		dq      entities.DistanceQuote
		catalog entities.EditionCatalog
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		q, err := u.distance.GetDistance(ctx, postalCode)
		if err != nil {
			return errors.Mark(errors.Wrap(err, "distance lookup"), ErrDistanceLookupFailed)
		}
		if !q.Resolved() {
			return errors.Wrapf(ErrPostalCodeNotFound, "postal code %s", postalCode)
		}
		dq = q
		return nil
	})
	p.Go(func(ctx context.Context) error {
		c, err := u.editions.GetLocalEditions(ctx, postalCode)
		if err != nil {
			return errors.Mark(errors.Wrap(err, "edition lookup"), ErrEditionLookupFailed)
		}
		catalog = c
		return nil
	})

	if err := p.Wait(); err != nil {
		logger.L.Warnw("[checkout][usecase] lookup failed", "postal_code", postalCode, "err", err)
		return entities.DistanceQuote{}, entities.EditionCatalog{}, err
	}
	return dq, catalog, nil
}

// applyLookups stores fresh lookup results on the session and brings the
// draft back in line with them.
func (u *CheckoutSessionUseCase) applyLookups(s entities.CheckoutSession, dq entities.DistanceQuote, catalog entities.EditionCatalog) (ConfigurationView, error) {
	s.Distance = &dq
	s.Catalog = &catalog
	eligible := u.courierEligible(s)

	var notices []Notice
	if s.Draft == nil {
		s.Draft = &entities.SubscriptionDraft{
			EditionID:      firstEditionID(catalog),
			Frequency:      entities.FrequencyDaily,
			DeliveryMethod: pricing.DefaultDeliveryMethod(eligible),
			BillingCycle:   entities.BillingCycleMonthly,
		}
	} else {
		draft := *s.Draft
		if draft.EditionID != nil {
			if _, ok := catalog.Find(*draft.EditionID); !ok {
				draft.EditionID = firstEditionID(catalog)
				notices = append(notices, Notice{
					Code:    NoticeEditionReset,
					Message: "Your previous edition is not available at the new address.",
				})
			}
		} else {
			draft.EditionID = firstEditionID(catalog)
		}
		s.Draft = &draft
	}
	s.Draft.PostalCode = s.PostalCode
	s.Draft.DistanceKm = dq.DistanceKm
	if s.Step == entities.CheckoutStepAddress || s.Step == "" {
		s.Step = entities.CheckoutStepConfigure
	}

	return u.buildView(s, notices)
}

// buildView reconciles the delivery method, prices the draft and collects the
// notices for the customer.
func (u *CheckoutSessionUseCase) buildView(s entities.CheckoutSession, notices []Notice) (ConfigurationView, error) {
	eligible := u.courierEligible(s)
	draft := *s.Draft

	method, corrected := pricing.ReconcileDeliveryMethod(draft.DeliveryMethod, eligible)
	draft.DeliveryMethod = method
	if corrected {
		logger.L.Infow("[checkout][usecase] courier no longer eligible, reset to post", "session_id", s.ID, "postal_code", s.PostalCode)
		notices = append(notices, Notice{
			Code:    NoticeDeliveryMethodReset,
			Message: deliveryMethodResetMessage,
		})
	}

	priced, quote, err := pricing.PriceDraft(draft)
	if err != nil {
		return ConfigurationView{}, err
	}
	table, err := pricing.ComputePriceTable(priced.DistanceKm, priced.BillingCycle, priced.DeliveryMethod)
	if err != nil {
		return ConfigurationView{}, err
	}
	s.Draft = &priced

	if s.Catalog.IsEmpty() {
		notices = append(notices, Notice{
			Code:    NoticeNoLocalEdition,
			Message: "No newspaper editions available for postal code " + s.PostalCode + ".",
		})
	}
	if quote.ShowSavings {
		notices = append(notices, Notice{
			Code:    NoticeAnnualSavings,
			Message: "Save " + pricing.FormatPrice(quote.AnnualSavings) + " by paying yearly.",
		})
	}

	return ConfigurationView{
		Session:         s,
		Catalog:         *s.Catalog,
		Draft:           priced,
		Quote:           quote,
		PriceTable:      table,
		CourierEligible: eligible,
		Notices:         notices,
	}, nil
}

func (u *CheckoutSessionUseCase) frozenView(s entities.CheckoutSession) ConfigurationView {
	v := ConfigurationView{
		Session:         s,
		Quote:           s.Summary.Quote,
		CourierEligible: s.Summary.DeliveryMethod == entities.DeliveryMethodDeliveryAgent,
	}
	if s.Catalog != nil {
		v.Catalog = *s.Catalog
	}
	if s.Draft != nil {
		v.Draft = *s.Draft
	}
	return v
}

func (u *CheckoutSessionUseCase) save(ctx context.Context, view ConfigurationView) (ConfigurationView, error) {
	view.Session.UpdatedAt = u.now()
	updated, err := u.sessions.Update(ctx, view.Session)
	if err != nil {
		return ConfigurationView{}, err
	}
	if updated.ID == "" {
		return ConfigurationView{}, ErrSessionNotFound
	}
	view.Session = updated
	return view, nil
}

func (u *CheckoutSessionUseCase) courierEligible(s entities.CheckoutSession) bool {
	if s.Distance == nil || s.Catalog == nil || !s.Distance.Resolved() {
		return false
	}
	return u.policy.IsCourierEligible(s.PostalCode, s.Distance.DistanceKm, !s.Catalog.IsEmpty())
}

func firstEditionID(c entities.EditionCatalog) *int64 {
	if c.IsEmpty() {
		return nil
	}
	id := c.Editions[0].ID
	return &id
}

func normalizeAddress(postalCode, city string) (string, string, error) {
	postalCode = strings.TrimSpace(postalCode)
	city = strings.TrimSpace(city)
	if !postalCodePattern.MatchString(postalCode) {
		return "", "", ErrInvalidPostalCode
	}
	if city == "" {
		return "", "", ErrInvalidCity
	}
	return postalCode, city, nil
}

// loadSession resolves a live session; expired sessions count as missing.
func loadSession(ctx context.Context, repo interfaces.ICheckoutSessionRepository, id string, now time.Time) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidSessionID
	}
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}
	if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}
	return s, nil
}
