package usecase

import (
	"context"
	"strings"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/infrastructure/logger"
	"newspaper_checkout/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const MinPasswordLength = 6

// RegisterCustomerInput is what the register step collects. A nil
// BillingAddress means "same as delivery address".
type RegisterCustomerInput struct {
	Firstname       string
	Lastname        string
	Companyname     string
	Email           string
	Password        string
	Phone           string
	DeliveryAddress entities.Address
	BillingAddress  *entities.Address
	AcceptPrivacy   bool
}

// IRegistrationUseCase creates the customer account for a confirmed
// configuration.
//
//   - POST /checkout/sessions/{id}/registration => Register()
//   - GET  /customers/{id} => GetCustomer()
type IRegistrationUseCase interface {
	Register(ctx context.Context, sessionID string, in RegisterCustomerInput) (entities.Customer, error)
	GetCustomer(ctx context.Context, id string) (entities.Customer, error)
}

type RegistrationUseCase struct {
	sessions  interfaces.ICheckoutSessionRepository
	customers interfaces.ICustomerRepository
	hasher    interfaces.IPasswordHasher
	validate  *validator.Validate
	now       func() time.Time
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	customers interfaces.ICustomerRepository,
	hasher interfaces.IPasswordHasher,
) *RegistrationUseCase {
	return &RegistrationUseCase{
		sessions:  sessions,
		customers: customers,
		hasher:    hasher,
		validate:  validator.New(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *RegistrationUseCase) Register(ctx context.Context, sessionID string, in RegisterCustomerInput) (entities.Customer, error) {
	s, err := loadSession(ctx, u.sessions, sessionID, u.now())
	if err != nil {
		return entities.Customer{}, err
	}
	if !s.Frozen() {
		return entities.Customer{}, ErrConfigurationNotConfirmed
	}
	if s.CustomerID != "" {
		return entities.Customer{}, ErrAlreadyRegistered
	}

	in = normalizeRegistration(in)
	if verr := u.validateRegistration(in, s.PostalCode); verr != nil {
		logger.L.Infow("[registration][usecase] invalid input", "session_id", s.ID, "err", verr)
		return entities.Customer{}, verr
	}

	existing, err := u.customers.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		return u.resume(ctx, s, existing, in.Password)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.Customer{}, err
	}

	billing := in.DeliveryAddress
	if in.BillingAddress != nil {
		billing = *in.BillingAddress
	}
	c := entities.Customer{
		ID:              uuid.NewString(),
		Firstname:       in.Firstname,
		Lastname:        in.Lastname,
		Companyname:     in.Companyname,
		Email:           in.Email,
		SessionID:       s.ID,
		PasswordHash:    hash,
		Phone:           in.Phone,
		DeliveryAddress: in.DeliveryAddress,
		BillingAddress:  billing,
		CreatedAt:       u.now(),
	}
	created, err := u.customers.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if created.ID == "" {
		// the email was taken between the lookup and the write
		existing, err := u.customers.GetByEmail(ctx, in.Email)
		if err != nil {
			return entities.Customer{}, err
		}
		if existing.ID == "" {
			return entities.Customer{}, ErrEmailAlreadyRegistered
		}
		return u.resume(ctx, s, existing, in.Password)
	}

	if err := u.link(ctx, s, created); err != nil {
		return entities.Customer{}, err
	}
	logger.L.Infow("[registration][usecase] customer registered", "session_id", s.ID, "customer_id", created.ID)
	return created, nil
}

// resume accepts an existing account only when it was created in this session
// with the same password, i.e. an earlier attempt saved the customer but did
// not reach the session.
func (u *RegistrationUseCase) resume(ctx context.Context, s entities.CheckoutSession, existing entities.Customer, password string) (entities.Customer, error) {
	if existing.SessionID != s.ID || !u.hasher.Compare(existing.PasswordHash, password) {
		return entities.Customer{}, ErrEmailAlreadyRegistered
	}
	if err := u.link(ctx, s, existing); err != nil {
		return entities.Customer{}, err
	}
	logger.L.Infow("[registration][usecase] customer linked on retry", "session_id", s.ID, "customer_id", existing.ID)
	return existing, nil
}

func (u *RegistrationUseCase) link(ctx context.Context, s entities.CheckoutSession, c entities.Customer) error {
	s.CustomerID = c.ID
	s.Step = entities.CheckoutStepCheckout
	s.UpdatedAt = u.now()
	updated, err := u.sessions.Update(ctx, s)
	if err != nil {
		logger.L.Warnw("[registration][usecase] session update failed", "session_id", s.ID, "customer_id", c.ID, "err", err)
		return err
	}
	if updated.ID == "" {
		return ErrSessionNotFound
	}
	return nil
}

func (u *RegistrationUseCase) GetCustomer(ctx context.Context, id string) (entities.Customer, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.customers.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func normalizeRegistration(in RegisterCustomerInput) RegisterCustomerInput {
	in.Firstname = strings.TrimSpace(in.Firstname)
	in.Lastname = strings.TrimSpace(in.Lastname)
	in.Companyname = strings.TrimSpace(in.Companyname)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.DeliveryAddress = normalizeAddressFields(in.DeliveryAddress)
	if in.BillingAddress != nil {
		b := normalizeAddressFields(*in.BillingAddress)
		in.BillingAddress = &b
	}
	return in
}

func normalizeAddressFields(a entities.Address) entities.Address {
	a.Street1 = strings.TrimSpace(a.Street1)
	a.Street2 = strings.TrimSpace(a.Street2)
	a.City = strings.TrimSpace(a.City)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	return a
}

// validateRegistration collects every field error at once so the form can
// show them together. The delivery postal code must match the one the price
// was computed for.
func (u *RegistrationUseCase) validateRegistration(in RegisterCustomerInput, sessionPostalCode string) error {
	fields := map[string]string{}

	if in.Firstname == "" {
		fields["firstname"] = "required"
	}
	if in.Lastname == "" {
		fields["lastname"] = "required"
	}
	if err := u.validate.Var(in.Email, "required,email"); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(in.Password) < MinPasswordLength {
		fields["password"] = "must have at least 6 characters"
	}
	if !in.AcceptPrivacy {
		fields["accept_privacy"] = "data privacy policy must be accepted"
	}

	validateAddress(fields, "delivery_address", in.DeliveryAddress)
	if in.DeliveryAddress.PostalCode != "" && postalCodePattern.MatchString(in.DeliveryAddress.PostalCode) &&
		in.DeliveryAddress.PostalCode != sessionPostalCode {
		fields["delivery_address.postal_code"] = "must match the postal code of the subscription"
	}
	if in.BillingAddress != nil {
		validateAddress(fields, "billing_address", *in.BillingAddress)
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func validateAddress(fields map[string]string, prefix string, a entities.Address) {
	if a.Street1 == "" {
		fields[prefix+".street1"] = "required"
	}
	if a.City == "" {
		fields[prefix+".city"] = "required"
	}
	if !postalCodePattern.MatchString(a.PostalCode) {
		fields[prefix+".postal_code"] = "must have 5 digits"
	}
}
