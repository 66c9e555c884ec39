package usecase

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidSessionID          = errors.New("invalid session id")
	ErrSessionNotFound           = errors.New("checkout session not found")
	ErrSessionIncomplete         = errors.New("checkout session has no delivery address")
	ErrConfigurationNotLoaded    = errors.New("subscription configuration not loaded")
	ErrConfigurationFrozen       = errors.New("subscription configuration already confirmed")
	ErrConfigurationNotConfirmed = errors.New("subscription configuration not confirmed")
	ErrInvalidPostalCode         = errors.New("postal code must have 5 digits")
	ErrInvalidCity               = errors.New("city is required")
	ErrPostalCodeNotFound        = errors.New("postal code not found")
	ErrDistanceLookupFailed      = errors.New("distance lookup failed")
	ErrEditionLookupFailed       = errors.New("edition lookup failed")
	ErrNoEditionAvailable        = errors.New("no newspaper edition available for this postal code")
	ErrEditionNotAvailable       = errors.New("edition not available for this postal code")
	ErrInvalidConfiguration      = errors.New("invalid subscription configuration")

	ErrInvalidRegistration    = errors.New("invalid registration")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAlreadyRegistered      = errors.New("checkout session already has a customer")

	ErrCustomerNotRegistered = errors.New("customer not registered")
	ErrTermsNotAccepted      = errors.New("terms and privacy policy not accepted")
	ErrInvalidPaymentType    = errors.New("invalid payment type")
	ErrIBANRequired          = errors.New("iban required for direct debit")
	ErrOrderAlreadyPlaced    = errors.New("order already placed for this checkout session")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrCustomerNotFound      = errors.New("customer not found")
)

// ValidationError carries one message per invalid field. It matches
// ErrInvalidRegistration with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid registration: " + strings.Join(keys, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRegistration
}
