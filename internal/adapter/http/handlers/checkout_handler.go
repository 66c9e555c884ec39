package handlers

import (
	"net/http"

	request "newspaper_checkout/internal/adapter/http/dto/request"
	response "newspaper_checkout/internal/adapter/http/dto/response"
	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
	"newspaper_checkout/internal/infrastructure/logger"
	"newspaper_checkout/internal/usecase"
	"newspaper_checkout/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const redirectStepKey = "redirect_step"

var (
	errInvalidAddressPayload       = pkg.NewDomainErrorSimple("INVALID_ADDRESS_INPUT", "Please enter a 5-digit postal code and a city", http.StatusBadRequest)
	errInvalidConfigurationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Invalid subscription configuration", http.StatusBadRequest)
)

// CheckoutHandler serves the address, configure and summary steps of the
// subscription wizard.
type CheckoutHandler struct {
	usecase usecase.ICheckoutSessionUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutSessionUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start a checkout session
// @Description  Validates the delivery address and resolves its distance from the publishing house.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        address  body      request.AddressRequest  true  "Delivery address"
// @Success      201      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /checkout/sessions [post]
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.StartSession(c.Request.Context(), payload.PostalCode, payload.City)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// GetSession godoc
// @Summary  Get a checkout session
// @Tags     checkout
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.SessionResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /checkout/sessions/{session_id} [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ChangeAddress godoc
// @Summary      Change the delivery address
// @Description  Only allowed before the configuration is confirmed. Courier delivery is reset to post when the new address does not qualify.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                  true  "Session ID"
// @Param        address     body      request.AddressRequest  true  "Delivery address"
// @Success      200         {object}  response.ConfigurationResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /checkout/sessions/{session_id}/address [put]
func (h *CheckoutHandler) ChangeAddress(c *gin.Context) {
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.ChangeAddress(c.Request.Context(), c.Param("session_id"), payload.PostalCode, payload.City)
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConfiguration(v))
}

// GetConfiguration godoc
// @Summary  Load the configure step
// @Tags     checkout
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.ConfigurationResponse
// @Failure  404         {object}  pkg.HTTPError
// @Failure  409         {object}  pkg.HTTPError
// @Failure  502         {object}  pkg.HTTPError
// @Router   /checkout/sessions/{session_id}/configuration [get]
func (h *CheckoutHandler) GetConfiguration(c *gin.Context) {
	v, err := h.usecase.LoadConfiguration(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConfiguration(v))
}

// UpdateConfiguration godoc
// @Summary  Change edition, frequency, billing cycle or delivery method
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                        true  "Session ID"
// @Param    change      body      request.ConfigurationRequest  true  "Fields to change"
// @Success  200         {object}  response.ConfigurationResponse
// @Failure  400         {object}  pkg.HTTPError
// @Failure  422         {object}  pkg.HTTPError
// @Router   /checkout/sessions/{session_id}/configuration [patch]
func (h *CheckoutHandler) UpdateConfiguration(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.UpdateConfiguration(c.Request.Context(), c.Param("session_id"), payload.ToChange())
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConfiguration(v))
}

// ConfirmConfiguration godoc
// @Summary  Confirm the configuration and freeze the price
// @Tags     checkout
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.SummaryResponse
// @Failure  409         {object}  pkg.HTTPError
// @Failure  422         {object}  pkg.HTTPError
// @Router   /checkout/sessions/{session_id}/configuration/confirm [post]
func (h *CheckoutHandler) ConfirmConfiguration(c *gin.Context) {
	s, err := h.usecase.ConfirmConfiguration(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

// GetSummary godoc
// @Summary  Get the frozen subscription summary
// @Tags     checkout
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.SummaryResponse
// @Failure  409         {object}  pkg.HTTPError
// @Router   /checkout/sessions/{session_id}/summary [get]
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	s, err := h.usecase.GetSummary(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.L.Errorw("[http][handler] request failed", "path", c.FullPath(), "code", appErr.Code, "err", appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPostalCode), errors.Is(err, usecase.ErrInvalidCity):
		return errInvalidAddressPayload
	case errors.Is(err, usecase.ErrInvalidConfiguration),
		errors.Is(err, pricing.ErrUnknownFrequency),
		errors.Is(err, pricing.ErrUnknownBillingCycle),
		errors.Is(err, pricing.ErrUnknownDeliveryMethod),
		errors.Is(err, pricing.ErrDeliveryMethodRequired):
		return errInvalidConfigurationPayload
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found or expired", http.StatusNotFound).
			WithDetail(redirectStepKey, string(entities.CheckoutStepAddress))
	case errors.Is(err, usecase.ErrSessionIncomplete):
		return pkg.NewDomainErrorSimple("ADDRESS_REQUIRED", "Please enter your delivery address first", http.StatusConflict).
			WithDetail(redirectStepKey, string(entities.CheckoutStepAddress))
	case errors.Is(err, usecase.ErrConfigurationNotLoaded):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_LOADED", "Please load the subscription configuration first", http.StatusConflict).
			WithDetail(redirectStepKey, string(entities.CheckoutStepConfigure))
	case errors.Is(err, usecase.ErrConfigurationNotConfirmed):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_CONFIRMED", "Please confirm your subscription first", http.StatusConflict).
			WithDetail(redirectStepKey, string(entities.CheckoutStepConfigure))
	case errors.Is(err, usecase.ErrConfigurationFrozen):
		return pkg.NewDomainErrorSimple("CONFIGURATION_FROZEN", "The subscription was already confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPostalCodeNotFound):
		return pkg.NewDomainErrorSimple("POSTAL_CODE_NOT_FOUND", "We do not deliver to this postal code", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoEditionAvailable):
		return pkg.NewDomainErrorSimple("NO_EDITION_AVAILABLE", "No newspaper edition is available for this postal code", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEditionNotAvailable),
		errors.Is(err, pricing.ErrEditionNotInCatalog),
		errors.Is(err, pricing.ErrEditionNotSelected):
		return pkg.NewDomainErrorSimple("EDITION_NOT_AVAILABLE", "Please select an edition available for your postal code", http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrCourierNotEligible):
		return pkg.NewDomainErrorSimple("COURIER_NOT_ELIGIBLE", "Courier delivery is not available for this address", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDistanceLookupFailed), errors.Is(err, usecase.ErrEditionLookupFailed):
		return pkg.NewDomainError("LOOKUP_UNAVAILABLE", "Delivery information is temporarily unavailable, please try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
