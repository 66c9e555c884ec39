package handlers

import (
	"net/http"

	request "newspaper_checkout/internal/adapter/http/dto/request"
	response "newspaper_checkout/internal/adapter/http/dto/response"
	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/usecase"
	"newspaper_checkout/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

var errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Invalid registration payload", http.StatusBadRequest)

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// Register godoc
// @Summary      Register the customer
// @Description  Creates the customer account for a confirmed configuration. Invalid fields are listed in details.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id    path      string                       true  "Session ID"
// @Param        registration  body      request.RegistrationRequest  true  "Customer data"
// @Success      201           {object}  response.CustomerResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Router       /checkout/sessions/{session_id}/registration [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var payload request.RegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Register(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// GetCustomer godoc
// @Summary  Get a registered customer
// @Tags     customers
// @Produce  json
// @Param    customer_id  path      string  true  "Customer ID"
// @Success  200          {object}  response.CustomerResponse
// @Failure  400          {object}  pkg.HTTPError
// @Failure  404          {object}  pkg.HTTPError
// @Router   /customers/{customer_id} [get]
func (h *RegistrationHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetCustomer(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		writeError(c, mapRegistrationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func mapRegistrationError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		appErr := pkg.NewDomainErrorSimple("INVALID_REGISTRATION", "Please correct the highlighted fields", http.StatusBadRequest)
		for field, msg := range verr.Fields {
			appErr = appErr.WithDetail(field, msg)
		}
		return appErr
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "An account with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyRegistered):
		return pkg.NewDomainErrorSimple("ALREADY_REGISTERED", "A customer was already registered for this checkout", http.StatusConflict).
			WithDetail(redirectStepKey, string(entities.CheckoutStepCheckout))
	default:
		return mapCheckoutError(err)
	}
}
