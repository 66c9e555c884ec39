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
	"github.com/samber/lo"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler submits and reads subscription orders. No payment is executed.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// PlaceOrder godoc
// @Summary  Place the subscription order
// @Tags     checkout
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                     true  "Session ID"
// @Param    order       body      request.PlaceOrderRequest  true  "Payment type and terms"
// @Success  201         {object}  response.OrderResponse
// @Failure  400         {object}  pkg.HTTPError
// @Failure  409         {object}  pkg.HTTPError
// @Failure  422         {object}  pkg.HTTPError
// @Router   /checkout/sessions/{session_id}/order [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.PlaceOrder(c.Request.Context(), c.Param("session_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// GetOrder godoc
// @Summary  Get a subscription order
// @Tags     orders
// @Produce  json
// @Param    order_id  path      string  true  "Order ID"
// @Success  200       {object}  response.OrderResponse
// @Failure  404       {object}  pkg.HTTPError
// @Router   /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// ListCustomerOrders godoc
// @Summary  List the orders of a customer
// @Tags     orders
// @Produce  json
// @Param    customer_id  path      string  true  "Customer ID"
// @Success  200          {array}   response.OrderResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /customers/{customer_id}/orders [get]
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	orders, err := h.usecase.ListCustomerOrders(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, lo.Map(orders, func(o entities.SubscriptionOrder, _ int) response.OrderResponse {
		return response.FromOrder(o)
	}))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentType):
		return errInvalidOrderPayload
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotRegistered):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_REGISTERED", "Please register before placing the order", http.StatusConflict).
			WithDetail(redirectStepKey, string(entities.CheckoutStepRegister))
	case errors.Is(err, usecase.ErrOrderAlreadyPlaced):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PLACED", "The order for this checkout was already placed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTermsNotAccepted):
		return pkg.NewDomainErrorSimple("TERMS_NOT_ACCEPTED", "Please accept the terms and conditions", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIBANRequired):
		return pkg.NewDomainErrorSimple("IBAN_REQUIRED", "Please enter your IBAN for direct debit", http.StatusUnprocessableEntity)
	default:
		return mapCheckoutError(err)
	}
}
