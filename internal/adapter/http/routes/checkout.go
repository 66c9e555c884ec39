package routes

import (
	"newspaper_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckoutSessions = "/checkout/sessions"
	PathOrders           = "/orders"
	PathCustomers        = "/customers"
	PathQuotes           = "/quotes"
)

func addCheckoutRoutes(
	rg *gin.RouterGroup,
	checkoutHandler *handlers.CheckoutHandler,
	registrationHandler *handlers.RegistrationHandler,
	orderHandler *handlers.OrderHandler,
) {
	sessions := rg.Group(PathCheckoutSessions)
	{
		// address step
		sessions.POST("", checkoutHandler.StartSession)
		sessions.GET("/:session_id", checkoutHandler.GetSession)
		sessions.PUT("/:session_id/address", checkoutHandler.ChangeAddress)

		// configure step
		sessions.GET("/:session_id/configuration", checkoutHandler.GetConfiguration)
		sessions.PATCH("/:session_id/configuration", checkoutHandler.UpdateConfiguration)
		sessions.POST("/:session_id/configuration/confirm", checkoutHandler.ConfirmConfiguration)
		sessions.GET("/:session_id/summary", checkoutHandler.GetSummary)

		// register and checkout steps
		sessions.POST("/:session_id/registration", registrationHandler.Register)
		sessions.POST("/:session_id/order", orderHandler.PlaceOrder)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, registrationHandler *handlers.RegistrationHandler) {
	rg.GET(PathOrders+"/:order_id", orderHandler.GetOrder)
	rg.GET(PathCustomers+"/:customer_id", registrationHandler.GetCustomer)
	rg.GET(PathCustomers+"/:customer_id/orders", orderHandler.ListCustomerOrders)
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	rg.GET(PathQuotes, quoteHandler.GetQuote)
}
