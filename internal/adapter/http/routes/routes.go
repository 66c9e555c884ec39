package routes

import (
	"strconv"

	_ "newspaper_checkout/docs" // This will be auto-generated
	request "newspaper_checkout/internal/adapter/http/dto/request"
	"newspaper_checkout/internal/adapter/http/handlers"
	repository2 "newspaper_checkout/internal/adapter/persistence/repository"
	"newspaper_checkout/internal/domain/pricing"
	"newspaper_checkout/internal/infrastructure/config"
	"newspaper_checkout/internal/infrastructure/database"
	"newspaper_checkout/internal/infrastructure/logger"
	"newspaper_checkout/internal/infrastructure/lookup"
	"newspaper_checkout/internal/infrastructure/security"
	"newspaper_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
)

var router = gin.Default()

// Run will start the server
func Run(cfg *config.Configuration) {
	if err := request.RegisterValidators(); err != nil {
		logger.L.Fatalf("[http] failed to register validators: %v", err)
	}
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	logger.L.Infow("[http] listening", "port", cfg.Server.Port)
	err := router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		logger.L.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Configuration) {
	ddb := database.ConnectDynamoDB(cfg)

	sessionRepo := repository2.NewCheckoutSessionDynamoRepository(ddb, cfg.Tables.Sessions)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb, cfg.Tables.Subscriptions)

	policy := pricing.NewEligibilityPolicy(cfg.Eligibility.OriginPostalCode, cfg.Eligibility.CourierMaxDistanceKm)
	lookupClient := lookup.NewClient(cfg.Lookup.BaseURL, cfg.Lookup.Timeout, policy.OriginPostalCode)
	cached := lookup.NewCachedLookup(lookupClient, lookupClient, cfg.Lookup.CacheTTL)

	checkoutUseCase := usecase.NewCheckoutSessionUseCase(sessionRepo, cached, cached, policy, cfg.Session.TTL)
	registrationUseCase := usecase.NewRegistrationUseCase(sessionRepo, customerRepo, security.NewBcryptHasher(bcrypt.DefaultCost))
	orderUseCase := usecase.NewOrderUseCase(sessionRepo, customerRepo, subscriptionRepo)
	quoteUseCase := usecase.NewQuoteUseCase(policy)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addCheckoutRoutes(v1, checkoutHandler, registrationHandler, orderHandler)
	addOrderRoutes(v1, orderHandler, registrationHandler)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L.Errorw("Recovered from panic", "path", c.FullPath(), "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
