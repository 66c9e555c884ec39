package main

import (
	"log"

	_ "newspaper_checkout/docs"
	"newspaper_checkout/internal/adapter/http/routes"
	"newspaper_checkout/internal/infrastructure/config"
	"newspaper_checkout/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Newspaper Subscription Checkout API
// @version         1.0
// @description     Checkout wizard for printed newspaper subscriptions: address, configuration and pricing, registration and order.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	logger.SetGlobal(l)
	defer func() { _ = l.Sync() }()

	routes.Run(cfg)
}
