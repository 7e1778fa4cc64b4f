// Package main is the entry point for the shipment-service application.
//
// @title           Shipment Service API
// @version         1.0.0
// @description     API for computing shipment weight and packaging decisions for orders and carts.
//
//	This service classifies orders into box categories, detects multi-piece
//	shipments and computes the billable shipment weight handed to couriers.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@munchbox.io
// @contact.url    https://github.com/munchbox/shipment-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled without JWT.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token. Required if JWT authentication is enabled.
//
// @tag.name        Shipments
// @tag.description Shipment weight and packaging operations
//
// @tag.name        Boxes
// @tag.description Box catalog configuration endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/munchbox/shipment-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/munchbox/shipment-service/config"
	"github.com/munchbox/shipment-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
