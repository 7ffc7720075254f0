// Package main is the entry point for the frete-service application.
//
// @title           Frete Service API
// @version         1.0.0
// @description     API for managing freight price tables, order auctions and spreadsheet ingestion.
//
//	This service ingests carrier price spreadsheets, summarizes freight costs and
//	runs per-order carrier auctions over the catalog.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/freteops/frete-service
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
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Fretes
// @tag.description Freight catalog and summary operations
//
// @tag.name        Pedidos
// @tag.description Order catalog operations
//
// @tag.name        Leilao
// @tag.description Carrier auction operations
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/freteops/frete-service/docs" // swagger docs

	"github.com/freteops/frete-service/config"
	"github.com/freteops/frete-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
