// Package main is the entry point for the cart-service application.
//
// @title           Cart Service API
// @version         1.0.0
// @description     API for managing per-shopper shopping carts.
//
//	The service keeps one authoritative cart per owner, merges duplicate
//	lines, derives totals on every change, and persists the item list so
//	a cart survives restarts.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/cart-service
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
// @tag.name        Cart
// @tag.description Cart operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/cart-service/docs" // swagger docs

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	defer application.Close()

	server := app.NewServer(application.Router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
