// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/http"
	"github.com/guttosm/cart-service/internal/service"
)

// Application holds the wired components so the caller can run and later
// release them.
type Application struct {
	Router  *gin.Engine
	Carts   service.CartService
	storage *StorageComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *Application {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize the persistence backend
	storageComponents := InitializeStorage(cfg.Storage)

	// Initialize the cart registry
	serviceComponents := InitializeServices(cfg.Registry, storageComponents)

	// Health endpoints report storage and breaker state
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker(storageComponents.Backend+"_storage", storageChecker{storageComponents})
	if storageComponents.CircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker(storageComponents.Backend+"_storage", storageComponents.CircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		APIKeys:           cfg.Server.APIKeys,
		EnableAuth:        len(cfg.Server.APIKeys) > 0,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		JWTSecret:         cfg.Session.JWTSecret,
		CartService:       serviceComponents.Carts,
	}

	return &Application{
		Router:  http.NewRouter(healthHandler, routerCfg),
		Carts:   serviceComponents.Carts,
		storage: storageComponents,
	}
}

// Close stops the cart registry and releases the storage backend.
func (a *Application) Close() {
	if a.Carts != nil {
		a.Carts.Shutdown()
	}
	if a.storage != nil && a.storage.Storage != nil {
		_ = a.storage.Storage.Close(context.Background())
	}
}

// storageChecker adapts the storage ping to the health checker interface.
type storageChecker struct {
	components *StorageComponents
}

func (c storageChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.components.Storage.Ping(ctx)
}
