// Package app provides service initialization.
package app

import (
	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Carts service.CartService
}

// InitializeServices initializes the cart registry over the given storage.
func InitializeServices(cfg config.RegistryConfig, store *StorageComponents) *ServiceComponents {
	var opts []service.Option

	if cfg.IdleTTL > 0 {
		opts = append(opts, service.WithIdleTTL(cfg.IdleTTL))
	}
	if cfg.MaxQuantity > 0 {
		opts = append(opts, service.WithStoreOptions(cart.WithMaxQuantity(cfg.MaxQuantity)))
	}

	return &ServiceComponents{
		Carts: service.NewCartService(store.Storage, opts...),
	}
}
