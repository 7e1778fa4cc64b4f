// Package app provides service initialization.
package app

import (
	"github.com/munchbox/shipment-service/config"
	"github.com/munchbox/shipment-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.ShipmentCalculator
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CalculatorConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.DefaultUnitWeightGrams > 0 {
		opts = append(opts, service.WithDefaultUnitWeight(cfg.DefaultUnitWeightGrams))
	}

	calculator := service.NewShipmentCalculatorService(opts...)

	return &ServiceComponents{
		Calculator: calculator,
	}
}
