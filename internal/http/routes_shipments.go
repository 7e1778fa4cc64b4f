package http

import (
	"github.com/gin-gonic/gin"

	"github.com/munchbox/shipment-service/internal/service"
)

// ShipmentRoutes handles shipment-related route registration.
type ShipmentRoutes struct {
	handler           *Handler
	boxCatalogHandler *BoxCatalogHandler
}

// NewShipmentRoutes creates a new ShipmentRoutes instance.
func NewShipmentRoutes(calculator service.ShipmentCalculator, boxCatalogService service.BoxCatalogService, opts ...HandlerOption) *ShipmentRoutes {
	handler := NewHandler(calculator, boxCatalogService, opts...)

	var boxCatalogHandler *BoxCatalogHandler
	if boxCatalogService != nil {
		boxCatalogHandler = NewBoxCatalogHandler(boxCatalogService, handler)
	}

	return &ShipmentRoutes{
		handler:           handler,
		boxCatalogHandler: boxCatalogHandler,
	}
}

// RegisterPublicRoutes registers shipment routes without authentication.
func (r *ShipmentRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/shipments/calculate", r.handler.CalculateShipment)
	rg.POST("/shipments/estimate", r.handler.EstimateShipment)

	if r.boxCatalogHandler != nil {
		rg.GET("/boxes", r.boxCatalogHandler.GetActiveBoxCatalog)
		rg.PUT("/boxes", r.boxCatalogHandler.UpdateBoxCatalog)
		rg.GET("/boxes/history", r.boxCatalogHandler.ListBoxCatalogs)
	}
}

// RegisterProtectedRoutes registers shipment routes behind the configured
// authentication. The estimate endpoint stays public: it serves anonymous
// cart sessions before checkout.
func (r *ShipmentRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	protected.POST("/shipments/calculate", r.handler.CalculateShipment)

	if r.boxCatalogHandler != nil {
		protected.GET("/boxes", r.boxCatalogHandler.GetActiveBoxCatalog)
		protected.PUT("/boxes", r.boxCatalogHandler.UpdateBoxCatalog)
		protected.GET("/boxes/history", r.boxCatalogHandler.ListBoxCatalogs)
	}
}

// GetHandler returns the underlying shipment handler.
func (r *ShipmentRoutes) GetHandler() *Handler {
	return r.handler
}
