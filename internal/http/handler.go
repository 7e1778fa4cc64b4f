package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/shipment-service/internal/domain/dto"
	"github.com/munchbox/shipment-service/internal/domain/model"
	"github.com/munchbox/shipment-service/internal/i18n"
	"github.com/munchbox/shipment-service/internal/metrics"
	"github.com/munchbox/shipment-service/internal/middleware"
	"github.com/munchbox/shipment-service/internal/service"
)

// catalogCache provides thread-safe caching of the active box catalog.
type catalogCache struct {
	catalog   atomic.Value // holds model.BoxCatalog
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new box catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if expired/empty.
func (c *catalogCache) get() model.BoxCatalog {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if catalog := c.catalog.Load(); catalog != nil {
				if b, ok := catalog.(model.BoxCatalog); ok {
					return b
				}
			}
		}
	}
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *catalogCache) set(catalog model.BoxCatalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return
		}
	}

	c.catalog.Store(catalog)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for shipment calculation routes.
type Handler struct {
	calculator        service.ShipmentCalculator
	boxCatalogService service.BoxCatalogService
	catalogCache      *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for box catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.ShipmentCalculator, boxCatalogService service.BoxCatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:        calculator,
		boxCatalogService: boxCatalogService,
		catalogCache:      newCatalogCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getCatalog retrieves the active box catalog from cache or database.
// Returns nil when no DB-backed catalog is available; callers then fall back
// to the calculator's built-in catalog.
func (h *Handler) getCatalog(ctx context.Context) model.BoxCatalog {
	if catalog := h.catalogCache.get(); catalog != nil {
		metrics.RecordCatalogCacheOperation("get", "hit")
		return catalog
	}
	metrics.RecordCatalogCacheOperation("get", "miss")

	if h.boxCatalogService == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.boxCatalogService.GetActive(ctx)
	if err != nil || config == nil || len(config.Boxes) == 0 {
		return nil
	}

	h.catalogCache.set(config.Boxes)
	return config.Boxes
}

// InvalidateCatalogCache invalidates the cached box catalog.
// Call this when the catalog configuration is updated.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// CalculateShipment handles POST /api/shipments/calculate requests.
//
// @Summary      Calculate shipment weight and packaging
// @Description  Computes the billable shipment weight and packaging decision for a confirmed order: total product weight, packet count, box category, and whether the order must be split into a multi-piece shipment. Supports idempotency via Idempotency-Key header.
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateShipmentRequest true "Order line items"
// @Success      200 {object} dto.SuccessResponse "Shipment decision"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shipments/calculate [post]
func (h *Handler) CalculateShipment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			metrics.RecordShipmentCalculation(0, "validation_error", "order")
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "calculate_shipment", "Shipment calculation requested", map[string]interface{}{
				"item_count": len(req.Items),
			})
		}
	}

	start := time.Now()
	items := req.ToModel()

	var decision model.ShipmentDecision
	if catalog := h.getCatalog(c.Request.Context()); catalog != nil {
		decision = h.calculator.CalculateForOrderWithCatalog(items, catalog)
	} else {
		decision = h.calculator.CalculateForOrder(items)
	}

	metrics.RecordShipmentCalculation(time.Since(start), "success", "order")
	metrics.RecordBoxSelection(decision.Box.ID, decision.RequiresMPS)

	builder.SuccessOK(decision)
}

// EstimateShipment handles POST /api/shipments/estimate requests.
//
// @Summary      Estimate shipment weight for a cart
// @Description  Computes a pre-checkout shipping estimate from cart lines. Cart items carry no packet information, so each unit counts as one packet; items with unknown weight use the configured default unit weight.
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        request body dto.EstimateShipmentRequest true "Cart line items"
// @Success      200 {object} dto.SuccessResponse "Shipment estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shipments/estimate [post]
func (h *Handler) EstimateShipment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.EstimateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			metrics.RecordShipmentCalculation(0, "validation_error", "cart")
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	start := time.Now()
	items := req.ToModel()

	var decision model.ShipmentDecision
	if catalog := h.getCatalog(c.Request.Context()); catalog != nil {
		decision = h.calculator.CalculateForCartWithCatalog(items, catalog)
	} else {
		decision = h.calculator.CalculateForCart(items)
	}

	metrics.RecordShipmentCalculation(time.Since(start), "success", "cart")
	metrics.RecordBoxSelection(decision.Box.ID, decision.RequiresMPS)

	builder.SuccessOK(decision)
}
