package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/shipment-service/internal/domain/dto"
	"github.com/munchbox/shipment-service/internal/i18n"
	"github.com/munchbox/shipment-service/internal/middleware"
	"github.com/munchbox/shipment-service/internal/service"
)

// BoxCatalogHandler provides HTTP handlers for box catalog routes.
type BoxCatalogHandler struct {
	boxCatalogService service.BoxCatalogService
	shipmentHandler   *Handler
}

// NewBoxCatalogHandler creates a new BoxCatalogHandler instance.
// The shipment handler is used to invalidate its catalog cache on updates.
func NewBoxCatalogHandler(boxCatalogService service.BoxCatalogService, shipmentHandler *Handler) *BoxCatalogHandler {
	return &BoxCatalogHandler{
		boxCatalogService: boxCatalogService,
		shipmentHandler:   shipmentHandler,
	}
}

// GetActiveBoxCatalog handles GET /api/boxes requests.
//
// @Summary      Get active box catalog
// @Description  Returns the currently active box catalog configuration
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Active box catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "No active box catalog found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [get]
func (h *BoxCatalogHandler) GetActiveBoxCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.boxCatalogService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"boxes":      config.Boxes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateBoxCatalog handles PUT /api/boxes requests.
//
// @Summary      Update box catalog
// @Description  Replaces the active box catalog configuration. Ceilings must be strictly ascending and the largest box unbounded.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdateBoxCatalogRequest true "Box catalog configuration"
// @Success      200 {object} dto.SuccessResponse "Updated box catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [put]
func (h *BoxCatalogHandler) UpdateBoxCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateBoxCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	catalog := req.ToModel()
	if err := service.ValidateCatalog(catalog); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = middleware.GetSubject(c)
	}

	config, err := h.boxCatalogService.Create(c.Request.Context(), catalog, updatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.shipmentHandler != nil {
		h.shipmentHandler.InvalidateCatalogCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_box_catalog", "Box catalog configuration updated", map[string]interface{}{
				"box_count": len(catalog),
				"version":   config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"boxes":      config.Boxes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListBoxCatalogs handles GET /api/boxes/history requests.
//
// @Summary      List box catalog history
// @Description  Returns past and present box catalog configurations, newest first
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Box catalog history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes/history [get]
func (h *BoxCatalogHandler) ListBoxCatalogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.boxCatalogService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
