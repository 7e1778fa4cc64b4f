// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"strconv"

	"github.com/munchbox/shipment-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoItems is returned when the items list is empty.
	ErrNoItems = &ValidationError{
		Field:   "items",
		Message: "at least one item is required",
	}
)

// OrderItemRequest is a single order line in a shipment calculation request.
type OrderItemRequest struct {
	// UnitWeightGrams is the weight of a single unit in grams.
	// When omitted or zero, the server-configured default unit weight is used.
	UnitWeightGrams int `json:"unit_weight_grams" example:"250" minimum:"0"`
	// Quantity is the number of units ordered. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"3" minimum:"1"`
	// PacketsPerUnit is the number of physical packets one unit ships as.
	// When omitted or zero, each unit counts as a single packet.
	PacketsPerUnit int `json:"packets_per_unit" example:"1" minimum:"0"`
} // @name OrderItemRequest

// CalculateShipmentRequest represents the JSON request body for the shipment
// weight calculation endpoint.
//
// @Description Request to compute billable shipment weight and packaging for an order
// @Example {"items": [{"unit_weight_grams": 250, "quantity": 3, "packets_per_unit": 1}]}
type CalculateShipmentRequest struct {
	// Items are the order lines to pack. Must contain at least one entry.
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
} // @name CalculateShipmentRequest

// Validate performs custom validation on the request.
func (r *CalculateShipmentRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for i, item := range r.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if item.Quantity <= 0 {
			return &ValidationError{Field: prefix + "quantity", Message: "must be a positive integer"}
		}
		if item.UnitWeightGrams < 0 {
			return &ValidationError{Field: prefix + "unit_weight_grams", Message: "must not be negative"}
		}
		if item.PacketsPerUnit < 0 {
			return &ValidationError{Field: prefix + "packets_per_unit", Message: "must not be negative"}
		}
	}
	return nil
}

// ToModel converts the request into domain order items.
func (r *CalculateShipmentRequest) ToModel() []model.OrderItem {
	items := make([]model.OrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = model.OrderItem{
			UnitWeightGrams: item.UnitWeightGrams,
			Quantity:        item.Quantity,
			PacketsPerUnit:  item.PacketsPerUnit,
		}
	}
	return items
}

// CartItemRequest is a single cart line in a shipment estimate request.
type CartItemRequest struct {
	// WeightGrams is the weight of one unit in grams. When omitted or zero,
	// the server-configured default unit weight is used.
	WeightGrams int `json:"weight_grams" example:"250" minimum:"0"`
	// Quantity is the number of units in the cart. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"2" minimum:"1"`
} // @name CartItemRequest

// EstimateShipmentRequest represents the JSON request body for the checkout
// estimate endpoint. Cart lines carry no packet information, so each unit is
// treated as one packet.
//
// @Description Request to estimate shipment weight for an in-progress cart
// @Example {"items": [{"weight_grams": 250, "quantity": 2}]}
type EstimateShipmentRequest struct {
	// Items are the cart lines to estimate. Must contain at least one entry.
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
} // @name EstimateShipmentRequest

// Validate performs custom validation on the request.
func (r *EstimateShipmentRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for i, item := range r.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if item.Quantity <= 0 {
			return &ValidationError{Field: prefix + "quantity", Message: "must be a positive integer"}
		}
		if item.WeightGrams < 0 {
			return &ValidationError{Field: prefix + "weight_grams", Message: "must not be negative"}
		}
	}
	return nil
}

// ToModel converts the request into domain cart items.
func (r *EstimateShipmentRequest) ToModel() []model.CartItem {
	items := make([]model.CartItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = model.CartItem{
			WeightGrams: item.WeightGrams,
			Quantity:    item.Quantity,
		}
	}
	return items
}

// BoxDimensionsRequest is the nested dimensions object of a box definition,
// mirroring the shape the catalog endpoints return.
type BoxDimensionsRequest struct {
	LengthCm  int `json:"length_cm" binding:"required,gt=0" example:"20"`
	BreadthCm int `json:"breadth_cm" binding:"required,gt=0" example:"15"`
	HeightCm  int `json:"height_cm" binding:"required,gt=0" example:"10"`
} // @name BoxDimensionsRequest

// BoxCategoryRequest is a single box definition in a catalog update request.
type BoxCategoryRequest struct {
	// ID is the stable identifier of the box category (e.g. "box-s").
	ID string `json:"id" binding:"required"`
	// Name is the display name of the box category.
	Name string `json:"name" binding:"required"`
	// MaxWeightGrams is the product weight ceiling for this box.
	// Use 0 for the largest box to mark it unbounded.
	MaxWeightGrams int `json:"max_weight_grams" minimum:"0"`
	// MaxPackets is the packet count ceiling for this box.
	// Use 0 for the largest box to mark it unbounded.
	MaxPackets int `json:"max_packets" minimum:"0"`
	// Dimensions are the outer box dimensions in centimeters.
	Dimensions BoxDimensionsRequest `json:"dimensions" binding:"required"`
	// OverheadWeightGrams is the packaging overhead added per package.
	OverheadWeightGrams int `json:"overhead_weight_grams" binding:"required,gt=0"`
} // @name BoxCategoryRequest

// UpdateBoxCatalogRequest represents the JSON request body for replacing the
// active box catalog.
type UpdateBoxCatalogRequest struct {
	// Boxes is the ordered list of box categories, smallest first.
	Boxes []BoxCategoryRequest `json:"boxes" binding:"required,min=1,dive"`
	// UpdatedBy is the identifier of who submitted this configuration.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdateBoxCatalogRequest

// ToModel converts the request into a domain box catalog. Zero ceilings are
// mapped to the unbounded sentinel used by the largest box.
func (r *UpdateBoxCatalogRequest) ToModel() model.BoxCatalog {
	catalog := make(model.BoxCatalog, len(r.Boxes))
	for i, box := range r.Boxes {
		maxWeight := box.MaxWeightGrams
		if maxWeight == 0 {
			maxWeight = model.UnboundedCeiling
		}
		maxPackets := box.MaxPackets
		if maxPackets == 0 {
			maxPackets = model.UnboundedCeiling
		}
		catalog[i] = model.BoxCategory{
			ID:             box.ID,
			Name:           box.Name,
			MaxWeightGrams: maxWeight,
			MaxPackets:     maxPackets,
			Dimensions: model.Dimensions{
				LengthCm:  box.Dimensions.LengthCm,
				BreadthCm: box.Dimensions.BreadthCm,
				HeightCm:  box.Dimensions.HeightCm,
			},
			OverheadWeightGrams: box.OverheadWeightGrams,
		}
	}
	return catalog
}
