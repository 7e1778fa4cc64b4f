// Package service contains the business logic for the shipment service.
package service

import (
	"github.com/munchbox/shipment-service/internal/domain/model"
)

const (
	// DefaultUnitWeightGrams is the nominal weight substituted for cart items
	// whose product weight has not been resolved yet. Single source of truth;
	// callers must not repeat this literal.
	DefaultUnitWeightGrams = 100

	// MaxPacketsPerPackage is the hard packing-floor cap on packets per
	// physical box, independent of box category. Orders above it ship as a
	// multi-package shipment.
	MaxPacketsPerPackage = 6
)

// ShipmentCalculator turns order or cart line items into a deterministic
// shipment weight and packaging decision. Implementations must be pure: no
// I/O, no hidden state, bit-identical output for identical input. The result
// feeds the courier pricing call, so this is a billing-critical path.
type ShipmentCalculator interface {
	// CalculateForOrder produces the full packing decision for a confirmed
	// order, tracking packet counts for combo products.
	CalculateForOrder(items []model.OrderItem) model.ShipmentDecision
	// CalculateForOrderWithCatalog is CalculateForOrder against a
	// caller-supplied box catalog (e.g. the active catalog from the database).
	CalculateForOrderWithCatalog(items []model.OrderItem, catalog model.BoxCatalog) model.ShipmentDecision
	// CalculateForCart produces the simplified pre-checkout estimate: every
	// unit counts as one packet and unknown weights default to
	// DefaultUnitWeightGrams.
	CalculateForCart(items []model.CartItem) model.ShipmentDecision
	// CalculateForCartWithCatalog is CalculateForCart against a
	// caller-supplied box catalog.
	CalculateForCartWithCatalog(items []model.CartItem, catalog model.BoxCatalog) model.ShipmentDecision
}

// Option configures a ShipmentCalculatorService.
type Option func(*ShipmentCalculatorService)

// ShipmentCalculatorService implements ShipmentCalculator against an
// immutable box catalog captured at construction time.
type ShipmentCalculatorService struct {
	catalog           model.BoxCatalog
	defaultUnitWeight int
}

// NewShipmentCalculatorService creates a calculator with the given options.
func NewShipmentCalculatorService(opts ...Option) *ShipmentCalculatorService {
	s := &ShipmentCalculatorService{
		catalog:           model.DefaultBoxCatalog(),
		defaultUnitWeight: DefaultUnitWeightGrams,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithBoxCatalog sets a custom box catalog for the calculator.
func WithBoxCatalog(catalog model.BoxCatalog) Option {
	return func(s *ShipmentCalculatorService) {
		if len(catalog) > 0 {
			s.catalog = append(model.BoxCatalog(nil), catalog...)
		}
	}
}

// WithDefaultUnitWeight overrides the fallback unit weight for cart items
// with unresolved product weight.
func WithDefaultUnitWeight(grams int) Option {
	return func(s *ShipmentCalculatorService) {
		if grams > 0 {
			s.defaultUnitWeight = grams
		}
	}
}

// CalculateForOrder computes the packing decision for a confirmed order.
func (s *ShipmentCalculatorService) CalculateForOrder(items []model.OrderItem) model.ShipmentDecision {
	return s.CalculateForOrderWithCatalog(items, s.catalog)
}

// CalculateForOrderWithCatalog computes the packing decision for a confirmed
// order against the given catalog.
//
// Box choice is driven by total packet count, not total weight: packing
// capacity (how many discrete packets fit in a box) is the binding physical
// constraint for a real shipment. Packaging overhead is billed once per
// physical package.
func (s *ShipmentCalculatorService) CalculateForOrderWithCatalog(items []model.OrderItem, catalog model.BoxCatalog) model.ShipmentDecision {
	if len(catalog) == 0 {
		catalog = s.catalog
	}

	var totalWeight, totalPackets int
	for _, item := range items {
		packets := item.PacketsPerUnit
		if packets <= 0 {
			packets = 1
		}
		totalWeight += item.UnitWeightGrams * item.Quantity
		totalPackets += item.Quantity * packets
	}

	return s.decide(totalWeight, totalPackets, catalog)
}

// CalculateForCart computes the pre-checkout estimate for raw cart items.
func (s *ShipmentCalculatorService) CalculateForCart(items []model.CartItem) model.ShipmentDecision {
	return s.CalculateForCartWithCatalog(items, s.catalog)
}

// CalculateForCartWithCatalog computes the pre-checkout estimate against the
// given catalog. The cart path deliberately has no packet concept: each unit
// counts as one packet, and items with unresolved weight fall back to the
// configured default. Kept as its own accumulation loop rather than mapped
// onto the order path so the two policies can diverge independently.
func (s *ShipmentCalculatorService) CalculateForCartWithCatalog(items []model.CartItem, catalog model.BoxCatalog) model.ShipmentDecision {
	if len(catalog) == 0 {
		catalog = s.catalog
	}

	var totalWeight, totalPackets int
	for _, item := range items {
		weight := item.WeightGrams
		if weight <= 0 {
			weight = s.defaultUnitWeight
		}
		totalWeight += weight * item.Quantity
		totalPackets += item.Quantity
	}

	return s.decide(totalWeight, totalPackets, catalog)
}

// decide assembles the decision from accumulated totals. An empty input
// resolves to the smallest box with its overhead as the billable weight.
func (s *ShipmentCalculatorService) decide(totalWeight, totalPackets int, catalog model.BoxCatalog) model.ShipmentDecision {
	box := catalog.Smallest()
	if totalPackets > 0 {
		box = catalog.SelectForQuantity(totalPackets)
	}

	decision := model.ShipmentDecision{
		TotalProductWeightGrams: totalWeight,
		TotalPacketCount:        totalPackets,
		Box:                     box,
		Dimensions:              box.Dimensions,
	}

	if totalPackets > MaxPacketsPerPackage {
		decision.RequiresMPS = true
		decision.MPSPackageCount = (totalPackets + MaxPacketsPerPackage - 1) / MaxPacketsPerPackage
		decision.ShipmentWeightGrams = totalWeight + box.OverheadWeightGrams*decision.MPSPackageCount
	} else {
		decision.ShipmentWeightGrams = totalWeight + box.OverheadWeightGrams
	}

	return decision
}
