package service

import (
	"testing"

	"github.com/munchbox/shipment-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewShipmentCalculatorService tests the constructor and options.
func TestNewShipmentCalculatorService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *ShipmentCalculatorService)
	}{
		{
			name:    "uses default catalog and unit weight when no options",
			options: nil,
			validate: func(t *testing.T, svc *ShipmentCalculatorService) {
				assert.Equal(t, model.DefaultBoxCatalog(), svc.catalog)
				assert.Equal(t, DefaultUnitWeightGrams, svc.defaultUnitWeight)
			},
		},
		{
			name: "uses custom catalog with option",
			options: []Option{WithBoxCatalog(model.BoxCatalog{
				{ID: "crate", MaxWeightGrams: 1 << 30, MaxPackets: 1 << 30, OverheadWeightGrams: 80},
			})},
			validate: func(t *testing.T, svc *ShipmentCalculatorService) {
				require.Len(t, svc.catalog, 1)
				assert.Equal(t, "crate", svc.catalog[0].ID)
			},
		},
		{
			name:    "empty catalog option is ignored",
			options: []Option{WithBoxCatalog(nil)},
			validate: func(t *testing.T, svc *ShipmentCalculatorService) {
				assert.Equal(t, model.DefaultBoxCatalog(), svc.catalog)
			},
		},
		{
			name:    "overrides default unit weight",
			options: []Option{WithDefaultUnitWeight(150)},
			validate: func(t *testing.T, svc *ShipmentCalculatorService) {
				assert.Equal(t, 150, svc.defaultUnitWeight)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewShipmentCalculatorService(tt.options...)
			if tt.validate != nil {
				tt.validate(t, svc)
			}
		})
	}
}

// TestShipmentCalculatorService_CalculateForOrder tests the core order path.
func TestShipmentCalculatorService_CalculateForOrder(t *testing.T) {
	svc := NewShipmentCalculatorService()

	tests := []struct {
		name            string
		items           []model.OrderItem
		expectedWeight  int
		expectedPackets int
		expectedMPS     bool
		expectedPkgs    int
		expectedBoxID   string
		expectedBilled  int
	}{
		{
			name:            "two single-packet units",
			items:           []model.OrderItem{{UnitWeightGrams: 100, Quantity: 2, PacketsPerUnit: 1}},
			expectedWeight:  200,
			expectedPackets: 2,
			expectedMPS:     false,
			expectedBoxID:   "box-s",
			expectedBilled:  200 + 30,
		},
		{
			name:            "one combo unit of four packets",
			items:           []model.OrderItem{{UnitWeightGrams: 400, Quantity: 1, PacketsPerUnit: 4}},
			expectedWeight:  400,
			expectedPackets: 4,
			expectedMPS:     false,
			expectedBoxID:   "box-m",
			expectedBilled:  400 + 40,
		},
		{
			name: "mixed lines cross the MPS threshold",
			items: []model.OrderItem{
				{UnitWeightGrams: 100, Quantity: 3, PacketsPerUnit: 1},
				{UnitWeightGrams: 100, Quantity: 2, PacketsPerUnit: 2},
			},
			expectedWeight:  500,
			expectedPackets: 7,
			expectedMPS:     true,
			expectedPkgs:    2,
			expectedBoxID:   "box-l",
			expectedBilled:  500 + 50*2,
		},
		{
			name:            "exactly six packets stays single package",
			items:           []model.OrderItem{{UnitWeightGrams: 120, Quantity: 1, PacketsPerUnit: 6}},
			expectedWeight:  120,
			expectedPackets: 6,
			expectedMPS:     false,
			expectedBoxID:   "box-l",
			expectedBilled:  120 + 50,
		},
		{
			name: "seventh packet flips to two packages",
			items: []model.OrderItem{
				{UnitWeightGrams: 120, Quantity: 1, PacketsPerUnit: 6},
				{UnitWeightGrams: 80, Quantity: 1, PacketsPerUnit: 1},
			},
			expectedWeight:  200,
			expectedPackets: 7,
			expectedMPS:     true,
			expectedPkgs:    2,
			expectedBoxID:   "box-l",
			expectedBilled:  200 + 50*2,
		},
		{
			name:            "twelve packets still two packages",
			items:           []model.OrderItem{{UnitWeightGrams: 100, Quantity: 12, PacketsPerUnit: 1}},
			expectedWeight:  1200,
			expectedPackets: 12,
			expectedMPS:     true,
			expectedPkgs:    2,
			expectedBoxID:   "box-l",
			expectedBilled:  1200 + 50*2,
		},
		{
			name:            "thirteen packets need three packages",
			items:           []model.OrderItem{{UnitWeightGrams: 100, Quantity: 13, PacketsPerUnit: 1}},
			expectedWeight:  1300,
			expectedPackets: 13,
			expectedMPS:     true,
			expectedPkgs:    3,
			expectedBoxID:   "box-l",
			expectedBilled:  1300 + 50*3,
		},
		{
			name:            "zero packets-per-unit defaults to one",
			items:           []model.OrderItem{{UnitWeightGrams: 250, Quantity: 2, PacketsPerUnit: 0}},
			expectedWeight:  500,
			expectedPackets: 2,
			expectedMPS:     false,
			expectedBoxID:   "box-s",
			expectedBilled:  500 + 30,
		},
		{
			name:            "empty order resolves to smallest box",
			items:           nil,
			expectedWeight:  0,
			expectedPackets: 0,
			expectedMPS:     false,
			expectedBoxID:   "box-s",
			expectedBilled:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := svc.CalculateForOrder(tt.items)

			assert.Equal(t, tt.expectedWeight, decision.TotalProductWeightGrams)
			assert.Equal(t, tt.expectedPackets, decision.TotalPacketCount)
			assert.Equal(t, tt.expectedMPS, decision.RequiresMPS)
			assert.Equal(t, tt.expectedBoxID, decision.Box.ID)
			assert.Equal(t, decision.Box.Dimensions, decision.Dimensions)
			assert.Equal(t, tt.expectedBilled, decision.ShipmentWeightGrams)
			if tt.expectedMPS {
				assert.Equal(t, tt.expectedPkgs, decision.MPSPackageCount)
				assert.Equal(t, tt.expectedPkgs, decision.PackageCount())
			} else {
				assert.Zero(t, decision.MPSPackageCount)
				assert.Equal(t, 1, decision.PackageCount())
			}
		})
	}
}

// TestShipmentCalculatorService_CalculateForCart tests the pre-checkout path.
func TestShipmentCalculatorService_CalculateForCart(t *testing.T) {
	svc := NewShipmentCalculatorService()

	tests := []struct {
		name            string
		items           []model.CartItem
		expectedWeight  int
		expectedPackets int
		expectedBilled  int
	}{
		{
			name:            "known weights accumulate",
			items:           []model.CartItem{{WeightGrams: 200, Quantity: 2}},
			expectedWeight:  400,
			expectedPackets: 2,
			expectedBilled:  400 + 30,
		},
		{
			name:            "unknown weight defaults to 100g",
			items:           []model.CartItem{{WeightGrams: 0, Quantity: 1}},
			expectedWeight:  100,
			expectedPackets: 1,
			expectedBilled:  100 + 30,
		},
		{
			name: "mixed known and unknown weights",
			items: []model.CartItem{
				{WeightGrams: 0, Quantity: 2},
				{WeightGrams: 350, Quantity: 1},
			},
			expectedWeight:  550,
			expectedPackets: 3,
			expectedBilled:  550 + 40,
		},
		{
			name:            "each cart unit counts as a single packet",
			items:           []model.CartItem{{WeightGrams: 50, Quantity: 7}},
			expectedWeight:  350,
			expectedPackets: 7,
			expectedBilled:  350 + 50*2,
		},
		{
			name:            "empty cart",
			items:           nil,
			expectedWeight:  0,
			expectedPackets: 0,
			expectedBilled:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := svc.CalculateForCart(tt.items)

			assert.Equal(t, tt.expectedWeight, decision.TotalProductWeightGrams)
			assert.Equal(t, tt.expectedPackets, decision.TotalPacketCount)
			assert.Equal(t, tt.expectedBilled, decision.ShipmentWeightGrams)
		})
	}
}

// TestShipmentCalculatorService_OverheadBilledPerPackage pins the billing
// rule: overhead once for single-package shipments, once per package for MPS.
func TestShipmentCalculatorService_OverheadBilledPerPackage(t *testing.T) {
	svc := NewShipmentCalculatorService()

	single := svc.CalculateForOrder([]model.OrderItem{{UnitWeightGrams: 100, Quantity: 6, PacketsPerUnit: 1}})
	require.False(t, single.RequiresMPS)
	assert.Equal(t, single.TotalProductWeightGrams+single.Box.OverheadWeightGrams, single.ShipmentWeightGrams)

	multi := svc.CalculateForOrder([]model.OrderItem{{UnitWeightGrams: 100, Quantity: 14, PacketsPerUnit: 1}})
	require.True(t, multi.RequiresMPS)
	assert.Equal(t, 3, multi.MPSPackageCount)
	assert.Equal(t, multi.TotalProductWeightGrams+multi.Box.OverheadWeightGrams*3, multi.ShipmentWeightGrams)
}

// TestShipmentCalculatorService_Monotonic checks that raising a line quantity
// never lowers any of the accumulated totals.
func TestShipmentCalculatorService_Monotonic(t *testing.T) {
	svc := NewShipmentCalculatorService()

	var prev model.ShipmentDecision
	for qty := 0; qty <= 25; qty++ {
		decision := svc.CalculateForOrder([]model.OrderItem{{UnitWeightGrams: 80, Quantity: qty, PacketsPerUnit: 2}})
		if qty > 0 {
			assert.GreaterOrEqual(t, decision.TotalProductWeightGrams, prev.TotalProductWeightGrams)
			assert.GreaterOrEqual(t, decision.TotalPacketCount, prev.TotalPacketCount)
			assert.GreaterOrEqual(t, decision.ShipmentWeightGrams, prev.ShipmentWeightGrams)
		}
		prev = decision
	}
}

// TestShipmentCalculatorService_Deterministic checks repeat calls are
// bit-identical, since the output feeds a priced courier API call.
func TestShipmentCalculatorService_Deterministic(t *testing.T) {
	svc := NewShipmentCalculatorService()
	items := []model.OrderItem{
		{UnitWeightGrams: 130, Quantity: 3, PacketsPerUnit: 2},
		{UnitWeightGrams: 410, Quantity: 1, PacketsPerUnit: 4},
	}

	first := svc.CalculateForOrder(items)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.CalculateForOrder(items))
	}
}

// TestShipmentCalculatorService_WithCatalog exercises the custom-catalog
// variants used when the active catalog comes from the database.
func TestShipmentCalculatorService_WithCatalog(t *testing.T) {
	svc := NewShipmentCalculatorService()
	custom := model.BoxCatalog{
		{ID: "pouch", Name: "Pouch", MaxWeightGrams: 250, MaxPackets: 1, OverheadWeightGrams: 10},
		{ID: "carton", Name: "Carton", MaxWeightGrams: 1 << 40, MaxPackets: 1 << 40, OverheadWeightGrams: 60},
	}

	decision := svc.CalculateForOrderWithCatalog([]model.OrderItem{{UnitWeightGrams: 90, Quantity: 1, PacketsPerUnit: 1}}, custom)
	assert.Equal(t, "pouch", decision.Box.ID)
	assert.Equal(t, 90+10, decision.ShipmentWeightGrams)

	estimate := svc.CalculateForCartWithCatalog([]model.CartItem{{Quantity: 2}}, custom)
	assert.Equal(t, "carton", estimate.Box.ID)
	assert.Equal(t, 200+60, estimate.ShipmentWeightGrams)

	// Nil catalog falls back to the service catalog
	fallback := svc.CalculateForOrderWithCatalog(nil, nil)
	assert.Equal(t, "box-s", fallback.Box.ID)
}

// TestShipmentCalculatorService_LowWeightHighPackets documents that the two
// classification axes can diverge: a light combo order packs into a bigger
// box than its weight alone would suggest.
func TestShipmentCalculatorService_LowWeightHighPackets(t *testing.T) {
	catalog := model.DefaultBoxCatalog()
	svc := NewShipmentCalculatorService()

	decision := svc.CalculateForOrder([]model.OrderItem{{UnitWeightGrams: 40, Quantity: 1, PacketsPerUnit: 5}})

	assert.Equal(t, "box-l", decision.Box.ID)
	assert.Equal(t, "box-s", catalog.SelectForWeight(decision.TotalProductWeightGrams).ID)
}
