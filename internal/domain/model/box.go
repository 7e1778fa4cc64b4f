// Package model defines the core domain entities for the shipment service.
package model

import (
	"encoding/json"
	"math"
)

// UnboundedCeiling marks a ceiling that accepts any value. The largest box of
// a well-formed catalog carries it for both weight and packet ceilings.
const UnboundedCeiling = math.MaxInt

// Dimensions holds the physical dimensions of a box in centimeters.
// Used for packing instructions and courier payloads, never for weight logic.
//
// @Description Box dimensions in centimeters
// @Example {"length_cm": 20, "breadth_cm": 15, "height_cm": 10}
type Dimensions struct {
	LengthCm  int `json:"length_cm" bson:"length_cm" example:"20"`
	BreadthCm int `json:"breadth_cm" bson:"breadth_cm" example:"15"`
	HeightCm  int `json:"height_cm" bson:"height_cm" example:"10"`
}

// BoxCategory is a packaging size tier. MaxWeightGrams is the inclusive
// product-weight ceiling used for weight-based estimates; MaxPackets is the
// inclusive packet-count ceiling used for the confirmed-order packing
// decision. OverheadWeightGrams is the fixed packaging weight (box material,
// tape, filler) billed per physical package.
//
// @Description Box category with weight ceiling, packet capacity, dimensions and packaging overhead
type BoxCategory struct {
	// ID is the stable short identifier of the category
	ID string `json:"id" bson:"id" example:"box-s"`
	// Name is the human-readable label
	Name string `json:"name" bson:"name" example:"Small Box"`
	// MaxWeightGrams is the inclusive product-weight ceiling
	MaxWeightGrams int `json:"max_weight_grams" bson:"max_weight_grams" example:"500"`
	// MaxPackets is the inclusive packet-count ceiling
	MaxPackets int `json:"max_packets" bson:"max_packets" example:"2"`
	// Dimensions are the physical box dimensions
	Dimensions Dimensions `json:"dimensions" bson:"dimensions"`
	// OverheadWeightGrams is the packaging weight added per physical package
	OverheadWeightGrams int `json:"overhead_weight_grams" bson:"overhead_weight_grams" example:"30"`
} // @name BoxCategory

// boxCategoryWire is the JSON shape of BoxCategory. Unbounded ceilings travel
// as 0 on the wire; the in-memory sentinel exceeds float64 precision and would
// be corrupted by any JSON consumer that parses numbers as floats.
type boxCategoryWire struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	MaxWeightGrams      int        `json:"max_weight_grams"`
	MaxPackets          int        `json:"max_packets"`
	Dimensions          Dimensions `json:"dimensions"`
	OverheadWeightGrams int        `json:"overhead_weight_grams"`
}

// MarshalJSON emits unbounded ceilings as 0.
func (b BoxCategory) MarshalJSON() ([]byte, error) {
	w := boxCategoryWire{
		ID:                  b.ID,
		Name:                b.Name,
		MaxWeightGrams:      b.MaxWeightGrams,
		MaxPackets:          b.MaxPackets,
		Dimensions:          b.Dimensions,
		OverheadWeightGrams: b.OverheadWeightGrams,
	}
	if w.MaxWeightGrams == UnboundedCeiling {
		w.MaxWeightGrams = 0
	}
	if w.MaxPackets == UnboundedCeiling {
		w.MaxPackets = 0
	}
	return json.Marshal(w)
}

// UnmarshalJSON maps 0 ceilings back to UnboundedCeiling, the inverse of
// MarshalJSON. Bounded boxes always carry positive ceilings, so 0 is
// unambiguous on the wire.
func (b *BoxCategory) UnmarshalJSON(data []byte) error {
	var w boxCategoryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	b.ID = w.ID
	b.Name = w.Name
	b.MaxWeightGrams = w.MaxWeightGrams
	b.MaxPackets = w.MaxPackets
	b.Dimensions = w.Dimensions
	b.OverheadWeightGrams = w.OverheadWeightGrams
	if b.MaxWeightGrams == 0 {
		b.MaxWeightGrams = UnboundedCeiling
	}
	if b.MaxPackets == 0 {
		b.MaxPackets = UnboundedCeiling
	}
	return nil
}

// BoxCatalog is an ordered list of box categories, ascending by weight
// ceiling. The last entry must have unbounded ceilings so every input
// resolves to some category.
type BoxCatalog []BoxCategory

// DefaultBoxCatalog returns the standard box catalog. The weight ceilings,
// dimensions and overhead weights are contractual business values shared with
// the packing floor and the courier billing integration.
func DefaultBoxCatalog() BoxCatalog {
	return BoxCatalog{
		{
			ID:                  "box-s",
			Name:                "Small Box",
			MaxWeightGrams:      500,
			MaxPackets:          2,
			Dimensions:          Dimensions{LengthCm: 20, BreadthCm: 15, HeightCm: 10},
			OverheadWeightGrams: 30,
		},
		{
			ID:                  "box-m",
			Name:                "Medium Box",
			MaxWeightGrams:      1000,
			MaxPackets:          4,
			Dimensions:          Dimensions{LengthCm: 30, BreadthCm: 20, HeightCm: 15},
			OverheadWeightGrams: 40,
		},
		{
			ID:                  "box-l",
			Name:                "Large Box",
			MaxWeightGrams:      UnboundedCeiling,
			MaxPackets:          UnboundedCeiling,
			Dimensions:          Dimensions{LengthCm: 40, BreadthCm: 30, HeightCm: 20},
			OverheadWeightGrams: 50,
		},
	}
}

// SelectForWeight returns the first category whose weight ceiling covers the
// given total product weight. Falls back to the largest category; unreachable
// with a well-formed catalog since the last ceiling is unbounded.
func (c BoxCatalog) SelectForWeight(totalProductWeightGrams int) BoxCategory {
	for _, box := range c {
		if box.MaxWeightGrams >= totalProductWeightGrams {
			return box
		}
	}
	return c[len(c)-1]
}

// SelectForQuantity returns the first category whose packet capacity covers
// the given total packet count. This is an independent classification from
// SelectForWeight: box choice for a confirmed order is bound by how many
// discrete packets physically fit, not by gross weight. Counts above the
// single-box packet cap still resolve to the largest category, whose overhead
// is then billed once per package in the multi-package case.
func (c BoxCatalog) SelectForQuantity(totalPacketCount int) BoxCategory {
	for _, box := range c {
		if box.MaxPackets >= totalPacketCount {
			return box
		}
	}
	return c[len(c)-1]
}

// ShipmentWeight returns the billable weight for the simple single-package,
// weight-classified case: product weight plus the overhead of the box selected
// by weight. Used by the cart estimate path only.
func (c BoxCatalog) ShipmentWeight(totalProductWeightGrams int) int {
	return totalProductWeightGrams + c.SelectForWeight(totalProductWeightGrams).OverheadWeightGrams
}

// Smallest returns the first (smallest) category of the catalog.
func (c BoxCatalog) Smallest() BoxCategory {
	return c[0]
}
