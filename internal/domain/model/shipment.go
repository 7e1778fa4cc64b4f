package model

// OrderItem is one resolved line of a confirmed order. The caller resolves
// UnitWeightGrams against the product catalog before the calculation;
// PacketsPerUnit is the number of discrete physical packets bundled in one
// sellable unit (1 for a plain product, N for a combo pack).
//
// @Description Resolved order line item used for the packing decision
// @Example {"unit_weight_grams": 400, "quantity": 1, "packets_per_unit": 4}
type OrderItem struct {
	// UnitWeightGrams is the weight of one sold unit in grams
	UnitWeightGrams int `json:"unit_weight_grams" example:"400"`
	// Quantity is the number of units ordered
	Quantity int `json:"quantity" example:"1"`
	// PacketsPerUnit is the number of physical packets inside one unit
	PacketsPerUnit int `json:"packets_per_unit" example:"4"`
} // @name OrderItem

// CartItem is a lighter pre-checkout line with no packet concept. A zero
// WeightGrams means the weight is not yet known; the calculator substitutes
// its configured default.
//
// @Description Cart line item used for the pre-checkout shipping estimate
// @Example {"weight_grams": 100, "quantity": 2}
type CartItem struct {
	// WeightGrams is the unit weight in grams, 0 when unknown
	WeightGrams int `json:"weight_grams" example:"100"`
	// Quantity is the number of units in the cart
	Quantity int `json:"quantity" example:"2"`
} // @name CartItem

// ShipmentDecision is the full weight and packaging decision for one order or
// cart. It is computed fresh per call and owned by the caller; downstream code
// forwards ShipmentWeightGrams to the courier pricing API and the box,
// dimensions and package count to packing staff.
//
// @Description Shipment weight and packaging decision
// @Example {"total_product_weight_grams": 500, "total_packet_count": 7, "requires_mps": true, "mps_package_count": 2, "shipment_weight_grams": 600}
type ShipmentDecision struct {
	// TotalProductWeightGrams is the summed product weight of all line items
	TotalProductWeightGrams int `json:"total_product_weight_grams" example:"500"`
	// TotalPacketCount is the summed number of physical packets
	TotalPacketCount int `json:"total_packet_count" example:"7"`
	// RequiresMPS is true when the order exceeds a single box's packet capacity
	RequiresMPS bool `json:"requires_mps" example:"true"`
	// MPSPackageCount is the number of physical packages, present only when RequiresMPS
	MPSPackageCount int `json:"mps_package_count,omitempty" example:"2"`
	// Box is the category selected by packet-count classification
	Box BoxCategory `json:"box"`
	// Dimensions are the selected box dimensions, for packing instructions
	Dimensions Dimensions `json:"dimensions"`
	// ShipmentWeightGrams is the billable weight handed to the courier
	ShipmentWeightGrams int `json:"shipment_weight_grams" example:"600"`
} // @name ShipmentDecision

// PackageCount returns the number of physical parcels this decision maps to.
func (d ShipmentDecision) PackageCount() int {
	if d.RequiresMPS {
		return d.MPSPackageCount
	}
	return 1
}
