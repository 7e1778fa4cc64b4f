package model

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultBoxCatalog verifies the contractual catalog values and ordering.
func TestDefaultBoxCatalog(t *testing.T) {
	catalog := DefaultBoxCatalog()
	require.Len(t, catalog, 3)

	assert.Equal(t, "box-s", catalog[0].ID)
	assert.Equal(t, "Small Box", catalog[0].Name)
	assert.Equal(t, 500, catalog[0].MaxWeightGrams)
	assert.Equal(t, Dimensions{LengthCm: 20, BreadthCm: 15, HeightCm: 10}, catalog[0].Dimensions)
	assert.Equal(t, 30, catalog[0].OverheadWeightGrams)

	assert.Equal(t, "box-m", catalog[1].ID)
	assert.Equal(t, 1000, catalog[1].MaxWeightGrams)
	assert.Equal(t, 40, catalog[1].OverheadWeightGrams)

	assert.Equal(t, "box-l", catalog[2].ID)
	assert.Equal(t, math.MaxInt, catalog[2].MaxWeightGrams)
	assert.Equal(t, math.MaxInt, catalog[2].MaxPackets)
	assert.Equal(t, 50, catalog[2].OverheadWeightGrams)

	// Ascending ceilings, unbounded top entry
	for i := 1; i < len(catalog); i++ {
		assert.Greater(t, catalog[i].MaxWeightGrams, catalog[i-1].MaxWeightGrams)
		assert.Greater(t, catalog[i].MaxPackets, catalog[i-1].MaxPackets)
	}
}

func TestBoxCatalog_SelectForWeight(t *testing.T) {
	catalog := DefaultBoxCatalog()

	tests := []struct {
		name        string
		weightGrams int
		expectedID  string
	}{
		{name: "zero weight selects small", weightGrams: 0, expectedID: "box-s"},
		{name: "within small ceiling", weightGrams: 499, expectedID: "box-s"},
		{name: "small ceiling is inclusive", weightGrams: 500, expectedID: "box-s"},
		{name: "just above small", weightGrams: 501, expectedID: "box-m"},
		{name: "medium ceiling is inclusive", weightGrams: 1000, expectedID: "box-m"},
		{name: "above medium", weightGrams: 1001, expectedID: "box-l"},
		{name: "very heavy", weightGrams: 250000, expectedID: "box-l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedID, catalog.SelectForWeight(tt.weightGrams).ID)
		})
	}
}

func TestBoxCatalog_SelectForQuantity(t *testing.T) {
	catalog := DefaultBoxCatalog()

	tests := []struct {
		name       string
		packets    int
		expectedID string
	}{
		{name: "zero packets selects small", packets: 0, expectedID: "box-s"},
		{name: "1 packet", packets: 1, expectedID: "box-s"},
		{name: "2 packets", packets: 2, expectedID: "box-s"},
		{name: "3 packets", packets: 3, expectedID: "box-m"},
		{name: "4 packets", packets: 4, expectedID: "box-m"},
		{name: "5 packets", packets: 5, expectedID: "box-l"},
		{name: "6 packets", packets: 6, expectedID: "box-l"},
		{name: "above single-box cap still resolves large", packets: 19, expectedID: "box-l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedID, catalog.SelectForQuantity(tt.packets).ID)
		})
	}
}

// TestBoxCatalog_SelectForQuantity_Monotonic checks the policy table never
// assigns a smaller box to a larger packet count.
func TestBoxCatalog_SelectForQuantity_Monotonic(t *testing.T) {
	catalog := DefaultBoxCatalog()
	indexOf := func(id string) int {
		for i, b := range catalog {
			if b.ID == id {
				return i
			}
		}
		return -1
	}

	prev := 0
	for packets := 0; packets <= 20; packets++ {
		idx := indexOf(catalog.SelectForQuantity(packets).ID)
		assert.GreaterOrEqual(t, idx, prev, "packets=%d", packets)
		prev = idx
	}
}

func TestBoxCatalog_ShipmentWeight(t *testing.T) {
	catalog := DefaultBoxCatalog()

	tests := []struct {
		name        string
		weightGrams int
		expected    int
	}{
		{name: "small box adds 30g", weightGrams: 200, expected: 230},
		{name: "boundary stays small", weightGrams: 500, expected: 530},
		{name: "medium box adds 40g", weightGrams: 750, expected: 790},
		{name: "large box adds 50g", weightGrams: 2400, expected: 2450},
		{name: "empty cart is overhead only", weightGrams: 0, expected: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.ShipmentWeight(tt.weightGrams))
		})
	}
}

func TestBoxCatalog_Smallest(t *testing.T) {
	assert.Equal(t, "box-s", DefaultBoxCatalog().Smallest().ID)
}

// TestBoxCategory_JSONRoundTrip checks that unbounded ceilings travel as 0 on
// the wire and come back as the sentinel. The raw sentinel exceeds float64
// precision, so it must never reach a JSON consumer.
func TestBoxCategory_JSONRoundTrip(t *testing.T) {
	catalog := DefaultBoxCatalog()

	data, err := json.Marshal(catalog)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max_weight_grams":0`)
	assert.Contains(t, string(data), `"max_packets":0`)
	assert.NotContains(t, string(data), strconv.Itoa(math.MaxInt))

	var decoded BoxCatalog
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, catalog, decoded)
}

func TestBoxCategory_JSONBoundedCeilings(t *testing.T) {
	box := DefaultBoxCatalog()[0]

	data, err := json.Marshal(box)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max_weight_grams":500`)
	assert.Contains(t, string(data), `"max_packets":2`)

	var decoded BoxCategory
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, box, decoded)
}
