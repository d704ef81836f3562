package catalog

import (
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

func special(id, name string, category types.SpecialItemCategory, min, max float64) domain.SpecialItem {
	return domain.SpecialItem{
		ID: id, Name: name, Category: category,
		PriceRange: domain.PriceRange{Min: min, Max: max},
		Quantity:   1,
	}
}

var specialItems = []domain.SpecialItem{
	special("piano_upright", "Piano (upright)", types.SpecialLargeHeavy, 200, 400),
	special("piano_grand", "Piano (grand)", types.SpecialLargeHeavy, 400, 800),
	special("pool_table", "Pool Table", types.SpecialLargeHeavy, 300, 500),
	special("safe_heavy", "Safe (heavy)", types.SpecialLargeHeavy, 150, 300),
	special("hot_tub", "Hot Tub", types.SpecialLargeHeavy, 400, 600),
	special("gym_equipment", "Gym Equipment", types.SpecialLargeHeavy, 100, 200),

	special("artwork_large", "Artwork (large)", types.SpecialFragileValuable, 50, 150),
	special("antiques", "Antiques", types.SpecialFragileValuable, 100, 300),
	special("wine_collection", "Wine Collection", types.SpecialFragileValuable, 50, 200),
	special("chandelier", "Chandelier", types.SpecialFragileValuable, 75, 150),
	special("aquarium", "Aquarium", types.SpecialFragileValuable, 100, 250),

	special("riding_mower", "Riding Mower", types.SpecialOutdoor, 100, 200),
	special("motorcycle", "Motorcycle", types.SpecialOutdoor, 150, 300),
	special("large_plants", "Large Plants", types.SpecialOutdoor, 30, 50),
	special("swing_set", "Swing Set", types.SpecialOutdoor, 150, 300),
}

var services = []domain.AdditionalService{
	{
		ID:          "packing_full",
		Name:        "Full Packing Service",
		Description: "Movers pack all your belongings professionally",
		PriceRange:  domain.PriceRange{Min: 300, Max: 600},
		Selected:    true,
	},
	{
		ID:          "packing_partial",
		Name:        "Partial Packing",
		Description: "Kitchen and fragile items only",
		PriceRange:  domain.PriceRange{Min: 150, Max: 300},
	},
	{
		ID:          "unpacking",
		Name:        "Unpacking Service",
		Description: "Movers unpack and set up at destination",
		PriceRange:  domain.PriceRange{Min: 200, Max: 400},
	},
	{
		ID:          "storage",
		Name:        "Storage",
		Description: "Temporary storage if needed",
		PriceRange:  domain.PriceRange{Min: 200, Max: 400},
		SubOptions: []domain.ServiceSubOption{
			{ID: "storage_short", Label: "Short-term (< 1 month)", PriceRange: domain.PriceRange{Min: 200, Max: 400}},
			{ID: "storage_long", Label: "Long-term (1+ months)", PriceRange: domain.PriceRange{Min: 150, Max: 250}},
		},
	},
	{
		ID:          "assembly",
		Name:        "Furniture Disassembly/Reassembly",
		Description: "Beds, tables, shelving units",
		PriceRange:  domain.PriceRange{Min: 100, Max: 200},
	},
}

// SpecialItems returns the special-item catalog, all unselected with quantity 1.
func SpecialItems() []domain.SpecialItem {
	return append([]domain.SpecialItem(nil), specialItems...)
}

// Services returns the add-on service catalog. Full packing starts selected.
func Services() []domain.AdditionalService {
	out := make([]domain.AdditionalService, len(services))
	for i, s := range services {
		out[i] = s.Clone()
	}
	return out
}
