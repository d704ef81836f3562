package estimate

import "movefunnel/internal/domain"

// SpecialItemsCost sums average price times quantity over selected items.
func SpecialItemsCost(items []domain.SpecialItem) float64 {
	var total float64
	for _, it := range items {
		if it.Selected {
			total += it.PriceRange.Average() * float64(it.Quantity)
		}
	}
	return total
}

// ServicesCost prices the selected services.
//
// A service that offers sub-options is priced only through its selected
// sub-options; with none selected it adds nothing, whatever its own price.
// Other selected services add their own average. Sub-options of an
// unselected service are ignored.
func ServicesCost(services []domain.AdditionalService) float64 {
	var total float64
	for _, svc := range services {
		if !svc.Selected {
			continue
		}
		if len(svc.SubOptions) == 0 {
			total += svc.PriceRange.Average()
			continue
		}
		for _, sub := range svc.SubOptions {
			if sub.Selected {
				total += sub.PriceRange.Average()
			}
		}
	}
	return total
}
