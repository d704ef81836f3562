package estimate

import (
	"math"

	"movefunnel/internal/domain"
)

// TotalItems sums furniture counts across rooms.
func TotalItems(rooms []domain.Room) int {
	n := 0
	for _, r := range rooms {
		n += r.ItemCount()
	}
	return n
}

// TotalWeight sums weight times count across rooms, in pounds.
func TotalWeight(rooms []domain.Room) float64 {
	var w float64
	for _, r := range rooms {
		for _, f := range r.Furniture {
			w += f.Weight * float64(f.Count)
		}
	}
	return w
}

// TotalVolume sums volume times count across rooms, in cubic feet.
func TotalVolume(rooms []domain.Room) float64 {
	var v float64
	for _, r := range rooms {
		for _, f := range r.Furniture {
			v += f.Volume * float64(f.Count)
		}
	}
	return v
}

// furnitureHandlingCost is the weight-based furniture charge of the granular
// strategy: half a dollar per pound.
func furnitureHandlingCost(rooms []domain.Room) float64 {
	return TotalWeight(rooms) * 0.5
}

// round rounds half up, matching how the funnel has always displayed prices.
func round(x float64) float64 { return math.Floor(x + 0.5) }
