package estimate

import (
	"math"

	"movefunnel/internal/catalog"
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

var homeSizeMultiplier = map[domain.HomeSize]float64{
	types.HomeStudio:  1,
	types.Home1BR:     1.5,
	types.Home2BR:     2,
	types.Home3BR:     3,
	types.Home4BRPlus: 4,
}

// BoxCountsForHomeSize scales a base box set by the home-size multiplier.
// Unknown or empty sizes use the two-bedroom multiplier.
func BoxCountsForHomeSize(size domain.HomeSize) domain.BoxCounts {
	m, ok := homeSizeMultiplier[size]
	if !ok {
		m = 2
	}
	return boxCounts(10*m, 15*m, 8*m, 2*m)
}

// BoxCountsForRooms allots boxes per room: 5 small, 8 medium, 4 large and 1
// wardrobe each.
func BoxCountsForRooms(rooms int) domain.BoxCounts {
	n := float64(max(rooms, 0))
	return boxCounts(5*n, 8*n, 4*n, n)
}

func boxCounts(small, medium, large, wardrobe float64) domain.BoxCounts {
	b := domain.BoxCounts{
		Small:    int(math.Ceil(small)),
		Medium:   int(math.Ceil(medium)),
		Large:    int(math.Ceil(large)),
		Wardrobe: int(math.Ceil(wardrobe)),
	}
	b.Total = b.Small + b.Medium + b.Large + b.Wardrobe
	return b
}

// BoxWeight is the packed weight of a box set, in pounds.
func BoxWeight(b domain.BoxCounts) float64 {
	return float64(b.Small*catalog.SmallBoxWeight +
		b.Medium*catalog.MediumBoxWeight +
		b.Large*catalog.LargeBoxWeight +
		b.Wardrobe*catalog.WardrobeBoxWeight)
}

// BoxCountsForRoomTypes sums the basics-step default boxes for a room mix and
// adds two wardrobe boxes per bedroom. Total counts the small, medium and
// large boxes only, as the basics step shows it.
func BoxCountsForRoomTypes(counts map[domain.RoomType]int) domain.BoxCounts {
	var b domain.BoxCounts
	for _, rt := range catalog.RoomTemplates() {
		n := max(counts[rt.Type], 0)
		b.Small += rt.DefaultBoxes.Small * n
		b.Medium += rt.DefaultBoxes.Medium * n
		b.Large += rt.DefaultBoxes.Large * n
	}
	b.Wardrobe = 2 * max(counts[types.RoomBedroom], 0)
	b.Total = b.Small + b.Medium + b.Large
	return b
}
