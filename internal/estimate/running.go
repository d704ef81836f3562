package estimate

import (
	"math"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

const perBoxCost = 5

// RunningQuote is the price band shown in the banner of a funnel step. Each
// step only counts what the visitor has disclosed so far.
func RunningQuote(s *domain.MoveState, step domain.Step) domain.PriceRange {
	rooms := float64(len(s.Rooms))
	switch step {
	case types.StepLanding, types.StepBasics:
		boxes := float64(basicsBoxes(s))
		return domain.PriceRange{
			Min: round(BaseMoveCost + rooms*PerRoomCost*0.8 + boxes*perBoxCost*0.8),
			Max: round(BaseMoveCost + rooms*PerRoomCost*1.3 + boxes*perBoxCost*1.2),
		}
	case types.StepInventory:
		itemCost := float64(TotalItems(s.Rooms)) * 15
		weightCost := TotalWeight(s.Rooms) * 0.5
		return domain.PriceRange{
			Min: round(BaseMoveCost + PerRoomCost*rooms*0.7 + itemCost*0.8 + weightCost*0.6),
			Max: round(BaseMoveCost + PerRoomCost*rooms*1.2 + itemCost*1.1 + weightCost*0.9),
		}
	case types.StepSpecialItems:
		base := BaseMoveCost + PerRoomCost*rooms + furnitureHandlingCost(s.Rooms) + SpecialItemsCost(s.SpecialItems)
		return scaled(base)
	case types.StepLocation:
		base := BaseMoveCost + PerRoomCost*rooms + PerMileCost*s.Basics.Distance()
		return scaled(base)
	}
	return Granular(s).CostRange
}

func scaled(base float64) domain.PriceRange {
	return domain.PriceRange{Min: round(base * granularMinPct), Max: round(base * granularMaxPct)}
}

// basicsBoxes counts the small, medium and large boxes chosen on the basics
// step, or the room-type defaults when none were recorded.
func basicsBoxes(s *domain.MoveState) int {
	if s.BoxCounts != nil {
		return s.BoxCounts.Small + s.BoxCounts.Medium + s.BoxCounts.Large
	}
	counts := make(map[domain.RoomType]int)
	for _, r := range s.Rooms {
		counts[r.Type]++
	}
	return BoxCountsForRoomTypes(counts).Total
}

// HomeDescription labels a home by room count and gives a ±20% box range.
func HomeDescription(rooms, boxes int) (description string, minBoxes, maxBoxes int) {
	switch {
	case rooms <= 2:
		description = "Studio/1BR"
	case rooms <= 4:
		description = "1-2BR apartment"
	case rooms <= 6:
		description = "2-3BR home"
	case rooms <= 8:
		description = "3-4BR home"
	default:
		description = "4BR+ home"
	}
	return description, int(round(float64(boxes) * 0.8)), int(round(float64(boxes) * 1.2))
}

// MoverCount is the "N movers ready" figure a step shows. It shrinks as the
// move gets bigger or longer.
func MoverCount(s *domain.MoveState, step domain.Step) int {
	switch step {
	case types.StepLanding, types.StepBasics:
		return max(3, 8-len(s.Rooms)/2)
	case types.StepInventory:
		return max(3, 7-TotalItems(s.Rooms)/15)
	case types.StepSpecialItems:
		switch n := len(s.Rooms); {
		case n <= 2:
			return 6
		case n <= 4:
			return 5
		}
		return 4
	}
	count := 6
	d := s.Basics.Distance()
	if d > 100 {
		count--
	}
	if d > 500 {
		count--
	}
	return max(3, count)
}

// WatchingMovers is the inventory-step "movers watching" figure, between 3
// and 6.
func WatchingMovers(items int) int {
	return min(6, max(3, int(math.Floor(float64(items)/5))+3))
}
