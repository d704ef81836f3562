package estimate

import (
	"math"

	"movefunnel/internal/catalog"
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

// Phase selects a cost strategy.
type Phase string

const (
	// PhasePreset prices from the home-size band. Used before inventory.
	PhasePreset Phase = "preset"
	// PhaseGranular prices from rooms, weight, distance and add-ons.
	PhaseGranular Phase = "granular"
)

// ParsePhase validates a phase name.
func ParsePhase(s string) (Phase, bool) {
	switch Phase(s) {
	case PhasePreset, PhaseGranular:
		return Phase(s), true
	}
	return "", false
}

// PhaseForStep returns the strategy shown on step. Everything from the
// inventory step on is priced granularly.
func PhaseForStep(step domain.Step) Phase {
	switch step {
	case types.StepLanding, types.StepBasics, "":
		return PhasePreset
	}
	return PhaseGranular
}

// Granular pricing constants, in dollars.
const (
	BaseMoveCost   = 800
	PerRoomCost    = 350
	PerMileCost    = 2.5
	granularMinPct = 0.8
	granularMaxPct = 1.3
)

var fallbackRange = domain.PriceRange{Min: 1500, Max: 3000}

// Generate runs the strategy for phase. Unknown phases price granularly.
func Generate(s *domain.MoveState, phase Phase) domain.MoveEstimate {
	if phase == PhasePreset {
		return Preset(s)
	}
	return Granular(s)
}

// Preset prices a move from its home-size band plus add-ons. An unset home
// size is treated as two bedrooms; an unknown one falls back to 1500-3000.
func Preset(s *domain.MoveState) domain.MoveEstimate {
	size := s.Basics.HomeSize
	if size == "" {
		size = types.Home2BR
	}
	base := fallbackRange
	if p, ok := catalog.HomeSize(size); ok {
		base = p.EstimateRange
	}

	boxes := BoxCountsForHomeSize(size)
	special := SpecialItemsCost(s.SpecialItems)
	services := ServicesCost(s.Services)
	items := TotalItems(s.Rooms)

	totalMin := base.Min + special*0.8 + services*0.8
	totalMax := base.Max + special*1.2 + services*1.2

	return domain.MoveEstimate{
		TotalItems:  items,
		TotalBoxes:  boxes.Total,
		TotalWeight: TotalWeight(s.Rooms) + BoxWeight(boxes),
		TotalVolume: TotalVolume(s.Rooms),
		CostRange:   domain.PriceRange{Min: round(totalMin), Max: round(totalMax)},
		CostBreakdown: domain.CostBreakdown{
			BaseCost:         base.Average(),
			SpecialItemsCost: special,
			ServicesCost:     services,
			Total:            (totalMin + totalMax) / 2,
		},
		ComplexityScore: complexity(items, special),
	}
}

// Granular prices a move bottom-up:
//
//	base = 800 + 350*rooms + 0.5*furniture weight + special items + services + 2.5*miles
//	min  = round(0.8*base), max = round(1.3*base)
//
// Boxes are allotted per room.
func Granular(s *domain.MoveState) domain.MoveEstimate {
	rooms := len(s.Rooms)
	boxes := BoxCountsForRooms(rooms)
	special := SpecialItemsCost(s.SpecialItems)
	services := ServicesCost(s.Services)
	items := TotalItems(s.Rooms)

	fixed := BaseMoveCost + PerRoomCost*float64(rooms) +
		furnitureHandlingCost(s.Rooms) + PerMileCost*s.Basics.Distance()
	base := fixed + special + services

	costRange := domain.PriceRange{Min: round(base * granularMinPct), Max: round(base * granularMaxPct)}

	return domain.MoveEstimate{
		TotalItems:  items,
		TotalBoxes:  boxes.Total,
		TotalWeight: TotalWeight(s.Rooms) + BoxWeight(boxes),
		TotalVolume: TotalVolume(s.Rooms),
		CostRange:   costRange,
		CostBreakdown: domain.CostBreakdown{
			BaseCost:         fixed,
			SpecialItemsCost: special,
			ServicesCost:     services,
			Total:            (costRange.Min + costRange.Max) / 2,
		},
		ComplexityScore: complexity(items, special),
	}
}

// GranularBoxCounts is the box set the granular strategy assumes.
func GranularBoxCounts(s *domain.MoveState) domain.BoxCounts {
	return BoxCountsForRooms(len(s.Rooms))
}

// complexity is ceil(items/20), plus two when special items are present,
// capped at 10.
func complexity(items int, specialCost float64) int {
	score := int(math.Ceil(float64(items) / 20))
	if specialCost > 0 {
		score += 2
	}
	return min(score, 10)
}
