package estimate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movefunnel/internal/catalog"
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/estimate"
)

func furniture(id string, weight, volume float64, count int) domain.FurnitureItem {
	return domain.FurnitureItem{ID: id, Name: id, Category: types.CategoryFurniture, Weight: weight, Volume: volume, Count: count}
}

func room(id string, items ...domain.FurnitureItem) domain.Room {
	return domain.Room{ID: id, Name: id, Type: types.RoomOther, Status: types.RoomNotStarted, Furniture: items}
}

// bareState has no rooms and nothing selected.
func bareState() *domain.MoveState {
	s := &domain.MoveState{
		CurrentStep:  types.StepLanding,
		SpecialItems: catalog.SpecialItems(),
		Services:     catalog.Services(),
	}
	for i := range s.Services {
		s.Services[i].Selected = false
	}
	return s
}

func TestTotals_EmptyRooms(t *testing.T) {
	assert.Zero(t, estimate.TotalItems(nil))
	assert.Zero(t, estimate.TotalWeight(nil))
	assert.Zero(t, estimate.TotalVolume(nil))
	assert.Zero(t, estimate.TotalItems([]domain.Room{room("a")}))
}

func TestTotalItems_Additive(t *testing.T) {
	a := []domain.Room{room("a", furniture("sofa", 280, 60, 1), furniture("chair", 80, 25, 3))}
	b := []domain.Room{room("b", furniture("bed", 140, 80, 2)), room("c")}
	all := append(append([]domain.Room(nil), a...), b...)

	assert.Equal(t, estimate.TotalItems(a)+estimate.TotalItems(b), estimate.TotalItems(all))
	assert.Equal(t, 6, estimate.TotalItems(all))
	assert.InDelta(t, 280+240+280, estimate.TotalWeight(all), 1e-9)
	assert.InDelta(t, 60+75+160, estimate.TotalVolume(all), 1e-9)
}

func TestBoxCountsForHomeSize_Monotonic(t *testing.T) {
	sizes := []domain.HomeSize{types.HomeStudio, types.Home1BR, types.Home2BR, types.Home3BR, types.Home4BRPlus}
	prev := estimate.BoxCountsForHomeSize(sizes[0])
	assert.Equal(t, domain.BoxCounts{Small: 10, Medium: 15, Large: 8, Wardrobe: 2, Total: 35}, prev)
	for _, size := range sizes[1:] {
		cur := estimate.BoxCountsForHomeSize(size)
		assert.GreaterOrEqual(t, cur.Small, prev.Small, size)
		assert.GreaterOrEqual(t, cur.Medium, prev.Medium, size)
		assert.GreaterOrEqual(t, cur.Large, prev.Large, size)
		assert.GreaterOrEqual(t, cur.Wardrobe, prev.Wardrobe, size)
		assert.GreaterOrEqual(t, cur.Total, prev.Total, size)
		prev = cur
	}

	oneBR := estimate.BoxCountsForHomeSize(types.Home1BR)
	assert.Equal(t, domain.BoxCounts{Small: 15, Medium: 23, Large: 12, Wardrobe: 3, Total: 53}, oneBR)
	assert.Equal(t, estimate.BoxCountsForHomeSize(types.Home2BR), estimate.BoxCountsForHomeSize("castle"))
	assert.Equal(t, estimate.BoxCountsForHomeSize(types.Home2BR), estimate.BoxCountsForHomeSize(""))
}

func TestBoxCountsForRooms(t *testing.T) {
	assert.Equal(t, domain.BoxCounts{Small: 15, Medium: 24, Large: 12, Wardrobe: 3, Total: 54}, estimate.BoxCountsForRooms(3))
	assert.Equal(t, domain.BoxCounts{}, estimate.BoxCountsForRooms(0))
}

func TestBoxWeight(t *testing.T) {
	b := domain.BoxCounts{Small: 1, Medium: 2, Large: 3, Wardrobe: 4}
	assert.Equal(t, float64(30+50+45+140), estimate.BoxWeight(b))
}

func TestBoxCountsForRoomTypes(t *testing.T) {
	b := estimate.BoxCountsForRoomTypes(map[domain.RoomType]int{
		types.RoomBedroom: 2,
		types.RoomKitchen: 1,
	})
	assert.Equal(t, 3*2+8, b.Small)
	assert.Equal(t, 5*2+6, b.Medium)
	assert.Equal(t, 2*2+3, b.Large)
	assert.Equal(t, 4, b.Wardrobe)
	assert.Equal(t, b.Small+b.Medium+b.Large, b.Total)
}

func TestSpecialItemsCost(t *testing.T) {
	items := []domain.SpecialItem{
		{ID: "piano", PriceRange: domain.PriceRange{Min: 200, Max: 400}, Selected: true, Quantity: 2},
		{ID: "safe", PriceRange: domain.PriceRange{Min: 150, Max: 300}, Selected: false, Quantity: 4},
	}
	assert.Equal(t, 600.0, estimate.SpecialItemsCost(items))
}

func TestServicesCost(t *testing.T) {
	storage := func(selected bool, subs ...bool) domain.AdditionalService {
		svc := domain.AdditionalService{
			ID: "storage", PriceRange: domain.PriceRange{Min: 200, Max: 400}, Selected: selected,
			SubOptions: []domain.ServiceSubOption{
				{ID: "short", PriceRange: domain.PriceRange{Min: 200, Max: 400}},
				{ID: "long", PriceRange: domain.PriceRange{Min: 150, Max: 250}},
			},
		}
		for i, on := range subs {
			svc.SubOptions[i].Selected = on
		}
		return svc
	}

	t.Run("sub-options none selected adds nothing", func(t *testing.T) {
		assert.Zero(t, estimate.ServicesCost([]domain.AdditionalService{storage(true)}))
		assert.Zero(t, estimate.ServicesCost([]domain.AdditionalService{storage(false)}))
	})
	t.Run("selected sub-options replace parent price", func(t *testing.T) {
		assert.Equal(t, 300.0+200.0, estimate.ServicesCost([]domain.AdditionalService{storage(true, true, true)}))
		assert.Equal(t, 200.0, estimate.ServicesCost([]domain.AdditionalService{storage(true, false, true)}))
	})
	t.Run("unselected parent ignores sub-options", func(t *testing.T) {
		assert.Zero(t, estimate.ServicesCost([]domain.AdditionalService{storage(false, true, true)}))
	})
	t.Run("plain service uses its average", func(t *testing.T) {
		assert.Equal(t, 450.0, estimate.ServicesCost(catalog.Services()))
	})
}

func TestPreset_TwoBedroomScenario(t *testing.T) {
	s := bareState()
	s.Basics.HomeSize = types.Home2BR

	e := estimate.Preset(s)
	assert.Equal(t, domain.PriceRange{Min: 1800, Max: 2800}, e.CostRange)
	assert.Equal(t, 0, e.ComplexityScore)
	assert.Equal(t, 70, e.TotalBoxes)
	assert.Equal(t, 2300.0, e.CostBreakdown.BaseCost)
	assert.Equal(t, 2300.0, e.CostBreakdown.Total)
	assert.Equal(t, estimate.BoxWeight(estimate.BoxCountsForHomeSize(types.Home2BR)), e.TotalWeight)
}

func TestPreset_AddOnsAndFallbacks(t *testing.T) {
	s := bareState()
	s.SpecialItems[0].Selected = true // piano_upright, avg 300
	s.Services[0].Selected = true     // packing_full, avg 450

	e := estimate.Preset(s)
	assert.Equal(t, domain.PriceRange{Min: 1800 + 600, Max: 2800 + 900}, e.CostRange)
	assert.Equal(t, 2, e.ComplexityScore)

	s.Basics.HomeSize = "castle"
	e = estimate.Preset(s)
	assert.Equal(t, domain.PriceRange{Min: 1500 + 600, Max: 3000 + 900}, e.CostRange)
}

func TestGranular_Scenario(t *testing.T) {
	s := bareState()
	s.Rooms = []domain.Room{room("r1", furniture("dresser", 200, 35, 1))}

	e := estimate.Granular(s)
	assert.Equal(t, domain.PriceRange{Min: 1000, Max: 1625}, e.CostRange)
	assert.Equal(t, 1250.0, e.CostBreakdown.BaseCost)
	assert.Equal(t, 1312.5, e.CostBreakdown.Total)
	assert.Equal(t, 18, e.TotalBoxes)
	assert.Equal(t, 1, e.ComplexityScore)
}

func TestGranular_DistanceAndAddOns(t *testing.T) {
	s := bareState()
	s.Rooms = []domain.Room{room("r1")}
	s.Basics.RouteInfo = &domain.RouteInfo{Distance: 200, IsLongDistance: true}
	s.Services[0].Selected = true

	e := estimate.Granular(s)
	assert.Equal(t, domain.PriceRange{Min: 1680, Max: 2730}, e.CostRange)
	assert.Equal(t, 800.0+350+500, e.CostBreakdown.BaseCost)
	assert.Equal(t, 450.0, e.CostBreakdown.ServicesCost)
}

func TestComplexity_Capped(t *testing.T) {
	s := bareState()
	s.Rooms = []domain.Room{room("r1", furniture("box", 1, 1, 500))}
	s.SpecialItems[0].Selected = true
	assert.Equal(t, 10, estimate.Granular(s).ComplexityScore)
}

func TestPhaseForStep(t *testing.T) {
	assert.Equal(t, estimate.PhasePreset, estimate.PhaseForStep(types.StepLanding))
	assert.Equal(t, estimate.PhasePreset, estimate.PhaseForStep(types.StepBasics))
	for _, step := range []domain.Step{types.StepInventory, types.StepServices, types.StepSummary, types.StepQuotes} {
		assert.Equal(t, estimate.PhaseGranular, estimate.PhaseForStep(step), step)
	}

	s := bareState()
	s.Basics.HomeSize = types.Home2BR
	assert.Equal(t, estimate.Preset(s), estimate.Generate(s, estimate.PhasePreset))
	assert.Equal(t, estimate.Granular(s), estimate.Generate(s, estimate.PhaseGranular))

	_, ok := estimate.ParsePhase("hybrid")
	assert.False(t, ok)
}

func TestEstimation_DoesNotMutate(t *testing.T) {
	s := bareState()
	s.Rooms = []domain.Room{room("r1", furniture("sofa", 280, 60, 2))}
	before := s.Clone()
	_ = estimate.Preset(s)
	_ = estimate.Granular(s)
	_ = estimate.RunningQuote(s, types.StepInventory)
	assert.Equal(t, before, s)
}

func TestRunningQuote(t *testing.T) {
	s := bareState()
	s.Rooms = []domain.Room{room("r1", furniture("sofa", 280, 60, 1)), room("r2")}

	t.Run("basics uses recorded boxes", func(t *testing.T) {
		s := s.Clone()
		s.BoxCounts = &domain.BoxCounts{Small: 10, Medium: 10, Large: 0, Wardrobe: 9}
		q := estimate.RunningQuote(s, types.StepBasics)
		assert.Equal(t, domain.PriceRange{Min: 800 + 560 + 80, Max: 800 + 910 + 120}, q)
	})
	t.Run("inventory", func(t *testing.T) {
		q := estimate.RunningQuote(s, types.StepInventory)
		// items 1 -> $15, weight 280 -> $140
		assert.Equal(t, domain.PriceRange{Min: 1386, Max: 1783}, q)
	})
	t.Run("location ignores furniture", func(t *testing.T) {
		s := s.Clone()
		s.Basics.RouteInfo = &domain.RouteInfo{Distance: 100}
		q := estimate.RunningQuote(s, types.StepLocation)
		assert.Equal(t, domain.PriceRange{Min: 1400, Max: 2275}, q)
	})
	t.Run("summary matches granular", func(t *testing.T) {
		assert.Equal(t, estimate.Granular(s).CostRange, estimate.RunningQuote(s, types.StepSummary))
	})
}

func TestMoverCount(t *testing.T) {
	s := bareState()
	assert.Equal(t, 8, estimate.MoverCount(s, types.StepBasics))
	assert.Equal(t, 6, estimate.MoverCount(s, types.StepLocation))

	s.Basics.RouteInfo = &domain.RouteInfo{Distance: 600}
	assert.Equal(t, 4, estimate.MoverCount(s, types.StepServices))

	s.Rooms = make([]domain.Room, 12)
	assert.Equal(t, 3, estimate.MoverCount(s, types.StepBasics))
	assert.Equal(t, 4, estimate.MoverCount(s, types.StepSpecialItems))
	assert.Equal(t, 7, estimate.MoverCount(s, types.StepInventory))

	assert.Equal(t, 3, estimate.WatchingMovers(0))
	assert.Equal(t, 6, estimate.WatchingMovers(100))
}

func TestMoverQuotes(t *testing.T) {
	est := &domain.MoveEstimate{CostRange: domain.PriceRange{Min: 1000, Max: 2000}}
	quotes := estimate.MoverQuotes(catalog.Movers(), est)
	require.Len(t, quotes, 4)

	for i := 1; i < len(quotes); i++ {
		assert.GreaterOrEqual(t, quotes[i-1].MatchScore, quotes[i].MatchScore)
	}
	byID := map[string]domain.PriceRange{}
	for _, q := range quotes {
		assert.GreaterOrEqual(t, q.QuoteRange.Min, 1000.0)
		assert.LessOrEqual(t, q.QuoteRange.Max, 2000.0)
		byID[q.ID] = q.QuoteRange
	}
	assert.Equal(t, domain.PriceRange{Min: 1000, Max: 1300}, byID["two_men_truck"])
	assert.Equal(t, domain.PriceRange{Min: 1200, Max: 1500}, byID["allied"])
	assert.Equal(t, domain.PriceRange{Min: 1150, Max: 1450}, byID["local_movers"])

	fallback := estimate.MoverQuotes(catalog.Movers(), nil)
	assert.Equal(t, domain.PriceRange{Min: 2000, Max: 2600}, fallback[0].QuoteRange)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,800", estimate.FormatCurrency(1800))
	assert.Equal(t, "$0", estimate.FormatCurrency(0))
	assert.Equal(t, "$1,234.50", estimate.FormatCurrencyPrecise(1234.5))
	assert.Equal(t, "-$25.00", estimate.FormatCurrencyPrecise(-25))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 4, 0, 0, time.UTC)
	d, err := estimate.DaysUntil("2026-03-15", now)
	require.NoError(t, err)
	assert.Equal(t, 14, d)

	d, err = estimate.DaysUntil("2026-02-28", now)
	require.NoError(t, err)
	assert.Equal(t, -1, d)

	_, err = estimate.DaysUntil("soon", now)
	assert.Error(t, err)
}

func TestHomeDescription(t *testing.T) {
	desc, lo, hi := estimate.HomeDescription(5, 50)
	assert.Equal(t, "2-3BR home", desc)
	assert.Equal(t, 40, lo)
	assert.Equal(t, 60, hi)
}
