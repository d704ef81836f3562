package types

// CostBreakdown splits an estimate into its contributing costs.
type CostBreakdown struct {
	BaseCost         float64 `json:"baseCost"`
	PackingCost      float64 `json:"packingCost"`
	SpecialItemsCost float64 `json:"specialItemsCost"`
	ServicesCost     float64 `json:"servicesCost"`
	Total            float64 `json:"total"`
}

// MoveEstimate is a computed summary of the whole move.
type MoveEstimate struct {
	TotalItems      int           `json:"totalItems"`
	TotalBoxes      int           `json:"totalBoxes"`
	TotalWeight     float64       `json:"totalWeight"` // lbs
	TotalVolume     float64       `json:"totalVolume"` // cubic feet
	CostRange       PriceRange    `json:"costRange"`
	CostBreakdown   CostBreakdown `json:"costBreakdown"`
	ComplexityScore int           `json:"complexityScore"`
}

// BoxCounts are packing boxes by size.
type BoxCounts struct {
	Small    int `json:"small"`
	Medium   int `json:"medium"`
	Large    int `json:"large"`
	Wardrobe int `json:"wardrobe"`
	Total    int `json:"total"`
}
