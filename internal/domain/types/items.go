package types

// SpecialItem is an item needing special handling, priced per unit.
type SpecialItem struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Category   SpecialItemCategory `json:"category"`
	PriceRange PriceRange          `json:"priceRange"`
	Selected   bool                `json:"selected"`
	Quantity   int                 `json:"quantity"`
}

// ServiceSubOption is an independently selectable variant of a service.
type ServiceSubOption struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	PriceRange PriceRange `json:"priceRange"`
	Selected   bool       `json:"selected"`
}

// AdditionalService is an optional add-on such as packing or storage.
type AdditionalService struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	PriceRange  PriceRange         `json:"priceRange"`
	Selected    bool               `json:"selected"`
	SubOptions  []ServiceSubOption `json:"subOptions,omitempty"`
}

// Clone returns a copy that shares no slices with s.
func (s AdditionalService) Clone() AdditionalService {
	out := s
	if s.SubOptions != nil {
		out.SubOptions = append([]ServiceSubOption(nil), s.SubOptions...)
	}
	return out
}
