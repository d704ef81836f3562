package catalog

import "movefunnel/internal/domain"

// PresetRoom is a room suggested by a home-size preset.
type PresetRoom struct {
	Name string          `json:"name"`
	Type domain.RoomType `json:"type"`
}

// HomeSizePreset describes a coarse home size and its rough price band.
type HomeSizePreset struct {
	Size          domain.HomeSize   `json:"size"`
	Label         string            `json:"label"`
	Icon          string            `json:"icon"`
	Rooms         []PresetRoom      `json:"rooms"`
	EstimateRange domain.PriceRange `json:"estimateRange"`
}

var homeSizes = []HomeSizePreset{
	{
		Size: "studio", Label: "Studio", Icon: "🏠",
		Rooms: []PresetRoom{
			{"Living/Bedroom", "living_room"},
			{"Kitchen", "kitchen"},
			{"Bathroom", "bathroom"},
		},
		EstimateRange: domain.PriceRange{Min: 600, Max: 1200},
	},
	{
		Size: "1br", Label: "1 Bedroom", Icon: "🏠",
		Rooms: []PresetRoom{
			{"Living Room", "living_room"},
			{"Bedroom", "bedroom"},
			{"Kitchen", "kitchen"},
			{"Bathroom", "bathroom"},
		},
		EstimateRange: domain.PriceRange{Min: 1000, Max: 1800},
	},
	{
		Size: "2br", Label: "2 Bedroom", Icon: "🏠",
		Rooms: []PresetRoom{
			{"Living Room", "living_room"},
			{"Master Bedroom", "master_bedroom"},
			{"Bedroom 2", "bedroom"},
			{"Kitchen", "kitchen"},
			{"Bathroom", "bathroom"},
		},
		EstimateRange: domain.PriceRange{Min: 1800, Max: 2800},
	},
	{
		Size: "3br", Label: "3 Bedroom", Icon: "🏠",
		Rooms: []PresetRoom{
			{"Living Room", "living_room"},
			{"Master Bedroom", "master_bedroom"},
			{"Bedroom 2", "bedroom"},
			{"Bedroom 3", "bedroom"},
			{"Kitchen", "kitchen"},
			{"Bathroom 1", "bathroom"},
			{"Bathroom 2", "bathroom"},
			{"Garage", "garage"},
		},
		EstimateRange: domain.PriceRange{Min: 2800, Max: 4200},
	},
	{
		Size: "4br_plus", Label: "4+ Bedroom", Icon: "🏠",
		Rooms: []PresetRoom{
			{"Living Room", "living_room"},
			{"Master Bedroom", "master_bedroom"},
			{"Bedroom 2", "bedroom"},
			{"Bedroom 3", "bedroom"},
			{"Bedroom 4", "bedroom"},
			{"Kitchen", "kitchen"},
			{"Bathroom 1", "bathroom"},
			{"Bathroom 2", "bathroom"},
			{"Dining Room", "dining_room"},
			{"Office", "office"},
			{"Garage", "garage"},
		},
		EstimateRange: domain.PriceRange{Min: 4000, Max: 6500},
	},
}

// HomeSizes returns every preset in ascending size.
func HomeSizes() []HomeSizePreset {
	out := make([]HomeSizePreset, len(homeSizes))
	for i, p := range homeSizes {
		out[i] = p.clone()
	}
	return out
}

// HomeSize looks up the preset for size.
func HomeSize(size domain.HomeSize) (HomeSizePreset, bool) {
	for _, p := range homeSizes {
		if p.Size == size {
			return p.clone(), true
		}
	}
	return HomeSizePreset{}, false
}

func (p HomeSizePreset) clone() HomeSizePreset {
	p.Rooms = append([]PresetRoom(nil), p.Rooms...)
	return p
}
