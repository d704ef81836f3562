package catalog

import (
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

// DefaultBoxes is the starting box suggestion for one room.
type DefaultBoxes struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

// RoomTemplate is a room type offered on the basics step.
type RoomTemplate struct {
	Type         domain.RoomType `json:"type"`
	Name         string          `json:"name"`
	Icon         string          `json:"icon"`
	DefaultBoxes DefaultBoxes    `json:"defaultBoxes"`
}

// Room templates in the order rooms are created from counts.
var roomTemplates = []RoomTemplate{
	{types.RoomBedroom, "Bedroom", "🛏️", DefaultBoxes{3, 5, 2}},
	{types.RoomBathroom, "Bathroom", "🚿", DefaultBoxes{2, 1, 0}},
	{types.RoomKitchen, "Kitchen", "🍳", DefaultBoxes{8, 6, 3}},
	{types.RoomLivingRoom, "Living Room", "🛋️", DefaultBoxes{4, 6, 4}},
	{types.RoomDiningRoom, "Dining Room", "🪑", DefaultBoxes{3, 4, 2}},
	{types.RoomOffice, "Office", "💼", DefaultBoxes{5, 4, 2}},
	{types.RoomGarage, "Garage", "🚗", DefaultBoxes{3, 5, 6}},
	{types.RoomBasement, "Basement", "📦", DefaultBoxes{2, 4, 5}},
	{types.RoomLaundry, "Laundry", "🧺", DefaultBoxes{2, 2, 1}},
	{types.RoomOther, "Other", "📦", DefaultBoxes{2, 3, 2}},
}

// RoomTemplates returns the basics-step room types in creation order.
func RoomTemplates() []RoomTemplate {
	return append([]RoomTemplate(nil), roomTemplates...)
}

// RoomTemplateFor looks up the template for a room type.
func RoomTemplateFor(t domain.RoomType) (RoomTemplate, bool) {
	for _, rt := range roomTemplates {
		if rt.Type == t {
			return rt, true
		}
	}
	return RoomTemplate{}, false
}

// Box weights in pounds, by box size.
const (
	SmallBoxWeight    = 30
	MediumBoxWeight   = 25
	LargeBoxWeight    = 15
	WardrobeBoxWeight = 35
)
