package types

// FurnitureItem is one catalog item placed in a room.
type FurnitureItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Icon        string            `json:"icon"`
	Category    FurnitureCategory `json:"category"`
	Size        ItemSize          `json:"size,omitempty"`
	Weight      float64           `json:"weight"` // lbs per unit
	Volume      float64           `json:"volume"` // cubic feet per unit
	Count       int               `json:"count"`
	AISuggested bool              `json:"aiSuggested,omitempty"`
}

// BoxEstimates are per-room box counts by contents.
type BoxEstimates struct {
	ClothesLinens int `json:"clothes_linens"`
	BooksMedia    int `json:"books_media"`
	DecorMisc     int `json:"decor_misc"`
	Fragile       int `json:"fragile"`
}

// BoxEstimatesPatch is a partial update of BoxEstimates.
type BoxEstimatesPatch struct {
	ClothesLinens Opt[int] `json:"clothes_linens,omitzero"`
	BooksMedia    Opt[int] `json:"books_media,omitzero"`
	DecorMisc     Opt[int] `json:"decor_misc,omitzero"`
	Fragile       Opt[int] `json:"fragile,omitzero"`
}

// Room is one room of the inventory. Order in MoveState.Rooms is display order.
type Room struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      RoomType        `json:"type"`
	Status    RoomStatus      `json:"status"`
	Furniture []FurnitureItem `json:"furniture"`
	Boxes     BoxEstimates    `json:"boxes"`
}

// RoomPatch is a partial update of a Room. Room ids are immutable.
type RoomPatch struct {
	Name      Opt[string]          `json:"name,omitzero"`
	Type      Opt[RoomType]        `json:"type,omitzero"`
	Status    Opt[RoomStatus]      `json:"status,omitzero"`
	Furniture Opt[[]FurnitureItem] `json:"furniture,omitzero"`
	Boxes     Opt[BoxEstimates]    `json:"boxes,omitzero"`
}

// Clone returns a copy that shares no slices with r.
func (r Room) Clone() Room {
	out := r
	out.Furniture = append([]FurnitureItem(nil), r.Furniture...)
	if out.Furniture == nil {
		out.Furniture = []FurnitureItem{}
	}
	return out
}

// ItemCount is the number of furniture units in the room.
func (r Room) ItemCount() int {
	n := 0
	for _, f := range r.Furniture {
		n += f.Count
	}
	return n
}
