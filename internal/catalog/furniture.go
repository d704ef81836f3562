package catalog

import (
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

func item(id, name, icon string, category types.FurnitureCategory, size types.ItemSize, weight, volume float64) domain.FurnitureItem {
	return domain.FurnitureItem{ID: id, Name: name, Icon: icon, Category: category, Size: size, Weight: weight, Volume: volume}
}

var furnitureByRoom = map[domain.RoomType][]domain.FurnitureItem{
	types.RoomLivingRoom: {
		item("sofa_3seat", "Sofa (3-seat)", "🛋️", types.CategoryFurniture, types.SizeLarge, 280, 60),
		item("sofa_2seat", "Loveseat", "🛋️", types.CategoryFurniture, types.SizeMedium, 180, 40),
		item("armchair", "Armchair", "🪑", types.CategoryFurniture, types.SizeMedium, 80, 25),
		item("coffee_table", "Coffee Table", "🪵", types.CategoryFurniture, types.SizeMedium, 50, 15),
		item("end_table", "End Table", "🪵", types.CategoryFurniture, types.SizeSmall, 30, 8),
		item("bookshelf", "Bookshelf", "📚", types.CategoryFurniture, types.SizeLarge, 100, 30),
		item("tv_stand", "TV Stand", "📺", types.CategoryFurniture, types.SizeMedium, 60, 20),
		item("tv_large", "TV (50\"+)", "📺", types.CategoryElectronics, types.SizeLarge, 50, 10),
		item("tv_small", "TV (under 50\")", "📺", types.CategoryElectronics, types.SizeMedium, 30, 6),
		item("floor_lamp", "Floor Lamp", "💡", types.CategoryOther, types.SizeSmall, 15, 5),
		item("rug_large", "Area Rug", "🟫", types.CategoryOther, types.SizeMedium, 40, 8),
	},
	types.RoomMasterBedroom: {
		item("bed_king", "Bed (King)", "🛏️", types.CategoryFurniture, types.SizeExtraLarge, 180, 100),
		item("bed_queen", "Bed (Queen)", "🛏️", types.CategoryFurniture, types.SizeLarge, 140, 80),
		item("dresser", "Dresser", "🗄️", types.CategoryFurniture, types.SizeLarge, 120, 35),
		item("nightstand", "Nightstand", "🗄️", types.CategoryFurniture, types.SizeSmall, 35, 10),
		item("armoire", "Armoire", "🚪", types.CategoryFurniture, types.SizeExtraLarge, 200, 60),
		item("vanity", "Vanity/Desk", "💄", types.CategoryFurniture, types.SizeMedium, 80, 25),
		item("mirror_full", "Full Mirror", "🪞", types.CategoryOther, types.SizeMedium, 40, 8),
		item("table_lamp", "Table Lamp", "💡", types.CategoryOther, types.SizeSmall, 8, 3),
	},
	types.RoomBedroom: {
		item("bed_queen", "Bed (Queen)", "🛏️", types.CategoryFurniture, types.SizeLarge, 140, 80),
		item("bed_full", "Bed (Full)", "🛏️", types.CategoryFurniture, types.SizeMedium, 120, 65),
		item("bed_twin", "Bed (Twin)", "🛏️", types.CategoryFurniture, types.SizeSmall, 80, 45),
		item("dresser", "Dresser", "🗄️", types.CategoryFurniture, types.SizeLarge, 120, 35),
		item("nightstand", "Nightstand", "🗄️", types.CategoryFurniture, types.SizeSmall, 35, 10),
		item("desk", "Desk", "🖥️", types.CategoryFurniture, types.SizeMedium, 80, 25),
		item("desk_chair", "Desk Chair", "🪑", types.CategoryFurniture, types.SizeSmall, 30, 12),
		item("bookshelf_small", "Small Bookshelf", "📚", types.CategoryFurniture, types.SizeMedium, 60, 18),
	},
	types.RoomKitchen: {
		item("dining_table", "Dining Table", "🪑", types.CategoryFurniture, types.SizeLarge, 120, 40),
		item("dining_chair", "Dining Chair", "🪑", types.CategoryFurniture, types.SizeSmall, 20, 8),
		item("kitchen_cart", "Kitchen Cart", "🛒", types.CategoryFurniture, types.SizeMedium, 50, 15),
		item("bar_stool", "Bar Stool", "🪑", types.CategoryFurniture, types.SizeSmall, 25, 10),
		item("microwave", "Microwave", "📻", types.CategoryAppliance, types.SizeSmall, 35, 4),
		item("toaster_oven", "Toaster Oven", "🍞", types.CategoryAppliance, types.SizeSmall, 15, 2),
		item("coffee_maker", "Coffee Maker", "☕", types.CategoryAppliance, types.SizeSmall, 10, 2),
	},
	types.RoomBathroom: {
		item("bathroom_cabinet", "Storage Cabinet", "🗄️", types.CategoryFurniture, types.SizeSmall, 40, 12),
		item("hamper", "Laundry Hamper", "🧺", types.CategoryOther, types.SizeSmall, 10, 6),
	},
	types.RoomDiningRoom: {
		item("dining_table_large", "Dining Table (6+)", "🪑", types.CategoryFurniture, types.SizeExtraLarge, 180, 60),
		item("dining_table", "Dining Table (4)", "🪑", types.CategoryFurniture, types.SizeLarge, 120, 40),
		item("dining_chair", "Dining Chair", "🪑", types.CategoryFurniture, types.SizeSmall, 20, 8),
		item("china_cabinet", "China Cabinet", "🗄️", types.CategoryFurniture, types.SizeExtraLarge, 200, 50),
		item("buffet", "Buffet/Sideboard", "🗄️", types.CategoryFurniture, types.SizeLarge, 150, 40),
	},
	types.RoomOffice: {
		item("desk_large", "Office Desk", "🖥️", types.CategoryFurniture, types.SizeLarge, 100, 35),
		item("desk", "Small Desk", "🖥️", types.CategoryFurniture, types.SizeMedium, 80, 25),
		item("office_chair", "Office Chair", "🪑", types.CategoryFurniture, types.SizeMedium, 40, 15),
		item("filing_cabinet", "Filing Cabinet", "🗄️", types.CategoryFurniture, types.SizeMedium, 80, 12),
		item("bookshelf", "Bookshelf", "📚", types.CategoryFurniture, types.SizeLarge, 100, 30),
		item("computer", "Desktop Computer", "🖥️", types.CategoryElectronics, types.SizeSmall, 30, 5),
		item("monitor", "Monitor", "🖥️", types.CategoryElectronics, types.SizeSmall, 15, 4),
		item("printer", "Printer", "🖨️", types.CategoryElectronics, types.SizeSmall, 25, 4),
	},
	types.RoomGarage: {
		item("tool_chest", "Tool Chest", "🧰", types.CategoryOther, types.SizeLarge, 150, 25),
		item("workbench", "Workbench", "🔧", types.CategoryFurniture, types.SizeLarge, 100, 30),
		item("shelving_unit", "Shelving Unit", "🗄️", types.CategoryFurniture, types.SizeLarge, 60, 25),
		item("lawn_mower", "Push Mower", "🌱", types.CategoryOther, types.SizeMedium, 70, 15),
		item("bicycle", "Bicycle", "🚲", types.CategoryOther, types.SizeMedium, 30, 20),
		item("grill", "BBQ Grill", "🍖", types.CategoryOther, types.SizeLarge, 100, 30),
	},
	types.RoomBasement: {
		item("shelving_unit", "Shelving Unit", "🗄️", types.CategoryFurniture, types.SizeLarge, 60, 25),
		item("storage_bin", "Storage Bins (set)", "📦", types.CategoryOther, types.SizeMedium, 30, 15),
		item("exercise_bike", "Exercise Bike", "🚴", types.CategoryOther, types.SizeMedium, 80, 20),
		item("treadmill", "Treadmill", "🏃", types.CategoryOther, types.SizeExtraLarge, 200, 40),
		item("weight_bench", "Weight Bench", "🏋️", types.CategoryOther, types.SizeLarge, 100, 25),
	},
	types.RoomAttic: {
		item("storage_bin", "Storage Bins (set)", "📦", types.CategoryOther, types.SizeMedium, 30, 15),
	},
	types.RoomLaundry: {
		item("washer", "Washer", "🧺", types.CategoryAppliance, types.SizeLarge, 150, 25),
		item("dryer", "Dryer", "🌀", types.CategoryAppliance, types.SizeLarge, 125, 25),
		item("laundry_shelf", "Shelving", "🗄️", types.CategoryFurniture, types.SizeMedium, 40, 15),
	},
	types.RoomOther: {
		item("misc_furniture", "Misc Furniture", "🪑", types.CategoryFurniture, types.SizeMedium, 50, 20),
		item("misc_boxes", "Misc Items", "📦", types.CategoryOther, types.SizeSmall, 25, 10),
	},
}

// FurnitureFor returns the catalog items offered for a room type, each with a
// zero count. Unknown types get the "other" list.
func FurnitureFor(roomType domain.RoomType) []domain.FurnitureItem {
	items, ok := furnitureByRoom[roomType]
	if !ok {
		items = furnitureByRoom[types.RoomOther]
	}
	return append([]domain.FurnitureItem(nil), items...)
}

// Furniture looks up one catalog item offered in roomType.
func Furniture(roomType domain.RoomType, id string) (domain.FurnitureItem, bool) {
	for _, it := range FurnitureFor(roomType) {
		if it.ID == id {
			return it, true
		}
	}
	return domain.FurnitureItem{}, false
}

// FurnitureByRoom returns the full furniture catalog keyed by room type.
func FurnitureByRoom() map[domain.RoomType][]domain.FurnitureItem {
	out := make(map[domain.RoomType][]domain.FurnitureItem, len(furnitureByRoom))
	for k, v := range furnitureByRoom {
		out[k] = append([]domain.FurnitureItem(nil), v...)
	}
	return out
}
