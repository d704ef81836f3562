package types

// Step names a funnel page. The zero value is not a valid step.
type Step string

const (
	StepLanding      Step = "landing"
	StepBasics       Step = "basics"
	StepInventory    Step = "inventory"
	StepSpecialItems Step = "special-items"
	StepLocation     Step = "location"
	StepServices     Step = "services"
	StepSummary      Step = "summary"
	StepContact      Step = "contact"
	StepQuotes       Step = "quotes"
)

// String returns the string form of the step.
func (s Step) String() string { return string(s) }

// HomeSize is a coarse home-size preset. The empty value means unset.
type HomeSize string

const (
	HomeStudio  HomeSize = "studio"
	Home1BR     HomeSize = "1br"
	Home2BR     HomeSize = "2br"
	Home3BR     HomeSize = "3br"
	Home4BRPlus HomeSize = "4br_plus"
)

// String returns the string form of the home size.
func (h HomeSize) String() string { return string(h) }

// RoomType classifies a room for furniture catalog lookup.
type RoomType string

const (
	RoomLivingRoom    RoomType = "living_room"
	RoomMasterBedroom RoomType = "master_bedroom"
	RoomBedroom       RoomType = "bedroom"
	RoomKitchen       RoomType = "kitchen"
	RoomBathroom      RoomType = "bathroom"
	RoomDiningRoom    RoomType = "dining_room"
	RoomOffice        RoomType = "office"
	RoomGarage        RoomType = "garage"
	RoomBasement      RoomType = "basement"
	RoomAttic         RoomType = "attic"
	RoomLaundry       RoomType = "laundry"
	RoomOther         RoomType = "other"
)

// RoomStatus tracks inventory progress for one room.
type RoomStatus string

const (
	RoomNotStarted RoomStatus = "not_started"
	RoomInProgress RoomStatus = "in_progress"
	RoomComplete   RoomStatus = "complete"
)

// FurnitureCategory groups catalog items.
type FurnitureCategory string

const (
	CategoryFurniture   FurnitureCategory = "furniture"
	CategoryAppliance   FurnitureCategory = "appliance"
	CategoryElectronics FurnitureCategory = "electronics"
	CategoryOther       FurnitureCategory = "other"
)

// ItemSize is an optional size hint on furniture.
type ItemSize string

const (
	SizeSmall      ItemSize = "small"
	SizeMedium     ItemSize = "medium"
	SizeLarge      ItemSize = "large"
	SizeExtraLarge ItemSize = "extra_large"
)

// SpecialItemCategory groups special-handling items.
type SpecialItemCategory string

const (
	SpecialLargeHeavy      SpecialItemCategory = "large_heavy"
	SpecialFragileValuable SpecialItemCategory = "fragile_valuable"
	SpecialOutdoor         SpecialItemCategory = "outdoor"
)

// ContactMethod is how a lead prefers to be reached.
type ContactMethod string

const (
	ContactCall  ContactMethod = "call"
	ContactText  ContactMethod = "text"
	ContactEmail ContactMethod = "email"
)

// BestTime is the preferred contact window.
type BestTime string

const (
	TimeMorning   BestTime = "morning"
	TimeAfternoon BestTime = "afternoon"
	TimeEvening   BestTime = "evening"
	TimeAnytime   BestTime = "anytime"
)

// PriceRange is an inclusive dollar range.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Average returns the midpoint of the range.
func (r PriceRange) Average() float64 { return (r.Min + r.Max) / 2 }
