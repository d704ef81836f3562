package funnel

import "movefunnel/internal/domain"

// ActionType is the wire name of an action.
type ActionType string

const (
	TypeSetStep                ActionType = "SET_STEP"
	TypeCompleteStep           ActionType = "COMPLETE_STEP"
	TypeSetBasics              ActionType = "SET_BASICS"
	TypeSetRooms               ActionType = "SET_ROOMS"
	TypeAddRoom                ActionType = "ADD_ROOM"
	TypeUpdateRoom             ActionType = "UPDATE_ROOM"
	TypeRemoveRoom             ActionType = "REMOVE_ROOM"
	TypeUpdateRoomFurniture    ActionType = "UPDATE_ROOM_FURNITURE"
	TypeUpdateRoomBoxes        ActionType = "UPDATE_ROOM_BOXES"
	TypeSetRoomStatus          ActionType = "SET_ROOM_STATUS"
	TypeToggleSpecialItem      ActionType = "TOGGLE_SPECIAL_ITEM"
	TypeSetSpecialItemQuantity ActionType = "SET_SPECIAL_ITEM_QUANTITY"
	TypeToggleService          ActionType = "TOGGLE_SERVICE"
	TypeToggleServiceSuboption ActionType = "TOGGLE_SERVICE_SUBOPTION"
	TypeSetEstimate            ActionType = "SET_ESTIMATE"
	TypeSetBoxCounts           ActionType = "SET_BOX_COUNTS"
	TypeSetContactInfo         ActionType = "SET_CONTACT_INFO"
	TypeSetContactPreferences  ActionType = "SET_CONTACT_PREFERENCES"
	TypeToggleMover            ActionType = "TOGGLE_MOVER"
	TypeSetExitIntentShown     ActionType = "SET_EXIT_INTENT_SHOWN"
	TypeSetEmailCaptured       ActionType = "SET_EMAIL_CAPTURED"
	TypeSetAIInsight           ActionType = "SET_AI_INSIGHT"
	TypeReset                  ActionType = "RESET"
	TypeHydrate                ActionType = "HYDRATE"
)

// Action is a named mutation of a MoveState.
type Action interface {
	Type() ActionType
}

type SetStep struct {
	Step domain.Step `json:"step"`
}

type CompleteStep struct {
	Step domain.Step `json:"step"`
}

// SetBasics shallow-merges the set fields into the move basics.
type SetBasics struct {
	Basics domain.BasicsPatch `json:"basics"`
}

type SetRooms struct {
	Rooms []domain.Room `json:"rooms"`
}

type AddRoom struct {
	Room domain.Room `json:"room"`
}

// UpdateRoom merges a partial room. The room id cannot be changed.
type UpdateRoom struct {
	RoomID string           `json:"roomId"`
	Room   domain.RoomPatch `json:"room"`
}

type RemoveRoom struct {
	RoomID string `json:"roomId"`
}

// UpdateRoomFurniture replaces a room's furniture list. Entries with a
// non-positive count are dropped.
type UpdateRoomFurniture struct {
	RoomID    string                 `json:"roomId"`
	Furniture []domain.FurnitureItem `json:"furniture"`
}

type UpdateRoomBoxes struct {
	RoomID string                   `json:"roomId"`
	Boxes  domain.BoxEstimatesPatch `json:"boxes"`
}

// SetRoomStatus force-sets a status; any transition is allowed.
type SetRoomStatus struct {
	RoomID string            `json:"roomId"`
	Status domain.RoomStatus `json:"status"`
}

// ToggleSpecialItem flips selection and keeps the quantity.
type ToggleSpecialItem struct {
	ItemID string `json:"itemId"`
}

// SetSpecialItemQuantity sets a quantity, clamped to at least one.
type SetSpecialItemQuantity struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type ToggleService struct {
	ServiceID string `json:"serviceId"`
}

// ToggleServiceSuboption flips one sub-option. The parent service's own
// selection is left alone.
type ToggleServiceSuboption struct {
	ServiceID   string `json:"serviceId"`
	SubOptionID string `json:"subOptionId"`
}

type SetEstimate struct {
	Estimate domain.MoveEstimate `json:"estimate"`
}

type SetBoxCounts struct {
	BoxCounts domain.BoxCounts `json:"boxCounts"`
}

type SetContactInfo struct {
	Info domain.ContactInfo `json:"info"`
}

type SetContactPreferences struct {
	Prefs domain.ContactPreferencesPatch `json:"prefs"`
}

// ToggleMover adds or removes a mover from the selection.
type ToggleMover struct {
	MoverID string `json:"moverId"`
}

type SetExitIntentShown struct{}

type SetEmailCaptured struct {
	Email string `json:"email"`
}

type SetAIInsight struct {
	Insight string `json:"insight"`
}

// Reset returns the session to InitialState.
type Reset struct{}

// Hydrate replaces the whole state. It is dispatched once when a session is
// restored from a snapshot.
type Hydrate struct {
	State *domain.MoveState `json:"state"`
}

func (SetStep) Type() ActionType                { return TypeSetStep }
func (CompleteStep) Type() ActionType           { return TypeCompleteStep }
func (SetBasics) Type() ActionType              { return TypeSetBasics }
func (SetRooms) Type() ActionType               { return TypeSetRooms }
func (AddRoom) Type() ActionType                { return TypeAddRoom }
func (UpdateRoom) Type() ActionType             { return TypeUpdateRoom }
func (RemoveRoom) Type() ActionType             { return TypeRemoveRoom }
func (UpdateRoomFurniture) Type() ActionType    { return TypeUpdateRoomFurniture }
func (UpdateRoomBoxes) Type() ActionType        { return TypeUpdateRoomBoxes }
func (SetRoomStatus) Type() ActionType          { return TypeSetRoomStatus }
func (ToggleSpecialItem) Type() ActionType      { return TypeToggleSpecialItem }
func (SetSpecialItemQuantity) Type() ActionType { return TypeSetSpecialItemQuantity }
func (ToggleService) Type() ActionType          { return TypeToggleService }
func (ToggleServiceSuboption) Type() ActionType { return TypeToggleServiceSuboption }
func (SetEstimate) Type() ActionType            { return TypeSetEstimate }
func (SetBoxCounts) Type() ActionType           { return TypeSetBoxCounts }
func (SetContactInfo) Type() ActionType         { return TypeSetContactInfo }
func (SetContactPreferences) Type() ActionType  { return TypeSetContactPreferences }
func (ToggleMover) Type() ActionType            { return TypeToggleMover }
func (SetExitIntentShown) Type() ActionType     { return TypeSetExitIntentShown }
func (SetEmailCaptured) Type() ActionType       { return TypeSetEmailCaptured }
func (SetAIInsight) Type() ActionType           { return TypeSetAIInsight }
func (Reset) Type() ActionType                  { return TypeReset }
func (Hydrate) Type() ActionType                { return TypeHydrate }
