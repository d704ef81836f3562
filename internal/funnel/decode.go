package funnel

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by DecodeAction for an unrecognised type.
var ErrUnknownAction = errors.New("funnel: unknown action type")

var decoders = map[ActionType]func([]byte) (Action, error){
	TypeSetStep:                decodeAs[SetStep],
	TypeCompleteStep:           decodeAs[CompleteStep],
	TypeSetBasics:              decodeAs[SetBasics],
	TypeSetRooms:               decodeAs[SetRooms],
	TypeAddRoom:                decodeAs[AddRoom],
	TypeUpdateRoom:             decodeAs[UpdateRoom],
	TypeRemoveRoom:             decodeAs[RemoveRoom],
	TypeUpdateRoomFurniture:    decodeAs[UpdateRoomFurniture],
	TypeUpdateRoomBoxes:        decodeAs[UpdateRoomBoxes],
	TypeSetRoomStatus:          decodeAs[SetRoomStatus],
	TypeToggleSpecialItem:      decodeAs[ToggleSpecialItem],
	TypeSetSpecialItemQuantity: decodeAs[SetSpecialItemQuantity],
	TypeToggleService:          decodeAs[ToggleService],
	TypeToggleServiceSuboption: decodeAs[ToggleServiceSuboption],
	TypeSetEstimate:            decodeAs[SetEstimate],
	TypeSetBoxCounts:           decodeAs[SetBoxCounts],
	TypeSetContactInfo:         decodeAs[SetContactInfo],
	TypeSetContactPreferences:  decodeAs[SetContactPreferences],
	TypeToggleMover:            decodeAs[ToggleMover],
	TypeSetExitIntentShown:     decodeAs[SetExitIntentShown],
	TypeSetEmailCaptured:       decodeAs[SetEmailCaptured],
	TypeSetAIInsight:           decodeAs[SetAIInsight],
	TypeReset:                  decodeAs[Reset],
	TypeHydrate:                decodeHydrate,
}

// DecodeAction decodes a `{"type": ..., ...fields}` object into its Action.
func DecodeAction(data []byte) (Action, error) {
	var head struct {
		Type ActionType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	dec, ok := decoders[head.Type]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, head.Type)
	}
	a, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", head.Type, err)
	}
	return a, nil
}

func decodeAs[A Action](data []byte) (Action, error) {
	var a A
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}

// decodeHydrate fills fields missing from the embedded state with defaults,
// the same way a stored snapshot is restored.
func decodeHydrate(data []byte) (Action, error) {
	var raw struct {
		State json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.State) == 0 || string(raw.State) == "null" {
		return nil, errors.New("missing state")
	}
	s, ok := RestoreSnapshot(raw.State)
	if !ok {
		return nil, errors.New("invalid state")
	}
	return Hydrate{State: s}, nil
}
