package domain

import (
	interfaces "movefunnel/internal/domain/interfaces"
	types "movefunnel/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Step                    = types.Step
	HomeSize                = types.HomeSize
	RoomType                = types.RoomType
	RoomStatus              = types.RoomStatus
	PriceRange              = types.PriceRange
	Address                 = types.Address
	RouteInfo               = types.RouteInfo
	MoveBasics              = types.MoveBasics
	BasicsPatch             = types.BasicsPatch
	FurnitureItem           = types.FurnitureItem
	BoxEstimates            = types.BoxEstimates
	BoxEstimatesPatch       = types.BoxEstimatesPatch
	Room                    = types.Room
	RoomPatch               = types.RoomPatch
	SpecialItem             = types.SpecialItem
	AdditionalService       = types.AdditionalService
	ServiceSubOption        = types.ServiceSubOption
	CostBreakdown           = types.CostBreakdown
	MoveEstimate            = types.MoveEstimate
	BoxCounts               = types.BoxCounts
	ContactInfo             = types.ContactInfo
	ContactPreferences      = types.ContactPreferences
	ContactPreferencesPatch = types.ContactPreferencesPatch
	Mover                   = types.Mover
	MoveState               = types.MoveState
	ChatMessage             = types.ChatMessage
	ChatContext             = types.ChatContext
	ChatRequest             = types.ChatRequest
	ChatReply               = types.ChatReply
	InsightRequest          = types.InsightRequest
	InsightReply            = types.InsightReply
	ExtractedDocument       = types.ExtractedDocument
	CompletionRequest       = types.CompletionRequest
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SnapshotStore    = interfaces.SnapshotStore
	Completer        = interfaces.Completer
	AssistantService = interfaces.AssistantService
	InsightService   = interfaces.InsightService
	DocumentScanner  = interfaces.DocumentScanner
)
