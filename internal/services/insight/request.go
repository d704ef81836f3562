package insight

import (
	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

// RequestFromState builds an insight request from a session's state: rooms
// with their item counts, the names of selected special items and services,
// and the home size.
func RequestFromState(s *domain.MoveState, kind types.InsightKind) domain.InsightRequest {
	req := domain.InsightRequest{
		Rooms:        make([]types.InsightRoom, 0, len(s.Rooms)),
		SpecialItems: []string{},
		Services:     []string{},
		HomeSize:     string(s.Basics.HomeSize),
		Type:         kind,
	}
	for _, r := range s.Rooms {
		req.Rooms = append(req.Rooms, types.InsightRoom{Name: r.Name, FurnitureCount: r.ItemCount()})
	}
	for _, it := range s.SpecialItems {
		if it.Selected {
			req.SpecialItems = append(req.SpecialItems, it.Name)
		}
	}
	for _, svc := range s.Services {
		if svc.Selected {
			req.Services = append(req.Services, svc.Name)
		}
	}
	return req
}
