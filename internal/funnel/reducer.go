package funnel

import (
	"slices"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
)

// Reduce applies a to s and returns the resulting state. s is never
// modified. When a changes nothing, s itself is returned.
func Reduce(s *domain.MoveState, a Action) *domain.MoveState {
	switch a := a.(type) {
	case SetStep:
		if s.CurrentStep == a.Step {
			return s
		}
		next := *s
		next.CurrentStep = a.Step
		return &next

	case CompleteStep:
		if s.HasCompleted(a.Step) {
			return s
		}
		next := *s
		next.CompletedSteps = append(slices.Clip(s.CompletedSteps), a.Step)
		return &next

	case SetBasics:
		return setBasics(s, a.Basics)

	case SetRooms:
		next := *s
		next.Rooms = make([]domain.Room, 0, len(a.Rooms))
		for _, r := range a.Rooms {
			next.Rooms = append(next.Rooms, normalizeRoom(r))
		}
		return &next

	case AddRoom:
		next := *s
		next.Rooms = append(slices.Clip(s.Rooms), normalizeRoom(a.Room))
		return &next

	case UpdateRoom:
		return withRoom(s, a.RoomID, func(r *domain.Room) bool {
			changed := a.Room.Name.Apply(&r.Name)
			changed = a.Room.Type.Apply(&r.Type) || changed
			changed = a.Room.Status.Apply(&r.Status) || changed
			if f, ok := a.Room.Furniture.Get(); ok {
				r.Furniture = pruneFurniture(f)
				changed = true
			}
			return a.Room.Boxes.Apply(&r.Boxes) || changed
		})

	case RemoveRoom:
		i := roomIndex(s.Rooms, a.RoomID)
		if i < 0 {
			return s
		}
		next := *s
		next.Rooms = slices.Delete(slices.Clone(s.Rooms), i, i+1)
		return &next

	case UpdateRoomFurniture:
		return withRoom(s, a.RoomID, func(r *domain.Room) bool {
			r.Furniture = pruneFurniture(a.Furniture)
			return true
		})

	case UpdateRoomBoxes:
		return withRoom(s, a.RoomID, func(r *domain.Room) bool {
			changed := a.Boxes.ClothesLinens.Apply(&r.Boxes.ClothesLinens)
			changed = a.Boxes.BooksMedia.Apply(&r.Boxes.BooksMedia) || changed
			changed = a.Boxes.DecorMisc.Apply(&r.Boxes.DecorMisc) || changed
			return a.Boxes.Fragile.Apply(&r.Boxes.Fragile) || changed
		})

	case SetRoomStatus:
		if a.Status == "" {
			return s
		}
		return withRoom(s, a.RoomID, func(r *domain.Room) bool {
			if r.Status == a.Status {
				return false
			}
			r.Status = a.Status
			return true
		})

	case ToggleSpecialItem:
		return withSpecialItem(s, a.ItemID, func(it *domain.SpecialItem) bool {
			it.Selected = !it.Selected
			return true
		})

	case SetSpecialItemQuantity:
		q := max(a.Quantity, 1)
		return withSpecialItem(s, a.ItemID, func(it *domain.SpecialItem) bool {
			if it.Quantity == q {
				return false
			}
			it.Quantity = q
			return true
		})

	case ToggleService:
		return withService(s, a.ServiceID, func(svc *domain.AdditionalService) bool {
			svc.Selected = !svc.Selected
			return true
		})

	case ToggleServiceSuboption:
		return withService(s, a.ServiceID, func(svc *domain.AdditionalService) bool {
			j := slices.IndexFunc(svc.SubOptions, func(o domain.ServiceSubOption) bool {
				return o.ID == a.SubOptionID
			})
			if j < 0 {
				return false
			}
			svc.SubOptions = slices.Clone(svc.SubOptions)
			svc.SubOptions[j].Selected = !svc.SubOptions[j].Selected
			return true
		})

	case SetEstimate:
		next := *s
		e := a.Estimate
		next.Estimate = &e
		return &next

	case SetBoxCounts:
		next := *s
		b := a.BoxCounts
		next.BoxCounts = &b
		return &next

	case SetContactInfo:
		next := *s
		info := a.Info
		next.ContactInfo = &info
		return &next

	case SetContactPreferences:
		prefs := s.ContactPreferences
		changed := a.Prefs.Method.Apply(&prefs.Method)
		changed = a.Prefs.BestTime.Apply(&prefs.BestTime) || changed
		changed = a.Prefs.ConsentToContact.Apply(&prefs.ConsentToContact) || changed
		if !changed {
			return s
		}
		next := *s
		next.ContactPreferences = prefs
		return &next

	case ToggleMover:
		next := *s
		if i := slices.Index(s.SelectedMovers, a.MoverID); i >= 0 {
			next.SelectedMovers = slices.Delete(slices.Clone(s.SelectedMovers), i, i+1)
		} else {
			next.SelectedMovers = append(slices.Clip(s.SelectedMovers), a.MoverID)
		}
		return &next

	case SetExitIntentShown:
		if s.ExitIntentShown {
			return s
		}
		next := *s
		next.ExitIntentShown = true
		return &next

	case SetEmailCaptured:
		if s.EmailCaptured && s.CapturedEmail == a.Email {
			return s
		}
		next := *s
		next.EmailCaptured = true
		next.CapturedEmail = a.Email
		return &next

	case SetAIInsight:
		next := *s
		text := a.Insight
		next.AIInsight = &text
		return &next

	case Reset:
		return InitialState()

	case Hydrate:
		if a.State == nil {
			return s
		}
		return normalize(withDefaults(a.State.Clone()))
	}
	return s
}

func setBasics(s *domain.MoveState, p domain.BasicsPatch) *domain.MoveState {
	b := s.Basics
	changed := p.FromAddress.Apply(&b.FromAddress)
	changed = p.ToAddress.Apply(&b.ToAddress) || changed
	if r, ok := p.RouteInfo.Get(); ok {
		b.RouteInfo = normalizeRoute(r)
		changed = true
	}
	changed = p.MoveDate.Apply(&b.MoveDate) || changed
	changed = p.IsFlexible.Apply(&b.IsFlexible) || changed
	changed = p.HomeSize.Apply(&b.HomeSize) || changed
	if !changed {
		return s
	}
	next := *s
	next.Basics = b
	return &next
}

func roomIndex(rooms []domain.Room, id string) int {
	return slices.IndexFunc(rooms, func(r domain.Room) bool { return r.ID == id })
}

// withRoom copies the room with id, lets fn edit the copy and swaps it into a
// new state if fn reports a change. fn must replace slices, not write into
// them.
func withRoom(s *domain.MoveState, id string, fn func(*domain.Room) bool) *domain.MoveState {
	i := roomIndex(s.Rooms, id)
	if i < 0 {
		return s
	}
	r := s.Rooms[i]
	if !fn(&r) {
		return s
	}
	r.ID = id
	if r.Status == "" {
		r.Status = types.RoomNotStarted
	}
	next := *s
	next.Rooms = slices.Clone(s.Rooms)
	next.Rooms[i] = r
	return &next
}

func withSpecialItem(s *domain.MoveState, id string, fn func(*domain.SpecialItem) bool) *domain.MoveState {
	i := slices.IndexFunc(s.SpecialItems, func(it domain.SpecialItem) bool { return it.ID == id })
	if i < 0 {
		return s
	}
	it := s.SpecialItems[i]
	if !fn(&it) {
		return s
	}
	next := *s
	next.SpecialItems = slices.Clone(s.SpecialItems)
	next.SpecialItems[i] = it
	return &next
}

func withService(s *domain.MoveState, id string, fn func(*domain.AdditionalService) bool) *domain.MoveState {
	i := slices.IndexFunc(s.Services, func(svc domain.AdditionalService) bool { return svc.ID == id })
	if i < 0 {
		return s
	}
	svc := s.Services[i]
	if !fn(&svc) {
		return s
	}
	next := *s
	next.Services = slices.Clone(s.Services)
	next.Services[i] = svc
	return &next
}
