package funnel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/funnel"
)

func TestFlow_ChooseRooms(t *testing.T) {
	fl := funnel.NewFlow(funnel.NewStore(nil))
	s, err := fl.ChooseRooms(map[domain.RoomType]int{
		types.RoomKitchen: 1,
		types.RoomBedroom: 2,
	}, nil)
	require.NoError(t, err)

	require.Len(t, s.Rooms, 3)
	assert.Equal(t, "room-1", s.Rooms[0].ID)
	assert.Equal(t, "Bedroom 1", s.Rooms[0].Name)
	assert.Equal(t, "Bedroom 2", s.Rooms[1].Name)
	assert.Equal(t, "Kitchen", s.Rooms[2].Name)
	assert.Equal(t, "room-3", s.Rooms[2].ID)
	for _, r := range s.Rooms {
		assert.Equal(t, types.RoomNotStarted, r.Status)
	}

	require.NotNil(t, s.BoxCounts)
	assert.Equal(t, domain.BoxCounts{Small: 14, Medium: 16, Large: 7, Wardrobe: 4, Total: 37}, *s.BoxCounts)
	assert.True(t, s.HasCompleted(types.StepBasics))
	assert.Equal(t, types.StepInventory, s.CurrentStep)
}

func TestFlow_ChooseRooms_EditedBoxes(t *testing.T) {
	fl := funnel.NewFlow(funnel.NewStore(nil))
	s, err := fl.ChooseRooms(map[domain.RoomType]int{types.RoomBedroom: 1}, &domain.BoxCounts{Small: 1, Medium: 2, Large: 3, Wardrobe: 99})
	require.NoError(t, err)
	assert.Equal(t, domain.BoxCounts{Small: 1, Medium: 2, Large: 3, Wardrobe: 2, Total: 6}, *s.BoxCounts)
}

func TestFlow_ChooseRooms_Errors(t *testing.T) {
	fl := funnel.NewFlow(funnel.NewStore(nil))
	_, err := fl.ChooseRooms(map[domain.RoomType]int{types.RoomBedroom: 0}, nil)
	assert.ErrorIs(t, err, funnel.ErrNoRooms)
	_, err = fl.ChooseRooms(map[domain.RoomType]int{"ballroom": 1}, nil)
	assert.ErrorIs(t, err, funnel.ErrUnknownRoomType)
	assert.Equal(t, types.StepLanding, fl.Store().State().CurrentStep)
}

func TestFlow_AddCustomRoom_SuffixesName(t *testing.T) {
	fl := funnel.NewFlow(funnel.NewStore(nil))
	_, err := fl.ChooseRooms(map[domain.RoomType]int{types.RoomOffice: 1}, nil)
	require.NoError(t, err)

	r, err := fl.AddCustomRoom(types.RoomOffice, "")
	require.NoError(t, err)
	assert.Equal(t, "Office 2", r.Name)
	assert.NotEmpty(t, r.ID)

	r2, err := fl.AddCustomRoom(types.RoomOther, "Sunroom")
	require.NoError(t, err)
	assert.Equal(t, "Sunroom", r2.Name)
	assert.NotEqual(t, r.ID, r2.ID)
	assert.Len(t, fl.Store().State().Rooms, 3)
}

func TestFlow_AdjustFurniture_StatusRules(t *testing.T) {
	st := funnel.NewStore(nil)
	fl := funnel.NewFlow(st)
	_, err := fl.ChooseRooms(map[domain.RoomType]int{types.RoomBedroom: 1}, nil)
	require.NoError(t, err)

	var transitions []funnel.RoomTransition
	st.Subscribe(func(c funnel.Change) { transitions = append(transitions, c.Rooms...) })

	s, err := fl.AdjustFurniture("room-1", "bed_queen", 1)
	require.NoError(t, err)
	r, _ := s.Room("room-1")
	require.Len(t, r.Furniture, 1)
	assert.Equal(t, 140.0, r.Furniture[0].Weight)
	assert.Equal(t, types.RoomInProgress, r.Status)

	s, err = fl.AdjustFurniture("room-1", "bed_queen", 1)
	require.NoError(t, err)
	r, _ = s.Room("room-1")
	assert.Equal(t, 2, r.Furniture[0].Count)

	s, err = fl.AdjustFurniture("room-1", "bed_queen", -2)
	require.NoError(t, err)
	r, _ = s.Room("room-1")
	assert.Empty(t, r.Furniture)
	assert.Equal(t, types.RoomInProgress, r.Status)

	_, err = fl.AdjustFurniture("room-1", "bed_queen", -1)
	assert.NoError(t, err)
	_, err = fl.AdjustFurniture("room-1", "spaceship", 1)
	assert.ErrorIs(t, err, funnel.ErrUnknownItem)
	_, err = fl.AdjustFurniture("room-9", "bed_queen", 1)
	assert.ErrorIs(t, err, funnel.ErrUnknownRoom)

	require.Len(t, transitions, 1)
	assert.Equal(t, types.RoomInProgress, transitions[0].To)
}

func TestFlow_EditFurniture_KeepsCompleteRooms(t *testing.T) {
	st := funnel.NewStore(withRooms(furnished("r1", bed(1))))
	st.SetRoomStatus("r1", types.RoomComplete)
	fl := funnel.NewFlow(st)

	s, err := fl.EditFurniture("r1", []domain.FurnitureItem{bed(2)})
	require.NoError(t, err)
	r, _ := s.Room("r1")
	assert.Equal(t, types.RoomComplete, r.Status)
}

func TestFlow_SelectRoomAndFinish_Celebrate(t *testing.T) {
	st := funnel.NewStore(nil)
	fl := funnel.NewFlow(st)
	_, err := fl.ChooseRooms(map[domain.RoomType]int{types.RoomBedroom: 1, types.RoomKitchen: 1}, nil)
	require.NoError(t, err)

	var celebrated []string
	st.Subscribe(func(c funnel.Change) {
		for _, tr := range c.Rooms {
			if tr.Celebrates() {
				celebrated = append(celebrated, tr.RoomID)
			}
		}
	})

	_, err = fl.SelectRoom("room-1", "room-2")
	require.NoError(t, err)
	assert.Empty(t, celebrated)

	_, err = fl.AdjustFurniture("room-2", "microwave", 1)
	require.NoError(t, err)
	_, err = fl.SelectRoom("room-2", "room-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"room-2"}, celebrated)

	_, err = fl.AdjustFurniture("room-1", "bed_queen", 1)
	require.NoError(t, err)
	s, err := fl.FinishInventory("room-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"room-2", "room-1"}, celebrated)
	assert.True(t, s.HasCompleted(types.StepInventory))
	assert.Equal(t, types.StepSpecialItems, s.CurrentStep)

	_, err = fl.SelectRoom("room-1", "room-7")
	assert.ErrorIs(t, err, funnel.ErrUnknownRoom)
}

func TestFlow_AdjustSpecialItem(t *testing.T) {
	fl := funnel.NewFlow(funnel.NewStore(nil))
	s, err := fl.AdjustSpecialItem("hot_tub", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, s.SpecialItems[4].Quantity)

	s, err = fl.AdjustSpecialItem("hot_tub", -10)
	require.NoError(t, err)
	assert.Equal(t, 1, s.SpecialItems[4].Quantity)

	_, err = fl.AdjustSpecialItem("rocket", 1)
	assert.ErrorIs(t, err, funnel.ErrUnknownItem)
}

func TestFlow_Summarize(t *testing.T) {
	st := funnel.NewStore(withRooms(furnished("r1", domain.FurnitureItem{ID: "x", Weight: 100, Count: 2})))
	st.SetBasics(domain.BasicsPatch{HomeSize: types.Some(types.Home1BR)})
	st.ToggleService("packing_full")
	fl := funnel.NewFlow(st)

	est := fl.Summarize()
	assert.Equal(t, domain.PriceRange{Min: 1000, Max: 1625}, est.CostRange)
	assert.Equal(t, 1312.5, est.CostBreakdown.Total)

	s := st.State()
	require.NotNil(t, s.Estimate)
	assert.Equal(t, est, *s.Estimate)
	require.NotNil(t, s.BoxCounts)
	assert.Equal(t, 18, s.BoxCounts.Total)
	assert.True(t, s.HasCompleted(types.StepSummary))
}

func TestFlow_SubmitContact(t *testing.T) {
	st := funnel.NewStore(nil)
	fl := funnel.NewFlow(st)

	_, err := fl.SubmitContact(domain.ContactInfo{Email: "nope", Phone: "12"}, domain.ContactPreferencesPatch{})
	var verr *funnel.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"firstName": "First name is required",
		"lastName":  "Last name is required",
		"email":     "Please enter a valid email",
		"phone":     "Please enter a valid phone number",
	}, verr.Fields)
	assert.Nil(t, st.State().ContactInfo)

	info := domain.ContactInfo{FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com", Phone: "(512) 555-0100"}
	s, err := fl.SubmitContact(info, domain.ContactPreferencesPatch{Method: types.Some(types.ContactText)})
	require.NoError(t, err)
	assert.Equal(t, info, *s.ContactInfo)
	assert.Equal(t, types.ContactText, s.ContactPreferences.Method)
	assert.Equal(t, types.TimeAnytime, s.ContactPreferences.BestTime)
	assert.True(t, s.HasCompleted(types.StepContact))
	assert.Equal(t, types.StepQuotes, s.CurrentStep)
}

func TestValidateContact_Messages(t *testing.T) {
	err := funnel.ValidateContact(domain.ContactInfo{FirstName: " ", LastName: "x", Email: "", Phone: " "})
	var verr *funnel.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Email is required", verr.Fields["email"])
	assert.Equal(t, "Phone is required", verr.Fields["phone"])
	assert.Contains(t, err.Error(), "firstName: First name is required")

	assert.NoError(t, funnel.ValidateEmail("a@b.io"))
	assert.Error(t, funnel.ValidateEmail("a b@c.io"))
	assert.NoError(t, funnel.ValidateContact(domain.ContactInfo{FirstName: "a", LastName: "b", Email: "a@b.io", Phone: "512.555.0100"}))
}

func TestFlow_CaptureEmailAndAdvance(t *testing.T) {
	fl := funnel.NewFlow(funnel.NewStore(nil))
	_, err := fl.CaptureEmail("bad")
	assert.Error(t, err)
	s, err := fl.CaptureEmail("me@example.com")
	require.NoError(t, err)
	assert.True(t, s.EmailCaptured)

	s, err = fl.Advance(types.StepBasics)
	require.NoError(t, err)
	assert.Empty(t, s.CompletedSteps)
	s, err = fl.Advance(types.StepInventory)
	require.NoError(t, err)
	assert.Equal(t, []domain.Step{types.StepBasics}, s.CompletedSteps)

	_, err = fl.Advance("checkout")
	assert.ErrorIs(t, err, funnel.ErrUnknownStep)
	assert.True(t, funnel.IsLookupError(err))
}
