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

func reachableState() *domain.MoveState {
	st := funnel.NewStore(nil)
	st.SetBasics(domain.BasicsPatch{
		FromAddress: types.Some(&domain.Address{City: "Austin", State: "TX", Zip: "78701", FullAddress: "Austin, TX"}),
		RouteInfo:   types.Some(&domain.RouteInfo{Distance: 80, Duration: 1.5}),
		HomeSize:    types.Some(types.Home2BR),
	})
	st.AddRoom(furnished("r1", bed(2)))
	st.SetRoomStatus("r1", types.RoomComplete)
	st.UpdateRoomBoxes("r1", domain.BoxEstimatesPatch{Fragile: types.Some(2)})
	st.ToggleSpecialItem("piano_upright")
	st.ToggleServiceSuboption("storage", "storage_long")
	st.SetEstimate(domain.MoveEstimate{TotalItems: 2, CostRange: domain.PriceRange{Min: 1000, Max: 1625}})
	st.SetContactInfo(domain.ContactInfo{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com", Phone: "5125550100"})
	st.ToggleMover("allied")
	st.SetAIInsight("Book early.")
	st.CompleteStep(types.StepBasics)
	return st.State()
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := reachableState()
	data, err := funnel.MarshalSnapshot(s)
	require.NoError(t, err)

	got, ok := funnel.RestoreSnapshot(data)
	require.True(t, ok)
	assert.Equal(t, s, got)

	st := funnel.NewStore(nil)
	st.Hydrate(got)
	assert.Equal(t, s, st.State())
}

func TestSnapshot_MissingFieldsDefault(t *testing.T) {
	got, ok := funnel.RestoreSnapshot([]byte(`{"currentStep":"inventory","rooms":null,"selectedMovers":["allied"]}`))
	require.True(t, ok)
	assert.Equal(t, types.StepInventory, got.CurrentStep)
	assert.NotNil(t, got.Rooms)
	assert.Len(t, got.SpecialItems, 15)
	assert.Equal(t, []string{"allied"}, got.SelectedMovers)
	assert.True(t, got.ContactPreferences.ConsentToContact)
}

func TestSnapshot_GarbageIsAbsent(t *testing.T) {
	for _, in := range []string{"", "{", "[1,2]", `{"rooms":"nope"}`} {
		got, ok := funnel.RestoreSnapshot([]byte(in))
		assert.False(t, ok, in)
		assert.Equal(t, funnel.InitialState(), got, in)
	}
}

func TestSnapshot_NormalisesRestoredState(t *testing.T) {
	got, ok := funnel.RestoreSnapshot([]byte(`{
		"basics":{"routeInfo":{"distance":150,"duration":3,"isLongDistance":false}},
		"rooms":[{"id":"r1","name":"Bedroom","type":"bedroom","status":"in_progress",
			"furniture":[{"id":"bed_queen","count":0},{"id":"dresser","count":1}]}]
	}`))
	require.True(t, ok)
	assert.True(t, got.Basics.RouteInfo.IsLongDistance)
	require.Len(t, got.Rooms[0].Furniture, 1)
	assert.Equal(t, "dresser", got.Rooms[0].Furniture[0].ID)
}

func TestDecodeAction(t *testing.T) {
	a, err := funnel.DecodeAction([]byte(`{"type":"UPDATE_ROOM","roomId":"r1","room":{"name":"Den"}}`))
	require.NoError(t, err)
	up, ok := a.(funnel.UpdateRoom)
	require.True(t, ok)
	assert.Equal(t, "r1", up.RoomID)
	assert.True(t, up.Room.Name.IsSet())
	assert.False(t, up.Room.Status.IsSet())

	a, err = funnel.DecodeAction([]byte(`{"type":"SET_BASICS","basics":{"moveDate":null}}`))
	require.NoError(t, err)
	date, set := a.(funnel.SetBasics).Basics.MoveDate.Get()
	assert.True(t, set)
	assert.Empty(t, date)

	a, err = funnel.DecodeAction([]byte(`{"type":"HYDRATE","state":{"currentStep":"services"}}`))
	require.NoError(t, err)
	h := a.(funnel.Hydrate)
	assert.Equal(t, types.StepServices, h.State.CurrentStep)
	assert.Len(t, h.State.Services, 5)

	a, err = funnel.DecodeAction([]byte(`{"type":"RESET"}`))
	require.NoError(t, err)
	assert.Equal(t, funnel.TypeReset, a.Type())

	_, err = funnel.DecodeAction([]byte(`{"type":"LAUNCH"}`))
	assert.True(t, errors.Is(err, funnel.ErrUnknownAction))

	_, err = funnel.DecodeAction([]byte(`{"type":"HYDRATE"}`))
	assert.Error(t, err)
	_, err = funnel.DecodeAction([]byte(`{"type":"SET_SPECIAL_ITEM_QUANTITY","quantity":"two"}`))
	assert.Error(t, err)
}
