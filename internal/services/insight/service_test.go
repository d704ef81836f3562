package insight_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/funnel"
	"movefunnel/internal/services/insight"
)

type fakeCompleter struct {
	text string
	err  error
	got  domain.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req domain.CompletionRequest) (string, error) {
	f.got = req
	return f.text, f.err
}

func sampleRequest() domain.InsightRequest {
	return domain.InsightRequest{
		Rooms: []types.InsightRoom{
			{Name: "Living Room", FurnitureCount: 6},
			{Name: "Bedroom", FurnitureCount: 4},
			{Name: "Kitchen", FurnitureCount: 3},
		},
		HomeSize: "2br",
		Type:     types.InsightSummary,
	}
}

func TestGenerate_UsesCompleter_OK(t *testing.T) {
	fc := &fakeCompleter{text: "Nice plan."}
	svc := insight.New(fc, nil, nil, insight.Options{})

	reply := svc.Generate(context.Background(), sampleRequest())
	assert.Equal(t, "Nice plan.", reply.Text)
	assert.Equal(t, types.SourceLLM, reply.Source)
	assert.Equal(t, 200, fc.got.MaxTokens)
	assert.Empty(t, fc.got.System)
	require.Len(t, fc.got.Messages, 1)
	assert.Equal(t, types.RoleUser, fc.got.Messages[0].Role)
	assert.Contains(t, fc.got.Messages[0].Content, "Rooms: Living Room (6 items), Bedroom (4 items), Kitchen (3 items)")
	assert.Contains(t, fc.got.Messages[0].Content, "Focus on what makes their move unique")
}

func TestGenerate_FallsBack(t *testing.T) {
	svc := insight.New(&fakeCompleter{err: errors.New("down")}, nil, nil, insight.Options{})
	reply := svc.Generate(context.Background(), sampleRequest())
	assert.Equal(t, types.SourceFallback, reply.Source)
	assert.Equal(t, "Your 3-room move with 13 items is well-organized. Comparing quotes from multiple movers typically saves 15-25% versus booking the first option you find.", reply.Text)
}

func TestPrompt_Tips(t *testing.T) {
	req := sampleRequest()
	req.Type = types.InsightTips
	req.SpecialItems = []string{"Hot Tub"}
	req.Services = []string{"Storage"}
	p := insight.Prompt(req)
	assert.Equal(t, "Given this moving profile:\n"+
		"Home size: 2br\n"+
		"Rooms: Living Room (6 items), Bedroom (4 items), Kitchen (3 items)\n"+
		"Special items: Hot Tub\n"+
		"Services: Storage\n\n"+
		"Write 2-3 sentences with a specific tip for their move. Be practical and actionable. Keep it conversational. No markdown.", p)
}

func TestFallback_RuleOrder(t *testing.T) {
	req := sampleRequest()
	req.SpecialItems = []string{"Piano (upright)", "Antiques", "Hot Tub"}
	req.Services = []string{"Storage"}
	assert.Equal(t, "With 3 special items including Piano (upright) and Antiques, you'll want movers experienced in handling valuable pieces. The right team will have proper equipment and insurance coverage for these items.", insight.Fallback(req))

	req.SpecialItems = []string{"Hot Tub"}
	req.Rooms[0].FurnitureCount = 30
	assert.Contains(t, insight.Fallback(req), "Your 2br with 37 furniture items is a substantial move.")

	req.Rooms[0].FurnitureCount = 6
	req.Services = []string{"Storage", "Unpacking Service"}
	assert.Contains(t, insight.Fallback(req), "Adding Storage and Unpacking Service to your move")

	req.Services = nil
	req.Rooms = req.Rooms[:2]
	assert.Contains(t, insight.Fallback(req), "Your 2br move with 10 items is manageable")
}

func TestRequestFromState(t *testing.T) {
	st := funnel.NewStore(nil)
	st.SetBasics(domain.BasicsPatch{HomeSize: types.Some(types.Home2BR)})
	st.AddRoom(domain.Room{ID: "r1", Name: "Office", Type: types.RoomOffice, Furniture: []domain.FurnitureItem{{ID: "desk", Count: 2}}})
	st.ToggleSpecialItem("hot_tub")

	req := insight.RequestFromState(st.State(), types.InsightTips)
	assert.Equal(t, "2br", req.HomeSize)
	assert.Equal(t, []types.InsightRoom{{Name: "Office", FurnitureCount: 2}}, req.Rooms)
	assert.Equal(t, []string{"Hot Tub"}, req.SpecialItems)
	assert.Equal(t, []string{"Full Packing Service"}, req.Services)
	assert.Equal(t, types.InsightTips, req.Type)
}
