package insight

import (
	"fmt"
	"strings"

	"movefunnel/internal/domain"
)

// Fallback picks a templated insight for req. Rules are tried in order:
// several special items, a large inventory, chosen services, a small home,
// then a generic line.
func Fallback(req domain.InsightRequest) string {
	total := 0
	for _, r := range req.Rooms {
		total += r.FurnitureCount
	}

	switch {
	case len(req.SpecialItems) >= 2:
		return fmt.Sprintf("With %d special items including %s, you'll want movers experienced in handling "+
			"valuable pieces. The right team will have proper equipment and insurance coverage for these items.",
			len(req.SpecialItems), strings.Join(req.SpecialItems[:2], " and "))
	case total >= 30:
		return fmt.Sprintf("Your %s with %d furniture items is a substantial move. Professional movers typically "+
			"allocate 4-6 hours for moves this size. Getting quotes from multiple movers ensures competitive pricing.",
			req.HomeSize, total)
	case len(req.Services) > 0:
		return fmt.Sprintf("Adding %s to your move is a smart choice. These services typically save homeowners "+
			"2-3 days of work and reduce the risk of damage during transit.",
			strings.Join(req.Services, " and "))
	case len(req.Rooms) <= 2:
		return fmt.Sprintf("Your %s move with %d items is manageable but still benefits from professional help. "+
			"Most moves this size complete in 2-4 hours with an experienced crew.",
			req.HomeSize, total)
	}
	return fmt.Sprintf("Your %d-room move with %d items is well-organized. Comparing quotes from multiple movers "+
		"typically saves 15-25%% versus booking the first option you find.",
		len(req.Rooms), total)
}
