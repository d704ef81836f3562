package engagement

import (
	"fmt"
	"time"

	"movefunnel/internal/domain"
	types "movefunnel/internal/domain/types"
	"movefunnel/internal/estimate"
)

// BannerLevel styles a banner.
type BannerLevel string

const (
	BannerUrgent  BannerLevel = "urgent"
	BannerWarning BannerLevel = "warning"
	BannerInfo    BannerLevel = "info"
)

// Banner is a one-line notice shown above a funnel step.
type Banner struct {
	Message string      `json:"message"`
	Icon    string      `json:"icon,omitempty"`
	Level   BannerLevel `json:"level"`
}

// SeasonalBanner returns the seasonal notice for now, if any. The last five
// days of a month take precedence over the season.
func SeasonalBanner(now time.Time) (Banner, bool) {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	switch m := now.Month(); {
	case now.Day() > daysInMonth-5:
		return Banner{Message: "End-of-month moves book fast — plan early", Icon: "📅", Level: BannerInfo}, true
	case m >= time.May && m <= time.August:
		return Banner{Message: "Peak moving season! Book 4-6 weeks ahead for best rates", Icon: "🚚", Level: BannerInfo}, true
	case m >= time.November || m <= time.February:
		return Banner{Message: "Winter rates are 20-30% lower — great time to move", Icon: "❄️", Level: BannerInfo}, true
	}
	return Banner{}, false
}

// UrgencyBanner returns the banner for s on the summary and contact steps.
// A move date under 30 days away wins over the seasonal notice.
func UrgencyBanner(s *domain.MoveState, now time.Time) (Banner, bool) {
	if s.CurrentStep != types.StepSummary && s.CurrentStep != types.StepContact {
		return Banner{}, false
	}
	if s.Basics.MoveDate != "" {
		if days, err := estimate.DaysUntil(s.Basics.MoveDate, now); err == nil {
			switch {
			case days < 14:
				return Banner{
					Message: fmt.Sprintf("Your move date is in %d days — Book soon to secure your preferred movers", days),
					Level:   BannerUrgent,
				}, true
			case days < 30:
				return Banner{
					Message: fmt.Sprintf("Your move date is in %d days — Most movers book 2-4 weeks in advance", days),
					Level:   BannerWarning,
				}, true
			}
		}
	}
	return SeasonalBanner(now)
}
