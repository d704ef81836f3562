package assistant

import "strings"

const (
	answerTip       = "A standard tip for movers is $4-5 per hour per mover for a local move, or $5-10 per mover for long-distance. A helpful rule of thumb is 15-20% of the total moving cost."
	answerDay       = "Midweek moves (Tuesday-Thursday) are typically cheapest and movers are less rushed. End of month is busiest due to lease cycles. If you're flexible, you may save 20-30% by avoiding peak times."
	answerInsurance = "Basic carrier liability is included (usually $0.60/lb), but it won't cover the full value of damaged items. Full value protection costs extra but covers repair or replacement at current market value. Consider it especially for valuable items."
	answerBook      = "For local moves, book 2-4 weeks ahead. For long-distance or peak season (summer, end of month), book 6-8 weeks out. Last-minute moves are possible but may cost 20-30% more."
	answerCost      = "Moving costs depend on distance, volume (rooms/items), special items, and services needed. Local moves average $300-1,500 while long-distance can run $2,000-5,000+. Get multiple quotes to compare."
	answerDefault   = "That's a great question about your move. I'd recommend discussing specifics with the matched movers who can give you accurate quotes based on your complete moving profile."
)

// fallbackRules are checked in order; the first rule with a matching keyword wins.
var fallbackRules = []struct {
	keywords []string
	answer   string
}{
	{[]string{"tip"}, answerTip},
	{[]string{"day", "time", "when"}, answerDay},
	{[]string{"insurance", "protect"}, answerInsurance},
	{[]string{"book", "advance", "ahead"}, answerBook},
	{[]string{"cost", "price", "how much"}, answerCost},
}

// Fallback picks a canned answer for message by keyword.
func Fallback(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.answer
			}
		}
	}
	return answerDefault
}
