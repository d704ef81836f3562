package engagement

import (
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"movefunnel/internal/catalog"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Ticker produces social-proof activity lines.
type Ticker struct {
	intn func(n int) int
}

// NewTicker returns a Ticker. intn picks a number in [0, n); nil means
// math/rand.
func NewTicker(intn func(n int) int) *Ticker {
	if intn == nil {
		intn = rand.IntN
	}
	return &Ticker{intn: intn}
}

func (t *Ticker) between(lo, hi int) int { return lo + t.intn(hi-lo+1) }

func (t *Ticker) pick(xs []string) string { return xs[t.intn(len(xs))] }

// Message returns one random activity line, such as
// "Sarah from Austin just compared 4 moving quotes".
func (t *Ticker) Message() string {
	name := t.pick(catalog.TickerNames)
	city := t.pick(catalog.TickerCities)
	switch t.intn(5) {
	case 0:
		return fmt.Sprintf("%s from %s just compared %d moving quotes", name, city, t.between(3, 6))
	case 1:
		return fmt.Sprintf("%s from %s saved $%d by comparing movers", name, city, t.between(3, 8)*100)
	case 2:
		return printer.Sprintf("%d people got moving quotes today", t.between(800, 1800))
	case 3:
		return fmt.Sprintf("%s from %s is moving %d items this week", name, city, t.between(20, 60))
	}
	return fmt.Sprintf("%s from %s found their perfect mover", name, city)
}

// TodayCount is the "people today" figure, 1,200 to 1,799.
func (t *Ticker) TodayCount() string {
	return printer.Sprintf("%d", 1200+t.intn(600))
}

// TodayFormatted renders now as e.g. "October 15, 2026".
func TodayFormatted(now time.Time) string {
	return now.Format("January 2, 2006")
}
