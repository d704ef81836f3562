package estimate

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders whole US dollars, e.g. "$1,800".
func FormatCurrency(amount float64) string {
	return sign(amount) + "$" + printer.Sprint(number.Decimal(math.Abs(amount), number.MaxFractionDigits(0)))
}

// FormatCurrencyPrecise renders dollars and cents, e.g. "$1,800.50".
func FormatCurrencyPrecise(amount float64) string {
	return sign(amount) + "$" + printer.Sprint(number.Decimal(math.Abs(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func sign(amount float64) string {
	if amount < 0 {
		return "-"
	}
	return ""
}

// DaysUntil counts calendar days from now's local date to date
// (YYYY-MM-DD). Dates in the past give negative values.
func DaysUntil(date string, now time.Time) (int, error) {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0, err
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(d.Sub(today).Hours() / 24)), nil
}
