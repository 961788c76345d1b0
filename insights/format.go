package insights

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	countPrinter = message.NewPrinter(language.English)
	titleCaser   = cases.Title(language.English)
)

// WholePercent renders a 0-100 percentage as a whole number, rounding half
// away from zero: 85.5 becomes "86%". Used for ranking displays.
func WholePercent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

// Percent1 renders a 0-100 percentage with one decimal: 85.5 becomes
// "85.5%". Used for analytics displays.
func Percent1(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// RatePercent1 renders a 0-1 fraction (success_rate, conversion_rate,
// hire rate) as a one-decimal percentage.
func RatePercent1(rate float64) string {
	return Percent1(rate * 100)
}

// FormatCount renders an integer with locale thousands separators.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// Days1 renders a day count with one decimal.
func Days1(v float64) string {
	return fmt.Sprintf("%.1f days", v)
}

// HumanizeKey converts a machine key of lowercase underscore-joined words to
// Title Case: "candidates_hired" becomes "Candidates Hired". Unknown keys go
// through the same transform; there is no mapping table to fall off of.
func HumanizeKey(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}
