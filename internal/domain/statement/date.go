package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNumbers maps French month names to month numbers. Unaccented variants
// are listed explicitly because extracted text loses accents on some fonts.
var monthNumbers = map[string]time.Month{
	"janvier":   time.January,
	"février":   time.February,
	"fevrier":   time.February,
	"mars":      time.March,
	"avril":     time.April,
	"mai":       time.May,
	"juin":      time.June,
	"juillet":   time.July,
	"aout":      time.August,
	"août":      time.August,
	"septembre": time.September,
	"octobre":   time.October,
	"novembre":  time.November,
	"décembre":  time.December,
	"decembre":  time.December,
}

// ResolveDate turns raw day/month-name/year tokens into a calendar date.
// On any failure it falls back to the raw concatenation of the three tokens;
// the caller keeps the record either way.
func ResolveDate(day, month, year string) DateResult {
	raw := fmt.Sprintf("%s %s %s", day, month, year)

	monthKey := strings.TrimSuffix(strings.ToLower(month), ".")
	m, ok := monthNumbers[monthKey]
	if !ok {
		return DateResult{Raw: raw, Reason: fmt.Sprintf("unknown month name %q", month)}
	}

	d, err := strconv.Atoi(day)
	if err != nil {
		return DateResult{Raw: raw, Reason: fmt.Sprintf("non-numeric day %q", day)}
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return DateResult{Raw: raw, Reason: fmt.Sprintf("non-numeric year %q", year)}
	}

	// time.Date normalizes out-of-range components (Feb 31 becomes Mar 3),
	// so a round-trip mismatch means the triple was not a real date.
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != m || t.Day() != d {
		return DateResult{Raw: raw, Reason: fmt.Sprintf("invalid calendar date %d %s %d", d, monthKey, y)}
	}

	return DateResult{Time: t, Resolved: true}
}
