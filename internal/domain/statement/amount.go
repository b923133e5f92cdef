package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Statements render amounts in the French locale: "1 234,56 €" with a narrow
// no-break space (U+202F) or no-break space (U+00A0) as thousands separator
// and a decimal comma.
var amountReplacer = strings.NewReplacer(
	" ", "",
	" ", "",
	",", ".",
)

// ParseAmount parses one locale-formatted amount token. A failed parse is
// reported, not raised: the caller keeps the band's default value.
func ParseAmount(text string) AmountResult {
	s := text
	if strings.HasSuffix(strings.TrimSpace(s), "€") {
		s = strings.ReplaceAll(s, "€", "")
	}
	s = strings.TrimSpace(amountReplacer.Replace(s))

	v, err := decimal.NewFromString(s)
	if err != nil {
		return AmountResult{Reason: fmt.Sprintf("unparseable amount %q", text)}
	}
	return AmountResult{Value: v, OK: true}
}
