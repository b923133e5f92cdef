package statement

import "strconv"

// Day anchors mark the start of a transaction line: a purely numeric token
// whose value is a plausible day of month, sitting in the narrow x-band the
// statement layout reserves for the day column.
const (
	dayAnchorMinX = 45.0
	dayAnchorMaxX = 55.0

	// A group needs at least day, month and year tokens to be usable.
	minGroupTokens = 3
)

// isDayAnchor reports whether the token starts a transaction line. Any 1-31
// numeric token in the band qualifies; a quantity that happens to land there
// is indistinguishable from a real anchor and will start a spurious group.
func isDayAnchor(t Token) bool {
	if t.X0 < dayAnchorMinX || t.X0 > dayAnchorMaxX {
		return false
	}
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 31
}

// SegmentPage partitions one page's token sequence into transaction groups.
// Each group spans from its anchor to the next anchor (the last group runs to
// end of page). Tokens before the first anchor are discarded, and groups too
// short to carry a date are dropped.
func SegmentPage(page int, tokens []Token) []Group {
	var anchors []int
	for i, t := range tokens {
		if isDayAnchor(t) {
			anchors = append(anchors, i)
		}
	}
	if len(anchors) == 0 {
		return nil
	}

	groups := make([]Group, 0, len(anchors))
	for i, start := range anchors {
		end := len(tokens)
		if i < len(anchors)-1 {
			end = anchors[i+1]
		}
		if end-start < minGroupTokens {
			continue
		}
		groups = append(groups, Group{Page: page, Tokens: tokens[start:end]})
	}
	return groups
}
