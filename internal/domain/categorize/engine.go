package categorize

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/shopspring/decimal"

	"github.com/availlac/releve/internal/domain/statement"
)

// Engine matches all rule keywords in a single pass over the text using an
// Aho-Corasick state machine, then resolves ties by rule priority. The rule
// table is immutable after construction; Categorize is safe for concurrent
// use.
type Engine struct {
	matcher     *ahocorasick.Matcher
	patternRule []int // keyword index -> rule index
	rules       []Rule
}

// NewEngine compiles the default rule table.
func NewEngine() *Engine {
	return newEngine(defaultRules)
}

func newEngine(rules []Rule) *Engine {
	var patterns [][]byte
	var patternRule []int
	for ruleIdx, rule := range rules {
		for _, kw := range rule.Keywords {
			patterns = append(patterns, []byte(strings.ToLower(kw)))
			patternRule = append(patternRule, ruleIdx)
		}
	}
	return &Engine{
		matcher:     ahocorasick.NewMatcher(patterns),
		patternRule: patternRule,
		rules:       rules,
	}
}

// Categorize returns the category for one transaction, combining its type
// and description into the matched text. The highest-priority matching rule
// wins; with no match the amount sign decides between Income and Other.
func (e *Engine) Categorize(typeText, description string, amount decimal.Decimal) string {
	text := strings.ToLower(typeText + " " + description)

	best := -1
	for _, patternIdx := range e.matcher.Match([]byte(text)) {
		ruleIdx := e.patternRule[patternIdx]
		if e.rules[ruleIdx].RequiresCredit && !amount.IsPositive() {
			continue
		}
		if best == -1 || ruleIdx < best {
			best = ruleIdx
		}
	}
	if best >= 0 {
		return e.rules[best].Category
	}

	if amount.IsPositive() {
		return CategoryIncome
	}
	return CategoryOther
}

// Apply attaches a category to every record in place and returns the slice.
func (e *Engine) Apply(records []statement.Transaction) []statement.Transaction {
	for i := range records {
		records[i].Category = e.Categorize(records[i].Type, records[i].Description, records[i].Amount)
	}
	return records
}
