// Package categorize assigns a spending category to extracted transactions
// via a fixed, priority-ordered keyword rule set.
package categorize

// Category labels. Income doubles as the positive-amount fallback; Other is
// the final fallback.
const (
	CategoryFood       = "Food & Dining"
	CategoryTransport  = "Transport"
	CategoryLeisure    = "Leisure"
	CategoryInvestment = "Investment"
	CategoryTransfer   = "Transfer"
	CategoryIncome     = "Income"
	CategoryOther      = "Other"
)

// Rule matches when any keyword occurs as a substring of the lowercased
// type+description text. No word boundaries: a keyword inside another word
// also matches.
type Rule struct {
	Category string
	Keywords []string

	// RequiresCredit restricts the rule to positive amounts.
	RequiresCredit bool
}

// defaultRules is the fixed rule table, highest priority first. The first
// rule with a matching keyword wins regardless of keyword order in the text.
var defaultRules = []Rule{
	{
		Category: CategoryFood,
		Keywords: []string{
			"boulangerie", "restaurant", "brasserie", "carrefour", "auchan",
			"leclerc", "monoprix", "franprix", "lidl", "intermarche",
			"uber eats", "deliveroo", "mcdonald", "burger", "kebab", "pizz",
			"traiteur", "boucherie",
		},
	},
	{
		Category: CategoryTransport,
		Keywords: []string{
			"sncf", "ratp", "navigo", "uber", "blablacar", "bolt",
			"autoroute", "peage", "péage", "parking", "essence", "carburant",
			"total energies", "station",
		},
	},
	{
		Category: CategoryLeisure,
		Keywords: []string{
			"netflix", "spotify", "deezer", "disney", "canal+", "cinema",
			"cinéma", "fnac", "steam", "playstation", "abonnement",
			"concert", "theatre", "théâtre",
		},
	},
	{
		Category: CategoryInvestment,
		Keywords: []string{
			"bourse", "pea ", "assurance vie", "etf", "ordre de bourse",
			"crypto", "binance", "degiro", "trade republic",
		},
	},
	{
		Category: CategoryTransfer,
		Keywords: []string{
			"virement", "vir sepa", "vir instantane", "retrait dab",
			"retrait distributeur",
		},
	},
	{
		Category:       CategoryIncome,
		RequiresCredit: true,
		Keywords: []string{
			"salaire", "paie", "remboursement", "caf", "pole emploi",
			"france travail",
		},
	},
}
