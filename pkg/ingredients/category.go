package ingredients

// categoryAliases maps normalized historical category spellings onto the
// canonical labels shown in the recipe view. Unknown categories pass through
// unchanged.
var categoryAliases = map[string]string{
	"antipasti":      "Antipasti",
	"antipasto":      "Antipasti",
	"starters":       "Antipasti",
	"starter":        "Antipasti",
	"primi":          "Primi",
	"primi piatti":   "Primi",
	"first courses":  "Primi",
	"secondi":        "Secondi",
	"secondi piatti": "Secondi",
	"main courses":   "Secondi",
	"mains":          "Secondi",
	"contorni":       "Contorni",
	"sides":          "Contorni",
	"side dishes":    "Contorni",
	"pizze":          "Pizze",
	"pizza":          "Pizze",
	"pizzas":         "Pizze",
	"dolci":          "Dessert",
	"dessert":        "Dessert",
	"desserts":       "Dessert",
	"bevande":        "Bevande",
	"drinks":         "Bevande",
	"beverages":      "Bevande",
}

// CanonicalCategory resolves a raw category label through the alias table.
func CanonicalCategory(raw string) string {
	if canonical, ok := categoryAliases[NormalizeName(raw)]; ok {
		return canonical
	}
	return raw
}
