package ingredients

import (
	"sort"
	"strings"
	"unicode"

	"cookops-backend/domain"
	"cookops-backend/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName makes catalog and ingredient names comparable: accents
// stripped, lowercased, runs of non-alphanumerics collapsed to single spaces.
func NormalizeName(raw string) string {
	stripped, _, err := transform.String(accentStripper, raw)
	if err != nil {
		stripped = raw
	}

	var builder strings.Builder
	pendingSpace := false
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && builder.Len() > 0 {
				builder.WriteByte(' ')
			}
			pendingSpace = false
			builder.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return builder.String()
}

type catalogCandidate struct {
	name string
	code string
}

// CodeMatcher resolves procurement codes for (supplier, ingredient) pairs.
// The index is built per request and restricted to the suppliers and names
// present in the current line set, never over the whole catalog.
type CodeMatcher struct {
	exact      map[string]string
	bySupplier map[string][]catalogCandidate
}

// NewCodeMatcher indexes the catalog products relevant to the given lines.
// Candidates are pre-sorted by (name length, name) so fuzzy ties resolve
// deterministically to the shortest product name.
func NewCodeMatcher(lines []domain.IngredientLine, products []*entities.SupplierProduct) *CodeMatcher {
	namesBySupplier := make(map[string]map[string]bool)
	for _, line := range lines {
		supplier := NormalizeName(line.Supplier)
		if namesBySupplier[supplier] == nil {
			namesBySupplier[supplier] = make(map[string]bool)
		}
		namesBySupplier[supplier][NormalizeName(line.Ingredient)] = true
	}

	matcher := &CodeMatcher{
		exact:      make(map[string]string),
		bySupplier: make(map[string][]catalogCandidate),
	}
	for _, product := range products {
		if product == nil || !product.Active || product.Supplier == nil {
			continue
		}
		supplier := NormalizeName(product.Supplier.Name)
		wanted, ok := namesBySupplier[supplier]
		if !ok {
			continue
		}
		name := NormalizeName(product.Name)
		if name == "" || !relatesToAny(name, wanted) {
			continue
		}

		code := ""
		if product.SupplierSku != nil {
			code = strings.TrimSpace(*product.SupplierSku)
		}
		if _, exists := matcher.exact[supplier+"|"+name]; !exists {
			matcher.exact[supplier+"|"+name] = code
		}
		matcher.bySupplier[supplier] = append(matcher.bySupplier[supplier], catalogCandidate{name: name, code: code})
	}

	for supplier := range matcher.bySupplier {
		candidates := matcher.bySupplier[supplier]
		sort.Slice(candidates, func(i, j int) bool {
			if len(candidates[i].name) != len(candidates[j].name) {
				return len(candidates[i].name) < len(candidates[j].name)
			}
			return candidates[i].name < candidates[j].name
		})
	}
	return matcher
}

func relatesToAny(productName string, wanted map[string]bool) bool {
	for name := range wanted {
		if name == "" {
			continue
		}
		if productName == name || strings.Contains(productName, name) || strings.Contains(name, productName) {
			return true
		}
	}
	return false
}

// Resolve returns the procurement code for a (supplier, ingredient) pair, or
// an empty string when the catalog has no plausible product. Exact normalized
// matches win; otherwise containment candidates are scored by the length of
// the overlapping (shorter) string.
func (m *CodeMatcher) Resolve(supplier, ingredient string) string {
	supplierKey := NormalizeName(supplier)
	ingredientKey := NormalizeName(ingredient)
	if ingredientKey == "" {
		return ""
	}
	if code, ok := m.exact[supplierKey+"|"+ingredientKey]; ok {
		return code
	}

	bestScore := 0
	bestCode := ""
	for _, candidate := range m.bySupplier[supplierKey] {
		score := 0
		switch {
		case candidate.name == ingredientKey:
			score = len(ingredientKey) * 2
		case strings.Contains(candidate.name, ingredientKey):
			score = len(ingredientKey)
		case strings.Contains(ingredientKey, candidate.name):
			score = len(candidate.name)
		}
		if score > bestScore {
			bestScore = score
			bestCode = candidate.code
		}
	}
	return bestCode
}
