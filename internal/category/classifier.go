package category

import "strings"

// Classification is the hierarchical classifier verdict. When Special is
// non-empty the description matched a flat special category ("transfers",
// "investments") or nothing at all ("other"), and the remaining fields
// are empty.
type Classification struct {
	Special      string
	MainCategory string
	Category     string
	Subcategory  string
	DisplayName  string
}

// IsSpecial reports whether the verdict is a flat special category or the
// "other" sentinel.
func (c Classification) IsSpecial() bool {
	return c.Special != ""
}

func containsAny(description string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			return true
		}
	}
	return false
}

// Classify matches a description against the hierarchical taxonomy.
// The two special categories are checked first; afterwards the tree is
// walked in definition order and the first matching subcategory wins.
// First-match semantics are deliberate: taxonomy order is the tie-break,
// not match length or specificity.
func (t *Taxonomy) Classify(description string) Classification {
	description = strings.ToLower(description)

	for _, sp := range t.Specials {
		if containsAny(description, sp.Keywords) {
			return Classification{Special: sp.Key}
		}
	}

	for _, main := range t.Mains {
		for _, parent := range main.Parents {
			for _, sub := range parent.Subcategories {
				if containsAny(description, sub.Keywords) {
					return Classification{
						MainCategory: main.Key,
						Category:     parent.Key,
						Subcategory:  sub.Key,
						DisplayName:  sub.Name,
					}
				}
			}
		}
	}

	return Classification{Special: "other"}
}

// ClassifyFlat matches a description against the legacy single-tier table,
// kept for backward compatibility with the flat API surface.
func ClassifyFlat(description string) string {
	description = strings.ToLower(description)
	for _, entry := range flatKeywords {
		if containsAny(description, entry.Keywords) {
			return entry.Category
		}
	}
	return "other"
}
