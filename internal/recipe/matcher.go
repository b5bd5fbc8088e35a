package recipe

import "strings"

// Match returns every recipe whose ingredient string contains at least one
// owned name as a substring, in table order. The containment check is
// deliberately loose: an owned "계란" matches a recipe requiring
// "계란후라이용 계란" or any longer compound token. This mirrors how the
// reference data is used and is business behavior, not a defect.
func Match(owned []string, recipes []Recipe) []Recipe {
	var matched []Recipe
	for _, r := range recipes {
		for _, name := range owned {
			if name == "" {
				continue
			}
			if strings.Contains(r.Ingredients, name) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// FilterKind keeps recipes whose kind equals the given tag. An empty tag
// means no filtering.
func FilterKind(recipes []Recipe, kind string) []Recipe {
	if kind == "" {
		return recipes
	}
	var filtered []Recipe
	for _, r := range recipes {
		if r.Kind == kind {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
