package bdd

// Category selects the fallback wording used when a case is missing a
// Given/When/Then role. The transformation itself is identical for every
// category; only the synthesized filler text differs.
type Category string

const (
	CategoryFunctional Category = "functional"
	CategoryVisual     Category = "visual"
)

var validCategories = map[Category]bool{
	CategoryFunctional: true,
	CategoryVisual:     true,
}

// IsValid reports whether the category is a known value.
func (c Category) IsValid() bool {
	return validCategories[c]
}

// NormalizeCategory converts a raw string into a Category.
// Unknown or empty strings fall back to CategoryFunctional.
func NormalizeCategory(raw string) Category {
	c := Category(raw)
	if c.IsValid() {
		return c
	}
	return CategoryFunctional
}

// fallback holds the synthesized step texts for one category.
// whenFormat is an fmt verb string receiving the case title.
type fallback struct {
	given      string
	whenFormat string
	then       string
}

var fallbacks = map[Category]fallback{
	CategoryFunctional: {
		given:      "the system under test is available and configured",
		whenFormat: "the scenario '%s' is executed",
		then:       "the expected outcome is produced without errors",
	},
	CategoryVisual: {
		given:      "the page or feature under test is available and visible",
		whenFormat: "the scenario '%s' is reviewed visually",
		then:       "the visual state matches the expected UI (labels/icons/spacing/colors)",
	},
}

func (c Category) fallback() fallback {
	if f, ok := fallbacks[c]; ok {
		return f
	}
	return fallbacks[CategoryFunctional]
}
