// Package bdd reshapes loosely structured model output into strict,
// numbered Given/When/Then test cases. The pipeline is segmentation, step
// classification, role completion, title normalization, capping, and
// canonical formatting. Every stage absorbs malformed natural language
// instead of failing; the canonical output format is a fixed point of the
// pipeline.
package bdd

// Options control a single enforcement pass.
type Options struct {
	// MaxCases caps the number of output cases. Zero or negative selects
	// DefaultMaxCases; values above MaxCaseLimit are clamped.
	MaxCases int
	// Category selects the fallback wording for synthesized steps. The
	// zero value is treated as functional.
	Category Category
}

// Enforce converts raw model output into the canonical numbered BDD form.
// It is a pure function: deterministic, no I/O, no shared state, safe for
// concurrent use. Empty input (or input that segments to nothing) returns
// an empty string; the caller decides whether to substitute a canned case.
func Enforce(raw string, opts Options) string {
	blocks := Segment(raw)
	if len(blocks) == 0 {
		return ""
	}

	cat := NormalizeCategory(string(opts.Category))
	cases := make([]Case, 0, len(blocks))
	for _, b := range blocks {
		cases = append(cases, BuildCase(b, cat))
	}

	return Format(Cap(cases, opts.MaxCases))
}
