package bdd

import (
	"fmt"
	"strings"
)

// Case is one complete test scenario: a keyword-free title and an ordered
// step sequence guaranteed to contain at least one Given, When, and Then.
type Case struct {
	Title string
	Steps []Step
}

// roleState tracks how far a step sequence has progressed through the
// canonical Given -> When -> Then run.
type roleState int

const (
	awaitingGiven roleState = iota
	awaitingWhen
	awaitingThen
	satisfied
)

// advance moves the scan state forward when a step fills the awaited role.
func (s roleState) advance(k Keyword) roleState {
	switch {
	case s == awaitingGiven && k == Given:
		return awaitingWhen
	case s == awaitingWhen && k == When:
		return awaitingThen
	case s == awaitingThen && k == Then:
		return satisfied
	}
	return s
}

// scanRoles walks the steps once and reports the final scan state.
// satisfied means a Given precedes a When which precedes a Then.
func scanRoles(steps []Step) roleState {
	s := awaitingGiven
	for _, st := range steps {
		s = s.advance(st.Keyword)
	}
	return s
}

// BuildCase converts a segmented block into a complete Case: classifies the
// block's lines into steps, merges a title that is itself a BDD line into
// the sequence, repairs missing Given/When/Then roles with category
// fallbacks, and derives the final keyword-free title. It never fails; the
// worst input yields three fallback steps around a bare title.
func BuildCase(block CaseBlock, cat Category) Case {
	var steps []Step
	for _, line := range block.RawLines {
		if IsStepLine(line) {
			steps = append(steps, SanitizeStep(line))
		}
	}

	if IsBDDTitle(block.RawTitle) {
		steps = mergeTitleStep(SanitizeStep(block.RawTitle), steps)
	}

	steps = completeRoles(block.RawTitle, steps, cat)

	return Case{
		Title: normalizeTitle(block.RawTitle, steps),
		Steps: steps,
	}
}

// mergeTitleStep inserts a step recovered from the header line at a position
// determined by its keyword: Given first, When after the last existing
// Given, anything else at the end. Skipped when an equivalent step already
// exists (the model repeated the header content in the body).
func mergeTitleStep(ts Step, steps []Step) []Step {
	for _, s := range steps {
		if s.Equal(ts) {
			return steps
		}
	}

	switch ts.Keyword {
	case Given:
		return insertStep(steps, 0, ts)
	case When:
		at := 0
		for i, s := range steps {
			if s.Keyword == Given {
				at = i + 1
			}
		}
		return insertStep(steps, at, ts)
	default:
		return append(steps, ts)
	}
}

// completeRoles repairs missing roles in the fixed order Given, When, Then.
// A sequence whose role scan already satisfies the canonical run is returned
// untouched. A synthetic Given goes first; a synthetic When references the
// title and is placed before the first Then so the canonical run stays
// intact; a synthetic Then goes last.
func completeRoles(title string, steps []Step, cat Category) []Step {
	if scanRoles(steps) == satisfied {
		return steps
	}

	fb := cat.fallback()

	if !hasKeyword(steps, Given) {
		steps = insertStep(steps, 0, Step{Keyword: Given, Body: fb.given})
	}
	if !hasKeyword(steps, When) {
		w := Step{Keyword: When, Body: fmt.Sprintf(fb.whenFormat, title)}
		at := len(steps)
		for i, s := range steps {
			if s.Keyword == Then {
				at = i
				break
			}
		}
		steps = insertStep(steps, at, w)
	}
	if !hasKeyword(steps, Then) {
		steps = append(steps, Step{Keyword: Then, Body: fb.then})
	}

	return steps
}

func hasKeyword(steps []Step, k Keyword) bool {
	for _, s := range steps {
		if s.Keyword == k {
			return true
		}
	}
	return false
}

func insertStep(steps []Step, at int, s Step) []Step {
	steps = append(steps, Step{})
	copy(steps[at+1:], steps[at:])
	steps[at] = s
	return steps
}

// normalizeTitle returns the final display title. A title that is itself a
// BDD line is replaced by the first Then body prefixed with "Verify", else
// the first When body, else the first Given body; trailing periods are
// stripped. A plain title passes through unchanged.
func normalizeTitle(raw string, steps []Step) string {
	if !IsBDDTitle(raw) {
		return raw
	}
	for _, k := range []Keyword{Then, When, Given} {
		for _, s := range steps {
			if s.Keyword != k {
				continue
			}
			body := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s.Body), "."))
			if k == Then {
				return strings.TrimSpace("Verify " + body)
			}
			return body
		}
	}
	return raw
}
