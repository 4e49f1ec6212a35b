package bdd

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxCases is used when the caller does not request a cap.
	DefaultMaxCases = 20
	// MaxCaseLimit is the hard ceiling on requested caps.
	MaxCaseLimit = 50
)

// ClampMax normalizes a requested case cap. Zero or negative means "no
// explicit request" and yields the default; values above the ceiling are
// clamped down to it.
func ClampMax(n int) int {
	if n <= 0 {
		return DefaultMaxCases
	}
	if n > MaxCaseLimit {
		return MaxCaseLimit
	}
	return n
}

// Cap truncates the list to its first maxCount cases, preserving the
// original relative order. maxCount is clamped via ClampMax.
func Cap(cases []Case, maxCount int) []Case {
	n := ClampMax(maxCount)
	if len(cases) <= n {
		return cases
	}
	return cases[:n]
}

// Format serializes cases into the canonical numbered-block text: a
// zero-padded 3-digit header line per case, one step per line, exactly one
// blank line between cases, no leading or trailing blank lines. Numbering
// is fresh and contiguous from 001 regardless of original header ordinals.
func Format(cases []Case) string {
	var lines []string
	for i, c := range cases {
		lines = append(lines, strings.TrimRight(fmt.Sprintf("%03d. %s", i+1, c.Title), " "))
		for _, s := range c.Steps {
			lines = append(lines, s.String())
		}
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
