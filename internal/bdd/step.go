package bdd

import (
	"regexp"
	"strings"
)

// Keyword is a canonical BDD step keyword. But is accepted on input but is
// never a valid output keyword; SanitizeStep normalizes it to And.
type Keyword string

const (
	Given Keyword = "Given"
	When  Keyword = "When"
	Then  Keyword = "Then"
	And   Keyword = "And"
)

// Step is a single BDD line: one canonical keyword plus the remaining text.
type Step struct {
	Keyword Keyword
	Body    string
}

// String renders the step in its canonical line form. A keyword-only step
// (empty body) renders as the bare keyword.
func (s Step) String() string {
	if s.Body == "" {
		return string(s.Keyword)
	}
	return string(s.Keyword) + " " + s.Body
}

// Equal compares two steps case-insensitively on their rendered form.
func (s Step) Equal(other Step) bool {
	return strings.EqualFold(s.String(), other.String())
}

var (
	stepLinePattern   = regexp.MustCompile(`(?i)^(Given|When|Then|And|But)\b`)
	keywordTokenRe    = regexp.MustCompile(`(?i)^(Given|When|Then|And|But)(\s+|$)`)
	bddTitlePattern   = regexp.MustCompile(`(?i)^(Given|When|Then|And)\b`)
	canonicalKeywords = map[string]Keyword{
		"given": Given,
		"when":  When,
		"then":  Then,
		"and":   And,
		"but":   And, // synonym on input, never emitted
	}
)

// IsStepLine reports whether the trimmed line starts with a BDD keyword
// (Given/When/Then/And/But, case-insensitive) at a word boundary.
func IsStepLine(line string) bool {
	return stepLinePattern.MatchString(strings.TrimSpace(line))
}

// IsBDDTitle reports whether a raw case title is itself a BDD step line.
// But-titled headers are not treated as steps.
func IsBDDTitle(title string) bool {
	return bddTitlePattern.MatchString(strings.TrimSpace(title))
}

// SanitizeStep collapses chained leading keywords into a single canonical
// Step. All leading keyword tokens are stripped in order; the first stripped
// token is chosen, except that a leading When/Then immediately followed by a
// literal Given is demoted to Given (the model meant a precondition). Tokens
// beyond the chosen one are discarded and only the final body text survives.
func SanitizeStep(line string) Step {
	rest := strings.TrimSpace(line)

	var tokens []Keyword
	for {
		m := keywordTokenRe.FindStringSubmatch(rest)
		if m == nil {
			break
		}
		tokens = append(tokens, canonicalKeywords[strings.ToLower(m[1])])
		rest = strings.TrimSpace(rest[len(m[0]):])
	}

	chosen := When
	if len(tokens) > 0 {
		chosen = tokens[0]
	}
	if (chosen == When || chosen == Then) && len(tokens) > 1 && tokens[1] == Given {
		chosen = Given
	}

	return Step{Keyword: chosen, Body: rest}
}
