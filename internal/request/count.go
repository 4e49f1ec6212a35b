// Package request extracts generation parameters from free-text user
// requirements.
package request

import (
	"regexp"
	"strconv"
	"strings"
)

// countPatterns match an explicit case-count request, English or Indonesian.
var countPatterns = []*regexp.Regexp{
	regexp.MustCompile(`up to\s*(\d+)`),
	regexp.MustCompile(`max(?:imum)?\s*(\d+)`),
	regexp.MustCompile(`maks(?:imum)?\s*(\d+)`),
	regexp.MustCompile(`hingga\s*(\d+)`),
	regexp.MustCompile(`sampai\s*(\d+)`),
	regexp.MustCompile(`exactly\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*(?:test\s*cases|tc)\b`),
	regexp.MustCompile(`generate\s*(\d+)\b`),
}

// CaseCount extracts an explicit requested number of test cases from free
// text ("up to 10", "maks 10", "10 test cases", "generate 10"). It
// returns the count when it falls within [1, 50], else 0 meaning no
// explicit limit was requested.
func CaseCount(text string) int {
	if text == "" {
		return 0
	}
	t := strings.ToLower(text)
	for _, pat := range countPatterns {
		m := pat.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= 1 && n <= 50 {
			return n
		}
	}
	return 0
}
