package testcase

import (
	"fmt"
	"regexp"
	"strings"
)

// blockPatterns mark the start of a test-case block, tried in order. The
// first pattern that splits the text into more than one block wins.
var blockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*\*Test Case \d+:`),
	regexp.MustCompile(`Test Case \d+:`),
	regexp.MustCompile(`\d{3}\.\s`),
	regexp.MustCompile(`\[TC-\d+\]`),
	regexp.MustCompile(`TC_\d+`),
	regexp.MustCompile(`\*\*\d+\.`),
	regexp.MustCompile(`## Test Case`),
	regexp.MustCompile(`### \d+\.`),
	regexp.MustCompile(`Scenario:`),
	regexp.MustCompile(`\*\*Scenario:`),
}

// titlePattern extracts a case name from a header line. Two-group patterns
// carry a number plus the name; one-group patterns carry the name only.
type titlePattern struct {
	re        *regexp.Regexp
	nameGroup int
}

var titlePatterns = []titlePattern{
	{regexp.MustCompile(`^\*\*Test Case (\d+):\s*(.+)\*\*`), 2},
	{regexp.MustCompile(`^Test Case (\d+):\s*(.+)`), 2},
	{regexp.MustCompile(`^(\d{3})\.\s*(.+)`), 2},
	{regexp.MustCompile(`^\[TC-(\d+)\]\s*(.+)`), 2},
	{regexp.MustCompile(`^TC_(\d+)\s*(.+)`), 2},
	{regexp.MustCompile(`^\*\*(\d+)\.\s*(.+)\*\*`), 2},
	{regexp.MustCompile(`^## (.+)`), 1},
	{regexp.MustCompile(`^### (\d+)\.\s*(.+)`), 2},
	{regexp.MustCompile(`^Scenario:\s*(.+)`), 1},
	{regexp.MustCompile(`^\*\*Scenario:\s*(.+)\*\*`), 1},
}

var markdownNoiseRe = regexp.MustCompile(`[*#]+\s*`)

const defaultExpected = "Step completed successfully"

// Parse converts generated test-case text into structured records. It never
// fails: unparseable input yields a single placeholder record so the import
// hand-off always has something valid-shaped.
func Parse(text string) []TestCase {
	var out []TestCase
	for i, block := range splitBlocks(text) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		out = append(out, parseBlock(block, i))
	}
	if len(out) == 0 {
		out = append(out, fallbackCase())
	}
	return out
}

// splitBlocks splits at every occurrence of the first matching block
// pattern, keeping the marker at the head of each block.
func splitBlocks(text string) []string {
	for _, pat := range blockPatterns {
		locs := pat.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		var blocks []string
		prev := 0
		for _, loc := range locs {
			blocks = append(blocks, text[prev:loc[0]])
			prev = loc[0]
		}
		blocks = append(blocks, text[prev:])
		if len(blocks) > 1 {
			return blocks
		}
	}
	return []string{text}
}

// bddStep accumulates one action/expected pair while scanning block lines.
type bddStep struct {
	action   string
	expected string
}

func parseBlock(block string, idx int) TestCase {
	tc := TestCase{
		Nature: "FUNCTIONAL",
		Type:   "COMPLIANCE",
		Status: "WORK_IN_PROGRESS",
	}

	var descriptionLines []string
	var steps []bddStep
	var cur *bddStep
	titleFound := false

	flush := func() {
		if cur != nil {
			steps = append(steps, *cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !titleFound {
			if name, ok := matchTitle(line); ok {
				tc.Name = name
				titleFound = true
				continue
			}
			if !hasStepPrefix(line) {
				clean := strings.TrimSpace(markdownNoiseRe.ReplaceAllString(line, ""))
				if len(clean) > 5 {
					tc.Name = clean
					titleFound = true
				}
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "Given"), strings.HasPrefix(line, "When"):
			flush()
			cur = &bddStep{action: line}
		case strings.HasPrefix(line, "Then"):
			if cur != nil {
				// Keep the pair open so trailing And lines extend the
				// expected outcome; the next action flushes it.
				cur.expected = line
			} else {
				// A Then with no preceding action: restate it as a
				// validation action so the pair stays importable.
				steps = append(steps, bddStep{
					action:   strings.Replace(line, "Then ", "When the user performs the validation step: ", 1),
					expected: line,
				})
			}
		case strings.HasPrefix(line, "And"), strings.HasPrefix(line, "But"):
			if cur != nil {
				if cur.expected != "" {
					cur.expected += "\n" + line
				} else {
					cur.action += "\n" + line
				}
			} else {
				steps = append(steps, bddStep{action: line})
			}
		case strings.HasPrefix(line, "Description:"):
			tc.Description = strings.TrimSpace(strings.TrimPrefix(line, "Description:"))
		case strings.HasPrefix(line, "Pre-condition:"):
			tc.Prerequisite = strings.TrimSpace(strings.TrimPrefix(line, "Pre-condition:"))
		case strings.HasPrefix(line, "Prerequisite:"):
			tc.Prerequisite = strings.TrimSpace(strings.TrimPrefix(line, "Prerequisite:"))
		case strings.HasPrefix(line, "Nature:"):
			nature := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "Nature:")))
			if validNatures[nature] {
				tc.Nature = nature
			}
		case strings.HasPrefix(line, "Type:"), strings.HasPrefix(line, "Importance:"):
			val := strings.TrimPrefix(strings.TrimPrefix(line, "Type:"), "Importance:")
			if mapped, ok := importanceMapping[strings.ToUpper(strings.TrimSpace(val))]; ok {
				tc.Type = mapped
			}
		default:
			if len(line) > 10 {
				descriptionLines = append(descriptionLines, line)
			}
		}
	}
	flush()

	for _, s := range steps {
		expected := s.expected
		if expected == "" {
			expected = defaultExpected
		}
		tc.Steps = append(tc.Steps, StepRecord{Action: s.action, Expected: expected})
	}

	if len(tc.Steps) == 0 && len(descriptionLines) > 0 {
		n := len(descriptionLines)
		if n > 2 {
			n = 2
		}
		tc.Description = strings.Join(descriptionLines[:n], " ")
	}
	if tc.Description == "" {
		if tc.Name != "" {
			tc.Description = tc.Name
		} else {
			tc.Description = fmt.Sprintf("Test case %d", idx+1)
		}
	}
	if tc.Name == "" {
		tc.Name = fmt.Sprintf("Test Case %d", idx+1)
	}

	return tc
}

func matchTitle(line string) (string, bool) {
	for _, tp := range titlePatterns {
		if m := tp.re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[tp.nameGroup]), true
		}
	}
	return "", false
}

func hasStepPrefix(line string) bool {
	for _, k := range []string{"Given", "When", "Then", "And"} {
		if strings.HasPrefix(line, k) {
			return true
		}
	}
	return false
}

func fallbackCase() TestCase {
	return TestCase{
		Name:         "Generated Test Case",
		Description:  "Auto-generated test case due to parsing error",
		Prerequisite: "System is accessible",
		Nature:       "FUNCTIONAL",
		Type:         "COMPLIANCE",
		Status:       "WORK_IN_PROGRESS",
		Steps: []StepRecord{{
			Action:   "Given the system is ready\nWhen user performs the test steps",
			Expected: "Then the system should respond correctly",
		}},
	}
}
