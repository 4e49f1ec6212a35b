package agent

import (
	"fmt"
	"strings"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/bdd"
)

const functionalRolePrompt = `ROLE: You are a precise functional QA generator. You focus on behavior, logic, data validation, and workflows. Avoid purely visual-only checks as primary outcomes.`

const visualRolePrompt = `ROLE: You are a meticulous UI/UX visual QA generator. You ONLY produce visual assertions, never functional/business logic or backend/API checks.`

const strictFormatRules = `STRICT FORMAT INSTRUCTIONS (APPLY TO EVERY TEST CASE):
- Each test case MUST include exactly:
    - Numbered title line (001., 002., ...)
    - Given (required)
    - When (required)
    - Then (required)
    - And (optional; 0-2 lines)
- Do NOT skip Given/When/Then. English only. No asterisks (*). Only output test cases.
- Include positive, negative, and edge cases.

ADDITIONAL GWT RULES:
- Exactly one Given, one When, and one Then per test case, in that order. Use And for any additional preconditions/actions/outcomes.
- Each step line must start with exactly one keyword: Given/When/Then/And (no chained keywords, e.g., "When Given ...").
- Never place Given or When after Then; start a new numbered test case instead.
- Split different intents or states into separate numbered cases.
- Every test case must end with a Then step.

EXAMPLE SKELETON:
001. Title
Given ...
When ...
Then ...
And ... (optional)`

const visualOnlyGuidelines = `STRICT VISUAL-ONLY GUARDRAILS:
- SCOPE: UI/UX appearance only. Validate layout, alignment, spacing, size, color, typography, icons, images, borders, shadows, responsiveness, and accessibility.
- DO NOT include functional flows, data processing, API/backend behavior, authentication, form submission logic, CRUD, DB validation, or calculations.
- STEPS must NOT require clicking buttons to trigger business logic (e.g., create/save/login). Clicks are allowed only to reveal UI states (hover, focus, open modal).
- Focus on what is visually present in the provided sources. Avoid inferring invisible behavior.
- Use concrete visual assertions: exact labels/text, presence/absence of icons, color codes, pixel/spacing consistency, grid alignment, truncation/ellipsis rules, contrast ratio hints, and responsive breakpoints.
- If a requirement implies functionality, restate it as a visual expectation (e.g., button state, disabled style, tooltip visibility).`

// BuildPrompt assembles the generation prompt for one request: role, task
// header with the size clause, strict GWT rules, the requirements text, and
// category-specific guardrails. limit <= 0 means no explicit user cap.
func BuildPrompt(cat bdd.Category, requirements string, limit int) string {
	sizeClause := "GENERATE BDD TEST CASES"
	outputSize := "Generate 15-20 test cases (aim for 20) that follow project standards."
	if limit > 0 {
		sizeClause = fmt.Sprintf("GENERATE UP TO %d BDD TEST CASES", limit)
		outputSize = fmt.Sprintf("Generate no more than %d test cases; fewer is acceptable if content is insufficient.", limit)
	}

	role := functionalRolePrompt
	target := "Generate FUNCTIONAL TEST CASES focused on behavior, inputs/outputs, validations, and logic."
	if cat == bdd.CategoryVisual {
		role = visualRolePrompt
		target = "Generate VISUAL TEST CASES focused on UI/UX appearance only."
	}

	var b strings.Builder
	b.WriteString(role)
	b.WriteString("\n\nTASK: ")
	b.WriteString(sizeClause)
	b.WriteString(" FROM TEXT REQUIREMENTS (ENGLISH ONLY, NO ASTERISKS)\n\nTEXT REQUIREMENTS:\n")
	b.WriteString(requirements)
	b.WriteString("\n\nTARGET: ")
	b.WriteString(target)
	b.WriteString("\n\n")
	b.WriteString(strictFormatRules)
	b.WriteString("\n\nOUTPUT SIZE: ")
	b.WriteString(outputSize)
	if cat == bdd.CategoryVisual {
		b.WriteString("\n\n")
		b.WriteString(visualOnlyGuidelines)
	}
	return b.String()
}
