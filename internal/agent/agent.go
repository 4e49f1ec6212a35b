// Package agent hosts the thin functional/visual generation agents around
// the shared enforcement pipeline, plus the manager that routes requests
// between them. Model invocation stays behind the Generator interface.
package agent

import (
	"context"
	"time"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/apperrors"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/bdd"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/logger"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/request"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/sanitize"
)

// profile carries everything that differs between the two agents. The
// transformation pipeline is shared; only wording and fallbacks change.
type profile struct {
	category     bdd.Category
	testTypeName string
	reportHeader string
	fallbackCase string
	template     string
}

var functionalProfile = profile{
	category:     bdd.CategoryFunctional,
	testTypeName: "Functional Testing",
	reportHeader: "FUNCTIONAL TEST CASES GENERATED (English Only)",
	fallbackCase: "001. Verify Functional Behavior From Requirements\n" +
		"Given the system under test is available\n" +
		"When executing the described behavior\n" +
		"Then the expected functional outcome occurs without errors",
	template: `Functional Test Format:
Type: Functional
Feature: [Feature name]
Scenario: [Scenario description]
Requirements: [Detailed requirements]
Environment: [Web/Mobile]

Example:
Type: Functional
Feature: User Login
Scenario: Login with email and password
Requirements: User can log in using a valid email and password
Environment: Web application`,
}

var visualProfile = profile{
	category:     bdd.CategoryVisual,
	testTypeName: "Visual Testing",
	reportHeader: "VISUAL TEST CASES GENERATED (English Only)",
	fallbackCase: "001. Verify Visual Rendering From Requirements\n" +
		"Given the UI is available for inspection\n" +
		"When reviewing the described screens\n" +
		"Then the visual state matches the expected UI (labels/icons/spacing/colors)",
	template: `Visual Test Format:
Type: Visual
Feature: [Feature name]
Design Reference: [Figma link or description]
Device: [Desktop/Mobile/Tablet]
Requirements: [Visual requirements]

Example:
Type: Visual
Feature: Dashboard Layout
Design Reference: Figma dashboard design
Device: Desktop 1920x1080
Requirements: Layout matches the Figma design`,
}

// Agent generates test cases for one category. It is a thin configuration
// object over the shared sanitize/enforce pipeline.
type Agent struct {
	prof profile
	gen  Generator
	log  *logger.Logger
	now  func() time.Time
}

// NewFunctional returns the functional-category agent.
func NewFunctional(gen Generator, log *logger.Logger) *Agent {
	return newAgent(functionalProfile, gen, log)
}

// NewVisual returns the visual-category agent.
func NewVisual(gen Generator, log *logger.Logger) *Agent {
	return newAgent(visualProfile, gen, log)
}

func newAgent(prof profile, gen Generator, log *logger.Logger) *Agent {
	if log == nil {
		log = logger.New(nil)
	}
	return &Agent{
		prof: prof,
		gen:  gen,
		log:  log.WithComponent("agent." + string(prof.category)),
		now:  time.Now,
	}
}

// WithClock overrides the report timestamp source. The enforcement pipeline
// itself never reads the clock; only the report header does.
func (a *Agent) WithClock(now func() time.Time) *Agent {
	a.now = now
	return a
}

// Category returns the agent's category.
func (a *Agent) Category() bdd.Category {
	return a.prof.category
}

// FormatTemplate returns the user-facing format guide for this agent.
func (a *Agent) FormatTemplate() string {
	return a.prof.template
}

// Enforce runs the sanitize and enforcement pipeline on raw model output
// without calling the Generator, substituting the canned fallback case when
// nothing survives. Pure except for logging.
func (a *Agent) Enforce(raw string, maxCount int) string {
	finalized := sanitize.Finalize(raw)
	result := bdd.Enforce(finalized, bdd.Options{
		MaxCases: maxCount,
		Category: a.prof.category,
	})
	if result == "" {
		a.log.Debug("enforcement produced no cases, substituting fallback")
		result = a.prof.fallbackCase
	}
	return result
}

// GenerateFromText asks the Generator for raw test cases built from free
// text requirements, then enforces the canonical BDD shape. The user may
// request an explicit case count inside the text ("up to 10 test cases").
func (a *Agent) GenerateFromText(ctx context.Context, text string) (string, error) {
	limit := request.CaseCount(text)
	prompt := BuildPrompt(a.prof.category, text, limit)

	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return "", apperrors.Wrapf("agent.GenerateFromText", err,
			"%s generation failed", a.prof.category)
	}

	a.log.Info("raw output received",
		"category", a.prof.category,
		"limit", limit,
		"bytes", len(raw))

	return a.Report(a.Enforce(raw, limit)), nil
}

// Report wraps canonical test-case text in the human-facing report header.
func (a *Agent) Report(body string) string {
	return renderReport(a.prof, body, a.now())
}
