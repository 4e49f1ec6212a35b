package agent

import (
	"context"
	"strings"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/bdd"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/logger"
)

// Manager dispatches generation requests to the proper agent. It keeps the
// routing decision inspectable for debugging.
type Manager struct {
	functional *Agent
	visual     *Agent
	log        *logger.Logger
	lastRoute  string
}

// NewManager wires the two agents behind one router.
func NewManager(functional, visual *Agent, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.New(nil)
	}
	return &Manager{
		functional: functional,
		visual:     visual,
		log:        log.WithComponent("agent.manager"),
	}
}

// Generate routes to the visual agent when testType is "visual" and to the
// functional agent otherwise.
func (m *Manager) Generate(ctx context.Context, testType, text string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(testType))
	if t == "" {
		t = string(bdd.CategoryFunctional)
	}

	m.log.Info("routing generation request",
		"test_type", t,
		"text_present", strings.TrimSpace(text) != "")

	if t == string(bdd.CategoryVisual) {
		m.lastRoute = "visual:text"
		return m.visual.GenerateFromText(ctx, text)
	}
	m.lastRoute = "functional:text"
	return m.functional.GenerateFromText(ctx, text)
}

// LastRoute returns the most recent routing decision, empty before any call.
func (m *Manager) LastRoute() string {
	return m.lastRoute
}

// FormatTemplate returns the combined user-facing format guide.
func (m *Manager) FormatTemplate() string {
	parts := []string{"FORMAT GUIDE FOR TEST CASE GENERATION"}
	if m.functional != nil {
		parts = append(parts, m.functional.FormatTemplate())
	}
	if m.visual != nil {
		parts = append(parts, m.visual.FormatTemplate())
	}
	return strings.Join(parts, "\n\n")
}
