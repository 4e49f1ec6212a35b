package agent

import "context"

// Generator abstracts the external text-generation collaborator. The engine
// never calls a model itself; it only reshapes the raw text a Generator
// returns.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// MockGenerator is a test implementation of Generator.
type MockGenerator struct {
	Response string
	Err      error
	Prompts  []string
}

// Generate records the prompt and returns the configured response.
func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
