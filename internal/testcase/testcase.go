// Package testcase converts canonical BDD text into structured test-case
// records for test-management import, and serializes them as YAML.
package testcase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/apperrors"
	"go.yaml.in/yaml/v3"
)

// Nature values accepted on Nature: metadata lines.
var validNatures = map[string]bool{
	"FUNCTIONAL":     true,
	"NON_FUNCTIONAL": true,
	"BUSINESS":       true,
	"USER_STORY":     true,
}

// importanceMapping converts Type:/Importance: values to import weights.
var importanceMapping = map[string]string{
	"HIGH":     "CRITICAL",
	"CRITICAL": "CRITICAL",
	"MEDIUM":   "MAJOR",
	"MAJOR":    "MAJOR",
	"LOW":      "MINOR",
	"MINOR":    "MINOR",
}

// StepRecord is one importable step: the action text (Given/When lines) and
// the expected outcome (Then lines).
type StepRecord struct {
	Action   string `yaml:"action"`
	Expected string `yaml:"expected"`
}

// TestCase is one structured test-case record ready for import.
type TestCase struct {
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Prerequisite string       `yaml:"prerequisite,omitempty"`
	Nature       string       `yaml:"nature"`
	Type         string       `yaml:"type"`
	Status       string       `yaml:"status"`
	Steps        []StepRecord `yaml:"steps"`
}

// Document is the serialized import hand-off.
type Document struct {
	Username  string     `yaml:"username"`
	TestCases []TestCase `yaml:"test_cases"`
}

// Validate checks required fields on a parsed record.
func (tc *TestCase) Validate() error {
	if strings.TrimSpace(tc.Name) == "" {
		return apperrors.New("testcase.Validate", apperrors.ErrInvalidInput, "name is required")
	}
	if !validNatures[tc.Nature] {
		return apperrors.New("testcase.Validate", apperrors.ErrInvalidInput, "unknown nature "+tc.Nature)
	}
	return nil
}

// EncodeYAML serializes the document.
func EncodeYAML(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, apperrors.Wrap("testcase.EncodeYAML", err)
	}
	return data, nil
}

// WriteFile writes the document as YAML, creating parent directories.
func WriteFile(path string, doc *Document) error {
	data, err := EncodeYAML(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.Wrap("testcase.WriteFile", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrap("testcase.WriteFile", err)
	}
	return nil
}
