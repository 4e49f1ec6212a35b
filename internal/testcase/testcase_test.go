package testcase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/apperrors"
)

func TestParseCanonicalOutput(t *testing.T) {
	text := strings.Join([]string{
		"001. Login with valid credentials",
		"Given valid creds",
		"When user logs in",
		"Then dashboard is shown",
		"",
		"002. Logout",
		"Given a session",
		"When user logs out",
		"Then login page is shown",
	}, "\n")

	cases := Parse(text)
	if len(cases) != 2 {
		t.Fatalf("Parse() returned %d cases, want 2", len(cases))
	}

	first := cases[0]
	if first.Name != "Login with valid credentials" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Nature != "FUNCTIONAL" || first.Type != "COMPLIANCE" || first.Status != "WORK_IN_PROGRESS" {
		t.Errorf("defaults not applied: %+v", first)
	}
	if len(first.Steps) != 2 {
		t.Fatalf("got %d steps, want 2: %+v", len(first.Steps), first.Steps)
	}
	if first.Steps[0].Action != "Given valid creds" {
		t.Errorf("step 0 action = %q", first.Steps[0].Action)
	}
	if first.Steps[0].Expected != defaultExpected {
		t.Errorf("step 0 expected = %q, want default", first.Steps[0].Expected)
	}
	if first.Steps[1].Action != "When user logs in" {
		t.Errorf("step 1 action = %q", first.Steps[1].Action)
	}
	if first.Steps[1].Expected != "Then dashboard is shown" {
		t.Errorf("step 1 expected = %q", first.Steps[1].Expected)
	}
	if first.Description != first.Name {
		t.Errorf("description fallback = %q, want name", first.Description)
	}
}

func TestParseMarkdownTestCaseFormat(t *testing.T) {
	text := strings.Join([]string{
		"**Test Case 1: Search returns results**",
		"Given the search page is open",
		"When a query is entered",
		"Then results are listed",
		"",
		"**Test Case 2: Empty query rejected**",
		"When an empty query is submitted",
		"Then a validation message appears",
	}, "\n")

	cases := Parse(text)
	if len(cases) != 2 {
		t.Fatalf("Parse() returned %d cases, want 2", len(cases))
	}
	if cases[0].Name != "Search returns results" {
		t.Errorf("case 0 name = %q", cases[0].Name)
	}
	if cases[1].Name != "Empty query rejected" {
		t.Errorf("case 1 name = %q", cases[1].Name)
	}
}

func TestParseScenarioFormat(t *testing.T) {
	text := "Scenario: Password reset\nGiven a registered user\nWhen reset is requested\nThen an email is sent"
	cases := Parse(text)
	if len(cases) != 1 {
		t.Fatalf("Parse() returned %d cases, want 1", len(cases))
	}
	if cases[0].Name != "Password reset" {
		t.Errorf("Name = %q", cases[0].Name)
	}
}

func TestParseMetadataLines(t *testing.T) {
	text := strings.Join([]string{
		"001. Login",
		"Description: covers the happy path",
		"Prerequisite: account exists",
		"Nature: BUSINESS",
		"Importance: High",
		"Given valid creds",
		"When user logs in",
		"Then dashboard is shown",
	}, "\n")

	cases := Parse(text)
	if len(cases) != 1 {
		t.Fatalf("got %d cases, want 1", len(cases))
	}
	tc := cases[0]
	if tc.Description != "covers the happy path" {
		t.Errorf("Description = %q", tc.Description)
	}
	if tc.Prerequisite != "account exists" {
		t.Errorf("Prerequisite = %q", tc.Prerequisite)
	}
	if tc.Nature != "BUSINESS" {
		t.Errorf("Nature = %q", tc.Nature)
	}
	if tc.Type != "CRITICAL" {
		t.Errorf("Type = %q, want CRITICAL", tc.Type)
	}
}

func TestParseInvalidNatureKeepsDefault(t *testing.T) {
	text := "001. Login\nNature: WHATEVER\nGiven a\nWhen b\nThen c"
	cases := Parse(text)
	if cases[0].Nature != "FUNCTIONAL" {
		t.Errorf("Nature = %q, want FUNCTIONAL", cases[0].Nature)
	}
}

func TestParseThenWithoutAction(t *testing.T) {
	text := "001. Orphan outcome\nThen it just works"
	cases := Parse(text)
	if len(cases) != 1 || len(cases[0].Steps) != 1 {
		t.Fatalf("unexpected shape: %+v", cases)
	}
	step := cases[0].Steps[0]
	if step.Action != "When the user performs the validation step: it just works" {
		t.Errorf("Action = %q", step.Action)
	}
	if step.Expected != "Then it just works" {
		t.Errorf("Expected = %q", step.Expected)
	}
}

func TestParseAndLinesExtendStep(t *testing.T) {
	text := strings.Join([]string{
		"001. Filter",
		"Given the list is loaded",
		"And the filter panel is open",
		"When a filter is applied",
		"Then the list shrinks",
		"And the filter chip is shown",
	}, "\n")

	cases := Parse(text)
	steps := cases[0].Steps
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2: %+v", len(steps), steps)
	}
	if steps[0].Action != "Given the list is loaded\nAnd the filter panel is open" {
		t.Errorf("step 0 action = %q", steps[0].Action)
	}
	if steps[1].Expected != "Then the list shrinks\nAnd the filter chip is shown" {
		t.Errorf("step 1 expected = %q", steps[1].Expected)
	}
}

func TestParseUnparseableInputFallsBack(t *testing.T) {
	for _, text := range []string{"", "   ", "no structure here"} {
		cases := Parse(text)
		if len(cases) != 1 {
			t.Fatalf("Parse(%q) returned %d cases, want 1", text, len(cases))
		}
		tc := cases[0]
		if text == "no structure here" {
			// long enough prose becomes the name of a single case
			if tc.Name != "no structure here" {
				t.Errorf("Name = %q", tc.Name)
			}
			continue
		}
		if tc.Name != "Generated Test Case" {
			t.Errorf("Parse(%q) name = %q, want placeholder", text, tc.Name)
		}
		if len(tc.Steps) == 0 {
			t.Errorf("placeholder has no steps")
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tc      TestCase
		wantErr bool
	}{
		{
			name: "valid",
			tc:   TestCase{Name: "Login", Nature: "FUNCTIONAL"},
		},
		{
			name:    "missing name",
			tc:      TestCase{Nature: "FUNCTIONAL"},
			wantErr: true,
		},
		{
			name:    "unknown nature",
			tc:      TestCase{Name: "Login", Nature: "MAGIC"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tc.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.IsInvalidInput(err) {
				t.Errorf("Validate() error = %v, want invalid-input", err)
			}
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	doc := &Document{
		Username: "QA_Bot",
		TestCases: []TestCase{{
			Name:        "Login",
			Description: "happy path",
			Nature:      "FUNCTIONAL",
			Type:        "COMPLIANCE",
			Status:      "WORK_IN_PROGRESS",
			Steps:       []StepRecord{{Action: "Given a", Expected: "Then b"}},
		}},
	}

	data, err := EncodeYAML(doc)
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"username: QA_Bot", "name: Login", "action: Given a", "expected: Then b"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "prerequisite") {
		t.Errorf("empty prerequisite should be omitted:\n%s", out)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "cases.yml")

	doc := &Document{Username: "QA_Bot", TestCases: []TestCase{{Name: "Login", Nature: "FUNCTIONAL"}}}
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "name: Login") {
		t.Errorf("written file missing content:\n%s", data)
	}
}
