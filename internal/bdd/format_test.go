package bdd

import (
	"fmt"
	"strings"
	"testing"
)

func TestClampMax(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "zero uses default", n: 0, want: DefaultMaxCases},
		{name: "negative uses default", n: -3, want: DefaultMaxCases},
		{name: "within range", n: 5, want: 5},
		{name: "floor", n: 1, want: 1},
		{name: "ceiling", n: 50, want: 50},
		{name: "above ceiling clamped", n: 120, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampMax(tt.n); got != tt.want {
				t.Errorf("ClampMax(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func makeCases(n int) []Case {
	cases := make([]Case, n)
	for i := range cases {
		cases[i] = Case{
			Title: fmt.Sprintf("Case %d", i+1),
			Steps: []Step{
				{Keyword: Given, Body: "a"},
				{Keyword: When, Body: "b"},
				{Keyword: Then, Body: "c"},
			},
		}
	}
	return cases
}

func TestCap(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		maxCount int
		want     int
	}{
		{name: "truncates to requested cap", input: 30, maxCount: 5, want: 5},
		{name: "shorter list passes through", input: 3, maxCount: 10, want: 3},
		{name: "default cap applies", input: 30, maxCount: 0, want: 20},
		{name: "ceiling enforced", input: 60, maxCount: 200, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cap(makeCases(tt.input), tt.maxCount)
			if len(got) != tt.want {
				t.Fatalf("Cap() len = %d, want %d", len(got), tt.want)
			}
			// first-N policy: original relative order preserved
			for i, c := range got {
				if want := fmt.Sprintf("Case %d", i+1); c.Title != want {
					t.Errorf("case %d title = %q, want %q", i, c.Title, want)
				}
			}
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []Case{
		{
			Title: "Login",
			Steps: []Step{
				{Keyword: Given, Body: "valid creds"},
				{Keyword: When, Body: "user logs in"},
				{Keyword: Then, Body: "dashboard is shown"},
			},
		},
		{
			Title: "Logout",
			Steps: []Step{
				{Keyword: Given, Body: "a session"},
				{Keyword: When, Body: "user logs out"},
				{Keyword: Then, Body: "login page is shown"},
			},
		},
	}

	want := strings.Join([]string{
		"001. Login",
		"Given valid creds",
		"When user logs in",
		"Then dashboard is shown",
		"",
		"002. Logout",
		"Given a session",
		"When user logs out",
		"Then login page is shown",
	}, "\n")

	if got := Format(cases); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatNumberingIsFresh(t *testing.T) {
	cases := makeCases(4)
	out := Format(cases)

	for i := 1; i <= 4; i++ {
		header := fmt.Sprintf("%03d. Case %d", i, i)
		if !strings.Contains(out, header) {
			t.Errorf("output missing header %q", header)
		}
	}
	if strings.Contains(out, "000.") || strings.Contains(out, "005.") {
		t.Errorf("output has unexpected numbering:\n%s", out)
	}
}

func TestFormatNoOuterBlankLines(t *testing.T) {
	out := Format(makeCases(2))
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Errorf("output has leading/trailing blank lines: %q", out)
	}
	if strings.Contains(out, "\n\n\n") {
		t.Errorf("output has multi-blank separation: %q", out)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
