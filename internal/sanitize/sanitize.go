// Package sanitize scrubs raw model output before BDD enforcement: markdown
// artifacts, bracketed title tags, inconsistent numbering, and leaked
// non-English lines. Every function is a best-effort text transform that
// never fails on malformed input.
package sanitize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberedTagPattern  = regexp.MustCompile(`(?m)^(\s*\d{1,3}\.\s*)\[[^\]]+\]\s*`)
	leadingTagPattern   = regexp.MustCompile(`(?m)^(\s*)\[[^\]]+\]\s*`)
	altNumberPattern    = regexp.MustCompile(`^\d+\)\s+`)
	blankRunPattern     = regexp.MustCompile(`\n{3,}`)
	numberedLinePattern = regexp.MustCompile(`(?m)^(\s*)(\d+)\.(\s*)(.+)$`)
	caseHeaderPattern   = regexp.MustCompile(`^\s*\d{1,3}\.\s+\S`)
	indonesianWordRe    = regexp.MustCompile(`(?i)\b(ketika|tombol|halaman|pengguna|aplikasi|ditampilkan|ukuran|warna|berhasil|gagal|data|sistem)\b`)
)

// bullet characters the model prefixes to step lines
var bulletPrefixes = []string{"-", "•", "●", "▪"}

// indonesianTokens are common Indonesian words used as a cheap leakage
// heuristic. Matched with surrounding spaces against the lowercased text.
var indonesianTokens = []string{
	" yang ", " dan ", " adalah ", " ketika", " saat ", " tombol",
	" halaman", " pengguna", " aplikasi", " tampil", " ditampilkan",
	" ukuran", " warna", " berhasil", " gagal", " data ", " sistem ",
}

// StripTitleTags removes bracketed tags ("[Functional] ...") that the model
// sometimes places after numbered headers or at the start of a line.
func StripTitleTags(text string) string {
	if text == "" {
		return text
	}
	text = numberedTagPattern.ReplaceAllString(text, "$1")
	return leadingTagPattern.ReplaceAllString(text, "$1")
}

// CleanModelOutput normalizes line endings, removes asterisks and bullet
// prefixes, strips "N)" numbering inside steps, and squeezes blank-line runs
// down to a single separator.
func CleanModelOutput(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "*", "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		s := strings.TrimLeft(line, " \t")
		for _, b := range bulletPrefixes {
			if strings.HasPrefix(s, b) {
				s = strings.TrimLeft(strings.TrimPrefix(s, b), " \t")
				break
			}
		}
		lines[i] = altNumberPattern.ReplaceAllString(s, "")
	}
	text = strings.Join(lines, "\n")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// NormalizeNumbering rewrites every numbered header line with a zero-padded
// 3-digit number and a single space before the title.
func NormalizeNumbering(text string) string {
	if text == "" {
		return text
	}
	return numberedLinePattern.ReplaceAllStringFunc(text, func(m string) string {
		g := numberedLinePattern.FindStringSubmatch(m)
		n, _ := strconv.Atoi(g[2])
		return fmt.Sprintf("%s%03d. %s", g[1], n, strings.TrimSpace(g[4]))
	})
}

// EnsureBlankLineBetweenCases inserts a blank line before each numbered case
// header that directly follows other content, and trims trailing blanks.
func EnsureBlankLineBetweenCases(text string) string {
	if text == "" {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if caseHeaderPattern.MatchString(line) {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
				out = append(out, "")
			}
		}
		out = append(out, strings.TrimRight(line, " \t"))
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// ContainsIndonesian reports whether the text carries common Indonesian
// tokens. This is a leakage flag, not a language detector.
func ContainsIndonesian(text string) bool {
	if text == "" {
		return false
	}
	padded := " " + strings.ToLower(text) + " "
	for _, tok := range indonesianTokens {
		if strings.Contains(padded, tok) {
			return true
		}
	}
	return false
}

// ScrubIndonesianLines drops every line containing an Indonesian token and
// any lines left blank by the removal.
func ScrubIndonesianLines(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if indonesianWordRe.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Finalize runs the full scrub pipeline on raw model output: markdown
// cleanup, numbering normalization, Indonesian-line scrubbing when leakage
// is detected, and blank-line separation between cases.
func Finalize(raw string) string {
	cleaned := StripTitleTags(CleanModelOutput(raw))
	normalized := NormalizeNumbering(cleaned)
	if ContainsIndonesian(normalized) {
		normalized = ScrubIndonesianLines(normalized)
	}
	return EnsureBlankLineBetweenCases(normalized)
}
