package bdd

import (
	"regexp"
	"strconv"
	"strings"
)

// The title group is (.*) rather than (.+): a case whose title collapses to
// nothing renders a bare "NNN." header, and re-enforcing canonical output
// must re-parse it instead of swallowing the case as preamble.
var headerPattern = regexp.MustCompile(`^\s*(\d{1,3})\.[\s)]*(.*)`)

// CaseBlock is a transient segmentation product: one numbered block of the
// raw model output, before any step classification.
type CaseBlock struct {
	// OrdinalHint is the number from the original header line. It is not
	// guaranteed contiguous, unique, or ordered; renumbering discards it.
	OrdinalHint int
	// RawTitle is the header text after the number, trailing periods removed.
	RawTitle string
	// RawLines are the non-empty lines following the header, verbatim.
	RawLines []string
}

// Segment splits raw model output into candidate case blocks on numbered
// headers. Lines before the first header are discarded as preamble. Input
// with no header at all becomes a single implicit block with ordinal 1 and
// an empty title, so the completion engine can still produce one minimally
// valid case. Empty input yields no blocks.
func Segment(raw string) []CaseBlock {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var blocks []CaseBlock
	var cur *CaseBlock

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if cur != nil {
				blocks = append(blocks, *cur)
			}
			n, _ := strconv.Atoi(m[1])
			cur = &CaseBlock{
				OrdinalHint: n,
				RawTitle:    trimTitle(m[2]),
			}
			continue
		}
		if cur == nil {
			continue
		}
		if s := strings.TrimSpace(line); s != "" {
			cur.RawLines = append(cur.RawLines, s)
		}
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}

	if len(blocks) == 0 {
		implicit := CaseBlock{OrdinalHint: 1}
		for _, line := range strings.Split(raw, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				implicit.RawLines = append(implicit.RawLines, s)
			}
		}
		blocks = append(blocks, implicit)
	}

	return blocks
}

func trimTitle(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "."))
}
