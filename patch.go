// Diff Match and Patch – patch assembly
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/gostrand/textdiff/internal/utf8x"
)

// Boundary constants visible at the package's external interface.
const (
	PatchMargin  = 4  // codepoints of context flanking a patch
	PatchMaxLen  = 32 // contract constant; MakePatch does not consult it
	MatchMaxBits = 31 // contract constant for the fuzzy locator; unused, see DESIGN.md
)

// Patch is a contiguous run of an edit script together with the codepoint
// offsets and lengths it spans in the source and destination text.
type Patch struct {
	Diffs            Diffs
	Start1, Start2   int
	Length1, Length2 int
}

// String renders a patch in a unified-diff-like header plus one body line
// per op, insert/delete/equal text query-escaped onto a single line.
func (p Patch) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@@ -%s +%s @@\n", patchCoords(p.Start1, p.Length1), patchCoords(p.Start2, p.Length2))
	for _, d := range p.Diffs {
		var prefix string
		switch d.Op {
		case Insert:
			prefix = "+"
		case Delete:
			prefix = "-"
		case Equal:
			prefix = " "
		}
		b.WriteString(prefix)
		b.WriteString(url.QueryEscape(d.Text))
		b.WriteByte('\n')
	}
	return b.String()
}

func patchCoords(start, length int) string {
	switch length {
	case 0:
		return fmt.Sprintf("%d,0", start)
	case 1:
		return strconv.Itoa(start + 1)
	default:
		return fmt.Sprintf("%d,%d", start+1, length)
	}
}

// MakePatch groups an edit script for source into patch records with up to
// PatchMargin codepoints of context flanking each edit.
//
// The reference leaves unresolved the branch that opens a second patch
// after a long equal run (spec §9, an explicit open question). This
// implementation takes the "single growing patch" resolution: the whole
// script becomes one patch, trimmed only at its very first and last equal
// runs down to PatchMargin codepoints of context. It never opens a second
// patch. The result is nil if script contains no edits at all.
func MakePatch(script Diffs) []Patch {
	if len(script) == 0 {
		return nil
	}
	hasEdit := false
	for _, d := range script {
		if d.Op != Equal {
			hasEdit = true
			break
		}
	}
	if !hasEdit {
		return nil
	}

	diffs := append(Diffs(nil), script...)
	start1, start2 := 0, 0

	if diffs[0].Op == Equal {
		kept := utf8x.LastCodepoints(diffs[0].Text, PatchMargin)
		trimmed := utf8x.CodepointCount(diffs[0].Text) - utf8x.CodepointCount(kept)
		start1 += trimmed
		start2 += trimmed
		if kept == "" {
			diffs = diffs[1:]
		} else {
			diffs[0].Text = kept
		}
	}
	if n := len(diffs); n > 0 && diffs[n-1].Op == Equal {
		diffs[n-1].Text = utf8x.FirstCodepoints(diffs[n-1].Text, PatchMargin)
		if diffs[n-1].Text == "" {
			diffs = diffs[:n-1]
		}
	}

	p := Patch{Diffs: diffs, Start1: start1, Start2: start2}
	for _, d := range diffs {
		n := utf8x.CodepointCount(d.Text)
		switch d.Op {
		case Insert:
			p.Length2 += n
		case Delete:
			p.Length1 += n
		case Equal:
			p.Length1 += n
			p.Length2 += n
		}
	}
	return []Patch{p}
}

// ApplyPatch applies patches to text in order, verifying each patch's
// source text is exactly present (non-fuzzy: no relocation, no partial
// match — that is the excluded Bitap locator's job) before rewriting it to
// the patch's destination text. The returned slice reports which patches
// applied.
func ApplyPatch(patches []Patch, text string) (string, []bool) {
	applied := make([]bool, len(patches))
	for i, p := range patches {
		src := p.Diffs.SourceText()
		idx := strings.Index(text, src)
		if idx == -1 {
			continue
		}
		text = text[:idx] + p.Diffs.DestinationText() + text[idx+len(src):]
		applied[i] = true
	}
	return text, applied
}

// PatchToText serializes a list of patches to their text form.
func PatchToText(patches []Patch) string {
	var b strings.Builder
	for _, p := range patches {
		b.WriteString(p.String())
	}
	return b.String()
}

var patchHeaderRE = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)

// PatchFromText parses the text form produced by PatchToText/String back
// into a list of patches.
func PatchFromText(text string) ([]Patch, error) {
	if text == "" {
		return nil, nil
	}
	var patches []Patch
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			i++
			continue
		}
		m := patchHeaderRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("textdiff: invalid patch header: %q", line)
		}
		var p Patch
		p.Start1, p.Length1 = parseCoords(m[1], m[2])
		p.Start2, p.Length2 = parseCoords(m[3], m[4])
		i++
		for i < len(lines) && lines[i] != "" {
			line := lines[i]
			body, err := url.QueryUnescape(line[1:])
			if err != nil {
				return nil, fmt.Errorf("textdiff: invalid patch body line %q: %w", line, err)
			}
			switch line[0] {
			case '+':
				p.Diffs.add(Insert, body)
			case '-':
				p.Diffs.add(Delete, body)
			case ' ':
				p.Diffs.add(Equal, body)
			default:
				return nil, fmt.Errorf("textdiff: invalid patch body line %q", line)
			}
			i++
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func parseCoords(start, length string) (int, int) {
	s, _ := strconv.Atoi(start)
	if length == "" {
		return s - 1, 1
	}
	l, _ := strconv.Atoi(length)
	if l == 0 {
		return s, 0
	}
	return s - 1, l
}
