// Diff Match and Patch – line mode conversion utilities
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"bytes"
	"fmt"
	"strings"
)

type linesDesc struct {
	chars1, chars2 string
	lines          []string
}

func (d *linesDesc) String() string {
	return fmt.Sprintf("#1:%q, #2:%q, lines:%q\n", d.chars1, d.chars2, d.lines)
}

// diffLinesToChars splits text1 and text2 into lines, assigns each distinct
// line a small integer id shared across both inputs, and returns the two
// inputs re-encoded as strings of codepoint ids alongside the id->line
// table. The zeroth table entry is intentionally blank so no line maps to
// the NUL codepoint.
func diffLinesToChars(text1, text2 string) *linesDesc {
	var d linesDesc
	m := newLineMunger()
	d.chars1 = m.linesToChars(text1)
	d.chars2 = m.linesToChars(text2)
	d.lines = m.lineArray
	return &d
}

type lineMunger struct {
	lineArray []string       // lineArray[4] == "Hello\n"
	lineHash  map[string]int // lineHash["Hello\n"] == 4
}

func newLineMunger() *lineMunger {
	var m lineMunger
	m.lineArray = []string{""}
	m.lineHash = make(map[string]int, 16)
	return &m
}

// linesToChars splits text into lines (each maximal run ending in "\n", or
// the trailing run with no newline) and encodes it as a string whose
// codepoints are per-line ids.
func (m *lineMunger) linesToChars(text string) string {
	lines := strings.SplitAfter(text, "\n")
	chars := bytes.NewBuffer(make([]byte, 0, 2*len(lines)))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		id, ok := m.lineHash[line]
		if !ok {
			m.lineArray = append(m.lineArray, line)
			id = len(m.lineArray) - 1
			m.lineHash[line] = id
		}
		chars.WriteRune(rune(id))
	}
	return chars.String()
}

// diffCharsToLines rehydrates each Diff's line-id text back into the
// original lines.
func diffCharsToLines(diffs []Diff, lines []string) {
	var b bytes.Buffer
	for i := range diffs {
		for _, r := range diffs[i].Text {
			b.WriteString(lines[r])
		}
		diffs[i].Text = b.String()
		b.Reset()
	}
}
