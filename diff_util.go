// Diff Match and Patch – Diffs methods
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"html"
	"strings"

	"github.com/gostrand/textdiff/internal/utf8x"
)

// PrettyHTML renders diffs as an HTML fragment: inserted text wrapped in
// <ins>, deleted text in <del>, unchanged text in <span>.
func (diffs Diffs) PrettyHTML() (s string) {
	r := strings.NewReplacer("\n", "&para;<br>")
	for _, d := range diffs {
		text := html.EscapeString(d.Text)
		text = r.Replace(text)
		switch d.Op {
		case Insert:
			s += `<ins style="background:#e6ffe6;">` + text + "</ins>"
		case Delete:
			s += `<del style="background:#ffe6e6;">` + text + "</del>"
		case Equal:
			s += "<span>" + text + "</span>"
		}
	}
	return
}

// SourceText returns the concatenation of all equal and delete op text.
func (diffs Diffs) SourceText() (source string) {
	for _, d := range diffs {
		if d.Op != Insert {
			source += d.Text
		}
	}
	return
}

// DestinationText returns the concatenation of all equal and insert op text.
func (diffs Diffs) DestinationText() (dest string) {
	for _, d := range diffs {
		if d.Op != Delete {
			dest += d.Text
		}
	}
	return
}

// Levenshtein computes the number of inserted, deleted, or substituted
// codepoints.
func (diffs Diffs) Levenshtein() (levenshtein int) {
	insertions := 0
	deletions := 0
	for _, d := range diffs {
		switch d.Op {
		case Insert:
			insertions += utf8x.CodepointCount(d.Text)
		case Delete:
			deletions += utf8x.CodepointCount(d.Text)
		case Equal:
			// A deletion and an insertion together are one substitution.
			levenshtein += max(insertions, deletions)
			insertions = 0
			deletions = 0
		}
	}
	levenshtein += max(insertions, deletions)
	return
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
