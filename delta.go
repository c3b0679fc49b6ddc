// Diff Match and Patch – delta encoding
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gostrand/textdiff/internal/utf8x"
)

// ToDelta encodes an edit script as a compact tab-separated delta: an
// equal run becomes "=N" (N codepoints kept from the source), a delete
// becomes "-N", and an insert becomes "+" followed by its query-escaped
// text. A delta only makes sense alongside the source text it was
// computed against; it does not itself carry that text (except inserted
// text, which FromDelta does not need the source for).
func ToDelta(script Diffs) string {
	var parts []string
	for _, d := range script {
		switch d.Op {
		case Equal:
			parts = append(parts, fmt.Sprintf("=%d", utf8x.CodepointCount(d.Text)))
		case Delete:
			parts = append(parts, fmt.Sprintf("-%d", utf8x.CodepointCount(d.Text)))
		case Insert:
			parts = append(parts, "+"+url.QueryEscape(d.Text))
		}
	}
	return strings.Join(parts, "\t")
}

// FromDelta reconstructs an edit script by replaying delta against source.
// It returns an error if delta references more codepoints of source than
// remain, or is malformed.
func FromDelta(source string, delta string) (Diffs, error) {
	var diffs Diffs
	view := utf8x.NewView(source)
	pos := 0
	if delta == "" {
		return diffs, nil
	}
	for _, tok := range strings.Split(delta, "\t") {
		if tok == "" {
			continue
		}
		switch tok[0] {
		case '+':
			text, err := url.QueryUnescape(tok[1:])
			if err != nil {
				return nil, fmt.Errorf("textdiff: invalid delta insert %q: %w", tok, err)
			}
			diffs.add(Insert, text)
		case '=', '-':
			n, err := strconv.Atoi(tok[1:])
			if err != nil {
				return nil, fmt.Errorf("textdiff: invalid delta count %q: %w", tok, err)
			}
			if pos+n > view.Len() {
				return nil, fmt.Errorf("textdiff: delta count %d exceeds remaining source length", n)
			}
			text := view.Slice(pos, pos+n)
			pos += n
			if tok[0] == '=' {
				diffs.add(Equal, text)
			} else {
				diffs.add(Delete, text)
			}
		default:
			return nil, fmt.Errorf("textdiff: invalid delta token %q", tok)
		}
	}
	if pos != view.Len() {
		return nil, fmt.Errorf("textdiff: delta covers %d of %d source codepoints", pos, view.Len())
	}
	return diffs, nil
}
