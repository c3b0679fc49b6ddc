// Diff Match and Patch – halfmatch speedup
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"strings"

	"github.com/gostrand/textdiff/internal/utf8x"
)

type halfMatch struct {
	prefix1 string
	suffix1 string
	prefix2 string
	suffix2 string
	common  string
}

// findHalfMatch looks for a substring shared by text1 and text2 that is at
// least half the byte length of the longer of the two. This speedup can
// produce non-minimal diffs. Returns nil if no qualifying match exists.
//
// Unlike the canonical reference, this never bails out based on a deadline:
// the top-level compute always attempts a half-match.
func findHalfMatch(text1, text2 string) (hm *halfMatch) {
	var long, short string
	if len(text1) > len(text2) {
		long, short = text1, text2
	} else {
		long, short = text2, text1
	}
	if len(long) < 4 || len(short)*2 < len(long) {
		return nil // Pointless.
	}

	// Check the second quarter, then the third quarter, as seeds.
	hm1 := findHalfMatchAroundIndex(long, short, (len(long)+3)/4)
	hm2 := findHalfMatchAroundIndex(long, short, (len(long)+1)/2)

	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	case len(hm1.common) > len(hm2.common):
		hm = hm1
	default:
		hm = hm2
	}

	if len(text1) <= len(text2) {
		hm = &halfMatch{hm.prefix2, hm.suffix2, hm.prefix1, hm.suffix1, hm.common}
	}
	return hm
}

// findHalfMatchAroundIndex looks for a substring of short that is at least
// half the byte length of long, seeded by a quarter-length slice of long
// starting near byte offset i0.
func findHalfMatchAroundIndex(long, short string, i0 int) (hm *halfMatch) {
	iEnd := i0 + len(long)/4
	if iEnd > len(long) {
		iEnd = len(long)
	}
	raw := long[i0:iEnd]

	// Repair the seed onto codepoint boundaries; track how far each end
	// moved so later slicing stays consistent.
	lead, rest := utf8x.RepairHead(raw)
	_, trail := utf8x.RepairTail(rest)
	i0 += len(lead)
	iEnd -= len(trail)
	seed := long[i0:iEnd]
	if seed == "" {
		return nil
	}

	var best halfMatch
	pos := 0
	for {
		idx := strings.Index(short[pos:], seed)
		if idx == -1 {
			break
		}
		j := pos + idx

		prefix := utf8x.CommonPrefix(long[i0:], short[j:])
		suffix := utf8x.CommonSuffix(long[:i0], short[:j])

		if len(best.common) < len(suffix)+len(prefix) {
			best.common = suffix + prefix
			best.prefix1 = long[:i0-len(suffix)]
			best.suffix1 = long[i0+len(prefix):]
			best.prefix2 = short[:j-len(suffix)]
			best.suffix2 = short[j+len(prefix):]
		}

		pos = utf8x.NextBoundary(short, j)
	}
	if len(best.common)*2 >= len(long) {
		hm = &best
	}
	return hm
}
