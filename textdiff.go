// Diff Match and Patch – top-level package surface
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

// Package textdiff computes, refines, and applies textual diffs between
// UTF-8 strings: a Myers bisect engine with a half-match speedup and a
// line-mode preprocessor, plus merge/efficiency cleanup passes and a patch
// assembler. The engine is a pure function: no I/O, no shared state, safe
// to call concurrently on disjoint inputs.
package textdiff

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gostrand/textdiff/internal/utf8x"
)

// ErrInvalidUTF8 is returned by TextSize when given a string that is not
// valid UTF-8. Callers that pass untrusted bytes without validating them
// first are using the API incorrectly.
var ErrInvalidUTF8 = errors.New("textdiff: invalid UTF-8")

// ErrPatternNotFound is returned by UniqueMatch when pattern does not occur
// in text at all.
var ErrPatternNotFound = errors.New("textdiff: pattern not found")

// TextSize returns the codepoint count of s. It returns ErrInvalidUTF8 if s
// is not valid UTF-8; calling it on invalid input is a programming error.
func TextSize(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUTF8, s)
	}
	return utf8x.CodepointCount(s), nil
}

// TextSmallerThan reports whether s has fewer than n codepoints.
func TextSmallerThan(s string, n int) bool {
	return utf8x.SmallerThan(s, n)
}

// CommonPrefix returns the longest shared byte prefix of a and b, trimmed
// to end on a codepoint boundary.
func CommonPrefix(a, b string) string {
	return utf8x.CommonPrefix(a, b)
}

// CommonSuffix returns the longest shared byte suffix of a and b, trimmed
// to begin on a codepoint boundary.
func CommonSuffix(a, b string) string {
	return utf8x.CommonSuffix(a, b)
}

// SplitPreAndSuffix splits t1 and t2 into a shared prefix, the two
// remaining middles, and a shared suffix of what's left after the prefix
// is removed. prefix ++ middle1 ++ suffix == t1 and
// prefix ++ middle2 ++ suffix == t2; all four parts end on codepoint
// boundaries.
func SplitPreAndSuffix(t1, t2 string) (prefix, middle1, middle2, suffix string) {
	prefix = utf8x.CommonPrefix(t1, t2)
	middle1 = t1[len(prefix):]
	middle2 = t2[len(prefix):]
	suffix = utf8x.CommonSuffix(middle1, middle2)
	middle1 = middle1[:len(middle1)-len(suffix)]
	middle2 = middle2[:len(middle2)-len(suffix)]
	return
}

// UniqueMatch reports whether pattern occurs in text exactly once. It
// returns ErrPatternNotFound if pattern does not occur at all, distinct
// from the false returned when pattern occurs more than once.
func UniqueMatch(pattern, text string) (bool, error) {
	first := strings.Index(text, pattern)
	if first == -1 {
		return false, fmt.Errorf("%w: %q not in %q", ErrPatternNotFound, pattern, text)
	}
	second := strings.Index(text[first+len(pattern):], pattern)
	return second == -1, nil
}
