// Diff Match and Patch – tests
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/gostrand/textdiff/internal/utf8x"
)

type halfMatchTest struct {
	name         string
	text1, text2 string
	want         *halfMatch
}

var halfMatchTests = []halfMatchTest{
	{"No match #1", "1234567890", "abcdef", nil},
	{"No match #2", "12345", "23", nil},
	{"Single Match #1", "1234567890", "a345678z", &halfMatch{"12", "90", "a", "z", "345678"}},
	{"Single Match #2", "a345678z", "1234567890", &halfMatch{"a", "z", "12", "90", "345678"}},
	{"Single Match #3", "abc56789z", "1234567890", &halfMatch{"abc", "z", "1234", "0", "56789"}},
	{"Single Match #4", "a23456xyz", "1234567890", &halfMatch{"a", "xyz", "1", "7890", "23456"}},
	{"Multiple Matches #1", "121231234123451234123121", "a1234123451234z", &halfMatch{"12123", "123121", "a", "z", "1234123451234"}},
	{"Multiple Matches #2", "x-=-=-=-=-=-=-=-=-=-=-=-=", "xx-=-=-=-=-=-=-=", &halfMatch{"", "-=-=-=-=-=", "x", "", "x-=-=-=-=-=-=-="}},
	{"Multiple Matches #3", "-=-=-=-=-=-=-=-=-=-=-=-=y", "-=-=-=-=-=-=-=yy", &halfMatch{"-=-=-=-=-=", "", "", "y", "-=-=-=-=-=-=-=y"}},
	// Optimal diff would be -q+x=H-i+e=lloHe+Hu=llo-Hew+y, not -qHillo+x=HelloHe-w+Hulloy.
	{"Non-optimal halfmatch", "qHilloHelloHew", "xHelloHeHulloy", &halfMatch{"qHillo", "w", "x", "Hulloy", "HelloHe"}},
}

func TestDiffHalfMatch(t *testing.T) {
	for _, test := range halfMatchTests {
		hm := findHalfMatch(test.text1, test.text2)
		switch {
		case hm == nil && test.want == nil:
		case hm != nil && test.want != nil && *hm == *test.want:
		default:
			t.Errorf("%s: findHalfMatch(%q, %q) = %v, want %v", test.name, test.text1, test.text2, hm, test.want)
		}
	}
}

func TestDiffLinesToChars(t *testing.T) {
	d := &linesDesc{
		"",
		"",
		[]string{"", "alpha\n", "beta\n"},
	}
	assertLinesDesc(t, "Shared lines", d, diffLinesToChars("alpha\nbeta\nalpha\n", "beta\nalpha\nbeta\n"))

	d = &linesDesc{
		"",
		"",
		[]string{"", "alpha\r\n", "beta\r\n", "\r\n"},
	}
	assertLinesDesc(t, "Empty string and blank lines", d, diffLinesToChars("", "alpha\r\nbeta\r\n\r\n\r\n"))

	d = &linesDesc{"", "", []string{"", "a", "b"}}
	assertLinesDesc(t, "No linebreaks", d, diffLinesToChars("a", "b"))

	text, d := build300LinesTest(t)
	assertLinesDesc(t, "More than 256", d, diffLinesToChars(text, ""))
}

func assertLinesDesc(t *testing.T, descr string, want, have *linesDesc) {
	t.Helper()
	if want.chars1 != have.chars1 || want.chars2 != have.chars2 || len(want.lines) != len(have.lines) {
		t.Errorf("%s: diffLinesToChars = %v, want %v", descr, have, want)
		return
	}
	for i := range want.lines {
		if want.lines[i] != have.lines[i] {
			t.Errorf("%s: line %d = %q, want %q", descr, i, have.lines[i], want.lines[i])
		}
	}
}

func TestDiffCharsToLines(t *testing.T) {
	if (Diff{Equal, "a"}) != (Diff{Equal, "a"}) {
		t.Error("Diff equality should hold for identical ops")
	}

	diffs := diffList("=<> +<>")
	tmpVector := []string{"", "alpha\n", "beta\n"}
	diffCharsToLines(diffs, tmpVector)
	assertDiffs(t, "Shared lines", diffList("=<alpha\nbeta\nalpha\n> +<beta\nalpha\nbeta\n>"), diffs)

	lines, d := build300LinesTest(t)
	diffs = Diffs{{Delete, d.chars1}}
	diffCharsToLines(diffs, d.lines)
	assertDiffs(t, "More than 256", Diffs{{Delete, lines}}, diffs)
}

func build300LinesTest(t *testing.T) (text string, d *linesDesc) {
	t.Helper()
	n := 300
	d = new(linesDesc)
	d.lines = []string{""}
	for x := 1; x < n+1; x++ {
		s := strconv.Itoa(x) + "\n"
		d.lines = append(d.lines, s)
		text += s
		d.chars1 += string(rune(x))
	}
	if len(d.lines) != n+1 {
		t.Errorf("d.lines has %d entries, want %d", len(d.lines), n+1)
	}
	if got := utf8x.CodepointCount(d.chars1); got != n {
		t.Errorf("d.chars1 has %d codepoints, want %d", got, n)
	}
	return
}

func TestDiffCleanupMerge(t *testing.T) {
	f := func(desc string) Diffs {
		diffs := diffList(desc)
		return diffs.CleanupMerge()
	}
	assertDiffs(t, "Null case", Diffs{}, f(""))
	for _, x := range []struct{ name, input, result string }{
		{"No change case", "=<a> -<b> +<c>", "=<a> -<b> +<c>"},
		{"Merge equalities", "=<a> =<b> =<c>", "=<abc>"},
		{"Merge deletions", "-<a> -<b> -<c>", "-<abc>"},
		{"Merge insertions", "+<a> +<b> +<c>", "+<abc>"},
		{"Merge interweave", "-<a> +<b> -<c> +<d> =<e> =<f>", "-<ac> +<bd> =<ef>"},
		{"Prefix and suffix detection", "-<a> +<abc> -<dc>", "=<a> -<d> +<b> =<c>"},
		{
			"Prefix and suffix detection with equalities",
			"=<x> -<a> +<abc> -<dc> =<y>",
			"=<xa> -<d> +<b> =<cy>",
		},
		{"Slide edit left", "=<a> +<ba> =<c>", "+<ab> =<ac>"},
		{"Slide edit right", "=<c> +<ab> =<a>", "=<ca> +<ba>"},
		{"Slide edit left recursive", "=<a> -<b> =<c> -<ac> =<x>", "-<abc> =<acx>"},
		{"Slide edit right recursive", "=<x> -<ca> =<c> -<b> =<a>", "=<xca> -<cba>"},
	} {
		assertDiffs(t, x.name, diffList(x.result), f(x.input))
	}
}

func TestDiffCleanupSemanticLossless(t *testing.T) {
	f := func(desc string) Diffs {
		diffs := diffList(desc)
		return diffs.CleanupSemanticLossless()
	}
	for _, x := range []struct{ name, input, result string }{
		{"Null case", "", ""},
		{
			"Blank lines.",
			"=<AAA\r\n\r\nBBB> +<\r\nDDD\r\n\r\nBBB> =<\r\nEEE>",
			"=<AAA\r\n\r\n> +<BBB\r\nDDD\r\n\r\n> =<BBB\r\nEEE>",
		}, {
			"Line boundaries.",
			"=<AAA\r\nBBB> +< DDD\r\nBBB> =< EEE>",
			"=<AAA\r\n> +<BBB DDD\r\n> =<BBB EEE>",
		}, {
			"Word boundaries.",
			"=<The c> +<ow and the c> =<at.>",
			"=<The > +<cow and the > =<cat.>",
		}, {
			"Alphanumeric boundaries.",
			"=<The-c> +<ow-and-the-c> =<at.>",
			"=<The-> +<cow-and-the-> =<cat.>",
		},
		{"Hitting the start", "=<a> -<a> =<ax>", "-<a> =<aax>"},
		{"Hitting the end", "=<xa> -<a> =<a>", "=<xaa> -<a>"},
		{
			"Sentence boundaries",
			"=<The xxx. The > +<zzz. The > =<yyy.>",
			"=<The xxx.> +< The zzz.> =< The yyy.>",
		},
	} {
		assertDiffs(t, x.name, diffList(x.result), f(x.input))
	}
}

func TestDiffCleanupSemanticIsIdentity(t *testing.T) {
	for _, desc := range []string{
		"",
		"-<ab> +<cd> =<12> -<e>",
		"-<a> =<b> -<c>",
		"-<abcxxx> +<xxxdef>",
	} {
		diffs := diffList(desc)
		assertDiffs(t, desc, diffs, CleanupSemantic(diffs))
	}
}

func TestDiffCleanupEfficiency(t *testing.T) {
	for _, x := range []struct {
		name          string
		editCost      int
		input, result string
	}{
		{"Null case", 4, "", ""},
		{
			"No elimination", 4,
			"-<ab> +<12> =<wxyz> -<cd> +<34>",
			"-<ab> +<12> =<wxyz> -<cd> +<34>",
		}, {
			"Four-edit elimination", 4,
			"-<ab> +<12> =<xyz> -<cd> +<34>",
			"-<abxyzcd> +<12xyz34>",
		}, {
			"Three-edit elimination", 4,
			"+<12> =<x> -<cd> +<34>",
			"-<xcd> +<12x34>",
		}, {
			"Backpass elimination", 4,
			"-<ab> +<12> =<xy> +<34> =<z> -<cd> +<56>",
			"-<abxyzcd> +<12xy34z56>",
		}, {
			"Double backpass elimination", 4,
			"+<ab> -<cd> =<12> -<ef> =<3> -<gh> =<4> -<xy> +<zz>",
			"-<cd12ef3gh4xy> +<ab1234zz>",
		}, {
			"Safe backpass elimination", 4,
			"+<a> -<b> =<1> +<c> =<22> -<d> =<3> -<e> +<f>",
			"-<b122d3e> +<a1c223f>",
		}, {
			"High cost elimination", 5,
			"-<ab> +<12> =<wxyz> -<cd> +<34>",
			"-<abwxyzcd> +<12wxyz34>",
		},
	} {
		diffs := diffList(x.input)
		assertDiffs(t, x.name, diffList(x.result), diffs.CleanupEfficiency(x.editCost))
	}
}

func TestDiffPrettyHTML(t *testing.T) {
	diffs := Diffs{{Equal, "a\n"}, {Delete, "<B>b</B>"}, {Insert, "c&d"}}
	want := "<span>a&para;<br></span><del style=\"background:#ffe6e6;\">&lt;B&gt;b&lt;/B&gt;</del><ins style=\"background:#e6ffe6;\">c&amp;d</ins>"
	if got := diffs.PrettyHTML(); got != want {
		t.Errorf("PrettyHTML = %q, want %q", got, want)
	}
}

func TestDiffText(t *testing.T) {
	diffs := diffList("=<jump> -<s> +<ed> =< over > -<the> +<a> =< lazy>")
	if got := diffs.SourceText(); got != "jumps over the lazy" {
		t.Errorf("SourceText = %q", got)
	}
	if got := diffs.DestinationText(); got != "jumped over a lazy" {
		t.Errorf("DestinationText = %q", got)
	}
}

func TestDiffLevenshtein(t *testing.T) {
	if got := diffList("-<abc> +<1234> =<xyz>").Levenshtein(); got != 4 {
		t.Errorf("Levenshtein with trailing equality = %d, want 4", got)
	}
	if got := diffList("=<xyz> -<abc> +<1234>").Levenshtein(); got != 4 {
		t.Errorf("Levenshtein with leading equality = %d, want 4", got)
	}
	if got := diffList("-<abc> =<xyz> +<1234>").Levenshtein(); got != 7 {
		t.Errorf("Levenshtein with middle equality = %d, want 7", got)
	}
}

func TestDiffBisect(t *testing.T) {
	// The resulting diff hasn't been normalized, so it would be ok if the
	// insertion/deletion pairs were swapped; if the order changes, tweak
	// this test as required.
	want := diffList("-<c> +<m> =<a> -<t> +<p>")
	d := new(differ)
	d.bisect(utf8x.NewView("cat"), utf8x.NewView("map"))
	assertDiffs(t, "Normal", want, d.Diffs)
}

func TestDiffBisectCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	want := diffList("-<cat> +<map>")
	d := new(differ)
	d.ctx = ctx
	d.iter = 15 // next iteration (16) triggers the context poll
	d.bisect(utf8x.NewView("cat"), utf8x.NewView("map"))
	assertDiffs(t, "Cancelled", want, d.Diffs)
}

type diffTest struct {
	name, text1, text2, result string
}

func TestDiff(t *testing.T) {
	runDiffTests(t, []diffTest{
		{"Null case", "", "", ""},
		{"Equality", "abc", "abc", "=<abc>"},
		{"Simple insertion", "abc", "ab123c", "=<ab> +<123> =<c>"},
		{"Simple deletion", "a123bc", "abc", "=<a> -<123> =<bc>"},
		{"Two insertions", "abc", "a123b456c", "=<a> +<123> =<b> +<456> =<c>"},
		{"Two deletions", "a123b456c", "abc", "=<a> -<123> =<b> -<456> =<c>"},
		{"Simple case #1", "a", "b", "-<a> +<b>"},
		{
			"Simple case #2",
			"Apples are ä fruit.",
			"Bananas are älso fruit.",
			"-<Apple> +<Banana> =<s are ä> +<lso> =< fruit.>",
		},
		{"Overlap #1", "1ayb2", "abxab", "-<1> =<a> -<y> =<b> -<2> +<xab>"},
		{"Overlap #2", "abcy", "xaxcxabc", "+<xaxcx> =<abc> -<y>"},
		{
			"Large equality",
			"a [[Pennsylvania]] and [[New",
			" and [[Pennsylvania]]",
			"+< > =<a> +<nd> =< [[Pennsylvania]]> -< and [[New>",
		},
	})
}

func runDiffTests(t *testing.T, tests []diffTest) {
	t.Helper()
	for i := range tests {
		test := &tests[i]
		result := Diff(context.Background(), test.text1, test.text2)
		assertDiffs(t, test.name, diffList(test.result), result)
	}
}

func TestDiffLineModeMatchesCharMode(t *testing.T) {
	// Text must exceed the 100-byte cutoff on both sides for Diff to pick
	// line mode on its own; forcing checkLines=false end to end should
	// still reach the same result.
	aDig := strings.Repeat("1234567890\n", 13)
	b := strings.Repeat("abcdefghij\n", 13)

	lineMode := Diff(context.Background(), aDig, b)

	charMode := new(differ)
	charMode.diffMain(aDig, b, false)
	charMode.CleanupMerge()

	assertDiffs(t, "Simple line-mode", charMode.Diffs, lineMode)
}

func diffList(desc string) (diffs Diffs) {
	if desc == "" {
		return
	}
	dl := strings.Split(desc, ">")
	diffs = make(Diffs, len(dl)-1)
	for i, diff := range dl {
		if diff == "" {
			continue
		}
		if diff[0] == ' ' {
			diff = diff[1:]
		}
		var op Op
		switch diff[0] {
		case '=':
			op = Equal
		case '+':
			op = Insert
		case '-':
			op = Delete
		}
		diffs[i] = Diff{op, diff[2:]}
	}
	return
}

func assertDiffs(t *testing.T, descr string, want, have Diffs) {
	t.Helper()
	if len(want) != len(have) {
		t.Errorf("%s: got %v, want %v", descr, have, want)
		return
	}
	for i := range want {
		if want[i] != have[i] {
			t.Errorf("%s: got %v, want %v", descr, have, want)
			return
		}
	}
}
