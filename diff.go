// Diff Match and Patch – diff main functions
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"context"
	"fmt"
	"strings"

	"github.com/gostrand/textdiff/internal/utf8x"
)

// Op identifies the kind of an edit operation.
type Op rune

const (
	Equal  Op = '='
	Insert Op = '+'
	Delete Op = '-'
)

// DefaultEditCost is the edit_cost used by CleanupEfficiency when 0 is
// passed.
const DefaultEditCost = 4

// deleteInsert is an internal sentinel used by CleanupEfficiency to mark an
// Equal op that must be resolved into a delete/insert pair by CleanupMerge.
const deleteInsert Op = '±'

// noop marks a placeholder op dropped silently by CleanupMerge.
const noop Op = 0

// Diff is a single tagged edit operation: keep, add, or remove Text.
type Diff struct {
	Op   Op
	Text string
}

func (d Diff) String() string {
	return fmt.Sprintf("%c<%s> ", d.Op, d.Text)
}

// Diffs is an ordered edit script: [Delete "Hello"][Insert "Goodbye"][Equal " world."]
// means delete "Hello", add "Goodbye", keep " world.".
type Diffs []Diff

func (d *Diffs) add(op Op, text string) {
	if text == "" {
		return
	}
	*d = append(*d, Diff{op, text})
}

// differ carries the scratch state reused across a single Diff call: the
// bisect diagonal-vector buffer (so repeated recursive bisects don't
// reallocate) and an optional cancellation context.
type differ struct {
	Diffs
	checkLines bool
	ctx        context.Context
	bisectV    []int
	iter       int
}

// Diff computes the edit script turning text1 into text2. ctx may be nil;
// if non-nil it is polled every 16 bisect iterations, and once it is Done
// the bisect step that polls it emits a plain delete/insert of its own
// inputs instead of searching further; the rest of the script is built as
// usual.
func Diff(ctx context.Context, text1, text2 string) Diffs {
	d := &differ{ctx: ctx}
	d.diffMain(text1, text2, true)
	d.CleanupMerge()
	return d.Diffs
}

// DiffBisect runs the Myers bisect engine directly on text1 and text2,
// skipping prefix/suffix stripping, half-match and line-mode dispatch at the
// top level. The two halves on either side of the split point go through
// the regular strategy, without line mode.
func DiffBisect(ctx context.Context, text1, text2 string) Diffs {
	d := &differ{ctx: ctx}
	d.bisect(utf8x.NewView(text1), utf8x.NewView(text2))
	d.CleanupMerge()
	return d.Diffs
}

// DiffLineMode forces the line-mode compressor regardless of input size.
func DiffLineMode(ctx context.Context, text1, text2 string) Diffs {
	d := &differ{ctx: ctx}
	d.diffLineMode(text1, text2)
	d.CleanupMerge()
	return d.Diffs
}

// diffMain strips any common prefix/suffix, then dispatches the remainder
// to compute. checkLines is true only at the public entry point; every
// recursive call passes false.
func (d *differ) diffMain(text1, text2 string, checkLines bool) {
	if text1 == text2 {
		d.add(Equal, text1)
		return
	}

	prefix := utf8x.CommonPrefix(text1, text2)
	text1 = text1[len(prefix):]
	text2 = text2[len(prefix):]

	suffix := utf8x.CommonSuffix(text1, text2)
	text1 = text1[:len(text1)-len(suffix)]
	text2 = text2[:len(text2)-len(suffix)]

	if prefix != "" {
		d.add(Equal, prefix)
	}

	d.compute(text1, text2, checkLines)

	if suffix != "" {
		d.add(Equal, suffix)
	}
}

// compute finds the differences between text1 and text2, assuming any
// common prefix/suffix has already been stripped.
func (d *differ) compute(text1, text2 string, checkLines bool) {
	if text1 == "" {
		d.add(Insert, text2)
		return
	}
	if text2 == "" {
		d.add(Delete, text1)
		return
	}

	var long, short string
	var op Op
	if len(text1) > len(text2) {
		long, short, op = text1, text2, Delete
	} else {
		long, short, op = text2, text1, Insert
	}

	if i := strings.Index(long, short); i != -1 {
		// The shorter text sits wholly inside the longer one (speedup).
		d.add(op, long[:i])
		d.add(Equal, short)
		d.add(op, long[i+len(short):])
		return
	}

	if utf8x.SmallerThan(short, 2) {
		// A single codepoint can't be a useful equality.
		d.add(Delete, text1)
		d.add(Insert, text2)
		return
	}

	if hm := findHalfMatch(text1, text2); hm != nil {
		d.diffMain(hm.prefix1, hm.prefix2, false)
		d.add(Equal, hm.common)
		d.diffMain(hm.suffix1, hm.suffix2, false)
		return
	}

	if checkLines && len(text1) > 100 && len(text2) > 100 {
		d.diffLineMode(text1, text2)
		return
	}
	d.bisect(utf8x.NewView(text1), utf8x.NewView(text2))
}

func (d *differ) diffLineMode(text1, text2 string) {
	b := diffLinesToChars(text1, text2)

	ld := &differ{ctx: d.ctx, bisectV: d.bisectV}
	ld.diffMain(b.chars1, b.chars2, false)
	ld.CleanupMerge()
	d.bisectV = ld.bisectV

	diffCharsToLines(ld.Diffs, b.lines)
	ld.CleanupMerge()

	// Rediff any replacement blocks, this time codepoint by codepoint.
	var textDel, textIns string
	for _, diff := range ld.Diffs {
		switch diff.Op {
		case Insert:
			textIns += diff.Text
		case Delete:
			textDel += diff.Text
		case Equal:
			switch {
			case textDel != "" && textIns != "":
				d.diffMain(textDel, textIns, false)
			case textDel != "":
				d.add(Delete, textDel)
			case textIns != "":
				d.add(Insert, textIns)
			}
			textDel, textIns = "", ""
			d.add(Equal, diff.Text)
		}
	}
	if textDel != "" && textIns != "" {
		d.diffMain(textDel, textIns, false)
	} else if textDel != "" {
		d.add(Delete, textDel)
	} else if textIns != "" {
		d.add(Insert, textIns)
	}
}

// bisect finds the middle snake of a diff, splits the problem in two, and
// recursively constructs the result. See Myers 1986: An O(ND) Difference
// Algorithm and Its Variations.
func (d *differ) bisect(text1, text2 *utf8x.View) {
	text1Len, text2Len := text1.Len(), text2.Len()
	maxD := (text1Len + text2Len + 1) / 2
	vOff := maxD
	vLen := 2 * maxD
	if cap(d.bisectV) < vLen*2 {
		d.bisectV = make([]int, vLen*2)
	}
	v1 := d.bisectV[:vLen]
	v2 := d.bisectV[vLen : 2*vLen]
	for x := range v1 {
		v1[x] = -1
		v2[x] = -1
	}
	v1[vOff+1] = 0
	v2[vOff+1] = 0
	delta := text1Len - text2Len

	// If the total codepoint count is odd, the front path collides with
	// the reverse path.
	front := delta%2 != 0

	k1start, k1end, k2start, k2end := 0, 0, 0, 0

	var x1, y1, k1off int
	var x2, y2, k2off int

	for D := 0; D < maxD; D++ {
		d.iter++
		if d.ctx != nil && d.iter%16 == 0 {
			select {
			case <-d.ctx.Done():
				d.add(Delete, text1.String())
				d.add(Insert, text2.String())
				return
			default:
			}
		}

		for k1 := -D + k1start; k1 <= D-k1end; k1 += 2 {
			k1off = vOff + k1
			if k1 == -D || (k1 != D && v1[k1off-1] < v1[k1off+1]) {
				x1 = v1[k1off+1]
			} else {
				x1 = v1[k1off-1] + 1
			}
			y1 = x1 - k1
			for x1 < text1Len && y1 < text2Len && text1.At(x1) == text2.At(y1) {
				x1++
				y1++
			}
			v1[k1off] = x1

			switch {
			case x1 > text1Len:
				k1end += 2
			case y1 > text2Len:
				k1start += 2
			case front:
				k2off = vOff + delta - k1
				if k2off >= 0 && k2off < vLen && v2[k2off] != -1 {
					x2 = text1Len - v2[k2off]
					if x1 >= x2 {
						d.bisectSplit(text1, text2, x1, y1)
						return
					}
				}
			}
		}

		for k2 := -D + k2start; k2 <= D-k2end; k2 += 2 {
			k2off = vOff + k2
			if k2 == -D || (k2 != D && v2[k2off-1] < v2[k2off+1]) {
				x2 = v2[k2off+1]
			} else {
				x2 = v2[k2off-1] + 1
			}
			y2 = x2 - k2
			for x2 < text1Len && y2 < text2Len && text1.At(text1Len-x2-1) == text2.At(text2Len-y2-1) {
				x2++
				y2++
			}
			v2[k2off] = x2

			switch {
			case x2 > text1Len:
				k2end += 2
			case y2 > text2Len:
				k2start += 2
			case !front:
				k1off = vOff + delta - k2
				if k1off >= 0 && k1off < vLen && v1[k1off] != -1 {
					x1 = v1[k1off]
					y1 = vOff + x1 - k1off
					x2 = text1Len - x2
					if x1 >= x2 {
						d.bisectSplit(text1, text2, x1, y1)
						return
					}
				}
			}
		}
	}

	// No commonality found within the search budget.
	d.add(Delete, text1.String())
	d.add(Insert, text2.String())
}

// bisectSplit recurses on the two halves on either side of the middle
// snake located at codepoint (x, y).
func (d *differ) bisectSplit(text1, text2 *utf8x.View, x, y int) {
	s1, i1 := text1.String(), text1.BytePos(x)
	s2, i2 := text2.String(), text2.BytePos(y)

	d.diffMain(s1[:i1], s2[:i2], false)
	d.diffMain(s1[i1:], s2[i2:], false)
}
