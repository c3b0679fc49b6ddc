// Diff Match and Patch – cleanup functions
// 	Original work: Copyright 2006 Google Inc.
// 	Go port:	Copyright 2012 M. Teichgräber
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package textdiff

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gostrand/textdiff/internal/utf8x"
)

// CleanupSemantic is the identity function: it returns s unchanged. A full
// semantic-trivial-equality elimination pass is out of scope for this
// version; do not add one here.
func CleanupSemantic(s Diffs) Diffs {
	return s
}

// CleanupSemanticLossless looks for single edits surrounded on both sides by
// equalities and shifts them sideways to align the edit to a word, line, or
// sentence boundary, e.g. "The c<ins>at c</ins>ame." -> "The <ins>cat </ins>came."
// It is independent of CleanupSemantic and is never invoked automatically by
// Diff.
func (pDiffs *Diffs) CleanupSemanticLossless() (diffs Diffs) {
	diffs = *pDiffs

	var best fit
	iw := 1
	w := func(d Diff) {
		diffs[iw] = d
		iw++
	}
	inext := 2
	N := len(diffs)
	if N == 0 {
		return
	}
	for i := 1; i < N; i, inext = inext, inext+1 {
		d := diffs[i]
		if inext >= N {
			w(d)
			break
		}
		prev, next := &diffs[iw-1], &diffs[inext]
		if prev.Op != Equal || next.Op != Equal {
			w(d)
			continue
		}

		// A single edit surrounded by equalities.
		cur := fit{
			equality1: prev.Text,
			edit:      d.Text,
			equality2: next.Text,
		}
		cur.shiftLeft()
		best = cur.shiftRight()

		if prev.Text != best.equality1 {
			if best.equality1 != "" {
				prev.Text = best.equality1
			} else {
				iw--
			}
			d.Text = best.edit
			if best.equality2 != "" {
				next.Text = best.equality2
			} else {
				inext++
			}
		}
		w(d)
	}
	diffs = diffs[:iw]
	*pDiffs = diffs
	return
}

type fit struct {
	equality1, edit, equality2 string
	score                      int
}

func (f *fit) calcScore() int {
	f.score = semanticScore(f.equality1, f.edit) + semanticScore(f.edit, f.equality2)
	return f.score
}

// shiftLeft moves the edit as far left as possible.
func (f *fit) shiftLeft() {
	if cs := utf8x.CommonSuffix(f.equality1, f.edit); cs != "" {
		n := len(cs)
		f.equality1 = f.equality1[:len(f.equality1)-n]
		f.edit = cs + f.edit[:len(f.edit)-n]
		f.equality2 = cs + f.equality2
	}
}

// shiftRight steps character by character right, looking for the best fit.
func (f *fit) shiftRight() (best fit) {
	best = *f
	best.calcScore()
	for f.edit != "" && f.equality2 != "" && utf8x.FirstRune(f.edit) == utf8x.FirstRune(f.equality2) {
		c1, c2 := utf8x.FirstUTF8(f.edit), utf8x.FirstUTF8(f.equality2)
		f.equality1 += c1
		f.edit = f.edit[len(c1):] + c2
		f.equality2 = f.equality2[len(c2):]
		f.calcScore()

		// The >= encourages trailing rather than leading whitespace on edits.
		if f.score >= best.score {
			best = *f
		}
	}
	return
}

// semanticScore scores whether the boundary between one and two falls on a
// logical boundary. Scores range from 6 (best) to 0 (worst).
func semanticScore(one, two string) (score int) {
	if one == "" || two == "" {
		return 6
	}

	r1 := utf8x.LastRune(one)
	r2 := utf8x.FirstRune(two)
	nonAlphaNum1 := !unicode.IsLetter(r1) && !unicode.IsDigit(r1)
	nonAlphaNum2 := !unicode.IsLetter(r2) && !unicode.IsDigit(r2)
	space1 := nonAlphaNum1 && unicode.IsSpace(r1)
	space2 := nonAlphaNum2 && unicode.IsSpace(r2)
	lineBreak1 := space1 && unicode.IsControl(r1)
	lineBreak2 := space2 && unicode.IsControl(r2)
	blankLine1 := lineBreak1 && blankLineEnd.MatchString(one)
	blankLine2 := lineBreak2 && blankLineStart.MatchString(two)

	switch {
	case blankLine1 || blankLine2:
		score = 5
	case lineBreak1 || lineBreak2:
		score = 4
	case nonAlphaNum1 && !space1 && space2:
		score = 3
	case space1 || space2:
		score = 2
	case nonAlphaNum1 || nonAlphaNum2:
		score = 1
	}
	return
}

var (
	blankLineEnd   = regexp.MustCompile(`(?s)\n\r?\n(\z|\r?\n\z)`)
	blankLineStart = regexp.MustCompile(`(?s)\A\r?\n\r?\n`)
)

// CleanupEfficiency reduces the number of edits by splitting short
// equalities that cost more to keep than to merge into their neighbors.
// editCost of 0 selects DefaultEditCost.
func (pDiffs *Diffs) CleanupEfficiency(editCost int) (diffs Diffs) {
	diffs = *pDiffs
	if len(diffs) == 0 {
		return
	}
	if editCost == 0 {
		editCost = DefaultEditCost
	}

	var (
		changes = false

		preIns, preDel   bool
		postIns, postDel bool

		iLast = -1
		iSafe = -1
	)

	v := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}

	lookupPrevEquality := func(i int) int {
		for {
			i--
			if i == iSafe || diffs[i].Op == Equal {
				break
			}
		}
		return i
	}

	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		if d.Op == Equal {
			if !utf8x.ExceedsCodepoints(d.Text, editCost-1) && (postIns || postDel) {
				preIns, preDel = postIns, postDel
				iLast = i
			} else {
				iLast = -1
				iSafe = i
			}
			postIns, postDel = false, false
		} else {
			switch d.Op {
			case Delete:
				postDel = true
			case Insert:
				postIns = true
			case deleteInsert:
				postDel, postIns = true, true
			}

			// Five shapes get split:
			// <ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
			// <ins>A</ins>X<ins>C</ins><del>D</del>
			// <ins>A</ins><del>B</del>X<ins>C</ins>
			// <del>A</del>X<ins>C</ins><del>D</del>
			// <ins>A</ins><del>B</del>X<del>C</del>
			if iLast != -1 &&
				((preIns && preDel && postIns && postDel) ||
					(!utf8x.ExceedsCodepoints(diffs[iLast].Text, editCost/2-1) &&
						v(preIns)+v(preDel)+v(postIns)+v(postDel) == 3)) {
				i = lookupPrevEquality(i)

				diffs[i].Op = deleteInsert
				iLast = -1
				if preIns && preDel {
					postIns, postDel = true, true
					iSafe = i - 1
				} else {
					i = lookupPrevEquality(i)
					if i != -1 && diffs[i].Op == Equal {
						if i != iSafe {
							i = lookupPrevEquality(i)
						}
					}
					postIns, postDel = false, false
				}
				changes = true
			}
		}
	}

	if changes {
		diffs.CleanupMerge()
	}
	*pDiffs = diffs
	return
}

// CleanupMerge reorders and merges like edit sections. Any edit may move as
// long as it doesn't cross an equality.
func (pDiffs *Diffs) CleanupMerge() (diffs Diffs) {
	var insBuf, delBuf strbuf
	diffs = append(*pDiffs, Diff{Equal, ""})
	iw := 0

	w := func(op Op, text string) {
		diffs[iw] = Diff{op, text}
		iw++
	}
	prevEqual := func() (eq *Diff) {
		if iw == 0 {
			return
		}
		if p := &diffs[iw-1]; p.Op == Equal {
			eq = p
		}
		return
	}

	for _, d := range diffs {
		switch d.Op {
		case noop:
		case Insert:
			insBuf = append(insBuf, d.Text)
		case Delete:
			delBuf = append(delBuf, d.Text)
		case deleteInsert:
			insBuf = append(insBuf, d.Text)
			delBuf = append(delBuf, d.Text)
		case Equal:
			textIns := insBuf.join()
			textDel := delBuf.join()
			insBuf, delBuf = insBuf[:0], delBuf[:0]
			if textDel != "" && textIns != "" {
				if pfx := utf8x.CommonPrefix(textIns, textDel); pfx != "" {
					if iw != 0 {
						if prev := prevEqual(); prev == nil {
							panic("previous diff should have been an equality")
						} else {
							prev.Text += pfx
						}
					} else {
						w(Equal, pfx)
					}
					textIns = textIns[len(pfx):]
					textDel = textDel[len(pfx):]
				}
				if sfx := utf8x.CommonSuffix(textIns, textDel); sfx != "" {
					d.Text = sfx + d.Text
					textIns = textIns[:len(textIns)-len(sfx)]
					textDel = textDel[:len(textDel)-len(sfx)]
				}
			}
			if textDel != "" {
				w(Delete, textDel)
			}
			if textIns != "" {
				w(Insert, textIns)
			}
			if prev := prevEqual(); prev != nil {
				prev.Text += d.Text
			} else {
				w(Equal, d.Text)
			}
		}
	}
	diffs = diffs[:iw]
	if last := len(diffs) - 1; last >= 0 && diffs[last].Text == "" {
		diffs = diffs[:last]
	}

	// Second pass: shift single edits sandwiched between equalities to
	// eliminate an equality, e.g. A<ins>BA</ins>C -> <ins>AB</ins>AC.
	changes := false
	iLast := len(diffs) - 1
	for i, d := range diffs {
		if i == 0 || i == iLast {
			continue
		}
		prev, next := &diffs[i-1], &diffs[i+1]
		if prev.Op != Equal || next.Op != Equal {
			continue
		}
		if strings.HasSuffix(d.Text, prev.Text) {
			diffs[i].Text = prev.Text + d.Text[:len(d.Text)-len(prev.Text)]
			next.Text = prev.Text + next.Text
			prev.Op = noop
			changes = true
		} else if strings.HasPrefix(d.Text, next.Text) {
			prev.Text += next.Text
			diffs[i].Text = d.Text[len(next.Text):] + next.Text
			next.Op = noop
			changes = true
		}
	}

	if changes {
		// The recursive call's switch silently drops noop placeholders
		// left by the shift above.
		diffs.CleanupMerge()
	}
	*pDiffs = diffs
	return diffs
}

type strbuf []string

func (b strbuf) join() string {
	return strings.Join(b, "")
}
