package utf8x

import "unicode/utf8"

// View is a fixed-length random-access view over the codepoints of a UTF-8
// string. It is built once (O(n)) at bisect entry and indexed by codepoint
// position thereafter in O(1); At decodes only the one codepoint at its
// cached offset.
//
// Modeled after the standard library's old exp/utf8string package: a table
// of byte offsets, one per rune, lets At and BytePos avoid a linear rescan.
type View struct {
	s       string
	offsets []int
}

// NewView builds a codepoint view over s.
func NewView(s string) *View {
	v := &View{s: s, offsets: make([]int, 0, len(s))}
	for i := range s {
		v.offsets = append(v.offsets, i)
	}
	return v
}

// Len returns the number of codepoints in the view.
func (v *View) Len() int {
	return len(v.offsets)
}

// At returns the codepoint at position i.
func (v *View) At(i int) rune {
	r, _ := utf8.DecodeRuneInString(v.s[v.offsets[i]:])
	return r
}

// BytePos returns the byte offset of codepoint i. BytePos(Len()) returns
// len(s), so a half-open codepoint range [i, j) maps directly onto
// s[BytePos(i):BytePos(j)].
func (v *View) BytePos(i int) int {
	if i >= len(v.offsets) {
		return len(v.s)
	}
	return v.offsets[i]
}

// Slice returns the UTF-8 substring spanning codepoints [i, j).
func (v *View) Slice(i, j int) string {
	return v.s[v.BytePos(i):v.BytePos(j)]
}

// String returns the underlying string.
func (v *View) String() string {
	return v.s
}
