package textflow

import (
	"slices"

	"github.com/rivo/uniseg"
)

// RenderGroup is a contiguous run of text with one right edge.
//
// Start and End are byte offsets into the engine text; End is exclusive
// and may cover characters that are never drawn, such as the newline
// ending a line. RightEdge is the pixel offset of the group's right side
// from the start of its line.
//
// OverridesWidth marks groups whose width is assigned by policy rather
// than measured: a tab snapped to the next stop, a zero-width newline, or
// a run of trailing blanks collapsed at a wrap point. Offsets inside an
// overriding group are interpolated linearly; collapsed blanks take no
// width, so all their offsets share one x.
type RenderGroup struct {
	Start          int
	End            int
	RightEdge      float64
	OverridesWidth bool
}

// Len returns End - Start.
func (g RenderGroup) Len() int {
	return g.End - g.Start
}

// Line is one visual row of text. A Line produced by an Engine is never
// empty: a line without characters holds one zero-width group.
type Line []RenderGroup

// Start returns the index of the first byte of the line.
func (l Line) Start() int {
	if len(l) == 0 {
		return 0
	}
	return l[0].Start
}

// End returns the index one past the last byte of the line, including a
// trailing newline.
func (l Line) End() int {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].End
}

// Width returns the right edge of the last group.
func (l Line) Width() float64 {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].RightEdge
}

// Clone returns a copy of l that shares no storage with it.
func (l Line) Clone() Line {
	return slices.Clone(l)
}

// truncateGroups prepares groups for re-measurement from start.
//
// Every group ending after start is dropped and start moves back to the
// first dropped group's start, so a partially stale group is rebuilt
// rather than patched. If the last kept group is a natural run and the
// byte before start is not a tab or newline, it is dropped as well and
// start moves to its start, keeping natural text fused into one group.
//
// The returned slice aliases groups.
func truncateGroups(groups Line, start int, text string) (Line, int) {
	kept := groups
	for k, g := range groups {
		if g.End > start {
			kept = groups[:k]
			start = min(start, g.Start)
			break
		}
	}

	if n := len(kept); n > 0 && start > 0 {
		last := kept[n-1]
		if c := text[start-1]; !last.OverridesWidth && c != '\t' && c != '\n' {
			kept = kept[:n-1]
			start = last.Start
		}
	}
	return kept, start
}

// clusterCount returns the number of grapheme clusters in s.
func clusterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// nextBoundary returns the index after the grapheme cluster starting at i.
func nextBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	if cluster == "" {
		return i + 1
	}
	return i + len(cluster)
}
