package movegen

import (
	"container/heap"
	"sort"

	"github.com/jensanjo/wordfeud-solver/move"
)

// TopPlays keeps the n best plays seen so far in a bounded min-heap, so
// that full generation does not have to hold every play in memory. Ties
// break deterministically: higher score first, then word, then row, then
// column, then horizontal before vertical.
type TopPlays struct {
	n int
	h moveHeap
}

// NewTopPlays returns a collector that holds at most n plays. A
// non-positive n keeps nothing.
func NewTopPlays(n int) *TopPlays {
	if n < 0 {
		n = 0
	}
	return &TopPlays{n: n}
}

// betterPlay returns whether a should rank above b.
func betterPlay(a, b *move.Move) bool {
	if a.Score() != b.Score() {
		return a.Score() > b.Score()
	}
	aw, bw := a.WordString(), b.WordString()
	if aw != bw {
		return aw < bw
	}
	ar, ac, av := a.CoordsAndVertical()
	br, bc, bv := b.CoordsAndVertical()
	if ar != br {
		return ar < br
	}
	if ac != bc {
		return ac < bc
	}
	return !av && bv
}

// wouldAccept reports whether a play with this score could make it into
// the collection. It errs on the side of acceptance on a score tie, since
// tie-breaking needs the full move.
func (tp *TopPlays) wouldAccept(score int) bool {
	if tp.n == 0 {
		return false
	}
	if tp.h.Len() < tp.n {
		return true
	}
	return score >= tp.h[0].Score()
}

// Push offers a play to the collection.
func (tp *TopPlays) Push(m *move.Move) {
	if tp.n == 0 {
		return
	}
	if tp.h.Len() < tp.n {
		heap.Push(&tp.h, m)
		return
	}
	if betterPlay(m, tp.h[0]) {
		tp.h[0] = m
		heap.Fix(&tp.h, 0)
	}
}

// Merge folds another collection into this one.
func (tp *TopPlays) Merge(other *TopPlays) {
	for _, m := range other.h {
		tp.Push(m)
	}
}

// Len returns the number of plays held.
func (tp *TopPlays) Len() int {
	return tp.h.Len()
}

// Sorted returns the held plays, best first. The collector is left empty.
func (tp *TopPlays) Sorted() []*move.Move {
	plays := make([]*move.Move, tp.h.Len())
	copy(plays, tp.h)
	tp.h = nil
	sort.Slice(plays, func(i, j int) bool {
		return betterPlay(plays[i], plays[j])
	})
	return plays
}

// moveHeap is a min-heap; the root is the worst play held.
type moveHeap []*move.Move

func (h moveHeap) Len() int           { return len(h) }
func (h moveHeap) Less(i, j int) bool { return betterPlay(h[j], h[i]) }
func (h moveHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *moveHeap) Push(x interface{}) {
	*h = append(*h, x.(*move.Move))
}

func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
