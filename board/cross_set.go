package board

import (
	"github.com/jensanjo/wordfeud-solver/lexicon"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// GenAllCrossSets generates all cross-sets and cross-scores. The vertical
// pass runs on the transposed board so both passes share the row-wise
// generator.
func GenAllCrossSets(b *GameBoard, lex *lexicon.Trie, ld *tilemapping.LetterDistribution) {
	n := b.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			GenCrossSet(b, i, j, HorizontalDirection, lex, ld)
		}
	}
	b.Transpose()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			GenCrossSet(b, i, j, VerticalDirection, lex, ld)
		}
	}
	b.Transpose()
}

// GenCrossSet generates the cross-set and cross-score for a single square,
// for words of the given direction. The board must already be in the
// orientation where that direction runs along rows; i.e. it must be
// transposed when dir is VerticalDirection.
func GenCrossSet(b *GameBoard, row, col int, dir BoardDirection,
	lex *lexicon.Trie, ld *tilemapping.LetterDistribution) {

	if !b.PosExists(row, col) {
		return
	}
	sq := b.GetSquare(row, col)
	if !sq.IsEmpty() {
		sq.setCrossSet(CrossSet(0), dir)
		sq.setCrossScore(0, dir)
		return
	}
	if b.leftAndRightEmpty(row, col) {
		sq.setCrossSet(TrivialCrossSet, dir)
		sq.setCrossScore(0, dir)
		return
	}
	// There is a word to the left, to the right, or both. Whatever letter
	// goes here must keep prefix+letter+suffix a word.
	var prefix, suffix tilemapping.MachineWord
	score := 0
	if b.PosExists(row, col-1) && !b.GetSquare(row, col-1).IsEmpty() {
		edge := b.WordEdge(row, col-1, LeftDirection)
		for c := edge; c < col; c++ {
			l := b.GetLetter(row, c)
			prefix = append(prefix, l)
			score += ld.Score(l)
		}
	}
	if b.PosExists(row, col+1) && !b.GetSquare(row, col+1).IsEmpty() {
		edge := b.WordEdge(row, col+1, RightDirection)
		for c := col + 1; c <= edge; c++ {
			l := b.GetLetter(row, c)
			suffix = append(suffix, l)
			score += ld.Score(l)
		}
	}
	sq.setCrossScore(score, dir)

	cs := CrossSet(0)
	nodeIdx := lex.GetRootNodeIndex()
	for _, ml := range prefix {
		nodeIdx = lex.NextNodeIdx(nodeIdx, ml.Unblank())
		if nodeIdx == 0 {
			sq.setCrossSet(cs, dir)
			return
		}
	}
	children := lex.ChildLetters(nodeIdx)
	var ml tilemapping.MachineLetter
	for ml = 1; ml <= tilemapping.MachineLetter(lex.GetAlphabet().NumLetters()); ml++ {
		if !children.Has(ml) {
			continue
		}
		node := lex.NextNodeIdx(nodeIdx, ml)
		for _, sl := range suffix {
			node = lex.NextNodeIdx(node, sl.Unblank())
			if node == 0 {
				break
			}
		}
		if node != 0 && lex.IsTerminal(node) {
			cs.Set(ml)
		}
	}
	sq.setCrossSet(cs, dir)
}

// UpdateCrossSetsForBoard regenerates all anchors, cross-sets and
// cross-scores. It is called after the board state changes.
func UpdateCrossSetsForBoard(b *GameBoard, lex *lexicon.Trie, ld *tilemapping.LetterDistribution) {
	b.UpdateAllAnchors()
	GenAllCrossSets(b, lex, ld)
}
