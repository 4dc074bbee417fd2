// Package movegen contains all the move-generating functions. It uses
// the cross-sets on the board and a prefix trie to smartly find all
// possible moves: a left-part/extend-right search anchored on squares
// adjacent to existing tiles.
package movegen

import (
	"github.com/jensanjo/wordfeud-solver/board"
	"github.com/jensanjo/wordfeud-solver/lexicon"
	"github.com/jensanjo/wordfeud-solver/move"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// Rules holds the scoring knobs the generator needs beyond the letter
// distribution.
type Rules struct {
	BingoBonus     int
	BingoThreshold int
}

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(rack *tilemapping.Rack) []*move.Move
	Plays() []*move.Move
	SetPlayRecorder(PlayRecorderFunc)
}

// TrieGenerator generates moves for a board using a prefix trie. It
// maintains state during generation and is not goroutine-safe; use one
// per goroutine.
type TrieGenerator struct {
	lexicon *lexicon.Trie
	board   *board.GameBoard
	ld      *tilemapping.LetterDistribution
	rules   Rules

	curRowIdx    int
	curAnchorCol int
	vertical     bool
	tilesPlayed  int

	// strip holds the letters of the word being built, indexed by
	// column; 0 marks a played-through position.
	strip []tilemapping.MachineLetter
	// leftstack holds the partial left part, which only gets column
	// positions once extendRight starts.
	leftstack tilemapping.MachineWord

	playRecorder PlayRecorderFunc
	plays        []*move.Move
	topPlays     *TopPlays
}

// NewTrieGenerator returns a TrieGenerator. The board must have its
// cross-sets and anchors current.
func NewTrieGenerator(lex *lexicon.Trie, b *board.GameBoard,
	ld *tilemapping.LetterDistribution, rules Rules) *TrieGenerator {

	return &TrieGenerator{
		lexicon:      lex,
		board:        b,
		ld:           ld,
		rules:        rules,
		strip:        make([]tilemapping.MachineLetter, b.Dim()),
		playRecorder: AllPlaysRecorder,
	}
}

// SetPlayRecorder sets the function called for every legal play found
// and detaches any bounded collector.
func (gen *TrieGenerator) SetPlayRecorder(f PlayRecorderFunc) {
	gen.playRecorder = f
	gen.topPlays = nil
}

// SetTopPlays attaches a bounded collector and switches to the top-play
// recorder.
func (gen *TrieGenerator) SetTopPlays(tp *TopPlays) {
	gen.topPlays = tp
	gen.playRecorder = TopPlaysRecorder
}

// Plays returns the plays recorded by the last GenAll call.
func (gen *TrieGenerator) Plays() []*move.Move {
	return gen.plays
}

// TopPlays returns the attached bounded collector, if any.
func (gen *TrieGenerator) TopPlays() *TopPlays {
	return gen.topPlays
}

// copyForWorker returns a generator that shares the read-only lexicon
// and letter distribution but has its own board and scratch state.
func (gen *TrieGenerator) copyForWorker() *TrieGenerator {
	g := NewTrieGenerator(gen.lexicon, gen.board.Copy(), gen.ld, gen.rules)
	g.playRecorder = gen.playRecorder
	if gen.topPlays != nil {
		g.topPlays = NewTopPlays(gen.topPlays.n)
	}
	return g
}

// GenAll generates all legal plays for this rack, in both orientations.
func (gen *TrieGenerator) GenAll(rack *tilemapping.Rack) []*move.Move {
	gen.plays = gen.plays[:0]
	gen.genByOrientation(rack, 0, gen.board.Dim())
	gen.board.Transpose()
	gen.vertical = true
	gen.genByOrientation(rack, 0, gen.board.Dim())
	gen.board.Transpose()
	gen.vertical = false
	return gen.plays
}

// genByOrientation generates plays along the current rows in [rowStart,
// rowEnd).
func (gen *TrieGenerator) genByOrientation(rack *tilemapping.Rack, rowStart, rowEnd int) {
	dim := gen.board.Dim()
	for row := rowStart; row < rowEnd; row++ {
		gen.curRowIdx = row
		for col := 0; col < dim; col++ {
			if gen.board.IsAnchor(row, col) {
				gen.genForAnchor(rack, col)
			}
		}
	}
}

func (gen *TrieGenerator) genForAnchor(rack *tilemapping.Rack, col int) {
	gen.curAnchorCol = col
	row := gen.curRowIdx
	rootIdx := gen.lexicon.GetRootNodeIndex()

	if col > 0 && !gen.board.GetSquare(row, col-1).IsEmpty() {
		// The left part is already on the board.
		leftEdge := gen.board.WordEdge(row, col-1, board.LeftDirection)
		nodeIdx := rootIdx
		for c := leftEdge; c < col; c++ {
			ml := gen.board.GetLetter(row, c)
			gen.strip[c] = 0
			nodeIdx = gen.lexicon.NextNodeIdx(nodeIdx, ml.Unblank())
			if nodeIdx == 0 {
				return
			}
		}
		gen.extendRight(rack, nodeIdx, leftEdge, col)
		return
	}
	// Count how far left we may build: consecutive empty non-anchor
	// squares, bounded by the rack size minus the anchor tile.
	limit := 0
	for c := col - 1; c >= 0; c-- {
		if !gen.board.GetSquare(row, c).IsEmpty() || gen.board.IsAnchor(row, c) {
			break
		}
		limit++
	}
	if limit > int(rack.NumTiles())-1 {
		limit = int(rack.NumTiles()) - 1
	}
	gen.leftstack = gen.leftstack[:0]
	gen.leftPart(rack, rootIdx, limit)
}

// leftPart recursively builds the part of the word to the left of the
// anchor, then extends right from the anchor. Left-part squares are
// empty non-anchors, so their cross-sets are trivial and need no check.
func (gen *TrieGenerator) leftPart(rack *tilemapping.Rack, nodeIdx uint32, limit int) {
	startCol := gen.curAnchorCol - len(gen.leftstack)
	copy(gen.strip[startCol:], gen.leftstack)
	gen.extendRight(rack, nodeIdx, startCol, gen.curAnchorCol)
	if limit <= 0 {
		return
	}
	children := gen.lexicon.ChildLetters(nodeIdx)
	numLetters := tilemapping.MachineLetter(gen.lexicon.GetAlphabet().NumLetters())
	var ml tilemapping.MachineLetter
	for ml = 1; ml <= numLetters; ml++ {
		if !children.Has(ml) {
			continue
		}
		child := gen.lexicon.NextNodeIdx(nodeIdx, ml)
		if rack.Has(ml) {
			rack.Take(ml)
			gen.tilesPlayed++
			gen.leftstack = append(gen.leftstack, ml)
			gen.leftPart(rack, child, limit-1)
			gen.leftstack = gen.leftstack[:len(gen.leftstack)-1]
			gen.tilesPlayed--
			rack.Add(ml)
		}
		if rack.Has(0) {
			rack.Take(0)
			gen.tilesPlayed++
			gen.leftstack = append(gen.leftstack, ml.Blank())
			gen.leftPart(rack, child, limit-1)
			gen.leftstack = gen.leftstack[:len(gen.leftstack)-1]
			gen.tilesPlayed--
			rack.Add(0)
		}
	}
}

// extendRight extends the word rightwards from col. A play is recorded
// whenever the word is maximal (next square empty or off the board), at
// least one tile came from the rack, and the anchor square is covered.
func (gen *TrieGenerator) extendRight(rack *tilemapping.Rack, nodeIdx uint32,
	startCol, col int) {

	row := gen.curRowIdx
	if col == gen.board.Dim() {
		gen.maybeRecordPlay(rack, nodeIdx, startCol, col)
		return
	}
	sq := gen.board.GetSquare(row, col)
	if !sq.IsEmpty() {
		next := gen.lexicon.NextNodeIdx(nodeIdx, sq.Letter().Unblank())
		if next != 0 {
			gen.strip[col] = 0
			gen.extendRight(rack, next, startCol, col+1)
		}
		return
	}
	gen.maybeRecordPlay(rack, nodeIdx, startCol, col)
	if rack.Empty() {
		return
	}
	csDirection := board.VerticalDirection
	if gen.vertical {
		csDirection = board.HorizontalDirection
	}
	crossSet := sq.GetCrossSet(csDirection)
	children := gen.lexicon.ChildLetters(nodeIdx)
	numLetters := tilemapping.MachineLetter(gen.lexicon.GetAlphabet().NumLetters())
	var ml tilemapping.MachineLetter
	for ml = 1; ml <= numLetters; ml++ {
		if !children.Has(ml) || !crossSet.Allowed(ml) {
			continue
		}
		child := gen.lexicon.NextNodeIdx(nodeIdx, ml)
		if rack.Has(ml) {
			rack.Take(ml)
			gen.tilesPlayed++
			gen.strip[col] = ml
			gen.extendRight(rack, child, startCol, col+1)
			gen.tilesPlayed--
			rack.Add(ml)
		}
		if rack.Has(0) {
			rack.Take(0)
			gen.tilesPlayed++
			gen.strip[col] = ml.Blank()
			gen.extendRight(rack, child, startCol, col+1)
			gen.tilesPlayed--
			rack.Add(0)
		}
	}
}

func (gen *TrieGenerator) maybeRecordPlay(rack *tilemapping.Rack, nodeIdx uint32,
	startCol, col int) {

	if gen.tilesPlayed == 0 || col <= gen.curAnchorCol ||
		!gen.lexicon.IsTerminal(nodeIdx) || col-startCol < 2 {
		return
	}
	gen.playRecorder(gen, rack, startCol, col-1, move.MoveTypePlay)
}

// scorePlay scores the word currently on the strip between leftstrip and
// rightstrip inclusive, including the bingo bonus when enough tiles were
// played.
func (gen *TrieGenerator) scorePlay(leftstrip, rightstrip int) int {
	csDirection := board.VerticalDirection
	if gen.vertical {
		csDirection = board.HorizontalDirection
	}
	score := gen.board.ScoreWord(
		tilemapping.MachineWord(gen.strip[leftstrip:rightstrip+1]),
		gen.curRowIdx, leftstrip, csDirection, gen.ld)
	if gen.rules.BingoThreshold > 0 && gen.tilesPlayed >= gen.rules.BingoThreshold {
		score += gen.rules.BingoBonus
	}
	return score
}
