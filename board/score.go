package board

import (
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// ScoreWord scores a play along the current rows of the board, without
// any bingo bonus. tiles uses 0 for a played-through position. Letter
// bonuses apply to newly placed tiles only; word bonuses multiply and
// also apply to the crossing word formed at that tile, if any. The board
// must be in the orientation where the play runs along row; crossDir
// selects the matching cross-scores.
func (g *GameBoard) ScoreWord(tiles tilemapping.MachineWord, row, col int,
	crossDir BoardDirection, ld *tilemapping.LetterDistribution) int {

	mainScore := 0
	crossScores := 0
	wordMultiplier := 1
	for idx, ml := range tiles {
		sq := g.squares[row][col+idx]
		if ml == 0 {
			// Played through; existing tiles never trigger bonuses.
			mainScore += ld.Score(sq.letter)
			continue
		}
		ls := ld.Score(ml) * sq.bonus.LetterMultiplier()
		wm := sq.bonus.WordMultiplier()
		wordMultiplier *= wm
		mainScore += ls
		if g.crossingExists(row, col+idx) {
			crossScores += (sq.GetCrossScore(crossDir) + ls) * wm
		}
	}
	return mainScore*wordMultiplier + crossScores
}

// crossingExists reports whether a tile at (row, col) would form a
// perpendicular word, i.e. whether a tile sits directly above or below in
// the current orientation. Cross-scores alone cannot answer this: a run
// of blanks scores zero but still forms a word.
func (g *GameBoard) crossingExists(row, col int) bool {
	if row > 0 && !g.squares[row-1][col].IsEmpty() {
		return true
	}
	if row < g.Dim()-1 && !g.squares[row+1][col].IsEmpty() {
		return true
	}
	return false
}
