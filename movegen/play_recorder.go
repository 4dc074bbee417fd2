package movegen

import (
	"github.com/jensanjo/wordfeud-solver/move"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// A PlayRecorderFunc is a function that is called for every legal play
// found by the generator.
type PlayRecorderFunc func(gen *TrieGenerator, rack *tilemapping.Rack,
	leftstrip, rightstrip int, t move.MoveType)

// AllPlaysRecorder records all plays into the generator's play list.
func AllPlaysRecorder(gen *TrieGenerator, rack *tilemapping.Rack,
	leftstrip, rightstrip int, t move.MoveType) {

	switch t {
	case move.MoveTypePlay:
		gen.plays = append(gen.plays, gen.buildPlay(leftstrip, rightstrip))
	case move.MoveTypePass:
		gen.plays = append(gen.plays, move.NewPassMove(gen.lexicon.GetAlphabet()))
	}
}

// TopPlaysRecorder keeps only the best plays, using the generator's
// bounded collector. Plays that cannot beat the current worst kept play
// are dropped before a Move is even allocated.
func TopPlaysRecorder(gen *TrieGenerator, rack *tilemapping.Rack,
	leftstrip, rightstrip int, t move.MoveType) {

	if t != move.MoveTypePlay || gen.topPlays == nil {
		return
	}
	score := gen.scorePlay(leftstrip, rightstrip)
	if !gen.topPlays.wouldAccept(score) {
		return
	}
	gen.topPlays.Push(gen.buildPlayWithScore(leftstrip, rightstrip, score))
}

// buildPlay turns the current strip span into a Move.
func (gen *TrieGenerator) buildPlay(leftstrip, rightstrip int) *move.Move {
	return gen.buildPlayWithScore(leftstrip, rightstrip,
		gen.scorePlay(leftstrip, rightstrip))
}

func (gen *TrieGenerator) buildPlayWithScore(leftstrip, rightstrip, score int) *move.Move {
	startRow := gen.curRowIdx
	startCol := leftstrip
	if gen.vertical {
		// The board was transposed for this pass.
		startRow, startCol = startCol, startRow
	}
	length := rightstrip - leftstrip + 1
	tiles := make(tilemapping.MachineWord, length)
	word := make(tilemapping.MachineWord, length)
	copy(tiles, gen.strip[leftstrip:rightstrip+1])
	for i, t := range tiles {
		if t == 0 {
			word[i] = gen.board.GetLetter(gen.curRowIdx, leftstrip+i)
		} else {
			word[i] = t
		}
	}
	m := move.NewScoringMove(score, tiles, word, gen.vertical, gen.tilesPlayed,
		gen.lexicon.GetAlphabet(), startRow, startCol)
	if gen.rules.BingoThreshold > 0 && gen.tilesPlayed >= gen.rules.BingoThreshold {
		m.SetBingo(true)
	}
	return m
}
