package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

func TestBoardGameCoords(t *testing.T) {
	is := is.New(t)
	is.Equal(ToBoardGameCoords(0, 0, false), "1A")
	is.Equal(ToBoardGameCoords(0, 0, true), "A1")
	is.Equal(ToBoardGameCoords(7, 7, false), "8H")
	is.Equal(ToBoardGameCoords(14, 14, true), "O15")
}

func TestFromBoardGameCoords(t *testing.T) {
	is := is.New(t)
	row, col, vertical, err := FromBoardGameCoords("8H")
	is.NoErr(err)
	is.Equal(row, 7)
	is.Equal(col, 7)
	is.True(!vertical)

	row, col, vertical, err = FromBoardGameCoords("o15")
	is.NoErr(err)
	is.Equal(row, 14)
	is.Equal(col, 14)
	is.True(vertical)

	_, _, _, err = FromBoardGameCoords("X")
	is.True(err != nil)
	_, _, _, err = FromBoardGameCoords("15")
	is.True(err != nil)
}

func TestMoveStrings(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	word, err := tilemapping.ToMachineWord("cAts", tm)
	is.NoErr(err)
	tiles := make(tilemapping.MachineWord, len(word))
	copy(tiles, word)
	tiles[2] = 0 // the t was already on the board

	m := NewScoringMove(22, tiles, word, true, 3, tm, 2, 4)
	is.Equal(m.WordString(), "cAts")
	is.Equal(m.TilesString(), "cA.s")
	is.Equal(m.BoardCoords(), "E3")
	is.Equal(m.UsedRackLetters(), tilemapping.MachineWord{3, 0, 19})
	is.Equal(m.TilesPlayed(), 3)
}

func TestMoveEquals(t *testing.T) {
	is := is.New(t)
	tm := tilemapping.EnglishAlphabet()
	mw, err := tilemapping.ToMachineWord("cat", tm)
	is.NoErr(err)
	a := NewScoringMove(10, mw, mw, false, 3, tm, 7, 7)
	b := NewScoringMove(10, mw, mw, false, 3, tm, 7, 7)
	c := NewScoringMove(10, mw, mw, true, 3, tm, 7, 7)
	is.True(a.Equals(b))
	is.True(!a.Equals(c))
}
