package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jensanjo/wordfeud-solver/lexicon"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// A midgame Dutch position. Uppercase letters are blanks.
var testState = []string{
	"    t     c   f",
	"    e    he   o",
	"    r   bis g k",
	"    u  bol te v",
	"    gepof dimme",
	"      la vree e",
	"    qua   ene  ",
	"      Spoelen  ",
	"     s a   n   ",
	"     c d we    ",
	"     hadden    ",
	"    nu o   y   ",
	"  wrat siJzen  ",
	"    k     os   ",
	"   zerk   g    ",
}

func dutchLD(t *testing.T) *tilemapping.LetterDistribution {
	t.Helper()
	ld, err := tilemapping.NamedLetterDistribution("", "dutch")
	if err != nil {
		t.Fatal(err)
	}
	return ld
}

func testStateBoard(t *testing.T, ld *tilemapping.LetterDistribution) *GameBoard {
	t.Helper()
	b := NewBoard(DefaultLayout())
	if err := b.SetState(testState, ld.TileMapping()); err != nil {
		t.Fatal(err)
	}
	return b
}

func emptyTrie(t *testing.T, ld *tilemapping.LetterDistribution) *lexicon.Trie {
	t.Helper()
	lex, err := lexicon.TrieFromWords(nil, ld.TileMapping())
	if err != nil {
		t.Fatal(err)
	}
	return lex
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, 15, l.Dim())
	assert.Equal(t, Bonus3LS, l.Bonus(0, 0))
	assert.Equal(t, Bonus3WS, l.Bonus(0, 4))
	assert.Equal(t, StartSquare, l.Bonus(7, 7))
	assert.Equal(t, Bonus2WS, l.Bonus(7, 11))
	assert.Equal(t, Bonus3LS, l.Bonus(14, 14))
	// Mirror symmetry along both axes.
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			assert.Equal(t, l.Bonus(r, c), l.Bonus(14-r, c))
			assert.Equal(t, l.Bonus(r, c), l.Bonus(r, 14-c))
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	_, err := ParseLayout("bad", []string{"-- --", "-- --"})
	assert.Error(t, err) // even dimension
	_, err = ParseLayout("bad", []string{"-- -- --", "-- --", "-- -- --"})
	assert.Error(t, err) // short row
	_, err = ParseLayout("bad", []string{"-- -- --", "-- xx --", "-- -- --"})
	assert.Error(t, err) // unknown token
	l, err := ParseLayout("tiny", []string{"-- 2w --", "2l ss 2l", "-- 2w --"})
	assert.NoError(t, err)
	assert.Equal(t, 3, l.Dim())
	assert.Equal(t, Bonus2WS, l.Bonus(0, 1))
}

func TestSetState(t *testing.T) {
	ld := dutchLD(t)
	b := testStateBoard(t, ld)
	assert.Equal(t, 85, b.TilesPlayed())
	assert.True(t, b.HasLetter(0, 4))
	assert.False(t, b.HasLetter(0, 0))
	assert.True(t, b.HasLetter(4, 14))
	// The blank S keeps its blank mask and its case on the way out.
	s, err := ld.TileMapping().Val('S')
	assert.NoError(t, err)
	assert.Equal(t, s, b.GetLetter(7, 6))
	assert.Equal(t, testState, b.ToRows(ld.TileMapping()))
}

func TestSetStateErrors(t *testing.T) {
	ld := dutchLD(t)
	b := NewBoard(DefaultLayout())

	err := b.SetState([]string{"   "}, ld.TileMapping())
	assert.ErrorIs(t, err, ErrWrongRowCount)

	bad := make([]string, 15)
	for i := range bad {
		bad[i] = "               "
	}
	bad[3] = "       "
	err = b.SetState(bad, ld.TileMapping())
	assert.ErrorIs(t, err, ErrWrongRowLength)

	bad[3] = "      4        "
	err = b.SetState(bad, ld.TileMapping())
	assert.Error(t, err)
	// A failed SetState leaves the board unchanged.
	assert.Equal(t, 0, b.TilesPlayed())
}

func TestTranspose(t *testing.T) {
	ld := dutchLD(t)
	b := testStateBoard(t, ld)
	saved := b.Copy()
	b.Transpose()
	assert.True(t, b.IsTransposed())
	assert.Equal(t, b.GetLetter(4, 0), saved.GetLetter(0, 4))
	b.Transpose()
	assert.True(t, b.Equals(saved))
}

func TestAnchorsEmptyBoard(t *testing.T) {
	b := NewBoard(DefaultLayout())
	count := 0
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			if b.IsAnchor(r, c) {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
	assert.True(t, b.IsAnchor(7, 7))
}

func TestAnchors(t *testing.T) {
	ld := dutchLD(t)
	b := testStateBoard(t, ld)
	// Occupied squares are never anchors.
	assert.False(t, b.IsAnchor(0, 4))
	// Above and below the t of the first row.
	assert.True(t, b.IsAnchor(0, 3))
	assert.True(t, b.IsAnchor(0, 5))
	// Far corner is isolated.
	assert.False(t, b.IsAnchor(14, 14))
}

func TestWordEdge(t *testing.T) {
	ld := dutchLD(t)
	b := testStateBoard(t, ld)
	// Row 6 holds qua at columns 4-6 and ene at columns 10-12.
	assert.Equal(t, 4, b.WordEdge(6, 6, LeftDirection))
	assert.Equal(t, 6, b.WordEdge(6, 4, RightDirection))
	assert.Equal(t, 12, b.WordEdge(6, 10, RightDirection))
}

func TestCrossSetsAndScores(t *testing.T) {
	ld := dutchLD(t)
	lex, err := lexicon.TrieFromWords([]string{"aqua", "equa"}, ld.TileMapping())
	assert.NoError(t, err)
	b := testStateBoard(t, ld)
	GenAllCrossSets(b, lex, ld)

	// (6, 3) is directly left of qua; only an a or e can extend it.
	cs := b.GetCrossSet(6, 3, HorizontalDirection)
	a, _ := ld.TileMapping().Val('a')
	e, _ := ld.TileMapping().Val('e')
	q, _ := ld.TileMapping().Val('q')
	assert.True(t, cs.Allowed(a))
	assert.True(t, cs.Allowed(e))
	assert.False(t, cs.Allowed(q))
	assert.Equal(t, 13, b.GetCrossScore(6, 3, HorizontalDirection))

	// An isolated empty square allows anything and scores nothing.
	assert.Equal(t, TrivialCrossSet, b.GetCrossSet(14, 14, HorizontalDirection))
	assert.Equal(t, 0, b.GetCrossScore(14, 14, HorizontalDirection))

	// Occupied squares allow nothing.
	assert.Equal(t, CrossSet(0), b.GetCrossSet(6, 4, HorizontalDirection))
}

func scoreTiles(t *testing.T, ld *tilemapping.LetterDistribution, word string) tilemapping.MachineWord {
	t.Helper()
	mw, err := tilemapping.ToMachineWord(word, ld.TileMapping())
	if err != nil {
		t.Fatal(err)
	}
	return mw
}

func TestScoreWordPlayThrough(t *testing.T) {
	ld := dutchLD(t)
	b := testStateBoard(t, ld)
	GenAllCrossSets(b, emptyTrie(t, ld), ld)

	// ster across row 0 plays through the existing t.
	tiles := scoreTiles(t, ld, "ster")
	tiles[1] = 0
	assert.Equal(t, 7, b.ScoreWord(tiles, 0, 3, VerticalDirection, ld))
}

func TestScoreWordWithCrossing(t *testing.T) {
	ld := dutchLD(t)
	b := testStateBoard(t, ld)
	GenAllCrossSets(b, emptyTrie(t, ld), ld)

	// abel down column 3: the b lands on a double word square and the a
	// extends qua to aqua.
	b.Transpose()
	defer b.Transpose()
	tiles := scoreTiles(t, ld, "abel")
	assert.Equal(t, 32, b.ScoreWord(tiles, 3, 6, HorizontalDirection, ld))
}

func TestScoreWordOpening(t *testing.T) {
	ld := dutchLD(t)
	b := NewBoard(DefaultLayout())
	GenAllCrossSets(b, emptyTrie(t, ld), ld)

	// hoentje from the center square reaches the double word at column
	// 11. The bingo bonus is not the board's concern.
	tiles := scoreTiles(t, ld, "hoentje")
	assert.Equal(t, 28, b.ScoreWord(tiles, 7, 7, VerticalDirection, ld))
}

func TestScoreWordBlanksScoreZero(t *testing.T) {
	ld := dutchLD(t)
	b := NewBoard(DefaultLayout())
	GenAllCrossSets(b, emptyTrie(t, ld), ld)

	plain := b.ScoreWord(scoreTiles(t, ld, "hoentje"), 7, 7, VerticalDirection, ld)
	blanked := b.ScoreWord(scoreTiles(t, ld, "Hoentje"), 7, 7, VerticalDirection, ld)
	h, _ := ld.TileMapping().Val('h')
	assert.Equal(t, plain-ld.Score(h)*2, blanked)
}

func TestPlaceTiles(t *testing.T) {
	ld := dutchLD(t)
	b := testStateBoard(t, ld)

	tiles := scoreTiles(t, ld, "ster")
	tiles[1] = 0
	assert.NoError(t, b.PlaceTiles(tiles, 0, 3, false))
	assert.Equal(t, "   ster   c   f", b.ToRows(ld.TileMapping())[0])
	assert.Equal(t, 88, b.TilesPlayed())

	// Occupied squares reject new tiles.
	err := b.PlaceTiles(scoreTiles(t, ld, "bar"), 0, 3, false)
	assert.Error(t, err)
	// Playing through an empty square is also an error.
	bad := scoreTiles(t, ld, "xx")
	bad[1] = 0
	err = b.PlaceTiles(bad, 14, 0, false)
	assert.Error(t, err)

	b.UnplaceTiles(tiles, 0, 3, false)
	assert.Equal(t, 85, b.TilesPlayed())
	assert.Equal(t, testState[0], b.ToRows(ld.TileMapping())[0])
}

func TestPlaceTilesVertical(t *testing.T) {
	ld := dutchLD(t)
	b := NewBoard(DefaultLayout())
	assert.NoError(t, b.PlaceTiles(scoreTiles(t, ld, "rust"), 5, 7, true))
	assert.Equal(t, "r", string(b.ToRows(ld.TileMapping())[5][7]))
	assert.Equal(t, "t", string(b.ToRows(ld.TileMapping())[8][7]))
	assert.False(t, b.IsTransposed())
}

func TestPlaceTilesOutOfBounds(t *testing.T) {
	ld := dutchLD(t)
	b := NewBoard(DefaultLayout())
	err := b.PlaceTiles(scoreTiles(t, ld, "rust"), 7, 12, false)
	assert.Error(t, err)
}
