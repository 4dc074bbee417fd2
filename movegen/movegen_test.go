package movegen

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jensanjo/wordfeud-solver/board"
	"github.com/jensanjo/wordfeud-solver/lexicon"
	"github.com/jensanjo/wordfeud-solver/move"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

var testRules = Rules{BingoBonus: 40, BingoThreshold: 7}

type genTestEnv struct {
	ld  *tilemapping.LetterDistribution
	lex *lexicon.Trie
	bd  *board.GameBoard
	gen *TrieGenerator
}

func newGenTestEnv(t *testing.T, words []string, state []string) *genTestEnv {
	t.Helper()
	ld, err := tilemapping.NamedLetterDistribution("", "english")
	if err != nil {
		t.Fatal(err)
	}
	lex, err := lexicon.TrieFromWords(words, ld.TileMapping())
	if err != nil {
		t.Fatal(err)
	}
	bd := board.NewBoard(board.DefaultLayout())
	if state != nil {
		if err := bd.SetState(state, ld.TileMapping()); err != nil {
			t.Fatal(err)
		}
	}
	board.GenAllCrossSets(bd, lex, ld)
	return &genTestEnv{
		ld:  ld,
		lex: lex,
		bd:  bd,
		gen: NewTrieGenerator(lex, bd, ld, testRules),
	}
}

func (env *genTestEnv) rack(t *testing.T, letters string) *tilemapping.Rack {
	t.Helper()
	r, err := tilemapping.RackFromString(letters, env.ld.TileMapping())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func playStrings(plays []*move.Move) []string {
	strs := make([]string, len(plays))
	for i, p := range plays {
		strs[i] = p.ShortDescription()
	}
	sort.Strings(strs)
	return strs
}

func TestGenEmptyBoard(t *testing.T) {
	env := newGenTestEnv(t, []string{"cat", "at"}, nil)
	plays := env.gen.GenAll(env.rack(t, "cat"))

	// Each word must cover the center square, in either orientation.
	words := map[string]int{}
	for _, p := range plays {
		words[p.WordString()]++
		row, col, vertical := p.CoordsAndVertical()
		if vertical {
			assert.Equal(t, 7, col)
			assert.LessOrEqual(t, row, 7)
		} else {
			assert.Equal(t, 7, row)
			assert.LessOrEqual(t, col, 7)
		}
	}
	assert.Equal(t, 6, words["cat"])
	assert.Equal(t, 4, words["at"])
	assert.Len(t, plays, 10)
}

func TestGenCrossPlays(t *testing.T) {
	state := make([]string, 15)
	for i := range state {
		state[i] = "               "
	}
	state[7] = "       he      "
	env := newGenTestEnv(t, []string{"he", "eh"}, state)
	plays := env.gen.GenAll(env.rack(t, "e"))

	assert.Len(t, plays, 2)
	words := map[string]bool{}
	for _, p := range plays {
		_, _, vertical := p.CoordsAndVertical()
		assert.True(t, vertical)
		words[p.WordString()] = true
	}
	assert.True(t, words["eh"])
	assert.True(t, words["he"])
}

func TestGenWildcard(t *testing.T) {
	env := newGenTestEnv(t, []string{"cat"}, nil)
	plays := env.gen.GenAll(env.rack(t, "c*t"))

	assert.Len(t, plays, 6)
	for _, p := range plays {
		// The blank plays as a and scores zero.
		assert.Equal(t, "cAt", p.WordString())
		c, _ := env.ld.TileMapping().Val('c')
		tt, _ := env.ld.TileMapping().Val('t')
		assert.Equal(t, env.ld.Score(c)+env.ld.Score(tt), p.Score()/wordMultAt(t, env, p))
	}
}

// wordMultAt recovers the word multiplier of a play's squares so the
// wildcard test holds on every placement the opening allows.
func wordMultAt(t *testing.T, env *genTestEnv, p *move.Move) int {
	t.Helper()
	row, col, vertical := p.CoordsAndVertical()
	mult := 1
	for i := range p.Tiles() {
		r, c := row, col+i
		if vertical {
			r, c = row+i, col
		}
		mult *= env.bd.GetBonus(r, c).WordMultiplier()
	}
	return mult
}

func TestGenNoPlays(t *testing.T) {
	env := newGenTestEnv(t, []string{"cat", "dog"}, nil)
	plays := env.gen.GenAll(env.rack(t, "qxz"))
	assert.Len(t, plays, 0)
}

func TestGenDoesNotMutateRack(t *testing.T) {
	env := newGenTestEnv(t, []string{"cat", "at"}, nil)
	r := env.rack(t, "cat")
	env.gen.GenAll(r)
	assert.Equal(t, "act", r.String())
	assert.Equal(t, 3, int(r.NumTiles()))
}

func TestGenBingo(t *testing.T) {
	env := newGenTestEnv(t, []string{"casting"}, nil)
	plays := env.gen.GenAll(env.rack(t, "casting"))
	assert.NotEmpty(t, plays)
	for _, p := range plays {
		assert.True(t, p.Bingo())
		assert.Equal(t, 7, p.TilesPlayed())
		assert.GreaterOrEqual(t, p.Score(), testRules.BingoBonus)
	}
}

func TestGenConcurrentMatchesSerial(t *testing.T) {
	state := make([]string, 15)
	for i := range state {
		state[i] = "               "
	}
	state[7] = "     stream    "
	words := []string{"stream", "at", "am", "ream", "tea", "team", "meat", "mate",
		"eat", "ate", "rat", "tar", "art", "star", "tram", "mast"}
	env := newGenTestEnv(t, words, state)

	serial := env.gen.GenAll(env.rack(t, "atem*r"))
	serialStrs := playStrings(serial)

	env2 := newGenTestEnv(t, words, state)
	concurrent, err := env2.gen.GenAllConcurrent(context.Background(),
		env2.rack(t, "atem*r"), 4)
	assert.NoError(t, err)
	assert.Equal(t, serialStrs, playStrings(concurrent))
}

func TestTopPlays(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	mk := func(score int, word string, row, col int, vertical bool) *move.Move {
		mw, err := tilemapping.ToMachineWord(word, tm)
		assert.NoError(t, err)
		return move.NewScoringMove(score, mw, mw, vertical, len(mw), tm, row, col)
	}
	tp := NewTopPlays(3)
	tp.Push(mk(10, "cat", 7, 7, false))
	tp.Push(mk(30, "dog", 7, 7, false))
	tp.Push(mk(20, "emu", 7, 7, false))
	tp.Push(mk(5, "ant", 7, 7, false))
	tp.Push(mk(25, "bee", 7, 7, false))

	plays := tp.Sorted()
	assert.Len(t, plays, 3)
	assert.Equal(t, []int{30, 25, 20}, []int{plays[0].Score(), plays[1].Score(), plays[2].Score()})
}

func TestTopPlaysTieBreak(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	mk := func(word string, row, col int, vertical bool) *move.Move {
		mw, _ := tilemapping.ToMachineWord(word, tm)
		return move.NewScoringMove(10, mw, mw, vertical, len(mw), tm, row, col)
	}
	tp := NewTopPlays(2)
	tp.Push(mk("bat", 3, 3, false))
	tp.Push(mk("ant", 5, 5, true))
	tp.Push(mk("ant", 2, 2, false))

	plays := tp.Sorted()
	assert.Len(t, plays, 2)
	assert.Equal(t, "ant", plays[0].WordString())
	r, _, _ := plays[0].CoordsAndVertical()
	assert.Equal(t, 2, r)
	assert.Equal(t, "ant", plays[1].WordString())
}

func TestTopPlaysMerge(t *testing.T) {
	tm := tilemapping.EnglishAlphabet()
	mk := func(score int) *move.Move {
		mw, _ := tilemapping.ToMachineWord("cat", tm)
		return move.NewScoringMove(score, mw, mw, false, 3, tm, 7, score%15)
	}
	a := NewTopPlays(3)
	b := NewTopPlays(3)
	for _, s := range []int{1, 9, 5} {
		a.Push(mk(s))
	}
	for _, s := range []int{7, 3, 11} {
		b.Push(mk(s))
	}
	a.Merge(b)
	plays := a.Sorted()
	assert.Equal(t, []int{11, 9, 7},
		[]int{plays[0].Score(), plays[1].Score(), plays[2].Score()})
}

func TestTopPlaysZero(t *testing.T) {
	tp := NewTopPlays(0)
	tm := tilemapping.EnglishAlphabet()
	mw, _ := tilemapping.ToMachineWord("cat", tm)
	tp.Push(move.NewScoringMove(10, mw, mw, false, 3, tm, 7, 7))
	assert.Equal(t, 0, tp.Len())
	assert.Len(t, tp.Sorted(), 0)
}
