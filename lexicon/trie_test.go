package lexicon

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

func testTrie(t *testing.T, words ...string) *Trie {
	t.Helper()
	tr, err := TrieFromWords(words, tilemapping.EnglishAlphabet())
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func mw(t *testing.T, word string) tilemapping.MachineWord {
	t.Helper()
	w, err := tilemapping.ToMachineWord(word, tilemapping.EnglishAlphabet())
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestHasWord(t *testing.T) {
	is := is.New(t)
	tr := testTrie(t, "cat", "cats", "car", "do")
	is.Equal(tr.WordCount(), 4)
	is.True(tr.HasWord(mw(t, "cat")))
	is.True(tr.HasWord(mw(t, "cats")))
	is.True(tr.HasWord(mw(t, "do")))
	is.True(!tr.HasWord(mw(t, "ca")))
	is.True(!tr.HasWord(mw(t, "dog")))
	is.True(!tr.HasWord(mw(t, "catsup")))
}

func TestHasWordWithBlanks(t *testing.T) {
	is := is.New(t)
	tr := testTrie(t, "cat")
	// An assigned blank counts as its letter.
	is.True(tr.HasWord(mw(t, "cAt")))
	is.True(tr.HasWord(mw(t, "CAT")))
}

func TestHasPrefix(t *testing.T) {
	is := is.New(t)
	tr := testTrie(t, "cat", "cats", "car", "do")
	// Every prefix of an accepted word is feasible, including the word
	// itself and the empty prefix.
	for _, p := range []string{"", "c", "ca", "cat", "cats", "d", "do"} {
		is.True(tr.HasPrefix(mw(t, p)))
	}
	for _, p := range []string{"a", "catsu", "dog", "x"} {
		is.True(!tr.HasPrefix(mw(t, p)))
	}
}

func TestChildLetters(t *testing.T) {
	is := is.New(t)
	tr := testTrie(t, "cat", "car", "cot")
	node := tr.NextNodeIdx(tr.GetRootNodeIndex(), 3) // c
	is.True(node != 0)
	children := tr.ChildLetters(node)
	is.True(children.Has(1))   // a
	is.True(children.Has(15))  // o
	is.True(!children.Has(20)) // t
}

func TestIsTerminal(t *testing.T) {
	is := is.New(t)
	tr := testTrie(t, "cat", "cats")
	node := tr.GetRootNodeIndex()
	for _, ml := range mw(t, "cat") {
		node = tr.NextNodeIdx(node, ml)
		is.True(node != 0)
	}
	is.True(tr.IsTerminal(node))
	node = tr.NextNodeIdx(node, 19) // s
	is.True(tr.IsTerminal(node))
	is.True(!tr.IsTerminal(tr.GetRootNodeIndex()))
}

func TestScanTrieSkipsUnusable(t *testing.T) {
	is := is.New(t)
	input := "cat\n\nrésumé\na\ndog\n"
	tr, err := ScanTrie(strings.NewReader(input), tilemapping.EnglishAlphabet())
	is.NoErr(err)
	// résumé has letters outside the alphabet; a is too short.
	is.Equal(tr.WordCount(), 2)
}

func TestScanTrieUppercases(t *testing.T) {
	is := is.New(t)
	tr, err := ScanTrie(strings.NewReader("CAT\nDog\n"), tilemapping.EnglishAlphabet())
	is.NoErr(err)
	is.True(tr.HasWord(mw(t, "cat")))
	is.True(tr.HasWord(mw(t, "dog")))
}

func TestEmptyTrie(t *testing.T) {
	is := is.New(t)
	tr := testTrie(t)
	is.Equal(tr.WordCount(), 0)
	is.True(!tr.HasWord(mw(t, "cat")))
	is.True(tr.HasPrefix(nil))

	_, err := ScanTrie(strings.NewReader("a\n"), tilemapping.EnglishAlphabet())
	is.Equal(err, ErrNoWords)
}
