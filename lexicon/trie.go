// Package lexicon holds the dictionary index used by the move generator.
// It is a prefix trie over machine letters; prefix feasibility is the
// pruning lever that keeps move generation fast.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// ErrNoWords is returned when a word source contains no usable entries.
var ErrNoWords = errors.New("word source contains no valid words")

// invalidNodeIdx is the "no arc" sentinel; the root lives at index 1.
const invalidNodeIdx = uint32(0)

type trieNode struct {
	// children is a bit set of the letters that have outgoing arcs.
	children tilemapping.LetterSet
	// arcs holds child node indices, ordered by letter.
	arcs     []uint32
	terminal bool
}

// Trie is an immutable-after-construction prefix tree. It answers word
// membership, prefix feasibility, and per-node continuation sets (the
// latter drive cross-checks and wildcard expansion).
type Trie struct {
	nodes     []trieNode
	tm        *tilemapping.TileMapping
	wordCount int
	name      string
}

func newTrie(tm *tilemapping.TileMapping) *Trie {
	// Index 0 is a sentinel so that "no arc" can be 0, like the gaddag
	// convention.
	return &Trie{
		nodes: make([]trieNode, 2),
		tm:    tm,
	}
}

// Name returns the lexicon name (usually derived from its source file).
func (t *Trie) Name() string {
	return t.name
}

// GetAlphabet returns the alphabet this trie was built with.
func (t *Trie) GetAlphabet() *tilemapping.TileMapping {
	return t.tm
}

// WordCount returns the number of words inserted.
func (t *Trie) WordCount() int {
	return t.wordCount
}

// GetRootNodeIndex returns the root node index.
func (t *Trie) GetRootNodeIndex() uint32 {
	return 1
}

// NextNodeIdx returns the node the arc for this letter points to, or 0 if
// there is no such arc. The letter must be unblanked.
func (t *Trie) NextNodeIdx(nodeIdx uint32, ml tilemapping.MachineLetter) uint32 {
	if nodeIdx == invalidNodeIdx || int(nodeIdx) >= len(t.nodes) {
		return invalidNodeIdx
	}
	n := &t.nodes[nodeIdx]
	if !n.children.Has(ml) {
		return invalidNodeIdx
	}
	// The arc position is the number of child letters below ml.
	pos := bits.OnesCount64(uint64(n.children) & (1<<ml - 1))
	return n.arcs[pos]
}

// ChildLetters returns the set of letters with outgoing arcs from this
// node: the legal one-letter continuations of the node's prefix.
func (t *Trie) ChildLetters(nodeIdx uint32) tilemapping.LetterSet {
	if nodeIdx == invalidNodeIdx || int(nodeIdx) >= len(t.nodes) {
		return 0
	}
	return t.nodes[nodeIdx].children
}

// IsTerminal returns whether the prefix ending at this node is a complete
// word.
func (t *Trie) IsTerminal(nodeIdx uint32) bool {
	if nodeIdx == invalidNodeIdx || int(nodeIdx) >= len(t.nodes) {
		return false
	}
	return t.nodes[nodeIdx].terminal
}

// walk follows the word (unblanking as it goes) and returns the final node
// index, or 0 if the path does not exist.
func (t *Trie) walk(word tilemapping.MachineWord) uint32 {
	nodeIdx := t.GetRootNodeIndex()
	for _, ml := range word {
		nodeIdx = t.NextNodeIdx(nodeIdx, ml.Unblank())
		if nodeIdx == invalidNodeIdx {
			return invalidNodeIdx
		}
	}
	return nodeIdx
}

// HasWord returns whether the word is in the lexicon. Assigned blanks count
// as their letter.
func (t *Trie) HasWord(word tilemapping.MachineWord) bool {
	nodeIdx := t.walk(word)
	return nodeIdx != invalidNodeIdx && t.nodes[nodeIdx].terminal
}

// HasPrefix returns whether any word in the lexicon starts with this
// prefix. The empty prefix is always feasible.
func (t *Trie) HasPrefix(prefix tilemapping.MachineWord) bool {
	return t.walk(prefix) != invalidNodeIdx
}

// insert adds a word to the trie. Construction-time only; a Trie must not
// be mutated once it is shared.
func (t *Trie) insert(word tilemapping.MachineWord) {
	nodeIdx := t.GetRootNodeIndex()
	for _, ml := range word {
		next := t.NextNodeIdx(nodeIdx, ml)
		if next == invalidNodeIdx {
			t.nodes = append(t.nodes, trieNode{})
			next = uint32(len(t.nodes) - 1)
			n := &t.nodes[nodeIdx]
			pos := bits.OnesCount64(uint64(n.children) & (1<<ml - 1))
			n.arcs = append(n.arcs, 0)
			copy(n.arcs[pos+1:], n.arcs[pos:])
			n.arcs[pos] = next
			n.children.Set(ml)
		}
		nodeIdx = next
	}
	if !t.nodes[nodeIdx].terminal {
		t.nodes[nodeIdx].terminal = true
		t.wordCount++
	}
}

// ScanTrie reads a newline-delimited word list and builds a trie over the
// given alphabet. Lines are NFC-normalized and lowercased; entries with
// characters outside the alphabet are skipped with a warning, matching how
// external wordlists tend to carry stray entries. It errors if no valid
// words remain.
func ScanTrie(r io.Reader, tm *tilemapping.TileMapping) (*Trie, error) {
	t := newTrie(tm)
	scanner := bufio.NewScanner(r)
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		line = strings.ToLower(norm.NFC.String(line))
		mw, err := tilemapping.ToMachineWord(line, tm)
		if err != nil {
			skipped++
			continue
		}
		if len(mw) < 2 {
			// One-letter entries can never be played.
			skipped++
			continue
		}
		t.insert(mw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("skipped unusable wordlist entries")
	}
	if t.wordCount == 0 {
		return nil, ErrNoWords
	}
	return t, nil
}

// TrieFromWords builds a trie from a word slice. Useful for tests and for
// callers that manage their own wordlist storage.
func TrieFromWords(words []string, tm *tilemapping.TileMapping) (*Trie, error) {
	if len(words) == 0 {
		// An empty lexicon is valid here; it accepts nothing.
		return newTrie(tm), nil
	}
	return ScanTrie(strings.NewReader(strings.Join(words, "\n")), tm)
}

// LoadTrie reads a word list from a file and builds a trie.
func LoadTrie(path string, tm *tilemapping.TileMapping) (*Trie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read wordfile %s: %w", path, err)
	}
	defer file.Close()
	t, err := ScanTrie(file, tm)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	base := filepath.Base(path)
	t.name = strings.TrimSuffix(base, filepath.Ext(base))
	log.Info().Str("path", path).Int("words", t.wordCount).Msg("loaded lexicon")
	return t, nil
}
