package tilemapping

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// A "letter" or tile is internally represented by a byte.
// The 0 value is used to represent various things:
// - an empty square on the board
// - a blank on your rack
// - a "played-through" letter, when used in the description of a play.
// The letter a is represented by 1, b by 2, ... all the way to 26, for the
// English alphabet. Letters past z (å, ä, ö, ...) follow.
// A blank assigned to a letter is the same letter with the high bit set
// (0x80 | ml). It displays as the uppercase letter and scores zero.
const (
	// MaxAlphabetSize should be below 64 so that a LetterSet fits in a
	// 64-bit int.
	MaxAlphabetSize = 62
	// ASCIIPlayedThrough is a user-friendly representation of a
	// played-through letter, used mostly for debug purposes.
	ASCIIPlayedThrough = '.'
	// BlankToken is the user-friendly representation of an unassigned blank.
	BlankToken = '*'
)

const (
	BlankMask   = 0x80
	UnblankMask = (0x80 - 1)
)

// A LetterSet is a bit mask of machine letters, with indices from 0 to
// MaxAlphabetSize.
type LetterSet uint64

// TrivialLetterSet contains every possible letter.
const TrivialLetterSet = LetterSet(1)<<MaxAlphabetSize - 1

func (ls LetterSet) Has(ml MachineLetter) bool {
	return ls&(LetterSet(1)<<ml) != 0
}

func (ls *LetterSet) Set(ml MachineLetter) {
	*ls |= LetterSet(1) << ml
}

func (ls *LetterSet) Clear() {
	*ls = 0
}

// MachineLetter is a machine-only representation of a letter. It is zero
// for a blank (or empty square), positive for regular letters, and has the
// high bit set for an assigned blank.
type MachineLetter byte

// MachineWord is a slice of MachineLetters; a machine-only representation
// of a word.
type MachineWord []MachineLetter

// LetterSlice is a slice of runes, sortable for deterministic numbering.
type LetterSlice []rune

// A TileMapping maps a user-visible rune, like the letter b, into its
// MachineLetter counterpart (for example, MachineLetter(2) in the English
// alphabet), and vice-versa.
type TileMapping struct {
	vals    map[rune]MachineLetter
	letters map[MachineLetter]rune

	letterSlice LetterSlice
}

// Init initializes the mapping data structures.
func (tm *TileMapping) Init() {
	tm.vals = make(map[rune]MachineLetter)
	tm.letters = make(map[MachineLetter]rune)
}

// Letter returns the rune that this machine letter corresponds to. Assigned
// blanks come back as the uppercase letter.
func (tm *TileMapping) Letter(ml MachineLetter) rune {
	if ml == 0 {
		return BlankToken
	}
	if ml.IsBlanked() {
		return unicode.ToUpper(tm.letters[ml.Unblank()])
	}
	return tm.letters[ml]
}

// Val returns the machine letter for this rune. Uppercase runes map to
// the blanked version of their lowercase counterpart.
func (tm *TileMapping) Val(r rune) (MachineLetter, error) {
	if r == BlankToken {
		return 0, nil
	}
	val, ok := tm.vals[r]
	if ok {
		return val, nil
	}
	if r != unicode.ToLower(r) {
		val, ok = tm.vals[unicode.ToLower(r)]
		if ok {
			return val.Blank(), nil
		}
	}
	if r == ASCIIPlayedThrough {
		return 0, nil
	}
	return 0, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// HasRune returns whether the rune (or its blanked counterpart) is part of
// this alphabet.
func (tm *TileMapping) HasRune(r rune) bool {
	_, err := tm.Val(r)
	return err == nil
}

// NumLetters returns the number of letters in this alphabet, not counting
// the blank.
func (tm *TileMapping) NumLetters() uint8 {
	return uint8(len(tm.letters))
}

func (tm *TileMapping) Vals() map[rune]MachineLetter {
	return tm.vals
}

// Blank turns the machine letter into its blank version.
func (ml MachineLetter) Blank() MachineLetter {
	return ml | BlankMask
}

// Unblank turns the machine letter into its non-blank version.
func (ml MachineLetter) Unblank() MachineLetter {
	return ml & UnblankMask
}

// IsBlanked returns true if the machine letter is an assigned blank.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask > 0
}

// UserVisible turns the passed-in machine letter into a user-visible rune.
func (ml MachineLetter) UserVisible(tm *TileMapping, zeroForPlayedThrough bool) rune {
	if ml == 0 {
		if zeroForPlayedThrough {
			return ASCIIPlayedThrough
		}
		return BlankToken
	}
	return tm.Letter(ml)
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible(tm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(tm, false)
	}
	return string(runes)
}

// UserVisiblePlayedTiles turns the passed-in machine word into a
// user-visible string, using the played-through marker for 0.
func (mw MachineWord) UserVisiblePlayedTiles(tm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(tm, true)
	}
	return string(runes)
}

// Score returns the score of this word given the letter distribution.
func (mw MachineWord) Score(ld *LetterDistribution) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}

// ToMachineWord creates a MachineWord from the given string. The string is
// NFC-normalized first so that composed and decomposed forms of the same
// letter cannot diverge.
func ToMachineWord(word string, tm *TileMapping) (MachineWord, error) {
	mls, err := ToMachineLetters(word, tm)
	if err != nil {
		return nil, err
	}
	return MachineWord(mls), nil
}

// ToMachineLetters creates an array of MachineLetters from the given string.
func ToMachineLetters(word string, tm *TileMapping) ([]MachineLetter, error) {
	word = norm.NFC.String(word)
	letters := make([]MachineLetter, 0, len(word))
	for _, ch := range word {
		ml, err := tm.Val(ch)
		if err != nil {
			return nil, err
		}
		letters = append(letters, ml)
	}
	return letters, nil
}

func (tm *TileMapping) genLetterSlice(sortMap map[rune]int) {
	tm.letterSlice = []rune{}
	for rn := range tm.vals {
		tm.letterSlice = append(tm.letterSlice, rn)
	}
	if sortMap != nil {
		sort.Slice(tm.letterSlice, func(i, j int) bool {
			return sortMap[tm.letterSlice[i]] < sortMap[tm.letterSlice[j]]
		})
	} else {
		sort.Sort(tm.letterSlice)
	}
	// The maps are now deterministic. Renumber them according to sort
	// order; 0 stays reserved for the blank.
	for idx, rn := range tm.letterSlice {
		tm.vals[rn] = MachineLetter(idx + 1)
		tm.letters[MachineLetter(idx+1)] = rn
	}
}

// Reconcile takes a populated alphabet, sorts the glyphs, and re-indexes
// the numbers.
func (tm *TileMapping) Reconcile(sortMap map[rune]int) {
	tm.genLetterSlice(sortMap)
}

// Update adds any new runes in the word to the mapping.
func (tm *TileMapping) Update(word string) error {
	for _, char := range norm.NFC.String(word) {
		if _, ok := tm.vals[char]; !ok {
			tm.vals[char] = MachineLetter(len(tm.vals) + 1)
		}
	}
	if len(tm.vals) >= MaxAlphabetSize {
		return errors.New("exceeded max alphabet size")
	}
	return nil
}

// FromSlice creates a mapping from an array of runes, in order.
func FromSlice(arr []rune) *TileMapping {
	tm := &TileMapping{}
	tm.Init()
	for i, rn := range arr {
		tm.vals[rn] = MachineLetter(i + 1)
		tm.letters[MachineLetter(i+1)] = rn
	}
	return tm
}

// EnglishAlphabet returns a TileMapping that corresponds to the lowercase
// English alphabet. It is mostly useful for tests.
func EnglishAlphabet() *TileMapping {
	return FromSlice([]rune("abcdefghijklmnopqrstuvwxyz"))
}

func (a LetterSlice) Len() int           { return len(a) }
func (a LetterSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a LetterSlice) Less(i, j int) bool { return a[i] < a[j] }
