package tilemapping

// Rack is a machine-friendly representation of a player's rack. The blank
// is counted at index 0.
type Rack struct {
	LetArr     []int
	numLetters uint8
	alphabet   *TileMapping
}

// NewRack creates a brand new rack structure with an alphabet.
func NewRack(tm *TileMapping) *Rack {
	return &Rack{
		alphabet: tm,
		LetArr:   make([]int, int(tm.NumLetters())+1),
	}
}

// RackFromString creates a Rack from a user-visible string. Characters
// outside the alphabet cause an error.
func RackFromString(rack string, tm *TileMapping) (*Rack, error) {
	r := NewRack(tm)
	mls, err := ToMachineLetters(rack, tm)
	if err != nil {
		return nil, err
	}
	r.Set(mls)
	return r, nil
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{
		numLetters: r.numLetters,
		alphabet:   r.alphabet,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

// CopyFrom copies the contents of another rack into this one.
func (r *Rack) CopyFrom(other *Rack) {
	r.numLetters = other.numLetters
	r.alphabet = other.alphabet
	if r.LetArr == nil {
		r.LetArr = make([]int, len(other.LetArr))
	}
	copy(r.LetArr, other.LetArr)
}

// Set sets the rack from a list of machine letters. An assigned blank
// counts as a plain blank.
func (r *Rack) Set(mls []MachineLetter) {
	r.Clear()
	for _, ml := range mls {
		if ml.IsBlanked() {
			ml = 0
		}
		r.LetArr[ml]++
	}
	r.numLetters = uint8(len(mls))
}

// Clear empties the rack.
func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.numLetters = 0
}

// Take removes a letter from the rack. It does not check that the letter
// is actually there.
func (r *Rack) Take(letter MachineLetter) {
	r.LetArr[letter]--
	r.numLetters--
}

// Add puts a letter back on the rack.
func (r *Rack) Add(letter MachineLetter) {
	r.LetArr[letter]++
	r.numLetters++
}

// Has returns whether the rack holds at least one of this letter.
func (r *Rack) Has(letter MachineLetter) bool {
	return r.LetArr[letter] > 0
}

// CountOf returns how many of this letter the rack holds.
func (r *Rack) CountOf(letter MachineLetter) int {
	return r.LetArr[letter]
}

// NumTiles returns the number of tiles on this rack.
func (r *Rack) NumTiles() uint8 {
	return r.numLetters
}

// Empty returns whether the rack is empty.
func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

// Alphabet returns the alphabet for this rack.
func (r *Rack) Alphabet() *TileMapping {
	return r.alphabet
}

// TilesOn returns the current tiles on this rack, in alphabet order with
// the blank first.
func (r *Rack) TilesOn() MachineWord {
	if r.numLetters == 0 {
		return MachineWord([]MachineLetter{})
	}
	letters := make([]MachineLetter, 0, r.numLetters)
	for ml := 0; ml < len(r.LetArr); ml++ {
		for j := 0; j < r.LetArr[ml]; j++ {
			letters = append(letters, MachineLetter(ml))
		}
	}
	return MachineWord(letters)
}
