package board

import (
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// A BonusSquare is a visual representation of the bonus. It's a type
// so that it can be visually displayed and parsed from layout files.
type BonusSquare uint8

const (
	// NoBonus is a square with no letter or word multiplier.
	NoBonus BonusSquare = iota
	// StartSquare is the center square. It carries no multiplier.
	StartSquare
	// Bonus2LS doubles the value of the letter placed on it.
	Bonus2LS
	// Bonus3LS triples the value of the letter placed on it.
	Bonus3LS
	// Bonus2WS doubles the value of the whole word.
	Bonus2WS
	// Bonus3WS triples the value of the whole word.
	Bonus3WS
)

func (b BonusSquare) String() string {
	switch b {
	case NoBonus:
		return "--"
	case StartSquare:
		return "ss"
	case Bonus2LS:
		return "2l"
	case Bonus3LS:
		return "3l"
	case Bonus2WS:
		return "2w"
	case Bonus3WS:
		return "3w"
	}
	return "??"
}

// LetterMultiplier returns the multiplier applied to a single tile
// newly placed on this square.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier returns the multiplier applied to every word formed
// by a tile newly placed on this square.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

// A CrossSet is a bit mask of letters that are allowed on a square. It is
// a cross-set for a specific direction. The zero value allows nothing;
// TrivialCrossSet allows everything.
type CrossSet uint64

// TrivialCrossSet allows every letter of the alphabet, plus the blank.
const TrivialCrossSet = CrossSet(tilemapping.TrivialLetterSet)

func (c CrossSet) Allowed(letter tilemapping.MachineLetter) bool {
	return c&(1<<uint8(letter)) != 0
}

func (c *CrossSet) Set(letter tilemapping.MachineLetter) {
	*c = *c | (1 << letter)
}

func (c *CrossSet) Clear() {
	*c = 0
}

func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

// A Square is a single square on the board, with a letter (0 if empty),
// a bonus, per-direction cross-sets and cross-scores, and an anchor flag.
type Square struct {
	letter tilemapping.MachineLetter
	bonus  BonusSquare

	hcrossSet CrossSet
	vcrossSet CrossSet
	// The scores of the tiles perpendicular to this square, if any.
	hcrossScore int
	vcrossScore int

	anchor bool
}

func (s *Square) Letter() tilemapping.MachineLetter {
	return s.letter
}

func (s *Square) SetLetter(letter tilemapping.MachineLetter) {
	s.letter = letter
}

func (s *Square) Bonus() BonusSquare {
	return s.bonus
}

func (s *Square) IsEmpty() bool {
	return s.letter == 0
}

func (s *Square) setCrossSet(cs CrossSet, dir BoardDirection) {
	if dir == HorizontalDirection {
		s.hcrossSet = cs
	} else if dir == VerticalDirection {
		s.vcrossSet = cs
	}
}

func (s *Square) setCrossScore(score int, dir BoardDirection) {
	if dir == HorizontalDirection {
		s.hcrossScore = score
	} else if dir == VerticalDirection {
		s.vcrossScore = score
	}
}

// GetCrossSet returns the cross-set for the given direction. The direction
// names the orientation of the words being constrained; a horizontal
// cross-set constrains letters so the vertical word through this square
// remains valid, and vice versa.
func (s *Square) GetCrossSet(dir BoardDirection) CrossSet {
	if dir == HorizontalDirection {
		return s.hcrossSet
	}
	return s.vcrossSet
}

func (s *Square) GetCrossScore(dir BoardDirection) int {
	if dir == HorizontalDirection {
		return s.hcrossScore
	}
	return s.vcrossScore
}

func (s *Square) IsAnchor() bool {
	return s.anchor
}

func (s *Square) resetCrossesAndAnchor() {
	s.hcrossSet = TrivialCrossSet
	s.vcrossSet = TrivialCrossSet
	s.hcrossScore = 0
	s.vcrossScore = 0
	s.anchor = false
}

func (s *Square) copyFrom(s2 *Square) {
	s.letter = s2.letter
	s.bonus = s2.bonus
	s.hcrossSet = s2.hcrossSet
	s.vcrossSet = s2.vcrossSet
	s.hcrossScore = s2.hcrossScore
	s.vcrossScore = s2.vcrossScore
	s.anchor = s2.anchor
}

func (s *Square) equals(s2 *Square) bool {
	return *s == *s2
}
