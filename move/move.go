// Package move describes a single play on the board.
package move

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// MoveType is the type of a move.
type MoveType uint8

const (
	// MoveTypePlay is a regular tile play.
	MoveTypePlay MoveType = iota
	// MoveTypePass plays nothing. It is used when no play is possible.
	MoveTypePass
)

// Move is a move. The tiles array uses 0 for positions that are played
// through; the word array always holds the full word, with assigned
// blanks keeping their blank mask so they can display as uppercase and
// score zero.
type Move struct {
	action      MoveType
	tiles       tilemapping.MachineWord
	word        tilemapping.MachineWord
	alph        *tilemapping.TileMapping
	score       int
	rowStart    int
	colStart    int
	tilesPlayed int
	vertical    bool
	bingo       bool
}

// NewScoringMove creates a tile play.
func NewScoringMove(score int, tiles, word tilemapping.MachineWord,
	vertical bool, tilesPlayed int, alph *tilemapping.TileMapping,
	rowStart, colStart int) *Move {

	return &Move{
		action:      MoveTypePlay,
		score:       score,
		tiles:       tiles,
		word:        word,
		vertical:    vertical,
		tilesPlayed: tilesPlayed,
		alph:        alph,
		rowStart:    rowStart,
		colStart:    colStart,
	}
}

// NewPassMove creates a pass.
func NewPassMove(alph *tilemapping.TileMapping) *Move {
	return &Move{action: MoveTypePass, alph: alph}
}

func (m *Move) Action() MoveType {
	return m.action
}

// Tiles returns the played tiles, 0 for played-through positions.
func (m *Move) Tiles() tilemapping.MachineWord {
	return m.tiles
}

// Word returns the full word formed along the main direction.
func (m *Move) Word() tilemapping.MachineWord {
	return m.word
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

// CoordsAndVertical returns the row and column of the first letter of the
// word, and whether the play is vertical.
func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

func (m *Move) Alphabet() *tilemapping.TileMapping {
	return m.alph
}

// Bingo returns whether this play earned the full-rack bonus.
func (m *Move) Bingo() bool {
	return m.bingo
}

// SetBingo marks this play as having earned the full-rack bonus.
func (m *Move) SetBingo(b bool) {
	m.bingo = b
}

// WordString returns the user-visible word, with assigned blanks
// uppercased.
func (m *Move) WordString() string {
	return m.word.UserVisible(m.alph)
}

// TilesString returns the user-visible played tiles, with played-through
// positions as dots.
func (m *Move) TilesString() string {
	return m.tiles.UserVisiblePlayedTiles(m.alph)
}

// UsedRackLetters returns the rack tokens this play consumes, in play
// order. An assigned blank consumes a blank token.
func (m *Move) UsedRackLetters() tilemapping.MachineWord {
	return lo.FilterMap(m.tiles, func(t tilemapping.MachineLetter, _ int) (tilemapping.MachineLetter, bool) {
		if t == 0 {
			return 0, false
		}
		if t.IsBlanked() {
			return 0, true
		}
		return t, true
	})
}

// BoardCoords returns the coordinates of this play in game notation, e.g.
// 8D for a horizontal play and D8 for a vertical one.
func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.rowStart, m.colStart, m.vertical)
}

// ShortDescription returns a compact description of this play, like
// "8D hoentje 68".
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%3v %v %d", m.BoardCoords(), m.TilesString(), m.score)
	case MoveTypePass:
		return "(Pass)"
	}
	return "UNHANDLED"
}

func (m *Move) String() string {
	return m.ShortDescription()
}

// Equals compares everything but the alphabet pointer.
func (m *Move) Equals(o *Move) bool {
	return m.action == o.action && m.score == o.score &&
		m.rowStart == o.rowStart && m.colStart == o.colStart &&
		m.vertical == o.vertical && m.tilesPlayed == o.tilesPlayed &&
		m.bingo == o.bingo &&
		m.tiles.UserVisiblePlayedTiles(m.alph) == o.tiles.UserVisiblePlayedTiles(o.alph) &&
		m.word.UserVisible(m.alph) == o.word.UserVisible(o.alph)
}

// ToBoardGameCoords turns row, col, and orientation into game notation.
// Rows are 1-based numbers and columns are letters; the row comes first
// for a horizontal play.
func ToBoardGameCoords(row, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords is the inverse of ToBoardGameCoords. It returns the
// row, the column, and whether the play is vertical.
func FromBoardGameCoords(c string) (int, int, bool, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if len(c) < 2 {
		return 0, 0, false, fmt.Errorf("coordinates %q too short", c)
	}
	if c[0] >= 'A' && c[0] <= 'Z' {
		row, err := strconv.Atoi(c[1:])
		if err != nil {
			return 0, 0, false, fmt.Errorf("bad row in coordinates %q", c)
		}
		return row - 1, int(c[0] - 'A'), true, nil
	}
	last := c[len(c)-1]
	if last < 'A' || last > 'Z' {
		return 0, 0, false, fmt.Errorf("no column in coordinates %q", c)
	}
	row, err := strconv.Atoi(c[:len(c)-1])
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad row in coordinates %q", c)
	}
	return row - 1, int(last - 'A'), false, nil
}
