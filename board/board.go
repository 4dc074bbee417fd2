package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// A BoardDirection is either horizontal or vertical.
type BoardDirection uint8

// A WordDirection is in opposing directions along the same axis.
type WordDirection int

func (d BoardDirection) String() string {
	if d == HorizontalDirection {
		return "(horizontal)"
	} else if d == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	// HorizontalDirection is along a row.
	HorizontalDirection BoardDirection = iota
	// VerticalDirection is along a column.
	VerticalDirection
)

const (
	// LeftDirection is towards a decreasing column.
	LeftDirection WordDirection = -1
	// RightDirection is towards an increasing column.
	RightDirection WordDirection = 1
)

var (
	// ErrWrongRowCount is returned when a board state does not have
	// exactly as many rows as the layout dimension.
	ErrWrongRowCount = errors.New("wrong number of rows for this board")
	// ErrWrongRowLength is returned when a row of a board state does not
	// have exactly as many squares as the layout dimension.
	ErrWrongRowLength = errors.New("wrong row length for this board")
)

// A GameBoard is the grid of squares for a game, along with the set of
// tiles on it. It maintains anchors and cross-sets for move generation.
// A GameBoard can be transposed in place so that vertical plays can be
// generated with the same code that generates horizontal ones.
type GameBoard struct {
	squares     [][]*Square
	transposed  bool
	tilesPlayed int
}

// NewBoard creates an empty board from a layout.
func NewBoard(layout *Layout) *GameBoard {
	dim := layout.Dim()
	squares := make([][]*Square, dim)
	for r := 0; r < dim; r++ {
		squares[r] = make([]*Square, dim)
		for c := 0; c < dim; c++ {
			squares[r][c] = &Square{bonus: layout.Bonus(r, c)}
		}
	}
	g := &GameBoard{squares: squares}
	g.Clear()
	return g
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	newg := &GameBoard{
		squares:     make([][]*Square, len(g.squares)),
		transposed:  g.transposed,
		tilesPlayed: g.tilesPlayed,
	}
	for ri, r := range g.squares {
		newg.squares[ri] = make([]*Square, len(r))
		for ci, c := range r {
			s := &Square{}
			s.copyFrom(c)
			newg.squares[ri][ci] = s
		}
	}
	return newg
}

// CopyFrom copies the squares and state from b into this board.
func (g *GameBoard) CopyFrom(b *GameBoard) {
	for ri, r := range b.squares {
		for ci, c := range r {
			g.squares[ri][ci].copyFrom(c)
		}
	}
	g.transposed = b.transposed
	g.tilesPlayed = b.tilesPlayed
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

func (g *GameBoard) GetSquare(row, col int) *Square {
	return g.squares[row][col]
}

func (g *GameBoard) GetBonus(row, col int) BonusSquare {
	return g.squares[row][col].bonus
}

func (g *GameBoard) GetLetter(row, col int) tilemapping.MachineLetter {
	return g.squares[row][col].letter
}

func (g *GameBoard) SetLetter(row, col int, letter tilemapping.MachineLetter) {
	g.squares[row][col].letter = letter
}

func (g *GameBoard) HasLetter(row, col int) bool {
	return !g.squares[row][col].IsEmpty()
}

func (g *GameBoard) GetCrossSet(row, col int, dir BoardDirection) CrossSet {
	return g.squares[row][col].GetCrossSet(dir)
}

func (g *GameBoard) GetCrossScore(row, col int, dir BoardDirection) int {
	return g.squares[row][col].GetCrossScore(dir)
}

func (g *GameBoard) IsAnchor(row, col int) bool {
	return g.squares[row][col].anchor
}

// IsEmpty returns true if no tiles have been played yet.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// TilesPlayed returns the number of tiles on the board.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// PosExists returns true if the position is on the board.
func (g *GameBoard) PosExists(row, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

// leftAndRightEmpty returns true if the squares to the left and right of
// (row, col) are both either empty or off the board.
func (g *GameBoard) leftAndRightEmpty(row, col int) bool {
	if g.PosExists(row, col-1) && !g.squares[row][col-1].IsEmpty() {
		return false
	}
	if g.PosExists(row, col+1) && !g.squares[row][col+1].IsEmpty() {
		return false
	}
	return true
}

// WordEdge finds the edge of a word on the board, returning the column.
// The returned column is the last contiguous occupied square in the given
// direction, or col itself if (row, col) is empty.
func (g *GameBoard) WordEdge(row, col int, dir WordDirection) int {
	for g.PosExists(row, col) && !g.squares[row][col].IsEmpty() {
		col += int(dir)
	}
	return col - int(dir)
}

// Clear resets the board to an empty state.
func (g *GameBoard) Clear() {
	for _, r := range g.squares {
		for _, s := range r {
			s.letter = 0
			s.resetCrossesAndAnchor()
		}
	}
	g.transposed = false
	g.tilesPlayed = 0
	g.UpdateAllAnchors()
}

// Transpose swaps rows and columns in place. Squares keep their own
// bonuses and cross information, so generation and scoring code can
// always work row-wise.
func (g *GameBoard) Transpose() {
	n := g.Dim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.squares[i][j], g.squares[j][i] = g.squares[j][i], g.squares[i][j]
		}
	}
	g.transposed = !g.transposed
}

func (g *GameBoard) IsTransposed() bool {
	return g.transposed
}

// UpdateAllAnchors recomputes the anchor flags for the whole board. An
// anchor is an empty square orthogonally adjacent to at least one tile.
// On an empty board the center square is the only anchor.
func (g *GameBoard) UpdateAllAnchors() {
	n := g.Dim()
	if g.tilesPlayed == 0 {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				g.squares[i][j].anchor = false
			}
		}
		rc := n / 2
		g.squares[rc][rc].anchor = true
		return
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sq := g.squares[i][j]
			if !sq.IsEmpty() {
				sq.anchor = false
				continue
			}
			sq.anchor = (i > 0 && !g.squares[i-1][j].IsEmpty()) ||
				(i < n-1 && !g.squares[i+1][j].IsEmpty()) ||
				(j > 0 && !g.squares[i][j-1].IsEmpty()) ||
				(j < n-1 && !g.squares[i][j+1].IsEmpty())
		}
	}
}

// SetState sets the tiles on the board from rows of user-visible
// letters. A space is an empty square, a lowercase letter is a regular
// tile and an uppercase letter is a blank playing as that letter. The
// board must not be transposed. Anchors are updated; the caller is
// responsible for regenerating cross-sets.
func (g *GameBoard) SetState(rows []string, tm *tilemapping.TileMapping) error {
	if g.transposed {
		return errors.New("cannot set state of a transposed board")
	}
	n := g.Dim()
	if len(rows) != n {
		return fmt.Errorf("%w: got %d, expected %d", ErrWrongRowCount, len(rows), n)
	}
	letters := make([][]tilemapping.MachineLetter, n)
	for ri, row := range rows {
		rr := []rune(row)
		if len(rr) != n {
			return fmt.Errorf("%w: row %d has %d squares, expected %d",
				ErrWrongRowLength, ri, len(rr), n)
		}
		letters[ri] = make([]tilemapping.MachineLetter, n)
		for ci, r := range rr {
			if r == ' ' {
				continue
			}
			ml, err := tm.Val(r)
			if err != nil {
				return fmt.Errorf("row %d, col %d: %w", ri, ci, err)
			}
			letters[ri][ci] = ml
		}
	}
	// Only mutate after the whole state parsed.
	g.Clear()
	for ri := range letters {
		for ci, ml := range letters[ri] {
			if ml != 0 {
				g.squares[ri][ci].letter = ml
				g.tilesPlayed++
			}
		}
	}
	g.UpdateAllAnchors()
	return nil
}

// ToRows returns the board state as rows of user-visible letters, the
// inverse of SetState.
func (g *GameBoard) ToRows(tm *tilemapping.TileMapping) []string {
	n := g.Dim()
	rows := make([]string, n)
	for ri := 0; ri < n; ri++ {
		var sb strings.Builder
		for ci := 0; ci < n; ci++ {
			sq := g.squares[ri][ci]
			if sq.IsEmpty() {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(tm.Letter(sq.letter))
			}
		}
		rows[ri] = sb.String()
	}
	return rows
}

// PlaceTiles puts the given tiles on the board starting at (row, col),
// going right if horizontal or down otherwise. A zero letter means the
// square is played through and must already hold a tile; other letters
// must land on empty squares.
func (g *GameBoard) PlaceTiles(tiles tilemapping.MachineWord, row, col int, vertical bool) error {
	// Operate on the transposed board for a vertical play so the loop
	// can always run along a row.
	if vertical {
		g.Transpose()
		row, col = col, row
		defer g.Transpose()
	}
	if row < 0 || row >= g.Dim() || col < 0 || col+len(tiles) > g.Dim() {
		return fmt.Errorf("play out of bounds at row %d col %d", row, col)
	}
	for idx, t := range tiles {
		sq := g.squares[row][col+idx]
		if t == 0 {
			if sq.IsEmpty() {
				return fmt.Errorf("cannot play through empty square at row %d col %d",
					row, col+idx)
			}
			continue
		}
		if !sq.IsEmpty() {
			return fmt.Errorf("square at row %d col %d is already occupied", row, col+idx)
		}
	}
	for idx, t := range tiles {
		if t == 0 {
			continue
		}
		g.squares[row][col+idx].letter = t
		g.tilesPlayed++
	}
	return nil
}

// UnplaceTiles removes the tiles previously placed by PlaceTiles.
func (g *GameBoard) UnplaceTiles(tiles tilemapping.MachineWord, row, col int, vertical bool) {
	if vertical {
		g.Transpose()
		row, col = col, row
		defer g.Transpose()
	}
	for idx, t := range tiles {
		if t == 0 {
			continue
		}
		g.squares[row][col+idx].letter = 0
		g.tilesPlayed--
	}
}

func (g *GameBoard) String() string {
	var sb strings.Builder
	n := g.Dim()
	sb.WriteString("  ")
	for c := 0; c < n; c++ {
		fmt.Fprintf(&sb, "%c", 'A'+c)
	}
	sb.WriteString("\n")
	for r := 0; r < n; r++ {
		fmt.Fprintf(&sb, "%2d", r+1)
		for c := 0; c < n; c++ {
			sq := g.squares[r][c]
			if sq.IsEmpty() {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune('*')
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (g *GameBoard) TestSetTilesPlayed(n int) {
	g.tilesPlayed = n
}

// Equals is used in tests to compare two boards square by square.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() || g.transposed != g2.transposed ||
		g.tilesPlayed != g2.tilesPlayed {
		return false
	}
	for ri, r := range g.squares {
		for ci, c := range r {
			if !c.equals(g2.squares[ri][ci]) {
				return false
			}
		}
	}
	return true
}
