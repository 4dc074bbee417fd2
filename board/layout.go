package board

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Layout describes the bonus squares of a board. Layouts are stored as
// rows of whitespace-separated bonus tokens (see BonusSquare.String);
// the built-in layout mirrors a quarter board into all four quadrants.
type Layout struct {
	Name    string
	bonuses [][]BonusSquare
}

// wordfeudQuarter is the top-left quadrant of the standard board,
// including the center row and column. The full board is its mirror
// image along both axes.
var wordfeudQuarter = [8]string{
	"3l -- -- -- 3w -- -- 2l",
	"-- 2l -- -- -- 3l -- --",
	"-- -- 2w -- -- -- 2l --",
	"-- -- -- 3l -- -- -- 2w",
	"3w -- -- -- 2w -- 2l --",
	"-- 3l -- -- -- 3l -- --",
	"-- -- 2l -- 2l -- -- --",
	"2l -- -- 2w -- -- -- ss",
}

// DefaultLayout returns the standard 15x15 board.
func DefaultLayout() *Layout {
	dim := 2*len(wordfeudQuarter) - 1
	bonuses := make([][]BonusSquare, dim)
	for r := 0; r < dim; r++ {
		bonuses[r] = make([]BonusSquare, dim)
		qr := r
		if qr >= len(wordfeudQuarter) {
			qr = dim - 1 - r
		}
		row := strings.Fields(wordfeudQuarter[qr])
		for c := 0; c < dim; c++ {
			qc := c
			if qc >= len(row) {
				qc = dim - 1 - c
			}
			b, err := parseBonus(row[qc])
			if err != nil {
				panic(err)
			}
			bonuses[r][c] = b
		}
	}
	return &Layout{Name: "wordfeud", bonuses: bonuses}
}

func parseBonus(tok string) (BonusSquare, error) {
	switch tok {
	case "--":
		return NoBonus, nil
	case "ss":
		return StartSquare, nil
	case "2l":
		return Bonus2LS, nil
	case "3l":
		return Bonus3LS, nil
	case "2w":
		return Bonus2WS, nil
	case "3w":
		return Bonus3WS, nil
	}
	return NoBonus, fmt.Errorf("unrecognized bonus token %q", tok)
}

// ParseLayout parses a layout from rows of bonus tokens. The grid must
// be square and have an odd dimension so that a center square exists.
func ParseLayout(name string, rows []string) (*Layout, error) {
	dim := len(rows)
	if dim == 0 || dim%2 == 0 {
		return nil, fmt.Errorf("layout %v: dimension must be odd, got %d rows", name, dim)
	}
	bonuses := make([][]BonusSquare, dim)
	for r, row := range rows {
		toks := strings.Fields(row)
		if len(toks) != dim {
			return nil, fmt.Errorf("layout %v: row %d has %d squares, expected %d",
				name, r, len(toks), dim)
		}
		bonuses[r] = make([]BonusSquare, dim)
		for c, tok := range toks {
			b, err := parseBonus(tok)
			if err != nil {
				return nil, fmt.Errorf("layout %v: row %d: %w", name, r, err)
			}
			bonuses[r][c] = b
		}
	}
	return &Layout{Name: name, bonuses: bonuses}, nil
}

type layoutFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadLayoutFile reads a YAML layout description with a name and rows
// of bonus tokens.
func LoadLayoutFile(filename string) (*Layout, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("layout %v: %w", filename, err)
	}
	return ParseLayout(lf.Name, lf.Rows)
}

// Dim returns the board dimension of this layout.
func (l *Layout) Dim() int {
	return len(l.bonuses)
}

// Bonus returns the bonus at the given position.
func (l *Layout) Bonus(row, col int) BonusSquare {
	return l.bonuses[row][col]
}
