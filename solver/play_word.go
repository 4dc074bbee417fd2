package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/jensanjo/wordfeud-solver/board"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// PlayWord validates a word placement and returns the letters it would
// consume from a rack, as a user-visible string with assigned blanks
// uppercased. The play is held to the same legality rules the generator
// uses: it must fit on the board, agree with the tiles already there,
// place at least one new tile, connect to the existing tiles (or cover
// the center of an empty board), and every word it forms must be in the
// lexicon. When commit is true the tiles are placed and the board's
// anchors and cross-sets are refreshed; otherwise the board is left
// untouched.
//
// The word uses lowercase letters for regular tiles and uppercase for
// tiles played with a blank.
func (s *Solver) PlayWord(word string, row, col int, vertical, commit bool) (string, error) {
	placeErr := func(reason string) error {
		return &PlacementError{Word: word, Row: row, Col: col, Reason: reason}
	}
	tm := s.ld.TileMapping()
	mw, err := tilemapping.ToMachineWord(word, tm)
	if err != nil {
		return "", placeErr(err.Error())
	}
	if len(mw) < 2 {
		return "", placeErr("words are at least two letters")
	}
	for _, ml := range mw {
		if ml == 0 {
			return "", placeErr("blanks must be assigned a letter")
		}
	}
	tiles, used, err := s.validatePlacement(mw, row, col, vertical, placeErr)
	if err != nil {
		return "", err
	}
	if commit {
		if err := s.bd.PlaceTiles(tiles, row, col, vertical); err != nil {
			return "", placeErr(err.Error())
		}
		s.refresh()
		log.Debug().Str("word", word).Int("row", row).Int("col", col).
			Bool("vertical", vertical).Msg("committed play")
	}
	return used.UserVisible(tm), nil
}

// validatePlacement checks the play against the board and lexicon. It
// returns the tiles to place (0 for played-through positions) and the
// rack letters the play consumes. The board comes back in its original
// orientation.
func (s *Solver) validatePlacement(mw tilemapping.MachineWord, row, col int,
	vertical bool, placeErr func(string) error) (tilemapping.MachineWord, tilemapping.MachineWord, error) {

	// Work on the transposed board for a vertical play so every check
	// runs along a row.
	b := s.bd
	prow, pcol := row, col
	if vertical {
		b.Transpose()
		defer b.Transpose()
		prow, pcol = col, row
	}
	dim := b.Dim()
	if prow < 0 || prow >= dim || pcol < 0 || pcol+len(mw) > dim {
		return nil, nil, placeErr("out of bounds")
	}
	if (pcol > 0 && !b.GetSquare(prow, pcol-1).IsEmpty()) ||
		(pcol+len(mw) < dim && !b.GetSquare(prow, pcol+len(mw)).IsEmpty()) {
		return nil, nil, placeErr("word must include all adjacent tiles in its direction")
	}

	tm := s.ld.TileMapping()
	tiles := make(tilemapping.MachineWord, len(mw))
	used := make(tilemapping.MachineWord, 0, len(mw))
	connected := false
	for idx, ml := range mw {
		sq := b.GetSquare(prow, pcol+idx)
		if !sq.IsEmpty() {
			if sq.Letter() != ml {
				return nil, nil, placeErr("conflicts with a tile already on the board")
			}
			connected = true
			continue
		}
		tiles[idx] = ml
		used = append(used, ml)
	}
	if len(used) == 0 {
		return nil, nil, placeErr("no new tiles placed")
	}
	if s.cfg.RackSize > 0 && len(used) > s.cfg.RackSize {
		return nil, nil, placeErr("uses more tiles than fit on a rack")
	}

	checkWords := s.lex.WordCount() > 0
	if checkWords && !s.lex.HasWord(mw) {
		return nil, nil, placeErr("not a word in the lexicon")
	}
	for idx, t := range tiles {
		if t == 0 {
			continue
		}
		cross, formed := crossWordAt(b, prow, pcol+idx, t)
		if !formed {
			continue
		}
		connected = true
		if checkWords && !s.lex.HasWord(cross) {
			return nil, nil, placeErr("forms " + cross.UserVisible(tm) +
				", not a word in the lexicon")
		}
	}
	if b.IsEmpty() {
		center := dim / 2
		if prow != center || pcol > center || pcol+len(mw) <= center {
			return nil, nil, placeErr("first word must cover the center square")
		}
	} else if !connected {
		return nil, nil, placeErr("word does not connect to the tiles on the board")
	}
	return tiles, used, nil
}

// crossWordAt returns the perpendicular word formed by placing ml at
// (row, col) on the current orientation, and whether one is formed at
// all (a lone letter forms no word).
func crossWordAt(b *board.GameBoard, row, col int,
	ml tilemapping.MachineLetter) (tilemapping.MachineWord, bool) {

	top := row
	for top > 0 && !b.GetSquare(top-1, col).IsEmpty() {
		top--
	}
	bottom := row
	for bottom < b.Dim()-1 && !b.GetSquare(bottom+1, col).IsEmpty() {
		bottom++
	}
	if top == bottom {
		return nil, false
	}
	word := make(tilemapping.MachineWord, 0, bottom-top+1)
	for r := top; r <= bottom; r++ {
		if r == row {
			word = append(word, ml)
		} else {
			word = append(word, b.GetLetter(r, col))
		}
	}
	return word, true
}
