// Package solver is the top-level API: it owns a board, a lexicon and a
// letter distribution, and answers "what are the best plays for this
// rack" and "put this word on the board".
package solver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jensanjo/wordfeud-solver/board"
	"github.com/jensanjo/wordfeud-solver/config"
	"github.com/jensanjo/wordfeud-solver/lexicon"
	"github.com/jensanjo/wordfeud-solver/move"
	"github.com/jensanjo/wordfeud-solver/movegen"
	"github.com/jensanjo/wordfeud-solver/tilemapping"
)

// Solver holds a board with its lexicon and letter distribution.
type Solver struct {
	cfg config.Config
	ld  *tilemapping.LetterDistribution
	lex *lexicon.Trie
	bd  *board.GameBoard
	gen *movegen.TrieGenerator
}

type options struct {
	cfg          *config.Config
	wordlistPath string
	words        []string
	state        []string
	layout       *board.Layout
}

// An Option customizes solver construction.
type Option func(*options)

// WithConfig overrides the default configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = &cfg }
}

// WithWordlistFile loads the lexicon from a newline-delimited word file.
// Tries are cached process-wide by file content.
func WithWordlistFile(path string) Option {
	return func(o *options) { o.wordlistPath = path }
}

// WithWordlist builds the lexicon from a word slice.
func WithWordlist(words []string) Option {
	return func(o *options) { o.words = words }
}

// WithState sets the initial board tiles from rows of letters.
func WithState(rows []string) Option {
	return func(o *options) { o.state = rows }
}

// WithLayout uses a custom bonus-square layout.
func WithLayout(layout *board.Layout) Option {
	return func(o *options) { o.layout = layout }
}

// New creates a solver for the named language ("english", "dutch",
// "swedish", or any letter distribution available under the data path).
// Without a wordlist option the lexicon is empty and every play-legality
// check that needs a dictionary is skipped.
func New(lang string, opts ...Option) (*Solver, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	cfg := config.DefaultConfig()
	if o.cfg != nil {
		cfg = *o.cfg
	}
	ld, err := tilemapping.NamedLetterDistribution(cfg.DataPath, lang)
	if err != nil {
		return nil, fmt.Errorf("language %v: %w", lang, err)
	}
	var lex *lexicon.Trie
	switch {
	case o.wordlistPath != "":
		lex, err = lexicon.CachedTrie(o.wordlistPath, ld.TileMapping())
	case o.words != nil:
		lex, err = lexicon.TrieFromWords(o.words, ld.TileMapping())
	default:
		lex, err = lexicon.TrieFromWords(nil, ld.TileMapping())
	}
	if err != nil {
		return nil, err
	}
	layout := o.layout
	if layout == nil {
		layout = board.DefaultLayout()
	}
	s := &Solver{
		cfg: cfg,
		ld:  ld,
		lex: lex,
		bd:  board.NewBoard(layout),
	}
	s.gen = movegen.NewTrieGenerator(lex, s.bd, ld, movegen.Rules{
		BingoBonus:     cfg.BingoBonus,
		BingoThreshold: cfg.BingoThreshold,
	})
	if o.state != nil {
		if err := s.SetState(o.state); err != nil {
			return nil, err
		}
	} else {
		s.refresh()
	}
	log.Debug().Str("language", lang).Str("lexicon", lex.Name()).
		Int("words", lex.WordCount()).Msg("created solver")
	return s, nil
}

// Board returns the underlying board.
func (s *Solver) Board() *board.GameBoard {
	return s.bd
}

// Lexicon returns the underlying word trie.
func (s *Solver) Lexicon() *lexicon.Trie {
	return s.lex
}

// LetterDistribution returns the tile set in use.
func (s *Solver) LetterDistribution() *tilemapping.LetterDistribution {
	return s.ld
}

// Config returns the solver settings.
func (s *Solver) Config() config.Config {
	return s.cfg
}

// SetState replaces the tiles on the board. Rows use a space for an
// empty square, lowercase for regular tiles and uppercase for assigned
// blanks. On error the board is left unchanged.
func (s *Solver) SetState(rows []string) error {
	if err := s.bd.SetState(rows, s.ld.TileMapping()); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// Rows returns the board tiles in the SetState format.
func (s *Solver) Rows() []string {
	return s.bd.ToRows(s.ld.TileMapping())
}

// refresh recomputes anchors and cross-sets after any board mutation.
func (s *Solver) refresh() {
	board.UpdateCrossSetsForBoard(s.bd, s.lex, s.ld)
}

// parseRack validates and encodes a rack string. Racks hold lowercase
// letters and '*' for blanks.
func (s *Solver) parseRack(rack string) (*tilemapping.Rack, error) {
	mls, err := tilemapping.ToMachineLetters(rack, s.ld.TileMapping())
	if err != nil {
		return nil, &InvalidRackError{Rack: rack, Reason: err.Error()}
	}
	if len(mls) == 0 {
		return nil, &InvalidRackError{Rack: rack, Reason: "rack is empty"}
	}
	if s.cfg.RackSize > 0 && len(mls) > s.cfg.RackSize {
		return nil, &InvalidRackError{Rack: rack,
			Reason: fmt.Sprintf("more than %d tiles", s.cfg.RackSize)}
	}
	for _, ml := range mls {
		if ml.IsBlanked() {
			return nil, &InvalidRackError{Rack: rack,
				Reason: "racks hold unassigned blanks, use *"}
		}
	}
	r := tilemapping.NewRack(s.ld.TileMapping())
	r.Set(mls)
	return r, nil
}

// CalcAllWordScores generates every legal play for the rack, in no
// particular order.
func (s *Solver) CalcAllWordScores(ctx context.Context, rack string) ([]*move.Move, error) {
	r, err := s.parseRack(rack)
	if err != nil {
		return nil, err
	}
	s.gen.SetPlayRecorder(movegen.AllPlaysRecorder)
	plays, err := s.gen.GenAllConcurrent(ctx, r, s.cfg.Workers)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("rack", rack).Int("plays", len(plays)).Msg("generated all plays")
	return plays, nil
}

// TopMoves generates the n highest-scoring plays for the rack, best
// first. Ties order by word, then row, then column, with horizontal
// before vertical. A non-positive n returns an empty slice.
func (s *Solver) TopMoves(ctx context.Context, rack string, n int) ([]*move.Move, error) {
	if n <= 0 {
		return []*move.Move{}, nil
	}
	r, err := s.parseRack(rack)
	if err != nil {
		return nil, err
	}
	s.gen.SetTopPlays(movegen.NewTopPlays(n))
	if _, err := s.gen.GenAllConcurrent(ctx, r, s.cfg.Workers); err != nil {
		return nil, err
	}
	plays := s.gen.TopPlays().Sorted()
	log.Debug().Str("rack", rack).Int("requested", n).Int("found", len(plays)).
		Msg("generated top plays")
	return plays, nil
}

// CalcTopScores is an alias for TopMoves.
func (s *Solver) CalcTopScores(ctx context.Context, rack string, n int) ([]*move.Move, error) {
	return s.TopMoves(ctx, rack, n)
}

// FindBestScores is an alias for TopMoves.
func (s *Solver) FindBestScores(ctx context.Context, rack string, n int) ([]*move.Move, error) {
	return s.TopMoves(ctx, rack, n)
}
