// Command solve finds the best plays for a rack on a board.
//
// The board state file holds one line per row, with spaces for empty
// squares, lowercase letters for regular tiles and uppercase letters
// for blanks. Without a state file the board is empty.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jensanjo/wordfeud-solver/board"
	"github.com/jensanjo/wordfeud-solver/config"
	"github.com/jensanjo/wordfeud-solver/solver"
)

var (
	lang       string
	wordlist   string
	statePath  string
	layoutPath string
	rack       string
	topN       int
	debug      bool
)

func main() {
	root := &cobra.Command{
		Use:          "solve",
		Short:        "Find the best plays for a rack",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.Flags().StringVar(&lang, "lang", "", "letter distribution (english, dutch, swedish)")
	root.Flags().StringVar(&wordlist, "wordlist", "", "path to a newline-delimited wordlist")
	root.Flags().StringVar(&statePath, "state", "", "path to a board state file")
	root.Flags().StringVar(&layoutPath, "layout", "", "path to a YAML bonus layout")
	root.Flags().StringVar(&rack, "rack", "", "rack letters, * for a blank")
	root.Flags().IntVar(&topN, "top", 10, "number of plays to show")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.MarkFlagRequired("rack")

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultConfig()
	if err := cfg.Load(); err != nil {
		return err
	}
	if debug || cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if lang == "" {
		lang = cfg.DefaultLetterDistribution
	}
	if wordlist == "" {
		wordlist = cfg.DefaultLexicon
	}

	opts := []solver.Option{solver.WithConfig(cfg)}
	if wordlist != "" {
		opts = append(opts, solver.WithWordlistFile(wordlist))
	}
	if statePath != "" {
		rows, err := readStateFile(statePath)
		if err != nil {
			return err
		}
		opts = append(opts, solver.WithState(rows))
	}
	if layoutPath != "" {
		layout, err := board.LoadLayoutFile(layoutPath)
		if err != nil {
			return err
		}
		opts = append(opts, solver.WithLayout(layout))
	}
	s, err := solver.New(lang, opts...)
	if err != nil {
		return err
	}
	plays, err := s.TopMoves(context.Background(), rack, topN)
	if err != nil {
		return err
	}
	if len(plays) == 0 {
		fmt.Println("no plays found")
		return nil
	}
	for i, p := range plays {
		fmt.Printf("%2d) %v\n", i+1, p.ShortDescription())
	}
	return nil
}

// readStateFile reads board rows, keeping internal spaces but dropping
// the trailing newline of each row.
func readStateFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, "\r")
	}
	return rows, nil
}
