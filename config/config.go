// Package config holds the runtime settings of the solver.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings for a solver. Zero-value fields are filled
// from defaults by Load; environment variables with the WORDFEUD_ prefix
// and an optional config file override them.
type Config struct {
	// DataPath is the directory holding wordlists/ and
	// letterdistributions/ subdirectories.
	DataPath string `mapstructure:"data-path"`
	// DefaultLexicon is the wordlist file used when none is given.
	DefaultLexicon string `mapstructure:"default-lexicon"`
	// DefaultLetterDistribution names the tile set, e.g. english,
	// dutch, swedish.
	DefaultLetterDistribution string `mapstructure:"default-letter-distribution"`
	// Workers is the number of goroutines used for move generation; 0
	// means one per CPU.
	Workers int `mapstructure:"workers"`
	// RackSize is the maximum number of tiles on a rack.
	RackSize int `mapstructure:"rack-size"`
	// BingoBonus is added to a play that uses at least BingoThreshold
	// tiles.
	BingoBonus     int `mapstructure:"bingo-bonus"`
	BingoThreshold int `mapstructure:"bingo-threshold"`
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		DataPath:                  "./data",
		DefaultLetterDistribution: "english",
		Workers:                   0,
		RackSize:                  7,
		BingoBonus:                40,
		BingoThreshold:            7,
	}
}

// Load populates the config from defaults, an optional wordfeud.yaml in
// the working directory, and WORDFEUD_-prefixed environment variables.
func (c *Config) Load() error {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("data-path", d.DataPath)
	v.SetDefault("default-lexicon", d.DefaultLexicon)
	v.SetDefault("default-letter-distribution", d.DefaultLetterDistribution)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("rack-size", d.RackSize)
	v.SetDefault("bingo-bonus", d.BingoBonus)
	v.SetDefault("bingo-threshold", d.BingoThreshold)
	v.SetDefault("debug", d.Debug)

	v.SetConfigName("wordfeud")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	v.SetEnvPrefix("wordfeud")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v.Unmarshal(c)
}
