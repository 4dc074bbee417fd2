package tilemapping

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

//go:embed data/*.csv
var distributionData embed.FS

// LetterDistribution encodes the tile distribution for the relevant game:
// how many of each tile there are, and what each is worth. The
// distributions for english, dutch and swedish ship with the package; others
// can be loaded from a data directory.
type LetterDistribution struct {
	tilemapping      *TileMapping
	Vowels           []MachineLetter
	distribution     []uint8
	scores           []int
	numUniqueLetters uint
	numLetters       uint
	Name             string
}

// ScanLetterDistribution reads a letter distribution in CSV form:
// letter,quantity,value,vowel. The first row must be the blank.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	dist := []uint8{}
	ptValues := []int{}
	vowelRows := []int{}
	letters := []string{}
	idx := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if v == 1 {
			vowelRows = append(vowelRows, idx)
		}
		dist = append(dist, uint8(n))
		ptValues = append(ptValues, p)
		letters = append(letters, record[0])
		idx++
	}
	if len(letters) == 0 || letters[0] != string(BlankToken) {
		return nil, fmt.Errorf("letter distribution must start with the blank row")
	}
	tm := &TileMapping{}
	tm.Init()
	sortMap := make(map[rune]int)
	for i, letter := range letters[1:] {
		if err := tm.Update(letter); err != nil {
			return nil, err
		}
		sortMap[[]rune(letter)[0]] = i
	}
	tm.Reconcile(sortMap)
	vowels := make([]MachineLetter, 0, len(vowelRows))
	for _, row := range vowelRows {
		// Row 0 is the blank; letter rows map to MachineLetter(row).
		vowels = append(vowels, MachineLetter(row))
	}
	return newLetterDistribution(tm, dist, ptValues, vowels), nil
}

func newLetterDistribution(tm *TileMapping, dist []uint8, ptValues []int,
	vowels []MachineLetter) *LetterDistribution {

	numTotalLetters := uint(0)
	for _, v := range dist {
		numTotalLetters += uint(v)
	}
	return &LetterDistribution{
		tilemapping:      tm,
		distribution:     dist,
		scores:           ptValues,
		Vowels:           vowels,
		numUniqueLetters: uint(len(dist)),
		numLetters:       numTotalLetters,
	}
}

// NamedLetterDistribution loads a letter distribution by name. It looks in
// dataPath first (so users can supply their own rule variants), then falls
// back to the built-in distributions.
func NamedLetterDistribution(dataPath string, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	filename := name + ".csv"
	if dataPath != "" {
		path := filepath.Join(dataPath, "letterdistributions", filename)
		if file, err := os.Open(path); err == nil {
			defer file.Close()
			log.Debug().Str("path", path).Msg("loading letter distribution from disk")
			ld, err := ScanLetterDistribution(file)
			if err != nil {
				return nil, err
			}
			ld.Name = name
			return ld, nil
		}
	}
	file, err := distributionData.Open("data/" + filename)
	if err != nil {
		return nil, fmt.Errorf("letter distribution %q not found: %w", name, err)
	}
	defer file.Close()
	ld, err := ScanLetterDistribution(file)
	if err != nil {
		return nil, err
	}
	ld.Name = name
	return ld, nil
}

// TileMapping returns the alphabet for this distribution.
func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

// Score gives the score of the given machine letter. Assigned blanks score
// zero, like the unassigned blank.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	if ml.IsBlanked() || ml == 0 {
		return ld.scores[0]
	}
	return ld.scores[ml]
}

// Count returns how many tiles of this letter exist in the game.
func (ld *LetterDistribution) Count(ml MachineLetter) uint8 {
	if ml.IsBlanked() || ml == 0 {
		return ld.distribution[0]
	}
	return ld.distribution[ml]
}

// NumTotalLetters is the total number of tiles in the game.
func (ld *LetterDistribution) NumTotalLetters() uint {
	return ld.numLetters
}

// WordScore returns the face value of a machine word, with no board
// multipliers applied.
func (ld *LetterDistribution) WordScore(mw MachineWord) int {
	return lo.SumBy(mw, ld.Score)
}
