package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestRackFromString(t *testing.T) {
	is := is.New(t)
	tm := EnglishAlphabet()
	r, err := RackFromString("aeinrst", tm)
	is.NoErr(err)
	is.Equal(int(r.NumTiles()), 7)
	is.Equal(r.String(), "aeinrst")
}

func TestRackTakeAndAdd(t *testing.T) {
	is := is.New(t)
	tm := EnglishAlphabet()
	r, err := RackFromString("ab*", tm)
	is.NoErr(err)
	is.True(r.Has(0))
	is.True(r.Has(1))
	r.Take(1)
	is.True(!r.Has(1))
	is.Equal(int(r.NumTiles()), 2)
	r.Add(1)
	is.Equal(int(r.NumTiles()), 3)
	r.Take(0)
	is.True(!r.Has(0))
}

func TestRackTilesOn(t *testing.T) {
	is := is.New(t)
	tm := EnglishAlphabet()
	r, err := RackFromString("cab*a", tm)
	is.NoErr(err)
	is.Equal(r.TilesOn(), MachineWord{0, 1, 1, 2, 3})
}

func TestRackCopy(t *testing.T) {
	is := is.New(t)
	tm := EnglishAlphabet()
	r, err := RackFromString("queen", tm)
	is.NoErr(err)
	c := r.Copy()
	c.Take(5)
	is.Equal(int(r.NumTiles()), 5)
	is.Equal(int(c.NumTiles()), 4)
}
