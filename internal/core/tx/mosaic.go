package tx

import (
	"sort"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// Mosaic is an amount of a (possibly aliased) mosaic.
type Mosaic struct {
	ID     types.UnresolvedMosaicID `json:"id"`
	Amount uint64                   `json:"amount"`
}

// NewMosaic creates a Mosaic
func NewMosaic(id types.UnresolvedMosaicID, amount uint64) Mosaic {
	return Mosaic{ID: id, Amount: amount}
}

// SortedMosaics returns a copy of mosaics ordered by ascending id.
// The input slice is left untouched.
func SortedMosaics(mosaics []Mosaic) []Mosaic {
	if len(mosaics) == 0 {
		return nil
	}
	out := make([]Mosaic, len(mosaics))
	copy(out, mosaics)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
