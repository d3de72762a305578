package strandmatch

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// ErrNoVariants indicates that the query file contained no parseable variant
// rows, so no meaningful ranking is possible.
var ErrNoVariants = errors.New("query file yielded no usable variants")

// VariantIndex is a read-only identifier lookup over the query variants. It
// is built once before any scanning starts and never mutated afterwards, so
// workers share it without locking.
type VariantIndex struct {
	variants map[string]Variant
	skipped  int
}

// BuildVariantIndex reads the whole query file into an index. Malformed rows
// (too few fields, non-numeric position) are skipped and counted rather than
// aborting the load; the build only fails hard when the reader errors out or
// when zero valid variants remain. When the file defines the same identifier
// twice, the later definition wins.
func BuildVariantIndex(r io.Reader) (*VariantIndex, error) {
	idx := &VariantIndex{variants: make(map[string]Variant)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		cols := strings.Fields(scanner.Text())
		if len(cols) == 0 {
			continue
		}
		if len(cols) < ColAlleleB+1 {
			idx.skipped++
			continue
		}

		coord64, err := strconv.ParseUint(cols[ColCoordinate], 10, 32)
		if err != nil {
			idx.skipped++
			continue
		}

		v := Variant{
			Chromosome: cols[ColChromosome],
			VariantID:  cols[ColVariantID],
			Position:   uint32(coord64),
			AlleleA:    cols[ColAlleleA],
			AlleleB:    cols[ColAlleleB],
		}
		idx.variants[v.VariantID] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if len(idx.variants) == 0 {
		return nil, ErrNoVariants
	}

	return idx, nil
}

// Find looks up one variant by identifier.
func (x *VariantIndex) Find(id string) (Variant, bool) {
	v, ok := x.variants[id]
	return v, ok
}

// Len reports the number of distinct variants in the index.
func (x *VariantIndex) Len() int { return len(x.variants) }

// SkippedLines reports how many malformed query rows were ignored while
// building the index.
func (x *VariantIndex) SkippedLines() int { return x.skipped }
