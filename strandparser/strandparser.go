// Package strandparser turns one line of a chip strand annotation file into
// a structured record.
package strandparser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed tags reference lines that cannot be parsed. Callers are
// expected to skip and count such lines rather than abort the file.
var ErrMalformed = errors.New("malformed strand record")

// StrandRecord is one parsed reference-file line. Records are consumed as
// they are produced and never persisted.
type StrandRecord struct {
	VariantID  string
	Chromosome string
	Position   uint32
	Strand     string // "+", "-", or "" when the annotation is unusable
	AlleleA    string
	AlleleB    string
}

type Parser struct {
	Layout    Layout
	minFields int
}

func New(layout string) (*Parser, error) {
	l, exists := Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return NewWithLayout(l), nil
}

func NewWithLayout(layout Layout) *Parser {
	return &Parser{
		Layout:    layout,
		minFields: layout.minFields(),
	}
}

// ParseLine splits one whitespace-delimited line according to the parser's
// layout. Extra trailing columns are tolerated; too few columns or a
// non-numeric position yield ErrMalformed.
func (p *Parser) ParseLine(line string) (StrandRecord, error) {
	cols := strings.Fields(line)
	if len(cols) < p.minFields {
		return StrandRecord{}, fmt.Errorf("%w: want at least %d fields, got %d", ErrMalformed, p.minFields, len(cols))
	}

	pos64, err := strconv.ParseUint(cols[p.Layout.ColPosition], 10, 32)
	if err != nil {
		return StrandRecord{}, fmt.Errorf("%w: bad position %q", ErrMalformed, cols[p.Layout.ColPosition])
	}

	rec := StrandRecord{
		VariantID:  cols[p.Layout.ColVariantID],
		Chromosome: cols[p.Layout.ColChromosome],
		Position:   uint32(pos64),
	}

	switch s := cols[p.Layout.ColStrand]; s {
	case "+", "-":
		rec.Strand = s
	}

	// A two-letter annotation splits into a biallelic pair. Anything else
	// (indel codes, "--") is kept whole so the scorer can still compare it
	// against multi-character query alleles.
	alleles := cols[p.Layout.ColAlleles]
	if len(alleles) == 2 {
		rec.AlleleA, rec.AlleleB = string(alleles[0]), string(alleles[1])
	} else {
		rec.AlleleA = alleles
	}

	return rec, nil
}
