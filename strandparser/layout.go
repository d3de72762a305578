package strandparser

import "strings"

// Layout maps the columns of a reference-file line to their positions.
// Reference files are whitespace-delimited and may carry extra trailing
// columns, which are ignored.
type Layout struct {
	ColVariantID  int
	ColChromosome int
	ColPosition   int
	ColStrand     int
	ColAlleles    int
}

var Layouts = map[string]Layout{
	// Identifier, chromosome, position, strand, allele pair.
	"DEFAULT": {
		ColVariantID:  0,
		ColChromosome: 1,
		ColPosition:   2,
		ColStrand:     3,
		ColAlleles:    4,
	},
	// Will Rayner's strand files carry a genome-match percentage between
	// the position and strand columns.
	"RAYNER": {
		ColVariantID:  0,
		ColChromosome: 1,
		ColPosition:   2,
		ColStrand:     4,
		ColAlleles:    5,
	},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}

// minFields is the smallest field count a line can have and still populate
// every column of the layout: one past the highest column index.
func (l Layout) minFields() int {
	last := l.ColVariantID
	for _, col := range []int{l.ColChromosome, l.ColPosition, l.ColStrand, l.ColAlleles} {
		if col > last {
			last = col
		}
	}

	return last + 1
}
