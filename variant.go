package strandmatch

// Map columns in the query variant file to their positions. The layout
// follows the PLINK linkage-map convention; Morgans is carried for column
// arithmetic only and is never read.
const (
	ColChromosome int = iota
	ColVariantID
	ColMorgans
	ColCoordinate
	ColAlleleA
	ColAlleleB
)

// Variant is one row of the query variant file.
type Variant struct {
	Chromosome string
	Position   uint32 // Labeled "position" by most applications
	VariantID  string // E.g., RSID; the join key against reference records
	AlleleA    string // Can contain > 1 character (indel codes)
	AlleleB    string // Can contain > 1 character (indel codes)
}
