package strandmatch

// complement maps a single unambiguous base to its reverse-strand
// counterpart.
var complement = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// AllelePair is an unordered biallelic pair. The alleles are stored in
// lexical order, so pairs built as (A,G) and (G,A) compare equal.
type AllelePair struct {
	First  string
	Second string
}

// MakePair normalizes two alleles into an order-independent pair.
func MakePair(a, b string) AllelePair {
	if b < a {
		a, b = b, a
	}

	return AllelePair{First: a, Second: b}
}

// Palindromic reports whether the pair is A/T or C/G. Strand orientation
// cannot be inferred from the alleles alone for these pairs.
func (p AllelePair) Palindromic() bool {
	return (p.First == "A" && p.Second == "T") ||
		(p.First == "C" && p.Second == "G")
}

// Flip complements the pair onto the opposite strand. ok is false when
// either allele is not a single unambiguous base: indel codes and IUPAC
// ambiguity letters have no usable complement.
func (p AllelePair) Flip() (flipped AllelePair, ok bool) {
	a, okA := complementAllele(p.First)
	b, okB := complementAllele(p.Second)
	if !okA || !okB {
		return AllelePair{}, false
	}

	return MakePair(a, b), true
}

func complementAllele(s string) (string, bool) {
	if len(s) != 1 {
		return "", false
	}

	c, ok := complement[s[0]]
	if !ok {
		return "", false
	}

	return string(c), true
}
