package strandmatch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/genotools/strandmatch/strandparser"
)

// countMalformedRecords fixes the denominator policy for NameMatchRate:
// reference lines that fail to parse are tallied in SkippedLines and, with
// this set to false, do not count toward TotalRecords.
const countMalformedRecords = false

// ErrTruncatedStream tags candidates whose byte stream ended abnormally,
// e.g. a truncated archive member. Such candidates are excluded from the
// ranking rather than reported with partial counters.
var ErrTruncatedStream = errors.New("candidate stream ended abnormally")

// MatchStats holds the raw counters for one candidate reference file.
// Ratios are derived on demand and never stored, so rounding cannot
// propagate.
type MatchStats struct {
	Candidate string // member name within its archive
	Archive   string // path of the archive the member came from

	TotalRecords          int // successfully parsed reference records
	SkippedLines          int // malformed reference lines
	NameMatches           int // identifier found in the index
	NamePosMatches        int // identifier and position both match
	OriginalStrandMatches int // allele pair identical as annotated
	PlusStrandMatches     int // allele pair identical after flipping to +
	ATCGMatches           int // palindromic (A/T, C/G) name+pos matches
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

func (s MatchStats) NameMatchRate() float64    { return ratio(s.NameMatches, s.TotalRecords) }
func (s MatchStats) NamePosMatchRate() float64 { return ratio(s.NamePosMatches, s.NameMatches) }
func (s MatchStats) OriginalStrandRate() float64 {
	return ratio(s.OriginalStrandMatches, s.NamePosMatches)
}
func (s MatchStats) PlusStrandRate() float64 { return ratio(s.PlusStrandMatches, s.NamePosMatches) }
func (s MatchStats) ATCGRate() float64       { return ratio(s.ATCGMatches, s.NamePosMatches) }

// MatchScorer joins one candidate's records against the shared VariantIndex.
// Every worker owns its own scorer; the index is the only shared state and
// is read-only.
type MatchScorer struct {
	Index  *VariantIndex
	Parser *strandparser.Parser
}

// Score consumes one member's lines and returns its complete MatchStats.
// Compressed member payloads are decompressed transparently. A mid-stream
// read failure excludes the candidate: no partial counters escape.
func (m *MatchScorer) Score(candidate, archive string, r io.Reader) (MatchStats, error) {
	stats := MatchStats{Candidate: candidate, Archive: archive}

	body, err := MaybeDecompress(r)
	if err != nil {
		return MatchStats{}, fmt.Errorf("%w: %v", ErrTruncatedStream, err)
	}

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := m.Parser.ParseLine(line)
		if err != nil {
			stats.SkippedLines++
			if countMalformedRecords {
				stats.TotalRecords++
			}
			continue
		}

		stats.TotalRecords++
		m.tally(&stats, rec)
	}
	if err := scanner.Err(); err != nil {
		return MatchStats{}, fmt.Errorf("%w: %v", ErrTruncatedStream, err)
	}

	return stats, nil
}

func (m *MatchScorer) tally(stats *MatchStats, rec strandparser.StrandRecord) {
	v, ok := m.Index.Find(rec.VariantID)
	if !ok {
		return
	}
	stats.NameMatches++

	if rec.Position != v.Position {
		return
	}
	stats.NamePosMatches++

	recPair := MakePair(rec.AlleleA, rec.AlleleB)
	if recPair.Palindromic() {
		// Strand orientation is undecidable for A/T and C/G pairs, so
		// they contribute to neither strand counter.
		stats.ATCGMatches++
		return
	}

	varPair := MakePair(v.AlleleA, v.AlleleB)
	if recPair == varPair {
		stats.OriginalStrandMatches++
	}
	if flipped, ok := varPair.Flip(); ok && recPair == flipped {
		stats.PlusStrandMatches++
	}
}
