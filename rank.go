package strandmatch

import "sort"

// RankedResult is one read-only row of the final table: a candidate's stats
// with its rates fixed at ranking time.
type RankedResult struct {
	Candidate          string  `csv:"candidate"`
	Archive            string  `csv:"archive"`
	NameMatchRate      float64 `csv:"name_match_rate"`
	NamePosMatchRate   float64 `csv:"name_pos_match_rate"`
	OriginalStrandRate float64 `csv:"original_strand_rate"`
	PlusStrandRate     float64 `csv:"plus_strand_rate"`
	ATCGRate           float64 `csv:"atcg_rate"`

	Stats MatchStats `csv:"-"`
}

// Rank drops excluded candidates and orders the rest by NameMatchRate
// descending, breaking ties by NamePosMatchRate descending. The sort is
// stable, so fully tied candidates keep their archive-discovery order and
// repeated runs over the same inputs produce identical tables.
func Rank(results []CandidateResult) []RankedResult {
	ranked := make([]RankedResult, 0, len(results))
	for _, r := range results {
		if r.Err != nil || r.Candidate == "" {
			continue
		}

		ranked = append(ranked, RankedResult{
			Candidate:          r.Candidate,
			Archive:            r.Archive,
			NameMatchRate:      r.Stats.NameMatchRate(),
			NamePosMatchRate:   r.Stats.NamePosMatchRate(),
			OriginalStrandRate: r.Stats.OriginalStrandRate(),
			PlusStrandRate:     r.Stats.PlusStrandRate(),
			ATCGRate:           r.Stats.ATCGRate(),
			Stats:              r.Stats,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].NameMatchRate != ranked[j].NameMatchRate {
			return ranked[i].NameMatchRate > ranked[j].NameMatchRate
		}
		return ranked[i].NamePosMatchRate > ranked[j].NamePosMatchRate
	})

	return ranked
}
