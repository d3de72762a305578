package strandmatch

import (
	"errors"
	"testing"
)

// statsWithRates fabricates counters that derive to the requested rates.
func statsWithRates(nameRate, namePosRate float64) MatchStats {
	const total = 1000
	nameMatches := int(nameRate * total)

	return MatchStats{
		TotalRecords:   total,
		NameMatches:    nameMatches,
		NamePosMatches: int(namePosRate * float64(nameMatches)),
	}
}

func TestRankOrderAndStability(t *testing.T) {
	results := []CandidateResult{
		{Candidate: "B", Archive: "b.zip", Stats: statsWithRates(0.9, 0.5)},
		{Candidate: "A", Archive: "a.zip", Stats: statsWithRates(0.9, 0.5)},
		{Candidate: "C", Archive: "c.zip", Stats: statsWithRates(0.5, 0.9)},
	}

	ranked := Rank(results)

	var order []string
	for _, r := range ranked {
		order = append(order, r.Candidate)
	}
	want := []string{"B", "A", "C"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("want order %v, got %v", want, order)
		}
	}
}

func TestRankSecondaryKey(t *testing.T) {
	results := []CandidateResult{
		{Candidate: "low", Stats: statsWithRates(0.9, 0.2)},
		{Candidate: "high", Stats: statsWithRates(0.9, 0.8)},
	}

	ranked := Rank(results)
	if ranked[0].Candidate != "high" || ranked[1].Candidate != "low" {
		t.Errorf("tie on NameMatchRate should break by NamePosMatchRate, got %s then %s",
			ranked[0].Candidate, ranked[1].Candidate)
	}
}

func TestRankDropsFailures(t *testing.T) {
	results := []CandidateResult{
		{Candidate: "good", Stats: statsWithRates(0.9, 0.9)},
		{Candidate: "bad", Err: errors.New("truncated")},
		{Archive: "corrupt.zip", Err: errors.New("not a zip")},
	}

	ranked := Rank(results)
	if len(ranked) != 1 || ranked[0].Candidate != "good" {
		t.Errorf("failed candidates must be absent, not zeroed: %+v", ranked)
	}
}

func TestRankDerivesRates(t *testing.T) {
	results := []CandidateResult{{
		Candidate: "chip",
		Stats: MatchStats{
			TotalRecords:          10,
			NameMatches:           8,
			NamePosMatches:        4,
			OriginalStrandMatches: 2,
			PlusStrandMatches:     1,
			ATCGMatches:           1,
		},
	}}

	r := Rank(results)[0]
	if r.NameMatchRate != 0.8 ||
		r.NamePosMatchRate != 0.5 ||
		r.OriginalStrandRate != 0.5 ||
		r.PlusStrandRate != 0.25 ||
		r.ATCGRate != 0.25 {
		t.Errorf("derived rates mismatch: %+v", r)
	}
}
