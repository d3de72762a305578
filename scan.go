package strandmatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/carbocation/pfx"
	"github.com/genotools/strandmatch/strandparser"
)

// ErrNoCandidates indicates that the reference directory produced nothing
// to score, which makes any ranking meaningless.
var ErrNoCandidates = errors.New("no candidate reference files found")

// CandidateResult pairs one discovered reference member (or a whole archive
// that could not be walked) with its stats or the reason it was excluded.
// Exactly one of Stats and Err is meaningful.
type CandidateResult struct {
	Candidate string // empty for archive-level failures
	Archive   string
	Stats     MatchStats
	Err       error
}

// Progress is one event on the verbose-logging channel. Candidate is empty
// for archive-level events; Err is set when something was excluded.
type Progress struct {
	Archive   string
	Candidate string
	Err       error
}

type ScanOptions struct {
	// Workers bounds how many archives are scored in parallel. Zero or
	// negative means runtime.NumCPU().
	Workers int

	// MemberSuffix selects which archive members are candidates.
	// Defaults to DefaultMemberSuffix.
	MemberSuffix string

	// Parser applies a reference-file column layout. Defaults to the
	// DEFAULT layout.
	Parser *strandparser.Parser

	// Progress, when non-nil, receives one event per archive and per
	// candidate. The caller must drain it until Scan returns.
	Progress chan<- Progress
}

// ListArchives returns the zip archives directly inside dir, in name order.
// The walk is deliberately non-recursive.
func ListArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var archives []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		archives = append(archives, filepath.Join(dir, e.Name()))
	}

	return archives, nil
}

// Scan scores every reference member of every archive in dir against idx.
// Each worker owns one archive at a time, walking its members sequentially;
// per-archive result slices are flattened in archive discovery order, so the
// output is identical for any worker count. Scan returns only after every
// candidate has either completed or failed: ranking needs the complete set.
func Scan(dir string, idx *VariantIndex, opts ScanOptions) ([]CandidateResult, error) {
	archives, err := ListArchives(dir)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	suffix := opts.MemberSuffix
	if suffix == "" {
		suffix = DefaultMemberSuffix
	}
	parser := opts.Parser
	if parser == nil {
		parser = strandparser.NewWithLayout(strandparser.Layouts["DEFAULT"])
	}

	perArchive := make([][]CandidateResult, len(archives))
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, archivePath := range archives {
		wg.Add(1)

		// Will block after `workers` simultaneous goroutines are running
		semaphore <- struct{}{}

		go func(i int, archivePath string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			perArchive[i] = scanArchive(archivePath, idx, parser, suffix, opts.Progress)
		}(i, archivePath)
	}

	wg.Wait()

	var results []CandidateResult
	for _, rs := range perArchive {
		results = append(results, rs...)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCandidates, dir)
	}

	return results, nil
}

func scanArchive(archivePath string, idx *VariantIndex, parser *strandparser.Parser, suffix string, progress chan<- Progress) []CandidateResult {
	report := func(p Progress) {
		if progress != nil {
			progress <- p
		}
	}

	arch, err := OpenArchive(archivePath)
	if err != nil {
		report(Progress{Archive: archivePath, Err: err})
		return []CandidateResult{{Archive: archivePath, Err: err}}
	}
	defer arch.Close()

	report(Progress{Archive: archivePath})

	scorer := &MatchScorer{Index: idx, Parser: parser}

	var out []CandidateResult
	for {
		name, body, err := arch.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			// The container is sequential: a broken member header
			// poisons everything after it in this archive.
			report(Progress{Archive: archivePath, Err: err})
			out = append(out, CandidateResult{Archive: archivePath, Err: err})
			break
		}

		if !IsReferenceMember(name, suffix) {
			continue
		}

		stats, err := scorer.Score(name, archivePath, body)
		if err != nil {
			report(Progress{Archive: archivePath, Candidate: name, Err: err})
			out = append(out, CandidateResult{Candidate: name, Archive: archivePath, Err: err})
			continue
		}

		report(Progress{Archive: archivePath, Candidate: name})
		out = append(out, CandidateResult{Candidate: name, Archive: archivePath, Stats: stats})
	}

	return out
}
