// strandmatch guesses which genotyping chip a query variant file came from,
// by scoring it against every strand annotation file found inside the zip
// archives of a directory and printing a ranked match-rate table.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"

	"github.com/genotools/strandmatch"
	"github.com/genotools/strandmatch/strandparser"
)

func main() {
	var queryFile, strandDir, outFile, layoutName string
	var workers, topN int
	var verbose bool
	flag.StringVar(&queryFile, "query", "", "Query variant file (PLINK .bim layout) whose chip origin is unknown")
	flag.StringVar(&strandDir, "dir", "", "Directory containing strand archive (.zip) files")
	flag.StringVar(&outFile, "out", "", "Write the ranked table to this file instead of stdout")
	flag.StringVar(&layoutName, "layout", "DEFAULT", "Reference-file column layout. One of: "+strandparser.LayoutNames())
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "Number of archives scored in parallel")
	flag.IntVar(&topN, "top", 0, "After ranking, copy the top N strand files into the working directory")
	flag.BoolVar(&verbose, "verbose", false, "Print progress while scanning")
	flag.Parse()

	if queryFile == "" || strandDir == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(queryFile, strandDir, outFile, layoutName, workers, topN, verbose); err != nil {
		log.Fatalln(err)
	}
}

func run(queryFile, strandDir, outFile, layoutName string, workers, topN int, verbose bool) error {
	parser, err := strandparser.New(layoutName)
	if err != nil {
		return err
	}

	if verbose {
		log.Println("Reading query variant file...")
	}
	q, err := os.Open(queryFile)
	if err != nil {
		return pfx.Err(err)
	}
	idx, err := strandmatch.BuildVariantIndex(q)
	q.Close()
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("%d variants loaded (%d malformed lines skipped)\n", idx.Len(), idx.SkippedLines())
	}

	opts := strandmatch.ScanOptions{Workers: workers, Parser: parser}

	// Workers report progress over a channel consumed here, by exactly one
	// goroutine.
	var progress chan strandmatch.Progress
	var drained chan struct{}
	if verbose {
		progress = make(chan strandmatch.Progress)
		drained = make(chan struct{})
		opts.Progress = progress

		go func() {
			defer close(drained)
			for p := range progress {
				switch {
				case p.Err != nil && p.Candidate != "":
					log.Printf("Excluding %s (%s): %v\n", p.Candidate, p.Archive, p.Err)
				case p.Err != nil:
					log.Printf("Excluding archive %s: %v\n", p.Archive, p.Err)
				case p.Candidate != "":
					log.Printf("Scored %s (%s)\n", p.Candidate, p.Archive)
				default:
					log.Println("Scanning", p.Archive)
				}
			}
		}()
	}

	results, err := strandmatch.Scan(strandDir, idx, opts)
	if progress != nil {
		// Safe: all workers have finished sending by the time Scan returns.
		close(progress)
		<-drained
	}
	if err != nil {
		return err
	}

	ranked := strandmatch.Rank(results)
	if len(ranked) == 0 {
		return fmt.Errorf("every discovered candidate failed to score; see -verbose for causes")
	}

	if verbose {
		summarizeRates(ranked)
	}

	if err := writeTable(ranked, outFile); err != nil {
		return err
	}

	if topN > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return pfx.Err(err)
		}
		if verbose {
			log.Printf("Extracting top %d strand files to %s\n", topN, wd)
		}
		if err := strandmatch.ExtractTop(ranked, topN, wd); err != nil {
			return err
		}
	}

	return nil
}

func summarizeRates(ranked []strandmatch.RankedResult) {
	rates := make([]float64, 0, len(ranked))
	for _, r := range ranked {
		rates = append(rates, r.NameMatchRate)
	}

	min, _ := stats.Min(rates)
	med, _ := stats.Median(rates)
	max, _ := stats.Max(rates)
	log.Printf("Name match rate across %d candidates: min %.4f, median %.4f, max %.4f\n", len(ranked), min, med, max)
}

func writeTable(ranked []strandmatch.RankedResult, outFile string) error {
	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return pfx.Err(err)
		}
		defer f.Close()
		w = f
	}

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		cw := csv.NewWriter(out)
		cw.Comma = '\t'
		return gocsv.NewSafeCSVWriter(cw)
	})

	if err := gocsv.Marshal(&ranked, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}
