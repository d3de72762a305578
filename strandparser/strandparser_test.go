package strandparser

import (
	"errors"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	parser, err := New("DEFAULT")
	if err != nil {
		t.Error(err)
	}

	rec, err := parser.ParseLine("rs100\t1\t751756\t+\tAG\textra\tcolumns")
	if err != nil {
		t.Error(err)
	}
	if rec.VariantID != "rs100" ||
		rec.Chromosome != "1" ||
		rec.Position != 751756 ||
		rec.Strand != "+" ||
		rec.AlleleA != "A" ||
		rec.AlleleB != "G" {
		t.Errorf("Mismatch: %+v", rec)
	}
}

func TestRaynerLayout(t *testing.T) {
	parser, err := New("RAYNER")
	if err != nil {
		t.Error(err)
	}

	rec, err := parser.ParseLine("rs100 1 751756 100 - TC")
	if err != nil {
		t.Error(err)
	}
	if rec.Strand != "-" || rec.AlleleA != "T" || rec.AlleleB != "C" {
		t.Errorf("Mismatch: %+v", rec)
	}
}

func TestUnknownLayout(t *testing.T) {
	if _, err := New("NOPE"); err == nil {
		t.Error("unknown layout name should fail")
	}
}

func TestParseLineMalformed(t *testing.T) {
	parser := NewWithLayout(Layouts["DEFAULT"])

	for _, line := range []string{
		"rs100 1 751756 +",        // too few fields
		"rs100 1 notanumber + AG", // bad position
		"",                        // empty
	} {
		if _, err := parser.ParseLine(line); !errors.Is(err, ErrMalformed) {
			t.Errorf("line %q: want ErrMalformed, got %v", line, err)
		}
	}
}

func TestParseLineOddAnnotations(t *testing.T) {
	parser := NewWithLayout(Layouts["DEFAULT"])

	// Unrecognized strand annotation maps to unknown.
	rec, err := parser.ParseLine("rs100 1 751756 ? AG")
	if err != nil {
		t.Error(err)
	}
	if rec.Strand != "" {
		t.Errorf("want unknown strand, got %q", rec.Strand)
	}

	// A non-biallelic annotation is kept whole in AlleleA.
	rec, err = parser.ParseLine("rs100 1 751756 + ACGT")
	if err != nil {
		t.Error(err)
	}
	if rec.AlleleA != "ACGT" || rec.AlleleB != "" {
		t.Errorf("want whole annotation in AlleleA, got %+v", rec)
	}
}
