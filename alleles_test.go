package strandmatch

import "testing"

func TestMakePairOrderIndependent(t *testing.T) {
	if MakePair("A", "G") != MakePair("G", "A") {
		t.Error("AG and GA should normalize to the same pair")
	}
	if MakePair("AT", "A") != MakePair("A", "AT") {
		t.Error("indel pairs should normalize too")
	}
}

func TestPalindromic(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"A", "T", true},
		{"T", "A", true},
		{"C", "G", true},
		{"G", "C", true},
		{"A", "G", false},
		{"T", "C", false},
		{"A", "A", false},
		{"AT", "A", false},
	}

	for _, test := range tests {
		if got := MakePair(test.a, test.b).Palindromic(); got != test.want {
			t.Errorf("Palindromic(%s/%s) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestFlip(t *testing.T) {
	flipped, ok := MakePair("A", "G").Flip()
	if !ok || flipped != MakePair("T", "C") {
		t.Errorf("A/G should flip to T/C, got %+v ok=%v", flipped, ok)
	}

	// A flipped palindromic pair is itself.
	flipped, ok = MakePair("A", "T").Flip()
	if !ok || flipped != MakePair("A", "T") {
		t.Errorf("A/T should flip to itself, got %+v ok=%v", flipped, ok)
	}

	if _, ok := MakePair("AT", "A").Flip(); ok {
		t.Error("indel codes have no complement")
	}
	if _, ok := MakePair("N", "A").Flip(); ok {
		t.Error("ambiguity codes have no complement")
	}
}
