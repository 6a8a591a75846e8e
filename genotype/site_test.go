package genotype

import "testing"

func calls(pairs ...[2]Allele) []([2]Allele) { return pairs }

func TestEncodeRoundTrip(t *testing.T) {
	in := calls(
		[2]Allele{Ref, Ref},
		[2]Allele{Ref, Alt},
		[2]Allele{Alt, Alt},
		[2]Allele{Alt, Ref},
		[2]Allele{Missing, Ref},
	)
	s, err := Encode(len(in), in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for i, want := range in {
		a, b := s.At(i)
		if a != want[0] || b != want[1] {
			t.Errorf("At(%d) = (%v,%v), want (%v,%v)", i, a, b, want[0], want[1])
		}
	}
	if !s.GTMissing {
		t.Errorf("GTMissing = false, want true")
	}
	if got, want := s.AC, 4; got != want {
		t.Errorf("AC = %d, want %d", got, want)
	}
}

func TestEncodeLengthMismatch(t *testing.T) {
	if _, err := Encode(2, calls([2]Allele{Ref, Ref})); err == nil {
		t.Fatalf("Encode() error = nil, want mismatch error")
	}
}

func TestEncodeRuns(t *testing.T) {
	in := calls(
		[2]Allele{Ref, Ref},
		[2]Allele{Ref, Ref},
		[2]Allele{Alt, Alt},
		[2]Allele{Alt, Alt},
		[2]Allele{Alt, Alt},
		[2]Allele{Ref, Alt},
	)
	s, err := Encode(len(in), in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []Run{
		{HapA: Ref, HapB: Ref, Length: 2},
		{HapA: Alt, HapB: Alt, Length: 3},
		{HapA: Ref, HapB: Alt, Length: 1},
	}
	if len(s.Runs) != len(want) {
		t.Fatalf("Runs = %+v, want %+v", s.Runs, want)
	}
	for i, r := range want {
		if s.Runs[i] != r {
			t.Errorf("Runs[%d] = %+v, want %+v", i, s.Runs[i], r)
		}
	}
}

func TestEncodeAltAndMissingLists(t *testing.T) {
	in := calls(
		[2]Allele{Ref, Ref},
		[2]Allele{Alt, Ref},
		[2]Allele{Missing, Missing},
		[2]Allele{Ref, Alt},
	)
	s, err := Encode(len(in), in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got, want := s.AltA, []int{1}; !equalInts(got, want) {
		t.Errorf("AltA = %v, want %v", got, want)
	}
	if got, want := s.AltB, []int{3}; !equalInts(got, want) {
		t.Errorf("AltB = %v, want %v", got, want)
	}
	if got, want := s.MissingList, []int{2}; !equalInts(got, want) {
		t.Errorf("MissingList = %v, want %v", got, want)
	}
}

func TestFrontTailZero(t *testing.T) {
	in := calls(
		[2]Allele{Ref, Ref}, [2]Allele{Ref, Ref}, [2]Allele{Ref, Ref}, [2]Allele{Ref, Ref},
		[2]Allele{Alt, Ref},
		[2]Allele{Ref, Ref}, [2]Allele{Ref, Ref}, [2]Allele{Ref, Ref}, [2]Allele{Ref, Ref},
	)
	s, err := Encode(len(in), in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if s.FrontZeroBytes != 1 {
		t.Errorf("FrontZeroBytes = %d, want 1", s.FrontZeroBytes)
	}
	if s.TailZeroBytes != 1 {
		t.Errorf("TailZeroBytes = %d, want 1 (last byte holds only sample 8, REF/REF, plus zero padding)", s.TailZeroBytes)
	}
}

func TestHet(t *testing.T) {
	in := calls([2]Allele{Ref, Alt}, [2]Allele{Alt, Alt}, [2]Allele{Missing, Alt})
	s, err := Encode(len(in), in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !s.Het(0) {
		t.Errorf("Het(0) = false, want true")
	}
	if s.Het(1) {
		t.Errorf("Het(1) = true, want false")
	}
	if s.Het(2) {
		t.Errorf("Het(2) = true, want false (missing call)")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
