package gtsimd

import "testing"

func TestCountAllRef(t *testing.T) {
	const n = 64
	a := make([]byte, n)
	b := make([]byte, n)
	ma := make([]byte, n)
	mb := make([]byte, n)

	t.Run("unmasked", func(t *testing.T) {
		got := Count(a, ma, b, mb, 0, n, false)
		want := JointCounts{RefRef: uint64(n * 8)}
		if got != want {
			t.Errorf("Count() = %+v, want %+v", got, want)
		}
	})

	t.Run("masked_no_missing", func(t *testing.T) {
		got := Count(a, ma, b, mb, 0, n, true)
		want := JointCounts{RefRef: uint64(n * 8)}
		if got != want {
			t.Errorf("Count() = %+v, want %+v", got, want)
		}
	})
}

func TestCountAllAlt(t *testing.T) {
	const n = 40
	a := make([]byte, n)
	b := make([]byte, n)
	for i := range a {
		a[i] = 0xFF
		b[i] = 0xFF
	}
	ma := make([]byte, n)
	mb := make([]byte, n)

	got := Count(a, ma, b, mb, 0, n, false)
	want := JointCounts{AltAlt: uint64(n * 8)}
	if got != want {
		t.Errorf("Count() = %+v, want %+v", got, want)
	}
}

func TestCountDiscordant(t *testing.T) {
	const n = 24
	a := make([]byte, n)
	b := make([]byte, n)
	for i := range a {
		a[i] = 0xFF
		b[i] = 0x00
	}
	ma := make([]byte, n)
	mb := make([]byte, n)

	got := Count(a, ma, b, mb, 0, n, false)
	// Bits set in A and clear in B fall in the REFALT mask (A ⊕ B) ∧ A.
	want := JointCounts{RefAlt: uint64(n * 8)}
	if got != want {
		t.Errorf("Count() = %+v, want %+v", got, want)
	}
}

func TestCountMissingMasksOutCell(t *testing.T) {
	const n = 8
	a := make([]byte, n)
	b := make([]byte, n)
	for i := range a {
		a[i] = 0xFF
		b[i] = 0xFF
	}
	ma := make([]byte, n)
	mb := make([]byte, n)
	// Mark every bit of the first byte missing on site A.
	ma[0] = 0xFF

	gotMasked := Count(a, ma, b, mb, 0, n, true)
	wantMasked := JointCounts{AltAlt: uint64((n - 1) * 8)}
	if gotMasked != wantMasked {
		t.Errorf("masked Count() = %+v, want %+v", gotMasked, wantMasked)
	}

	gotUnmasked := Count(a, ma, b, mb, 0, n, false)
	wantUnmasked := JointCounts{AltAlt: uint64(n * 8)}
	if gotUnmasked != wantUnmasked {
		t.Errorf("unmasked Count() = %+v, want %+v", gotUnmasked, wantUnmasked)
	}
}

func TestCountOddLengthRemainder(t *testing.T) {
	// Exercise the byte-at-a-time remainder path: a length that isn't a
	// multiple of 8.
	const n = 11
	a := make([]byte, n)
	b := make([]byte, n)
	for i := range a {
		a[i] = 0xFF
	}
	ma := make([]byte, n)
	mb := make([]byte, n)

	got := Count(a, ma, b, mb, 0, n, false)
	want := JointCounts{RefAlt: uint64(n * 8)}
	if got != want {
		t.Errorf("Count() = %+v, want %+v", got, want)
	}
}

func TestEdgeCorrection(t *testing.T) {
	got := EdgeCorrection(2, 3, 4, 0)
	want := uint64((2 + 3) * 4 * 2)
	if got != want {
		t.Errorf("EdgeCorrection() = %d, want %d", got, want)
	}
}
