package ldtable

import "github.com/tomahawk-go/ldcore/genotype"

// Strategy identifies which accumulation algorithm produced a table.
type Strategy int

const (
	StrategyBitVector Strategy = iota
	StrategyRunLength
	StrategySparseList
)

func (s Strategy) String() string {
	switch s {
	case StrategyBitVector:
		return "bitvector"
	case StrategyRunLength:
		return "runlength"
	case StrategySparseList:
		return "sparselist"
	default:
		return "unknown"
	}
}

// Thresholds below which the cheaper sparse-list and run-length
// strategies outperform a flat bit-vector scan. Tuned for typical
// biobank-scale allele frequencies; see DESIGN.md for the reasoning.
const (
	sparseListMaxEntries = 60
	runLengthMaxRuns     = 40
)

// SelectPhased picks the cheapest strategy for a phased pair and returns
// the table, which strategy produced it, and any error from that
// strategy (only the run-length strategy can fail, on a desynced walk).
func SelectPhased(a, b *genotype.Site, withMissing bool) (Phased, Strategy, error) {
	if len(a.AltA)+len(a.AltB)+len(b.AltA)+len(b.AltB) < sparseListMaxEntries {
		return SparseListPhased(a, b, withMissing), StrategySparseList, nil
	}
	if len(a.Runs)+len(b.Runs) < runLengthMaxRuns {
		p, err := RunLengthPhased(a, b, withMissing)
		return p, StrategyRunLength, err
	}
	return BitVectorPhased(a, b, withMissing), StrategyBitVector, nil
}

// SelectUnphased picks the cheapest strategy for an unphased pair.
// Sparse-list reconstruction of the full 3x3 genotype-class table from
// ALT/missing position lists alone is not well defined (it cannot
// recover which samples are heterozygous without a third list), so
// unphased pairs only ever choose between run-length and bit-vector.
func SelectUnphased(a, b *genotype.Site) (Unphased, Strategy, error) {
	if len(a.Runs)+len(b.Runs) < runLengthMaxRuns {
		u, err := RunLengthUnphased(a, b)
		return u, StrategyRunLength, err
	}
	return BitVectorUnphased(a, b), StrategyBitVector, nil
}
