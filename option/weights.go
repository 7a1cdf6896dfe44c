package option

import "math"

// WeightLogQuantum is the multiple weight_log_sum is rounded to after
// every subtraction, bounding float32 drift across a long resolve.
const WeightLogQuantum = 1e-5

// EntropyNoiseRange is the upper bound (exclusive) of the per-cell
// entropy tiebreak noise sampled once at cell construction:
// ε = 0.00001 * 124 ≈ 1.24e-3. A distinct constant from WeightLogQuantum
// despite both being loosely called "ε".
const EntropyNoiseRange = 0.00001 * 124

// Weights is a per-option (count, weight_log) pair: count is the raw
// observation count from FrequencyHints, weight_log is
// count * log2(count), precomputed once so the entropy formula never
// recomputes a logarithm per cell.
type Weights struct {
	Count     uint32
	WeightLog float32
}

// NewWeights builds a Weights from an observed count. count must be > 0;
// log2(0) is undefined, and FrequencyHints never records a zero count.
func NewWeights(count uint32) Weights {
	return Weights{Count: count, WeightLog: float32(float64(count) * math.Log2(float64(count)))}
}

// Add returns the componentwise sum of w and o.
func (w Weights) Add(o Weights) Weights {
	return Weights{Count: w.Count + o.Count, WeightLog: w.WeightLog + o.WeightLog}
}

// Sub returns the componentwise difference w - o, then rounds WeightLog
// to the nearest multiple of WeightLogQuantum, as closely as float32 can
// represent it.
func (w Weights) Sub(o Weights) Weights {
	out := Weights{Count: w.Count - o.Count, WeightLog: w.WeightLog - o.WeightLog}
	out.WeightLog = quantize(out.WeightLog, WeightLogQuantum)

	return out
}

func quantize(v float32, q float32) float32 {
	return float32(math.Round(float64(v)/float64(q))) * q
}
