package analysis

import (
	"fmt"
	"math"

	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/sphere"
)

// Report summarizes the difference between two point sets.
type Report struct {
	// Points is the number of compared points.
	Points int
	// RMSE is the root mean square of the per-point Euclidean distances.
	RMSE float64
	// MaxDeviation is the largest per-point distance.
	MaxDeviation float64
	// MaxDeviationIndex is the index of MaxDeviation, or -1 for empty input.
	MaxDeviationIndex int
	// MaxResidual is the largest | |p|² - 1 | over the recovered points.
	MaxResidual float64
}

// Exact reports whether every point matched within tolerance.
func (r Report) Exact(tolerance float64) bool {
	return r.MaxDeviation <= tolerance
}

// String returns a one-line summary.
func (r Report) String() string {
	return fmt.Sprintf("points=%d rmse=%.3g max_dev=%.3g@%d max_residual=%.3g",
		r.Points, r.RMSE, r.MaxDeviation, r.MaxDeviationIndex, r.MaxResidual)
}

// Compare computes a Report for recovered against original.
//
// Parameters:
//   - original: Points produced by the sphere mapper
//   - recovered: Points produced by the inverse projection
//
// Returns:
//   - Report: Deviation statistics
//   - error: errs.ErrLengthMismatch if the sets differ in size or are malformed
//
// Example:
//
//	report, err := analysis.Compare(enc.Sphere, recovered)
//	if err != nil {
//	    return err
//	}
//	if !report.Exact(1e-9) {
//	    log.Printf("lossy round trip: %s", report)
//	}
func Compare(original, recovered sphere.Points) (Report, error) {
	if err := original.Validate(); err != nil {
		return Report{}, err
	}
	if err := recovered.Validate(); err != nil {
		return Report{}, err
	}
	if original.Len() != recovered.Len() {
		return Report{}, fmt.Errorf("%w: original=%d recovered=%d",
			errs.ErrLengthMismatch, original.Len(), recovered.Len())
	}

	n := original.Len()
	report := Report{Points: n, MaxDeviationIndex: -1}
	if n == 0 {
		return report, nil
	}

	sumSq := 0.0
	for i := range n {
		d := recovered.At(i).Sub(original.At(i)).Norm()
		sumSq += d * d
		if report.MaxDeviationIndex < 0 || d > report.MaxDeviation {
			report.MaxDeviation = d
			report.MaxDeviationIndex = i
		}
	}

	report.RMSE = math.Sqrt(sumSq / float64(n))
	report.MaxResidual = recovered.MaxResidual(sphere.Radius)

	return report, nil
}

// ValueMismatches returns the indices where a and b differ. Indices present
// in only one slice count as mismatches.
func ValueMismatches(a, b []int64) []int {
	var out []int
	for i := range max(len(a), len(b)) {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			out = append(out, i)
		}
	}

	return out
}
