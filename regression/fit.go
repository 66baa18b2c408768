package regression

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports input an ordinary least-squares fit is undefined
// for: mismatched series, fewer than two samples, or a predictor with zero
// variance. Callers typically respond by disabling the affected chart.
var ErrInvalidInput = errors.New("invalid regression input")

// FitResult holds the parameters of a fitted line y = intercept + slope*x.
type FitResult struct {
	Slope     float64
	Intercept float64
}

// FitLinear computes the ordinary least-squares line through the paired
// samples (xs[i], ys[i]) using the sum-of-squares method.
//
// The input series must have equal length M >= 2 and at least two distinct
// x values. Degenerate input fails with an error wrapping ErrInvalidInput;
// the result is never populated with non-finite values.
//
// Parameters:
//   - xs: Predictor values
//   - ys: Response values, parallel to xs
//
// Returns:
//   - FitResult: Fitted slope and intercept
//   - error: Wraps ErrInvalidInput for degenerate input
func FitLinear(xs, ys []float64) (FitResult, error) {
	if len(xs) != len(ys) {
		return FitResult{}, fmt.Errorf("%w: mismatched series lengths %d vs %d", ErrInvalidInput, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return FitResult{}, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidInput, len(xs))
	}

	n := float64(len(xs))

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var ssxx, ssxy float64
	for i := range xs {
		dx := xs[i] - meanX
		ssxx += dx * dx
		ssxy += dx * (ys[i] - meanY)
	}

	if ssxx == 0 {
		return FitResult{}, fmt.Errorf("%w: predictor has zero variance", ErrInvalidInput)
	}

	slope := ssxy / ssxx

	return FitResult{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// Predict evaluates the fitted line at x.
func (r FitResult) Predict(x float64) float64 {
	return r.Intercept + r.Slope*x
}

// Formula returns a human-readable representation of the fitted line.
func (r FitResult) Formula() string {
	return fmt.Sprintf("y = %.2f + %.2f*x", r.Intercept, r.Slope)
}
