package regression

import (
	"fmt"
	"math"
)

// Model bundles a fitted line with its goodness-of-fit diagnostics.
//
// Fields:
//   - Fit: The fitted slope and intercept
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error of the residuals (lower is better)
//   - Formula: Human-readable representation of the fitted line
type Model struct {
	Fit      FitResult
	RSquared float64
	RMSE     float64
	Formula  string
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{R²: %.4f, RMSE: %.4f, Formula: %s}", m.RSquared, m.RMSE, m.Formula)
}

// Evaluate fits a least-squares line and computes its diagnostics in one
// call. It is the entry point chart code uses: the returned R² and RMSE are
// derived from the actual residuals, not fabricated display values.
//
// Parameters:
//   - xs: Predictor values
//   - ys: Response values, parallel to xs
//
// Returns:
//   - *Model: Fitted model with diagnostics
//   - error: Wraps ErrInvalidInput for degenerate input (see FitLinear)
func Evaluate(xs, ys []float64) (*Model, error) {
	fit, err := FitLinear(xs, ys)
	if err != nil {
		return nil, err
	}

	predicted := make([]float64, len(xs))
	for i := range xs {
		predicted[i] = fit.Predict(xs[i])
	}

	return &Model{
		Fit:      fit,
		RSquared: rSquared(ys, predicted),
		RMSE:     rootMeanSquareError(ys, predicted),
		Formula:  fit.Formula(),
	}, nil
}

// rSquared calculates the coefficient of determination.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squared residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// A constant response (SS_tot = 0) yields 0.
func rSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// rootMeanSquareError calculates the standard deviation of the residuals.
func rootMeanSquareError(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// calculateMean calculates the arithmetic mean, 0 for an empty slice.
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
