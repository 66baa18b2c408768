// Package regression provides closed-form ordinary least-squares fitting for
// paired samples.
//
// The estimator computes the slope and intercept of the best-fit line via the
// sum-of-squares method: ssxx (squared deviations of the predictor) and ssxy
// (cross deviations) yield slope = ssxy / ssxx and
// intercept = mean(y) - slope * mean(x). No iterative optimization is
// involved; the fit is exact, deterministic, and O(n).
//
// # Key Behaviors
//
//   - A predictor with zero variance makes the slope mathematically undefined.
//     FitLinear detects this and fails with ErrInvalidInput instead of letting
//     a NaN or Inf escape into chart code.
//   - The same estimator serves the linear panel, the per-factor fits of the
//     multiple-regression panel (one predictor at a time, never jointly), and
//     any other display that needs a straight trend line.
//   - Evaluate additionally reports goodness-of-fit diagnostics (R² and RMSE)
//     computed from the actual residuals.
//
// # Basic Usage
//
//	model, err := regression.Evaluate(xs, ys)
//	if err != nil {
//	    // errors.Is(err, regression.ErrInvalidInput) for degenerate input
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (R²=%.3f)\n", model.Formula, model.RSquared)
//	predicted := model.Fit.Predict(65.0)
package regression
