package export

import (
	"github.com/medviz/regresslab/regression"
	"github.com/medviz/regresslab/survival"
)

// Scatter builds a scatter series from parallel coordinate slices. Extra
// elements of the longer slice are ignored.
func Scatter(name string, xs, ys []float64) Series {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	return Series{Name: name, Kind: KindScatter, Points: points}
}

// FitLine builds a two-point line series from a fitted model, spanning
// [xmin, xmax]. Two points suffice; the renderer interpolates.
func FitLine(name string, fit regression.FitResult, xmin, xmax float64) Series {
	return Series{
		Name: name,
		Kind: KindLine,
		Points: []Point{
			{X: xmin, Y: fit.Predict(xmin)},
			{X: xmax, Y: fit.Predict(xmax)},
		},
	}
}

// SurvivalStep builds a step series from a Kaplan-Meier curve, carrying the
// censoring flags through for tick-mark rendering.
func SurvivalStep(name string, curve []survival.SurvivalPoint) Series {
	points := make([]Point, len(curve))
	for i, pt := range curve {
		points[i] = Point{X: pt.Time, Y: pt.Probability, Censored: pt.Censored}
	}

	return Series{Name: name, Kind: KindStep, Points: points}
}

// Counts builds a bar series from count frequencies: bar i sits at x=i with
// height freq[i].
func Counts(name string, freq []int) Series {
	points := make([]Point, len(freq))
	for i, c := range freq {
		points[i] = Point{X: float64(i), Y: float64(c)}
	}

	return Series{Name: name, Kind: KindBars, Points: points}
}
