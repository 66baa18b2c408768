// Package regresslab is a seedable statistics core for teaching regression
// intuition on synthetic medical datasets.
//
// The module backs an educational application covering five regression
// families: simple linear, multiple (fitted one factor at a time), logistic,
// Cox / Kaplan-Meier survival, and Poisson counts. Each family has a
// synthetic dataset scenario, and the closed-form estimators behind the
// charts live in their own packages:
//
//   - dataset: seedable synthetic sample generators per scenario
//   - regression: ordinary least-squares line fitting with diagnostics
//   - survival: the Kaplan-Meier product-limit estimator
//   - sampling: uniform/Bernoulli/Poisson draw primitives
//   - export: serializable chart payloads for the presentation layer
//
// Everything is pure and deterministic for a given seed: no persistence, no
// global state, and no shared mutable state across calls, so all entry
// points are safe for concurrent use.
//
// # Basic Usage
//
// Building one chart for a renderer:
//
//	payload, err := regresslab.ChartPayload(dataset.ScenarioBloodPressure, 100, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := export.Marshal(payload, export.WithCompression(compress.TypeZstd))
//	// hand data to the chart renderer
//
// For finer control, call the packages directly:
//
//	d, _ := dataset.GenerateBloodPressure(100, 42)
//	xs, ys := d.XY()
//	model, err := regression.Evaluate(xs, ys)
package regresslab

import (
	"fmt"
	"math/rand"

	"github.com/medviz/regresslab/dataset"
	"github.com/medviz/regresslab/export"
	"github.com/medviz/regresslab/internal/seed"
	"github.com/medviz/regresslab/regression"
	"github.com/medviz/regresslab/sampling"
	"github.com/medviz/regresslab/survival"
)

// ChartPayload generates the dataset for a scenario, runs its estimator, and
// assembles the chart payload the presentation layer renders. It is the
// one-call form of the generate -> estimate -> export pipeline; equal
// (scenario, n, seed) inputs always produce equal payloads.
//
// The risk-factor scenario is fitted against its default predictor (age);
// use RiskFactorPayload to select another factor.
//
// Parameters:
//   - scenario: Which teaching chart to build
//   - n: Number of synthetic samples
//   - rngSeed: Seed for dataset generation and placeholder statistics
//
// Returns:
//   - *export.Payload: Complete chart payload
//   - error: Generation or estimation failure (e.g. a degenerate fit)
func ChartPayload(scenario dataset.Scenario, n int, rngSeed int64) (*export.Payload, error) {
	switch scenario {
	case dataset.ScenarioBloodPressure:
		return bloodPressurePayload(n, rngSeed)
	case dataset.ScenarioRiskFactors:
		return RiskFactorPayload(dataset.PredictorAge, n, rngSeed)
	case dataset.ScenarioHeartDisease:
		return heartDiseasePayload(n, rngSeed)
	case dataset.ScenarioCancerSurvival:
		return cancerSurvivalPayload(n, rngSeed)
	case dataset.ScenarioHospitalInfections:
		return hospitalInfectionsPayload(n, rngSeed)
	default:
		return nil, fmt.Errorf("unknown scenario: %d", scenario)
	}
}

// RiskFactorPayload builds the multiple-regression chart for one selected
// predictor. Each predictor is fitted independently against systolic blood
// pressure with the same single-factor estimator.
func RiskFactorPayload(predictor dataset.Predictor, n int, rngSeed int64) (*export.Payload, error) {
	d, err := dataset.GenerateRiskFactors(n, rngSeed)
	if err != nil {
		return nil, err
	}

	xs, ys, err := d.XY(predictor)
	if err != nil {
		return nil, err
	}

	model, err := regression.Evaluate(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("fitting %s: %w", predictor, err)
	}

	lo, hi := bounds(xs)

	return &export.Payload{
		Scenario: dataset.ScenarioRiskFactors.String(),
		Series: []export.Series{
			export.Scatter(predictor.String(), xs, ys),
			export.FitLine("fit", model.Fit, lo, hi),
		},
		Stats: &export.Stats{RSquared: model.RSquared, RMSE: model.RMSE},
	}, nil
}

func bloodPressurePayload(n int, rngSeed int64) (*export.Payload, error) {
	d, err := dataset.GenerateBloodPressure(n, rngSeed)
	if err != nil {
		return nil, err
	}

	xs, ys := d.XY()
	model, err := regression.Evaluate(xs, ys)
	if err != nil {
		return nil, err
	}

	lo, hi := bounds(xs)

	return &export.Payload{
		Scenario: dataset.ScenarioBloodPressure.String(),
		Series: []export.Series{
			export.Scatter("samples", xs, ys),
			export.FitLine("fit", model.Fit, lo, hi),
		},
		Stats: &export.Stats{RSquared: model.RSquared, RMSE: model.RMSE},
	}, nil
}

func heartDiseasePayload(n int, rngSeed int64) (*export.Payload, error) {
	d, err := dataset.GenerateHeartDisease(n, rngSeed)
	if err != nil {
		return nil, err
	}

	diseasedX, diseasedY, healthyX, healthyY := d.Split()

	stats := placeholderStats()
	stats.AUC = 0.7 + sampling.Uniform(placeholderRand(rngSeed, "auc"), 0, 0.25)

	return &export.Payload{
		Scenario: dataset.ScenarioHeartDisease.String(),
		Series: []export.Series{
			export.Scatter("diseased", diseasedX, diseasedY),
			export.Scatter("healthy", healthyX, healthyY),
		},
		Stats: stats,
	}, nil
}

func cancerSurvivalPayload(n int, rngSeed int64) (*export.Payload, error) {
	d, err := dataset.GenerateCancerSurvival(n, rngSeed)
	if err != nil {
		return nil, err
	}

	curve := survival.KaplanMeier(d.Events())

	stats := placeholderStats()
	stats.PValue = sampling.Uniform(placeholderRand(rngSeed, "p-value"), 0.001, 0.05)

	return &export.Payload{
		Scenario: dataset.ScenarioCancerSurvival.String(),
		Series: []export.Series{
			export.SurvivalStep("survival", curve),
		},
		Stats: stats,
	}, nil
}

func hospitalInfectionsPayload(n int, rngSeed int64) (*export.Payload, error) {
	d, err := dataset.GenerateHospitalInfections(n, rngSeed)
	if err != nil {
		return nil, err
	}

	xs, ys := d.XY()

	stats := placeholderStats()
	stats.Dispersion = 0.8 + sampling.Uniform(placeholderRand(rngSeed, "dispersion"), 0, 0.4)

	return &export.Payload{
		Scenario: dataset.ScenarioHospitalInfections.String(),
		Series: []export.Series{
			export.Scatter("hospitals", xs, ys),
			export.Counts("count-frequencies", d.CountFrequencies()),
		},
		Stats: stats,
	}, nil
}

// placeholderStats starts an explicitly illustrative statistics panel. The
// non-linear panels of the source material display numbers (AUC, p-values,
// dispersion) that are not computed from the data; they are kept for display
// parity but flagged so renderers must badge them as illustrative.
func placeholderStats() *export.Stats {
	return &export.Stats{Illustrative: true}
}

// placeholderRand derives a deterministic stream for one placeholder value,
// keeping payloads reproducible per seed.
func placeholderRand(rngSeed int64, name string) *rand.Rand {
	return rand.New(rand.NewSource(seed.Stream(rngSeed, "placeholder-"+name)))
}

// bounds returns the min and max of values; callers guarantee at least one
// element via the estimator's own input validation.
func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
