package regresslab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medviz/regresslab/compress"
	"github.com/medviz/regresslab/dataset"
	"github.com/medviz/regresslab/export"
)

func TestChartPayload_AllScenarios(t *testing.T) {
	for _, s := range dataset.Scenarios() {
		t.Run(s.String(), func(t *testing.T) {
			p, err := ChartPayload(s, 100, 42)
			require.NoError(t, err)
			require.Equal(t, s.String(), p.Scenario)
			require.NotEmpty(t, p.Series)
			require.NotNil(t, p.Stats)
		})
	}
}

func TestChartPayload_UnknownScenario(t *testing.T) {
	_, err := ChartPayload(dataset.Scenario(42), 100, 1)
	require.Error(t, err)
}

func TestChartPayload_Deterministic(t *testing.T) {
	for _, s := range dataset.Scenarios() {
		t.Run(s.String(), func(t *testing.T) {
			a, err := ChartPayload(s, 50, 7)
			require.NoError(t, err)
			b, err := ChartPayload(s, 50, 7)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestChartPayload_LinearPanelsComputeRealStats(t *testing.T) {
	for _, s := range []dataset.Scenario{dataset.ScenarioBloodPressure, dataset.ScenarioRiskFactors} {
		t.Run(s.String(), func(t *testing.T) {
			p, err := ChartPayload(s, 100, 3)
			require.NoError(t, err)

			require.NotNil(t, p.Stats)
			assert.False(t, p.Stats.Illustrative, "linear diagnostics are computed, not placeholders")
			assert.Greater(t, p.Stats.RMSE, 0.0)
			assert.GreaterOrEqual(t, p.Stats.RSquared, 0.0)
			assert.LessOrEqual(t, p.Stats.RSquared, 1.0)
		})
	}
}

func TestChartPayload_PlaceholdersAreFlagged(t *testing.T) {
	for _, s := range []dataset.Scenario{
		dataset.ScenarioHeartDisease,
		dataset.ScenarioCancerSurvival,
		dataset.ScenarioHospitalInfections,
	} {
		t.Run(s.String(), func(t *testing.T) {
			p, err := ChartPayload(s, 100, 3)
			require.NoError(t, err)
			require.NotNil(t, p.Stats)
			assert.True(t, p.Stats.Illustrative, "non-linear panel numbers must be badged illustrative")
		})
	}
}

func TestChartPayload_SurvivalCurveShape(t *testing.T) {
	p, err := ChartPayload(dataset.ScenarioCancerSurvival, 100, 11)
	require.NoError(t, err)

	require.Len(t, p.Series, 1)
	step := p.Series[0]
	require.Equal(t, export.KindStep, step.Kind)
	require.Len(t, step.Points, 100)

	prev := 1.0
	for i, pt := range step.Points {
		assert.LessOrEqual(t, pt.Y, prev+1e-12, "point %d must not rise", i)
		prev = pt.Y
	}
}

func TestChartPayload_DegenerateFitSurfaces(t *testing.T) {
	// A single sample cannot be fitted; the error must reach the caller
	// instead of a payload with non-finite numbers.
	_, err := ChartPayload(dataset.ScenarioBloodPressure, 1, 5)
	require.Error(t, err)
}

func TestRiskFactorPayload_PerPredictor(t *testing.T) {
	seen := map[float64]bool{}
	for _, pred := range []dataset.Predictor{
		dataset.PredictorAge, dataset.PredictorBMI, dataset.PredictorCholesterol,
	} {
		p, err := RiskFactorPayload(pred, 100, 9)
		require.NoError(t, err)
		require.Len(t, p.Series, 2)
		require.Equal(t, pred.String(), p.Series[0].Name)
		seen[p.Stats.RSquared] = true
	}

	assert.Greater(t, len(seen), 1, "different predictors should fit differently")

	_, err := RiskFactorPayload(dataset.Predictor(9), 100, 9)
	require.Error(t, err)
}

func TestChartPayload_MarshalRoundTrip(t *testing.T) {
	p, err := ChartPayload(dataset.ScenarioHospitalInfections, 100, 13)
	require.NoError(t, err)

	data, err := export.Marshal(p, export.WithCompression(compress.TypeS2))
	require.NoError(t, err)

	got, err := export.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, p, got)
}
