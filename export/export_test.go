package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medviz/regresslab/compress"
	"github.com/medviz/regresslab/regression"
	"github.com/medviz/regresslab/survival"
)

func samplePayload() *Payload {
	return &Payload{
		Scenario: "blood-pressure",
		Series: []Series{
			Scatter("samples", []float64{1, 2, 3}, []float64{2, 4, 6}),
			FitLine("fit", regression.FitResult{Slope: 2, Intercept: 0}, 1, 3),
		},
		Stats: &Stats{RSquared: 1, RMSE: 0},
	}
}

func TestScatter(t *testing.T) {
	s := Scatter("pts", []float64{1, 2}, []float64{10, 20})
	require.Equal(t, KindScatter, s.Kind)
	require.Len(t, s.Points, 2)
	assert.Equal(t, Point{X: 2, Y: 20}, s.Points[1])

	// Mismatched lengths truncate to the shorter slice.
	s = Scatter("pts", []float64{1, 2, 3}, []float64{10})
	require.Len(t, s.Points, 1)
}

func TestFitLine(t *testing.T) {
	fit := regression.FitResult{Slope: 0.5, Intercept: 90}
	s := FitLine("trend", fit, 20, 80)

	require.Equal(t, KindLine, s.Kind)
	require.Len(t, s.Points, 2)
	assert.InDelta(t, 100.0, s.Points[0].Y, 1e-12)
	assert.InDelta(t, 130.0, s.Points[1].Y, 1e-12)
}

func TestSurvivalStep(t *testing.T) {
	curve := survival.KaplanMeier([]survival.Event{
		{Time: 1}, {Time: 2, Censored: true}, {Time: 3},
	})

	s := SurvivalStep("survival", curve)
	require.Equal(t, KindStep, s.Kind)
	require.Len(t, s.Points, 3)
	assert.True(t, s.Points[1].Censored)
	assert.InDelta(t, s.Points[0].Y, s.Points[1].Y, 1e-12, "censored point holds the level")
}

func TestCounts(t *testing.T) {
	s := Counts("infections", []int{5, 12, 9, 0, 1})
	require.Equal(t, KindBars, s.Kind)
	require.Len(t, s.Points, 5)
	assert.Equal(t, Point{X: 1, Y: 12}, s.Points[1])
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, typ := range []compress.Type{compress.TypeNone, compress.TypeZstd, compress.TypeS2, compress.TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			p := samplePayload()

			data, err := Marshal(p, WithCompression(typ))
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(data), 2)

			got, err := Unmarshal(data)
			require.NoError(t, err)
			require.Equal(t, p, got)
		})
	}
}

func TestMarshal_DefaultIsUncompressed(t *testing.T) {
	data, err := Marshal(samplePayload())
	require.NoError(t, err)
	assert.EqualValues(t, compress.TypeNone, data[1])
}

func TestMarshal_NilPayload(t *testing.T) {
	_, err := Marshal(nil)
	require.Error(t, err)
}

func TestMarshal_InvalidCompression(t *testing.T) {
	_, err := Marshal(samplePayload(), WithCompression(compress.Type(77)))
	require.Error(t, err)
}

func TestUnmarshal_BadInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte{payloadMagic}},
		{"bad magic", []byte{0x00, 0x00, '{', '}'}},
		{"bad codec byte", []byte{payloadMagic, 0xFF, '{', '}'}},
		{"bad body", []byte{payloadMagic, byte(compress.TypeNone), 'n', 'o'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			require.Error(t, err)
		})
	}
}

func TestStats_IllustrativeFlagSurvivesRoundTrip(t *testing.T) {
	p := &Payload{
		Scenario: "heart-disease",
		Series:   []Series{Scatter("diseased", nil, nil)},
		Stats:    &Stats{AUC: 0.82, Illustrative: true},
	}

	data, err := Marshal(p)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.NotNil(t, got.Stats)
	assert.True(t, got.Stats.Illustrative)
	assert.InDelta(t, 0.82, got.Stats.AUC, 1e-12)
}
