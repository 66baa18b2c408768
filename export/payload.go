package export

// SeriesKind tells the renderer how to draw a series.
type SeriesKind string

const (
	// KindScatter draws individual sample points.
	KindScatter SeriesKind = "scatter"
	// KindLine draws a straight line through the points.
	KindLine SeriesKind = "line"
	// KindStep draws a step function, stepping at each point.
	KindStep SeriesKind = "step"
	// KindBars draws vertical bars, one per point.
	KindBars SeriesKind = "bars"
)

// Point is one plotted coordinate. Censored marks survival-curve points that
// renderers conventionally draw as tick marks.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Censored bool    `json:"censored,omitempty"`
}

// Series is one drawable layer of a chart.
type Series struct {
	Name   string     `json:"name"`
	Kind   SeriesKind `json:"kind"`
	Points []Point    `json:"points"`
}

// Stats is the statistics panel attached to a chart.
//
// When Illustrative is false the populated fields were computed from the
// plotted data. When true they are display placeholders with no statistical
// meaning, and the renderer must label them accordingly.
type Stats struct {
	RSquared   float64 `json:"rSquared,omitempty"`
	RMSE       float64 `json:"rmse,omitempty"`
	PValue     float64 `json:"pValue,omitempty"`
	AUC        float64 `json:"auc,omitempty"`
	Dispersion float64 `json:"dispersion,omitempty"`

	Illustrative bool `json:"illustrative"`
}

// Payload is one complete chart: its scenario, drawable series, and optional
// statistics panel.
type Payload struct {
	Scenario string   `json:"scenario"`
	Series   []Series `json:"series"`
	Stats    *Stats   `json:"stats,omitempty"`
}
