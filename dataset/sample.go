package dataset

import (
	"fmt"
	"strings"

	"github.com/medviz/regresslab/survival"
)

// Dataset is the common surface of every generated sample set. Concrete
// dataset types are plain slices with scenario-specific projection helpers
// that feed the estimators.
type Dataset interface {
	// Len returns the number of samples.
	Len() int
	// Scenario identifies the generating scenario.
	Scenario() Scenario
}

// BloodPressureSample is one subject of the simple linear panel.
type BloodPressureSample struct {
	Age        float64
	SystolicBP float64
}

// BloodPressureDataset is an ordered set of blood-pressure samples.
type BloodPressureDataset []BloodPressureSample

func (d BloodPressureDataset) Len() int           { return len(d) }
func (d BloodPressureDataset) Scenario() Scenario { return ScenarioBloodPressure }

// XY projects the dataset to parallel predictor/response series
// (age, systolic blood pressure) for the linear estimator.
func (d BloodPressureDataset) XY() (xs, ys []float64) {
	xs = make([]float64, len(d))
	ys = make([]float64, len(d))
	for i, s := range d {
		xs[i] = s.Age
		ys[i] = s.SystolicBP
	}

	return xs, ys
}

// Predictor selects one independent variable of the risk-factor scenario.
type Predictor int

const (
	PredictorAge Predictor = iota
	PredictorBMI
	PredictorCholesterol
)

var predictorNames = map[Predictor]string{
	PredictorAge:         "age",
	PredictorBMI:         "bmi",
	PredictorCholesterol: "cholesterol",
}

// String returns the string representation of the predictor.
func (p Predictor) String() string {
	if name, exists := predictorNames[p]; exists {
		return name
	}

	return "unknown"
}

// PredictorFromString returns the Predictor for a given string name.
// Returns Predictor(-1) for unknown names.
func PredictorFromString(name string) Predictor {
	for p, n := range predictorNames {
		if n == strings.ToLower(name) {
			return p
		}
	}

	return Predictor(-1)
}

// RiskFactorSample is one subject of the multiple regression panel: three
// predictors and a systolic blood pressure response.
type RiskFactorSample struct {
	Age         float64
	BMI         float64
	Cholesterol float64
	SystolicBP  float64
}

// RiskFactorDataset is an ordered set of risk-factor samples.
type RiskFactorDataset []RiskFactorSample

func (d RiskFactorDataset) Len() int           { return len(d) }
func (d RiskFactorDataset) Scenario() Scenario { return ScenarioRiskFactors }

// XY projects the selected predictor against systolic blood pressure. The
// multiple regression panel fits each predictor independently with the same
// single-factor estimator; no joint multivariate fit is performed.
func (d RiskFactorDataset) XY(p Predictor) (xs, ys []float64, err error) {
	xs = make([]float64, len(d))
	ys = make([]float64, len(d))
	for i, s := range d {
		switch p {
		case PredictorAge:
			xs[i] = s.Age
		case PredictorBMI:
			xs[i] = s.BMI
		case PredictorCholesterol:
			xs[i] = s.Cholesterol
		default:
			return nil, nil, fmt.Errorf("unknown predictor: %d", p)
		}
		ys[i] = s.SystolicBP
	}

	return xs, ys, nil
}

// HeartDiseaseSample is one subject of the logistic panel.
type HeartDiseaseSample struct {
	Age         float64
	Cholesterol float64
	Disease     bool
}

// HeartDiseaseDataset is an ordered set of heart-disease samples.
type HeartDiseaseDataset []HeartDiseaseSample

func (d HeartDiseaseDataset) Len() int           { return len(d) }
func (d HeartDiseaseDataset) Scenario() Scenario { return ScenarioHeartDisease }

// Split partitions the samples into diseased and healthy groups projected to
// (age, cholesterol) pairs, the shape the scatter renderer consumes.
func (d HeartDiseaseDataset) Split() (diseasedX, diseasedY, healthyX, healthyY []float64) {
	for _, s := range d {
		if s.Disease {
			diseasedX = append(diseasedX, s.Age)
			diseasedY = append(diseasedY, s.Cholesterol)
		} else {
			healthyX = append(healthyX, s.Age)
			healthyY = append(healthyY, s.Cholesterol)
		}
	}

	return diseasedX, diseasedY, healthyX, healthyY
}

// CancerSurvivalSample is one subject of the survival panel. Time is in
// months from diagnosis; Censored marks subjects whose observation ended
// before the event.
type CancerSurvivalSample struct {
	Age          float64
	Stage        int
	SurvivalTime float64
	Censored     bool
}

// CancerSurvivalDataset is an ordered set of survival samples, sorted
// ascending by survival time by the generator.
type CancerSurvivalDataset []CancerSurvivalSample

func (d CancerSurvivalDataset) Len() int           { return len(d) }
func (d CancerSurvivalDataset) Scenario() Scenario { return ScenarioCancerSurvival }

// Events projects the dataset into the time-ordered event records the
// Kaplan-Meier estimator consumes.
func (d CancerSurvivalDataset) Events() []survival.Event {
	events := make([]survival.Event, len(d))
	for i, s := range d {
		events[i] = survival.Event{Time: s.SurvivalTime, Censored: s.Censored}
	}

	return events
}

// InfectionSample is one hospital of the Poisson panel.
type InfectionSample struct {
	Beds       float64
	StaffRatio float64
	Infections int
}

// InfectionDataset is an ordered set of infection samples.
type InfectionDataset []InfectionSample

func (d InfectionDataset) Len() int           { return len(d) }
func (d InfectionDataset) Scenario() Scenario { return ScenarioHospitalInfections }

// XY projects bed count against observed infection count for the scatter
// display.
func (d InfectionDataset) XY() (xs, ys []float64) {
	xs = make([]float64, len(d))
	ys = make([]float64, len(d))
	for i, s := range d {
		xs[i] = s.Beds
		ys[i] = float64(s.Infections)
	}

	return xs, ys
}

// CountFrequencies tallies how many hospitals observed each infection count,
// indexed by count. The result always covers 0 through the maximum observed
// count.
func (d InfectionDataset) CountFrequencies() []int {
	if len(d) == 0 {
		return nil
	}

	maxCount := 0
	for _, s := range d {
		if s.Infections > maxCount {
			maxCount = s.Infections
		}
	}

	freq := make([]int, maxCount+1)
	for _, s := range d {
		freq[s.Infections]++
	}

	return freq
}
