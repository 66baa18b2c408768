package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/medviz/regresslab/internal/options"
	"github.com/medviz/regresslab/internal/seed"
	"github.com/medviz/regresslab/sampling"
)

// Generate produces a Dataset of n samples for the given scenario, drawn
// deterministically from the given seed.
//
// Parameters:
//   - scenario: Which teaching dataset to generate
//   - n: Number of samples (0 yields an empty dataset)
//   - rngSeed: Seed for the scenario's random stream
//   - opts: Generation tunables, e.g. WithNoiseScale
//
// Returns:
//   - Dataset: Concrete dataset for the scenario (e.g. BloodPressureDataset)
//   - error: Unknown scenario, negative n, or invalid option
func Generate(scenario Scenario, n int, rngSeed int64, opts ...Option) (Dataset, error) {
	switch scenario {
	case ScenarioBloodPressure:
		return GenerateBloodPressure(n, rngSeed, opts...)
	case ScenarioRiskFactors:
		return GenerateRiskFactors(n, rngSeed, opts...)
	case ScenarioHeartDisease:
		return GenerateHeartDisease(n, rngSeed, opts...)
	case ScenarioCancerSurvival:
		return GenerateCancerSurvival(n, rngSeed, opts...)
	case ScenarioHospitalInfections:
		return GenerateHospitalInfections(n, rngSeed, opts...)
	default:
		return nil, fmt.Errorf("unknown scenario: %d", scenario)
	}
}

// newStream builds the scenario's private random stream. Folding the scenario
// name into the seed keeps equal caller seeds from producing correlated draws
// across scenarios.
func newStream(scenario Scenario, rngSeed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed.Stream(rngSeed, scenario.String())))
}

func applyOptions(n int, opts []Option) (genConfig, error) {
	if n < 0 {
		return genConfig{}, fmt.Errorf("sample count must not be negative, got %d", n)
	}

	cfg := defaultGenConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return genConfig{}, err
	}

	return cfg, nil
}

// GenerateBloodPressure generates the simple linear panel's dataset. The
// signal rises with the generation index while age is drawn independently,
// giving the scatter its characteristic upward drift:
//
//	age = 20 + U(0,60)
//	bp  = 90 + i/2 + U(0,30)
func GenerateBloodPressure(n int, rngSeed int64, opts ...Option) (BloodPressureDataset, error) {
	cfg, err := applyOptions(n, opts)
	if err != nil {
		return nil, err
	}

	rng := newStream(ScenarioBloodPressure, rngSeed)
	d := make(BloodPressureDataset, n)
	for i := range d {
		d[i] = BloodPressureSample{
			Age:        20 + sampling.Uniform(rng, 0, 60),
			SystolicBP: 90 + float64(i)/2 + sampling.Uniform(rng, 0, 30)*cfg.noiseScale,
		}
	}

	return d, nil
}

// GenerateRiskFactors generates the multiple regression panel's dataset.
// Each predictor contributes an independent linear signal to the response:
//
//	age  = 30 + U(0,40)     bmi = 18 + U(0,17)    chol = 150 + U(0,100)
//	bp   = 70 + 0.5*age + 0.6*bmi + 0.05*chol + U(0,15)
func GenerateRiskFactors(n int, rngSeed int64, opts ...Option) (RiskFactorDataset, error) {
	cfg, err := applyOptions(n, opts)
	if err != nil {
		return nil, err
	}

	rng := newStream(ScenarioRiskFactors, rngSeed)
	d := make(RiskFactorDataset, n)
	for i := range d {
		age := 30 + sampling.Uniform(rng, 0, 40)
		bmi := 18 + sampling.Uniform(rng, 0, 17)
		chol := 150 + sampling.Uniform(rng, 0, 100)

		d[i] = RiskFactorSample{
			Age:         age,
			BMI:         bmi,
			Cholesterol: chol,
			SystolicBP:  70 + 0.5*age + 0.6*bmi + 0.05*chol + sampling.Uniform(rng, 0, 15)*cfg.noiseScale,
		}
	}

	return d, nil
}

// GenerateHeartDisease generates the logistic panel's dataset. The outcome
// is a Bernoulli draw whose success probability follows the logistic signal
//
//	p = sigmoid(age/20 + cholesterol/100 - 15)
//
// Cholesterol spans a deliberately wide synthetic range so the signal crosses
// its decision region within the sample. The outcome is a pure Bernoulli
// draw, so the noise-scale option does not apply here.
func GenerateHeartDisease(n int, rngSeed int64, opts ...Option) (HeartDiseaseDataset, error) {
	if _, err := applyOptions(n, opts); err != nil {
		return nil, err
	}

	rng := newStream(ScenarioHeartDisease, rngSeed)
	d := make(HeartDiseaseDataset, n)
	for i := range d {
		age := 20 + sampling.Uniform(rng, 0, 60)
		chol := 100 + sampling.Uniform(rng, 0, 1400)

		d[i] = HeartDiseaseSample{
			Age:         age,
			Cholesterol: chol,
			Disease:     sampling.Bernoulli(sigmoid(age/20+chol/100-15), rng),
		}
	}

	return d, nil
}

// GenerateCancerSurvival generates the survival panel's dataset: survival
// time shortens with age and stage, censoring is an independent 30% draw,
// and the result is sorted ascending by survival time so it can feed the
// Kaplan-Meier estimator directly:
//
//	time = max(1, 60 - age/10 - stage*6 + U(0,20))
func GenerateCancerSurvival(n int, rngSeed int64, opts ...Option) (CancerSurvivalDataset, error) {
	cfg, err := applyOptions(n, opts)
	if err != nil {
		return nil, err
	}

	rng := newStream(ScenarioCancerSurvival, rngSeed)
	d := make(CancerSurvivalDataset, n)
	for i := range d {
		age := 40 + sampling.Uniform(rng, 0, 40)
		stage := 1 + rng.Intn(4)

		t := 60 - age/10 - float64(stage)*6 + sampling.Uniform(rng, 0, 20)*cfg.noiseScale
		if t < 1 {
			t = 1
		}

		d[i] = CancerSurvivalSample{
			Age:          age,
			Stage:        stage,
			SurvivalTime: t,
			// 70% of subjects are observed to the event, 30% censored.
			Censored: !sampling.Bernoulli(0.7, rng),
		}
	}

	sort.Slice(d, func(i, j int) bool { return d[i].SurvivalTime < d[j].SurvivalTime })

	return d, nil
}

// GenerateHospitalInfections generates the Poisson panel's dataset. The
// infection rate grows with bed count and shrinks with staffing:
//
//	lambda = (beds/20) * (1 - staffRatio)
//
// The count is a pure Poisson draw, so the noise-scale option does not apply.
func GenerateHospitalInfections(n int, rngSeed int64, opts ...Option) (InfectionDataset, error) {
	if _, err := applyOptions(n, opts); err != nil {
		return nil, err
	}

	rng := newStream(ScenarioHospitalInfections, rngSeed)
	d := make(InfectionDataset, n)
	for i := range d {
		beds := 20 + sampling.Uniform(rng, 0, 180)
		staff := 0.2 + sampling.Uniform(rng, 0, 0.7)

		d[i] = InfectionSample{
			Beds:       beds,
			StaffRatio: staff,
			Infections: sampling.Poisson(beds/20*(1-staff), rng),
		}
	}

	return d, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
