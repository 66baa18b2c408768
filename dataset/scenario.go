package dataset

import "strings"

// Scenario identifies one of the synthetic teaching datasets.
type Scenario int

const (
	// ScenarioBloodPressure pairs age with systolic blood pressure for the
	// simple linear regression panel.
	ScenarioBloodPressure Scenario = iota
	// ScenarioRiskFactors carries several predictors of systolic blood
	// pressure for the multiple regression panel (fitted one factor at a time).
	ScenarioRiskFactors
	// ScenarioHeartDisease pairs age and cholesterol with a binary disease
	// outcome for the logistic regression panel.
	ScenarioHeartDisease
	// ScenarioCancerSurvival produces censored survival times for the
	// Cox / Kaplan-Meier panel.
	ScenarioCancerSurvival
	// ScenarioHospitalInfections produces infection counts for the Poisson
	// regression panel.
	ScenarioHospitalInfections
)

// scenarioNames maps Scenario to their string representations.
var scenarioNames = map[Scenario]string{
	ScenarioBloodPressure:      "blood-pressure",
	ScenarioRiskFactors:        "risk-factors",
	ScenarioHeartDisease:       "heart-disease",
	ScenarioCancerSurvival:     "cancer-survival",
	ScenarioHospitalInfections: "hospital-infections",
}

// String returns the string representation of the scenario.
func (s Scenario) String() string {
	if name, exists := scenarioNames[s]; exists {
		return name
	}

	return "unknown"
}

var scenarioFromString = map[string]Scenario{
	"blood-pressure":      ScenarioBloodPressure,
	"risk-factors":        ScenarioRiskFactors,
	"heart-disease":       ScenarioHeartDisease,
	"cancer-survival":     ScenarioCancerSurvival,
	"hospital-infections": ScenarioHospitalInfections,
}

// ScenarioFromString returns the Scenario for a given string name.
// Returns Scenario(-1) for unknown names.
func ScenarioFromString(name string) Scenario {
	if s, exists := scenarioFromString[strings.ToLower(name)]; exists {
		return s
	}

	return Scenario(-1)
}

// Scenarios lists every defined scenario in display order.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioBloodPressure,
		ScenarioRiskFactors,
		ScenarioHeartDisease,
		ScenarioCancerSurvival,
		ScenarioHospitalInfections,
	}
}
