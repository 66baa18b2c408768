package survival

// Event is a single observed subject: the time the subject left the study
// and whether the departure was a censoring (observation ended before the
// event occurred) rather than the event itself.
type Event struct {
	// Time is the event or censoring time.
	Time float64
	// Censored reports whether observation ended before the event occurred.
	Censored bool
}

// SurvivalPoint is one step of the estimated survival curve.
type SurvivalPoint struct {
	// Time is the event or censoring time this point corresponds to.
	Time float64
	// Probability is the estimated survival probability at Time.
	Probability float64
	// Censored mirrors the input event's censoring flag so renderers can
	// mark censored observations (conventionally with tick marks).
	Censored bool
}

// KaplanMeier estimates the survival curve from events sorted ascending by
// time. The estimator does not sort; passing unsorted events produces a
// meaningless curve (see IsSorted).
//
// Every input event yields exactly one output point, censored events
// included: a censored record re-emits the current probability level, so the
// curve only steps down at uncensored events. The risk set shrinks by one
// after every record regardless of censoring.
//
// An empty input returns an empty curve.
func KaplanMeier(events []Event) []SurvivalPoint {
	if len(events) == 0 {
		return nil
	}

	points := make([]SurvivalPoint, 0, len(events))
	atRisk := len(events)
	probability := 1.0

	for _, ev := range events {
		if !ev.Censored {
			probability *= float64(atRisk-1) / float64(atRisk)
		}

		points = append(points, SurvivalPoint{
			Time:        ev.Time,
			Probability: probability,
			Censored:    ev.Censored,
		})

		atRisk--
	}

	return points
}

// IsSorted reports whether events are in ascending time order, the order
// KaplanMeier requires.
func IsSorted(events []Event) bool {
	for i := 1; i < len(events); i++ {
		if events[i].Time < events[i-1].Time {
			return false
		}
	}

	return true
}
