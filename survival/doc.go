// Package survival implements the Kaplan-Meier product-limit estimator for
// right-censored time-to-event data.
//
// The estimator is a pure, order-sensitive fold over its input: it consumes
// events sorted ascending by time and produces one survival point per event.
// The survival probability is a non-increasing step function that only steps
// down at uncensored events; censored observations leave the risk set without
// lowering the curve.
//
// Sorting is deliberately the caller's responsibility. The dataset package
// produces pre-sorted survival datasets, which keeps the estimator itself a
// small deterministic function that is trivial to test in isolation.
//
// # Basic Usage
//
//	events := []survival.Event{
//	    {Time: 3.2},
//	    {Time: 5.0, Censored: true},
//	    {Time: 8.7},
//	}
//	curve := survival.KaplanMeier(events)
//	for _, pt := range curve {
//	    fmt.Printf("t=%.1f S(t)=%.3f censored=%v\n", pt.Time, pt.Probability, pt.Censored)
//	}
package survival
