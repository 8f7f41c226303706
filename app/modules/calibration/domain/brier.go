package calibrationdomain

import (
	"math"

	casedomain "github.com/Black-And-White-Club/dxwager/app/modules/cases/domain"
)

// Component is the squared error of one wager: (confidence/100 - truth)^2,
// where truth is 1 for RIGHT and 0 for WRONG. ok is false for outcomes that
// are not scored.
func Component(confidence int, outcome casedomain.Outcome) (score float64, ok bool) {
	if !outcome.Scored() {
		return 0, false
	}
	truth := 0.0
	if outcome == casedomain.OutcomeRight {
		truth = 1
	}
	d := float64(confidence)/100 - truth
	return d * d, true
}

// Summary is the aggregate of a set of components.
type Summary struct {
	Count    int
	Mean     float64
	Adjusted float64
}

// Adjust penalises small samples: mean + 1/sqrt(n).
func Adjust(mean float64, n int) float64 {
	return mean + 1/math.Sqrt(float64(n))
}

// Summarize returns nil when there is nothing to score.
func Summarize(components []float64) *Summary {
	if len(components) == 0 {
		return nil
	}
	var sum float64
	for _, c := range components {
		sum += c
	}
	mean := sum / float64(len(components))
	return &Summary{Count: len(components), Mean: mean, Adjusted: Adjust(mean, len(components))}
}

// Running returns the summary of every prefix of components, in one pass.
func Running(components []float64) []Summary {
	out := make([]Summary, len(components))
	var sum float64
	for i, c := range components {
		sum += c
		n := i + 1
		mean := sum / float64(n)
		out[i] = Summary{Count: n, Mean: mean, Adjusted: Adjust(mean, n)}
	}
	return out
}
