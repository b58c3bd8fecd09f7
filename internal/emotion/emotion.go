package emotion

import "math"

// Keys is the canonical emotion set, in fixed iteration order. Every stored
// distribution contains exactly these seven keys.
var Keys = []string{"joy", "sadness", "fear", "anger", "disgust", "surprise", "neutral"}

// Neutral returns the degenerate distribution used when no usable emotion
// signal exists: 100% neutral, 0% elsewhere.
func Neutral() map[string]float64 {
	dist := make(map[string]float64, len(Keys))
	for _, k := range Keys {
		if k == "neutral" {
			dist[k] = 100.0
		} else {
			dist[k] = 0.0
		}
	}
	return dist
}

// Normalize coerces raw emotion values into a percentage distribution over
// the canonical keys. Negative values are clamped to zero, unknown keys are
// dropped, and the result sums to 100 (rounded to two decimals). A zero or
// empty input collapses to the neutral distribution. Normalize is idempotent
// up to rounding.
func Normalize(raw map[string]float64) map[string]float64 {
	vals := make(map[string]float64, len(Keys))
	total := 0.0
	for _, k := range Keys {
		v := raw[k]
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		vals[k] = v
		total += v
	}

	if total <= 0 {
		return Neutral()
	}

	dist := make(map[string]float64, len(Keys))
	for _, k := range Keys {
		dist[k] = round2(vals[k] / total * 100.0)
	}
	return dist
}

// Dominant returns the key with the highest percentage. Ties break in
// canonical key order; empty and all-zero distributions are "neutral".
func Dominant(dist map[string]float64) string {
	if len(dist) == 0 {
		return "neutral"
	}
	top := "neutral"
	best := math.Inf(-1)
	for _, k := range Keys {
		if v, ok := dist[k]; ok && v > best {
			top = k
			best = v
		}
	}
	if math.IsInf(best, -1) || best <= 0 {
		return "neutral"
	}
	return top
}

// NegativeAffect sums the fear, sadness, anger and disgust percentages.
// It is the wellbeing proxy used by the correlation and feedback views.
func NegativeAffect(dist map[string]float64) float64 {
	return dist["fear"] + dist["sadness"] + dist["anger"] + dist["disgust"]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
