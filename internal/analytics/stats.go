package analytics

import (
	"math"

	"NOCTIMIND_BACK-END/internal/emotion"
	"NOCTIMIND_BACK-END/internal/models"
)

// MeanEmotionDistribution averages each canonical emotion percentage across
// all dreams, rounded to two decimals. Zero dreams default to 100% neutral.
func MeanEmotionDistribution(dreams []models.Dream) map[string]float64 {
	if len(dreams) == 0 {
		return emotion.Neutral()
	}

	sums := make(map[string]float64, len(emotion.Keys))
	for _, d := range dreams {
		for _, k := range emotion.Keys {
			sums[k] += d.Emotions[k]
		}
	}

	n := float64(len(dreams))
	avg := make(map[string]float64, len(emotion.Keys))
	for _, k := range emotion.Keys {
		avg[k] = math.Round(sums[k]/n*100) / 100
	}
	return avg
}

// Point is one (x, y) observation for the trend fit.
type Point struct {
	X float64
	Y float64
}

// LinearFit computes an ordinary-least-squares line over the points. It
// returns ok=false with fewer than 2 points or when x has no variance, in
// which case the view renders the scatter without a trend line.
func LinearFit(points []Point) (slope, intercept float64, ok bool) {
	n := float64(len(points))
	if n < 2 {
		return 0, 0, false
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for _, p := range points {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}
	if sxx == 0 {
		return 0, 0, false
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanX
	return slope, intercept, true
}
