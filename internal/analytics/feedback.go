package analytics

import (
	"NOCTIMIND_BACK-END/internal/emotion"
	"NOCTIMIND_BACK-END/internal/models"
)

// Feedback thresholds over mean negative affect for the recent window.
const (
	highAffectThreshold  = 50.0
	mixedAffectThreshold = 25.0

	minFeedbackDreams = 3
	maxFeedbackWindow = 30
	defaultWindow     = 10
)

// Feedback messages, matching the product's tone.
const (
	highAffectMessage = "You've had a run of fear/sadness/anger leaning dreams. " +
		"Try winding down earlier, reduce late screens, or do a brief pre-sleep journaling session."
	mixedAffectMessage = "Mixed emotional tone lately. Light relaxation before bed and consistent " +
		"sleep times may tilt dreams positively."
	calmAffectMessage = "Your recent dreams skew calmer/neutral. Keep steady routines and hydration; " +
		"you're on a good trend!"
	notEnoughDataMessage = "Add at least 3 dreams to see trend-based feedback."
)

// Feedback is the rolling-window wellbeing summary.
type Feedback struct {
	Active       bool
	Window       int
	AvgNegAffect float64
	Level        string
	Message      string
}

// ClampWindow bounds a requested window to [3, min(30, total)]. A request of
// 0 picks the default window.
func ClampWindow(requested, total int) int {
	maxN := total
	if maxN > maxFeedbackWindow {
		maxN = maxFeedbackWindow
	}
	if requested <= 0 {
		requested = defaultWindow
	}
	if requested > maxN {
		requested = maxN
	}
	if requested < minFeedbackDreams {
		requested = minFeedbackDreams
	}
	return requested
}

// PersonalizedFeedback computes the mean negative affect over the most recent
// window dreams. Dreams must be ordered ascending by creation time. Fewer
// than 3 dreams total deactivates the feature.
func PersonalizedFeedback(dreams []models.Dream, requestedWindow int) Feedback {
	total := len(dreams)
	if total < minFeedbackDreams {
		return Feedback{Active: false, Message: notEnoughDataMessage}
	}

	window := ClampWindow(requestedWindow, total)
	recent := dreams[total-window:]

	sum := 0.0
	for _, d := range recent {
		sum += emotion.NegativeAffect(d.Emotions)
	}
	avg := sum / float64(len(recent))

	level, message := "calm", calmAffectMessage
	switch {
	case avg >= highAffectThreshold:
		level, message = "high", highAffectMessage
	case avg >= mixedAffectThreshold:
		level, message = "mixed", mixedAffectMessage
	}

	return Feedback{
		Active:       true,
		Window:       window,
		AvgNegAffect: avg,
		Level:        level,
		Message:      message,
	}
}
