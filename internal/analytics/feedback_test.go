package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"NOCTIMIND_BACK-END/internal/models"
)

func dreamsWithNegAffect(values ...float64) []models.Dream {
	dreams := make([]models.Dream, len(values))
	for i, v := range values {
		dreams[i] = models.Dream{Emotions: map[string]float64{"fear": v, "neutral": 100 - v}}
	}
	return dreams
}

func TestPersonalizedFeedback_RequiresThreeDreams(t *testing.T) {
	fb := PersonalizedFeedback(dreamsWithNegAffect(80, 80), 10)
	assert.False(t, fb.Active)
	assert.Equal(t, notEnoughDataMessage, fb.Message)
}

func TestPersonalizedFeedback_Levels(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		level  string
	}{
		{"high", []float64{60, 70, 80}, "high"},
		{"mixed", []float64{30, 30, 30}, "mixed"},
		{"calm", []float64{0, 10, 5}, "calm"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := PersonalizedFeedback(dreamsWithNegAffect(tc.values...), 10)
			assert.True(t, fb.Active)
			assert.Equal(t, tc.level, fb.Level)
		})
	}
}

func TestPersonalizedFeedback_UsesMostRecentWindow(t *testing.T) {
	// Old calm dreams followed by three recent high-affect ones.
	dreams := dreamsWithNegAffect(0, 0, 0, 0, 90, 90, 90)
	fb := PersonalizedFeedback(dreams, 3)
	assert.Equal(t, 3, fb.Window)
	assert.InDelta(t, 90.0, fb.AvgNegAffect, 1e-9)
	assert.Equal(t, "high", fb.Level)
}

func TestClampWindow(t *testing.T) {
	assert.Equal(t, 10, ClampWindow(0, 100), "default window")
	assert.Equal(t, 30, ClampWindow(99, 100), "capped at 30")
	assert.Equal(t, 5, ClampWindow(99, 5), "capped at total")
	assert.Equal(t, 3, ClampWindow(1, 100), "floored at 3")
	assert.Equal(t, 3, ClampWindow(5, 3), "total below minimum still floors at 3")
}
