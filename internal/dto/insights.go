package dto

// ClusterResponse represents one similarity cluster over a user's dreams
type ClusterResponse struct {
	ID           int     `json:"id"`
	Size         int     `json:"size"`
	DreamIDs     []int64 `json:"dream_ids"`
	TopEmotion   string  `json:"top_emotion"`
	TopArchetype string  `json:"top_archetype"`
}

// ClusterListResponse represents the clustering view
type ClusterListResponse struct {
	K        int               `json:"k"`
	Clusters []ClusterResponse `json:"clusters"`
	Skipped  bool              `json:"skipped"` // true when there were too few dreams to cluster
	Message  string            `json:"message,omitempty"`
}

// EmotionDistributionResponse is the mean emotion distribution across all dreams
type EmotionDistributionResponse struct {
	Emotions map[string]float64 `json:"emotions"`
	Count    int                `json:"count"`
}

// CorrelationPoint is one (x, negative affect) observation
type CorrelationPoint struct {
	DreamID   int64   `json:"dream_id"`
	X         float64 `json:"x"`
	NegAffect float64 `json:"neg_affect"`
}

// TrendLine is an ordinary-least-squares fit over the points
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// CorrelationSeries is one scatter series with an optional trend fit
type CorrelationSeries struct {
	Points []CorrelationPoint `json:"points"`
	Trend  *TrendLine         `json:"trend,omitempty"` // absent with fewer than 2 valid points
}

// CorrelationResponse is the sleep vs negative-affect view
type CorrelationResponse struct {
	SleepHours   CorrelationSeries `json:"sleep_hours"`
	SleepQuality CorrelationSeries `json:"sleep_quality"`
}

// FeedbackResponse is the rolling-window personalized feedback view
type FeedbackResponse struct {
	Active       bool    `json:"active"`
	Window       int     `json:"window,omitempty"`
	AvgNegAffect float64 `json:"avg_neg_affect,omitempty"`
	Level        string  `json:"level,omitempty"` // high | mixed | calm
	Message      string  `json:"message"`
}
