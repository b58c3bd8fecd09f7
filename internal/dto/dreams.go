package dto

import "NOCTIMIND_BACK-END/internal/models"

// SubmitDreamRequest represents the payload for logging a new dream
type SubmitDreamRequest struct {
	Text         string   `json:"text" validate:"required"`
	Tags         string   `json:"tags,omitempty"`
	SleepHours   *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24"`
	SleepQuality *int     `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=5"`
}

// DreamResponse represents one saved dream in API responses
type DreamResponse struct {
	Dream models.Dream `json:"dream"`
}

// DreamListResponse represents a user's full history, ascending by creation time
type DreamListResponse struct {
	Dreams []models.Dream `json:"dreams"`
	Count  int            `json:"count"`
}

// TranscribeResponse carries the speech-to-text transcript back to the editor
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

// WipeResponse confirms a destructive delete-all operation
type WipeResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}
