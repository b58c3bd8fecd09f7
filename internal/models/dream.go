package models

// Dream represents one journaled dream with its enrichment output.
//
// Motifs and Emotions are stored as JSON text and Embedding as a blob of
// little-endian float32 values; the storage layer decodes them back on read.
// Preview and TopEmotion are derived at read time and never persisted.
type Dream struct {
	ID           int64              `json:"id" db:"id"`
	UserEmail    string             `json:"-" db:"user_email"`
	CreatedAt    string             `json:"created_at" db:"created_at"` // UTC, second precision
	Text         string             `json:"text" db:"text"`
	Tags         string             `json:"tags" db:"tags"`
	SleepHours   *float64           `json:"sleep_hours" db:"sleep_hours"`
	SleepQuality *int               `json:"sleep_quality" db:"sleep_quality"`
	Motifs       []string           `json:"motifs" db:"motifs"`
	Archetype    string             `json:"archetype" db:"archetype"`
	Reframed     string             `json:"reframed" db:"reframed"`
	Emotions     map[string]float64 `json:"emotions" db:"emotions"`
	Embedding    []float32          `json:"-" db:"embedding"`

	// Derived on read.
	Preview    string `json:"preview" db:"-"`
	TopEmotion string `json:"top_emotion" db:"-"`
}
