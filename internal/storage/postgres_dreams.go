package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"NOCTIMIND_BACK-END/internal/emotion"
	"NOCTIMIND_BACK-END/internal/models"
)

// previewLength is how many characters of dream text the history list shows.
const previewLength = 120

// PostgresDreamRepository stores dream records in the dreams table.
type PostgresDreamRepository struct {
	db *pgxpool.Pool
}

// NewPostgresDreamRepository creates a dream repository over the shared pool.
func NewPostgresDreamRepository(db *pgxpool.Pool) *PostgresDreamRepository {
	return &PostgresDreamRepository{db: db}
}

// Insert stores one dream row for a specific user and returns its id. The
// creation timestamp is assigned here (UTC, second precision), never by the
// caller.
func (r *PostgresDreamRepository) Insert(ctx context.Context, dream *models.Dream) (int64, error) {
	email := strings.ToLower(strings.TrimSpace(dream.UserEmail))
	if email == "" {
		return 0, fmt.Errorf("user_email is required for per-user storage")
	}

	motifs, err := json.Marshal(nonNilMotifs(dream.Motifs))
	if err != nil {
		return 0, fmt.Errorf("encoding motifs: %w", err)
	}
	emotions, err := json.Marshal(nonNilEmotions(dream.Emotions))
	if err != nil {
		return 0, fmt.Errorf("encoding emotions: %w", err)
	}

	archetype := dream.Archetype
	if archetype == "" {
		archetype = "unknown"
	}

	createdAt := time.Now().UTC().Format("2006-01-02T15:04:05")

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO dreams (
			created_at, user_email, text, tags, sleep_hours, sleep_quality,
			motifs, archetype, reframed, emotions, embedding
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		createdAt, email, strings.TrimSpace(dream.Text), dream.Tags,
		dream.SleepHours, dream.SleepQuality,
		string(motifs), archetype, dream.Reframed, string(emotions),
		EncodeEmbedding(dream.Embedding)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting dream: %w", err)
	}

	dream.ID = id
	dream.UserEmail = email
	dream.CreatedAt = createdAt
	dream.Archetype = archetype
	return id, nil
}

// FetchAll returns every dream owned by the user, ascending by creation time,
// with motifs/emotions/embedding decoded and preview/top-emotion derived.
func (r *PostgresDreamRepository) FetchAll(ctx context.Context, userEmail string) ([]models.Dream, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))
	if email == "" {
		return nil, fmt.Errorf("user_email is required")
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, created_at, user_email, text, tags, sleep_hours, sleep_quality,
		        motifs, archetype, reframed, emotions, embedding
		 FROM dreams
		 WHERE user_email = $1
		 ORDER BY created_at ASC, id ASC`, email)
	if err != nil {
		return nil, fmt.Errorf("selecting dreams: %w", err)
	}
	defer rows.Close()

	dreams := []models.Dream{}
	for rows.Next() {
		dream, err := scanDream(rows)
		if err != nil {
			return nil, err
		}
		dreams = append(dreams, *dream)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dreams: %w", err)
	}
	return dreams, nil
}

// FetchOne returns a single dream by id for the user, or ErrNotFound.
func (r *PostgresDreamRepository) FetchOne(ctx context.Context, userEmail string, id int64) (*models.Dream, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	rows, err := r.db.Query(ctx,
		`SELECT id, created_at, user_email, text, tags, sleep_hours, sleep_quality,
		        motifs, archetype, reframed, emotions, embedding
		 FROM dreams
		 WHERE user_email = $1 AND id = $2
		 LIMIT 1`, email, id)
	if err != nil {
		return nil, fmt.Errorf("selecting dream: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("selecting dream: %w", err)
		}
		return nil, ErrNotFound
	}
	return scanDream(rows)
}

// DeleteOne removes a single dream owned by the user.
func (r *PostgresDreamRepository) DeleteOne(ctx context.Context, userEmail string, id int64) error {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	tag, err := r.db.Exec(ctx,
		`DELETE FROM dreams WHERE user_email = $1 AND id = $2`, email, id)
	if err != nil {
		return fmt.Errorf("deleting dream: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllForUser unconditionally removes every dream owned by the user.
// Irreversible; only the explicit, confirmed wipe action calls it.
func (r *PostgresDreamRepository) DeleteAllForUser(ctx context.Context, userEmail string) error {
	email := strings.ToLower(strings.TrimSpace(userEmail))
	if email == "" {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM dreams WHERE user_email = $1`, email); err != nil {
		return fmt.Errorf("wiping dreams: %w", err)
	}
	return nil
}

func scanDream(rows pgx.Rows) (*models.Dream, error) {
	var (
		dream        models.Dream
		userEmail    *string
		tags         *string
		motifsJSON   *string
		archetype    *string
		reframed     *string
		emotionsJSON *string
		embedding    []byte
	)

	err := rows.Scan(&dream.ID, &dream.CreatedAt, &userEmail, &dream.Text, &tags,
		&dream.SleepHours, &dream.SleepQuality, &motifsJSON, &archetype,
		&reframed, &emotionsJSON, &embedding)
	if err != nil {
		return nil, fmt.Errorf("scanning dream: %w", err)
	}

	if userEmail != nil {
		dream.UserEmail = *userEmail
	}
	if tags != nil {
		dream.Tags = *tags
	}
	if archetype != nil {
		dream.Archetype = *archetype
	}
	if reframed != nil {
		dream.Reframed = *reframed
	}

	dream.Motifs = decodeMotifs(motifsJSON)
	dream.Emotions = decodeEmotions(emotionsJSON)
	dream.Embedding = DecodeEmbedding(embedding)
	dream.Preview = preview(dream.Text)
	dream.TopEmotion = emotion.Dominant(dream.Emotions)

	return &dream, nil
}

func decodeMotifs(motifsJSON *string) []string {
	if motifsJSON == nil || *motifsJSON == "" {
		return []string{}
	}
	var motifs []string
	if err := json.Unmarshal([]byte(*motifsJSON), &motifs); err != nil || motifs == nil {
		return []string{}
	}
	return motifs
}

func decodeEmotions(emotionsJSON *string) map[string]float64 {
	if emotionsJSON == nil || *emotionsJSON == "" {
		return map[string]float64{}
	}
	var emotions map[string]float64
	if err := json.Unmarshal([]byte(*emotionsJSON), &emotions); err != nil || emotions == nil {
		return map[string]float64{}
	}
	return emotions
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "…"
}

func nonNilMotifs(motifs []string) []string {
	if motifs == nil {
		return []string{}
	}
	return motifs
}

func nonNilEmotions(emotions map[string]float64) map[string]float64 {
	if emotions == nil {
		return map[string]float64{}
	}
	return emotions
}
