package handlers

import (
	"context"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"NOCTIMIND_BACK-END/internal/dto"
	"NOCTIMIND_BACK-END/internal/emotion"
	"NOCTIMIND_BACK-END/internal/llm"
	"NOCTIMIND_BACK-END/internal/middleware"
	"NOCTIMIND_BACK-END/internal/models"
	"NOCTIMIND_BACK-END/internal/storage"
	"NOCTIMIND_BACK-END/internal/utils"
)

// maxAudioUploadBytes caps voice-note uploads at 25 MB.
const maxAudioUploadBytes = 25 << 20

// DreamAnalyzer produces motifs/archetype/emotions/reframe for a dream text.
type DreamAnalyzer interface {
	AnalyzeDream(ctx context.Context, dreamText string) (*llm.Analysis, error)
}

// Embedder maps dream text to a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Transcriber converts an audio recording to plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// DreamsHandler handles dream submission, history and data management requests
type DreamsHandler struct {
	dreams      storage.DreamRepository
	analyzer    DreamAnalyzer
	embedder    Embedder
	transcriber Transcriber
}

// NewDreamsHandler creates a new DreamsHandler instance
func NewDreamsHandler(dreams storage.DreamRepository, analyzer DreamAnalyzer, embedder Embedder, transcriber Transcriber) *DreamsHandler {
	return &DreamsHandler{dreams: dreams, analyzer: analyzer, embedder: embedder, transcriber: transcriber}
}

// Collection dispatches /api/dreams by method
func (h *DreamsHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.submit(w, r)
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.wipe(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item dispatches /api/dreams/{id} by method
func (h *DreamsHandler) Item(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/dreams/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid dream id", "Dream id must be an integer")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getOne(w, r, email, id)
	case http.MethodDelete:
		h.deleteOne(w, r, email, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// submit runs the full enrichment pipeline for one dream text
// @Summary Analyze and save a dream
// @Description Embed the text, enrich it via the LLM, normalize emotions and persist the record
// @Tags dreams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitDreamRequest true "Dream submission"
// @Success 201 {object} dto.DreamResponse "Dream analyzed and saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Enrichment collaborator failed"
// @Router /api/dreams [post]
func (h *DreamsHandler) submit(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	var req dto.SubmitDreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing dream text", "Please enter your dream text")
		return
	}
	if req.SleepHours != nil && (*req.SleepHours < 0 || *req.SleepHours > 24) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid sleep hours", "Sleep hours must be between 0 and 24")
		return
	}
	if req.SleepQuality != nil && (*req.SleepQuality < 1 || *req.SleepQuality > 5) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid sleep quality", "Sleep quality must be between 1 and 5")
		return
	}

	// Collaborator calls are synchronous on the request path. A failed call
	// aborts the submission; nothing is partially saved.
	vector, err := h.embedder.Embed(r.Context(), text)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Embedding failed", err.Error())
		return
	}

	analysis, err := h.analyzer.AnalyzeDream(r.Context(), text)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Dream analysis failed", err.Error())
		return
	}

	dream := &models.Dream{
		UserEmail:    email,
		Text:         text,
		Tags:         strings.TrimSpace(req.Tags),
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		Motifs:       analysis.Motifs,
		Archetype:    analysis.Archetype,
		Reframed:     analysis.Reframed,
		Emotions:     emotion.Normalize(analysis.Emotions),
		Embedding:    vector,
	}

	if _, err := h.dreams.Insert(r.Context(), dream); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save dream", err.Error())
		return
	}

	dream.Preview = dream.Text
	dream.TopEmotion = emotion.Dominant(dream.Emotions)

	utils.WriteJSONResponse(w, http.StatusCreated, dto.DreamResponse{Dream: *dream})
}

// list returns the user's full history
// @Summary List dream history
// @Description Return every dream owned by the authenticated user, ascending by creation time
// @Tags dreams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DreamListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/dreams [get]
func (h *DreamsHandler) list(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	dreams, err := h.dreams.FetchAll(r.Context(), email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load dreams", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DreamListResponse{Dreams: dreams, Count: len(dreams)})
}

func (h *DreamsHandler) getOne(w http.ResponseWriter, r *http.Request, email string, id int64) {
	dream, err := h.dreams.FetchOne(r.Context(), email, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Dream not found", "No dream with this id")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load dream", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DreamResponse{Dream: *dream})
}

func (h *DreamsHandler) deleteOne(w http.ResponseWriter, r *http.Request, email string, id int64) {
	if err := h.dreams.DeleteOne(r.Context(), email, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Dream not found", "No dream with this id")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete dream", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.WipeResponse{Deleted: true, Message: "Dream deleted"})
}

// wipe deletes every dream the user owns
// @Summary Wipe all my dreams
// @Description Permanently delete every dream owned by the authenticated user. Requires confirm=true.
// @Tags dreams
// @Produce json
// @Security BearerAuth
// @Param confirm query bool true "Must be true to confirm the irreversible wipe"
// @Success 200 {object} dto.WipeResponse
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/dreams [delete]
func (h *DreamsHandler) wipe(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Confirmation required",
			"Pass confirm=true to permanently delete all your dreams")
		return
	}

	if err := h.dreams.DeleteAllForUser(r.Context(), email); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to wipe dreams", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.WipeResponse{Deleted: true, Message: "All your dreams were deleted"})
}

// Transcribe converts an uploaded voice note to text
// @Summary Transcribe a voice note
// @Description Upload an audio file and receive the plain-text transcript for the dream editor
// @Tags dreams
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Audio file (wav, mp3, m4a, webm, ...)"
// @Success 200 {object} dto.TranscribeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid upload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Transcription collaborator failed"
// @Router /api/dreams/transcribe [post]
func (h *DreamsHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := middleware.EmailFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUploadBytes)
	if err := r.ParseMultipartForm(maxAudioUploadBytes); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid upload", "An audio file is required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}

	transcript, err := h.transcriber.Transcribe(r.Context(), audio, header.Filename)
	if err != nil {
		// Transcription failures are shown to the user, never masked.
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Transcription failed", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TranscribeResponse{Transcript: transcript})
}

// Export downloads the user's history as CSV
// @Summary Export dream history
// @Description Download every dream as CSV, one row per dream, columns in stored order
// @Tags dreams
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/dreams/export [get]
func (h *DreamsHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	dreams, err := h.dreams.FetchAll(r.Context(), email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load dreams", err.Error())
		return
	}

	// Keep the filename filesystem-safe.
	filename := fmt.Sprintf("noctimind_dreams_%s.csv", strings.ReplaceAll(email, "@", "_at_"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	cw.Write([]string{
		"id", "created_at", "user_email", "text", "tags", "sleep_hours",
		"sleep_quality", "motifs", "archetype", "reframed", "emotions", "embedding",
	})
	for _, d := range dreams {
		motifs, _ := json.Marshal(d.Motifs)
		emotions, _ := json.Marshal(d.Emotions)
		cw.Write([]string{
			strconv.FormatInt(d.ID, 10),
			d.CreatedAt,
			d.UserEmail,
			d.Text,
			d.Tags,
			formatFloatPtr(d.SleepHours),
			formatIntPtr(d.SleepQuality),
			string(motifs),
			d.Archetype,
			d.Reframed,
			string(emotions),
			base64.StdEncoding.EncodeToString(storage.EncodeEmbedding(d.Embedding)),
		})
	}
	cw.Flush()
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
