package handlers

import (
	"net/http"
	"strconv"

	"NOCTIMIND_BACK-END/internal/analytics"
	"NOCTIMIND_BACK-END/internal/dto"
	"NOCTIMIND_BACK-END/internal/emotion"
	"NOCTIMIND_BACK-END/internal/middleware"
	"NOCTIMIND_BACK-END/internal/models"
	"NOCTIMIND_BACK-END/internal/storage"
	"NOCTIMIND_BACK-END/internal/utils"
)

const (
	defaultClusterK = 3
	maxClusterK     = 10
)

// InsightsHandler serves the analytics views. Every view recomputes from a
// fresh read of the user's records; nothing is cached or persisted.
type InsightsHandler struct {
	dreams storage.DreamRepository
}

// NewInsightsHandler creates a new InsightsHandler instance
func NewInsightsHandler(dreams storage.DreamRepository) *InsightsHandler {
	return &InsightsHandler{dreams: dreams}
}

func (h *InsightsHandler) fetch(w http.ResponseWriter, r *http.Request) ([]models.Dream, bool) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return nil, false
	}
	dreams, err := h.dreams.FetchAll(r.Context(), email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load dreams", err.Error())
		return nil, false
	}
	return dreams, true
}

// Clusters groups the user's dreams by embedding similarity
// @Summary Cluster dreams by similarity
// @Description K-means over dream embeddings with per-cluster representative emotion and archetype
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Param k query int false "Requested cluster count (capped at the number of dreams)"
// @Success 200 {object} dto.ClusterListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/insights/clusters [get]
func (h *InsightsHandler) Clusters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dreams, ok := h.fetch(w, r)
	if !ok {
		return
	}

	// Only dreams that actually carry an embedding participate.
	embedded := make([]models.Dream, 0, len(dreams))
	for _, d := range dreams {
		if len(d.Embedding) > 0 {
			embedded = append(embedded, d)
		}
	}

	if len(embedded) == 0 {
		utils.WriteJSONResponse(w, http.StatusOK, dto.ClusterListResponse{
			K: 0, Clusters: []dto.ClusterResponse{}, Skipped: true,
			Message: "Log a dream to see similarity clusters",
		})
		return
	}

	if len(embedded) < 2 {
		// Too few dreams to cluster; the single dream is its own group.
		d := embedded[0]
		utils.WriteJSONResponse(w, http.StatusOK, dto.ClusterListResponse{
			K: 1,
			Clusters: []dto.ClusterResponse{{
				ID: 0, Size: 1, DreamIDs: []int64{d.ID},
				TopEmotion: d.TopEmotion, TopArchetype: d.Archetype,
			}},
			Skipped: true,
			Message: "Need at least 2 dreams to cluster",
		})
		return
	}

	k := defaultClusterK
	if kStr := r.URL.Query().Get("k"); kStr != "" {
		if parsed, err := strconv.Atoi(kStr); err == nil && parsed >= 1 && parsed <= maxClusterK {
			k = parsed
		}
	}
	if k > len(embedded) {
		k = len(embedded) // requested k silently capped at N
	}

	vectors := make([][]float32, len(embedded))
	for i, d := range embedded {
		vectors[i] = d.Embedding
	}
	assignments := analytics.KMeans(vectors, k)

	clusters := make([]dto.ClusterResponse, k)
	emotions := make([][]string, k)
	archetypes := make([][]string, k)
	for i := range clusters {
		clusters[i] = dto.ClusterResponse{ID: i, DreamIDs: []int64{}}
	}
	for i, c := range assignments {
		clusters[c].Size++
		clusters[c].DreamIDs = append(clusters[c].DreamIDs, embedded[i].ID)
		emotions[c] = append(emotions[c], embedded[i].TopEmotion)
		archetypes[c] = append(archetypes[c], embedded[i].Archetype)
	}
	// Duplicate vectors can starve a centroid; empty groups carry no
	// information, so the view drops them and renumbers.
	nonEmpty := clusters[:0]
	for i := range clusters {
		if clusters[i].Size == 0 {
			continue
		}
		clusters[i].ID = len(nonEmpty)
		clusters[i].TopEmotion = analytics.Mode(emotions[i], "neutral")
		clusters[i].TopArchetype = analytics.Mode(archetypes[i], "unknown")
		nonEmpty = append(nonEmpty, clusters[i])
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ClusterListResponse{K: len(nonEmpty), Clusters: nonEmpty})
}

// Emotions returns the mean emotion distribution across all dreams
// @Summary Aggregate emotion distribution
// @Description Arithmetic mean of each canonical emotion percentage across the user's dreams
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.EmotionDistributionResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/insights/emotions [get]
func (h *InsightsHandler) Emotions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dreams, ok := h.fetch(w, r)
	if !ok {
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.EmotionDistributionResponse{
		Emotions: analytics.MeanEmotionDistribution(dreams),
		Count:    len(dreams),
	})
}

// Correlation returns negative affect vs sleep metrics with OLS trend fits
// @Summary Sleep vs negative affect correlation
// @Description Scatter of negative affect against sleep hours and sleep quality with linear trend fits
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CorrelationResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/insights/correlation [get]
func (h *InsightsHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dreams, ok := h.fetch(w, r)
	if !ok {
		return
	}

	hours := correlationSeries(dreams, func(d models.Dream) *float64 { return d.SleepHours })
	quality := correlationSeries(dreams, func(d models.Dream) *float64 {
		if d.SleepQuality == nil {
			return nil
		}
		v := float64(*d.SleepQuality)
		return &v
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.CorrelationResponse{
		SleepHours:   hours,
		SleepQuality: quality,
	})
}

// correlationSeries drops dreams with a missing x value and fits a trend line
// only when at least 2 valid points remain.
func correlationSeries(dreams []models.Dream, x func(models.Dream) *float64) dto.CorrelationSeries {
	series := dto.CorrelationSeries{Points: []dto.CorrelationPoint{}}
	fit := []analytics.Point{}
	for _, d := range dreams {
		xv := x(d)
		if xv == nil {
			continue
		}
		neg := emotion.NegativeAffect(d.Emotions)
		series.Points = append(series.Points, dto.CorrelationPoint{DreamID: d.ID, X: *xv, NegAffect: neg})
		fit = append(fit, analytics.Point{X: *xv, Y: neg})
	}
	if slope, intercept, ok := analytics.LinearFit(fit); ok {
		series.Trend = &dto.TrendLine{Slope: slope, Intercept: intercept}
	}
	return series
}

// Feedback returns the rolling-window personalized feedback
// @Summary Personalized feedback
// @Description Rolling-window mean of negative affect over the most recent N dreams
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Param n query int false "Window size, clamped to [3, min(30, total)]"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/insights/feedback [get]
func (h *InsightsHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dreams, ok := h.fetch(w, r)
	if !ok {
		return
	}

	n := 0
	if nStr := r.URL.Query().Get("n"); nStr != "" {
		if parsed, err := strconv.Atoi(nStr); err == nil {
			n = parsed
		}
	}

	fb := analytics.PersonalizedFeedback(dreams, n)
	utils.WriteJSONResponse(w, http.StatusOK, dto.FeedbackResponse{
		Active:       fb.Active,
		Window:       fb.Window,
		AvgNegAffect: fb.AvgNegAffect,
		Level:        fb.Level,
		Message:      fb.Message,
	})
}
