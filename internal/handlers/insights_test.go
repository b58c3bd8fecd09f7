package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NOCTIMIND_BACK-END/internal/dto"
	"NOCTIMIND_BACK-END/internal/models"
)

func seedDream(repo *fakeDreamRepo, email string, emotions map[string]float64, embedding []float32, archetype string, topEmotion string, sleepHours *float64, sleepQuality *int) {
	repo.nextID++
	repo.dreams = append(repo.dreams, models.Dream{
		ID:           repo.nextID,
		UserEmail:    email,
		Text:         "seeded",
		Emotions:     emotions,
		Embedding:    embedding,
		Archetype:    archetype,
		TopEmotion:   topEmotion,
		SleepHours:   sleepHours,
		SleepQuality: sleepQuality,
	})
}

func getInsight(t *testing.T, handler http.HandlerFunc, path, email string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler(rec, authedRequest(r, email))
	return rec
}

func TestClustersSeparatesDistinctGroups(t *testing.T) {
	repo := &fakeDreamRepo{}
	h := NewInsightsHandler(repo)

	// Two tight groups far apart in embedding space.
	seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, []float32{0, 0}, "falling/loss", "fear", nil, nil)
	seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, []float32{0.1, 0}, "falling/loss", "fear", nil, nil)
	seedDream(repo, "a@b.com", map[string]float64{"joy": 100}, []float32{10, 10}, "journey", "joy", nil, nil)
	seedDream(repo, "a@b.com", map[string]float64{"joy": 100}, []float32{10, 10.1}, "journey", "joy", nil, nil)

	rec := getInsight(t, h.Clusters, "/api/insights/clusters?k=2", "a@b.com")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ClusterListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.K)
	assert.False(t, resp.Skipped)
	require.Len(t, resp.Clusters, 2)

	sizes := []int{resp.Clusters[0].Size, resp.Clusters[1].Size}
	assert.ElementsMatch(t, []int{2, 2}, sizes)

	for _, c := range resp.Clusters {
		switch c.TopEmotion {
		case "fear":
			assert.Equal(t, "falling/loss", c.TopArchetype)
			assert.ElementsMatch(t, []int64{1, 2}, c.DreamIDs)
		case "joy":
			assert.Equal(t, "journey", c.TopArchetype)
			assert.ElementsMatch(t, []int64{3, 4}, c.DreamIDs)
		default:
			t.Fatalf("unexpected cluster emotion %q", c.TopEmotion)
		}
	}
}

func TestClustersCapsKAtDreamCount(t *testing.T) {
	repo := &fakeDreamRepo{}
	h := NewInsightsHandler(repo)

	seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, []float32{0, 0}, "x", "fear", nil, nil)
	seedDream(repo, "a@b.com", map[string]float64{"joy": 100}, []float32{5, 5}, "y", "joy", nil, nil)

	rec := getInsight(t, h.Clusters, "/api/insights/clusters?k=9", "a@b.com")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ClusterListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.K)
}

func TestClustersOmitsEmptyGroups(t *testing.T) {
	repo := &fakeDreamRepo{}
	h := NewInsightsHandler(repo)

	// Two identical vectors plus one distinct: only two distinct positions
	// exist, so k=3 cannot fill a third group.
	seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, []float32{0, 0}, "falling/loss", "fear", nil, nil)
	seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, []float32{0, 0}, "falling/loss", "fear", nil, nil)
	seedDream(repo, "a@b.com", map[string]float64{"joy": 100}, []float32{5, 5}, "journey", "joy", nil, nil)

	rec := getInsight(t, h.Clusters, "/api/insights/clusters?k=3", "a@b.com")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ClusterListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.K)
	require.Len(t, resp.Clusters, 2)

	total := 0
	for i, c := range resp.Clusters {
		assert.Equal(t, i, c.ID)
		assert.Greater(t, c.Size, 0)
		total += c.Size
	}
	assert.Equal(t, 3, total)
}

func TestClustersDegradesGracefully(t *testing.T) {
	t.Run("no embedded dreams", func(t *testing.T) {
		repo := &fakeDreamRepo{}
		h := NewInsightsHandler(repo)
		seedDream(repo, "a@b.com", map[string]float64{"neutral": 100}, nil, "unknown", "neutral", nil, nil)

		rec := getInsight(t, h.Clusters, "/api/insights/clusters", "a@b.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.ClusterListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Skipped)
		assert.Equal(t, 0, resp.K)
	})

	t.Run("single dream", func(t *testing.T) {
		repo := &fakeDreamRepo{}
		h := NewInsightsHandler(repo)
		seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, []float32{1, 2}, "falling/loss", "fear", nil, nil)

		rec := getInsight(t, h.Clusters, "/api/insights/clusters", "a@b.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.ClusterListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Skipped)
		assert.Equal(t, 1, resp.K)
		require.Len(t, resp.Clusters, 1)
		assert.Equal(t, []int64{1}, resp.Clusters[0].DreamIDs)
		assert.Equal(t, "fear", resp.Clusters[0].TopEmotion)
	})
}

func TestEmotionsMeanDistribution(t *testing.T) {
	repo := &fakeDreamRepo{}
	h := NewInsightsHandler(repo)

	seedDream(repo, "a@b.com", map[string]float64{"fear": 80, "neutral": 20}, nil, "", "fear", nil, nil)
	seedDream(repo, "a@b.com", map[string]float64{"fear": 20, "neutral": 80}, nil, "", "neutral", nil, nil)

	rec := getInsight(t, h.Emotions, "/api/insights/emotions", "a@b.com")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EmotionDistributionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.InDelta(t, 50, resp.Emotions["fear"], 0.01)
	assert.InDelta(t, 50, resp.Emotions["neutral"], 0.01)
	assert.InDelta(t, 0, resp.Emotions["joy"], 0.01)
}

func TestCorrelationSeries(t *testing.T) {
	repo := &fakeDreamRepo{}
	h := NewInsightsHandler(repo)

	// Negative affect falls linearly as sleep hours rise: neg = 100 - 10*h.
	for _, tc := range []struct {
		hours float64
		fear  float64
	}{
		{4, 60}, {6, 40}, {8, 20},
	} {
		hours := tc.hours
		seedDream(repo, "a@b.com",
			map[string]float64{"fear": tc.fear, "neutral": 100 - tc.fear},
			nil, "", "fear", &hours, nil)
	}
	// One dream with no sleep data is excluded from the series.
	seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, nil, "", "fear", nil, nil)

	rec := getInsight(t, h.Correlation, "/api/insights/correlation", "a@b.com")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CorrelationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.SleepHours.Points, 3)
	require.NotNil(t, resp.SleepHours.Trend)
	assert.InDelta(t, -10, resp.SleepHours.Trend.Slope, 0.001)
	assert.InDelta(t, 100, resp.SleepHours.Trend.Intercept, 0.001)

	// No dream carried a sleep quality, so that series has no points or trend.
	assert.Empty(t, resp.SleepQuality.Points)
	assert.Nil(t, resp.SleepQuality.Trend)
}

func TestCorrelationNoTrendWithOnePoint(t *testing.T) {
	repo := &fakeDreamRepo{}
	h := NewInsightsHandler(repo)

	hours := 7.0
	seedDream(repo, "a@b.com", map[string]float64{"fear": 50, "neutral": 50}, nil, "", "fear", &hours, nil)

	rec := getInsight(t, h.Correlation, "/api/insights/correlation", "a@b.com")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CorrelationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.SleepHours.Points, 1)
	assert.Nil(t, resp.SleepHours.Trend)
}

func TestFeedbackLevels(t *testing.T) {
	t.Run("too few dreams", func(t *testing.T) {
		repo := &fakeDreamRepo{}
		h := NewInsightsHandler(repo)
		seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, nil, "", "fear", nil, nil)

		rec := getInsight(t, h.Feedback, "/api/insights/feedback", "a@b.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.FeedbackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Active)
	})

	t.Run("high negative affect", func(t *testing.T) {
		repo := &fakeDreamRepo{}
		h := NewInsightsHandler(repo)
		for i := 0; i < 4; i++ {
			seedDream(repo, "a@b.com", map[string]float64{"fear": 80, "neutral": 20}, nil, "", "fear", nil, nil)
		}

		rec := getInsight(t, h.Feedback, "/api/insights/feedback", "a@b.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.FeedbackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Active)
		assert.Equal(t, "high", resp.Level)
		assert.InDelta(t, 80, resp.AvgNegAffect, 0.01)
	})

	t.Run("calm", func(t *testing.T) {
		repo := &fakeDreamRepo{}
		h := NewInsightsHandler(repo)
		for i := 0; i < 4; i++ {
			seedDream(repo, "a@b.com", map[string]float64{"joy": 90, "neutral": 10}, nil, "", "joy", nil, nil)
		}

		rec := getInsight(t, h.Feedback, "/api/insights/feedback", "a@b.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.FeedbackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Active)
		assert.Equal(t, "calm", resp.Level)
	})

	t.Run("window follows recent dreams", func(t *testing.T) {
		repo := &fakeDreamRepo{}
		h := NewInsightsHandler(repo)
		// Old calm dreams followed by three recent fearful ones.
		for i := 0; i < 5; i++ {
			seedDream(repo, "a@b.com", map[string]float64{"joy": 100}, nil, "", "joy", nil, nil)
		}
		for i := 0; i < 3; i++ {
			seedDream(repo, "a@b.com", map[string]float64{"fear": 100}, nil, "", "fear", nil, nil)
		}

		rec := getInsight(t, h.Feedback, "/api/insights/feedback?n=3", "a@b.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.FeedbackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Window)
		assert.Equal(t, "high", resp.Level)
		assert.InDelta(t, 100, resp.AvgNegAffect, 0.01)
	})
}
