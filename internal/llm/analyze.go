package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"NOCTIMIND_BACK-END/internal/emotion"
)

const systemPrompt = "You are NoctiMind, a careful dream analyst. " +
	"Return strict JSON. Emotions are percentages that sum to ~100. " +
	"Allowed emotions: joy, sadness, fear, anger, disgust, surprise, neutral."

const userTemplate = `
Analyze this dream:
---
%s
---

Return JSON with keys:
- motifs: string[] (2-5 concise motif labels)
- archetype: string (one concise archetype, e.g., 'chase/fear', 'falling/loss', 'exam/anxiety', 'social/evaluation', 'travel/transition')
- emotions: object mapping of {joy,sadness,fear,anger,disgust,surprise,neutral} to percentages (floats)
- reframed: short calming reframe of the dream (2-4 sentences)
`

// FallbackReframe is the reframing text used when the model's JSON is unusable.
const FallbackReframe = "Imagine a calmer version of this story where you feel safe and supported."

// Analysis is the typed boundary for the model's enrichment output. The rest
// of the system never sees loosely-shaped maps.
type Analysis struct {
	Motifs    []string           `json:"motifs"`
	Archetype string             `json:"archetype"`
	Emotions  map[string]float64 `json:"emotions"`
	Reframed  string             `json:"reframed"`
}

// fallbackAnalysis is what an unparseable response degrades to. The
// submission still saves, with neutral placeholder content.
func fallbackAnalysis() *Analysis {
	return &Analysis{
		Motifs:    []string{},
		Archetype: "unknown",
		Emotions:  emotion.Neutral(),
		Reframed:  FallbackReframe,
	}
}

// AnalyzeDream asks the model for motifs, archetype, emotions and a calming
// reframe. A failed HTTP call is returned as an error and aborts the
// submission; malformed content inside a successful response is recovered
// into the fallback analysis instead.
func (c *Client) AnalyzeDream(ctx context.Context, dreamText string) (*Analysis, error) {
	content, err := c.complete(ctx, systemPrompt, fmt.Sprintf(userTemplate, dreamText))
	if err != nil {
		return nil, err
	}
	return ParseAnalysis(content), nil
}

// ParseAnalysis extracts the analysis object from untrusted model output.
// It never fails: decoration around the JSON is tolerated and anything
// unparseable collapses to the fallback analysis. Every canonical emotion
// key is present in the result.
func ParseAnalysis(content string) *Analysis {
	payload, ok := ExtractJSONObject(content)
	if !ok {
		return fallbackAnalysis()
	}

	var raw struct {
		Motifs    []any              `json:"motifs"`
		Archetype string             `json:"archetype"`
		Emotions  map[string]float64 `json:"emotions"`
		Reframed  string             `json:"reframed"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return fallbackAnalysis()
	}

	out := &Analysis{
		Motifs:    make([]string, 0, len(raw.Motifs)),
		Archetype: raw.Archetype,
		Emotions:  make(map[string]float64, len(emotion.Keys)),
		Reframed:  raw.Reframed,
	}
	for _, m := range raw.Motifs {
		switch v := m.(type) {
		case string:
			out.Motifs = append(out.Motifs, v)
		case float64:
			out.Motifs = append(out.Motifs, fmt.Sprintf("%v", v))
		}
	}
	if out.Archetype == "" {
		out.Archetype = "unknown"
	}
	for _, k := range emotion.Keys {
		out.Emotions[k] = raw.Emotions[k]
	}
	return out
}

// ExtractJSONObject locates the first '{' and the last '}' in free text and
// returns the substring between them. Models often wrap their JSON in prose;
// this keeps only the object.
func ExtractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}
