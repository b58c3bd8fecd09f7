package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"NOCTIMIND_BACK-END/internal/config"
)

const defaultTranscriptionURL = "https://api.groq.com/openai/v1/audio/transcriptions"

// Client calls the Groq whisper transcription endpoint. Failures surface to
// the caller; transcription errors are never masked.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient creates a new transcription client from the Groq configuration.
func NewClient(cfg *config.GroqConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.STTModel,
		baseURL: defaultTranscriptionURL,
		http:    &http.Client{Timeout: cfg.TranscribeTimeout},
	}
}

// Transcribe uploads raw audio bytes and returns the plain-text transcript.
// Any container format whisper accepts works (wav, mp3, m4a, webm, ...).
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY not configured for transcription")
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("audio data is empty")
	}
	if filename == "" {
		filename = "audio.wav"
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building multipart request: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("building multipart request: %w", err)
	}
	if err := mw.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("building multipart request: %w", err)
	}
	// Plain string body back instead of a JSON envelope.
	if err := mw.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("building multipart request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("building multipart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription returned status %d: %s", resp.StatusCode, raw)
	}

	return strings.TrimSpace(string(raw)), nil
}
