package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return &Client{
		apiKey:  "test-key",
		model:   "whisper-large-v3",
		baseURL: url,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestTranscribe_SendsMultipartAndTrims(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "whisper-large-v3", r.FormValue("model"))
		assert.Equal(t, "text", r.FormValue("response_format"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "note.m4a", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-audio"), data)

		io.WriteString(w, "I was walking through a forest.\n")
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Transcribe(context.Background(), []byte("fake-audio"), "note.m4a")
	require.NoError(t, err)
	assert.Equal(t, "I was walking through a forest.", got)
}

func TestTranscribe_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad audio", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Transcribe(context.Background(), []byte("x"), "a.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestTranscribe_ValidatesInput(t *testing.T) {
	c := testClient("http://unused")

	_, err := c.Transcribe(context.Background(), nil, "a.wav")
	assert.Error(t, err)

	c.apiKey = ""
	_, err = c.Transcribe(context.Background(), []byte("x"), "a.wav")
	assert.Error(t, err)
}
