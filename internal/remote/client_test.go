package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titleguide/internal/form"
)

func chatCompletion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func newTestClient(url string) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = url
	cfg.APIKey = "test-key"
	cfg.Timeout = 2 * time.Second
	return NewClient(cfg)
}

func TestParseTranscript(t *testing.T) {
	const modelJSON = `{"core":{"title":"The Last Horizon","type":"film","year":2026},"identity":{"languages":["English"]},"assumptions":["Assumed type is 'film' because user said 'movie'"]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Write([]byte(chatCompletion(modelJSON)))
	}))
	defer srv.Close()

	parsed, err := newTestClient(srv.URL).ParseTranscript(context.Background(), "I directed a movie called The Last Horizon in English, out in 2026")
	require.NoError(t, err)

	require.NotNil(t, parsed.Core)
	assert.Equal(t, "The Last Horizon", parsed.Core.Title)
	assert.Equal(t, form.TypeFilm, parsed.Core.Type)
	require.NotNil(t, parsed.Core.Year)
	assert.Equal(t, 2026, *parsed.Core.Year)
	require.NotNil(t, parsed.Identity)
	assert.Equal(t, []string{"English"}, parsed.Identity.Languages)
	assert.Len(t, parsed.Assumptions, 1)
}

func TestParseTranscriptStripsMarkdownFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatCompletion("```json\n{\"core\":{\"title\":\"Fenced\"}}\n```")))
	}))
	defer srv.Close()

	parsed, err := newTestClient(srv.URL).ParseTranscript(context.Background(), "a film called Fenced")
	require.NoError(t, err)
	require.NotNil(t, parsed.Core)
	assert.Equal(t, "Fenced", parsed.Core.Title)
}

func TestParseTranscriptExtractsEmbeddedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatCompletion("Here is the data: {\"core\":{\"title\":\"Embedded\"}} hope that helps")))
	}))
	defer srv.Close()

	parsed, err := newTestClient(srv.URL).ParseTranscript(context.Background(), "a film called Embedded")
	require.NoError(t, err)
	require.NotNil(t, parsed.Core)
	assert.Equal(t, "Embedded", parsed.Core.Title)
}

func TestParseTranscriptLengthBounds(t *testing.T) {
	c := newTestClient("http://unused.invalid")

	_, err := c.ParseTranscript(context.Background(), "hey")
	assert.ErrorIs(t, err, ErrTranscriptLength)

	long := make([]byte, MaxTranscriptLen+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = c.ParseTranscript(context.Background(), string(long))
	assert.ErrorIs(t, err, ErrTranscriptLength)
}

func TestParseTranscriptNotConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = ""
	_, err := NewClient(cfg).ParseTranscript(context.Background(), "a movie called Test Title")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCompleteRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(chatCompletion("Answer text.")))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Answer(context.Background(), "what is evidence")
	require.NoError(t, err)
	assert.Equal(t, "Answer text.", got.Answer)
	assert.Equal(t, SourceAI, got.Source)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAnswerEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Answer(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestSanitize(t *testing.T) {
	year := 1500
	badAmount := int64(-5)

	p := Sanitize(form.Parsed{
		Core: &form.ParsedCore{
			Title:           "  Trimmed  ",
			Type:            form.TitleType("hologram"),
			Status:          form.StatusReleased,
			Year:            &year,
			ContributorRole: form.ContributorRole("overlord"),
		},
		Identity: &form.ParsedIdentity{
			Genres: []string{"Drama", "  ", "Sci-Fi"},
		},
		Mandatory: &form.ParsedMandatory{
			ReleaseDates: []form.ReleaseDate{{Country: "France", ReleaseType: form.ReleaseType("hologram")}},
		},
		Production: &form.ParsedProduction{
			Budget:    &form.Budget{Currency: "DOGE", Amount: &badAmount},
			Directors: []form.Director{{Name: "  "}, {Name: "Ava Chen"}},
		},
		Assumptions: []string{"kept", ""},
	})

	assert.Equal(t, "Trimmed", p.Core.Title)
	assert.Equal(t, form.TypeUnset, p.Core.Type)
	assert.Equal(t, form.StatusReleased, p.Core.Status)
	assert.Nil(t, p.Core.Year, "out-of-range year dropped")
	assert.Equal(t, form.RoleUnset, p.Core.ContributorRole)
	assert.Equal(t, []string{"Drama", "Sci-Fi"}, p.Identity.Genres)
	assert.Equal(t, form.ReleaseUnset, p.Mandatory.ReleaseDates[0].ReleaseType)
	assert.Nil(t, p.Production.Budget, "invalid budget dropped entirely")
	require.Len(t, p.Production.Directors, 1)
	assert.Equal(t, "Director", p.Production.Directors[0].Role)
	assert.Equal(t, []string{"kept"}, p.Assumptions)
}
