package httpserver

// #region imports
import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titleguide/internal/assistant"
	"titleguide/internal/chatbot"
	"titleguide/internal/draft"
	"titleguide/internal/form"
	"titleguide/internal/remote"
	"titleguide/internal/script"
)

// #endregion

// #region helpers

func newTestHandler(t *testing.T, rc *remote.Client) http.Handler {
	t.Helper()
	store, err := draft.NewStore(filepath.Join(t.TempDir(), "drafts.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewHandler(Config{
		Drafts:  store,
		Matcher: chatbot.NewMatcher(nil),
		Remote:  rc,
		Memory:  assistant.NewMemory(nil),
		Script:  script.NewEngine(nil, nil),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// #endregion helpers

// #region health

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeInto(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}

// #endregion health

// #region help

func TestHelpKnowledgeBaseFirst(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/help", helpRequest{Question: "what counts as evidence"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body remote.HelpAnswer
	decodeInto(t, rec, &body)
	assert.Equal(t, remote.SourceKnowledgeBase, body.Source)
	assert.NotEmpty(t, body.Answer)
}

func TestHelpFallsBackWhenUnconfigured(t *testing.T) {
	// Gibberish misses the knowledge base; with no remote client the
	// canned fallback answers.
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/help", helpRequest{Question: "zzz qqq xyzzy plugh"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body remote.HelpAnswer
	decodeInto(t, rec, &body)
	assert.Equal(t, remote.SourceFallback, body.Source)
	assert.Equal(t, remote.FallbackAnswer, body.Answer)
}

func TestHelpUsesRemoteWhenKnowledgeBaseMisses(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"A remote answer."}}]}`)
	}))
	defer upstream.Close()

	cfg := remote.DefaultConfig()
	cfg.BaseURL = upstream.URL
	cfg.APIKey = "test-key"
	h := newTestHandler(t, remote.NewClient(cfg))

	rec := doJSON(t, h, http.MethodPost, "/api/help", helpRequest{Question: "zzz qqq xyzzy plugh"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body remote.HelpAnswer
	decodeInto(t, rec, &body)
	assert.Equal(t, remote.SourceAI, body.Source)
	assert.Equal(t, "A remote answer.", body.Answer)
}

func TestHelpRejectsBadLength(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/api/help", helpRequest{Question: "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	rec = doJSON(t, h, http.MethodPost, "/api/help", helpRequest{Question: string(long)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// #endregion help

// #region parse

func TestParseUnconfiguredReturnsManualHint(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/parse", parseRequest{Transcript: "a movie called Midnight Signal"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body parseResponse
	decodeInto(t, rec, &body)
	require.Len(t, body.Assumptions, 1)
	assert.Contains(t, body.Assumptions[0], "not configured")
}

func TestParseTranscriptTooShort(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream should not be called for short transcripts")
	}))
	defer upstream.Close()

	cfg := remote.DefaultConfig()
	cfg.BaseURL = upstream.URL
	cfg.APIKey = "test-key"
	h := newTestHandler(t, remote.NewClient(cfg))

	rec := doJSON(t, h, http.MethodPost, "/api/parse", parseRequest{Transcript: "hm"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseReturnsSanitizedFields(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		content := `{"core":{"title":"Midnight Signal","type":"film","year":2026},"assumptions":["Assumed feature film."]}`
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer upstream.Close()

	cfg := remote.DefaultConfig()
	cfg.BaseURL = upstream.URL
	cfg.APIKey = "test-key"
	h := newTestHandler(t, remote.NewClient(cfg))

	rec := doJSON(t, h, http.MethodPost, "/api/parse", parseRequest{
		Transcript: "a movie called Midnight Signal coming out next year",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body parseResponse
	decodeInto(t, rec, &body)
	require.NotNil(t, body.Parsed.Core)
	assert.Equal(t, "Midnight Signal", body.Parsed.Core.Title)
	assert.Equal(t, form.TypeFilm, body.Parsed.Core.Type)
	require.NotNil(t, body.Parsed.Core.Year)
	assert.Equal(t, 2026, *body.Parsed.Core.Year)
	assert.Equal(t, []string{"Assumed feature film."}, body.Assumptions)
}

// #endregion parse

// #region chat

func TestChatMatchesIntent(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/chat", chatMessageRequest{Message: "what counts as evidence"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body chatMessageResponse
	decodeInto(t, rec, &body)
	assert.Equal(t, "WHAT_IS_EVIDENCE", body.Intent)
	assert.NotEmpty(t, body.Answer)
	assert.Greater(t, body.Confidence, 0.0)
}

func TestChatFallback(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/chat", chatMessageRequest{Message: "zzz qqq xyzzy"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body chatMessageResponse
	decodeInto(t, rec, &body)
	assert.Equal(t, "FALLBACK", body.Intent)
	assert.NotEmpty(t, body.Answer)
}

// #endregion chat

// #region guidance

func TestGuidanceEmptyForm(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/guidance", guidanceRequest{Form: form.EmptySnapshot()})
	require.Equal(t, http.StatusOK, rec.Code)

	var body guidanceResponse
	decodeInto(t, rec, &body)
	require.NotNil(t, body.Primary)
	assert.Equal(t, assistant.IntentMissingEvidence, body.Primary.Intent)
	require.NotNil(t, body.Primary.Autofix)
	assert.Equal(t, "fix-add-evidence", body.Primary.Autofix.FixID)
	assert.LessOrEqual(t, len(body.Secondary), 2)
}

func TestGuidanceCompleteForm(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/guidance", guidanceRequest{Form: form.SampleSnapshot()})
	require.Equal(t, http.StatusOK, rec.Code)

	var body guidanceResponse
	decodeInto(t, rec, &body)
	assert.Equal(t, 100, body.Confidence)
	require.NotNil(t, body.Primary)
	assert.Equal(t, assistant.IntentAlmostReady, body.Primary.Intent)
}

func TestGuidanceCooldownAcrossRequests(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/api/guidance", guidanceRequest{Form: form.EmptySnapshot()})
	require.Equal(t, http.StatusOK, rec.Code)
	var first guidanceResponse
	decodeInto(t, rec, &first)
	require.NotNil(t, first.Primary)

	// Immediate repeat: the same blocker is on cooldown, so the next
	// blocker in scan order takes over.
	rec = doJSON(t, h, http.MethodPost, "/api/guidance", guidanceRequest{Form: form.EmptySnapshot()})
	require.Equal(t, http.StatusOK, rec.Code)
	var second guidanceResponse
	decodeInto(t, rec, &second)
	if second.Primary != nil {
		assert.NotEqual(t, first.Primary.Intent, second.Primary.Intent)
	}
}

// #endregion guidance

// #region tips

func TestTipsEmptyFormStepZero(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/tips", tipsRequest{Form: form.EmptySnapshot(), Step: 0})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]tipPayload
	decodeInto(t, rec, &body)
	require.Contains(t, body, "core.title")
	assert.Equal(t, "info", body["core.title"].Severity)
	assert.NotEmpty(t, body["core.title"].Text)
	assert.Empty(t, body["core.title"].Secondary)
}

func TestTipsCompleteFormHasNone(t *testing.T) {
	h := newTestHandler(t, nil)
	for step := 0; step < 5; step++ {
		rec := doJSON(t, h, http.MethodPost, "/api/tips", tipsRequest{Form: form.SampleSnapshot(), Step: step})
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]tipPayload
		decodeInto(t, rec, &body)
		assert.Empty(t, body, "step %d", step)
	}
}

// #endregion tips

// #region script

func TestScriptEventReturnsLine(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/script/fieldValid", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body scriptResponse
	decodeInto(t, rec, &body)
	assert.NotEmpty(t, body.Line)

	// Same event again inside its cooldown stays silent.
	rec = doJSON(t, h, http.MethodPost, "/api/script/fieldValid", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &body)
	assert.Empty(t, body.Line)
}

func TestScriptUnknownEventSilent(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/script/nonsense", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body scriptResponse
	decodeInto(t, rec, &body)
	assert.Empty(t, body.Line)
}

// #endregion script

// #region drafts

func TestDraftLifecycle(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/api/drafts/", draftRequest{Form: form.SampleSnapshot(), Step: 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created draftResponse
	decodeInto(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "draft", created.Status)
	assert.Equal(t, "The Last Horizon", created.Title)
	assert.Equal(t, 2, created.CurrentStep)

	rec = doJSON(t, h, http.MethodGet, "/api/drafts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched draftResponse
	decodeInto(t, rec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	rec = doJSON(t, h, http.MethodGet, "/api/drafts/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	snap := form.SampleSnapshot()
	snap.Core.Title = "The Last Horizon: Redux"
	rec = doJSON(t, h, http.MethodPut, "/api/drafts/"+created.ID, draftRequest{Form: snap, Step: 3})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &fetched)
	assert.Equal(t, "The Last Horizon: Redux", fetched.Title)
	assert.Equal(t, 3, fetched.CurrentStep)

	rec = doJSON(t, h, http.MethodPost, "/api/drafts/"+created.ID+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &fetched)
	assert.Equal(t, "submitted", fetched.Status)

	// Submitted drafts are immutable.
	rec = doJSON(t, h, http.MethodPut, "/api/drafts/"+created.ID, draftRequest{Form: snap, Step: 3})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/drafts/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/drafts/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDraftListFiltersByStatus(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/api/drafts/", draftRequest{Form: form.SampleSnapshot(), Step: 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	var first draftResponse
	decodeInto(t, rec, &first)

	rec = doJSON(t, h, http.MethodPost, "/api/drafts/", draftRequest{Form: form.EmptySnapshot(), Step: 0})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/drafts/"+first.ID+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/drafts/?status=submitted", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []draftSummary
	decodeInto(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, first.ID, listed[0].ID)

	rec = doJSON(t, h, http.MethodGet, "/api/drafts/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &listed)
	assert.Len(t, listed, 2)
}

func TestDraftNotFound(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := doJSON(t, h, http.MethodGet, "/api/drafts/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/drafts/latest", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidBodyRejected(t *testing.T) {
	h := newTestHandler(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// #endregion drafts
