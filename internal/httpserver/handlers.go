package httpserver

// #region imports
import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"titleguide/internal/assistant"
	"titleguide/internal/draft"
	"titleguide/internal/fieldtips"
	"titleguide/internal/form"
	"titleguide/internal/remote"
	"titleguide/internal/script"
)

// #endregion

// #region parse

type parseRequest struct {
	Transcript string `json:"transcript"`
}

type parseResponse struct {
	Parsed      form.Parsed `json:"parsed"`
	Assumptions []string    `json:"assumptions"`
}

// handleParse sends a voice transcript to the remote model and
// returns sanitized structured form data. An unconfigured model is
// not an error: the client falls back to manual entry.
func (s *server) handleParse(w http.ResponseWriter, r *http.Request) {
	if s.remote == nil || !s.remote.Configured() {
		writeJSON(w, http.StatusOK, parseResponse{
			Assumptions: []string{"AI service not configured — please fill in the form manually."},
		})
		return
	}

	var req parseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	parsed, err := s.remote.ParseTranscript(r.Context(), req.Transcript)
	if err != nil {
		if errors.Is(err, remote.ErrTranscriptLength) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[PARSE] transcript parse failed: %v", err)
		writeError(w, http.StatusBadGateway, "transcript parsing unavailable")
		return
	}

	assumptions := parsed.Assumptions
	if assumptions == nil {
		assumptions = []string{}
	}
	writeJSON(w, http.StatusOK, parseResponse{Parsed: parsed, Assumptions: assumptions})
}

// #endregion parse

// #region help

type helpRequest struct {
	Question string `json:"question"`
}

// handleHelp answers a question: knowledge base first, remote model
// second, canned fallback last. The fallback never fails.
func (s *server) handleHelp(w http.ResponseWriter, r *http.Request) {
	var req helpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	question := strings.TrimSpace(req.Question)
	if len(question) < 3 || len(question) > 500 {
		writeError(w, http.StatusBadRequest, "question must be 3-500 characters")
		return
	}

	if s.matcher != nil {
		if m := s.matcher.Match(question); m.Intent != "FALLBACK" {
			writeJSON(w, http.StatusOK, remote.HelpAnswer{
				Answer: m.Answer,
				Source: remote.SourceKnowledgeBase,
			})
			return
		}
	}

	if s.remote != nil && s.remote.Configured() {
		answer, err := s.remote.Answer(r.Context(), question)
		if err == nil {
			writeJSON(w, http.StatusOK, answer)
			return
		}
		log.Printf("[HELP] remote answer failed: %v", err)
	}

	writeJSON(w, http.StatusOK, remote.HelpAnswer{
		Answer: remote.FallbackAnswer,
		Source: remote.SourceFallback,
	})
}

// #endregion help

// #region chat

type chatMessageRequest struct {
	Message string `json:"message"`
}

type chatMessageResponse struct {
	Intent     string  `json:"intent"`
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

// handleChat resolves one chatbot turn against the intent catalog.
func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.matcher == nil {
		writeError(w, http.StatusServiceUnavailable, "chatbot not available")
		return
	}

	var req chatMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m := s.matcher.Match(req.Message)
	writeJSON(w, http.StatusOK, chatMessageResponse{
		Intent:     m.Intent,
		Answer:     m.Answer,
		Confidence: m.Confidence,
	})
}

// #endregion chat

// #region guidance

type guidanceRequest struct {
	Form    form.Snapshot `json:"form"`
	DraftID string        `json:"draftId"`
}

type guidanceMessage struct {
	Text    string           `json:"text"`
	Intent  assistant.Intent `json:"intent"`
	Autofix *autofixPayload  `json:"autofix,omitempty"`
}

type autofixPayload struct {
	Label      string `json:"label"`
	FixID      string `json:"fixId"`
	TargetStep int    `json:"targetStep"`
}

type guidanceResponse struct {
	Confidence     int               `json:"confidence"`
	NextBestAction string            `json:"nextBestAction"`
	Tone           assistant.Tone    `json:"tone"`
	Primary        *guidanceMessage  `json:"primary,omitempty"`
	Secondary      []guidanceMessage `json:"secondary,omitempty"`
}

// handleGuidance runs one evaluation pass over a posted snapshot
// using the server-held memory, so cooldowns and anti-repeat hold
// across requests.
func (s *server) handleGuidance(w http.ResponseWriter, r *http.Request) {
	if s.memory == nil {
		writeError(w, http.StatusServiceUnavailable, "guidance not available")
		return
	}

	var req guidanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	eval := assistant.EvaluateForm(req.Form)

	s.rngMu.Lock()
	res := assistant.Respond(req.Form, s.memory, s.rng, time.Now())
	s.rngMu.Unlock()

	out := guidanceResponse{
		Confidence:     eval.Confidence,
		NextBestAction: eval.NextBestAction,
		Tone:           res.Tone,
	}
	if res.Primary != nil {
		out.Primary = toGuidanceMessage(*res.Primary)
	}
	for _, m := range res.Secondary {
		out.Secondary = append(out.Secondary, *toGuidanceMessage(m))
	}

	if s.drafts != nil && res.Primary != nil {
		err := s.drafts.LogGuidance(draft.GuidanceEntry{
			DraftID:    req.DraftID,
			Intent:     string(res.Primary.Intent),
			MessageID:  s.memory.LastMessageID(),
			Tone:       string(res.Tone),
			Confidence: eval.Confidence,
		})
		if err != nil {
			log.Printf("[GUIDANCE] audit log failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func toGuidanceMessage(m assistant.Message) *guidanceMessage {
	out := &guidanceMessage{Text: m.Text, Intent: m.Intent}
	if m.Autofix != nil {
		out.Autofix = &autofixPayload{
			Label:      m.Autofix.Label,
			FixID:      m.Autofix.FixID,
			TargetStep: m.Autofix.TargetStep,
		}
	}
	return out
}

// #endregion guidance

// #region tips

type tipsRequest struct {
	Form form.Snapshot `json:"form"`
	Step int           `json:"step"`
}

type tipPayload struct {
	Text      string `json:"text"`
	Secondary string `json:"secondary,omitempty"`
	Severity  string `json:"severity"`
}

// handleTips evaluates field-level tips for the posted snapshot at
// one wizard step.
func (s *server) handleTips(w http.ResponseWriter, r *http.Request) {
	var req tipsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tips := fieldtips.Evaluate(req.Form, req.Step, s.tips, time.Now())
	out := make(map[string]tipPayload, len(tips))
	for key, tip := range tips {
		out[key] = tipPayload{Text: tip.Primary, Secondary: tip.Secondary, Severity: string(tip.Severity)}
	}
	writeJSON(w, http.StatusOK, out)
}

// #endregion tips

// #region script

type scriptResponse struct {
	Line string `json:"line"`
}

// handleScript fires a character-mode event. A cooled-down event
// returns an empty line, not an error.
func (s *server) handleScript(w http.ResponseWriter, r *http.Request) {
	if s.script == nil {
		writeError(w, http.StatusServiceUnavailable, "character mode not available")
		return
	}
	event := script.Event(chi.URLParam(r, "event"))
	writeJSON(w, http.StatusOK, scriptResponse{Line: s.script.FireEvent(event)})
}

// #endregion script

// #region drafts

type draftRequest struct {
	Form form.Snapshot `json:"form"`
	Step int           `json:"step"`
}

type draftSummary struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	CurrentStep       int    `json:"currentStep"`
	Title             string `json:"title"`
	TitleType         string `json:"titleType"`
	ReleaseYear       *int   `json:"releaseYear"`
	ConfidenceScore   int    `json:"confidenceScore"`
	CompletionPercent int    `json:"completionPercent"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

type draftResponse struct {
	draftSummary
	Form form.Snapshot `json:"form"`
}

func toSummary(rec draft.Record) draftSummary {
	return draftSummary{
		ID:                rec.ID,
		Status:            string(rec.Status),
		CurrentStep:       rec.CurrentStep,
		Title:             rec.Title,
		TitleType:         rec.TitleType,
		ReleaseYear:       rec.ReleaseYear,
		ConfidenceScore:   rec.ConfidenceScore,
		CompletionPercent: rec.CompletionPercent,
		CreatedAt:         rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         rec.UpdatedAt.Format(time.RFC3339),
	}
}

func toDraftResponse(rec draft.Record) draftResponse {
	return draftResponse{draftSummary: toSummary(rec), Form: rec.Form}
}

func (s *server) handleDraftCreate(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := s.drafts.Create(req.Form, req.Step)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create draft failed")
		return
	}
	writeJSON(w, http.StatusCreated, toDraftResponse(rec))
}

func (s *server) handleDraftList(w http.ResponseWriter, r *http.Request) {
	status := draft.Status(r.URL.Query().Get("status"))
	recs, err := s.drafts.List(status, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list drafts failed")
		return
	}
	out := make([]draftSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toSummary(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleDraftLatest(w http.ResponseWriter, _ *http.Request) {
	rec, err := s.drafts.LoadLatest()
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no open draft")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load draft failed")
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

func (s *server) handleDraftGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.drafts.Get(chi.URLParam(r, "id"))
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "draft not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load draft failed")
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

func (s *server) handleDraftSave(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	err := s.drafts.Save(id, req.Form, req.Step)
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "draft not found or already submitted")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "save draft failed")
		return
	}
	rec, err := s.drafts.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load draft failed")
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

func (s *server) handleDraftSubmit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.drafts.Submit(id)
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "draft not found or already submitted")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "submit draft failed")
		return
	}
	rec, err := s.drafts.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load draft failed")
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

func (s *server) handleDraftDelete(w http.ResponseWriter, r *http.Request) {
	err := s.drafts.Delete(chi.URLParam(r, "id"))
	if errors.Is(err, draft.ErrNotFound) {
		writeError(w, http.StatusNotFound, "draft not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "delete draft failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// #endregion drafts
