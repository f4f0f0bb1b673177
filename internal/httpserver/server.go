// Package httpserver exposes the guidance engine, chatbot, transcript
// parser, and draft store over JSON HTTP.
package httpserver

// #region imports
import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"titleguide/internal/assistant"
	"titleguide/internal/chatbot"
	"titleguide/internal/draft"
	"titleguide/internal/fieldtips"
	"titleguide/internal/remote"
	"titleguide/internal/script"
)

// #endregion

// #region config

// Config holds runtime options for the HTTP server.
type Config struct {
	Address string
	Drafts  *draft.Store
	Matcher *chatbot.Matcher
	Remote  *remote.Client
	Memory  *assistant.Memory
	Script  *script.Engine
}

// New constructs the HTTP server with its middleware stack.
func New(cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      NewHandler(cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewHandler builds the router; split out so tests can drive it with
// httptest.
func NewHandler(cfg Config) http.Handler {
	s := &server{
		drafts:  cfg.Drafts,
		matcher: cfg.Matcher,
		remote:  cfg.Remote,
		memory:  cfg.Memory,
		script:  cfg.Script,
		tips:    fieldtips.NewPicker(nil),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	router.Get("/healthz", s.handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Post("/help", s.handleHelp)
		r.Post("/chat", s.handleChat)
		r.Post("/guidance", s.handleGuidance)
		r.Post("/tips", s.handleTips)
		r.Post("/script/{event}", s.handleScript)

		r.Route("/drafts", func(r chi.Router) {
			r.Post("/", s.handleDraftCreate)
			r.Get("/", s.handleDraftList)
			r.Get("/latest", s.handleDraftLatest)
			r.Get("/{id}", s.handleDraftGet)
			r.Put("/{id}", s.handleDraftSave)
			r.Post("/{id}/submit", s.handleDraftSubmit)
			r.Delete("/{id}", s.handleDraftDelete)
		})
	})

	return router
}

type server struct {
	drafts  *draft.Store
	matcher *chatbot.Matcher
	remote  *remote.Client
	memory  *assistant.Memory
	script  *script.Engine
	tips    *fieldtips.Picker

	// rngMu guards rng; rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// #endregion config

// #region responses

// decodeBody unmarshals the request body into v, writing a 400 on
// malformed JSON. Returns false when the handler should bail out.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// #endregion responses
