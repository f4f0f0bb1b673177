// Package remote talks to the hosted language model used for voice
// transcript parsing and free-form help answers. Everything it
// returns is sanitized before touching the form; the model never
// writes directly.
package remote

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"titleguide/internal/form"
)

// #endregion

// #region config

// Config holds the remote model settings.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	Referer    string
	Timeout    time.Duration
	MaxRetries int
}

// DefaultConfig returns production settings minus the API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://openrouter.ai/api/v1/chat/completions",
		Model:      "google/gemini-flash-1.5",
		Referer:    "http://localhost:8080",
		Timeout:    30 * time.Second,
		MaxRetries: 1,
	}
}

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("remote model not configured")

// ErrEmptyResponse is returned when the model answers with no usable
// text.
var ErrEmptyResponse = errors.New("empty model response")

// #endregion config

// #region client

// Client is a thin chat-completions client with bounded retries.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete runs one chat completion, retrying transient failures.
func (c *Client) complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		text, err := c.doRequest(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (c *Client) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("model status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// #endregion client

// #region parse

// Transcript length bounds enforced before any model call.
const (
	MinTranscriptLen = 5
	MaxTranscriptLen = 5000
)

// ErrTranscriptLength is returned for out-of-bounds transcripts.
var ErrTranscriptLength = errors.New("transcript must be 5-5000 characters")

// ParseTranscript extracts structured form data from a spoken
// description. The model's output is sanitized: unknown enum values
// are dropped, not passed through.
func (c *Client) ParseTranscript(ctx context.Context, transcript string) (form.Parsed, error) {
	transcript = strings.TrimSpace(transcript)
	if len(transcript) < MinTranscriptLen || len(transcript) > MaxTranscriptLen {
		return form.Parsed{}, ErrTranscriptLength
	}

	text, err := c.complete(ctx, parseSystemPrompt, transcript, 0.1, 1000)
	if err != nil {
		return form.Parsed{}, err
	}

	raw, err := extractJSON(text)
	if err != nil {
		return form.Parsed{}, err
	}

	var parsed form.Parsed
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return form.Parsed{}, fmt.Errorf("decode parsed form: %w", err)
	}
	return Sanitize(parsed), nil
}

// extractJSON pulls the first JSON object out of model text, coping
// with markdown fences and surrounding prose.
func extractJSON(text string) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), nil
	}

	start := strings.IndexByte(cleaned, '{')
	if start >= 0 {
		depth := 0
		for i := start; i < len(cleaned); i++ {
			switch cleaned[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				candidate := cleaned[start : i+1]
				if json.Valid([]byte(candidate)) {
					return json.RawMessage(candidate), nil
				}
				return nil, errors.New("no valid JSON in model response")
			}
		}
	}
	return nil, errors.New("no valid JSON in model response")
}

// #endregion parse

// #region sanitize

var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "KRW": true,
	"INR": true, "CAD": true, "AUD": true, "CNY": true, "BRL": true,
}

var validTypes = map[form.TitleType]bool{
	form.TypeFilm: true, form.TypeMadeForTV: true, form.TypeMadeForVideo: true,
	form.TypeMusicVideo: true, form.TypePodcastSeries: true, form.TypeVideoGame: true,
}

var validSubtypes = map[form.TitleSubtype]bool{
	form.SubtypeFeatureLength: true, form.SubtypeShortSubject: true,
}

var validStatuses = map[form.TitleStatus]bool{
	form.StatusReleased: true, form.StatusLimitedScreenings: true,
	form.StatusCompletedNotShown: true, form.StatusNotComplete: true,
}

var validRoles = map[form.ContributorRole]bool{
	form.RoleProducerDirectorWriter: true, form.RoleCastCrew: true,
	form.RolePublicist: true, form.RoleNoneOfAbove: true,
}

var validReleaseTypes = map[form.ReleaseType]bool{
	form.ReleaseTheatrical: true, form.ReleaseDigital: true,
	form.ReleasePhysical: true, form.ReleaseTV: true, form.ReleaseFestival: true,
}

// Sanitize enforces enum and range validity on model output. Invalid
// enum values reset to unset, out-of-range years are dropped, and
// unnamed directors are removed.
func Sanitize(p form.Parsed) form.Parsed {
	if p.Core != nil {
		c := *p.Core
		c.Title = strings.TrimSpace(c.Title)
		if !validTypes[c.Type] {
			c.Type = form.TypeUnset
		}
		if !validSubtypes[c.Subtype] {
			c.Subtype = form.SubtypeUnset
		}
		if !validStatuses[c.Status] {
			c.Status = form.StatusUnset
		}
		if !validRoles[c.ContributorRole] {
			c.ContributorRole = form.RoleUnset
		}
		if c.Year != nil && (*c.Year < 1800 || *c.Year > 2100) {
			c.Year = nil
		}
		p.Core = &c
	}

	if p.Identity != nil {
		id := *p.Identity
		id.CountriesOfOrigin = trimNonEmpty(id.CountriesOfOrigin)
		id.Languages = trimNonEmpty(id.Languages)
		id.Genres = trimNonEmpty(id.Genres)
		p.Identity = &id
	}

	if p.Mandatory != nil {
		m := *p.Mandatory
		rows := make([]form.ReleaseDate, 0, len(m.ReleaseDates))
		for _, rd := range m.ReleaseDates {
			if !validReleaseTypes[rd.ReleaseType] {
				rd.ReleaseType = form.ReleaseUnset
			}
			rows = append(rows, rd)
		}
		m.ReleaseDates = rows
		p.Mandatory = &m
	}

	if p.Production != nil {
		prod := *p.Production
		if prod.Budget != nil {
			b := *prod.Budget
			if !validCurrencies[b.Currency] {
				b.Currency = ""
			}
			if b.Amount != nil && *b.Amount <= 0 {
				b.Amount = nil
			}
			if b.Currency == "" && b.Amount == nil {
				prod.Budget = nil
			} else {
				prod.Budget = &b
			}
		}
		dirs := make([]form.Director, 0, len(prod.Directors))
		for _, d := range prod.Directors {
			d.Name = strings.TrimSpace(d.Name)
			if d.Name == "" {
				continue
			}
			if d.Role == "" {
				d.Role = "Director"
			}
			dirs = append(dirs, d)
		}
		prod.Directors = dirs
		p.Production = &prod
	}

	out := make([]string, 0, len(p.Assumptions))
	for _, a := range p.Assumptions {
		if strings.TrimSpace(a) != "" {
			out = append(out, a)
		}
	}
	p.Assumptions = out
	return p
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// #endregion sanitize

// #region help

// HelpAnswer is one resolved help response with its provenance.
type HelpAnswer struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

// Help answer sources.
const (
	SourceKnowledgeBase = "knowledge_base"
	SourceAI            = "ai"
	SourceFallback      = "fallback"
)

// FallbackAnswer is served when neither the catalog nor the model can
// help.
const FallbackAnswer = "I don't have a specific answer for that question, but the IMDb Help Center (help.imdb.com) has detailed guides for every part of the submission process. You can also check the info buttons next to each field for quick tips."

// Answer asks the model a free-form help question.
func (c *Client) Answer(ctx context.Context, question string) (HelpAnswer, error) {
	text, err := c.complete(ctx, helpSystemPrompt, question, 0.3, 300)
	if err != nil {
		return HelpAnswer{}, err
	}
	return HelpAnswer{Answer: text, Source: SourceAI}, nil
}

// #endregion help
