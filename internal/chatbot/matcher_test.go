package chatbot

import (
	"math/rand"
	"testing"
)

func newTestMatcher() *Matcher {
	return NewMatcher(rand.New(rand.NewSource(1)))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello!", "hello"},
		{"What's   VALID evidence?", "whats valid evidence"},
		{"  genre, genres & more  ", "genre genres more"},
		{"???", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGreetingExactOnly(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		in   string
		want string
	}{
		{"hi", "GREETING"},
		{"Hey there", "GREETING"},
		{"good morning", "GREETING"},
		// A question containing a greeting word must not be hijacked.
		{"hi there, how should i write the title", "HOW_TO_WRITE_TITLE"},
	}
	for _, tt := range tests {
		got := m.Match(tt.in)
		if got.Intent != tt.want {
			t.Errorf("Match(%q).Intent = %s, want %s", tt.in, got.Intent, tt.want)
		}
	}

	if got := m.Match("hello"); got.Confidence != 1 {
		t.Errorf("greeting confidence = %v, want 1", got.Confidence)
	}
}

func TestThanksDetection(t *testing.T) {
	m := newTestMatcher()

	for _, in := range []string{"thanks", "thank you", "thanks a lot", "got it"} {
		got := m.Match(in)
		if got.Intent != "THANKS" {
			t.Errorf("Match(%q).Intent = %s, want THANKS", in, got.Intent)
		}
	}

	// Longer sentences with a thanks word fall through to scoring.
	got := m.Match("thanks but what counts as valid evidence")
	if got.Intent != "WHAT_IS_EVIDENCE" {
		t.Errorf("intent = %s, want WHAT_IS_EVIDENCE", got.Intent)
	}
}

func TestIntentMatching(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"What counts as valid evidence?", "WHAT_IS_EVIDENCE"},
		{"can i use wikipedia evidence", "EVIDENCE_INVALID"},
		{"how is score calculated", "CONFIDENCE_SCORE"},
		{"why was it rejected", "REJECTION_REASONS"},
		{"how long does review take", "REVIEW_TIMELINE"},
		{"what happens next after i submit", "AFTER_SUBMIT"},
		{"feature length or short subject", "SUBTYPE"},
		{"how do i add a release date", "RELEASE_DATES"},
		{"country of origin vs filming location", "COUNTRY_ORIGIN"},
		{"how many genres should i pick", "GENRES"},
		{"tell me about imdb", "WHAT_IS_IMDB"},
		{"submit music video", "MUSIC_VIDEO"},
	}

	m := newTestMatcher()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := m.Match(tt.in)
			if got.Intent != tt.want {
				t.Fatalf("intent = %s, want %s", got.Intent, tt.want)
			}
			if got.Answer == "" {
				t.Fatal("matched intent returned empty answer")
			}
			if got.Confidence <= 0 || got.Confidence > 1 {
				t.Fatalf("confidence = %v, want (0, 1]", got.Confidence)
			}
		})
	}
}

func TestExactTriggerScoresHigher(t *testing.T) {
	norm := normalize("confidence score")
	wordsIn := []string{"confidence", "score"}

	var confEntry, vagueEntry IntentEntry
	for _, e := range Intents {
		switch e.Intent {
		case "CONFIDENCE_SCORE":
			confEntry = e
		case "HOW_SUBMISSIONS_WORK":
			vagueEntry = e
		}
	}

	exact := scoreIntent(norm, wordsIn, confEntry)
	other := scoreIntent(norm, wordsIn, vagueEntry)
	if exact < 10 {
		t.Fatalf("exact trigger score = %d, want >= 10", exact)
	}
	if exact <= other {
		t.Fatalf("exact match %d must dominate unrelated intent %d", exact, other)
	}
}

func TestFallbackBelowThreshold(t *testing.T) {
	m := newTestMatcher()

	for _, in := range []string{"", "quantum entanglement recipes", "zzz qqq"} {
		got := m.Match(in)
		if got.Intent != "FALLBACK" {
			t.Errorf("Match(%q).Intent = %s, want FALLBACK", in, got.Intent)
		}
		if got.Confidence != 0 {
			t.Errorf("fallback confidence = %v, want 0", got.Confidence)
		}
		if got.Answer == "" {
			t.Error("fallback answer must not be empty")
		}
	}
}

func TestVariantsNeverRepeatBackToBack(t *testing.T) {
	m := newTestMatcher()

	last := m.Match("what counts as evidence").Answer
	for i := 0; i < 30; i++ {
		got := m.Match("what counts as evidence").Answer
		if got == last {
			t.Fatalf("iteration %d repeated answer %q", i, got)
		}
		last = got
	}

	last = m.Match("gibberish zzz").Answer
	for i := 0; i < 30; i++ {
		got := m.Match("gibberish zzz").Answer
		if got == last {
			t.Fatalf("iteration %d repeated fallback %q", i, got)
		}
		last = got
	}
}

func TestCatalogShape(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Intents {
		if e.Intent == "" {
			t.Fatal("entry with empty intent id")
		}
		if seen[e.Intent] {
			t.Fatalf("duplicate intent %s", e.Intent)
		}
		seen[e.Intent] = true
		if len(e.Variants) == 0 {
			t.Errorf("%s has no answer variants", e.Intent)
		}
	}
	if len(Intents) != 32 {
		t.Fatalf("catalog has %d intents, want 32", len(Intents))
	}
}
