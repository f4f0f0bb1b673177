package chatbot

// #region imports
import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
)

// #endregion

// #region normalization

var (
	apostrophePattern = regexp.MustCompile("['’]")
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// normalize lowercases the input, strips apostrophes, replaces other
// punctuation with spaces, and collapses runs of whitespace.
func normalize(input string) string {
	s := strings.ToLower(input)
	s = apostrophePattern.ReplaceAllString(s, "")
	s = nonAlnumPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// #endregion normalization

// #region scoring

// matchThreshold is the minimum combined score before an intent is
// trusted over the fallback.
const matchThreshold = 3

// scoreIntent combines trigger-phrase and keyword evidence. An exact
// trigger match scores 10; a trigger found as a substring scores
// 3 plus its word count, so longer, more specific triggers win.
// Each keyword present as a whole word adds 1.
func scoreIntent(normalized string, inputWords []string, entry IntentEntry) int {
	score := 0

	for _, trigger := range entry.Triggers {
		switch {
		case normalized == trigger:
			score += 10
		case strings.Contains(normalized, trigger):
			score += 3 + len(strings.Fields(trigger))
		}
	}

	wordSet := make(map[string]bool, len(inputWords))
	for _, w := range inputWords {
		wordSet[w] = true
	}
	for _, kw := range entry.Keywords {
		if wordSet[kw] {
			score++
		}
	}
	return score
}

// #endregion scoring

// #region special-intents

var greetingWords = map[string]bool{
	"hello": true, "hi": true, "hey": true, "howdy": true, "hiya": true, "yo": true,
}
var greetingPhrases = map[string]bool{
	"good morning": true, "good evening": true, "good afternoon": true, "hey there": true,
}

var thanksWords = map[string]bool{
	"thanks": true, "thx": true, "cheers": true, "ty": true,
}
var thanksPhrases = map[string]bool{
	"thank you": true, "appreciate it": true, "got it": true, "perfect": true,
	"awesome": true, "great thanks": true, "thanks a lot": true, "many thanks": true,
}

// isGreeting matches only when the whole input is a greeting, so a
// question that merely contains "hi" is never hijacked.
func isGreeting(normalized string, inputWords []string) bool {
	if greetingPhrases[normalized] {
		return true
	}
	if len(inputWords) <= 2 {
		for _, w := range inputWords {
			if greetingWords[w] {
				return true
			}
		}
	}
	return false
}

func isThanks(normalized string, inputWords []string) bool {
	if thanksPhrases[normalized] {
		return true
	}
	if len(inputWords) <= 3 {
		for _, w := range inputWords {
			if thanksWords[w] {
				return true
			}
		}
	}
	return false
}

// #endregion special-intents

// #region matcher

// Match is one resolved chat turn.
type Match struct {
	Intent     string
	Answer     string
	Confidence float64
}

// Matcher resolves free-text questions against the intent catalog.
// It tracks the last variant served per intent so consecutive answers
// never repeat. Safe for concurrent use.
type Matcher struct {
	mu           sync.Mutex
	rng          *rand.Rand
	entries      []IntentEntry
	byIntent     map[string]*IntentEntry
	lastVariant  map[string]int
	lastFallback int
}

// NewMatcher builds a matcher over the stock catalog. rng may be nil
// for real randomness.
func NewMatcher(rng *rand.Rand) *Matcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	m := &Matcher{
		rng:          rng,
		entries:      Intents,
		byIntent:     make(map[string]*IntentEntry, len(Intents)),
		lastVariant:  make(map[string]int),
		lastFallback: -1,
	}
	for i := range m.entries {
		m.byIntent[m.entries[i].Intent] = &m.entries[i]
	}
	return m
}

// Match resolves one user input. Greetings and thanks are handled by
// exact phrase detection before scoring; everything else goes through
// trigger plus keyword scoring with a single winner above threshold.
func (m *Matcher) Match(input string) Match {
	normalized := normalize(input)
	if normalized == "" {
		return Match{Intent: "FALLBACK", Answer: m.pickFallback()}
	}

	inputWords := strings.Fields(normalized)

	if isGreeting(normalized, inputWords) {
		if entry := m.byIntent["GREETING"]; entry != nil {
			return Match{Intent: "GREETING", Answer: m.pickVariant(entry), Confidence: 1}
		}
	}
	if isThanks(normalized, inputWords) {
		if entry := m.byIntent["THANKS"]; entry != nil {
			return Match{Intent: "THANKS", Answer: m.pickVariant(entry), Confidence: 1}
		}
	}

	var best *IntentEntry
	bestScore := 0
	for i := range m.entries {
		entry := &m.entries[i]
		if entry.Intent == "GREETING" || entry.Intent == "THANKS" {
			continue
		}
		if score := scoreIntent(normalized, inputWords, *entry); score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if best == nil || bestScore < matchThreshold {
		return Match{Intent: "FALLBACK", Answer: m.pickFallback()}
	}

	confidence := float64(bestScore) / 10
	if confidence > 1 {
		confidence = 1
	}
	return Match{Intent: best.Intent, Answer: m.pickVariant(best), Confidence: confidence}
}

// pickVariant draws an answer, never repeating the previous one for
// the same intent.
func (m *Matcher) pickVariant(entry *IntentEntry) string {
	pool := entry.Variants
	if len(pool) == 0 {
		return ""
	}
	if len(pool) == 1 {
		return pool[0]
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	last, seen := m.lastVariant[entry.Intent]
	if !seen {
		last = -1
	}
	idx := m.rng.Intn(len(pool))
	for idx == last {
		idx = m.rng.Intn(len(pool))
	}
	m.lastVariant[entry.Intent] = idx
	return pool[idx]
}

func (m *Matcher) pickFallback() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.rng.Intn(len(FallbackVariants))
	for len(FallbackVariants) > 1 && idx == m.lastFallback {
		idx = m.rng.Intn(len(FallbackVariants))
	}
	m.lastFallback = idx
	return FallbackVariants[idx]
}

// #endregion matcher
