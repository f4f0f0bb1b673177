// Package script is the character-mode dialogue engine: canned lines
// fired on wizard events, rate limited per event and globally.
package script

// #region imports
import (
	"math/rand"
	"sync"
	"time"
)

// #endregion

// #region events

// Event names a wizard moment that can trigger a character line.
type Event string

const (
	EventFieldValid   Event = "fieldValid"
	EventStepComplete Event = "stepComplete"
	EventWarningShown Event = "warningShown"
	EventIdle10s      Event = "idle10s"
)

// eventCooldowns is the minimum gap between two lines for the same
// event.
var eventCooldowns = map[Event]time.Duration{
	EventFieldValid:   5 * time.Second,
	EventStepComplete: 3 * time.Second,
	EventWarningShown: 8 * time.Second,
	EventIdle10s:      30 * time.Second,
}

// globalCooldown is the minimum gap between any two lines.
const globalCooldown = 3 * time.Second

// #endregion events

// #region lines

var characterLines = map[Event][]string{
	EventFieldValid: {
		"Nice — that looks good.",
		"Got it, locked in.",
		"Solid choice.",
		"Looking good so far.",
		"Great, that one's done.",
	},
	EventStepComplete: {
		"Step done! Let's keep going.",
		"All checked off — nice work.",
		"You're on a roll.",
		"That section's solid.",
		"Onward!",
	},
	EventWarningShown: {
		"Heads up — check the sidebar.",
		"Something flagged. Worth a look.",
		"A new warning popped up.",
	},
	EventIdle10s: {
		"Need help with anything?",
		"Still there? Take your time.",
		"I'm here if you need me.",
		"No rush — just checking in.",
	},
}

// #endregion lines

// #region engine

// Engine fires character lines with cooldown enforcement. Safe for
// concurrent use.
type Engine struct {
	mu         sync.Mutex
	rng        *rand.Rand
	now        func() time.Time
	lastFired  map[Event]time.Time
	lastGlobal time.Time
}

// NewEngine creates an engine. rng and now may be nil; tests inject
// both.
func NewEngine(rng *rand.Rand, now func() time.Time) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		rng:       rng,
		now:       now,
		lastFired: make(map[Event]time.Time),
	}
}

// FireEvent returns a line for the event, or "" when either the
// global gap or the event's own cooldown suppresses it. Unknown
// events always return "".
func (e *Engine) FireEvent(event Event) string {
	lines, ok := characterLines[event]
	if !ok || len(lines) == 0 {
		return ""
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	if !e.lastGlobal.IsZero() && now.Sub(e.lastGlobal) < globalCooldown {
		return ""
	}
	if last, fired := e.lastFired[event]; fired && now.Sub(last) < eventCooldowns[event] {
		return ""
	}

	line := lines[e.rng.Intn(len(lines))]
	e.lastFired[event] = now
	e.lastGlobal = now
	return line
}

// Reset clears all cooldown state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastFired = make(map[Event]time.Time)
	e.lastGlobal = time.Time{}
}

// #endregion engine
