package assistant

// #region imports
import (
	"sync"
	"time"
)

// #endregion

// #region cooldowns

// cooldowns holds the per-intent re-show window.
var cooldowns = map[Intent]time.Duration{
	IntentMissingEvidence:     20 * time.Second,
	IntentMissingReleaseDate:  20 * time.Second,
	IntentCreditsRequired:     25 * time.Second,
	IntentYearFormat:          15 * time.Second,
	IntentTypeSubtypeMismatch: 30 * time.Second,
	IntentTitleCapitalization: 30 * time.Second,
	IntentNextBestAction:      15 * time.Second,
	IntentAlmostReady:         25 * time.Second,
	IntentIdleNudge:           30 * time.Second,
	IntentSuccessAck:          10 * time.Second,
}

const defaultCooldown = 20 * time.Second

const maxFrustration = 5

// #endregion cooldowns

// #region memory

// Memory tracks guidance context across interactions within a
// process. Not persisted; a fresh instance starts clean. All methods
// are safe for concurrent use by the loop and UI handlers.
type Memory struct {
	mu             sync.Mutex
	now            func() time.Time
	lastIntent     Intent
	lastMessageID  string
	cooldownExpiry map[Intent]time.Time
	recentFixes    []string
	frustration    int
	idleSince      time.Time
	prevConfidence int
}

// NewMemory creates a Memory. now may be nil to use the wall clock;
// tests inject a fake clock.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		now:            now,
		cooldownExpiry: make(map[Intent]time.Time),
		idleSince:      now(),
	}
}

// #endregion memory

// #region mutations

// RecordIntent marks an intent as shown: arms its cooldown, remembers
// the message id for anti-repeat, and resets the idle anchor.
func (m *Memory) RecordIntent(intent Intent, messageID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := cooldowns[intent]
	if !ok {
		d = defaultCooldown
	}
	m.lastIntent = intent
	m.lastMessageID = messageID
	m.cooldownExpiry[intent] = m.now().Add(d)
	m.idleSince = m.now()
}

// RecordFix notes an applied auto-fix and eases frustration.
func (m *Memory) RecordFix(fixID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recentFixes = append(m.recentFixes, fixID)
	if m.frustration > 0 {
		m.frustration--
	}
	m.idleSince = m.now()
}

// ClearFixes empties the recent-fix list once consumed by a cycle.
func (m *Memory) ClearFixes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recentFixes = nil
}

// BumpFrustration increments the frustration counter, clamped at 5.
func (m *Memory) BumpFrustration() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frustration < maxFrustration {
		m.frustration++
	}
}

// ResetIdle restarts the idle timer.
func (m *Memory) ResetIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idleSince = m.now()
}

// Tick stores the latest confidence. No-op when unchanged, so
// reactive consumers are not renotified for identical values.
func (m *Memory) Tick(confidence int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prevConfidence == confidence {
		return
	}
	m.prevConfidence = confidence
}

// Reset restores the initial state.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastIntent = ""
	m.lastMessageID = ""
	m.cooldownExpiry = make(map[Intent]time.Time)
	m.recentFixes = nil
	m.frustration = 0
	m.idleSince = m.now()
	m.prevConfidence = 0
}

// #endregion mutations

// #region queries

// IsOnCooldown reports whether the intent's cooldown window is open.
func (m *Memory) IsOnCooldown(intent Intent) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.cooldownExpiry[intent]
	return ok && m.now().Before(expiry)
}

// LastIntent returns the most recently shown intent.
func (m *Memory) LastIntent() Intent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastIntent
}

// LastMessageID returns the id of the most recently shown variant.
func (m *Memory) LastMessageID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMessageID
}

// PrevConfidence returns the confidence stored by the last Tick.
func (m *Memory) PrevConfidence() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prevConfidence
}

// IdleSince returns the current idle anchor.
func (m *Memory) IdleSince() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idleSince
}

// Frustration returns the current frustration score in [0, 5].
func (m *Memory) Frustration() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frustration
}

// RecentFixes returns a copy of the pending fix ids.
func (m *Memory) RecentFixes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.recentFixes...)
}

// Snapshot captures the fields the selector needs in one locked read.
func (m *Memory) Snapshot() MemorySnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MemorySnapshot{
		RecentFixes: append([]string(nil), m.recentFixes...),
		Frustration: m.frustration,
		IdleSince:   m.idleSince,
		OnCooldown:  m.IsOnCooldown,
	}
}

// MemorySnapshot is the selector's read-only view of Memory.
type MemorySnapshot struct {
	RecentFixes []string
	Frustration int
	IdleSince   time.Time
	OnCooldown  func(Intent) bool
}

// #endregion queries
