package assistant

// #region imports
import (
	"math/rand"
	"time"
)

// #endregion

// #region tone

// Tone is the emotional register applied to a message.
type Tone string

const (
	ToneNeutral     Tone = "neutral"
	ToneEncouraging Tone = "encouraging"
	ToneCalm        Tone = "calm"
	ToneDirect      Tone = "direct"
)

// toneIdleThreshold switches to a calm register when the user has been
// away a while, shorter than the idle-nudge window.
const toneIdleThreshold = 15 * time.Second

// SelectTone picks a register from context. Decision order: high
// frustration, dropping confidence, idleness, active blockers,
// improving confidence, then neutral.
func SelectTone(confidence, prevConfidence, frustration int, hasBlocker bool, idleSince, now time.Time) Tone {
	var idle time.Duration
	if !idleSince.IsZero() {
		idle = now.Sub(idleSince)
	}

	switch {
	case frustration >= 3:
		return ToneCalm
	case prevConfidence > 0 && confidence < prevConfidence:
		return ToneEncouraging
	case idle > toneIdleThreshold:
		return ToneCalm
	case hasBlocker:
		return ToneDirect
	case prevConfidence > 0 && confidence > prevConfidence:
		return ToneEncouraging
	}
	return ToneNeutral
}

// #endregion tone

// #region apply

var tonePrefixes = map[Tone][]string{
	ToneEncouraging: {"Great progress.", "You're doing well.", "Keep it up."},
	ToneCalm:        {"No worries.", "Take your time.", "No rush."},
}

var toneSuffixes = map[Tone][]string{
	ToneEncouraging: {"You've got this.", "Almost there."},
	ToneCalm:        {"I'm here to help.", "One step at a time."},
}

// ApplyTone decorates text for the calm and encouraging registers:
// 40% chance of a prefix, else 30% chance of a suffix, never both.
// Neutral and direct text passes through untouched.
func ApplyTone(text string, tone Tone, rng *rand.Rand) string {
	if tone == ToneNeutral || tone == ToneDirect {
		return text
	}
	prefixes := tonePrefixes[tone]
	suffixes := toneSuffixes[tone]

	if len(prefixes) > 0 && rng.Float64() < 0.4 {
		return prefixes[rng.Intn(len(prefixes))] + " " + text
	}
	if len(suffixes) > 0 && rng.Float64() < 0.3 {
		return text + " " + suffixes[rng.Intn(len(suffixes))]
	}
	return text
}

// #endregion apply
