package assistant

import "time"

// #region selector

// idleNudgeThreshold is how long the form must sit untouched before
// the idle nudge becomes eligible.
const idleNudgeThreshold = 20 * time.Second

// almostReadyConfidence gates the encouragement intent.
const almostReadyConfidence = 80

// SelectIntent picks one primary intent plus up to two secondary
// intents, or nil when nothing should be shown. First matching rule
// wins:
//  1. recent fixes → SUCCESS_ACK
//  2. blockers (declared scan order)
//  3. warnings
//  4. next best action
//  5. confidence ≥ 80 → ALMOST_READY
//  6. idle > 20s → IDLE_NUDGE
func SelectIntent(eval Evaluation, mem MemorySnapshot, now time.Time) *Selection {
	var idle time.Duration
	if !mem.IdleSince.IsZero() {
		idle = now.Sub(mem.IdleSince)
	}

	if len(mem.RecentFixes) > 0 && !mem.OnCooldown(IntentSuccessAck) {
		var remaining []Intent
		for _, b := range eval.Blockers {
			if !mem.OnCooldown(b) {
				remaining = append(remaining, b)
			}
		}
		for _, w := range eval.Warnings {
			if !mem.OnCooldown(w) {
				remaining = append(remaining, w)
			}
		}
		return &Selection{Primary: IntentSuccessAck, Secondary: capTwo(remaining)}
	}

	var activeBlockers []Intent
	for _, b := range eval.Blockers {
		if !mem.OnCooldown(b) {
			activeBlockers = append(activeBlockers, b)
		}
	}
	if len(activeBlockers) > 0 {
		rest := append(append([]Intent(nil), activeBlockers[1:]...), eval.Warnings...)
		return &Selection{Primary: activeBlockers[0], Secondary: capTwo(rest)}
	}

	var activeWarnings []Intent
	for _, w := range eval.Warnings {
		if !mem.OnCooldown(w) {
			activeWarnings = append(activeWarnings, w)
		}
	}
	if len(activeWarnings) > 0 {
		return &Selection{Primary: activeWarnings[0], Secondary: capTwo(activeWarnings[1:])}
	}

	if len(eval.Suggestions) > 0 && !mem.OnCooldown(IntentNextBestAction) {
		return &Selection{Primary: IntentNextBestAction}
	}

	if eval.Confidence >= almostReadyConfidence && !mem.OnCooldown(IntentAlmostReady) {
		return &Selection{Primary: IntentAlmostReady}
	}

	if idle > idleNudgeThreshold && !mem.OnCooldown(IntentIdleNudge) {
		return &Selection{Primary: IntentIdleNudge}
	}

	return nil
}

func capTwo(intents []Intent) []Intent {
	if len(intents) > 2 {
		return intents[:2]
	}
	return intents
}

// #endregion selector
