package assistant

// #region imports
import (
	"titleguide/internal/form"
	"titleguide/internal/signals"
)

// #endregion

// #region intent

// Intent names one category of guidance message.
type Intent string

const (
	IntentMissingEvidence     Intent = "MISSING_EVIDENCE"
	IntentMissingReleaseDate  Intent = "MISSING_RELEASE_DATE"
	IntentCreditsRequired     Intent = "CREDITS_REQUIRED"
	IntentYearFormat          Intent = "YEAR_FORMAT"
	IntentTypeSubtypeMismatch Intent = "TYPE_SUBTYPE_MISMATCH"
	IntentTitleCapitalization Intent = "TITLE_CAPITALIZATION"
	IntentNextBestAction      Intent = "NEXT_BEST_ACTION"
	IntentAlmostReady         Intent = "ALMOST_READY"
	IntentIdleNudge           Intent = "IDLE_NUDGE"
	IntentSuccessAck          Intent = "SUCCESS_ACK"
)

// blockerOrder is the fixed scan order for blocker intents.
// First found wins primary selection.
var blockerOrder = []struct {
	intent Intent
	active func(signals.SignalSet) bool
}{
	{IntentMissingEvidence, func(s signals.SignalSet) bool { return s.MissingEvidence }},
	{IntentMissingReleaseDate, func(s signals.SignalSet) bool { return s.MissingReleaseDate }},
	{IntentCreditsRequired, func(s signals.SignalSet) bool { return s.CreditsIncomplete }},
	{IntentYearFormat, func(s signals.SignalSet) bool { return s.YearInvalid }},
	{IntentTypeSubtypeMismatch, func(s signals.SignalSet) bool { return s.TypeSubtypeMismatch }},
}

// #endregion intent

// #region evaluation

// Evaluation is the full result of reading one form snapshot.
type Evaluation struct {
	Confidence     int
	Blockers       []Intent
	Warnings       []Intent
	Suggestions    []Intent
	NextBestAction string
	Signals        signals.SignalSet
}

// EvaluateForm derives signals, confidence, and intent buckets from a
// snapshot. Pure and idempotent.
func EvaluateForm(s form.Snapshot) Evaluation {
	sig := signals.Derive(s)

	var blockers []Intent
	for _, b := range blockerOrder {
		if b.active(sig) {
			blockers = append(blockers, b.intent)
		}
	}
	var warnings []Intent
	if sig.TitleLowercase {
		warnings = append(warnings, IntentTitleCapitalization)
	}

	next := signals.NextBestAction(sig)
	var suggestions []Intent
	if next != "" {
		suggestions = append(suggestions, IntentNextBestAction)
	}

	return Evaluation{
		Confidence:     signals.Confidence(s),
		Blockers:       blockers,
		Warnings:       warnings,
		Suggestions:    suggestions,
		NextBestAction: next,
		Signals:        sig,
	}
}

// #endregion evaluation

// #region selection

// Selection is one primary intent plus up to two secondary intents.
type Selection struct {
	Primary   Intent
	Secondary []Intent
}

// #endregion selection

// #region message

// Message is a fully materialized guidance message.
type Message struct {
	Text    string
	Intent  Intent
	Autofix *Autofix
}

// Result is the loop's published output.
type Result struct {
	Primary   *Message
	Secondary []Message
	Thinking  bool
	Tone      Tone
}

// #endregion message
