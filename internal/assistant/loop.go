package assistant

// #region imports
import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"titleguide/internal/form"
)

// #endregion

// #region config

// LoopConfig controls the guidance loop's timing.
type LoopConfig struct {
	DebounceDelay  time.Duration
	ThinkingMin    time.Duration
	ThinkingJitter time.Duration
	IdlePoll       time.Duration
	IdleThreshold  time.Duration
}

// DefaultLoopConfig returns production timings.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		DebounceDelay:  800 * time.Millisecond,
		ThinkingMin:    250 * time.Millisecond,
		ThinkingJitter: 150 * time.Millisecond,
		IdlePoll:       5 * time.Second,
		IdleThreshold:  20 * time.Second,
	}
}

// #endregion config

// #region respond

// Respond runs one full guidance pass: evaluate the form, update
// memory, select an intent, and materialize the message. It mutates
// mem (tick, intent recording, fix clearing) and is safe to call from
// the loop or directly by a request handler.
func Respond(snap form.Snapshot, mem *Memory, rng *rand.Rand, now time.Time) Result {
	eval := EvaluateForm(snap)

	prev := mem.PrevConfidence()
	mem.Tick(eval.Confidence)

	msnap := mem.Snapshot()
	tone := SelectTone(eval.Confidence, prev, msnap.Frustration, len(eval.Blockers) > 0, msnap.IdleSince, now)

	sel := SelectIntent(eval, msnap, now)
	if sel == nil {
		return Result{Tone: tone}
	}

	vars := templateVars(snap, eval)

	variant := PickVariant(sel.Primary, mem.LastMessageID(), rng)
	text := ApplyTone(FillTemplate(variant.Text, vars), tone, rng)
	primary := &Message{
		Text:    text,
		Intent:  sel.Primary,
		Autofix: GetAutofix(sel.Primary),
	}

	// Showing the same intent twice in a row reads as nagging.
	if sel.Primary == mem.LastIntent() && sel.Primary != IntentSuccessAck {
		mem.BumpFrustration()
	}
	mem.RecordIntent(sel.Primary, variant.ID)
	// Fixes are consumed by whichever evaluation publishes next; a
	// stale acknowledgment after unrelated messages reads as noise.
	mem.ClearFixes()

	var secondary []Message
	for _, intent := range sel.Secondary {
		v := PickVariant(intent, "", rng)
		secondary = append(secondary, Message{
			Text:    FillTemplate(v.Text, vars),
			Intent:  intent,
			Autofix: GetAutofix(intent),
		})
	}

	return Result{Primary: primary, Secondary: secondary, Tone: tone}
}

// templateVars builds the placeholder substitutions for variant text.
func templateVars(snap form.Snapshot, eval Evaluation) map[string]string {
	fieldName := snap.Core.Title
	if fieldName == "" {
		fieldName = "untitled"
	}
	missing := 3 - snap.Credits.MajorCredits.FilledCategories()
	if missing < 0 {
		missing = 0
	}
	return map[string]string{
		"confidence":   strconv.Itoa(eval.Confidence),
		"nextAction":   eval.NextBestAction,
		"fieldName":    fieldName,
		"missingCount": strconv.Itoa(missing),
	}
}

// #endregion respond

// #region loop

// Loop drives debounced guidance over a form store. Edits arm a
// debounce timer; when it fires a short thinking delay runs, then the
// message for the latest snapshot is published. A newer edit cancels
// any in-flight timers, so only the latest evaluation ever lands.
type Loop struct {
	store    *form.Store
	mem      *Memory
	cfg      LoopConfig
	rng      *rand.Rand
	now      func() time.Time
	onUpdate func(Result)

	mu       sync.Mutex
	gen      uint64
	debounce *time.Timer
	thinking *time.Timer
	stop     chan struct{}
	stopped  bool
}

// NewLoop wires a loop over the store. rng and now are injectable for
// tests; nil selects real randomness and the wall clock. onUpdate is
// invoked outside the loop lock for every published Result.
func NewLoop(store *form.Store, mem *Memory, cfg LoopConfig, rng *rand.Rand, now func() time.Time, onUpdate func(Result)) *Loop {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Loop{
		store:    store,
		mem:      mem,
		cfg:      cfg,
		rng:      rng,
		now:      now,
		onUpdate: onUpdate,
		stop:     make(chan struct{}),
	}
}

// Start subscribes to the store and launches the idle poller.
func (l *Loop) Start() {
	l.store.Subscribe(func(form.Snapshot) {
		l.FormChanged()
	})
	go l.idlePoll()
}

// FormChanged notes an edit: resets the idle clock and re-arms the
// debounce timer, invalidating any in-flight evaluation.
func (l *Loop) FormChanged() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.mem.ResetIdle()
	l.gen++
	gen := l.gen
	if l.debounce != nil {
		l.debounce.Stop()
	}
	if l.thinking != nil {
		l.thinking.Stop()
	}
	l.debounce = time.AfterFunc(l.cfg.DebounceDelay, func() {
		l.debounceFired(gen)
	})
}

// ApplyFix records the fix in memory and executes its command against
// the store. The resulting mutation re-enters the loop via Subscribe.
func (l *Loop) ApplyFix(fix *Autofix) {
	if fix == nil {
		return
	}
	l.mem.RecordFix(fix.FixID)
	l.store.Apply(fix.Command)
}

// Stop cancels all timers and the idle poller. No updates are
// published after Stop returns.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.stopped = true
	if l.debounce != nil {
		l.debounce.Stop()
	}
	if l.thinking != nil {
		l.thinking.Stop()
	}
	close(l.stop)
}

func (l *Loop) debounceFired(gen uint64) {
	l.mu.Lock()
	if l.stopped || gen != l.gen {
		l.mu.Unlock()
		return
	}
	delay := l.cfg.ThinkingMin
	if l.cfg.ThinkingJitter > 0 {
		delay += time.Duration(l.rng.Int63n(int64(l.cfg.ThinkingJitter)))
	}
	l.thinking = time.AfterFunc(delay, func() {
		l.thinkingDone(gen)
	})
	notify := l.onUpdate
	l.mu.Unlock()

	if notify != nil {
		notify(Result{Thinking: true})
	}
}

func (l *Loop) thinkingDone(gen uint64) {
	l.mu.Lock()
	if l.stopped || gen != l.gen {
		l.mu.Unlock()
		return
	}
	// Snapshot is read at fire time so the evaluation always covers
	// the latest committed edit.
	res := Respond(l.store.Snapshot(), l.mem, l.rng, l.now())
	notify := l.onUpdate
	l.mu.Unlock()

	if notify != nil {
		notify(res)
	}
}

// idlePoll periodically re-evaluates a quiet form so idle nudges can
// surface without an edit. The poll only evaluates while the nudge is
// off cooldown; an idle user is not re-shown blockers.
func (l *Loop) idlePoll() {
	ticker := time.NewTicker(l.cfg.IdlePoll)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			if l.stopped {
				l.mu.Unlock()
				return
			}
			if l.now().Sub(l.mem.IdleSince()) < l.cfg.IdleThreshold ||
				l.mem.IsOnCooldown(IntentIdleNudge) {
				l.mu.Unlock()
				continue
			}
			res := Respond(l.store.Snapshot(), l.mem, l.rng, l.now())
			notify := l.onUpdate
			l.mu.Unlock()

			if notify != nil && res.Primary != nil {
				notify(res)
			}
		}
	}
}

// #endregion loop
