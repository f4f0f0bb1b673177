package fieldtips

// #region imports
import (
	"encoding/json"
	"sync"
	"time"

	"titleguide/internal/form"
)

// #endregion

// #region runner

// DefaultDebounce is the settle window between an edit and the tip
// recomputation.
const DefaultDebounce = 700 * time.Millisecond

// Runner recomputes field tips for the active wizard step after edits
// settle. Recomputation is skipped when the active step's slice of
// the form is unchanged, so tips don't churn while the user types in
// a different step.
type Runner struct {
	store  *form.Store
	picker *Picker
	delay  time.Duration
	now    func() time.Time
	onTips func(TipMap)

	mu      sync.Mutex
	step    int
	lastFP  string
	gen     uint64
	timer   *time.Timer
	stopped bool
}

// NewRunner wires a runner over the store. now may be nil for the
// wall clock. onTips is invoked outside the runner lock.
func NewRunner(store *form.Store, picker *Picker, delay time.Duration, now func() time.Time, onTips func(TipMap)) *Runner {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if now == nil {
		now = time.Now
	}
	return &Runner{
		store:  store,
		picker: picker,
		delay:  delay,
		now:    now,
		onTips: onTips,
	}
}

// Start subscribes to store mutations.
func (r *Runner) Start() {
	r.store.Subscribe(func(form.Snapshot) {
		r.FormChanged()
	})
}

// SetStep switches the active step and recomputes immediately.
func (r *Runner) SetStep(step int) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.step = step
	r.lastFP = ""
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
	}
	r.mu.Unlock()

	r.recompute()
}

// FormChanged arms the debounce timer, replacing any pending one.
func (r *Runner) FormChanged() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		stale := r.stopped || gen != r.gen
		r.mu.Unlock()
		if stale {
			return
		}
		r.recompute()
	})
}

// Stop cancels any pending recomputation.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

// recompute evaluates the active step when its slice has changed.
func (r *Runner) recompute() {
	snap := r.store.Snapshot()

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	fp := stepFingerprint(snap, r.step)
	if fp == r.lastFP {
		r.mu.Unlock()
		return
	}
	r.lastFP = fp
	step := r.step
	notify := r.onTips
	r.mu.Unlock()

	tips := Evaluate(snap, step, r.picker, r.now())
	if notify != nil {
		notify(tips)
	}
}

// stepFingerprint serializes just the slice of the form the step
// reads, so unrelated edits don't retrigger tips.
func stepFingerprint(s form.Snapshot, step int) string {
	var v any
	switch step {
	case 0:
		v = s.Core
	case 1:
		v = s.Mandatory
	case 2:
		v = s.Identity
	case 3:
		v = s.Production
	case 4:
		v = s.Credits
	default:
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// #endregion runner
