package draft

// #region imports
import (
	"log"
	"sync"
	"time"

	"titleguide/internal/form"
)

// #endregion

// #region autosaver

// DefaultAutosaveDelay is the settle window between an edit and the
// write.
const DefaultAutosaveDelay = 800 * time.Millisecond

// Autosaver persists form snapshots after edits settle. Empty forms
// are skipped so a fresh wizard never creates throwaway rows. The
// draft row is created lazily on the first non-empty save.
type Autosaver struct {
	store *Store
	delay time.Duration

	mu      sync.Mutex
	draftID string
	step    int
	gen     uint64
	timer   *time.Timer
	stopped bool
}

// NewAutosaver wires an autosaver over the draft store. draftID may
// be "" to create a row on first save.
func NewAutosaver(store *Store, draftID string, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{store: store, draftID: draftID, delay: delay}
}

// Attach subscribes to the form store.
func (a *Autosaver) Attach(fs *form.Store) {
	fs.Subscribe(func(snap form.Snapshot) {
		a.FormChanged(snap)
	})
}

// SetStep records the wizard step persisted alongside the form.
func (a *Autosaver) SetStep(step int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.step = step
}

// DraftID returns the backing row id, "" before the first save.
func (a *Autosaver) DraftID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.draftID
}

// FormChanged arms the debounce timer with the latest snapshot.
func (a *Autosaver) FormChanged(snap form.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.gen++
	gen := a.gen
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		a.save(gen, snap)
	})
}

// Flush persists immediately, bypassing the debounce. Used before
// submit and on shutdown.
func (a *Autosaver) Flush(snap form.Snapshot) error {
	a.mu.Lock()
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()

	return a.persist(snap)
}

// Stop cancels any pending write.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
	}
}

func (a *Autosaver) save(gen uint64, snap form.Snapshot) {
	a.mu.Lock()
	stale := a.stopped || gen != a.gen
	a.mu.Unlock()
	if stale {
		return
	}
	if err := a.persist(snap); err != nil {
		log.Printf("[AUTOSAVE] save failed: %v", err)
	}
}

func (a *Autosaver) persist(snap form.Snapshot) error {
	if form.IsEmpty(snap) {
		return nil
	}

	a.mu.Lock()
	id := a.draftID
	step := a.step
	a.mu.Unlock()

	if id == "" {
		rec, err := a.store.Create(snap, step)
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.draftID = rec.ID
		a.mu.Unlock()
		return nil
	}
	return a.store.Save(id, snap, step)
}

// #endregion autosaver
