package form

import (
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
)

// #region patch

// CorePatch updates a subset of the core slice. Nil fields are left alone.
type CorePatch struct {
	Title           *string
	TitleChecked    *bool
	Type            *TitleType
	Subtype         *TitleSubtype
	Status          *TitleStatus
	Year            *int
	ContributorRole *ContributorRole
}

// #endregion patch

// #region store

// ConfidenceFunc recomputes the confidence score after each mutation.
type ConfidenceFunc func(Snapshot) int

// Store holds the in-progress submission and notifies listeners on change.
// It is the single writer; everything else reads snapshots.
type Store struct {
	mu         sync.Mutex
	snap       Snapshot
	confidence ConfidenceFunc
	listeners  []func(Snapshot)
}

// NewStore creates a Store over an empty form. confidence may be nil,
// in which case the score stays at zero.
func NewStore(confidence ConfidenceFunc) *Store {
	return &Store{
		snap:       EmptySnapshot(),
		confidence: confidence,
	}
}

// Snapshot returns a deep copy of the current form state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Subscribe registers a listener invoked after every mutation.
// Listeners receive a private copy and run outside the store lock.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// mutate applies fn under the lock, rescores, and notifies listeners.
func (s *Store) mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.snap)
	if s.confidence != nil {
		s.snap.Meta.ConfidenceScore = s.confidence(s.snap)
	}
	copySnap := s.snap.Clone()
	listeners := append([]func(Snapshot){}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(copySnap)
	}
}

// #endregion store

// #region mutations

// UpdateCore applies a partial update to the core slice.
func (s *Store) UpdateCore(p CorePatch) {
	s.mutate(func(snap *Snapshot) {
		if p.Title != nil {
			snap.Core.Title = *p.Title
		}
		if p.TitleChecked != nil {
			snap.Core.TitleChecked = *p.TitleChecked
		}
		if p.Type != nil {
			snap.Core.Type = *p.Type
		}
		if p.Subtype != nil {
			snap.Core.Subtype = *p.Subtype
		}
		if p.Status != nil {
			snap.Core.Status = *p.Status
		}
		if p.Year != nil {
			y := *p.Year
			snap.Core.Year = &y
		}
		if p.ContributorRole != nil {
			snap.Core.ContributorRole = *p.ContributorRole
		}
	})
}

// AddReleaseDate appends a release-date row. A missing ID is generated.
func (s *Store) AddReleaseDate(row ReleaseDate) {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	s.mutate(func(snap *Snapshot) {
		snap.Mandatory.ReleaseDates = append(snap.Mandatory.ReleaseDates, row)
	})
}

// AddMiscLink appends an evidence link row. A missing ID is generated.
func (s *Store) AddMiscLink(row MiscLink) {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	s.mutate(func(snap *Snapshot) {
		snap.Mandatory.MiscLinks = append(snap.Mandatory.MiscLinks, row)
	})
}

// AddAssumption appends an assumption record to meta.
func (s *Store) AddAssumption(a Assumption) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.mutate(func(snap *Snapshot) {
		snap.Meta.Assumptions = append(snap.Meta.Assumptions, a)
	})
}

// Replace hydrates the store from a previously saved snapshot.
func (s *Store) Replace(snap Snapshot) {
	clone := snap.Clone()
	s.mutate(func(cur *Snapshot) {
		*cur = clone
	})
}

// Reset restores the empty form.
func (s *Store) Reset() {
	s.mutate(func(cur *Snapshot) {
		*cur = EmptySnapshot()
	})
}

// #endregion mutations

// #region fix-commands

// FixKind tags a deterministic form mutation requested by the assistant.
type FixKind string

const (
	FixCapitalizeTitle FixKind = "capitalizeTitle"
	FixSetUnknownYear  FixKind = "setUnknownYear"
	FixAddReleaseDate  FixKind = "addReleaseDate"
	FixAddEvidenceLink FixKind = "addEvidenceLink"
)

// FixCommand is a pure description of an auto-fix mutation. The
// assistant emits commands; only the Store applies them.
type FixCommand struct {
	Kind FixKind
}

// Apply executes a fix command against the store. Unknown kinds are
// ignored; auto-fixes are advisory and must never fail the caller.
func (s *Store) Apply(cmd FixCommand) {
	switch cmd.Kind {
	case FixCapitalizeTitle:
		s.mutate(func(snap *Snapshot) {
			snap.Core.Title = toTitleCase(snap.Core.Title)
		})
	case FixSetUnknownYear:
		year := UnknownYearSentinel
		s.mutate(func(snap *Snapshot) {
			y := year
			snap.Core.Year = &y
			snap.Meta.Assumptions = append(snap.Meta.Assumptions, Assumption{
				ID:      uuid.NewString(),
				Field:   "year",
				Value:   "????",
				Message: "Year set to unknown (????) by editorial assistant",
			})
		})
	case FixAddReleaseDate:
		s.AddReleaseDate(ReleaseDate{})
	case FixAddEvidenceLink:
		s.AddMiscLink(MiscLink{})
	}
}

// toTitleCase uppercases the first letter of every word.
func toTitleCase(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	startOfWord := true
	for _, r := range in {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// #endregion fix-commands
