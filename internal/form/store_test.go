package form

import (
	"testing"
)

// #region store-tests

func TestUpdateCorePatchesOnlySetFields(t *testing.T) {
	s := NewStore(nil)

	title := "the last horizon"
	s.UpdateCore(CorePatch{Title: &title})

	typ := TypeFilm
	year := 2026
	s.UpdateCore(CorePatch{Type: &typ, Year: &year})

	snap := s.Snapshot()
	if snap.Core.Title != "the last horizon" {
		t.Errorf("title = %q", snap.Core.Title)
	}
	if snap.Core.Type != TypeFilm {
		t.Errorf("type = %q", snap.Core.Type)
	}
	if snap.Core.Year == nil || *snap.Core.Year != 2026 {
		t.Errorf("year = %v", snap.Core.Year)
	}
	if snap.Core.Status != StatusUnset {
		t.Errorf("status should stay unset, got %q", snap.Core.Status)
	}
}

func TestStoreRescoresOnMutation(t *testing.T) {
	s := NewStore(func(snap Snapshot) int {
		if snap.Core.Title != "" {
			return 12
		}
		return 0
	})

	if got := s.Snapshot().Meta.ConfidenceScore; got != 0 {
		t.Fatalf("initial score = %d, want 0", got)
	}

	title := "The Last Horizon"
	s.UpdateCore(CorePatch{Title: &title})
	if got := s.Snapshot().Meta.ConfidenceScore; got != 12 {
		t.Errorf("score after title = %d, want 12", got)
	}
}

func TestSubscribeReceivesEveryMutation(t *testing.T) {
	s := NewStore(nil)

	var seen []string
	s.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap.Core.Title)
	})

	a, b := "First", "Second"
	s.UpdateCore(CorePatch{Title: &a})
	s.UpdateCore(CorePatch{Title: &b})

	if len(seen) != 2 || seen[0] != "First" || seen[1] != "Second" {
		t.Errorf("listener saw %v", seen)
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	s := NewStore(nil)
	s.AddMiscLink(MiscLink{Label: "Site", URL: "https://example.com"})

	snap := s.Snapshot()
	snap.Mandatory.MiscLinks[0].Label = "mutated"

	if got := s.Snapshot().Mandatory.MiscLinks[0].Label; got != "Site" {
		t.Errorf("store state leaked through snapshot: %q", got)
	}
}

func TestAddRowsGenerateIDs(t *testing.T) {
	s := NewStore(nil)
	s.AddReleaseDate(ReleaseDate{Country: "France"})
	s.AddMiscLink(MiscLink{URL: "https://example.com"})

	snap := s.Snapshot()
	if snap.Mandatory.ReleaseDates[0].ID == "" {
		t.Error("release date row missing generated id")
	}
	if snap.Mandatory.MiscLinks[0].ID == "" {
		t.Error("evidence row missing generated id")
	}
}

func TestReplaceAndReset(t *testing.T) {
	s := NewStore(nil)
	s.Replace(SampleSnapshot())

	if s.Snapshot().Core.Title != "The Last Horizon" {
		t.Fatal("replace did not hydrate the store")
	}

	s.Reset()
	if !IsEmpty(s.Snapshot()) {
		t.Error("reset should leave an empty form")
	}
}

// #endregion store-tests

// #region fix-tests

func TestApplyCapitalizeTitle(t *testing.T) {
	s := NewStore(nil)
	title := "the last  horizon"
	s.UpdateCore(CorePatch{Title: &title})

	s.Apply(FixCommand{Kind: FixCapitalizeTitle})

	if got := s.Snapshot().Core.Title; got != "The Last  Horizon" {
		t.Errorf("title = %q", got)
	}
}

func TestApplySetUnknownYear(t *testing.T) {
	s := NewStore(nil)
	s.Apply(FixCommand{Kind: FixSetUnknownYear})

	snap := s.Snapshot()
	if snap.Core.Year == nil || *snap.Core.Year != UnknownYearSentinel {
		t.Fatalf("year = %v, want sentinel", snap.Core.Year)
	}
	if len(snap.Meta.Assumptions) != 1 || snap.Meta.Assumptions[0].Field != "year" {
		t.Errorf("expected a year assumption, got %+v", snap.Meta.Assumptions)
	}
}

func TestApplyAddRows(t *testing.T) {
	s := NewStore(nil)
	s.Apply(FixCommand{Kind: FixAddReleaseDate})
	s.Apply(FixCommand{Kind: FixAddEvidenceLink})

	snap := s.Snapshot()
	if len(snap.Mandatory.ReleaseDates) != 1 {
		t.Errorf("release dates = %d, want 1", len(snap.Mandatory.ReleaseDates))
	}
	if len(snap.Mandatory.MiscLinks) != 1 {
		t.Errorf("evidence links = %d, want 1", len(snap.Mandatory.MiscLinks))
	}
}

func TestApplyUnknownKindIsNoop(t *testing.T) {
	s := NewStore(nil)
	s.Apply(FixCommand{Kind: "nonsense"})

	if !IsEmpty(s.Snapshot()) {
		t.Error("unknown fix kind should not mutate the form")
	}
}

func TestToTitleCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"the last horizon", "The Last Horizon"},
		{"ALREADY UPPER", "ALREADY UPPER"},
		{"2001: a space odyssey", "2001: A Space Odyssey"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := toTitleCase(tc.in); got != tc.want {
			t.Errorf("toTitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// #endregion fix-tests
