package signals

import (
	"strings"
	"unicode"

	"titleguide/internal/form"
)

// #region signal-set

// SignalSet is the fixed record of booleans derived from one snapshot.
// Recomputed fully on every evaluation; carries no incremental state.
type SignalSet struct {
	MissingEvidence     bool
	MissingReleaseDate  bool
	YearInvalid         bool
	TitleLowercase      bool
	TypeSubtypeMismatch bool
	CreditsIncomplete   bool
	TitleMissing        bool
	TypeMissing         bool
	StatusMissing       bool
	RoleMissing         bool
	CountriesMissing    bool
	LanguagesMissing    bool
	GenresMissing       bool
	BudgetMissing       bool
}

// #endregion signal-set

// #region derive

// Derive computes all signals from a snapshot. Pure; absent scalars
// count as unset and absent lists as empty, so it is safe to call
// mid-hydration.
func Derive(s form.Snapshot) SignalSet {
	title := strings.TrimSpace(s.Core.Title)
	return SignalSet{
		MissingEvidence:     len(s.Mandatory.MiscLinks) == 0,
		MissingReleaseDate:  len(s.Mandatory.ReleaseDates) == 0,
		YearInvalid:         s.Core.Year == nil,
		TitleLowercase:      startsLowercase(title),
		TypeSubtypeMismatch: s.Core.Type == form.TypeMusicVideo && s.Core.Subtype == form.SubtypeFeatureLength,
		CreditsIncomplete:   s.Credits.MajorCredits.FilledCategories() < 3,
		TitleMissing:        title == "",
		TypeMissing:         s.Core.Type == form.TypeUnset,
		StatusMissing:       s.Core.Status == form.StatusUnset,
		RoleMissing:         s.Core.ContributorRole == form.RoleUnset,
		CountriesMissing:    len(s.Identity.CountriesOfOrigin) == 0,
		LanguagesMissing:    len(s.Identity.Languages) == 0,
		GenresMissing:       len(s.Identity.Genres) == 0,
		BudgetMissing:       s.Production.Budget.Amount == nil || s.Production.Budget.Currency == "",
	}
}

func startsLowercase(title string) bool {
	for _, r := range title {
		return unicode.IsLetter(r) && r != unicode.ToUpper(r)
	}
	return false
}

// #endregion derive

// #region confidence

// confidenceWeights maps completion predicates to their score
// contribution. Identity fields (title, type, year) and the credits
// minimum carry the most weight. The weights sum to exactly 100.
var confidenceWeights = []struct {
	check  func(form.Snapshot) bool
	weight int
}{
	{func(s form.Snapshot) bool { return len(s.Core.Title) > 0 }, 12},
	{func(s form.Snapshot) bool { return s.Core.Type != form.TypeUnset }, 8},
	{func(s form.Snapshot) bool { return s.Core.Subtype != form.SubtypeUnset }, 4},
	{func(s form.Snapshot) bool { return s.Core.Status != form.StatusUnset }, 4},
	{func(s form.Snapshot) bool { return s.Core.Year != nil }, 8},
	{func(s form.Snapshot) bool { return s.Core.ContributorRole != form.RoleUnset }, 4},
	{func(s form.Snapshot) bool { return len(s.Mandatory.ReleaseDates) > 0 }, 8},
	{func(s form.Snapshot) bool { return len(s.Mandatory.MiscLinks) > 0 }, 5},
	{func(s form.Snapshot) bool { return len(s.Identity.CountriesOfOrigin) > 0 }, 6},
	{func(s form.Snapshot) bool { return len(s.Identity.Languages) > 0 }, 5},
	{func(s form.Snapshot) bool { return s.Identity.ColorFormat != form.ColorUnset }, 2},
	{func(s form.Snapshot) bool { return len(s.Identity.Genres) > 0 }, 4},
	{func(s form.Snapshot) bool { return s.Production.Budget.Amount != nil }, 5},
	{func(s form.Snapshot) bool { return len(s.Production.OfficialSites) > 0 }, 2},
	{func(s form.Snapshot) bool { return len(s.Production.Directors) > 0 }, 5},
	{func(s form.Snapshot) bool { return len(s.Production.Distributors) > 0 }, 3},
	{func(s form.Snapshot) bool { return len(s.Production.ProductionCompanies) > 0 }, 3},
	{func(s form.Snapshot) bool { return s.Credits.MajorCredits.FilledCategories() >= 3 }, 10},
	{func(s form.Snapshot) bool { return s.Credits.RecommendedInfo.AnyFilled() }, 2},
}

// Confidence sums the weights of all satisfied predicates, clamped to
// [0, 100].
func Confidence(s form.Snapshot) int {
	score := 0
	for _, w := range confidenceWeights {
		if w.check(s) {
			score += w.weight
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

// #endregion confidence

// #region next-action

// NextBestAction returns the single most useful thing the user can do
// next, or "" when everything in the priority list is satisfied.
func NextBestAction(sig SignalSet) string {
	switch {
	case sig.TitleMissing:
		return "Enter a title for your submission"
	case sig.TypeMissing:
		return "Select a title type"
	case sig.StatusMissing:
		return "Set the release status"
	case sig.YearInvalid:
		return "Add the release year"
	case sig.RoleMissing:
		return "Choose your contributor role"
	case sig.MissingEvidence:
		return "Add an evidence link"
	case sig.MissingReleaseDate:
		return "Add at least one release date"
	case sig.CountriesMissing:
		return "Add a country of origin"
	case sig.LanguagesMissing:
		return "Add at least one language"
	case sig.GenresMissing:
		return "Select at least one genre"
	case sig.BudgetMissing:
		return "Enter the production budget"
	case sig.CreditsIncomplete:
		return "Fill in at least 3 credit categories"
	}
	return ""
}

// #endregion next-action
