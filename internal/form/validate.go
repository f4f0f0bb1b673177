package form

import (
	"regexp"
	"strings"
)

// #region types

// StepValidation reports how many required checks a wizard step meets.
type StepValidation struct {
	Valid bool
	Met   int
	Total int
}

// ValidationResult aggregates per-step validation across the wizard.
type ValidationResult struct {
	Steps             []StepValidation
	CompletionPercent int
}

// #endregion types

// #region validate

var urlPattern = regexp.MustCompile(`^https?://.+\..+`)

// Validate runs the per-step completeness checks. Pure; safe to call
// on every keystroke.
func Validate(s Snapshot) ValidationResult {
	steps := []StepValidation{
		stepChecks(
			strings.TrimSpace(s.Core.Title) != "",
			s.Core.TitleChecked,
			s.Core.Type != TypeUnset,
			s.Core.Status != StatusUnset,
			s.Core.Year != nil,
			s.Core.ContributorRole != RoleUnset,
		),
		stepChecks(
			hasCompleteReleaseDate(s.Mandatory.ReleaseDates),
			hasValidEvidence(s.Mandatory.MiscLinks),
		),
		stepChecks(
			len(s.Identity.CountriesOfOrigin) > 0,
			len(s.Identity.Languages) > 0,
		),
		stepChecks(
			s.Production.Budget.Currency != "" && s.Production.Budget.Amount != nil,
		),
		stepChecks(
			len(s.Production.Directors) > 0,
			s.Credits.MajorCredits.FilledCategories() >= 3,
		),
	}

	met, total := 0, 0
	for _, st := range steps {
		met += st.Met
		total += st.Total
	}
	percent := 0
	if total > 0 {
		percent = (met*100 + total/2) / total
	}
	return ValidationResult{Steps: steps, CompletionPercent: percent}
}

func stepChecks(checks ...bool) StepValidation {
	met := 0
	for _, ok := range checks {
		if ok {
			met++
		}
	}
	return StepValidation{Valid: met == len(checks), Met: met, Total: len(checks)}
}

// hasCompleteReleaseDate requires country, month, 4-digit year, and type.
func hasCompleteReleaseDate(rows []ReleaseDate) bool {
	for _, rd := range rows {
		if rd.Country != "" && rd.Month != "" && len(rd.Year) == 4 && rd.ReleaseType != ReleaseUnset {
			return true
		}
	}
	return false
}

// hasValidEvidence requires a labelled link with an http(s) URL.
func hasValidEvidence(rows []MiscLink) bool {
	for _, ml := range rows {
		if urlPattern.MatchString(ml.URL) && strings.TrimSpace(ml.Label) != "" {
			return true
		}
	}
	return false
}

// #endregion validate

// #region empty-check

// IsEmpty reports whether the form contains no user-entered data.
// Used by autosave to avoid persisting untouched drafts.
func IsEmpty(s Snapshot) bool {
	return strings.TrimSpace(s.Core.Title) == "" &&
		!s.Core.TitleChecked &&
		s.Core.Type == TypeUnset &&
		s.Core.Status == StatusUnset &&
		s.Core.Year == nil &&
		s.Core.ContributorRole == RoleUnset &&
		len(s.Mandatory.ReleaseDates) == 0 &&
		len(s.Mandatory.MiscLinks) == 0 &&
		len(s.Identity.CountriesOfOrigin) == 0 &&
		len(s.Identity.Languages) == 0 &&
		len(s.Production.Directors) == 0 &&
		s.Production.Budget.Amount == nil
}

// #endregion empty-check
