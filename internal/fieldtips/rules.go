package fieldtips

// #region imports
import (
	"strings"
	"time"
	"unicode"

	"titleguide/internal/form"
)

// #endregion

// #region types

// Severity grades a tip.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Tip is one inline hint for a specific field. Secondary is an
// optional follow-up line; no current rule sets one.
type Tip struct {
	Primary   string
	Secondary string
	Severity  Severity
}

// TipMap maps field keys ("core.title", "mandatory.evidence", ...) to
// their current tip. At most one tip per field.
type TipMap map[string]Tip

// #endregion types

// #region evaluators

// maxFutureYears bounds how far ahead a release year may sit before
// it draws a warning.
const maxFutureYears = 5

// maxGenres is the recommended upper bound before the many-genres
// warning fires.
const maxGenres = 5

// minBudget is the lower bound below which a budget looks like a
// data-entry mistake.
const minBudget = 1000

func evaluateCore(s form.Snapshot, p *Picker, now time.Time) TipMap {
	tips := TipMap{}
	core := s.Core
	title := strings.TrimSpace(core.Title)

	switch {
	case title == "":
		tips["core.title"] = Tip{Primary: p.Pick("title_empty"), Severity: SeverityInfo}
	case startsLowercase(title):
		tips["core.title"] = Tip{Primary: p.Pick("title_lowercase"), Severity: SeverityWarning}
	case !core.TitleChecked:
		tips["core.title"] = Tip{Primary: p.Pick("title_not_verified"), Severity: SeverityInfo}
	}

	if core.Type == form.TypeUnset {
		tips["core.type"] = Tip{Primary: p.Pick("type_empty"), Severity: SeverityInfo}
	}
	if core.Status == form.StatusUnset {
		tips["core.status"] = Tip{Primary: p.Pick("status_empty"), Severity: SeverityInfo}
	}

	switch {
	case core.Year == nil:
		tips["core.year"] = Tip{Primary: p.Pick("year_missing"), Severity: SeverityInfo}
	case *core.Year != form.UnknownYearSentinel && *core.Year > now.Year()+maxFutureYears:
		tips["core.year"] = Tip{Primary: p.Pick("year_future"), Severity: SeverityWarning}
	}

	if core.ContributorRole == form.RoleUnset {
		tips["core.contributorRole"] = Tip{Primary: p.Pick("role_empty"), Severity: SeverityInfo}
	}
	return tips
}

func evaluateMandatory(s form.Snapshot, p *Picker, _ time.Time) TipMap {
	tips := TipMap{}
	m := s.Mandatory

	switch {
	case len(m.MiscLinks) == 0:
		tips["mandatory.evidence"] = Tip{Primary: p.Pick("evidence_empty"), Severity: SeverityWarning}
	case anyBadProtocol(m.MiscLinks):
		tips["mandatory.evidence"] = Tip{Primary: p.Pick("evidence_url_invalid"), Severity: SeverityWarning}
	}

	switch {
	case len(m.ReleaseDates) == 0:
		tips["mandatory.releaseDates"] = Tip{Primary: p.Pick("release_date_empty"), Severity: SeverityWarning}
	case anyIncompleteDate(m.ReleaseDates):
		tips["mandatory.releaseDates"] = Tip{Primary: p.Pick("release_date_incomplete"), Severity: SeverityInfo}
	}
	return tips
}

func evaluateIdentity(s form.Snapshot, p *Picker, _ time.Time) TipMap {
	tips := TipMap{}
	id := s.Identity

	if len(id.CountriesOfOrigin) == 0 {
		tips["identity.countries"] = Tip{Primary: p.Pick("countries_empty"), Severity: SeverityInfo}
	}
	if len(id.Languages) == 0 {
		tips["identity.languages"] = Tip{Primary: p.Pick("languages_empty"), Severity: SeverityInfo}
	}

	switch {
	case len(id.Genres) == 0:
		tips["identity.genres"] = Tip{Primary: p.Pick("genres_empty"), Severity: SeverityInfo}
	case len(id.Genres) > maxGenres:
		tips["identity.genres"] = Tip{Primary: p.Pick("genres_many"), Severity: SeverityWarning}
	}
	return tips
}

func evaluateProduction(s form.Snapshot, p *Picker, _ time.Time) TipMap {
	tips := TipMap{}
	prod := s.Production

	switch {
	case prod.Budget.Amount == nil:
		tips["production.budget"] = Tip{Primary: p.Pick("budget_missing"), Severity: SeverityInfo}
	case *prod.Budget.Amount < minBudget:
		tips["production.budget"] = Tip{Primary: p.Pick("budget_low"), Severity: SeverityWarning}
	}

	if len(prod.Directors) == 0 {
		tips["production.directors"] = Tip{Primary: p.Pick("directors_empty"), Severity: SeverityWarning}
	}
	return tips
}

func evaluateCredits(s form.Snapshot, p *Picker, _ time.Time) TipMap {
	tips := TipMap{}
	if s.Credits.MajorCredits.FilledCategories() < 3 {
		tips["credits.major"] = Tip{Primary: p.Pick("credits_incomplete"), Severity: SeverityWarning}
	}
	return tips
}

var stepEvaluators = []func(form.Snapshot, *Picker, time.Time) TipMap{
	evaluateCore,
	evaluateMandatory,
	evaluateIdentity,
	evaluateProduction,
	evaluateCredits,
}

// Evaluate returns the tips for one wizard step. Steps outside the
// known range yield an empty map.
func Evaluate(s form.Snapshot, step int, p *Picker, now time.Time) TipMap {
	if step < 0 || step >= len(stepEvaluators) {
		return TipMap{}
	}
	return stepEvaluators[step](s, p, now)
}

// #endregion evaluators

// #region helpers

func startsLowercase(title string) bool {
	for _, r := range title {
		return unicode.IsLetter(r) && r != unicode.ToUpper(r)
	}
	return false
}

func anyBadProtocol(links []form.MiscLink) bool {
	for _, l := range links {
		if l.URL == "" {
			continue
		}
		if !strings.HasPrefix(l.URL, "http://") && !strings.HasPrefix(l.URL, "https://") {
			return true
		}
	}
	return false
}

func anyIncompleteDate(dates []form.ReleaseDate) bool {
	for _, d := range dates {
		if d.Country == "" || d.Month == "" || d.Year == "" {
			return true
		}
	}
	return false
}

// #endregion helpers
