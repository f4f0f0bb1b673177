package form

import (
	"github.com/google/uuid"
)

// #region parsed-payload

// Parsed is the structured subset returned by the remote
// transcript-parsing service. Absent sections stay nil.
type Parsed struct {
	Core       *ParsedCore       `json:"core,omitempty"`
	Identity   *ParsedIdentity   `json:"identity,omitempty"`
	Mandatory  *ParsedMandatory  `json:"mandatory,omitempty"`
	Production *ParsedProduction `json:"production,omitempty"`
	Assumptions []string         `json:"assumptions,omitempty"`
}

// ParsedCore mirrors Core with every field optional.
type ParsedCore struct {
	Title           string          `json:"title,omitempty"`
	Type            TitleType       `json:"type,omitempty"`
	Subtype         TitleSubtype    `json:"subtype,omitempty"`
	Status          TitleStatus     `json:"status,omitempty"`
	Year            *int            `json:"year,omitempty"`
	ContributorRole ContributorRole `json:"contributorRole,omitempty"`
}

// ParsedIdentity carries list facets to append.
type ParsedIdentity struct {
	CountriesOfOrigin []string `json:"countriesOfOrigin,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	Genres            []string `json:"genres,omitempty"`
}

// ParsedMandatory carries release-date rows to append.
type ParsedMandatory struct {
	ReleaseDates []ReleaseDate `json:"releaseDates,omitempty"`
}

// ParsedProduction carries budget and director data.
type ParsedProduction struct {
	Budget    *Budget    `json:"budget,omitempty"`
	Directors []Director `json:"directors,omitempty"`
}

// #endregion parsed-payload

// #region merge

// MergeParsed folds a parsed transcript into the form. Scalars are
// written only when the user has not set them; list fields are
// appended with exact-string dedupe; every assumption is recorded.
func (s *Store) MergeParsed(p Parsed) {
	s.mutate(func(snap *Snapshot) {
		mergeCore(snap, p.Core)
		mergeIdentity(snap, p.Identity)
		mergeMandatory(snap, p.Mandatory)
		mergeProduction(snap, p.Production)

		for _, msg := range p.Assumptions {
			snap.Meta.Assumptions = append(snap.Meta.Assumptions, Assumption{
				ID:      uuid.NewString(),
				Field:   "voice",
				Message: msg,
			})
		}
	})
}

func mergeCore(snap *Snapshot, pc *ParsedCore) {
	if pc == nil {
		return
	}
	if pc.Title != "" && snap.Core.Title == "" {
		snap.Core.Title = pc.Title
	}
	if pc.Type != TypeUnset && snap.Core.Type == TypeUnset {
		snap.Core.Type = pc.Type
	}
	if pc.Subtype != SubtypeUnset && snap.Core.Subtype == SubtypeUnset {
		snap.Core.Subtype = pc.Subtype
	}
	if pc.Status != StatusUnset && snap.Core.Status == StatusUnset {
		snap.Core.Status = pc.Status
	}
	if pc.Year != nil && snap.Core.Year == nil {
		y := *pc.Year
		snap.Core.Year = &y
	}
	if pc.ContributorRole != RoleUnset && snap.Core.ContributorRole == RoleUnset {
		snap.Core.ContributorRole = pc.ContributorRole
	}
}

func mergeIdentity(snap *Snapshot, pi *ParsedIdentity) {
	if pi == nil {
		return
	}
	snap.Identity.CountriesOfOrigin = appendUnique(snap.Identity.CountriesOfOrigin, pi.CountriesOfOrigin)
	snap.Identity.Languages = appendUnique(snap.Identity.Languages, pi.Languages)
	snap.Identity.Genres = appendUnique(snap.Identity.Genres, pi.Genres)
}

func mergeMandatory(snap *Snapshot, pm *ParsedMandatory) {
	if pm == nil {
		return
	}
	for _, rd := range pm.ReleaseDates {
		if rd.Country == "" {
			continue
		}
		rd.ID = uuid.NewString()
		snap.Mandatory.ReleaseDates = append(snap.Mandatory.ReleaseDates, rd)
	}
}

func mergeProduction(snap *Snapshot, pp *ParsedProduction) {
	if pp == nil {
		return
	}
	if b := pp.Budget; b != nil && snap.Production.Budget.Amount == nil {
		if b.Currency != "" {
			snap.Production.Budget.Currency = b.Currency
		}
		if b.Amount != nil && *b.Amount > 0 {
			a := *b.Amount
			snap.Production.Budget.Amount = &a
		}
	}
	for _, d := range pp.Directors {
		if d.Name == "" {
			continue
		}
		d.ID = uuid.NewString()
		if d.Role == "" {
			d.Role = "Director"
		}
		snap.Production.Directors = append(snap.Production.Directors, d)
	}
}

// appendUnique appends items not already present by exact string match.
func appendUnique(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[v] = true
	}
	for _, v := range incoming {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		existing = append(existing, v)
	}
	return existing
}

// #endregion merge
