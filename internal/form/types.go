package form

// #region enums

// TitleType classifies the primary release format of a submission.
type TitleType string

const (
	TypeFilm          TitleType = "film"
	TypeMadeForTV     TitleType = "madeForTv"
	TypeMadeForVideo  TitleType = "madeForVideo"
	TypeMusicVideo    TitleType = "musicVideo"
	TypePodcastSeries TitleType = "podcastSeries"
	TypeVideoGame     TitleType = "videoGame"
	TypeUnset         TitleType = ""
)

// TitleSubtype distinguishes features from shorts.
type TitleSubtype string

const (
	SubtypeFeatureLength TitleSubtype = "featureLength"
	SubtypeShortSubject  TitleSubtype = "shortSubject"
	SubtypeUnset         TitleSubtype = ""
)

// TitleStatus captures where the title is in its release lifecycle.
type TitleStatus string

const (
	StatusReleased          TitleStatus = "released"
	StatusLimitedScreenings TitleStatus = "limitedScreenings"
	StatusCompletedNotShown TitleStatus = "completedNotShown"
	StatusNotComplete       TitleStatus = "notComplete"
	StatusUnset             TitleStatus = ""
)

// ContributorRole is the submitter's declared connection to the title.
type ContributorRole string

const (
	RoleProducerDirectorWriter ContributorRole = "producerDirectorWriter"
	RoleCastCrew               ContributorRole = "castCrew"
	RolePublicist              ContributorRole = "publicist"
	RoleNoneOfAbove            ContributorRole = "noneOfAbove"
	RoleUnset                  ContributorRole = ""
)

// ColorFormat marks the predominant visual format.
type ColorFormat string

const (
	ColorColor         ColorFormat = "color"
	ColorBlackAndWhite ColorFormat = "blackAndWhite"
	ColorUnset         ColorFormat = ""
)

// ReleaseType categorizes a release-date row.
type ReleaseType string

const (
	ReleaseTheatrical ReleaseType = "theatrical"
	ReleaseDigital    ReleaseType = "digital"
	ReleasePhysical   ReleaseType = "physical"
	ReleaseTV         ReleaseType = "tv"
	ReleaseFestival   ReleaseType = "festival"
	ReleaseUnset      ReleaseType = ""
)

// UnknownYearSentinel is stored when the release year cannot be determined.
const UnknownYearSentinel = 9999

// #endregion enums

// #region row-types

// ReleaseDate is one market/date entry. Day may be empty.
type ReleaseDate struct {
	ID          string      `json:"id"`
	Country     string      `json:"country"`
	Day         string      `json:"day"`
	Month       string      `json:"month"`
	Year        string      `json:"year"`
	ReleaseType ReleaseType `json:"releaseType"`
	Note        string      `json:"note"`
}

// MiscLink is an evidence link row.
type MiscLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Budget holds the production budget. Amount nil means not provided.
type Budget struct {
	Currency string `json:"currency"`
	Amount   *int64 `json:"amount"`
}

// OfficialSite is a page officially tied to the title.
type OfficialSite struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Director is a production-step director entry.
type Director struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Attribute string `json:"attribute"`
}

// Distributor is a distribution company entry.
type Distributor struct {
	ID               string `json:"id"`
	CompanyName      string `json:"companyName"`
	Region           string `json:"region"`
	Year             string `json:"year"`
	DistributionType string `json:"distributionType"`
	Attribute        string `json:"attribute"`
}

// ProductionCompany is a production company entry.
type ProductionCompany struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Attribute   string `json:"attribute"`
}

// #endregion row-types

// #region credits

// MajorCredits counts entries per major credit category.
type MajorCredits struct {
	Cast             int `json:"cast"`
	Self             int `json:"self"`
	Writers          int `json:"writers"`
	Producers        int `json:"producers"`
	Composers        int `json:"composers"`
	Cinematographers int `json:"cinematographers"`
	Editors          int `json:"editors"`
}

// FilledCategories returns how many of the seven categories have at least one entry.
func (m MajorCredits) FilledCategories() int {
	n := 0
	for _, v := range []int{m.Cast, m.Self, m.Writers, m.Producers, m.Composers, m.Cinematographers, m.Editors} {
		if v > 0 {
			n++
		}
	}
	return n
}

// RecommendedInfo counts optional enrichment entries.
type RecommendedInfo struct {
	Certificates     int `json:"certificates"`
	RunningTimes     int `json:"runningTimes"`
	FilmingLocations int `json:"filmingLocations"`
	SoundMix         int `json:"soundMix"`
	AspectRatio      int `json:"aspectRatio"`
	Taglines         int `json:"taglines"`
	PlotOutlines     int `json:"plotOutlines"`
	PlotSummaries    int `json:"plotSummaries"`
	Keywords         int `json:"keywords"`
	Trivia           int `json:"trivia"`
}

// AnyFilled reports whether any recommended-info category has an entry.
func (r RecommendedInfo) AnyFilled() bool {
	for _, v := range []int{r.Certificates, r.RunningTimes, r.FilmingLocations, r.SoundMix, r.AspectRatio, r.Taglines, r.PlotOutlines, r.PlotSummaries, r.Keywords, r.Trivia} {
		if v > 0 {
			return true
		}
	}
	return false
}

// #endregion credits

// #region meta

// Warning is an advisory flag attached to the submission.
type Warning struct {
	ID      string `json:"id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Assumption records an inference made on the user's behalf.
type Assumption struct {
	ID      string `json:"id"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// Meta carries derived submission metadata.
type Meta struct {
	ConfidenceScore int          `json:"confidenceScore"`
	Warnings        []Warning    `json:"warnings"`
	Assumptions     []Assumption `json:"assumptions"`
}

// #endregion meta

// #region step-slices

// Core is the step-0 identity slice.
type Core struct {
	Title           string          `json:"title"`
	TitleChecked    bool            `json:"titleChecked"`
	Type            TitleType       `json:"type"`
	Subtype         TitleSubtype    `json:"subtype"`
	Status          TitleStatus     `json:"status"`
	Year            *int            `json:"year"`
	ContributorRole ContributorRole `json:"contributorRole"`
}

// Mandatory is the step-1 evidence slice.
type Mandatory struct {
	ReleaseDates []ReleaseDate `json:"releaseDates"`
	MiscLinks    []MiscLink    `json:"miscLinks"`
}

// Identity is the step-2 facet slice.
type Identity struct {
	CountriesOfOrigin []string    `json:"countriesOfOrigin"`
	Languages         []string    `json:"languages"`
	ColorFormat       ColorFormat `json:"colorFormat"`
	ColorAttribute    string      `json:"colorAttribute"`
	Genres            []string    `json:"genres"`
}

// Production is the step-3 slice.
type Production struct {
	Budget              Budget              `json:"budget"`
	OfficialSites       []OfficialSite      `json:"officialSites"`
	Directors           []Director          `json:"directors"`
	Distributors        []Distributor       `json:"distributors"`
	ProductionCompanies []ProductionCompany `json:"productionCompanies"`
}

// Credits is the step-4 slice.
type Credits struct {
	MajorCredits    MajorCredits    `json:"majorCredits"`
	RecommendedInfo RecommendedInfo `json:"recommendedInfo"`
}

// #endregion step-slices

// #region snapshot

// Snapshot is the full submission state at one evaluation instant.
// Consumers treat it as read-only; the Store hands out deep copies.
type Snapshot struct {
	Core       Core       `json:"core"`
	Mandatory  Mandatory  `json:"mandatory"`
	Identity   Identity   `json:"identity"`
	Production Production `json:"production"`
	Credits    Credits    `json:"credits"`
	Meta       Meta       `json:"meta"`
}

// EmptySnapshot returns a zero-value form with every list present and
// every enum at its unset sentinel.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Mandatory: Mandatory{
			ReleaseDates: []ReleaseDate{},
			MiscLinks:    []MiscLink{},
		},
		Identity: Identity{
			CountriesOfOrigin: []string{},
			Languages:         []string{},
			Genres:            []string{},
		},
		Production: Production{
			Budget:              Budget{Currency: "USD"},
			OfficialSites:       []OfficialSite{},
			Directors:           []Director{},
			Distributors:        []Distributor{},
			ProductionCompanies: []ProductionCompany{},
		},
		Meta: Meta{
			Warnings:    []Warning{},
			Assumptions: []Assumption{},
		},
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Mandatory.ReleaseDates = append([]ReleaseDate(nil), s.Mandatory.ReleaseDates...)
	out.Mandatory.MiscLinks = append([]MiscLink(nil), s.Mandatory.MiscLinks...)
	out.Identity.CountriesOfOrigin = append([]string(nil), s.Identity.CountriesOfOrigin...)
	out.Identity.Languages = append([]string(nil), s.Identity.Languages...)
	out.Identity.Genres = append([]string(nil), s.Identity.Genres...)
	out.Production.OfficialSites = append([]OfficialSite(nil), s.Production.OfficialSites...)
	out.Production.Directors = append([]Director(nil), s.Production.Directors...)
	out.Production.Distributors = append([]Distributor(nil), s.Production.Distributors...)
	out.Production.ProductionCompanies = append([]ProductionCompany(nil), s.Production.ProductionCompanies...)
	out.Meta.Warnings = append([]Warning(nil), s.Meta.Warnings...)
	out.Meta.Assumptions = append([]Assumption(nil), s.Meta.Assumptions...)
	if s.Core.Year != nil {
		y := *s.Core.Year
		out.Core.Year = &y
	}
	if s.Production.Budget.Amount != nil {
		a := *s.Production.Budget.Amount
		out.Production.Budget.Amount = &a
	}
	return out
}

// #endregion snapshot
