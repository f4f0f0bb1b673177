package form

// #region sample

// SampleSnapshot returns a fully populated example submission.
// Used by the REPL demo and by tests that need a complete form.
func SampleSnapshot() Snapshot {
	year := 2026
	amount := int64(45_000_000)
	return Snapshot{
		Core: Core{
			Title:           "The Last Horizon",
			TitleChecked:    true,
			Type:            TypeFilm,
			Subtype:         SubtypeFeatureLength,
			Status:          StatusReleased,
			Year:            &year,
			ContributorRole: RoleProducerDirectorWriter,
		},
		Mandatory: Mandatory{
			ReleaseDates: []ReleaseDate{
				{ID: "rd-1", Country: "United States", Day: "18", Month: "07", Year: "2026", ReleaseType: ReleaseTheatrical},
				{ID: "rd-2", Country: "United Kingdom", Day: "01", Month: "08", Year: "2026", ReleaseType: ReleaseTheatrical, Note: "Limited release"},
			},
			MiscLinks: []MiscLink{
				{ID: "ml-1", Label: "Official Site", URL: "https://thelasthorizon.movie"},
			},
		},
		Identity: Identity{
			CountriesOfOrigin: []string{"United States", "United Kingdom"},
			Languages:         []string{"English", "French"},
			ColorFormat:       ColorColor,
			Genres:            []string{"Action", "Sci-Fi", "Drama"},
		},
		Production: Production{
			Budget: Budget{Currency: "USD", Amount: &amount},
			OfficialSites: []OfficialSite{
				{ID: "os-1", URL: "https://thelasthorizon.movie", Description: "Official Website"},
			},
			Directors: []Director{
				{ID: "pd-1", Name: "Ava Chen", Role: "Director"},
			},
			Distributors: []Distributor{
				{ID: "dist-1", CompanyName: "Universal Pictures", Region: "worldwide", Year: "2026", DistributionType: "theatrical"},
			},
			ProductionCompanies: []ProductionCompany{
				{ID: "pc-1", CompanyName: "Horizon Films", Attribute: "Production"},
			},
		},
		Credits: Credits{
			MajorCredits: MajorCredits{
				Cast: 5, Writers: 2, Producers: 3, Composers: 1, Cinematographers: 1, Editors: 1,
			},
			RecommendedInfo: RecommendedInfo{
				RunningTimes: 1, Taglines: 1, PlotSummaries: 1,
			},
		},
		Meta: Meta{
			Warnings:    []Warning{},
			Assumptions: []Assumption{},
		},
	}
}

// #endregion sample
