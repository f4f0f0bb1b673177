package assistant

import "titleguide/internal/form"

// Autofix describes a one-click remediation attached to a message.
// The command is a pure descriptor; form.Store.Apply executes it.
type Autofix struct {
	Label      string
	FixID      string
	TargetStep int
	Command    form.FixCommand
}

// GetAutofix returns the remediation for intents that have one,
// nil otherwise.
func GetAutofix(intent Intent) *Autofix {
	switch intent {
	case IntentTitleCapitalization:
		return &Autofix{
			Label:      "Capitalize title",
			FixID:      "fix-title-cap",
			TargetStep: 0,
			Command:    form.FixCommand{Kind: form.FixCapitalizeTitle},
		}
	case IntentYearFormat:
		return &Autofix{
			Label:      "Set year as unknown",
			FixID:      "fix-unknown-year",
			TargetStep: 0,
			Command:    form.FixCommand{Kind: form.FixSetUnknownYear},
		}
	case IntentMissingReleaseDate:
		return &Autofix{
			Label:      "Add release date",
			FixID:      "fix-add-release-date",
			TargetStep: 1,
			Command:    form.FixCommand{Kind: form.FixAddReleaseDate},
		}
	case IntentMissingEvidence:
		return &Autofix{
			Label:      "Add evidence link",
			FixID:      "fix-add-evidence",
			TargetStep: 1,
			Command:    form.FixCommand{Kind: form.FixAddEvidenceLink},
		}
	default:
		return nil
	}
}
