package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/pystack-sh/pystack/pkg/bootstrap"
	"github.com/pystack-sh/pystack/pkg/types"
)

// OutcomeStyle returns the pterm badge style for a materializer outcome
func OutcomeStyle(outcome types.Outcome) *pterm.Style {
	switch outcome {
	case types.OutcomeCreated:
		return pterm.NewStyle(pterm.FgGreen)
	case types.OutcomeSkipped:
		return pterm.NewStyle(pterm.FgGray)
	case types.OutcomeBackedUp:
		return pterm.NewStyle(pterm.FgYellow)
	case types.OutcomeForced:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// OutcomeVerb returns the reporting verb for a materializer outcome,
// switched to future tense for dry runs.
func OutcomeVerb(outcome types.Outcome, simulated bool) string {
	verbs := map[types.Outcome]struct {
		past   string
		future string
	}{
		types.OutcomeCreated:  {past: "created", future: "would create"},
		types.OutcomeSkipped:  {past: "unchanged", future: "unchanged"},
		types.OutcomeBackedUp: {past: "backed up and overwritten", future: "would back up and overwrite"},
		types.OutcomeForced:   {past: "overwritten without backup", future: "would overwrite without backup"},
	}

	v, ok := verbs[outcome]
	if !ok {
		return string(outcome)
	}
	if simulated {
		return v.future
	}
	return v.past
}

// StateStyle returns the lipgloss style for a status drift state
func StateStyle(state bootstrap.ArtifactState) lipgloss.Style {
	switch state {
	case bootstrap.StateUnchanged:
		return SuccessStyle
	case bootstrap.StateMissing:
		return WarningStyle
	case bootstrap.StateDrifted:
		return ErrorStyle
	default:
		return MutedStyle
	}
}
