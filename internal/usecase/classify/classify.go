// Package classify splits a requirement token set into mandatory and
// optional tiers using positional text cues.
package classify

import (
	"strings"

	"github.com/resumatch/resumatch/internal/domain"
)

// Section cues located case-insensitively in the requirement text.
const (
	mandatoryCue = "must have"
	optionalCue  = "good to have"
)

// Classify assigns every requirement token to exactly one tier. A token in
// the mandatory zone is mandatory; else one in the optional zone is optional;
// else it defaults to optional (under-classification is safer than inflating
// mandatory-skill pressure). With no cues present, every token is optional.
//
// A zone runs from its cue to the end of the text. An optional section that
// precedes the mandatory cue is therefore absorbed into the mandatory zone;
// this literal slicing is the defined contract, kept for parity with the
// upstream classifier.
func Classify(requirementText string, requirementTokens domain.TokenSet) domain.Tiers {
	text := strings.ToLower(requirementText)

	mandatoryZone := zoneAfter(text, mandatoryCue)
	optionalZone := zoneAfter(text, optionalCue)

	tiers := domain.Tiers{
		Mandatory: make(domain.TokenSet),
		Optional:  make(domain.TokenSet),
	}

	for token := range requirementTokens {
		switch {
		case strings.Contains(mandatoryZone, string(token)):
			tiers.Mandatory.Add(token)
		case strings.Contains(optionalZone, string(token)):
			tiers.Optional.Add(token)
		default:
			tiers.Optional.Add(token)
		}
	}

	return tiers
}

// zoneAfter returns the substring following the first occurrence of cue, or
// "" when the cue is absent.
func zoneAfter(text, cue string) string {
	idx := strings.Index(text, cue)
	if idx < 0 {
		return ""
	}
	return text[idx+len(cue):]
}
