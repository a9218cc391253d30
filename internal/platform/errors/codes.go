// Package errors provides structured legality errors with localized messages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"
	// CodeNotFound represents a missing record.
	CodeNotFound Code = "NOT_FOUND"

	// Legality outcomes
	CodeMoveEvoRequiredMoveMissing Code = "MOVE_EVO_REQUIRED_MOVE_MISSING"
	CodeMoveEvoNoCandidateMove     Code = "MOVE_EVO_NO_CANDIDATE_MOVE"

	// Tool input errors
	CodeFixtureInvalid      Code = "FIXTURE_INVALID"
	CodeLearnsetInvalid     Code = "LEARNSET_INVALID"
	CodeLearnsetUnavailable Code = "LEARNSET_UNAVAILABLE"
)

// IsLegality reports whether the code describes a failed legality check
// rather than a tool or input failure.
func (c Code) IsLegality() bool {
	switch c {
	case CodeMoveEvoRequiredMoveMissing, CodeMoveEvoNoCandidateMove:
		return true
	default:
		return false
	}
}
