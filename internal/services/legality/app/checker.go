// Package app runs move evolution checks with tracing and structured
// failure results.
package app

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	apperrors "github.com/louisbranch/legality/internal/platform/errors"
	"github.com/louisbranch/legality/internal/services/legality/domain/moveevo"
)

// SpanName is the span recorded for each check.
const SpanName = "legality.move_evolution"

// Span attribute keys.
const (
	AttrSpecies          = attribute.Key("legality.species")
	AttrEncounterSpecies = attribute.Key("legality.encounter_species")
	AttrFormat           = attribute.Key("legality.format")
	AttrRequirement      = attribute.Key("legality.requirement")
	AttrValid            = attribute.Key("legality.valid")
)

// Result is the outcome of one check.
type Result struct {
	Valid       bool
	Requirement moveevo.MoveRequirement
	// Err describes the failure when Valid is false.
	Err *apperrors.Error
}

// Checker runs the validator under a tracing span.
type Checker struct {
	validator *moveevo.Validator
	tracer    trace.Tracer
}

// NewChecker builds a checker. A nil tracer disables tracing.
func NewChecker(validator *moveevo.Validator, tracer trace.Tracer) *Checker {
	if validator == nil {
		panic("app: validator is required")
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Checker{validator: validator, tracer: tracer}
}

// Check validates c against evo.
func (ch *Checker) Check(ctx context.Context, c moveevo.Creature, evo moveevo.EvolutionContext) Result {
	requirement := moveevo.RequirementFor(evo.Encounter.Species)

	_, span := ch.tracer.Start(ctx, SpanName, trace.WithAttributes(
		AttrSpecies.String(c.Species.String()),
		AttrEncounterSpecies.String(evo.Encounter.Species.String()),
		AttrFormat.Int(int(c.Format)),
		AttrRequirement.String(requirement.String()),
	))
	defer span.End()

	result := Result{
		Valid:       ch.validator.IsValid(c, evo),
		Requirement: requirement,
	}
	span.SetAttributes(AttrValid.Bool(result.Valid))
	if result.Valid {
		return result
	}

	result.Err = failure(c, evo, requirement)
	span.SetStatus(codes.Error, string(result.Err.Code))
	return result
}

func failure(c moveevo.Creature, evo moveevo.EvolutionContext, requirement moveevo.MoveRequirement) *apperrors.Error {
	metadata := map[string]string{
		"Species":          c.Species.String(),
		"EncounterSpecies": evo.Encounter.Species.String(),
	}
	if requirement.Kind == moveevo.RequirementMulti {
		names := make([]string, 0, len(requirement.Alternatives))
		for _, move := range requirement.Alternatives {
			names = append(names, move.String())
		}
		metadata["Moves"] = strings.Join(names, ", ")
		return apperrors.WithMetadata(apperrors.CodeMoveEvoNoCandidateMove, "evolved without any candidate move", metadata)
	}
	metadata["Move"] = requirement.Move.String()
	return apperrors.WithMetadata(apperrors.CodeMoveEvoRequiredMoveMissing, "evolved without required move", metadata)
}
