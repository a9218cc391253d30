package moveevo

import (
	"fmt"
	"slices"
	"strings"
)

// RequirementKind tags the variant held by a MoveRequirement.
type RequirementKind uint8

const (
	// RequirementNone means the lineage does not evolve by knowing a move.
	RequirementNone RequirementKind = iota
	// RequirementSingle means one specific move must be known.
	RequirementSingle
	// RequirementMulti means any of several moves unlocks one final form.
	RequirementMulti
)

// MoveRequirement is the move an encounter species must know to evolve.
type MoveRequirement struct {
	Kind RequirementKind
	// Move is set for RequirementSingle.
	Move MoveID
	// Alternatives is the ordered candidate list for RequirementMulti.
	Alternatives []MoveID
	// Target is the only evolution gated by a RequirementMulti rule.
	Target SpeciesID
}

// IsGated reports whether the requirement restricts evolution at all.
func (r MoveRequirement) IsGated() bool {
	return r.Kind != RequirementNone
}

// Moves returns every move that satisfies the requirement.
func (r MoveRequirement) Moves() []MoveID {
	switch r.Kind {
	case RequirementSingle:
		return []MoveID{r.Move}
	case RequirementMulti:
		return append([]MoveID(nil), r.Alternatives...)
	default:
		return nil
	}
}

func (r MoveRequirement) String() string {
	switch r.Kind {
	case RequirementSingle:
		return r.Move.String()
	case RequirementMulti:
		names := make([]string, 0, len(r.Alternatives))
		for _, move := range r.Alternatives {
			names = append(names, move.String())
		}
		return fmt.Sprintf("%s -> %s", strings.Join(names, " | "), r.Target)
	default:
		return "none"
	}
}

func single(move MoveID) MoveRequirement {
	return MoveRequirement{Kind: RequirementSingle, Move: move}
}

// fairyMoves are the moves an Eevee may know to become Sylveon, in check order.
var fairyMoves = []MoveID{MoveCharm, MoveBabyDollEyes}

var requirements = map[SpeciesID]MoveRequirement{
	SpeciesPrimeape:  single(MoveRageFist),
	SpeciesLickitung: single(MoveRollout),
	SpeciesTangela:   single(MoveAncientPower),
	SpeciesAipom:     single(MoveDoubleHit),
	SpeciesYanma:     single(MoveAncientPower),
	SpeciesGirafarig: single(MoveTwinBeam),
	SpeciesDunsparce: single(MoveHyperDrill),
	SpeciesQwilfish:  single(MoveBarbBarrage),
	SpeciesPiloswine: single(MoveAncientPower),
	SpeciesStantler:  single(MovePsyshieldBash),
	SpeciesBonsly:    single(MoveMimic),
	SpeciesMimeJr:    single(MoveMimic),
	SpeciesSteenee:   single(MoveStomp),
	SpeciesPoipole:   single(MoveDragonPulse),
	SpeciesClobbopus: single(MoveTaunt),
	SpeciesEevee: {
		Kind:         RequirementMulti,
		Alternatives: fairyMoves,
		Target:       SpeciesSylveon,
	},
}

// RequirementFor returns the move requirement for an encounter species.
// Species without a rule yield RequirementNone.
func RequirementFor(species SpeciesID) MoveRequirement {
	req, ok := requirements[species]
	if !ok {
		return MoveRequirement{}
	}
	if req.Kind == RequirementMulti {
		req.Alternatives = append([]MoveID(nil), req.Alternatives...)
	}
	return req
}

// GatedSpecies returns every species with a move requirement in ascending order.
func GatedSpecies() []SpeciesID {
	out := make([]SpeciesID, 0, len(requirements))
	for species := range requirements {
		out = append(out, species)
	}
	slices.Sort(out)
	return out
}
