package moveevo

// Oracle answers whether a creature could have known a move at some valid
// point of its evolution chain under a learn group's rules.
type Oracle interface {
	CanKnowMove(enc EncounterTemplate, move MoveID, history EvolutionHistory, c Creature, group LearnGroup) bool
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(enc EncounterTemplate, move MoveID, history EvolutionHistory, c Creature, group LearnGroup) bool

// CanKnowMove calls f.
func (f OracleFunc) CanKnowMove(enc EncounterTemplate, move MoveID, history EvolutionHistory, c Creature, group LearnGroup) bool {
	return f(enc, move, history, c, group)
}

// GroupResolver selects the learn group that applies to a creature.
type GroupResolver interface {
	CurrentGroup(c Creature) LearnGroup
}

// GroupResolverFunc adapts a function to GroupResolver.
type GroupResolverFunc func(c Creature) LearnGroup

// CurrentGroup calls f.
func (f GroupResolverFunc) CurrentGroup(c Creature) LearnGroup {
	return f(c)
}

// Validator decides move-gated evolution legality. It holds no mutable state
// and is safe for concurrent use when its collaborators are.
type Validator struct {
	oracle   Oracle
	resolver GroupResolver
}

// NewValidator returns a validator backed by the given collaborators.
func NewValidator(oracle Oracle, resolver GroupResolver) *Validator {
	if oracle == nil {
		panic("moveevo: oracle is required")
	}
	if resolver == nil {
		panic("moveevo: group resolver is required")
	}
	return &Validator{oracle: oracle, resolver: resolver}
}

// IsValid reports whether c could have known the move its evolution required.
func (v *Validator) IsValid(c Creature, evo EvolutionContext) bool {
	if c.Format < GatedSince {
		return true
	}
	if c.Species == evo.Encounter.Species {
		return true
	}

	req := RequirementFor(evo.Encounter.Species)
	switch req.Kind {
	case RequirementNone:
		return true
	case RequirementMulti:
		// Other evolutions of the same species are not move-gated.
		if c.Species != req.Target {
			return true
		}
		return v.IsValidMulti(c, evo, req.Alternatives)
	}

	// A known move is conclusive even when every slot is egg or inherited.
	if c.Moves.Knows(req.Move) {
		return true
	}
	if !HasForgettableSlot(c.Moves) {
		return false
	}
	group := v.resolver.CurrentGroup(c)
	return v.oracle.CanKnowMove(evo.Encounter, req.Move, evo.History, c, group)
}

// IsValidMulti reports whether c could have known any of candidates when it
// evolved. Candidates are asked of the oracle in order.
func (v *Validator) IsValidMulti(c Creature, evo EvolutionContext, candidates []MoveID) bool {
	if c.Moves.KnowsAny(candidates) {
		return true
	}
	if !HasForgettableSlot(c.Moves) {
		return false
	}
	group := v.resolver.CurrentGroup(c)
	for _, move := range candidates {
		if v.oracle.CanKnowMove(evo.Encounter, move, evo.History, c, group) {
			return true
		}
	}
	return false
}
