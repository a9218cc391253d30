package moveevo

import (
	"fmt"
	"strings"
)

// SpeciesID identifies one creature species.
type SpeciesID uint16

// MoveID identifies one move.
type MoveID uint16

// Generation is a game generation number, also used as a creature format.
type Generation uint8

// MovesetSize is the number of move slots a creature carries.
const MovesetSize = 4

// GatedSince is the first generation with move-gated evolutions.
const GatedSince Generation = 4

// LearnSource tags how a current move slot was acquired.
type LearnSource uint8

const (
	// LearnSourceOther covers every source that overwrites a slot freely.
	LearnSourceOther LearnSource = iota
	// LearnSourceEgg marks a move inherited through breeding.
	LearnSourceEgg
	// LearnSourceInheritedLevelUp marks a level-up move carried from a parent.
	LearnSourceInheritedLevelUp
)

var learnSourceNames = map[LearnSource]string{
	LearnSourceOther:            "other",
	LearnSourceEgg:              "egg",
	LearnSourceInheritedLevelUp: "inherited_level_up",
}

// String returns the stable name used in fixtures and reports.
func (s LearnSource) String() string {
	if name, ok := learnSourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("learn_source(%d)", uint8(s))
}

// ParseLearnSource parses a learn source name. An empty value is "other".
func ParseLearnSource(value string) (LearnSource, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return LearnSourceOther, nil
	}
	for source, name := range learnSourceNames {
		if name == normalized {
			return source, nil
		}
	}
	return LearnSourceOther, fmt.Errorf("learn source %q is not supported", value)
}

// MoveSlot is one known move and how it was learned.
type MoveSlot struct {
	Move   MoveID
	Source LearnSource
}

// Moveset is the fixed set of slots a creature currently knows.
type Moveset [MovesetSize]MoveSlot

// Knows reports whether any slot holds move.
func (m Moveset) Knows(move MoveID) bool {
	for _, slot := range m {
		if slot.Move == move {
			return true
		}
	}
	return false
}

// KnowsAny reports whether any slot holds one of moves.
func (m Moveset) KnowsAny(moves []MoveID) bool {
	for _, move := range moves {
		if m.Knows(move) {
			return true
		}
	}
	return false
}

// Creature is the read-only view of the record under check.
type Creature struct {
	Species SpeciesID
	Form    uint8
	// Format is the generation of the game the record currently lives in.
	Format  Generation
	// Version is the current game of the record, not its origin game. A
	// version outside Format is ignored when resolving the learn group.
	Version string
	Moves   Moveset
}

// EncounterTemplate describes how the creature was originally obtained.
type EncounterTemplate struct {
	Species    SpeciesID
	Form       uint8
	Generation Generation
	Version    string
	Egg        bool
	Level      uint8
}

// EvoCriteria is one stage of an evolution chain within a generation.
type EvoCriteria struct {
	Species  SpeciesID
	Form     uint8
	LevelMin uint8
	LevelMax uint8
}

// EvolutionHistory holds the evolution chain for each generation the creature
// has existed in, most evolved stage first.
type EvolutionHistory map[Generation][]EvoCriteria

// Chain returns the stages recorded for generation.
func (h EvolutionHistory) Chain(generation Generation) []EvoCriteria {
	return h[generation]
}

// EvolutionContext bundles the per-check inputs besides the creature itself.
type EvolutionContext struct {
	Encounter EncounterTemplate
	History   EvolutionHistory
}

// LearnGroup names the generation-specific rule set used to learn moves.
type LearnGroup struct {
	Name       string
	Generation Generation
}
