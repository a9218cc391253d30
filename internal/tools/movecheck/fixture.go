package movecheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/legality/internal/platform/errors"
	"github.com/louisbranch/legality/internal/services/legality/domain/moveevo"
)

// Fixture is a decoded creature check request.
type Fixture struct {
	Creature  moveevo.Creature
	Evolution moveevo.EvolutionContext
}

type fixtureFile struct {
	Creature  creatureDoc  `yaml:"creature"`
	Encounter encounterDoc `yaml:"encounter"`
	History   []chainDoc   `yaml:"history"`
}

type creatureDoc struct {
	Species uint16    `yaml:"species"`
	Form    uint8     `yaml:"form"`
	Format  uint8     `yaml:"format"`
	Version string    `yaml:"version"`
	Moves   []moveDoc `yaml:"moves"`
}

type moveDoc struct {
	Move   uint16 `yaml:"move"`
	Source string `yaml:"source"`
}

type encounterDoc struct {
	Species    uint16 `yaml:"species"`
	Form       uint8  `yaml:"form"`
	Generation uint8  `yaml:"generation"`
	Version    string `yaml:"version"`
	Egg        bool   `yaml:"egg"`
	Level      uint8  `yaml:"level"`
}

type chainDoc struct {
	Generation uint8      `yaml:"generation"`
	Stages     []stageDoc `yaml:"stages"`
}

type stageDoc struct {
	Species  uint16 `yaml:"species"`
	Form     uint8  `yaml:"form"`
	LevelMin uint8  `yaml:"level_min"`
	LevelMax uint8  `yaml:"level_max"`
}

// LoadFixture reads and decodes the fixture at path.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, apperrors.WrapWithMetadata(apperrors.CodeFixtureInvalid, "read fixture", map[string]string{"Reason": err.Error()}, err)
	}
	return DecodeFixture(bytes.NewReader(data))
}

// DecodeFixture decodes a YAML fixture. Unknown fields are rejected.
func DecodeFixture(r io.Reader) (Fixture, error) {
	var doc fixtureFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixture{}, invalidFixture("fixture is empty")
		}
		return Fixture{}, apperrors.WrapWithMetadata(apperrors.CodeFixtureInvalid, "decode fixture", map[string]string{"Reason": err.Error()}, err)
	}
	return doc.toFixture()
}

func (doc fixtureFile) toFixture() (Fixture, error) {
	if doc.Creature.Species == 0 {
		return Fixture{}, invalidFixture("creature species is required")
	}
	if doc.Creature.Format == 0 {
		return Fixture{}, invalidFixture("creature format is required")
	}
	if doc.Encounter.Species == 0 {
		return Fixture{}, invalidFixture("encounter species is required")
	}
	if len(doc.Creature.Moves) > moveevo.MovesetSize {
		return Fixture{}, invalidFixture(fmt.Sprintf("creature has %d moves, at most %d allowed", len(doc.Creature.Moves), moveevo.MovesetSize))
	}

	var moves moveevo.Moveset
	for i, slot := range doc.Creature.Moves {
		source, err := moveevo.ParseLearnSource(slot.Source)
		if err != nil {
			return Fixture{}, invalidFixture(fmt.Sprintf("move slot %d: %v", i+1, err))
		}
		moves[i] = moveevo.MoveSlot{Move: moveevo.MoveID(slot.Move), Source: source}
	}

	history := make(moveevo.EvolutionHistory, len(doc.History))
	for _, chain := range doc.History {
		generation := moveevo.Generation(chain.Generation)
		if _, exists := history[generation]; exists {
			return Fixture{}, invalidFixture(fmt.Sprintf("duplicate history for generation %d", chain.Generation))
		}
		stages := make([]moveevo.EvoCriteria, 0, len(chain.Stages))
		for _, stage := range chain.Stages {
			if stage.LevelMin > stage.LevelMax {
				return Fixture{}, invalidFixture(fmt.Sprintf("generation %d species %d: level_min exceeds level_max", chain.Generation, stage.Species))
			}
			stages = append(stages, moveevo.EvoCriteria{
				Species:  moveevo.SpeciesID(stage.Species),
				Form:     stage.Form,
				LevelMin: stage.LevelMin,
				LevelMax: stage.LevelMax,
			})
		}
		history[generation] = stages
	}

	return Fixture{
		Creature: moveevo.Creature{
			Species: moveevo.SpeciesID(doc.Creature.Species),
			Form:    doc.Creature.Form,
			Format:  moveevo.Generation(doc.Creature.Format),
			Version: doc.Creature.Version,
			Moves:   moves,
		},
		Evolution: moveevo.EvolutionContext{
			Encounter: moveevo.EncounterTemplate{
				Species:    moveevo.SpeciesID(doc.Encounter.Species),
				Form:       doc.Encounter.Form,
				Generation: moveevo.Generation(doc.Encounter.Generation),
				Version:    doc.Encounter.Version,
				Egg:        doc.Encounter.Egg,
				Level:      doc.Encounter.Level,
			},
			History: history,
		},
	}, nil
}

func invalidFixture(reason string) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeFixtureInvalid, reason, map[string]string{"Reason": reason})
}
