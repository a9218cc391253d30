package movecheck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/louisbranch/legality/internal/platform/errors"
	"github.com/louisbranch/legality/internal/services/legality/domain/moveevo"
)

func TestDecodeFixture(t *testing.T) {
	fixture, err := DecodeFixture(strings.NewReader(ambipomFixture))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := Fixture{
		Creature: moveevo.Creature{
			Species: 424,
			Format:  8,
			Version: "swsh",
			Moves: moveevo.Moveset{
				{Move: 33, Source: moveevo.LearnSourceOther},
				{Move: 45, Source: moveevo.LearnSourceEgg},
			},
		},
		Evolution: moveevo.EvolutionContext{
			Encounter: moveevo.EncounterTemplate{Species: 190, Generation: 4, Version: "dp", Level: 5},
			History: moveevo.EvolutionHistory{
				8: {
					{Species: 424, LevelMin: 32, LevelMax: 100},
					{Species: 190, LevelMin: 5, LevelMax: 32},
				},
			},
		},
	}
	if diff := cmp.Diff(want, fixture); diff != "" {
		t.Fatalf("fixture mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFixtureInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{"empty", "", "fixture is empty"},
		{"missing species", "creature: {format: 8}\nencounter: {species: 190}\n", "creature species is required"},
		{"missing format", "creature: {species: 424}\nencounter: {species: 190}\n", "creature format is required"},
		{"missing encounter", "creature: {species: 424, format: 8}\n", "encounter species is required"},
		{
			"too many moves",
			"creature: {species: 424, format: 8, moves: [{move: 1}, {move: 2}, {move: 3}, {move: 4}, {move: 5}]}\nencounter: {species: 190}\n",
			"at most 4 allowed",
		},
		{
			"unknown source",
			"creature: {species: 424, format: 8, moves: [{move: 1, source: tm}]}\nencounter: {species: 190}\n",
			"move slot 1",
		},
		{
			"duplicate generation",
			"creature: {species: 424, format: 8}\nencounter: {species: 190}\nhistory: [{generation: 8}, {generation: 8}]\n",
			"duplicate history for generation 8",
		},
		{
			"inverted levels",
			"creature: {species: 424, format: 8}\nencounter: {species: 190}\nhistory: [{generation: 8, stages: [{species: 190, level_min: 40, level_max: 10}]}]\n",
			"level_min exceeds level_max",
		},
		{"unknown field", "creature: {species: 424, format: 8, nickname: x}\nencounter: {species: 190}\n", "nickname"},
		{"malformed", "creature: [\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFixture(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if code := apperrors.GetCode(err); code != apperrors.CodeFixtureInvalid {
				t.Fatalf("code = %q, want %q", code, apperrors.CodeFixtureInvalid)
			}
			if tt.reason != "" && !strings.Contains(err.Error(), tt.reason) {
				t.Fatalf("error = %q, want to contain %q", err.Error(), tt.reason)
			}
		})
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture("does-not-exist.yaml")
	if code := apperrors.GetCode(err); code != apperrors.CodeFixtureInvalid {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeFixtureInvalid)
	}
}
