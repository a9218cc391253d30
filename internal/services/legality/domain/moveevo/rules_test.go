package moveevo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRequirementForSingleRules(t *testing.T) {
	tests := []struct {
		species SpeciesID
		want    MoveID
	}{
		{SpeciesPrimeape, MoveRageFist},
		{SpeciesLickitung, MoveRollout},
		{SpeciesTangela, MoveAncientPower},
		{SpeciesAipom, MoveDoubleHit},
		{SpeciesYanma, MoveAncientPower},
		{SpeciesGirafarig, MoveTwinBeam},
		{SpeciesDunsparce, MoveHyperDrill},
		{SpeciesQwilfish, MoveBarbBarrage},
		{SpeciesPiloswine, MoveAncientPower},
		{SpeciesStantler, MovePsyshieldBash},
		{SpeciesBonsly, MoveMimic},
		{SpeciesMimeJr, MoveMimic},
		{SpeciesSteenee, MoveStomp},
		{SpeciesPoipole, MoveDragonPulse},
		{SpeciesClobbopus, MoveTaunt},
	}

	for _, tt := range tests {
		t.Run(tt.species.String(), func(t *testing.T) {
			got := RequirementFor(tt.species)
			if got.Kind != RequirementSingle {
				t.Fatalf("kind = %d, want %d", got.Kind, RequirementSingle)
			}
			if got.Move != tt.want {
				t.Fatalf("move = %s, want %s", got.Move, tt.want)
			}
		})
	}
}

func TestRequirementForEevee(t *testing.T) {
	want := MoveRequirement{
		Kind:         RequirementMulti,
		Alternatives: []MoveID{MoveCharm, MoveBabyDollEyes},
		Target:       SpeciesSylveon,
	}
	if diff := cmp.Diff(want, RequirementFor(SpeciesEevee)); diff != "" {
		t.Fatalf("RequirementFor(Eevee) mismatch (-want +got):\n%s", diff)
	}
}

func TestRequirementForUnlistedSpecies(t *testing.T) {
	for _, species := range []SpeciesID{0, 1, 25, SpeciesSylveon, 1025} {
		got := RequirementFor(species)
		if got.IsGated() {
			t.Fatalf("RequirementFor(%s) = %s, want none", species, got)
		}
		if got.Moves() != nil {
			t.Fatalf("Moves() = %v, want nil", got.Moves())
		}
	}
}

func TestRequirementForReturnsCopy(t *testing.T) {
	first := RequirementFor(SpeciesEevee)
	first.Alternatives[0] = MoveStomp

	second := RequirementFor(SpeciesEevee)
	if second.Alternatives[0] != MoveCharm {
		t.Fatalf("alternatives[0] = %s, want %s", second.Alternatives[0], MoveCharm)
	}
	moves := second.Moves()
	moves[1] = MoveStomp
	if second.Alternatives[1] != MoveBabyDollEyes {
		t.Fatalf("alternatives[1] = %s, want %s", second.Alternatives[1], MoveBabyDollEyes)
	}
}

func TestGatedSpeciesSorted(t *testing.T) {
	got := GatedSpecies()
	if len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("species not ascending at %d: %v", i, got)
		}
	}
	for _, species := range got {
		if !RequirementFor(species).IsGated() {
			t.Fatalf("%s listed but not gated", species)
		}
	}
}

func TestMoveRequirementString(t *testing.T) {
	tests := []struct {
		name string
		req  MoveRequirement
		want string
	}{
		{"none", MoveRequirement{}, "none"},
		{"single", RequirementFor(SpeciesAipom), "Double Hit"},
		{"multi", RequirementFor(SpeciesEevee), "Charm | Baby-Doll Eyes -> Sylveon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
