package movecheck

import (
	"encoding/json"
	"io"

	"github.com/louisbranch/legality/internal/platform/i18n/catalog"
	"github.com/louisbranch/legality/internal/services/legality/app"
)

type jsonReport struct {
	Locale           string `json:"locale"`
	Species          string `json:"species"`
	SpeciesID        uint16 `json:"species_id"`
	EncounterSpecies string `json:"encounter_species"`
	Format           uint8  `json:"format"`
	Version          string `json:"version,omitempty"`
	Requirement      string `json:"requirement"`
	Valid            bool   `json:"valid"`
	Code             string `json:"code,omitempty"`
	Message          string `json:"message,omitempty"`
}

func writeJSONReport(out io.Writer, locale string, fixture Fixture, result app.Result) error {
	bundle := catalog.Default()
	report := jsonReport{
		Locale:           bundle.Resolve(locale),
		Species:          fixture.Creature.Species.String(),
		SpeciesID:        uint16(fixture.Creature.Species),
		EncounterSpecies: fixture.Evolution.Encounter.Species.String(),
		Format:           uint8(fixture.Creature.Format),
		Version:          fixture.Creature.Version,
		Requirement:      result.Requirement.String(),
		Valid:            result.Valid,
	}
	if result.Err != nil {
		report.Code = string(result.Err.Code)
		report.Message = result.Err.Localize(report.Locale)
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func writeTextReport(out io.Writer, locale string, fixture Fixture, result app.Result) error {
	p := catalog.Default().Printer(locale)
	version := fixture.Creature.Version
	if version == "" {
		version = "-"
	}

	lines := []string{
		p.Sprintf("legality.report.title"),
		p.Sprintf("legality.report.creature", fixture.Creature.Species.String(), int(fixture.Creature.Format), version),
		p.Sprintf("legality.report.encounter", fixture.Evolution.Encounter.Species.String()),
		p.Sprintf("legality.report.requirement", result.Requirement.String()),
	}
	if result.Valid {
		lines = append(lines, p.Sprintf("legality.report.valid"))
	} else {
		lines = append(lines, p.Sprintf("legality.report.invalid"))
		if result.Err != nil {
			lines = append(lines, result.Err.Localize(locale))
		}
	}
	for _, line := range lines {
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
