package learnset

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/legality/internal/services/legality/domain/moveevo"
	"github.com/louisbranch/legality/internal/services/legality/storage"
)

// Method is how a move is learned within a learn group.
type Method string

// Learn methods recorded in storage.
const (
	MethodLevelUp  Method = "level_up"
	MethodMachine  Method = "machine"
	MethodTutor    Method = "tutor"
	MethodReminder Method = "reminder"
	MethodEgg      Method = "egg"
)

var methods = map[Method]struct{}{
	MethodLevelUp:  {},
	MethodMachine:  {},
	MethodTutor:    {},
	MethodReminder: {},
	MethodEgg:      {},
}

// ParseMethod validates and normalizes a method name.
func ParseMethod(value string) (Method, error) {
	method := Method(strings.ToLower(strings.TrimSpace(value)))
	if method == "" {
		return "", fmt.Errorf("learn method must not be empty")
	}
	if _, ok := methods[method]; !ok {
		return "", fmt.Errorf("learn method %q is not supported", value)
	}
	return method, nil
}

// Entry is one way a species form learns a move in a learn group.
type Entry struct {
	Species moveevo.SpeciesID
	Form    uint8
	Move    moveevo.MoveID
	Group   string
	Method  Method
	Level   uint8
}

type entryKey struct {
	group   string
	species moveevo.SpeciesID
	form    uint8
	move    moveevo.MoveID
}

type rule struct {
	method Method
	level  uint8
}

// Table is an immutable in-memory learnset. It is safe for concurrent use.
type Table struct {
	rules map[entryKey][]rule
}

var _ moveevo.Oracle = (*Table)(nil)

// NewTable indexes entries for lookup.
func NewTable(entries []Entry) *Table {
	t := &Table{rules: make(map[entryKey][]rule, len(entries))}
	for _, entry := range entries {
		key := entryKey{group: entry.Group, species: entry.Species, form: entry.Form, move: entry.Move}
		t.rules[key] = append(t.rules[key], rule{method: entry.Method, level: entry.Level})
	}
	return t
}

// Load reads every stored learnset entry into a table.
func Load(ctx context.Context, store storage.LearnsetStore) (*Table, error) {
	if store == nil {
		return nil, fmt.Errorf("learnset store is required")
	}
	records, err := store.ListLearnsetEntries(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list learnset entries: %w", err)
	}
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entry, err := FromRecord(record)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return NewTable(entries), nil
}

// FromRecord converts a stored record into an Entry.
func FromRecord(record storage.LearnsetEntry) (Entry, error) {
	method, err := ParseMethod(record.Method)
	if err != nil {
		return Entry{}, fmt.Errorf("species %d move %d: %w", record.Species, record.Move, err)
	}
	group, ok := GroupByName(record.Group)
	if !ok {
		return Entry{}, fmt.Errorf("species %d move %d: learn group %q is not supported", record.Species, record.Move, record.Group)
	}
	return Entry{
		Species: moveevo.SpeciesID(record.Species),
		Form:    record.Form,
		Move:    moveevo.MoveID(record.Move),
		Group:   group.Name,
		Method:  method,
		Level:   record.Level,
	}, nil
}

// ToRecord converts an Entry into its stored form.
func (e Entry) ToRecord() storage.LearnsetEntry {
	return storage.LearnsetEntry{
		Species: uint16(e.Species),
		Form:    e.Form,
		Move:    uint16(e.Move),
		Group:   e.Group,
		Method:  string(e.Method),
		Level:   e.Level,
	}
}

// Len returns the number of distinct species/move/group keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// CanKnowMove reports whether the creature could have known move when it
// evolved. The chain of the current group's generation is checked under that
// group; each earlier generation back to the encounter's is checked under all
// of its groups, covering creatures that evolved before being transferred.
func (t *Table) CanKnowMove(enc moveevo.EncounterTemplate, move moveevo.MoveID, history moveevo.EvolutionHistory, _ moveevo.Creature, group moveevo.LearnGroup) bool {
	if t == nil || group.Name == "" {
		return false
	}
	if t.chainAllows(enc, move, history.Chain(group.Generation), group) {
		return true
	}

	floor := enc.Generation
	if floor == 0 {
		floor = 1
	}
	for generation := group.Generation - 1; generation >= floor && generation < group.Generation; generation-- {
		chain := history.Chain(generation)
		if len(chain) == 0 {
			continue
		}
		for _, earlier := range generationGroups[generation] {
			if t.chainAllows(enc, move, chain, earlier) {
				return true
			}
		}
	}
	return false
}

func (t *Table) chainAllows(enc moveevo.EncounterTemplate, move moveevo.MoveID, chain []moveevo.EvoCriteria, group moveevo.LearnGroup) bool {
	for _, stage := range chain {
		key := entryKey{group: group.Name, species: stage.Species, form: stage.Form, move: move}
		for _, r := range t.rules[key] {
			if r.allows(enc, stage) {
				return true
			}
		}
	}
	return false
}

func (r rule) allows(enc moveevo.EncounterTemplate, stage moveevo.EvoCriteria) bool {
	switch r.method {
	case MethodLevelUp:
		return r.level <= stage.LevelMax
	case MethodMachine, MethodTutor, MethodReminder:
		return true
	case MethodEgg:
		return enc.Egg && enc.Species == stage.Species
	default:
		return false
	}
}
