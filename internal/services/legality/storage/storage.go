// Package storage defines persistence contracts for learnset data consumed by
// the legality checks.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates no learnset entries matched a query.
var ErrNotFound = errors.New("record not found")

// LearnsetEntry records one way a species form learns a move in a learn group.
type LearnsetEntry struct {
	Species uint16
	Form    uint8
	Move    uint16
	Group   string
	Method  string
	// Level is the level-up threshold; zero for non level-up methods.
	Level uint8
}

// LearnsetStore persists learnset entries.
type LearnsetStore interface {
	PutLearnsetEntries(ctx context.Context, entries []LearnsetEntry) error
	// ListLearnsetEntries lists entries for group, or every entry when group is empty.
	ListLearnsetEntries(ctx context.Context, group string) ([]LearnsetEntry, error)
}
