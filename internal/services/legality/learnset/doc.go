// Package learnset answers move learnability questions from a flat table of
// learnset entries, and resolves which learn group applies to a creature.
//
// It is the reference collaborator for the moveevo validator. It covers the
// level-up, machine, tutor, reminder, and egg paths recorded in storage; it
// does not model events or transfer-only moves.
package learnset
