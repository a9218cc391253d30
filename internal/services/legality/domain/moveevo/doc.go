// Package moveevo checks evolutions that require the pre-evolved creature to
// know a specific move when it levels up.
//
// The check is a pure decision over values supplied by the caller:
//
//   - the rule table maps the encounter species to the move it must have known
//   - the slot heuristic decides whether a required move could have been
//     forgotten without leaving evidence in the current moveset
//   - the learnability oracle and learn group resolver answer whether the
//     creature could have known the move in the generation it evolved in
//
// A false verdict is the legality failure signal. Reporting it is left to the
// caller.
package moveevo
