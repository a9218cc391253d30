package moveevo

// HasForgettableSlot reports whether any slot could have overwritten a
// required move after evolution. Egg and inherited level-up slots are already
// accounted for by breeding, so only slots from other sources qualify.
func HasForgettableSlot(moves Moveset) bool {
	for _, slot := range moves {
		if slot.Source != LearnSourceEgg && slot.Source != LearnSourceInheritedLevelUp {
			return true
		}
	}
	return false
}
