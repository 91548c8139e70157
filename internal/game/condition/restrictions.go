package condition

// RestrictingKind reports the first active volatile that forbids using move.
// isStatus marks status moves; lastMove is the holder's previous move.
func RestrictingKind(s *Set, move string, isStatus bool, lastMove string) (Kind, bool) {
	for _, k := range s.Kinds() {
		switch defs[k].Restrict {
		case RestrictStatusMoves:
			if isStatus {
				return k, true
			}
		case RestrictOtherMoves:
			if s.moves[k] != "" && s.moves[k] != move {
				return k, true
			}
		case RestrictRecordedMove:
			if s.moves[k] == move {
				return k, true
			}
		case RestrictRepeat:
			if lastMove != "" && lastMove == move {
				return k, true
			}
		}
	}
	return 0, false
}

// ClearMental removes every kind cured by Mental Herb and reports whether any
// was removed.
func ClearMental(s *Set) bool {
	cured := false
	for _, k := range s.Kinds() {
		if defs[k].Mental {
			s.Remove(k)
			cured = true
		}
	}
	return cured
}
