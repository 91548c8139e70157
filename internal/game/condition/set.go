package condition

// Set tracks the volatile statuses on one combatant. It is a value type: an
// assignment copies it completely, so cloned combatants never share one.
type Set struct {
	active    [numKinds]bool
	remaining [numKinds]int
	moves     [numKinds]string
}

// Apply adds k with the given remaining turns (-1 for permanent, 0 for the
// kind's default) and the move it is tied to, if any. Re-applying an active
// kind is a no-op.
//
// Postcondition: Has(k) is true; returns false if k was already active.
func (s *Set) Apply(k Kind, turns int, move string) bool {
	if s.active[k] {
		return false
	}
	if turns == 0 {
		turns = defs[k].DefaultTurns
	}
	if defs[k].DurationType == DurationPermanent {
		turns = -1
	}
	s.active[k] = true
	s.remaining[k] = turns
	s.moves[k] = move
	return true
}

// Remove deletes k. Removing an inactive kind is a no-op.
//
// Postcondition: Has(k) is false.
func (s *Set) Remove(k Kind) {
	s.active[k] = false
	s.remaining[k] = 0
	s.moves[k] = ""
}

// Tick decrements every turn-limited volatile and removes those reaching 0.
//
// Postcondition: For every k in the returned slice, Has(k) is false.
func (s *Set) Tick() []Kind {
	var expired []Kind
	for k := Kind(0); k < numKinds; k++ {
		if !s.active[k] || s.remaining[k] < 0 {
			continue
		}
		s.remaining[k]--
		if s.remaining[k] <= 0 {
			expired = append(expired, k)
			s.Remove(k)
		}
	}
	return expired
}

// Clear removes every volatile.
func (s *Set) Clear() {
	*s = Set{}
}

// Has reports whether k is active.
func (s *Set) Has(k Kind) bool {
	return s.active[k]
}

// Remaining returns the turns left on k, -1 if permanent, or 0 if inactive.
func (s *Set) Remaining(k Kind) int {
	return s.remaining[k]
}

// Move returns the move k is tied to (encore, disable, choice lock).
func (s *Set) Move(k Kind) string {
	return s.moves[k]
}

// Kinds returns the active kinds in declaration order.
func (s *Set) Kinds() []Kind {
	var out []Kind
	for k := Kind(0); k < numKinds; k++ {
		if s.active[k] {
			out = append(out, k)
		}
	}
	return out
}

// Len returns the number of active kinds.
func (s *Set) Len() int {
	n := 0
	for _, a := range s.active {
		if a {
			n++
		}
	}
	return n
}
