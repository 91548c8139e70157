package raid

import "strings"

// Status is the single non-volatile status condition.
type Status uint8

const (
	StatusNone Status = iota
	Paralysis
	Poison
	Burn
	Freeze
	Sleep
	Toxic
	numStatuses
)

var statusNames = [numStatuses]string{"", "par", "psn", "brn", "frz", "slp", "tox"}

func (s Status) String() string {
	if s >= numStatuses {
		return ""
	}
	return statusNames[s]
}

// ParseStatus resolves an abbreviation ("par") or a full ailment name
// ("paralysis", "bad-poison").
func ParseStatus(name string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "par", "paralysis":
		return Paralysis, true
	case "psn", "poison":
		return Poison, true
	case "brn", "burn":
		return Burn, true
	case "frz", "freeze":
		return Freeze, true
	case "slp", "sleep":
		return Sleep, true
	case "tox", "toxic", "bad-poison":
		return Toxic, true
	}
	return StatusNone, false
}
