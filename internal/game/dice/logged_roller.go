package dice

import "go.uber.org/zap"

// Roller picks rolls with a default bias and logs every selection at debug
// level with the label, candidate rolls, bias, and chosen value.
type Roller struct {
	bias   Bias
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller using bias when a caller passes none.
//
// Precondition: logger must be non-nil.
func NewLoggedRoller(bias Bias, logger *zap.Logger) *Roller {
	return &Roller{bias: bias, logger: logger}
}

// Default returns the bias used by Pick when override is nil.
func (r *Roller) Default() Bias {
	return r.bias
}

// Pick selects one of rolls using override, or the Roller's default bias
// when override is nil, and logs the result.
//
// Postcondition: result == rolls.Pick(bias) for the bias used.
func (r *Roller) Pick(label string, rolls Rolls, override *Bias) int {
	b := r.bias
	if override != nil {
		b = *override
	}
	v := rolls.Pick(b)
	r.logger.Debug("damage roll",
		zap.String("label", label),
		zap.Ints("rolls", rolls),
		zap.Stringer("bias", b),
		zap.Int("picked", v),
	)
	return v
}
