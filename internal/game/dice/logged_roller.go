package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice checking.
// All checks are logged at debug level with die, modifier, total, and outcome.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each check to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Source returns the underlying randomness source.
func (r *Roller) Source() Source { return r.src }

// RollCheck evaluates c and logs the result at debug level.
//
// Postcondition: Exactly one value consumed from the underlying Source.
func (r *Roller) RollCheck(c Check) RollResult {
	result := RollCheck(c, r.src)
	r.logger.Debug("dice check",
		zap.Int("die", result.Die),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total),
		zap.Int("threshold", c.Threshold),
		zap.String("outcome", result.Outcome.String()),
	)
	return result
}
