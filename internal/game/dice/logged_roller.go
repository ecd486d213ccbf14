package dice

import "go.uber.org/zap"

// Recorder observes completed rolls, e.g. to update metrics.
type Recorder interface {
	ObserveRoll(r RollResult, sides int)
}

// Option configures a Roller.
type Option func(*Roller)

// WithHistory makes the Roller append every roll to h.
func WithHistory(h *History) Option {
	return func(r *Roller) { r.history = h }
}

// WithRecorder makes the Roller report every roll to rec.
func WithRecorder(rec Recorder) Option {
	return func(r *Roller) { r.recorder = rec }
}

// Roller wraps a Source and logger to provide logged dice rolling.
// All rolls are logged at debug level with notation, dice values, modifier, and total.
// History and recording are optional and off unless configured.
type Roller struct {
	src      Source
	logger   *zap.Logger
	history  *History
	recorder Recorder
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger, opts ...Option) *Roller {
	if src == nil {
		panic("dice: NewLoggedRoller precondition violated: src must be non-nil")
	}
	r := &Roller{src: src, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// History returns the audit buffer, or nil when none was configured.
func (r *Roller) History() *History { return r.history }

// Roll evaluates n under adv and records the result.
//
// Precondition: n must come from Parse.
func (r *Roller) Roll(n Notation, adv AdvantageState) RollResult {
	return r.record(Roll(n, adv, r.src), n.Sides)
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string, adv AdvantageState) (RollResult, error) {
	n, err := Parse(expr)
	if err != nil {
		r.logger.Debug("dice notation rejected", zap.String("notation", expr), zap.Error(err))
		return RollResult{}, err
	}
	return r.Roll(n, adv), nil
}

// RollD20 rolls 1d20+modifier under adv.
func (r *Roller) RollD20(modifier int, adv AdvantageState) RollResult {
	return r.Roll(Notation{Count: 1, Sides: 20, Modifier: modifier}, adv)
}

// RollDamage parses expr and rolls it as damage, clamped to at least 1.
//
// Postcondition: on success result.Total >= 1.
func (r *Roller) RollDamage(expr string) (RollResult, error) {
	n, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.record(RollDamage(n, r.src), n.Sides), nil
}

// RollCritical parses expr and rolls it as critical damage (dice doubled).
//
// Postcondition: on success result.Total >= 1.
func (r *Roller) RollCritical(expr string) (RollResult, error) {
	n, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.record(RollCritical(n, r.src), n.Sides), nil
}

func (r *Roller) record(result RollResult, sides int) RollResult {
	r.logger.Debug("dice roll",
		zap.String("notation", result.Notation),
		zap.Ints("rolls", result.Rolls),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total),
		zap.Stringer("advantage", result.Advantage),
	)
	if r.history != nil {
		r.history.Record(result)
	}
	if r.recorder != nil {
		r.recorder.ObserveRoll(result, sides)
	}
	return result
}
