package validation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/lead-validator/internal/types"
)

// Handler validates a lead under one rule.
type Handler func(lead types.Lead) (types.Verdict, error)

// Options configures a Dispatcher.
type Options struct {
	Title  TitleThresholds
	Logger *zap.Logger
}

// DefaultOptions returns options with default title thresholds and a no-op logger.
func DefaultOptions() Options {
	return Options{Title: DefaultTitleThresholds()}
}

// Dispatcher selects a rule handler by the lead's sub_status and turns every
// handler failure into a RECHECK verdict.
type Dispatcher struct {
	handlers map[types.SubStatus]Handler
	logger   *zap.Logger
}

// NewDispatcher returns a dispatcher wired with the four built-in rules.
func NewDispatcher(opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	title := NewTitleCoverage(opts.Title)
	if err := title.Err(); err != nil {
		logger.Warn("title thresholds are invalid, title leads will be rechecked", zap.Error(err))
	}
	return &Dispatcher{
		handlers: map[types.SubStatus]Handler{
			types.SubStatusTitlePLSummary: title.Check,
			types.SubStatusProofLink:      ValidateProofLink,
			types.SubStatusNWC:            ValidateNWC,
			types.SubStatusOther:          ValidateOther,
		},
		logger: logger,
	}
}

// Register replaces the handler for a known sub-status.
func (d *Dispatcher) Register(s types.SubStatus, h Handler) {
	d.handlers[s] = h
}

// Validate returns the verdict for a lead. It never panics and never returns an
// empty verdict.
func (d *Dispatcher) Validate(lead types.Lead) types.Verdict {
	raw := lead.SubStatus
	s, ok := types.ParseSubStatus(raw)
	if !ok {
		return types.Recheck(fmt.Sprintf("Unknown sub_status: %s", raw))
	}

	h, ok := d.handlers[s]
	if !ok || h == nil {
		return types.Recheck(fmt.Sprintf("Unknown sub_status: %s", raw))
	}

	v, err := call(h, lead)
	if err != nil {
		d.logger.Debug("rule handler failed",
			zap.String("sub_status", raw),
			zap.Error(err))
		return types.Recheck(fmt.Sprintf("Handler error for sub_status: %s: %v", raw, err))
	}
	if v.IsZero() {
		return types.Recheck(fmt.Sprintf("Handler returned empty result for sub_status: %s", raw))
	}
	if !v.Result.Known() {
		return types.Recheck(fmt.Sprintf("Handler returned unknown result %q for sub_status: %s", v.Result, raw))
	}
	return v
}

// call runs h and converts a panic into a PanicError.
func call(h Handler, lead types.Lead) (v types.Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = types.Verdict{}, &PanicError{Value: r}
		}
	}()
	return h(lead)
}
