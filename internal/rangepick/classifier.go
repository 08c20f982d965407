package rangepick

import (
	"errors"

	"go.uber.org/zap"

	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// ErrRangeNotCommitted is returned when a range is applied before both ends are picked.
var ErrRangeNotCommitted = errors.New("no committed range: select a start and an end date first")

// Observer receives every successfully applied range.
type Observer interface {
	RangeApplied(r ClassifiedRange)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(r ClassifiedRange)

// RangeApplied calls f(r).
func (f ObserverFunc) RangeApplied(r ClassifiedRange) {
	f(r)
}

// Classifier owns the selection of one picker session. It is not safe for
// concurrent use; the UI event loop drives it serially.
type Classifier struct {
	sel      Selection
	observer Observer
	logger   *zap.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithObserver registers the observer notified on apply.
func WithObserver(o Observer) Option {
	return func(c *Classifier) {
		c.observer = o
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClassifier creates a Classifier with an empty selection.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Selection returns the current selection.
func (c *Classifier) Selection() Selection {
	return c.sel
}

// OnDayClicked advances the selection with a click on d.
func (c *Classifier) OnDayClicked(d dateutil.Date) {
	from := c.sel.State()
	c.sel = Click(c.sel, d)
	c.logger.Debug("day clicked",
		zap.Stringer("date", d),
		zap.Stringer("from", from),
		zap.Stringer("to", c.sel.State()))
}

// OnApplyRequested classifies the committed range, hands it to the observer
// and returns it. It returns ErrRangeNotCommitted and notifies nobody when
// the selection is not committed.
func (c *Classifier) OnApplyRequested() (ClassifiedRange, error) {
	start, end, ok := c.sel.Range()
	if !ok {
		c.logger.Debug("apply rejected", zap.Stringer("state", c.sel.State()))
		return ClassifiedRange{}, ErrRangeNotCommitted
	}

	r, err := Classify(start, end)
	if err != nil {
		return ClassifiedRange{}, err
	}

	c.logger.Info("range applied",
		zap.Stringer("start", r.Start),
		zap.Stringer("end", r.End),
		zap.Int("weekdays", len(r.Weekdays)),
		zap.Int("weekend_days", len(r.WeekendDays)))

	if c.observer != nil {
		c.observer.RangeApplied(r)
	}
	return r, nil
}

// Reset discards the selection.
func (c *Classifier) Reset() {
	c.sel = Selection{}
}
