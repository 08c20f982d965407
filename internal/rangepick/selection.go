// Package rangepick turns day clicks into a committed date range and
// partitions committed ranges into weekdays and weekend days.
package rangepick

import (
	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// State is the phase of a Selection.
type State int

const (
	StateEmpty     State = iota // nothing clicked yet
	StateAnchored               // anchor set, waiting for the terminus
	StateCommitted              // anchor and terminus set
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAnchored:
		return "anchored"
	case StateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Selection is the anchor/terminus pair built up by day clicks.
// When both ends are set, Anchor is never after Terminus.
type Selection struct {
	anchor   dateutil.Date
	terminus dateutil.Date
	state    State
}

// State returns the selection phase.
func (s Selection) State() State {
	return s.state
}

// Anchor returns the first clicked date and whether it is set.
func (s Selection) Anchor() (dateutil.Date, bool) {
	return s.anchor, s.state != StateEmpty
}

// Terminus returns the closing date and whether it is set.
func (s Selection) Terminus() (dateutil.Date, bool) {
	return s.terminus, s.state == StateCommitted
}

// Range returns the committed range. ok is false unless the selection is committed.
func (s Selection) Range() (start, end dateutil.Date, ok bool) {
	if s.state != StateCommitted {
		return dateutil.Date{}, dateutil.Date{}, false
	}
	return s.anchor, s.terminus, true
}

// Contains reports whether d lies inside the committed range.
func (s Selection) Contains(d dateutil.Date) bool {
	start, end, ok := s.Range()
	return ok && !d.Before(start) && !d.After(end)
}

// Click returns the selection that results from clicking d.
//
//	empty     + d          -> anchored(d)
//	anchored  + d >= anchor -> committed(anchor, d)
//	anchored  + d <  anchor -> anchored(d)
//	committed + d          -> anchored(d)
func Click(sel Selection, d dateutil.Date) Selection {
	if sel.state == StateAnchored && !d.Before(sel.anchor) {
		return Selection{anchor: sel.anchor, terminus: d, state: StateCommitted}
	}
	return Selection{anchor: d, state: StateAnchored}
}
