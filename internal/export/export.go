// Package export renders classified ranges as text, JSON or iCalendar.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatICS  Format = "ics"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatICS}
}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want text, json or ics)", ErrUnknownFormat, s)
}

// Write encodes r to w in the given format.
func Write(w io.Writer, r rangepick.ClassifiedRange, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(r))
		return err
	case FormatJSON:
		return writeJSON(w, r)
	case FormatICS:
		return WriteICS(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

var (
	colorHeader  = color.New(color.Bold)
	colorWeekday = color.New(color.FgCyan)
	colorWeekend = color.New(color.FgYellow)
	colorMuted   = color.New(color.FgWhite, color.Faint)
)

// Text renders r the way the picker shows an applied range: the bounds
// followed by the weekday and weekend lists.
func Text(r rangepick.ClassifiedRange) string {
	var b strings.Builder

	fmt.Fprintln(&b, colorHeader.Sprint("Selected Date Range:"))
	fmt.Fprintf(&b, "  Start Date: %s\n", r.Start)
	fmt.Fprintf(&b, "  End Date:   %s\n", r.End)
	fmt.Fprintln(&b)

	writeList(&b, "Weekday Dates", r.Weekdays, colorWeekday)
	fmt.Fprintln(&b)
	writeList(&b, "Weekend Dates", r.WeekendDays, colorWeekend)

	return b.String()
}

func writeList(b *strings.Builder, title string, dates []dateutil.Date, c *color.Color) {
	fmt.Fprintf(b, "%s %s\n", colorHeader.Sprint(title+":"), colorMuted.Sprintf("(%d)", len(dates)))
	if len(dates) == 0 {
		fmt.Fprintln(b, colorMuted.Sprint("  none"))
		return
	}
	for _, d := range dates {
		fmt.Fprintf(b, "  %s %s\n", c.Sprint(d.String()), colorMuted.Sprint(d.Weekday().String()[:3]))
	}
}

// Summary returns a one-line description such as
// "2024-03-04 → 2024-03-10: 5 weekdays, 2 weekend days".
func Summary(r rangepick.ClassifiedRange) string {
	return fmt.Sprintf("%s → %s: %s, %s",
		r.Start, r.End,
		plural(len(r.Weekdays), "weekday"),
		plural(len(r.WeekendDays), "weekend day"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func writeJSON(w io.Writer, r rangepick.ClassifiedRange) error {
	// Empty partitions encode as [] rather than null.
	if r.Weekdays == nil {
		r.Weekdays = []dateutil.Date{}
	}
	if r.WeekendDays == nil {
		r.WeekendDays = []dateutil.Date{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
