package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

func classifiedWeek(t *testing.T) rangepick.ClassifiedRange {
	t.Helper()
	r, err := rangepick.Classify(dateutil.MustDate(2024, time.March, 4), dateutil.MustDate(2024, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" ics ", FormatICS, false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("got error %v, want %v", err, ErrUnknownFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	out := Text(classifiedWeek(t))

	for _, want := range []string{
		"Start Date: 2024-03-04",
		"End Date:   2024-03-10",
		"Weekday Dates: (5)",
		"Weekend Dates: (2)",
		"2024-03-08 Fri",
		"2024-03-09 Sat",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	weekdayIdx := strings.Index(out, "Weekday Dates")
	weekendIdx := strings.Index(out, "Weekend Dates")
	if strings.Index(out, "2024-03-09") < weekendIdx || strings.Index(out, "2024-03-05") > weekendIdx || weekdayIdx > weekendIdx {
		t.Errorf("dates listed under the wrong heading:\n%s", out)
	}
}

func TestText_EmptyPartition(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	sat := dateutil.MustDate(2024, time.March, 9)
	r, err := rangepick.Classify(sat, sat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Text(r)
	if !strings.Contains(out, "Weekday Dates: (0)\n  none") {
		t.Errorf("expected empty weekday list:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	got := Summary(classifiedWeek(t))
	want := "2024-03-04 → 2024-03-10: 5 weekdays, 2 weekend days"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, classifiedWeek(t), FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Start       string   `json:"start"`
		End         string   `json:"end"`
		Weekdays    []string `json:"weekdays"`
		WeekendDays []string `json:"weekend_days"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if got.Start != "2024-03-04" || got.End != "2024-03-10" {
		t.Errorf("bounds = %s..%s", got.Start, got.End)
	}
	if len(got.Weekdays) != 5 || got.Weekdays[0] != "2024-03-04" {
		t.Errorf("weekdays = %v", got.Weekdays)
	}
	if len(got.WeekendDays) != 2 || got.WeekendDays[1] != "2024-03-10" {
		t.Errorf("weekend_days = %v", got.WeekendDays)
	}
}

func TestWrite_JSONEmptyPartition(t *testing.T) {
	sat := dateutil.MustDate(2024, time.March, 9)
	r := rangepick.ClassifiedRange{Start: sat, End: sat, WeekendDays: []dateutil.Date{sat}}

	var buf bytes.Buffer
	if err := Write(&buf, r, FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"weekdays": []`) {
		t.Errorf("expected empty weekdays array:\n%s", buf.String())
	}
}

func TestWrite_ICS(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	var buf bytes.Buffer
	if err := Write(&buf, classifiedWeek(t), FormatICS); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 7 {
		t.Errorf("got %d events, want 7", got)
	}
	if got := strings.Count(out, "SUMMARY:Weekend"); got != 2 {
		t.Errorf("got %d weekend events, want 2", got)
	}
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + ICSProductID,
		"DTSTART;VALUE=DATE:20240304",
		"DTEND;VALUE=DATE:20240311",
		"UID:2024-03-09-Weekend@rangepick",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ics missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, classifiedWeek(t), Format("xml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got error %v, want %v", err, ErrUnknownFormat)
	}
}
