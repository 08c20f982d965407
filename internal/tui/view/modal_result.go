package view

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// resultDatesPerLine is how many "2024-03-04 Mon" entries fit a modal row.
const resultDatesPerLine = 3

// ResultModel contains the fields needed to render the apply result body.
type ResultModel struct {
	Start        string
	End          string
	Summary      string
	WeekdayLines []string
	WeekendLines []string
	WeekdayCount int
	WeekendCount int
}

// ResultStyles groups styles for the result body.
type ResultStyles struct {
	MetaStyle         stringRenderer
	SectionTitleStyle stringRenderer
	BodyStyle         stringRenderer
	WeekdayStyle      stringRenderer
	WeekendStyle      stringRenderer
}

type stringRenderer interface {
	Render(...string) string
}

// NewResultModel builds the result model, listing at most maxLines rows of
// dates per section. Extra rows collapse into a "+N more" line.
func NewResultModel(r rangepick.ClassifiedRange, summary string, maxLines int) ResultModel {
	return ResultModel{
		Start:        r.Start.String(),
		End:          r.End.String(),
		Summary:      summary,
		WeekdayLines: dateLines(r.Weekdays, maxLines),
		WeekendLines: dateLines(r.WeekendDays, maxLines),
		WeekdayCount: len(r.Weekdays),
		WeekendCount: len(r.WeekendDays),
	}
}

func dateLines(dates []dateutil.Date, maxLines int) []string {
	if len(dates) == 0 {
		return nil
	}
	maxLines = max(maxLines, 1)

	lines := make([]string, 0, maxLines)
	for i := 0; i < len(dates); i += resultDatesPerLine {
		if len(lines) == maxLines-1 && len(dates)-i > resultDatesPerLine {
			lines = append(lines, fmt.Sprintf("+%d more", len(dates)-i))
			break
		}
		end := min(i+resultDatesPerLine, len(dates))
		entries := make([]string, 0, resultDatesPerLine)
		for _, d := range dates[i:end] {
			entries = append(entries, d.String()+" "+d.Weekday().String()[:3])
		}
		lines = append(lines, strings.Join(entries, "   "))
	}
	return lines
}

// RenderResultBody renders the modal body for an applied range.
func RenderResultBody(model ResultModel, styles ResultStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render(" Start Date: "+model.Start) + "\n")
	body.WriteString(styles.BodyStyle.Render(" End Date:   "+model.End) + "\n")
	body.WriteString(styles.MetaStyle.Render(" "+model.Summary) + "\n\n")

	writeSection(&body, fmt.Sprintf("WEEKDAY DATES (%d)", model.WeekdayCount), model.WeekdayLines, styles.WeekdayStyle, styles)
	body.WriteString("\n")
	writeSection(&body, fmt.Sprintf("WEEKEND DATES (%d)", model.WeekendCount), model.WeekendLines, styles.WeekendStyle, styles)

	return strings.TrimSuffix(body.String(), "\n")
}

func writeSection(b *strings.Builder, title string, lines []string, lineStyle stringRenderer, styles ResultStyles) {
	b.WriteString(styles.SectionTitleStyle.Render(title) + "\n")
	if len(lines) == 0 {
		b.WriteString(styles.MetaStyle.Render("  none") + "\n")
		return
	}
	for _, line := range lines {
		style := lineStyle
		if strings.HasPrefix(line, "+") {
			style = styles.MetaStyle
		}
		b.WriteString(style.Render("  "+line) + "\n")
	}
}
