package templates

import (
	"strings"
	"time"
)

// Date layouts accepted for resume entries, tried in order. Dates are stored
// as free-form strings; anything parseable gets a "Mon 2006" label.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01",
	"2006/01/02",
	"01/2006",
	"January 2006",
	"Jan 2006",
	"2006",
}

// FormatMonthYear renders a date string as "{Month abbreviation} {year}",
// e.g. "Mar 2021". Unparseable or empty input returns an empty string rather
// than failing the render.
func FormatMonthYear(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}

// FormatDateRange renders the date-range label for an entry. A missing or
// unparseable start date suppresses the label entirely. The current flag
// forces the end label to "Present" regardless of any end date.
func FormatDateRange(start, end string, current bool) string {
	startLabel := FormatMonthYear(start)
	if startLabel == "" {
		return ""
	}
	if current {
		return startLabel + " - Present"
	}
	endLabel := FormatMonthYear(end)
	if endLabel == "" {
		return startLabel
	}
	return startLabel + " - " + endLabel
}
