package system

import "time"

// DefaultDateTimeLayout renders like "9:05 03/14/2026".
const DefaultDateTimeLayout = "3:04 01/02/2006"

// FormatDateTime renders t for the "Date and Time" view in t's own location.
func FormatDateTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateTimeLayout
	}
	return t.Format(layout)
}
