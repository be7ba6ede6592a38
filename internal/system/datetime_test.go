package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTime(t *testing.T) {
	morning := time.Date(2026, time.March, 14, 9, 5, 0, 0, time.UTC)
	evening := time.Date(2026, time.December, 1, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "9:05 03/14/2026", FormatDateTime(morning, ""))
	assert.Equal(t, "9:30 12/01/2026", FormatDateTime(evening, DefaultDateTimeLayout))
	assert.Equal(t, "2026-12-01 21:30", FormatDateTime(evening, "2006-01-02 15:04"))
}
