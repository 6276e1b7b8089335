package dateformat_test

import (
	"testing"
	"time"

	"github.com/sequelhq/events-portal/internal/dateformat"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	instant := time.Date(2026, time.March, 5, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		instant  time.Time
		timezone string
		want     string
	}{
		{"utc", instant, "UTC", "Mar. 5 2026, 7:00 PM (UTC)"},
		{"zoned", instant, "America/New_York", "Mar. 5 2026, 2:00 PM (EST)"},
		{"unknown zone falls back to utc", instant, "Not/AZone", "Mar. 5 2026, 7:00 PM (UTC)"},
		{"empty zone falls back to utc", instant, "", "Mar. 5 2026, 7:00 PM (UTC)"},
		{"zero instant", time.Time{}, "UTC", dateformat.Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateformat.Format(tt.instant, tt.timezone, dateformat.DisplayLayout)
			require.Equal(t, tt.want, got)
		})
	}
}
