package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-presence/internal/httperr"
)

func TestParse_ValidStatuses(t *testing.T) {
	for _, raw := range []string{"available", "on_break", "offline"} {
		s, err := Parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, Status(raw), s)
	}
}

func TestParse_RejectsOutOfEnum(t *testing.T) {
	for _, raw := range []string{"busy", "AVAILABLE", "", "away"} {
		_, err := Parse(raw)
		require.Error(t, err, raw)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusAvailable))
	assert.True(t, IsActive(StatusOnBreak))
	assert.False(t, IsActive(StatusOffline))
}

func TestBreakWindow_AwayTarget(t *testing.T) {
	w := DefaultBreakWindow

	at := func(hour, min int) time.Time {
		return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"meio do expediente", at(14, 0), StatusOnBreak},
		{"noite", at(20, 0), StatusOffline},
		{"antes de abrir", at(8, 59), StatusOffline},
		{"exatamente 09:00", at(9, 0), StatusOnBreak},
		{"exatamente 18:00", at(18, 0), StatusOffline},
		{"17:59", at(17, 59), StatusOnBreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.AwayTarget(tt.now))
		})
	}
}
