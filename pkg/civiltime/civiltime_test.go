package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

func berlin(t *testing.T) *Converter {
	t.Helper()
	conv, err := New("Europe/Berlin")
	require.NoError(t, err)
	return conv
}

func TestNew_UnknownLocation(t *testing.T) {
	_, err := New("Mars/Olympus")
	assert.Error(t, err)
}

func TestAt(t *testing.T) {
	conv := berlin(t)

	got, err := conv.At("2026-01-06", types.TimeString("10:00"))
	require.NoError(t, err)

	// Berlin is UTC+1 in winter
	assert.Equal(t, time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC), got.UTC())
	assert.Equal(t, "2026-01-06", conv.DateOf(got))
	assert.Equal(t, types.TimeString("10:00"), conv.TimeOf(got))
}

func TestAt_InvalidInput(t *testing.T) {
	conv := berlin(t)

	_, err := conv.At("06.01.2026", types.TimeString("10:00"))
	assert.Error(t, err)

	_, err = conv.At("2026-01-06", types.TimeString("25:00"))
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestAt_AcrossDSTTransition(t *testing.T) {
	conv := berlin(t)

	// Clocks move forward on 2026-03-29; offsets differ by one hour
	before, err := conv.At("2026-03-28", types.TimeString("10:00"))
	require.NoError(t, err)
	after, err := conv.At("2026-03-30", types.TimeString("10:00"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 28, 9, 0, 0, 0, time.UTC), before.UTC())
	assert.Equal(t, time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC), after.UTC())
	assert.Equal(t, types.TimeString("10:00"), conv.TimeOf(after))
}

func TestParseDate(t *testing.T) {
	conv := berlin(t)

	d, err := conv.ParseDate("2026-01-06")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06", d.Format(DateFormat))
	assert.Equal(t, 0, d.Hour())

	_, err = conv.ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	conv := berlin(t)

	// 23:30 UTC is already the next civil day in Berlin
	instant := time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC)
	start := conv.StartOfDay(instant)

	assert.Equal(t, "2026-01-06", start.Format(DateFormat))
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, conv.Location(), start.Location())
}

func TestWeekday(t *testing.T) {
	conv := berlin(t)

	instant := time.Date(2026, 1, 4, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, conv.Weekday(instant))
}
