package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	for _, s := range []string{"", "9:05:00", "25:00", "12:60", "noon"} {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
	}
}

func TestFromMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    TimeString
	}{
		{0, "00:00"},
		{65, "01:05"},
		{9*60 + 30, "09:30"},
		{23*60 + 59, "23:59"},
	}
	for _, c := range cases {
		got, err := FromMinutes(c.minutes)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	for _, m := range []int{-1, 24 * 60, 24*60 + 30} {
		_, err := FromMinutes(m)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "minutes %d", m)
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 12 * 60, 23*60 + 59} {
		ts, err := FromMinutes(m)
		require.NoError(t, err)
		got, err := ts.Minutes()
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := TimeString("kaputt").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("09:00"))
	assert.True(t, TimeString("13:00").IsAfter("09:59"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestNewTimeString(t *testing.T) {
	instant := time.Date(2026, 1, 6, 14, 7, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:07"), NewTimeString(instant))
}
