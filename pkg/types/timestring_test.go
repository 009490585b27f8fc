package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewTimeStringFromString("25:00")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewTimeStringFromString("10:60")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewTimeStringFromString("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("11:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:45")

	result, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "11:15", result.String())
}

func TestTimeStringScanTruncatesSeconds(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:05:59")))
	assert.Equal(t, "08:05", ts.String())
}

func TestTimeStringScanRejectsUnknownType(t *testing.T) {
	var ts TimeString

	require.ErrorIs(t, ts.Scan(42), ErrScanType)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 6, 15, 9, 5, 33, 0, time.UTC)

	assert.Equal(t, "09:05", NewTimeString(moment).String())
}
