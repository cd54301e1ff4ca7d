package money

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/homegame/pokertally/internal/poker"
)

func TestCentsToDollars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12345", "123.45"},
		{"0", "0"},
		{"-500", "-5"},
		{"1", "0.01"},
		{"100", "1"},
	}
	for _, tt := range tests {
		got, err := CentsToDollars(tt.in)
		require.NoError(t, err)
		require.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"CentsToDollars(%q)=%s, want %s", tt.in, got, tt.want)
	}
}

func TestCentsToDollarsExact(t *testing.T) {
	// 12345 cents must be exactly 123.45, not a float approximation.
	got, err := CentsToDollars("12345")
	require.NoError(t, err)
	require.Equal(t, "123.45", got.String())
}

func TestCentsToDollarsRejectsGarbage(t *testing.T) {
	_, err := CentsToDollars("12x45")
	require.Error(t, err)
	require.True(t, errors.Is(err, poker.ErrMalformedInput))
}

func TestParseUTCTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2023-01-27T21:01:58Z", time.Date(2023, 1, 27, 21, 1, 58, 0, time.UTC)},
		{"2023-01-27T21:01:58.528Z", time.Date(2023, 1, 27, 21, 1, 58, 528000000, time.UTC)},
		{"2023-01-27T21:01:58", time.Date(2023, 1, 27, 21, 1, 58, 0, time.UTC)},
		{"2023-01-27T21:01:58+00:00", time.Date(2023, 1, 27, 21, 1, 58, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseUTCTime(tt.in)
		require.NoError(t, err, "ParseUTCTime(%q)", tt.in)
		require.True(t, got.Equal(tt.want), "ParseUTCTime(%q)=%v, want %v", tt.in, got, tt.want)
	}
}

func TestParseUTCTimeRejectsGarbage(t *testing.T) {
	_, err := ParseUTCTime("yesterday")
	require.Error(t, err)
	require.True(t, errors.Is(err, poker.ErrMalformedInput))
}
