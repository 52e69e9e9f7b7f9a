package daykey

import (
	"adventbot/internal/domain"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokyo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := LoadLocation(DefaultTimeZone)
	require.NoError(t, err)
	return loc
}

func TestFormatDay_UsesConfiguredZone(t *testing.T) {
	loc := tokyo(t)
	// 2025-12-16 20:00 UTC is already 2025-12-17 in Tokyo.
	instant := time.Date(2025, 12, 16, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-12-17", FormatDay(instant, loc))
	assert.Equal(t, "2025-12-16", FormatDay(instant, time.UTC))
}

func TestFormatDay_PadsYear(t *testing.T) {
	instant := time.Date(987, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "0987-03-04", FormatDay(instant, time.UTC))
}

func TestFormatDay_RoundTripsThroughParseDay(t *testing.T) {
	loc := tokyo(t)
	instants := []time.Time{
		time.Date(2025, 12, 17, 3, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 15, 0, 0, 0, time.UTC),
	}
	for _, x := range instants {
		key := FormatDay(x, loc)
		parsed, err := ParseDay(key)
		require.NoError(t, err)
		assert.Equal(t, key, FormatDay(parsed, loc))
	}
}

func TestParseDay_Success(t *testing.T) {
	got, err := ParseDay("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseDay_Malformed(t *testing.T) {
	inputs := []string{"", "not-a-date", "2025-13-01", "2025-00-10", "2025-02-30", "0000-01-01", "2025-1-5", "2025-01-05T00:00:00Z"}
	for _, in := range inputs {
		_, err := ParseDay(in)
		require.Error(t, err, in)
		var dateErr *domain.MalformedDateError
		assert.True(t, errors.As(err, &dateErr), in)
		assert.Equal(t, in, dateErr.Input)
	}
}

func TestParsePublicationDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-12-17T07:26:38+09:00", time.Date(2025, 12, 16, 22, 26, 38, 0, time.UTC)},
		{"2025-12-17T00:00:00.123Z", time.Date(2025, 12, 17, 0, 0, 0, 123000000, time.UTC)},
		{"Wed, 17 Dec 2025 07:00:00 +0900", time.Date(2025, 12, 16, 22, 0, 0, 0, time.UTC)},
		{"Wed, 17 Dec 2025 07:00:00 GMT", time.Date(2025, 12, 17, 7, 0, 0, 0, time.UTC)},
		{"Wed, 3 Dec 2025 07:00:00 +0000", time.Date(2025, 12, 3, 7, 0, 0, 0, time.UTC)},
		{"2025-12-17", time.Date(2025, 12, 17, 0, 0, 0, 0, time.UTC)},
		{"2025-12-17T10:00:00", time.Date(2025, 12, 17, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParsePublicationDate(tc.in)
		require.True(t, ok, tc.in)
		assert.True(t, tc.want.Equal(got), "%s: got %s", tc.in, got)
	}
}

func TestParsePublicationDate_NamedZones(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"Tue, 16 Dec 2025 12:00:00 EST", time.Date(2025, 12, 16, 17, 0, 0, 0, time.UTC)},
		{"Tue, 16 Dec 2025 12:00:00 EDT", time.Date(2025, 12, 16, 16, 0, 0, 0, time.UTC)},
		{"Tue, 16 Dec 2025 12:00:00 PST", time.Date(2025, 12, 16, 20, 0, 0, 0, time.UTC)},
		{"Tue, 16 Dec 2025 12:00:00 CDT", time.Date(2025, 12, 16, 17, 0, 0, 0, time.UTC)},
		{"Tue, 16 Dec 2025 12:00:00 MST", time.Date(2025, 12, 16, 19, 0, 0, 0, time.UTC)},
		{"Tue, 16 Dec 2025 12:00:00 UT", time.Date(2025, 12, 16, 12, 0, 0, 0, time.UTC)},
		{"16 Dec 25 12:00 gmt", time.Date(2025, 12, 16, 12, 0, 0, 0, time.UTC)},
		{"2025-12-17T07:26:38+0900", time.Date(2025, 12, 16, 22, 26, 38, 0, time.UTC)},
		{"2025-12-17T07:26:38.5-0700", time.Date(2025, 12, 17, 14, 26, 38, 500000000, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParsePublicationDate(tc.in)
		require.True(t, ok, tc.in)
		assert.True(t, tc.want.Equal(got), "%s: got %s", tc.in, got)
	}
}

func TestParsePublicationDate_IndependentOfLocalZone(t *testing.T) {
	tokyoLoc := tokyo(t)
	newYork, err := LoadLocation("America/New_York")
	require.NoError(t, err)
	saved := time.Local
	t.Cleanup(func() { time.Local = saved })

	for _, local := range []*time.Location{time.UTC, newYork, tokyoLoc} {
		time.Local = local

		got, ok := ParsePublicationDate("Tue, 16 Dec 2025 12:00:00 EST")
		require.True(t, ok, local.String())
		assert.True(t, time.Date(2025, 12, 16, 17, 0, 0, 0, time.UTC).Equal(got), "local %s: got %s", local, got)
		assert.Equal(t, "2025-12-17", FormatDay(got, tokyoLoc), local.String())

		_, ok = ParsePublicationDate("Tue, 16 Dec 2025 20:00:00 JST")
		assert.False(t, ok, "local %s", local)
	}
}

func TestParsePublicationDate_Absent(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "17/12/2025", "Tue, 16 Dec 2025 20:00:00 JST", "Tue, 16 Dec 2025 20:00:00 XYZ"} {
		_, ok := ParsePublicationDate(in)
		assert.False(t, ok, in)
	}
}

func TestNextOccurrence(t *testing.T) {
	loc := tokyo(t)
	now := time.Date(2025, 12, 17, 8, 30, 0, 0, loc)

	next, err := NextOccurrence(now, "09:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 17, 9, 0, 0, 0, loc), next)

	next, err = NextOccurrence(now, "08:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 18, 8, 30, 0, 0, loc), next)

	_, err = NextOccurrence(now, "25:00", loc)
	assert.Error(t, err)
}
