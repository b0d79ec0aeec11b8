package timezone_test

import (
	"testing"
	"time"

	"libraryhub/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesApplicationLocation(t *testing.T) {
	now := timezone.Now()

	require.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestToday(t *testing.T) {
	day, err := time.Parse(time.DateOnly, timezone.Today())

	require.NoError(t, err)
	assert.Equal(t, timezone.Now().Format(time.DateOnly), day.Format(time.DateOnly))
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	start, err := timezone.Parse("2006-01-02 15:04", "2026-10-19 09:30")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), start.Location())
	assert.Equal(t, "09:30", timezone.Format(start, "15:04"))
	assert.Equal(t, "2026-10-19", timezone.Format(start, time.DateOnly))
}

func TestToAppTime(t *testing.T) {
	instant := time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(instant)

	assert.True(t, instant.Equal(converted))
	assert.Equal(t, timezone.GetLocation(), converted.Location())
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := timezone.Parse("2006-01-02 15:04", "2026-10-19 9am")

	assert.Error(t, err)
}

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { timezone.SetLocation("UTC") })

	timezone.SetLocation("Asia/Kolkata")
	assert.Equal(t, "Asia/Kolkata", timezone.GetLocation().String())

	timezone.SetLocation("Mars/Olympus_Mons")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.SetLocation("")
	assert.Equal(t, time.UTC, timezone.GetLocation())
}
