package isodatetime

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

// setClock pins the package clock for the duration of a test.
func setClock(t *testing.T, c clockwork.Clock) {
	t.Helper()
	prev := clock
	clock = c
	t.Cleanup(func() { clock = prev })
}

func TestNowVariantsReadTheClock(t *testing.T) {
	setLocal(t, time.UTC)
	setClock(t, clockwork.NewFakeClockAt(time.Date(2024, 1, 5, 3, 4, 5, 6_000_000, time.UTC)))

	assert.Equal(t, "2024-01-05", DateNow())
	assert.Equal(t, "2024-01-05T03:04:05", DateTimeNow())
	assert.Equal(t, "2024-01-05T03:04:05.006", DateTimestampNow())
	assert.Equal(t, "2024-01-05", UTCDateNow())
	assert.Equal(t, "2024-01-05T03:04:05Z", UTCDateTimeNow())
	assert.Equal(t, "2024-01-05T03:04:05.006Z", UTCDateTimestampNow())
}

func TestNowVariantsObserveClockAdvance(t *testing.T) {
	setLocal(t, time.UTC)
	fake := clockwork.NewFakeClockAt(time.Date(2024, 1, 5, 3, 4, 5, 0, time.UTC))
	setClock(t, fake)

	assert.Equal(t, "2024-01-05T03:04:05.000Z", UTCDateTimestampNow())

	fake.Advance(1500 * time.Millisecond)
	assert.Equal(t, "2024-01-05T03:04:06.500Z", UTCDateTimestampNow())
}

// With the real clock, successive reads must not go backwards. The layouts
// order lexicographically, so string comparison is enough.
func TestNowVariantsAreMonotonic(t *testing.T) {
	first := UTCDateTimestampNow()
	second := UTCDateTimestampNow()

	assert.LessOrEqual(t, first, second)
}
