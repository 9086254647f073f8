package isodatetime

import (
	"time"
)

// Layouts for the six output shapes. All fields are zero-padded; the .000
// field renders the epoch-millisecond remainder mod 1000, so an instant on
// an exact second boundary renders ".000" rather than dropping the field.
const (
	dateLayout             = "2006-01-02"
	dateTimeLayout         = "2006-01-02T15:04:05"
	dateTimestampLayout    = "2006-01-02T15:04:05.000"
	utcDateTimeLayout      = "2006-01-02T15:04:05Z"
	utcDateTimestampLayout = "2006-01-02T15:04:05.000Z"
)

// Date formats t as an ISO8601 date (YYYY-MM-DD) in the local time zone.
func Date(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// DateTime formats t as an ISO8601 date and time (YYYY-MM-DDTHH:MM:SS)
// in the local time zone.
func DateTime(t time.Time) string {
	return t.Local().Format(dateTimeLayout)
}

// DateTimestamp formats t as an ISO8601 date and time with milliseconds
// (YYYY-MM-DDTHH:MM:SS.mmm) in the local time zone.
func DateTimestamp(t time.Time) string {
	return t.Local().Format(dateTimestampLayout)
}

// UTCDate formats t as an ISO8601 date (YYYY-MM-DD) in UTC.
func UTCDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// UTCDateTime formats t as an ISO8601 date and time in UTC with a literal
// Z suffix (YYYY-MM-DDTHH:MM:SSZ).
func UTCDateTime(t time.Time) string {
	return t.UTC().Format(utcDateTimeLayout)
}

// UTCDateTimestamp formats t as an ISO8601 date and time with milliseconds
// in UTC with a literal Z suffix (YYYY-MM-DDTHH:MM:SS.mmmZ).
func UTCDateTimestamp(t time.Time) string {
	return t.UTC().Format(utcDateTimestampLayout)
}

// DateNow returns the current time as an ISO8601 date in the local time zone.
func DateNow() string {
	return Date(clock.Now())
}

// DateTimeNow returns the current time as an ISO8601 date and time in the
// local time zone.
func DateTimeNow() string {
	return DateTime(clock.Now())
}

// DateTimestampNow returns the current time as an ISO8601 date and time
// with milliseconds in the local time zone.
func DateTimestampNow() string {
	return DateTimestamp(clock.Now())
}

// UTCDateNow returns the current time as an ISO8601 date in UTC.
func UTCDateNow() string {
	return UTCDate(clock.Now())
}

// UTCDateTimeNow returns the current time as an ISO8601 date and time in UTC.
func UTCDateTimeNow() string {
	return UTCDateTime(clock.Now())
}

// UTCDateTimestampNow returns the current time as an ISO8601 date and time
// with milliseconds in UTC.
func UTCDateTimestampNow() string {
	return UTCDateTimestamp(clock.Now())
}
