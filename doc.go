// Package isodatetime formats instants as fixed-shape ISO 8601 strings.
//
// It provides six output shapes, local and UTC variants of date, date-time
// and millisecond date-timestamp, each callable with an explicit instant or
// with the current time:
//
//	isodatetime.UTCDateTimestamp(t) // "2024-01-05T03:04:05.006Z"
//	isodatetime.DateNow()           // "2024-01-05"
//
// All functions are free functions with no instance state and are safe for
// concurrent use. The output format is fixed: parsing, calendar arithmetic
// and zone lookups beyond the local/UTC distinction are out of scope.
package isodatetime
