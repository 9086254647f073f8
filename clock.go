package isodatetime

import (
	"github.com/jonboulle/clockwork"
)

// clock supplies the current time for the ...Now functions. Each of those
// functions reads it exactly once per call. Tests substitute a fake clock
// to pin the instant.
var clock clockwork.Clock = clockwork.NewRealClock()
