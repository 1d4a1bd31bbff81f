package ledger

import "time"

// Clock supplies the current time. Budget utilization and trend reports
// depend on "now", so the ledger takes a Clock instead of reading the
// system time directly; tests substitute a fixed one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock Clock used outside of tests.
var SystemClock Clock = systemClock{}
