package shared

import "time"

// Clock provides the current time so session timestamps and quota windows can
// be driven from tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
