package clock

import "time"

// System is the wall clock. Services take it through their Clock contract so
// tests can pin time.
type System struct{}

func New() *System {
	return &System{}
}

func (*System) Now() time.Time {
	return time.Now().UTC()
}
