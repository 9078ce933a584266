package core

import "time"

// TimeProvider abstracts the clock so transfer timestamps can be fixed in
// tests and backdated through the API override.
type TimeProvider interface {
	Now() time.Time
}
