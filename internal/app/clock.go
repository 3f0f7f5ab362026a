package app

import "time"

// clockOrDefault returns now, falling back to the wall clock
func clockOrDefault(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
