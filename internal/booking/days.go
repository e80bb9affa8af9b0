package booking

import "time"

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return realClock{} }

// Day is a bookable calendar date with its display weekday.
type Day struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// UpcomingDays returns n consecutive days starting at the clock's current
// date, each with its abbreviated weekday name.
func UpcomingDays(clock Clock, n int) []Day {
	today := clock.Now()
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		d := today.AddDate(0, 0, i)
		days = append(days, Day{
			Date:    d.Format(dateLayout),
			Weekday: d.Format("Mon"),
		})
	}
	return days
}
