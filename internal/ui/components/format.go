package components

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// EventDate renders a start time as date plus kitchen time,
// e.g. "Sat, Mar 14 at 9:00AM".
func EventDate(t time.Time) string {
	if t.IsZero() {
		return "date to be announced"
	}
	return t.Format("Mon, Jan 2") + " at " + t.Format(time.Kitchen)
}

// Relative renders "in 3 days" or "2 hours ago" against now.
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func Attendance(attendees, maxAttendees int) string {
	if maxAttendees > 0 {
		return fmt.Sprintf("%s attending (%s max)", humanize.Comma(int64(attendees)), humanize.Comma(int64(maxAttendees)))
	}
	return humanize.Comma(int64(attendees)) + " attending"
}

// OthersInterested matches the wording of the matches list.
func OthersInterested(n int) string {
	if n == 1 {
		return "1 other interested"
	}
	return humanize.Comma(int64(n)) + " others interested"
}

func Price(price float64) string {
	if price <= 0 {
		return "Free"
	}
	return "$" + humanize.CommafWithDigits(price, 2)
}

func Distance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m away", km*1000)
	}
	return humanize.FtoaWithDigits(km, 1) + " km away"
}
