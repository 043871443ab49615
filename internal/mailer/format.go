package mailer

import "time"

// Long-form display formats used in message bodies.
const (
	displayDateFormat = "Monday, January 2, 2006"
	displayTimeFormat = "03:04 PM"
)

func formatDate(t time.Time) string {
	return t.Format(displayDateFormat)
}

func formatTime(t time.Time) string {
	return t.Format(displayTimeFormat)
}
