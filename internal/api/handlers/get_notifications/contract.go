package get_notifications

import "github.com/roombooker/booking-service/internal/notify"

type NotificationSource interface {
	Active() []notify.Notification
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
