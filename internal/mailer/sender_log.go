package mailer

import "context"

// LogSender writes simulated emails to the service log instead of
// delivering them. The default sender for local and demo setups.
type LogSender struct {
	logger Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message and always succeeds.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("--- SIMULATED EMAIL ---\nTo: %s\nSubject: %s\n%s\n-----------------------",
		msg.To, msg.Subject, msg.Body)
	return nil
}
