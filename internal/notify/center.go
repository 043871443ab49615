// Package notify implements the fire-and-forget notification sink the
// booking operations report their outcomes to. Entries auto-dismiss
// after a fixed delay and are readable through the API feed until then.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is one outcome message with its dismiss deadline.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled logger the center reports through.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// Center keeps the active notifications. Notify never blocks on
// consumers and never fails; expired entries are pruned lazily.
type Center struct {
	mu           sync.Mutex
	items        []Notification
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// New creates a center whose notifications dismiss after ttl.
func New(ttl time.Duration, logger Logger) *Center {
	return &Center{
		ttl:          ttl,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// NewWithTimeProvider is New with an injected clock, for tests.
func NewWithTimeProvider(ttl time.Duration, logger Logger, tp TimeProvider) *Center {
	c := New(ttl, logger)
	c.timeProvider = tp
	return c
}

// Notify records one outcome message. Fire-and-forget: errors cannot
// occur and the caller never waits on delivery.
func (c *Center) Notify(message string, severity Severity) {
	now := c.timeProvider.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune(now)
	c.items = append(c.items, Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	})

	if severity == SeverityError {
		c.logger.Warn("notify: %s", message)
	} else {
		c.logger.Info("notify: %s", message)
	}
}

// Active returns the notifications that have not dismissed yet, oldest
// first.
func (c *Center) Active() []Notification {
	now := c.timeProvider.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune(now)
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// prune drops expired entries; callers hold the lock.
func (c *Center) prune(now time.Time) {
	kept := c.items[:0]
	for _, n := range c.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept
}
