package socialverse

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
	now        func() time.Time
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		logger:     zap.NewNop(),
		registerer: prometheus.NewRegistry(),
		now:        time.Now,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *sessionOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer sets where the session's metrics are registered.
// By default a private registry is used, so sessions never collide.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *sessionOptions) {
		if r != nil {
			o.registerer = r
		}
	}
}

// WithClock sets the time source for activity and notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *sessionOptions) {
		if now != nil {
			o.now = now
		}
	}
}
