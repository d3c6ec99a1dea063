// File: session.go
// Role: Session construction and the shared helpers every operation uses.
// Concurrency:
//   - graph, feed, stack and queue serialize their own writers.
//   - idxMu guards the user index and the email table.

package socialverse

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialverse/feed"
	"github.com/katalvlaran/socialverse/graph"
	"github.com/katalvlaran/socialverse/queue"
	"github.com/katalvlaran/socialverse/stack"
	"github.com/katalvlaran/socialverse/userindex"
)

// Session is one social network: friendship history, posts, activity log,
// notifications and the ordered user index.
type Session struct {
	cfg     Config
	log     *zap.Logger
	metrics *Metrics
	now     func() time.Time

	graph         *graph.History
	posts         *feed.List[string]
	activities    *stack.Stack[Activity]
	notifications *queue.Queue[Notification]

	idxMu  sync.RWMutex
	index  *userindex.Index
	emails map[string]string
}

// New validates cfg and returns an empty Session.
//
// Errors:
//   - ErrInvalidConfig if cfg fails validation.
//   - the registerer's error if a metric cannot be registered.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m, err := NewMetrics(cfg.MetricsNamespace, o.registerer)
	if err != nil {
		return nil, fmt.Errorf("socialverse: register metrics: %w", err)
	}

	return &Session{
		cfg:           cfg,
		log:           o.logger,
		metrics:       m,
		now:           o.now,
		graph:         graph.NewHistory(),
		posts:         feed.New[string](),
		activities:    stack.New[Activity](),
		notifications: queue.New[Notification](),
		index:         userindex.New(),
		emails:        make(map[string]string),
	}, nil
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Metrics returns the session's collectors.
func (s *Session) Metrics() *Metrics { return s.metrics }

// published records one new version of structure.
func (s *Session) published(structure, op string, version int, fields ...zap.Field) {
	s.metrics.VersionsCreated.WithLabelValues(structure).Inc()
	s.log.Debug(op,
		append([]zap.Field{zap.String("structure", structure), zap.Int("version", version)}, fields...)...)
}

// empty records an operation that found nothing to act on.
func (s *Session) empty(structure, op string) {
	s.metrics.EmptyOperations.WithLabelValues(structure, op).Inc()
	s.log.Debug(op+": nothing to do", zap.String("structure", structure))
}

// violation records a rejected operation and returns err unchanged.
func (s *Session) violation(op string, err error) error {
	s.metrics.ContractViolations.WithLabelValues(op).Inc()
	s.log.Warn(op+" rejected", zap.Error(err))

	return err
}

// record pushes an automatic activity when RecordActivity is enabled.
func (s *Session) record(typ, user, details string) {
	if !s.cfg.RecordActivity {
		return
	}
	s.LogActivity(typ, user, details)
}
