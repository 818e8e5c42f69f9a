package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "backoffice/internal/domain/tracking"
	"backoffice/pkg/logger"
)

var (
	ErrAlreadyRunning = errors.New("live tracking already running")
	ErrNotInitialized = errors.New("live tracking has no snapshot yet")
	ErrStartCancelled = errors.New("live tracking stopped while starting")
)

// LiveOrderSource supplies the initial live-order snapshot.
type LiveOrderSource interface {
	FetchLiveOrders(ctx context.Context) ([]domain.LiveOrder, error)
}

// Scheduler runs task every interval until the returned cancel is called.
type Scheduler interface {
	Schedule(interval time.Duration, task func()) (cancel func(), err error)
}

// Recorder observes status transitions.
type Recorder interface {
	ObserveTransition(from, to string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveTransition(string, string) {}

// Service owns the live-order projection for one session: it polls the
// source once, then advances the projection on every scheduled tick.
type Service struct {
	source    LiveOrderSource
	scheduler Scheduler
	rnd       domain.RandomSource
	interval  time.Duration
	recorder  Recorder
	log       logger.Logger

	mu      sync.Mutex
	orders  []domain.LiveOrder
	loaded  bool
	running bool
	cancel  func()
	ticks   int
	// bumped by every Start and Stop so a slow Start can tell it was superseded
	gen uint64
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func NewService(
	source LiveOrderSource,
	scheduler Scheduler,
	rnd domain.RandomSource,
	interval time.Duration,
	log logger.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		source:    source,
		scheduler: scheduler,
		rnd:       rnd,
		interval:  interval,
		recorder:  nopRecorder{},
		log:       log.WithFields(logger.String("component", "live_tracking")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize replaces the projection with a fresh snapshot from the source.
func (s *Service) Initialize(ctx context.Context) error {
	orders, err := s.source.FetchLiveOrders(ctx)
	if err != nil {
		return fmt.Errorf("fetch live orders: %w", err)
	}

	s.mu.Lock()
	s.orders = orders
	s.loaded = true
	s.mu.Unlock()

	s.log.Info("live orders loaded", logger.Int("count", len(orders)))
	return nil
}

// Start loads the snapshot on first use and then schedules ticks, so the
// first tick always sees the fetched data. A restart after Stop keeps the
// existing projection.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.gen++
	gen := s.gen
	loaded := s.loaded
	s.mu.Unlock()

	if !loaded {
		if err := s.Initialize(ctx); err != nil {
			s.setStopped(gen)
			return err
		}
	}

	cancel, err := s.scheduler.Schedule(s.interval, s.tick)
	if err != nil {
		s.setStopped(gen)
		return fmt.Errorf("schedule tick: %w", err)
	}

	s.mu.Lock()
	if !s.running || s.gen != gen {
		s.mu.Unlock()
		cancel()
		s.log.Info("live tracking start cancelled")
		return ErrStartCancelled
	}
	s.cancel = cancel
	s.mu.Unlock()

	s.log.Info("live tracking started", logger.Duration("interval", s.interval))
	return nil
}

// Stop cancels the recurring tick. It is safe to call more than once, and a
// Start still in flight observes it and cancels its own schedule.
func (s *Service) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	wasRunning := s.running
	s.cancel = nil
	s.running = false
	s.gen++
	s.mu.Unlock()

	// cancel waits for an in-flight tick, which needs s.mu
	if cancel != nil {
		cancel()
	}
	if wasRunning {
		s.log.Info("live tracking stopped")
	}
}

func (s *Service) setStopped(gen uint64) {
	s.mu.Lock()
	if s.gen == gen {
		s.running = false
	}
	s.mu.Unlock()
}

// Tick advances the projection once. It is what the scheduler calls and is
// exported for manual stepping.
func (s *Service) Tick() ([]domain.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotInitialized
	}
	return s.advanceLocked(), nil
}

func (s *Service) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a tick that raced with Stop must not touch state
	if !s.running || !s.loaded {
		return
	}
	s.advanceLocked()
}

func (s *Service) advanceLocked() []domain.Transition {
	next, changes := domain.Advance(s.orders, s.rnd)
	s.orders = next
	s.ticks++

	for _, c := range changes {
		s.recorder.ObserveTransition(string(c.From), string(c.To))
		s.log.Info("live order advanced",
			logger.String("order_id", c.OrderID),
			logger.String("from", string(c.From)),
			logger.String("to", string(c.To)),
		)
	}
	s.log.Debug("tick applied", logger.Int("tick", s.ticks), logger.Int("changes", len(changes)))
	return changes
}

// Snapshot returns a copy of the current projection.
func (s *Service) Snapshot() []domain.LiveOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LiveOrder, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Service) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}
