// Package scheduler runs callbacks at a fixed period. Both implementations
// return a cancel function; once it returns no further run will start and
// any run in progress has finished.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Ticker schedules each task on its own goroutine driven by time.Ticker.
type Ticker struct{}

func NewTicker() *Ticker {
	return &Ticker{}
}

type tickerJob struct {
	mu      sync.Mutex
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

// Schedule runs task every interval, first after one full interval.
// The cancel function must not be called from inside task.
func (t *Ticker) Schedule(interval time.Duration, task func()) (func(), error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	if task == nil {
		return nil, fmt.Errorf("task is nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := &tickerJob{cancel: cancel, done: make(chan struct{})}

	go job.run(ctx, interval, task)

	return job.stop, nil
}

func (j *tickerJob) run(ctx context.Context, interval time.Duration, task func()) {
	defer close(j.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.mu.Lock()
			if !j.stopped {
				task()
			}
			j.mu.Unlock()
		}
	}
}

func (j *tickerJob) stop() {
	j.once.Do(func() {
		j.mu.Lock()
		j.stopped = true
		j.mu.Unlock()
		j.cancel()
		<-j.done
	})
}
