package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Cron schedules tasks on a shared gocron scheduler.
type Cron struct {
	scheduler *gocron.Scheduler
}

// NewCron starts an async gocron scheduler in UTC. Jobs wait one full
// interval before their first run.
func NewCron() *Cron {
	s := gocron.NewScheduler(time.UTC)
	s.WaitForScheduleAll()
	s.SingletonModeAll()
	s.StartAsync()
	return &Cron{scheduler: s}
}

func (c *Cron) Schedule(interval time.Duration, task func()) (func(), error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	if task == nil {
		return nil, fmt.Errorf("task is nil")
	}

	var (
		mu      sync.Mutex
		stopped bool
	)
	guarded := func() {
		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			task()
		}
	}

	job, err := c.scheduler.Every(interval).Do(guarded)
	if err != nil {
		return nil, fmt.Errorf("schedule job: %w", err)
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			c.scheduler.RemoveByReference(job)
		})
	}
	return cancel, nil
}

// Stop halts the underlying scheduler and every job on it.
func (c *Cron) Stop() {
	c.scheduler.Stop()
}
