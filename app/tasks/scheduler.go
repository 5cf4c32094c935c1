package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler runs the poll task on a fixed interval from a single
// goroutine, so cycles never overlap. The first cycle starts
// immediately on Start. Stop suppresses future cycles; an in-flight
// cycle runs to completion (each fetch carries its own timeout).
type Scheduler struct {
	task     *PollFeedsTask
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewScheduler(task *PollFeedsTask, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		task:     task,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.run()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.run()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) run() {
	if err := s.task.Execute(context.Background()); err != nil {
		slog.Error("Poll cycle aborted", "error", err)
	}
}
