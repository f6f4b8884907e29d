package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Worker long running worker
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs a handler repeatedly with a fixed delay between rounds.
// Handler errors end the round early, the next tick retries.
type TickWorker struct {
	Delay time.Duration
}

// StartTick tick until ctx is done
func (w *TickWorker) StartTick(ctx context.Context, onTick func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = time.Second
	}

	for {
		_ = onTick(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// IJob job interface
type IJob interface {
	Start() error
	Run()
	Stop() error
}

type OnWork func() error

// BaseJob cron job base
type BaseJob struct {
	Cron      *cron.Cron
	IsRunning bool
	OnWork    OnWork
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	job.Cron.Stop()
	return nil
}

func (job *BaseJob) Run() {
	if job.IsRunning {
		return
	}

	job.IsRunning = true

	job.OnWork()

	job.IsRunning = false
}
