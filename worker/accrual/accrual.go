package accrual

import (
	"context"
	"time"

	"lever/core"
	"lever/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker periodically folds elapsed borrow interest into the reward
// accumulator so read views stay close to current even when no user
// operation has touched the market for a while.
type Worker struct {
	worker.BaseJob
	Config        *core.Config
	MarketService core.IMarketService
}

// New new accrual worker
func New(cfg *core.Config, marketService core.IMarketService) *Worker {
	job := Worker{
		Config:        cfg,
		MarketService: marketService,
	}

	l, _ := time.LoadLocation(job.Config.App.Location)
	job.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 10s"
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "accrual")

	if err := w.MarketService.Accrue(ctx); err != nil {
		log.Errorln(err)
		return err
	}

	return nil
}
