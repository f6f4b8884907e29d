package ratesnapshot

import (
	"context"
	"time"

	"lendpool/core"
	"lendpool/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker periodically logs pool rates and audits aggregate invariants.
type Worker struct {
	worker.BaseJob
	config   *core.Config
	pools    core.IPoolStore
	deposits core.IDepositStore
	borrows  core.IBorrowStore
}

// New new rate snapshot worker
func New(
	cfg *core.Config,
	pools core.IPoolStore,
	deposits core.IDepositStore,
	borrows core.IBorrowStore,
) *Worker {
	job := Worker{
		config:   cfg,
		pools:    pools,
		deposits: deposits,
		borrows:  borrows,
	}

	l, _ := time.LoadLocation(job.config.App.Location)
	job.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 1m"
	job.Cron.AddFunc(spec, job.BaseJob.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	<-ctx.Done()
	return ctx.Err()
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "ratesnapshot")

	pools, err := w.pools.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("pools.All")
		return err
	}

	for _, pool := range pools {
		suppliers, err := w.deposits.CountByPool(ctx, pool.PoolID)
		if err != nil {
			log.WithError(err).Errorln("deposits.CountByPool")
			return err
		}

		borrowers, err := w.borrows.CountByPool(ctx, pool.PoolID)
		if err != nil {
			log.WithError(err).Errorln("borrows.CountByPool")
			return err
		}

		entry := log.WithFields(map[string]interface{}{
			"pool":        pool.PoolID,
			"supplied":    pool.TotalSupplied,
			"borrowed":    pool.TotalBorrowed,
			"reserve":     pool.ReserveBalance,
			"utilization": pool.Utilization(),
			"borrow_bps":  pool.BorrowRateBps,
			"deposit_bps": pool.DepositRateBps,
			"suppliers":   suppliers,
			"borrowers":   borrowers,
		})

		if pool.TotalBorrowed > pool.TotalSupplied {
			entry.Errorln("pool borrowed more than supplied")
			continue
		}

		if pool.ReserveBalance < pool.Liquidity() {
			entry.Errorln("pool reserve below liquidity")
			continue
		}

		entry.Infoln("pool snapshot")
	}

	return nil
}
