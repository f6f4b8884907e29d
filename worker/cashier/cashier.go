package cashier

import (
	"context"
	"errors"

	"lendpool/core"
	"lendpool/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Cashier pays out staged transfers
//
// operations only stage transfers inside their own transaction; the cashier
// is the single writer that releases custody through the wallet service.
type Cashier struct {
	worker.TickWorker
	db            core.Transactor
	transfers     core.ITransferStore
	walletService core.IWalletService
	cfg           Config
}

type Config struct {
	Batch    int   `json:"batch" valid:"required"`
	Capacity int64 `json:"capacity" valid:"required"`
}

// New new cashier
func New(
	database core.Transactor,
	transfers core.ITransferStore,
	walletService core.IWalletService,
	cfg Config,
) *Cashier {
	cashier := Cashier{
		db:            database,
		transfers:     transfers,
		walletService: walletService,
		cfg:           cfg,
	}

	return &cashier
}

// Run run worker
func (w *Cashier) Run(ctx context.Context) error {
	f := w.sync
	if w.cfg.Capacity > 1 {
		f = w.parallel(w.cfg.Capacity)
	}

	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx, f)
	})
}

func (w *Cashier) onWork(ctx context.Context, f func(context.Context, []*core.Transfer) error) error {
	log := logger.FromContext(ctx).WithField("worker", "cashier")

	transfers, err := w.transfers.Top(ctx, core.TransferStatusPending, w.cfg.Batch)
	if err != nil {
		log.WithError(err).Errorln("list transfers")
		return err
	}

	if len(transfers) == 0 {
		return errors.New("EOF")
	}

	return f(ctx, transfers)
}

func (w *Cashier) sync(ctx context.Context, transfers []*core.Transfer) error {
	for _, transfer := range transfers {
		if err := w.handleTransfer(ctx, transfer); err != nil {
			return err
		}
	}

	return nil
}

func (w *Cashier) parallel(capacity int64) func(ctx context.Context, transfers []*core.Transfer) error {
	sem := semaphore.NewWeighted(capacity)

	return func(ctx context.Context, transfers []*core.Transfer) error {
		g := errgroup.Group{}

		for idx := range transfers {
			transfer := transfers[idx]

			if err := sem.Acquire(ctx, 1); err != nil {
				return g.Wait()
			}

			g.Go(func() error {
				defer sem.Release(1)
				return w.handleTransfer(ctx, transfer)
			})
		}

		return g.Wait()
	}
}

func (w *Cashier) handleTransfer(ctx context.Context, transfer *core.Transfer) error {
	log := logger.FromContext(ctx)

	if err := w.walletService.Transfer(ctx, transfer); err != nil {
		log.WithError(err).Errorln("wallets.Transfer")
		return err
	}

	// the wallet side is idempotent by trace id, marking handled after
	// the payout cannot double spend
	if err := w.db.Tx(func(tx *db.DB) error {
		return w.transfers.Handled(ctx, tx, transfer.ID)
	}); err != nil {
		log.WithError(err).Errorln("transfers.Handled")
		return err
	}

	return nil
}
