package wallet

import (
	"context"
	"sync"

	"lendpool/core"

	"github.com/fox-one/pkg/logger"
)

type walletService struct {
	mux      sync.Mutex
	balances map[string]map[string]uint64
}

// New new wallet service backed by an in-process balance book. Payouts are
// credited to the opponent account and can be read back with Balance.
func New() *walletService {
	return &walletService{
		balances: make(map[string]map[string]uint64),
	}
}

func (s *walletService) Transfer(ctx context.Context, transfer *core.Transfer) error {
	log := logger.FromContext(ctx).WithField("service", "wallet")

	s.mux.Lock()
	defer s.mux.Unlock()

	book, ok := s.balances[transfer.Opponent]
	if !ok {
		book = make(map[string]uint64)
		s.balances[transfer.Opponent] = book
	}

	book[transfer.AssetType] += transfer.Amount

	log.WithFields(map[string]interface{}{
		"trace":    transfer.TraceID,
		"opponent": transfer.Opponent,
		"asset":    transfer.AssetType,
		"amount":   transfer.Amount,
		"action":   transfer.Action,
	}).Infoln("transfer paid")

	return nil
}

// Balance reports the credited amount of an asset for an account.
func (s *walletService) Balance(account, assetType string) uint64 {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.balances[account][assetType]
}
