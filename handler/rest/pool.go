package rest

import (
	"context"
	"net/http"
	"time"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/views"

	"github.com/go-chi/chi"
)

func allPoolsHandler(poolStr core.IPoolStore, depositStr core.IDepositStore, borrowStr core.IBorrowStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pools, err := poolStr.All(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		poolViews := make([]*views.Pool, 0, len(pools))
		for _, pool := range pools {
			poolViews = append(poolViews, getPoolView(ctx, pool, depositStr, borrowStr))
		}

		render.JSON(w, poolViews)
	}
}

func poolHandler(poolStr core.IPoolStore, depositStr core.IDepositStore, borrowStr core.IBorrowStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pool, err := poolStr.Find(ctx, chi.URLParam(r, "pool_id"))
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if pool.ID == 0 {
			render.OpError(w, core.ErrPoolNotFound)
			return
		}

		render.JSON(w, getPoolView(ctx, pool, depositStr, borrowStr))
	}
}

func getPoolView(ctx context.Context, pool *core.Pool, depositStr core.IDepositStore, borrowStr core.IBorrowStore) *views.Pool {
	suppliers, err := depositStr.CountByPool(ctx, pool.PoolID)
	if err != nil {
		suppliers = 0
	}

	borrowers, err := borrowStr.CountByPool(ctx, pool.PoolID)
	if err != nil {
		borrowers = 0
	}

	return views.NewPool(pool, suppliers, borrowers)
}

func createPoolHandler(poolSrv core.IPoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Admin              string `json:"admin" valid:"required"`
			PoolID             string `json:"pool_id" valid:"required"`
			AssetType          string `json:"asset_type" valid:"required"`
			Amount             uint64 `json:"amount"`
			CollateralRatioPct uint64 `json:"collateral_ratio_pct"`
			Timestamp          int64  `json:"timestamp"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		pool, err := poolSrv.Create(
			r.Context(),
			params.Admin,
			params.PoolID,
			core.Asset{AssetType: params.AssetType, Amount: params.Amount},
			params.CollateralRatioPct,
			opTimestamp(params.Timestamp),
		)
		if err != nil {
			render.OpError(w, err)
			return
		}

		render.JSON(w, pool)
	}
}

// opTimestamp callers submit their own timestamp, absent one the ledger
// stamps the operation with the current time
func opTimestamp(timestamp int64) int64 {
	if timestamp > 0 {
		return timestamp
	}

	return time.Now().Unix()
}
