package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/views"
)

func liquidateHandler(liquidationSrv core.ILiquidationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Liquidator string `json:"liquidator" valid:"required"`
			Borrower   string `json:"borrower" valid:"required"`
			PoolID     string `json:"pool_id" valid:"required"`
			AssetType  string `json:"asset_type" valid:"required"`
			Amount     uint64 `json:"amount"`
			Timestamp  int64  `json:"timestamp"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		position, err := liquidationSrv.Liquidate(
			r.Context(),
			params.Liquidator,
			params.Borrower,
			params.PoolID,
			core.Asset{AssetType: params.AssetType, Amount: params.Amount},
			opTimestamp(params.Timestamp),
		)
		if err != nil {
			render.OpError(w, err)
			return
		}

		if position == nil {
			render.JSON(w, render.H{"closed": true})
			return
		}

		render.JSON(w, views.NewBorrow(position))
	}
}
