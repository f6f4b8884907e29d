package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/views"

	"github.com/go-chi/chi"
)

func depositInfoHandler(depositStr core.IDepositStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		position, err := depositStr.Find(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if position.ID == 0 {
			render.OpError(w, core.ErrDepositNotFound)
			return
		}

		render.JSON(w, views.NewDeposit(position))
	}
}

func depositHandler(depositSrv core.IDepositService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Account   string `json:"account" valid:"required"`
			PoolID    string `json:"pool_id" valid:"required"`
			AssetType string `json:"asset_type" valid:"required"`
			Amount    uint64 `json:"amount"`
			Timestamp int64  `json:"timestamp"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		position, err := depositSrv.Deposit(
			r.Context(),
			params.Account,
			params.PoolID,
			core.Asset{AssetType: params.AssetType, Amount: params.Amount},
			opTimestamp(params.Timestamp),
		)
		if err != nil {
			render.OpError(w, err)
			return
		}

		render.JSON(w, views.NewDeposit(position))
	}
}

func withdrawHandler(depositSrv core.IDepositService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Account   string `json:"account" valid:"required"`
			PoolID    string `json:"pool_id" valid:"required"`
			Amount    uint64 `json:"amount"`
			Timestamp int64  `json:"timestamp"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		position, err := depositSrv.Withdraw(
			r.Context(),
			params.Account,
			params.PoolID,
			params.Amount,
			opTimestamp(params.Timestamp),
		)
		if err != nil {
			render.OpError(w, err)
			return
		}

		if position == nil {
			// fully withdrawn, the position is gone
			render.JSON(w, render.H{"closed": true})
			return
		}

		render.JSON(w, views.NewDeposit(position))
	}
}
