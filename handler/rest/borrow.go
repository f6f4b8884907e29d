package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/views"

	"github.com/go-chi/chi"
)

func borrowInfoHandler(borrowStr core.IBorrowStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		position, err := borrowStr.Find(r.Context(), chi.URLParam(r, "user_id"))
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if position.ID == 0 {
			render.OpError(w, core.ErrBorrowNotFound)
			return
		}

		render.JSON(w, views.NewBorrow(position))
	}
}

func borrowHandler(borrowSrv core.IBorrowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Account             string `json:"account" valid:"required"`
			PoolID              string `json:"pool_id" valid:"required"`
			BorrowAmount        uint64 `json:"borrow_amount"`
			CollateralAssetType string `json:"collateral_asset_type" valid:"required"`
			CollateralAmount    uint64 `json:"collateral_amount"`
			Timestamp           int64  `json:"timestamp"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		position, err := borrowSrv.Borrow(
			r.Context(),
			params.Account,
			params.PoolID,
			params.BorrowAmount,
			core.Asset{AssetType: params.CollateralAssetType, Amount: params.CollateralAmount},
			opTimestamp(params.Timestamp),
		)
		if err != nil {
			render.OpError(w, err)
			return
		}

		render.JSON(w, views.NewBorrow(position))
	}
}

func repayHandler(borrowSrv core.IBorrowService) http.HandlerFunc {
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

		position, err := borrowSrv.Repay(
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

		if position == nil {
			render.JSON(w, render.H{"closed": true})
			return
		}

		render.JSON(w, views.NewBorrow(position))
	}
}
