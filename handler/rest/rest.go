package rest

import (
	"errors"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	poolStore core.IPoolStore,
	depositStore core.IDepositStore,
	borrowStore core.IBorrowStore,
	poolService core.IPoolService,
	depositService core.IDepositService,
	borrowService core.IBorrowService,
	liquidationService core.ILiquidationService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pools", allPoolsHandler(poolStore, depositStore, borrowStore))
	router.Get("/pools/{pool_id}", poolHandler(poolStore, depositStore, borrowStore))
	router.Get("/accounts/{user_id}/deposit", depositInfoHandler(depositStore))
	router.Get("/accounts/{user_id}/borrow", borrowInfoHandler(borrowStore))

	router.Post("/pools", createPoolHandler(poolService))
	router.Post("/deposits", depositHandler(depositService))
	router.Post("/withdraws", withdrawHandler(depositService))
	router.Post("/borrows", borrowHandler(borrowService))
	router.Post("/repays", repayHandler(borrowService))
	router.Post("/liquidations", liquidateHandler(liquidationService))

	return router
}
