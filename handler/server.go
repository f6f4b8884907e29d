package handler

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/rest"

	"github.com/go-chi/chi"
)

// Server server
type Server struct {
	cfg *core.Config

	pools    core.IPoolStore
	deposits core.IDepositStore
	borrows  core.IBorrowStore

	poolService        core.IPoolService
	depositService     core.IDepositService
	borrowService      core.IBorrowService
	liquidationService core.ILiquidationService
}

// New new server
func New(
	cfg *core.Config,
	pools core.IPoolStore,
	deposits core.IDepositStore,
	borrows core.IBorrowStore,
	poolService core.IPoolService,
	depositService core.IDepositService,
	borrowService core.IBorrowService,
	liquidationService core.ILiquidationService,
) Server {
	return Server{
		cfg:                cfg,
		pools:              pools,
		deposits:           deposits,
		borrows:            borrows,
		poolService:        poolService,
		depositService:     depositService,
		borrowService:      borrowService,
		liquidationService: liquidationService,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(resetRoutePath)

	r.Mount("/", rest.Handle(
		s.pools,
		s.deposits,
		s.borrows,
		s.poolService,
		s.depositService,
		s.borrowService,
		s.liquidationService,
	))

	return r
}

func resetRoutePath(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if c := chi.RouteContext(ctx); c != nil {
			c.RoutePath = r.URL.Path
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
