package handler

import (
	"net/http"

	"lever/core"
	"lever/handler/codes"
	"lever/handler/render"
	"lever/handler/rest"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	cfg       *core.Config
	markets   core.IMarketStore
	lenders   core.ILenderStore
	borrowers core.IBorrowerStore
	loans     core.ILoanStore
	prices    core.IPriceStore
	wallets   core.IWalletStore
	marketSrv core.IMarketService
}

// New new server function
func New(
	cfg *core.Config,
	markets core.IMarketStore,
	lenders core.ILenderStore,
	borrowers core.IBorrowerStore,
	loans core.ILoanStore,
	prices core.IPriceStore,
	wallets core.IWalletStore,
	marketSrv core.IMarketService,
) Server {
	return Server{
		cfg:       cfg,
		markets:   markets,
		lenders:   lenders,
		borrowers: borrowers,
		loans:     loans,
		prices:    prices,
		wallets:   wallets,
		marketSrv: marketSrv,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(resetRoutePath)
	r.Use(render.WrapResponse(true))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		twerr := twirp.NotFoundError("not found")
		render.Error(w, http.StatusNotFound, codes.Get(twerr.Code()), twerr)
	})

	r.Mount("/", rest.Handle(
		s.cfg,
		s.markets,
		s.lenders,
		s.borrowers,
		s.loans,
		s.prices,
		s.wallets,
		s.marketSrv,
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
