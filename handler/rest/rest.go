package rest

import (
	"errors"
	"net/http"

	"lever/core"
	"lever/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	cfg *core.Config,
	marketStr core.IMarketStore,
	lenderStr core.ILenderStore,
	borrowerStr core.IBorrowerStore,
	loanStr core.ILoanStore,
	priceStr core.IPriceStore,
	walletStr core.IWalletStore,
	marketSrv core.IMarketService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/market", marketHandler(cfg, marketStr, loanStr, walletStr))
	router.Get("/loans", userLoansHandler(loanStr, priceStr))
	router.Get("/loans/{loan_id}", loanHandler(loanStr, priceStr))
	router.Get("/accounts/{user_id}", accountHandler(marketStr, lenderStr, borrowerStr, walletStr))
	router.Get("/prices", pricesHandler(priceStr))

	router.Post("/deposit", depositHandler(marketSrv))
	router.Post("/redeem", redeemHandler(marketSrv))
	router.Post("/claim", claimHandler(marketSrv))
	router.Post("/collaterals/deposit", depositCollateralHandler(marketSrv))
	router.Post("/collaterals/withdraw", withdrawCollateralHandler(marketSrv))
	router.Post("/loans", openLoanHandler(marketSrv))
	router.Post("/loans/{loan_id}/repay", repayLoanHandler(marketSrv))
	router.Post("/loans/{loan_id}/liquidate", liquidateLoanHandler(marketSrv))

	return router
}
