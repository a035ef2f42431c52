package rest

import (
	"net/http"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/handler/views"

	"github.com/shopspring/decimal"
)

type actionParams struct {
	UserID  string          `json:"user_id"`
	AssetID string          `json:"asset_id"`
	LoanID  string          `json:"loan_id"`
	Amount  decimal.Decimal `json:"amount"`
}

func renderActionError(w http.ResponseWriter, err error) {
	render.Error(w, http.StatusBadRequest, int(core.CodeOf(err)), err)
}

func depositHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := marketSrv.Deposit(r.Context(), params.UserID, params.Amount); err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func redeemHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := marketSrv.Redeem(r.Context(), params.UserID, params.Amount); err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func claimHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		claimed, err := marketSrv.ClaimRewards(r.Context(), params.UserID)
		if err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, render.H{"claimed": claimed})
	}
}

func depositCollateralHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := marketSrv.DepositCollateral(r.Context(), params.UserID, params.AssetID, params.Amount); err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func withdrawCollateralHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := marketSrv.WithdrawCollateral(r.Context(), params.UserID, params.AssetID, params.Amount); err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func openLoanHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		loan, err := marketSrv.OpenLoan(r.Context(), params.UserID, params.AssetID, params.Amount)
		if err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, loan)
	}
}

func repayLoanHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := marketSrv.RepayLoan(r.Context(), params.UserID, params.LoanID, params.Amount); err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func liquidateLoanHandler(marketSrv core.IMarketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params actionParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := marketSrv.LiquidateLoan(r.Context(), params.UserID, params.LoanID); err != nil {
			renderActionError(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}
