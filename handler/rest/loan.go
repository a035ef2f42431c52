package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/handler/views"
	engine "lever/internal/market"
)

func loanHandler(loanStr core.ILoanStore, priceStr core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			LoanID string `json:"loan_id"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		loan, err := loanStr.Find(ctx, params.LoanID)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		if loan == nil {
			render.NotFoundRequest(w, core.ErrLoanNotFound)
			return
		}

		render.JSON(w, loanView(ctx, loan, priceStr))
	}
}

func userLoansHandler(loanStr core.ILoanStore, priceStr core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			User string `json:"user"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if params.User == "" {
			render.BadRequest(w, errors.New("user required"))
			return
		}

		loans, err := loanStr.FindByUser(ctx, params.User)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		loanViews := make([]*views.Loan, 0, len(loans))
		for _, loan := range loans {
			loanViews = append(loanViews, loanView(ctx, loan, priceStr))
		}

		render.JSON(w, loanViews)
	}
}

func loanView(ctx context.Context, loan *core.Loan, priceStr core.IPriceStore) *views.Loan {
	view := &views.Loan{
		Loan:       *loan,
		CurrentDue: loan.Principal,
	}

	if loan.Status != core.LoanStatusActive {
		return view
	}

	view.CurrentDue = engine.RepaymentDue(loan.Principal, loan.InterestRate, time.Now().Unix()-loan.IssuedAt.Unix())

	if price, err := priceStr.Find(ctx, loan.PriceAssetID); err == nil {
		if eligible, err := engine.IsLiquidatable(loan, price.Price); err == nil {
			view.Liquidatable = eligible
		}
	}

	return view
}
