package rest

import (
	"errors"
	"net/http"

	"lever/core"
	"lever/handler/param"
	"lever/handler/render"
	"lever/handler/views"

	"github.com/jinzhu/gorm"
)

func accountHandler(marketStr core.IMarketStore, lenderStr core.ILenderStore, borrowerStr core.IBorrowerStore, walletStr core.IWalletStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID string `json:"user_id"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if params.UserID == "" {
			render.BadRequest(w, errors.New("user_id required"))
			return
		}

		lender, err := lenderStr.Find(ctx, params.UserID)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		collaterals, err := borrowerStr.CollateralsByUser(ctx, params.UserID)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		wallets, err := walletStr.FindByAccount(ctx, params.UserID)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		view := &views.Account{
			UserID:         params.UserID,
			PendingRewards: lender.PendingRewards,
			Collaterals:    collaterals,
			Wallets:        wallets,
		}

		if market, err := marketStr.Find(ctx); err == nil {
			share, err := walletStr.Find(ctx, params.UserID, market.ShareAssetID)
			if err != nil {
				render.BadRequest(w, err)
				return
			}
			view.Shares = share.Balance
		} else if !gorm.IsRecordNotFoundError(err) {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, view)
	}
}
