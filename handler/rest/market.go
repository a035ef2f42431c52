package rest

import (
	"net/http"
	"time"

	"lever/core"
	"lever/handler/render"
	"lever/handler/views"

	"github.com/bluele/gcache"
	"github.com/jinzhu/gorm"
)

const marketViewKey = "market_view"

func marketHandler(cfg *core.Config, marketStr core.IMarketStore, loanStr core.ILoanStore, walletStr core.IWalletStore) http.HandlerFunc {
	cache := gcache.New(8).LRU().Build()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if v, err := cache.Get(marketViewKey); err == nil {
			render.JSON(w, v)
			return
		}

		market, err := marketStr.Find(ctx)
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				render.Error(w, http.StatusNotFound, int(core.CodeNotConfigured), core.ErrNotConfigured)
				return
			}
			render.BadRequest(w, err)
			return
		}

		pool, err := walletStr.Find(ctx, cfg.Market.PoolAccount, market.StableAssetID)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		active, err := loanStr.CountByStatus(ctx, core.LoanStatusActive)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		repaid, err := loanStr.CountByStatus(ctx, core.LoanStatusRepaid)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		liquidated, err := loanStr.CountByStatus(ctx, core.LoanStatusLiquidated)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		view := &views.Market{
			Market:          *market,
			PoolBalance:     pool.Balance,
			ActiveLoans:     active,
			RepaidLoans:     repaid,
			LiquidatedLoans: liquidated,
		}

		_ = cache.SetWithExpire(marketViewKey, view, 5*time.Second)
		render.JSON(w, view)
	}
}
