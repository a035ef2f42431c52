package market

import (
	"context"
	"time"

	"lever/core"
	engine "lever/internal/market"
	assetstore "lever/store/asset"
	borrowerstore "lever/store/borrower"
	lenderstore "lever/store/lender"
	loanstore "lever/store/loan"
	marketstore "lever/store/market"
	pricestore "lever/store/price"
	walletstore "lever/store/wallet"

	oracleservice "lever/service/oracle"
	swapservice "lever/service/swap"
	walletservice "lever/service/wallet"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// Config static market accounts
type Config struct {
	PoolAccount      string
	TreasuryAccount  string
	SwapVenueAccount string
}

type marketService struct {
	db  *db.DB
	cfg Config
}

// New new market service.
//
// Every operation opens one database transaction, binds the token book,
// the share vault and the swap venue to it, runs the engine and persists
// the mutated rows. Any failure rolls the whole operation back.
func New(db *db.DB, cfg Config) core.IMarketService {
	return &marketService{db: db, cfg: cfg}
}

type session struct {
	tx        *db.DB
	cfg       Config
	markets   core.IMarketStore
	lenders   core.ILenderStore
	borrowers core.IBorrowerStore
	loans     core.ILoanStore
	assets    core.IAssetStore
	wallets   core.IWalletStore
	engine    *engine.Engine
	market    *core.Market
}

func (s *marketService) begin(ctx context.Context, tx *db.DB) (*session, error) {
	sess := &session{
		tx:        tx,
		cfg:       s.cfg,
		markets:   marketstore.New(tx),
		lenders:   lenderstore.New(tx),
		borrowers: borrowerstore.New(tx),
		loans:     loanstore.New(tx),
		assets:    assetstore.New(tx),
		// the wallet session keeps rows this transaction has written, so
		// a later transfer touching the same row observes the new balance
		wallets: walletstore.Session(walletstore.New(tx)),
	}

	m, err := sess.markets.Find(ctx)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrNotConfigured
		}
		return nil, err
	}
	sess.market = m

	sess.bind(tx)
	return sess, nil
}

// bind wires the engine and its collaborators over the session's stores.
func (sess *session) bind(tx *db.DB) {
	transfers := walletservice.Transfers(tx, sess.wallets)
	oracle := oracleservice.New(pricestore.New(tx))
	venue := swapservice.New(transfers, oracle, sess.assets, swapservice.Config{
		PoolAccount:  sess.cfg.PoolAccount,
		VenueAccount: sess.cfg.SwapVenueAccount,
	})

	sess.engine = engine.NewEngine(
		transfers,
		walletservice.Vault(tx, sess.wallets, sess.market.ShareAssetID),
		oracle,
		venue,
		engine.Config{
			PoolAccount:      sess.cfg.PoolAccount,
			TreasuryAccount:  sess.cfg.TreasuryAccount,
			SwapVenueAccount: sess.cfg.SwapVenueAccount,
		},
	)
}

func (sess *session) findAsset(ctx context.Context, assetID string) (*core.Asset, error) {
	asset, err := sess.assets.Find(ctx, assetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrInvalidParams
		}
		return nil, err
	}

	return asset, nil
}

// Accrue folds the interest accrued since the last update into the
// reward accumulator. Safe to run at any cadence; a market that does
// not exist yet is skipped.
func (s *marketService) Accrue(ctx context.Context) error {
	return s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			if err == core.ErrNotConfigured {
				return nil
			}
			return err
		}

		return sess.accrue(ctx, time.Now())
	})
}

func (sess *session) accrue(ctx context.Context, now time.Time) error {
	sess.engine.Accrue(sess.market, now)
	return sess.markets.Update(ctx, sess.tx, sess.market)
}

func (s *marketService) Deposit(ctx context.Context, userID string, amount decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		return sess.deposit(ctx, userID, amount, time.Now())
	})
}

func (sess *session) deposit(ctx context.Context, userID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx).WithField("operation", "deposit")

	lender, err := sess.lenders.Find(ctx, userID)
	if err != nil {
		return err
	}

	if err := sess.engine.Deposit(ctx, sess.market, lender, amount, now); err != nil {
		log.WithError(err).Errorln("deposit failed")
		return err
	}

	if err := sess.lenders.Save(ctx, sess.tx, lender); err != nil {
		return err
	}

	return sess.markets.Update(ctx, sess.tx, sess.market)
}

func (s *marketService) Redeem(ctx context.Context, userID string, shares decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		return sess.redeem(ctx, userID, shares, time.Now())
	})
}

func (sess *session) redeem(ctx context.Context, userID string, shares decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx).WithField("operation", "redeem")

	lender, err := sess.lenders.Find(ctx, userID)
	if err != nil {
		return err
	}

	if err := sess.engine.Redeem(ctx, sess.market, lender, shares, now); err != nil {
		log.WithError(err).Errorln("redeem failed")
		return err
	}

	if err := sess.lenders.Save(ctx, sess.tx, lender); err != nil {
		return err
	}

	return sess.markets.Update(ctx, sess.tx, sess.market)
}

func (s *marketService) ClaimRewards(ctx context.Context, userID string) (decimal.Decimal, error) {
	var claimed decimal.Decimal
	err := s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		claimed, err = sess.claimRewards(ctx, userID, time.Now())
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	return claimed, nil
}

func (sess *session) claimRewards(ctx context.Context, userID string, now time.Time) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).WithField("operation", "claim")

	lender, err := sess.lenders.Find(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	claimed, err := sess.engine.Claim(ctx, sess.market, lender, now)
	if err != nil {
		log.WithError(err).Errorln("claim failed")
		return decimal.Zero, err
	}

	if err := sess.lenders.Save(ctx, sess.tx, lender); err != nil {
		return decimal.Zero, err
	}

	if err := sess.markets.Update(ctx, sess.tx, sess.market); err != nil {
		return decimal.Zero, err
	}

	return claimed, nil
}

func (s *marketService) DepositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		return sess.depositCollateral(ctx, userID, assetID, amount, time.Now())
	})
}

func (sess *session) depositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx).WithField("operation", "deposit_collateral")

	asset, err := sess.findAsset(ctx, assetID)
	if err != nil {
		return err
	}

	lender, err := sess.lenders.Find(ctx, userID)
	if err != nil {
		return err
	}

	account, err := sess.borrowers.FindCollateral(ctx, userID, assetID)
	if err != nil {
		return err
	}

	if err := sess.engine.DepositCollateral(ctx, sess.market, lender, asset, account, amount, now); err != nil {
		log.WithError(err).Errorln("deposit collateral failed")
		return err
	}

	if err := sess.lenders.Save(ctx, sess.tx, lender); err != nil {
		return err
	}

	if err := sess.borrowers.SaveCollateral(ctx, sess.tx, account); err != nil {
		return err
	}

	return sess.markets.Update(ctx, sess.tx, sess.market)
}

func (s *marketService) WithdrawCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		return sess.withdrawCollateral(ctx, userID, assetID, amount, time.Now())
	})
}

func (sess *session) withdrawCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx).WithField("operation", "withdraw_collateral")

	lender, err := sess.lenders.Find(ctx, userID)
	if err != nil {
		return err
	}

	account, err := sess.borrowers.FindCollateral(ctx, userID, assetID)
	if err != nil {
		return err
	}

	if err := sess.engine.WithdrawCollateral(ctx, sess.market, lender, account, amount, now); err != nil {
		log.WithError(err).Errorln("withdraw collateral failed")
		return err
	}

	if err := sess.lenders.Save(ctx, sess.tx, lender); err != nil {
		return err
	}

	if err := sess.borrowers.SaveCollateral(ctx, sess.tx, account); err != nil {
		return err
	}

	return sess.markets.Update(ctx, sess.tx, sess.market)
}

func (s *marketService) OpenLoan(ctx context.Context, userID, collateralAssetID string, stableAmount decimal.Decimal) (*core.Loan, error) {
	var loan *core.Loan
	err := s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		loan, err = sess.openLoan(ctx, userID, collateralAssetID, stableAmount, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	return loan, nil
}

func (sess *session) openLoan(ctx context.Context, userID, collateralAssetID string, stableAmount decimal.Decimal, now time.Time) (*core.Loan, error) {
	log := logger.FromContext(ctx).WithField("operation", "open_loan")

	stableAsset, err := sess.findAsset(ctx, sess.market.StableAssetID)
	if err != nil {
		return nil, err
	}

	collateralAsset, err := sess.findAsset(ctx, collateralAssetID)
	if err != nil {
		return nil, err
	}

	lender, err := sess.lenders.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	borrower, err := sess.borrowers.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	account, err := sess.borrowers.FindCollateral(ctx, userID, collateralAssetID)
	if err != nil {
		return nil, err
	}

	loan, err := sess.engine.OpenLoan(
		ctx,
		sess.market,
		lender,
		borrower,
		account,
		stableAsset,
		collateralAsset,
		stableAmount,
		now,
	)
	if err != nil {
		log.WithError(err).Errorln("open loan failed")
		return nil, err
	}

	if stored, err := sess.loans.Find(ctx, loan.LoanID); err != nil {
		return nil, err
	} else if stored != nil && stored.Status == core.LoanStatusActive {
		return nil, core.ErrLoanExists
	}

	if err := sess.loans.Save(ctx, sess.tx, loan); err != nil {
		return nil, err
	}

	if err := sess.lenders.Save(ctx, sess.tx, lender); err != nil {
		return nil, err
	}

	if err := sess.borrowers.Save(ctx, sess.tx, borrower); err != nil {
		return nil, err
	}

	if err := sess.borrowers.SaveCollateral(ctx, sess.tx, account); err != nil {
		return nil, err
	}

	if err := sess.markets.Update(ctx, sess.tx, sess.market); err != nil {
		return nil, err
	}

	return loan, nil
}

func (s *marketService) RepayLoan(ctx context.Context, userID, loanID string, amount decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		return sess.repayLoan(ctx, userID, loanID, amount, time.Now())
	})
}

func (sess *session) repayLoan(ctx context.Context, userID, loanID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx).WithField("operation", "repay_loan")

	loan, err := sess.loans.Find(ctx, loanID)
	if err != nil {
		return err
	}
	if loan == nil {
		return core.ErrLoanNotFound
	}

	lender, err := sess.lenders.Find(ctx, userID)
	if err != nil {
		return err
	}

	borrower, err := sess.borrowers.Find(ctx, loan.UserID)
	if err != nil {
		return err
	}

	account, err := sess.borrowers.FindCollateral(ctx, loan.UserID, loan.CollateralAssetID)
	if err != nil {
		return err
	}

	if err := sess.engine.RepayLoan(ctx, sess.market, lender, borrower, account, loan, amount, now); err != nil {
		log.WithError(err).Errorln("repay loan failed")
		return err
	}

	if err := sess.loans.Save(ctx, sess.tx, loan); err != nil {
		return err
	}

	if err := sess.lenders.Save(ctx, sess.tx, lender); err != nil {
		return err
	}

	if err := sess.borrowers.Save(ctx, sess.tx, borrower); err != nil {
		return err
	}

	if err := sess.borrowers.SaveCollateral(ctx, sess.tx, account); err != nil {
		return err
	}

	return sess.markets.Update(ctx, sess.tx, sess.market)
}

func (s *marketService) LiquidateLoan(ctx context.Context, liquidatorID, loanID string) error {
	return s.db.Tx(func(tx *db.DB) error {
		sess, err := s.begin(ctx, tx)
		if err != nil {
			return err
		}

		return sess.liquidateLoan(ctx, liquidatorID, loanID, time.Now())
	})
}

func (sess *session) liquidateLoan(ctx context.Context, liquidatorID, loanID string, now time.Time) error {
	log := logger.FromContext(ctx).WithField("operation", "liquidate_loan")

	loan, err := sess.loans.Find(ctx, loanID)
	if err != nil {
		return err
	}
	if loan == nil {
		return core.ErrLoanNotFound
	}

	liquidator, err := sess.lenders.Find(ctx, liquidatorID)
	if err != nil {
		return err
	}

	borrower, err := sess.borrowers.Find(ctx, loan.UserID)
	if err != nil {
		return err
	}

	account, err := sess.borrowers.FindCollateral(ctx, loan.UserID, loan.CollateralAssetID)
	if err != nil {
		return err
	}

	if err := sess.engine.LiquidateLoan(ctx, sess.market, liquidator, borrower, account, loan, now); err != nil {
		log.WithError(err).Errorln("liquidate loan failed")
		return err
	}

	if err := sess.loans.Save(ctx, sess.tx, loan); err != nil {
		return err
	}

	if err := sess.lenders.Save(ctx, sess.tx, liquidator); err != nil {
		return err
	}

	if err := sess.borrowers.Save(ctx, sess.tx, borrower); err != nil {
		return err
	}

	if err := sess.borrowers.SaveCollateral(ctx, sess.tx, account); err != nil {
		return err
	}

	return sess.markets.Update(ctx, sess.tx, sess.market)
}
