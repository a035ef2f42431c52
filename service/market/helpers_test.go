package market

import (
	"context"
	"testing"
	"time"

	"lever/core"
	engine "lever/internal/market"
	walletstore "lever/store/wallet"

	oracleservice "lever/service/oracle"
	swapservice "lever/service/swap"
	walletservice "lever/service/wallet"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	poolAccount     = "pool"
	treasuryAccount = "treasury"
	venueAccount    = "swap-venue"

	usdAsset   = "usd"
	shareAsset = "usd-share"
	btcAsset   = "btc"
	btcFeed    = "btc-usd"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type memMarkets struct {
	row *core.Market
}

func (s *memMarkets) Find(ctx context.Context) (*core.Market, error) {
	if s.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s.row
	return &cp, nil
}

func (s *memMarkets) Save(ctx context.Context, tx *db.DB, m *core.Market) error {
	cp := *m
	s.row = &cp
	return nil
}

func (s *memMarkets) Update(ctx context.Context, tx *db.DB, m *core.Market) error {
	return s.Save(ctx, tx, m)
}

type memLenders struct {
	rows map[string]core.Lender
}

func (s *memLenders) Find(ctx context.Context, userID string) (*core.Lender, error) {
	if row, ok := s.rows[userID]; ok {
		cp := row
		return &cp, nil
	}
	return &core.Lender{UserID: userID}, nil
}

func (s *memLenders) Save(ctx context.Context, tx *db.DB, lender *core.Lender) error {
	s.rows[lender.UserID] = *lender
	return nil
}

func (s *memLenders) All(ctx context.Context) ([]*core.Lender, error) {
	return nil, nil
}

type memBorrowers struct {
	rows        map[string]core.Borrower
	collaterals map[string]core.CollateralAccount
}

func collateralKey(userID, assetID string) string {
	return userID + ":" + assetID
}

func (s *memBorrowers) Find(ctx context.Context, userID string) (*core.Borrower, error) {
	if row, ok := s.rows[userID]; ok {
		cp := row
		return &cp, nil
	}
	return &core.Borrower{UserID: userID}, nil
}

func (s *memBorrowers) Save(ctx context.Context, tx *db.DB, borrower *core.Borrower) error {
	s.rows[borrower.UserID] = *borrower
	return nil
}

func (s *memBorrowers) FindCollateral(ctx context.Context, userID, assetID string) (*core.CollateralAccount, error) {
	if row, ok := s.collaterals[collateralKey(userID, assetID)]; ok {
		cp := row
		return &cp, nil
	}
	return &core.CollateralAccount{UserID: userID, AssetID: assetID}, nil
}

func (s *memBorrowers) SaveCollateral(ctx context.Context, tx *db.DB, account *core.CollateralAccount) error {
	s.collaterals[collateralKey(account.UserID, account.AssetID)] = *account
	return nil
}

func (s *memBorrowers) CollateralsByUser(ctx context.Context, userID string) ([]*core.CollateralAccount, error) {
	var accounts []*core.CollateralAccount
	for _, row := range s.collaterals {
		if row.UserID == userID {
			cp := row
			accounts = append(accounts, &cp)
		}
	}
	return accounts, nil
}

type memLoans struct {
	rows map[string]core.Loan
}

func (s *memLoans) Save(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	s.rows[loan.LoanID] = *loan
	return nil
}

func (s *memLoans) Find(ctx context.Context, loanID string) (*core.Loan, error) {
	if row, ok := s.rows[loanID]; ok {
		cp := row
		return &cp, nil
	}
	return nil, nil
}

func (s *memLoans) FindByUser(ctx context.Context, userID string) ([]*core.Loan, error) {
	var loans []*core.Loan
	for _, row := range s.rows {
		if row.UserID == userID {
			cp := row
			loans = append(loans, &cp)
		}
	}
	return loans, nil
}

func (s *memLoans) CountByStatus(ctx context.Context, status core.LoanStatus) (int64, error) {
	var n int64
	for _, row := range s.rows {
		if row.Status == status {
			n++
		}
	}
	return n, nil
}

type memAssets struct {
	rows map[string]core.Asset
}

func (s *memAssets) Save(ctx context.Context, tx *db.DB, asset *core.Asset) error {
	s.rows[asset.AssetID] = *asset
	return nil
}

func (s *memAssets) Find(ctx context.Context, assetID string) (*core.Asset, error) {
	if row, ok := s.rows[assetID]; ok {
		cp := row
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memAssets) All(ctx context.Context) ([]*core.Asset, error) {
	return nil, nil
}

type memPrices struct {
	rows map[string]core.Price
}

func (s *memPrices) Save(ctx context.Context, tx *db.DB, price *core.Price) error {
	s.rows[price.PriceAssetID] = *price
	return nil
}

func (s *memPrices) Find(ctx context.Context, priceAssetID string) (*core.Price, error) {
	if row, ok := s.rows[priceAssetID]; ok {
		cp := row
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memPrices) All(ctx context.Context) ([]*core.Price, error) {
	return nil, nil
}

type memWallets struct {
	rows   map[string]core.Wallet
	nextID uint64
}

func walletKey(account, assetID string) string {
	return account + ":" + assetID
}

func (s *memWallets) Find(ctx context.Context, account, assetID string) (*core.Wallet, error) {
	if row, ok := s.rows[walletKey(account, assetID)]; ok {
		cp := row
		return &cp, nil
	}
	return &core.Wallet{Account: account, AssetID: assetID}, nil
}

func (s *memWallets) Save(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	if wallet.ID == 0 {
		s.nextID++
		wallet.ID = s.nextID
	}
	s.rows[walletKey(wallet.Account, wallet.AssetID)] = *wallet
	return nil
}

func (s *memWallets) FindByAccount(ctx context.Context, account string) ([]*core.Wallet, error) {
	var wallets []*core.Wallet
	for _, row := range s.rows {
		if row.Account == account {
			cp := row
			wallets = append(wallets, &cp)
		}
	}
	return wallets, nil
}

type fixture struct {
	t0 time.Time

	markets   *memMarkets
	lenders   *memLenders
	borrowers *memBorrowers
	loans     *memLoans
	assets    *memAssets
	prices    *memPrices
	wallets   *memWallets
}

func newFixture() *fixture {
	t0 := time.Unix(1700000000, 0)

	f := &fixture{
		t0:        t0,
		markets:   &memMarkets{},
		lenders:   &memLenders{rows: make(map[string]core.Lender)},
		borrowers: &memBorrowers{rows: make(map[string]core.Borrower), collaterals: make(map[string]core.CollateralAccount)},
		loans:     &memLoans{rows: make(map[string]core.Loan)},
		assets:    &memAssets{rows: make(map[string]core.Asset)},
		prices:    &memPrices{rows: make(map[string]core.Price)},
		wallets:   &memWallets{rows: make(map[string]core.Wallet)},
	}

	f.markets.row = &core.Market{
		ID:                   1,
		StableAssetID:        usdAsset,
		ShareAssetID:         shareAsset,
		LoanToValueRatio:     d("0.5").Shift(18),
		LiquidationThreshold: d("0.6").Shift(18),
		BorrowRatePerSecond:  d("100000000000"),
		LastUpdatedTime:      t0,
	}

	f.assets.rows[usdAsset] = core.Asset{AssetID: usdAsset, Symbol: "USD", Decimals: 6}
	f.assets.rows[btcAsset] = core.Asset{AssetID: btcAsset, Symbol: "BTC", Decimals: 18, PriceAssetID: btcFeed, Collateral: true}

	f.prices.rows[btcFeed] = core.Price{PriceAssetID: btcFeed, Price: d("2000").Shift(18)}

	f.seedWallet("carol", usdAsset, d("1000").Shift(6))
	f.seedWallet("alice", btcAsset, d("2").Shift(18))
	f.seedWallet("alice", usdAsset, d("10000"))

	return f
}

func (f *fixture) seedWallet(account, assetID string, balance decimal.Decimal) {
	f.wallets.nextID++
	f.wallets.rows[walletKey(account, assetID)] = core.Wallet{
		ID:      f.wallets.nextID,
		Account: account,
		AssetID: assetID,
		Balance: balance,
	}
}

func (f *fixture) balance(account, assetID string) string {
	return f.wallets.rows[walletKey(account, assetID)].Balance.String()
}

func (f *fixture) setPrice(priceAssetID string, price decimal.Decimal) {
	f.prices.rows[priceAssetID] = core.Price{PriceAssetID: priceAssetID, Price: price}
}

// begin mirrors marketService.begin over the in-memory stores, one
// fresh session per operation.
func (f *fixture) begin(t *testing.T) *session {
	m, err := f.markets.Find(context.Background())
	require.NoError(t, err)

	cfg := Config{
		PoolAccount:      poolAccount,
		TreasuryAccount:  treasuryAccount,
		SwapVenueAccount: venueAccount,
	}

	sess := &session{
		cfg:       cfg,
		markets:   f.markets,
		lenders:   f.lenders,
		borrowers: f.borrowers,
		loans:     f.loans,
		assets:    f.assets,
		wallets:   walletstore.Session(f.wallets),
		market:    m,
	}

	transfers := walletservice.Transfers(nil, sess.wallets)
	oracle := oracleservice.New(f.prices)
	venue := swapservice.New(transfers, oracle, sess.assets, swapservice.Config{
		PoolAccount:  cfg.PoolAccount,
		VenueAccount: cfg.SwapVenueAccount,
	})

	sess.engine = engine.NewEngine(
		transfers,
		walletservice.Vault(nil, sess.wallets, m.ShareAssetID),
		oracle,
		venue,
		engine.Config{
			PoolAccount:      cfg.PoolAccount,
			TreasuryAccount:  cfg.TreasuryAccount,
			SwapVenueAccount: cfg.SwapVenueAccount,
		},
	)

	return sess
}
