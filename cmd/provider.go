package cmd

import (
	"lever/core"
	marketservice "lever/service/market"
	assetstore "lever/store/asset"
	borrowerstore "lever/store/borrower"
	lenderstore "lever/store/lender"
	loanstore "lever/store/loan"
	marketstore "lever/store/market"
	pricestore "lever/store/price"
	walletstore "lever/store/wallet"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideMarketStore(db *db.DB) core.IMarketStore {
	return marketstore.New(db)
}

func provideLenderStore(db *db.DB) core.ILenderStore {
	return lenderstore.New(db)
}

func provideBorrowerStore(db *db.DB) core.IBorrowerStore {
	return borrowerstore.New(db)
}

func provideLoanStore(db *db.DB) core.ILoanStore {
	return loanstore.New(db)
}

func provideAssetStore(db *db.DB) core.IAssetStore {
	return assetstore.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return pricestore.New(db)
}

func provideWalletStore(db *db.DB) core.IWalletStore {
	return walletstore.New(db)
}

// ------------------service------------------------------------

func provideMarketService(db *db.DB) core.IMarketService {
	return marketservice.New(db, marketservice.Config{
		PoolAccount:      cfg.Market.PoolAccount,
		TreasuryAccount:  cfg.Market.TreasuryAccount,
		SwapVenueAccount: cfg.Market.SwapVenueAccount,
	})
}
