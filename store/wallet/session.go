package wallet

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
)

// Session wraps a wallet store for use inside one database transaction.
// Find goes through the read connection, which never sees the
// transaction's own uncommitted writes; a second update of the same row
// in one operation would start from a stale balance and version and the
// optimistic update would match nothing. The session keeps every row it
// has touched and serves later reads from there.
func Session(store core.IWalletStore) core.IWalletStore {
	return &sessionWalletStore{
		IWalletStore: store,
		rows:         make(map[string]*core.Wallet),
	}
}

type sessionWalletStore struct {
	core.IWalletStore
	rows map[string]*core.Wallet
}

func (s *sessionWalletStore) Find(ctx context.Context, account, assetID string) (*core.Wallet, error) {
	key := s.rowKey(account, assetID)
	if wallet, ok := s.rows[key]; ok {
		return wallet, nil
	}

	wallet, err := s.IWalletStore.Find(ctx, account, assetID)
	if err != nil {
		return nil, err
	}

	s.rows[key] = wallet
	return wallet, nil
}

func (s *sessionWalletStore) Save(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	if err := s.IWalletStore.Save(ctx, tx, wallet); err != nil {
		return err
	}

	s.rows[s.rowKey(wallet.Account, wallet.AssetID)] = wallet
	return nil
}

func (s *sessionWalletStore) rowKey(account, assetID string) string {
	return account + ":" + assetID
}
