package lender

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type lenderStore struct {
	db *db.DB
}

// New new lender store
func New(db *db.DB) core.ILenderStore {
	return &lenderStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Lender{})
		if err := tx.AutoMigrate(core.Lender{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *lenderStore) Find(ctx context.Context, userID string) (*core.Lender, error) {
	var lender core.Lender
	if err := s.db.View().Where("user_id=?", userID).First(&lender).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Lender{UserID: userID}, nil
		}
		return nil, err
	}

	return &lender, nil
}

func (s *lenderStore) Save(ctx context.Context, tx *db.DB, lender *core.Lender) error {
	if lender.ID == 0 {
		return tx.Update().Create(lender).Error
	}

	version := lender.Version
	lender.Version++
	return tx.Update().Model(core.Lender{}).
		Where("user_id=? and version=?", lender.UserID, version).
		Updates(map[string]interface{}{
			"pending_rewards":   lender.PendingRewards,
			"reward_checkpoint": lender.RewardCheckpoint,
			"version":           lender.Version,
		}).Error
}

func (s *lenderStore) All(ctx context.Context) ([]*core.Lender, error) {
	var lenders []*core.Lender
	if err := s.db.View().Find(&lenders).Error; err != nil {
		return nil, err
	}

	return lenders, nil
}
