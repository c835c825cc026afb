package kv

import (
	"context"
	"errors"

	"github.com/angelmondragon/activitycart/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqlClient interface {
	DB() *gorm.DB
	Ping(ctx context.Context) error
	Close() error
}

// SQL keeps slots as rows of the kv_entries table.
type SQL struct {
	client sqlClient
}

func NewSQL(client sqlClient) *SQL {
	return &SQL{client: client}
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var row models.KVEntry
	err := s.client.DB().WithContext(ctx).
		Where("slot_key = ?", key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.SlotValue, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	row := models.KVEntry{SlotKey: key, SlotValue: value}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"slot_value", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	return s.client.DB().WithContext(ctx).
		Where("slot_key = ?", key).
		Delete(&models.KVEntry{}).Error
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *SQL) Close() error {
	return s.client.Close()
}
