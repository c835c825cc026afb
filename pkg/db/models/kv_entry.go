package models

import "time"

// KVEntry is one persisted storage slot.
type KVEntry struct {
	SlotKey   string    `gorm:"column:slot_key;primaryKey"`
	SlotValue string    `gorm:"column:slot_value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
