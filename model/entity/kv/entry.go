package kv

import (
	"time"

	"gorm.io/datatypes"
)

// Entry represents the storefront_kv table backing the SQL key-value store.
type Entry struct {
	Key       string         `gorm:"column:entry_key;type:varchar(191);primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"column:value" json:"value"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string {
	return "storefront_kv"
}
