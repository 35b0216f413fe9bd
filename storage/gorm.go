package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreSnapshot is the key -> blob row backing GormBackend.
type StoreSnapshot struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Data      []byte    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GormBackend persists snapshots in a single store_snapshots table. Used
// when the service runs against Postgres instead of the local data dir.
type GormBackend struct {
	DB *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{DB: db}
}

func (g *GormBackend) Load(key string) ([]byte, error) {
	var snap StoreSnapshot
	err := g.DB.Where("key = ?", key).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap.Data, nil
}

func (g *GormBackend) Save(key string, data []byte) error {
	snap := StoreSnapshot{Key: key, Data: data, UpdatedAt: time.Now()}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}

func (g *GormBackend) Delete(key string) error {
	return g.DB.Where("key = ?", key).Delete(&StoreSnapshot{}).Error
}
