package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type collectionRow struct {
	Name      string    `gorm:"primaryKey;column:name;type:varchar(64)"`
	Data      string    `gorm:"column:data;type:longtext"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (collectionRow) TableName() string {
	return "wl_collections"
}

// DBStore persists each collection as a single row in MySQL. It keeps the
// FileStore's observable semantics: whole-blob read, whole-blob replace,
// no cross-collection transaction.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(dsn string) (*DBStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect store db: %w", err)
	}
	if !db.Migrator().HasTable(&collectionRow{}) {
		if err := db.Migrator().CreateTable(&collectionRow{}); err != nil {
			return nil, fmt.Errorf("create collections table: %w", err)
		}
	}
	return &DBStore{db: db}, nil
}

func (ds *DBStore) Initialize() error {
	return initializeDefaults(ds)
}

func (ds *DBStore) ReadBlob(name string) ([]byte, bool, error) {
	var row collectionRow
	err := ds.db.First(&row, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.Data), true, nil
}

func (ds *DBStore) WriteBlob(name string, data []byte) error {
	row := collectionRow{Name: name, Data: string(data), UpdatedAt: time.Now()}
	return ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}
