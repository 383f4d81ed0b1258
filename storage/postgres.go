package storage

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is a single persisted collection. The contract is two independently
// keyed serialized blobs, so the table is deliberately a key-value pair
// rather than a relational schema.
type Blob struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// PostgresStore keeps the blobs in a Postgres table via GORM.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects using the given DSN and migrates the blob table.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Load(key string) ([]byte, error) {
	var blob Blob
	err := p.db.First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return blob.Value, nil
}

func (p *PostgresStore) Save(key string, value []byte) error {
	blob := Blob{Key: key, Value: value}
	return p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&blob).Error
}
