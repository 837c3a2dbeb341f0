package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordbank/internal/database/slots"
	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/storage"
)

type Database struct {
	DB    *gorm.DB
	slots *slots.Repository
}

func NewDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Default.LogMode(logger.Warn))
}

// NewQuietDatabase opens the database with gorm logging disabled.
func NewQuietDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Default.LogMode(logger.Silent))
}

func open(dbPath string, gormLogger logger.Interface) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.StorageSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db, slots: slots.NewRepository(db)}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the underlying connection.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Get implements storage.Backend.
func (d *Database) Get(key string) ([]byte, error) {
	slot, err := d.slots.GetSlot(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return slot.Value, nil
}

// Put implements storage.Backend.
func (d *Database) Put(key string, blob []byte) error {
	return d.slots.PutSlot(key, blob)
}

// Keys lists the slot keys holding data, in key order.
func (d *Database) Keys() ([]string, error) {
	return d.slots.ListKeys()
}
