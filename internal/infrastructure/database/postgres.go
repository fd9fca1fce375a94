package database

import (
	"fmt"
	"log"

	"github.com/rzkir/pos-mini-konter/internal/config"
	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate runs the schema migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.IdempotencyKey{},
	)
}

// SeedDefaultData creates the default owner account and the starter counter
// catalog when the database is empty.
func SeedDefaultData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		owner := &entity.User{
			Name:     "Kasir Konter",
			Email:    "kasir@konter.local",
			Password: string(hashed),
			Role:     "owner",
		}
		if err := db.Create(owner).Error; err != nil {
			return err
		}
		log.Printf("Seeded default owner account %s (change the password!)", owner.Email)
	}

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := []entity.Product{
			{Name: "Token Listrik 20.000", Price: 20000, IsActive: true},
			{Name: "Token Listrik 50.000", Price: 50000, IsActive: true},
			{Name: "Pulsa 25.000", Price: 27000, IsActive: true},
			{Name: "Pulsa 50.000", Price: 52000, IsActive: true},
			{Name: "Paket Data 10GB", Price: 30000, IsActive: true},
			{Name: "Voucher Game Mobile Legends 25.000", Price: 25000, IsActive: true},
			{Name: "Voucher Game Free Fire 10.000", Price: 10000, IsActive: true},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d counter products", len(products))
	}

	return nil
}
