// Package sqlite almacén local en archivo (driver por defecto) sobre GORM.
package sqlite

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// customerModel fila de la tabla customers.
type customerModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	FullName       string          `gorm:"not null"`
	MeterNumber    string          `gorm:"not null;uniqueIndex"`
	ContractNumber string          `gorm:"not null;uniqueIndex"`
	Location       string          `gorm:"not null;default:''"`
	Tariff         decimal.Decimal `gorm:"type:text;not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

func (customerModel) TableName() string { return "customers" }

// invoiceModel fila de la tabla invoices. Los montos se guardan como texto
// para no perder precisión decimal.
type invoiceModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID    int64           `gorm:"not null;index"`
	Customer      customerModel   `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Number        string          `gorm:"column:invoice_number;not null;uniqueIndex"`
	PreviousIndex decimal.Decimal `gorm:"type:text;not null"`
	CurrentIndex  decimal.Decimal `gorm:"type:text;not null"`
	Consumption   decimal.Decimal `gorm:"type:text;not null"`
	TariffApplied decimal.Decimal `gorm:"type:text;not null"`
	Amount        decimal.Decimal `gorm:"type:text;not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
}

func (invoiceModel) TableName() string { return "invoices" }

// Open abre (o crea) la base SQLite en path. Acepta rutas de archivo o DSN "file:...".
// Se usa una sola conexión: SQLite admite un único escritor.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(withPragmas(path)), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate crea o actualiza las tablas. Es idempotente.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&customerModel{}, &invoiceModel{}); err != nil {
		return fmt.Errorf("sqlite migrate: %w", err)
	}
	return nil
}

// Close libera la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withPragmas(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// isUniqueViolation detecta violaciones de índice único (traducidas o no por GORM).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
