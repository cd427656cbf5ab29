package infra

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kral14/mobilsayt/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (unique constraints on document numbers, trigram indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Warehouse{},
		&model.CustomerFolder{},
		&model.Customer{},
		&model.SaleInvoice{},
		&model.SaleInvoiceItem{},
		&model.PurchaseInvoice{},
		&model.PurchaseInvoiceItem{},
		&model.Notification{},
		&model.ActivityLog{},
		&model.ProductDiscount{},
		&model.DiscountDocument{},
		&model.DiscountDocumentItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches applies idempotent DDL that AutoMigrate does not cover.
// Each statement is safe to re-run on an already-patched schema.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Invoice numbers must be unique: the advisory lock serializes normal
		// generation, the constraint is the backstop against manual inserts.
		{"unique sale invoice_number",
			`CREATE UNIQUE INDEX IF NOT EXISTS uni_sale_invoices_invoice_number ON sale_invoices (invoice_number)`},
		{"unique purchase invoice_number",
			`CREATE UNIQUE INDEX IF NOT EXISTS uni_purchase_invoices_invoice_number ON purchase_invoices (invoice_number)`},

		// Trigram indexes for the ILIKE product search.
		{"pg_trgm extension",
			`CREATE EXTENSION IF NOT EXISTS pg_trgm`},
		{"products name trigram idx",
			`CREATE INDEX IF NOT EXISTS idx_products_name_trgm ON products USING gin (name gin_trgm_ops)`},
		{"products code trigram idx",
			`CREATE INDEX IF NOT EXISTS idx_products_code_trgm ON products USING gin (code gin_trgm_ops)`},
		{"products barcode trigram idx",
			`CREATE INDEX IF NOT EXISTS idx_products_barcode_trgm ON products USING gin (barcode gin_trgm_ops)`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("%s: %w", p.descr, err)
		}
		log.Debug().Str("patch", p.descr).Msg("schema patch applied")
	}
	return nil
}
