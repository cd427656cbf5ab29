package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/apierror"
)

// SetupInitDiscounts creates the discount tables on demand. Kept for older
// deployments that migrated the base schema before discounts existed;
// CREATE TABLE IF NOT EXISTS makes it safe to call repeatedly.
func SetupInitDiscounts(db *gorm.DB) gin.HandlerFunc {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS product_discounts (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			percentage DECIMAL(5,2) NOT NULL,
			start_date TIMESTAMP NOT NULL,
			end_date TIMESTAMP NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_product_discounts_product_id
			ON product_discounts(product_id)`,
		`CREATE TABLE IF NOT EXISTS discount_documents (
			id SERIAL PRIMARY KEY,
			document_number VARCHAR(50) UNIQUE NOT NULL,
			document_date TIMESTAMP NOT NULL,
			start_date TIMESTAMP,
			end_date TIMESTAMP,
			type VARCHAR(20) NOT NULL,
			entity_id INTEGER,
			is_active BOOLEAN DEFAULT TRUE,
			notes TEXT,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS discount_document_items (
			id SERIAL PRIMARY KEY,
			document_id INTEGER NOT NULL REFERENCES discount_documents(id) ON DELETE CASCADE,
			product_id INTEGER REFERENCES products(id) ON DELETE SET NULL,
			discount_percent DECIMAL(5,2) NOT NULL,
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_discount_document_items_document_id
			ON discount_document_items(document_id)`,
	}

	return func(c *gin.Context) {
		for _, stmt := range statements {
			if err := db.WithContext(c.Request.Context()).Exec(stmt).Error; err != nil {
				log.Error().Err(err).Msg("discount table setup failed")
				c.JSON(http.StatusInternalServerError, apierror.New("Failed to initialize discount tables"))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Discount tables initialized"})
	}
}
