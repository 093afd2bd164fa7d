package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/infinifab/infinifab/internal/repository"
	"gorm.io/gorm"
)

func createQuotesTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000002_create_quotes",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&repository.QuoteModel{}); err != nil {
				return err
			}
			return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_quotes_category ON quotes (category)`).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.QuoteModel{})
		},
	}
}
