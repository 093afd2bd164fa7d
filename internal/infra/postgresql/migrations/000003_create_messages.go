package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/infinifab/infinifab/internal/repository"
	"gorm.io/gorm"
)

func createMessagesTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "000003_create_messages",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&repository.MessageModel{}); err != nil {
				return err
			}
			indexes := []string{
				// At most one SENT record per user per local calendar day.
				// FAILED rows are unconstrained: a later attempt appends a new record.
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_messages_sent_once_per_day ON messages (user_id, delivery_day) WHERE status = 'SENT'`,
				`CREATE INDEX IF NOT EXISTS idx_messages_user_day ON messages (user_id, delivery_day)`,
				`CREATE INDEX IF NOT EXISTS idx_messages_sent_at ON messages (sent_at)`,
			}
			for _, sql := range indexes {
				if err := tx.Exec(sql).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&repository.MessageModel{})
		},
	}
}
