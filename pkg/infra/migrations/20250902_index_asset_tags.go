package migrations

import (
	"github.com/NeuralTrust/TrustTag/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250902_index_asset_tags",
		Name: "GIN indexes on tags and ai_tags",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_assets_tags ON assets USING GIN (tags);`).Error; err != nil {
				return err
			}
			return db.Exec(`CREATE INDEX IF NOT EXISTS idx_assets_ai_tags ON assets USING GIN (ai_tags);`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_assets_ai_tags;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS idx_assets_tags;`).Error
		},
	})
}
