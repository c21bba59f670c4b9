package migrations

import (
	"github.com/NeuralTrust/TrustTag/pkg/infra/database"
	"gorm.io/gorm"
)

// The asset store is owned by the library application. This only makes sure
// a local or test database exposes the columns the service reads.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250901_create_assets_table",
		Name: "Create assets table when absent",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS assets (
					id            TEXT PRIMARY KEY,
					user_id       TEXT,
					title         TEXT NOT NULL DEFAULT '',
					description   TEXT,
					url           TEXT NOT NULL,
					thumbnail_url TEXT,
					file_type     TEXT NOT NULL,
					file_size     BIGINT,
					tags          TEXT[] NOT NULL DEFAULT '{}',
					ai_tags       TEXT[] NOT NULL DEFAULT '{}',
					collection_id TEXT,
					created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS assets;`).Error
		},
	})
}
