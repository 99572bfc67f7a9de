package repositories

import (
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bharatha-dev/brainly-server/internal/models"
)

// Connect opens the Postgres database and runs migrations. TranslateError is
// on so unique-constraint violations surface as gorm.ErrDuplicatedKey, which
// the services rely on for signup conflicts and the share-enable race.
func Connect(dsn string, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	logger.Info().Msg("connected to database")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Content{},
		&models.ShareLink{},
	)
}
