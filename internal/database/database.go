package database

import (
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func Connect(dsn string, logger zerolog.Logger) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Info().Msg("connecting to postgres")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	logger.Info().Str("dsn", dsn).Msg("using sqlite for local development")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
