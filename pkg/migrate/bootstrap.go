package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/tienda-backend/pkg/config"
	"github.com/angelmondragon/tienda-backend/pkg/db"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Bootstrap brings the schema up to date when auto-migrate is enabled.
// SQLite is created from the models. Postgres runs the embedded goose migrations
// under a session lock, and only in dev; other environments migrate with cmd/migrate.
func Bootstrap(ctx context.Context, client *db.Client, app config.AppConfig, flags config.FeatureFlagsConfig, logg *logger.Logger) error {
	if client == nil {
		return fmt.Errorf("db client is required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	ctx = logg.WithFields(ctx, map[string]any{"driver": client.Driver(), "env": app.Env})

	switch autoMigrateMode(client.Driver(), app, flags) {
	case modeSkipDisabled:
		logg.Info(ctx, "auto-migrate disabled; skipping schema bootstrap")
		return nil
	case modeSkipEnv:
		logg.Info(ctx, "auto-migrate only runs goose in dev; apply migrations with cmd/migrate")
		return nil
	case modeModels:
		if err := AutoMigrateModels(ctx, client.DB()); err != nil {
			return err
		}
	case modeGoose:
		sqlDB, err := client.DB().DB()
		if err != nil {
			return fmt.Errorf("getting sql db handle: %w", err)
		}
		if err := UpLocked(ctx, sqlDB); err != nil {
			return err
		}
	}

	logg.Info(ctx, "schema bootstrap complete")
	return nil
}

type migrateMode int

const (
	modeSkipDisabled migrateMode = iota
	modeSkipEnv
	modeModels
	modeGoose
)

func autoMigrateMode(driver string, app config.AppConfig, flags config.FeatureFlagsConfig) migrateMode {
	switch {
	case !flags.AutoMigrate:
		return modeSkipDisabled
	case driver == config.DriverSQLite:
		return modeModels
	case !app.IsDev():
		return modeSkipEnv
	}
	return modeGoose
}

// AutoMigrateModels creates every table from the gorm models and seeds the counters.
func AutoMigrateModels(ctx context.Context, conn *gorm.DB) error {
	if err := conn.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}
	return SeedSequences(ctx, conn)
}

// SeedSequences inserts the counters at zero, leaving existing values alone.
func SeedSequences(ctx context.Context, conn *gorm.DB) error {
	seq := models.Sequence{Nombre: models.PurchaseNumberSequence, Valor: 0}
	err := conn.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "nombre"}}, DoNothing: true}).
		Create(&seq).Error
	if err != nil {
		return fmt.Errorf("seed sequence %s: %w", seq.Nombre, err)
	}
	return nil
}
