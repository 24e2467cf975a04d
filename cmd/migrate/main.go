package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"os"

	"go.uber.org/zap"

	"advisorpilot/internal/shared/config"
	"advisorpilot/internal/shared/storage/db"
	"advisorpilot/internal/shared/telemetry"
)

func main() {
	cfg := config.MustLoad()
	telemetry.Set(telemetry.New(cfg.LogLevel, cfg.LogFormat))
	defer telemetry.Sync()
	log := telemetry.L()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Error("failed to connect database", zap.Error(err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	names, _ := db.MigrationNames()
	log.Info("applying migrations", zap.Strings("files", names))
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Error("failed to run migrations", zap.Error(err))
		sqlDB.Close()
		os.Exit(1)
	}
	log.Info("migrations applied")
}
