package main

import (
	"context"
	"os"

	"smartmenu-service/config"
	"smartmenu-service/internal/database"
	"smartmenu-service/internal/logger"
	"smartmenu-service/internal/migrate"

	"go.uber.org/zap"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	db := database.ConnectDBForMigration(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	ctx := context.Background()

	opts := migrate.DefaultMigrateOptions()

	if err := migrate.MigrateMenuDB(ctx, db, log, opts); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migration completed")
}
