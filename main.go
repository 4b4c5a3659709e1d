package main

import (
	"Recipe-API/cmd/config"
	migration "Recipe-API/cmd/database/migrate"
	"Recipe-API/internal/utils"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()

	zapLog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer zapLog.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		zapLog.Fatal("error connecting to database", zap.Error(err))
	}

	if err := migration.Migrate(db); err != nil {
		zapLog.Fatal("error migrating database", zap.Error(err))
	}

	app, err := config.NewApp(db, zapLog)
	if err != nil {
		zapLog.Fatal("error setting up app", zap.Error(err))
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}
	zapLog.Info("starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		zapLog.Fatal("server stopped", zap.Error(err))
	}
}
