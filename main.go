package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"reservas-backend/config"
	"reservas-backend/routes"
	"reservas-backend/storage"
	"reservas-backend/store"
)

func newAdapter(cfg config.Config) (storage.Adapter, error) {
	switch cfg.StorageDriver {
	case config.DriverRedis:
		return storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.DriverPostgres:
		return storage.NewPostgresStore(cfg.DBURL)
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	logger := config.NewLogger(cfg.Env)
	defer logger.Sync()

	adapter, err := newAdapter(cfg)
	if err != nil {
		logger.Fatal("could not initialize storage",
			zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}

	s := store.New(adapter, logger)
	logger.Info("store loaded",
		zap.Int("reservations", len(s.Reservations())),
		zap.Int("categories", len(s.Categories())),
		zap.String("driver", cfg.StorageDriver),
	)

	r := routes.SetupRouter(cfg, s, logger)
	logger.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
