package main

import (
	"log"

	"github.com/whitecollar/shopgallery/internal/config"
	"github.com/whitecollar/shopgallery/internal/db"
	"github.com/whitecollar/shopgallery/internal/logging"
	"github.com/whitecollar/shopgallery/internal/service"
	"github.com/whitecollar/shopgallery/internal/store"
	"github.com/whitecollar/shopgallery/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	shopStore := store.NewShopStore(database)
	pictureStore := store.NewPictureStore(database)

	gallery := service.NewGalleryService(shopStore, pictureStore, logger)
	server := web.NewServer(gallery, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
