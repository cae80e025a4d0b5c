package main

import (
	"context"
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"whitelotus.com/wms/advisor"
	"whitelotus.com/wms/config"
	"whitelotus.com/wms/core"
	"whitelotus.com/wms/infrastructure/communication"
	"whitelotus.com/wms/store"
	"whitelotus.com/wms/web/handlers"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "wms.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	svc, err := core.NewService(st)
	if err != nil {
		log.Fatalf("init service: %v", err)
	}

	ep := &handlers.Endpoint{
		Svc:      svc,
		Advisor:  advisor.New(context.Background(), cfg.GeminiAPIKey),
		Notifier: communication.ConnectSlack(),
		Cfg:      cfg,
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	handlers.Register(r, ep)

	log.Printf("listening on %s (storage: %s)", cfg.Listen, cfg.StorageDriver)
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.StorageDriver == config.DriverDatabase {
		return store.NewDBStore(cfg.DSN)
	}
	return store.NewFileStore(cfg.DataDir)
}
