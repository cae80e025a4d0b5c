package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"whitelotus.com/wms/config"
	"whitelotus.com/wms/core"
	"whitelotus.com/wms/store"
)

// Resets the store and loads the demo roster. The printed QR tokens are the
// only copy; hand them out or re-run.
func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "wms.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var st store.Store
	if cfg.StorageDriver == config.DriverDatabase {
		st, err = store.NewDBStore(cfg.DSN)
	} else {
		st, err = store.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	svc, err := core.NewService(st)
	if err != nil {
		log.Fatalf("init service: %v", err)
	}

	tokens, err := svc.SeedDemoData()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	fmt.Println("Demo data loaded. QR tokens (shown once):")
	for name, token := range tokens {
		fmt.Printf("  %-20s %s\n", name, token)
	}
}
