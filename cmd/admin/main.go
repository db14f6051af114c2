package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stockroom/internal/infrastructure/postgres"
	"stockroom/internal/shared/config"
)

const usage = `Stockroom Admin CLI - Management commands for the self-hosted backend

Usage:
  admin <command> [options]

Commands:
  migrate     Apply the database schema (idempotent)
  low-stock   List items below the low-stock threshold for a user

Examples:
  admin migrate
  admin low-stock --user-id=9f4c...
  admin low-stock --user-id=9f4c... --timeout=30s
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	_ = godotenv.Load()

	switch os.Args[1] {
	case "migrate":
		runMigrate(os.Args[2:])
	case "low-stock":
		runLowStock(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}
}

func openDB() *postgres.DB {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Store.Backend != config.StoreBackendPostgres {
		log.Fatalf("admin commands require STORE_BACKEND=postgres (got %q)", cfg.Store.Backend)
	}

	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

func runMigrate(args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	timeout := fs.Duration("timeout", time.Minute, "command timeout")
	fs.Parse(args)

	db := openDB()
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	fmt.Println("Schema applied")
}

func runLowStock(args []string) {
	fs := flag.NewFlagSet("low-stock", flag.ExitOnError)
	userID := fs.String("user-id", "", "user to report on (required)")
	timeout := fs.Duration("timeout", time.Minute, "command timeout")
	fs.Parse(args)

	if *userID == "" {
		log.Fatal("--user-id is required")
	}

	db := openDB()
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	repo := postgres.NewInventoryRepository(db)
	items, err := repo.List(ctx, *userID)
	if err != nil {
		log.Fatalf("failed to list inventory: %v", err)
	}

	count := 0
	for _, item := range items {
		if item.LowStock() {
			count++
			sku := ""
			if item.SKU != nil {
				sku = *item.SKU
			}
			fmt.Printf("%-36s  %-24s  %-12s  qty=%d\n", item.ID, item.Name, sku, item.Quantity)
		}
	}
	fmt.Printf("%d low-stock item(s)\n", count)
}
