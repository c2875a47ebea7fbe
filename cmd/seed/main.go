package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/rabbitmq"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/store"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main imports a JSON product export into the catalog store
// Usage: go run ./cmd/seed --file data/products.json --store postgres --truncate
// This is a standalone CLI tool, not part of the main application
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a JSON product export into the catalog store",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context())
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.String("config", "", "optional config file (yaml, json, toml)")
	flags.String("file", "data/products.json", "product export to import")
	flags.String("store", "postgres", "target store: postgres or mongo")
	flags.Bool("truncate", false, "remove existing products before importing")
	flags.Bool("notify", true, "publish a catalog_reloaded event when RABBITMQ_URL is set")
	flags.Duration("timeout", 2*time.Minute, "import timeout")

	_ = viper.BindPFlags(flags)
	viper.SetEnvPrefix("SEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return cmd
}

func runSeed(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("STOREFRONT CATALOG - Product Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	kind := strings.ToLower(viper.GetString("store"))
	if kind != "postgres" && kind != "mongo" {
		return fmt.Errorf("unsupported seed target %q (want postgres or mongo)", kind)
	}

	path := viper.GetString("file")
	products, err := store.LoadProductsFile(path)
	if err != nil {
		return err
	}
	log.Printf("✓ Loaded %d products from %s", len(products), path)

	backend, err := store.NewBackend(kind, "")
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx, cancel := context.WithTimeout(parent, viper.GetDuration("timeout"))
	defer cancel()

	if err := backend.Import(ctx, products, viper.GetBool("truncate")); err != nil {
		return err
	}
	log.Printf("✅ Imported %d products into %s", len(products), kind)

	if viper.GetBool("notify") {
		notifyReload()
	}
	return nil
}

// notifyReload tells running storefronts to drop their cached snapshots
func notifyReload() {
	cfg := config.LoadAppConfig()
	if cfg.RabbitMQURL == "" {
		log.Println("⚠️ RABBITMQ_URL not set, skipping reload notification")
		return
	}

	rmq, err := rabbitmq.NewRabbitMQ(cfg)
	if err != nil {
		log.Printf("❌ RabbitMQ connection failed: %v", err)
		return
	}
	defer rmq.Close()

	if err := rmq.DeclareExchange(); err != nil {
		log.Printf("❌ Failed to declare catalog exchange: %v", err)
		return
	}

	event := models.CatalogEvent{
		EventID:   uuid.Must(uuid.NewV7()).String(),
		EventType: models.EventCatalogReloaded,
		Timestamp: time.Now().UTC(),
	}
	body, err := event.ToJSON()
	if err != nil {
		log.Printf("❌ Failed to encode catalog event: %v", err)
		return
	}
	if err := rmq.PublishEvent(body); err != nil {
		log.Printf("❌ Failed to publish catalog event: %v", err)
		return
	}
	log.Println("✅ Published catalog_reloaded")
}
