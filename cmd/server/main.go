package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/nats-io/nats.go"

	"github.com/dukerupert/orderflow/internal"
	"github.com/dukerupert/orderflow/internal/bootstrap"
	"github.com/dukerupert/orderflow/internal/domain"
	"github.com/dukerupert/orderflow/internal/dummyjson"
	"github.com/dukerupert/orderflow/internal/email"
	"github.com/dukerupert/orderflow/internal/eventbus"
	"github.com/dukerupert/orderflow/internal/handler"
	"github.com/dukerupert/orderflow/internal/inventory"
	"github.com/dukerupert/orderflow/internal/memory"
	"github.com/dukerupert/orderflow/internal/middleware"
	"github.com/dukerupert/orderflow/internal/postgres"
	"github.com/dukerupert/orderflow/internal/routes"
	"github.com/dukerupert/orderflow/internal/service"
	"github.com/dukerupert/orderflow/internal/sqlite"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Connect postgres when either store needs it
	var pool *pgxpool.Pool
	if cfg.Catalog.Source == "postgres" || cfg.Database.OrderStore == "postgres" {
		logger.Info("Connecting to database...")
		sqlDB, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		logger.Info("Running database migrations...")
		if err := internal.RunMigrations(sqlDB); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		pool, err = postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to create connection pool: %w", err)
		}
		defer pool.Close()
	}

	// Select the product catalog
	var products domain.ProductRepository
	switch cfg.Catalog.Source {
	case "dummyjson":
		products = dummyjson.NewProductRepository(cfg.Catalog.DummyJSONURL, &http.Client{Timeout: 10 * time.Second})
	case "sqlite":
		db, err := sqlite.Open(cfg.Catalog.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite catalog: %w", err)
		}
		defer db.Close()
		products = sqlite.NewProductRepository(db)
	case "postgres":
		products = postgres.NewProductRepository(pool)
	default:
		products = memory.NewProductRepository(demoCatalog())
	}
	logger.Info("Catalog ready", "source", cfg.Catalog.Source)

	// Select the order store
	var orders domain.OrderRepository
	if cfg.Database.OrderStore == "postgres" {
		orders = postgres.NewOrderRepository(pool)
	} else {
		orders = memory.NewOrderRepository()
	}

	// Select the event bus
	var bus eventbus.Bus
	if cfg.NATS.Enabled {
		conn, err := nats.Connect(cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		natsBus := eventbus.NewNATS(conn, cfg.NATS.SubjectPrefix, logger)
		defer natsBus.Close()
		bus = natsBus
		logger.Info("Connected to NATS", "url", cfg.NATS.URL)
	} else {
		bus = eventbus.NewMemory()
	}

	// Subscribe the order created reactions
	stock := inventory.NewMemory(demoStock())
	bus.Subscribe(domain.EventOrderCreated, service.DecreaseInventoryOnOrderCreated(stock, logger))
	bus.Subscribe(domain.EventOrderCreated, service.SendOrderConfirmationEmail(email.NewConsole(logger), logger))

	// Initialize services
	orderService := service.NewOrderService(orders, products, bus, logger)
	productService := service.NewProductService(products)

	var users domain.UserRepository
	if pool != nil {
		users = postgres.NewUserRepository(pool)
	} else {
		users = memory.NewUserRepository()
	}
	userService := service.NewUserService(users)

	// Seed the initial admin account if configured
	adminCfg := bootstrap.AdminConfig{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}
	if err := bootstrap.EnsureAdmin(ctx, userService, &adminCfg, logger); err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("orderflow")

	r := routes.New(routes.Deps{
		Logger:         logger,
		Orders:         handler.NewOrderHandler(orderService),
		Products:       handler.NewProductHandler(productService),
		Metrics:        metrics,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// demoCatalog seeds the in-memory catalog so the API is usable out of
// the box without any external product source.
func demoCatalog() []domain.Product {
	products := []struct {
		id          int64
		title       string
		price       float64
		description string
	}{
		{1, "iPhone 9", 549, "An apple mobile which is nothing like apple"},
		{2, "iPhone X", 899, "Model A19211 with large OLED display"},
		{3, "Samsung Universe 9", 1249, "Samsung's new variant"},
		{4, "OPPOF19", 280, "OPPO F19 announced in 2021"},
		{5, "Huawei P30", 499, "Huawei P30 with Kirin 980"},
	}

	catalog := make([]domain.Product, 0, len(products))
	for _, p := range products {
		id, err := domain.NewProductID(p.id)
		if err != nil {
			log.Fatalf("invalid demo product id %d: %v", p.id, err)
		}
		price, err := domain.NewPrice(p.price)
		if err != nil {
			log.Fatalf("invalid demo price for product %d: %v", p.id, err)
		}
		catalog = append(catalog, domain.Product{
			ID:          id,
			Title:       p.title,
			Price:       price,
			Description: p.description,
		})
	}
	return catalog
}

// demoStock gives every demo product a starting quantity.
func demoStock() map[int64]int64 {
	return map[int64]int64{1: 100, 2: 100, 3: 100, 4: 100, 5: 100}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
