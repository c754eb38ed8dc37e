package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vineyard/internal/catalog"
	"vineyard/internal/config"
	"vineyard/internal/database"
	"vineyard/internal/repository"
	"vineyard/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// The container maps 5432 to a random host port
	parsed, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            parsed.ConnConfig.Host,
		Port:            int(parsed.ConnConfig.Port),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedMenu seeds a small menu through the menu service. The two chicken
// dishes collide on "chickena", so the second becomes "chickena1".
func SeedMenu(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	raw := []catalog.RawItem{
		{Name: "Water", Price: decimal.RequireFromString("1.99"), FoodType: "Drink"},
		{Name: "Coke", Price: decimal.RequireFromString("2.99"), FoodType: "Drink"},
		{Name: "Lasagna", Price: decimal.RequireFromString("14.99"), FoodType: "Main"},
		{Name: "Chicken Alfredo Pasta", Price: decimal.RequireFromString("16.99"), FoodType: "Main"},
		{Title: "Chicken Alfredo", Price: decimal.RequireFromString("15.99"), Type: "Main"},
		{Name: "Gelato", Price: decimal.RequireFromString("5.49"), FoodType: "Dessert"},
	}

	menu := service.NewMenuService(repository.NewMenuItemRepository(pool, zerolog.Nop()), nil, zerolog.Nop())
	if _, err := menu.Seed(context.Background(), raw); err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"reviews", "users", "receipts", "carts", "menu_items"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
