package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func ConnectPostgres(logger *zap.SugaredLogger) *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logger.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("Postgres connection failed: ", err)
	}

	logger.Info("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		logger.Fatal("Failed to initialize schema: ", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'diner',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEALS
	// -------------------------------
	mealsTableSQL := `
		CREATE TABLE IF NOT EXISTS meals (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			image VARCHAR(500) NOT NULL,
			price NUMERIC(6,2) NOT NULL CHECK (price >= 0),
			category VARCHAR(20) NOT NULL,
			dietary_restrictions TEXT[] NOT NULL DEFAULT '{}',
			ingredients TEXT[] NOT NULL DEFAULT '{}',
			calories DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (calories >= 0),
			protein DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (protein >= 0),
			carbs DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (carbs >= 0),
			fat DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (fat >= 0),
			availability_monday BOOLEAN NOT NULL DEFAULT TRUE,
			availability_tuesday BOOLEAN NOT NULL DEFAULT TRUE,
			availability_wednesday BOOLEAN NOT NULL DEFAULT TRUE,
			availability_thursday BOOLEAN NOT NULL DEFAULT TRUE,
			availability_friday BOOLEAN NOT NULL DEFAULT TRUE,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, mealsTableSQL); err != nil {
		return err
	}

	return nil
}
