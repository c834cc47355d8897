package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"product-helium-addon/logx"
)

//go:embed schema.sql
var schemaSQL string

// DB holds the database connection
var DB *sql.DB

// Config holds the Postgres connection settings
type Config struct {
	URL      string `envconfig:"DATABASE_URL"`
	Host     string `split_words:"true"`
	Port     string `split_words:"true" default:"5432"`
	User     string `split_words:"true"`
	Password string `split_words:"true"`
	Name     string `split_words:"true"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
}

// DSN returns DATABASE_URL when set, or builds a connection string from the individual variables
func (c Config) DSN() (string, error) {
	if c.URL != "" {
		return c.URL, nil
	}
	if c.Host == "" || c.User == "" || c.Name == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode), nil
}

// InitDB opens and pings the database connection
func InitDB(ctx context.Context, cfg Config) error {
	connStr, err := cfg.DSN()
	if err != nil {
		return err
	}

	DB, err = sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logx.Info().Msg("✓ Database connection established successfully")
	return nil
}

// EnsureSchema creates the tables the service needs when they are missing
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
