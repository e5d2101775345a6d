package postgres

import (
	"context"
	"fmt"

	"github.com/ds124wfegd/car-rental/config"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

func NewPostgresDB(ctx context.Context, cfg *config.PostgresConfig) (*sqlx.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS cars (
			id TEXT PRIMARY KEY,
			brand VARCHAR(100) NOT NULL,
			model VARCHAR(100) NOT NULL,
			year INTEGER NOT NULL,
			category VARCHAR(50) NOT NULL,
			transmission VARCHAR(50) NOT NULL,
			fuel_type VARCHAR(50) NOT NULL,
			seating_capacity INTEGER NOT NULL,
			location VARCHAR(100) NOT NULL,
			price_per_day DOUBLE PRECISION NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// car_id is a soft reference: bookings outlive the car
		`CREATE TABLE IF NOT EXISTS bookings (
			id TEXT PRIMARY KEY,
			car_id TEXT NOT NULL DEFAULT '',
			car_brand VARCHAR(100) NOT NULL DEFAULT '',
			car_model VARCHAR(100) NOT NULL DEFAULT '',
			car_plate VARCHAR(50) NOT NULL DEFAULT '',
			customer_name VARCHAR(255) NOT NULL,
			customer_email VARCHAR(255) NOT NULL DEFAULT '',
			customer_phone VARCHAR(50) NOT NULL DEFAULT '',
			pickup_date TIMESTAMPTZ NOT NULL,
			return_date TIMESTAMPTZ NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			total_price DOUBLE PRECISION,
			price DOUBLE PRECISION,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS blog_posts (
			id TEXT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			tag VARCHAR(100) NOT NULL DEFAULT '',
			date VARCHAR(50) NOT NULL DEFAULT '',
			reading_time VARCHAR(50) NOT NULL DEFAULT '',
			author VARCHAR(255) NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			excerpt TEXT NOT NULL DEFAULT '',
			content TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS testimonials (
			id TEXT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(255) NOT NULL DEFAULT '',
			trip VARCHAR(255) NOT NULL DEFAULT '',
			text TEXT NOT NULL,
			rating SMALLINT NOT NULL DEFAULT 5,
			image TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS subscribers (
			id TEXT PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			source VARCHAR(100) NOT NULL DEFAULT 'website',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS admin_users (
			id TEXT PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'admin',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_cars_created_at ON cars(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_car_id ON bookings(car_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status_lower ON bookings(LOWER(status))`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_customer_email ON bookings(LOWER(customer_email))`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_pickup_date ON bookings(pickup_date)`,
	}

	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}
