package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// The DDL is kept to the subset MySQL and SQLite agree on.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS positions (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		event_id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		capacity INT NOT NULL DEFAULT 0,
		volunteers_checked_in BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS slots (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		position_id VARCHAR(64) NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		capacity INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS volunteers (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		email VARCHAR(320) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS registrations (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		slot_id VARCHAR(64) NOT NULL,
		volunteer_id VARCHAR(64) NOT NULL,
		state VARCHAR(16) NOT NULL DEFAULT 'registered',
		check_in_time DATETIME NULL,
		counted BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE (slot_id, volunteer_id)
	)`,
}

// Open connects to the registry database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// SQLite has a single writer.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates the registry tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
