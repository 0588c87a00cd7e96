// Package utils provides helpers for connecting to provisioned
// sandboxes with the credentials returned by the API.
package utils

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/dev2cloud/d2c-go/models"
)

// PostgresDSN builds a lib/pq connection string from sandbox
// credentials.
func PostgresDSN(creds *models.Credentials) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=require",
		creds.Host, creds.Port, creds.User, creds.Password, creds.Database)
}

// OpenPostgres opens a connection to a postgres sandbox and verifies
// it with a ping. The caller owns the returned handle.
func OpenPostgres(ctx context.Context, sandbox *models.Sandbox) (*sql.DB, error) {
	if sandbox.Credentials == nil {
		return nil, fmt.Errorf("sandbox %s has no credentials yet", sandbox.ID)
	}

	db, err := sql.Open("postgres", PostgresDSN(sandbox.Credentials))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres sandbox %s: %w", sandbox.ID, err)
	}

	return db, nil
}

// OpenRedis opens a client for a redis sandbox and verifies it with a
// ping. The caller owns the returned client.
func OpenRedis(ctx context.Context, sandbox *models.Sandbox) (*redis.Client, error) {
	if sandbox.Credentials == nil {
		return nil, fmt.Errorf("sandbox %s has no credentials yet", sandbox.ID)
	}

	creds := sandbox.Credentials
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", creds.Host, creds.Port),
		Username: creds.User,
		Password: creds.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis sandbox %s: %w", sandbox.ID, err)
	}

	return client, nil
}
