package utils

import (
	"context"
	"testing"

	"github.com/dev2cloud/d2c-go/models"
)

func TestPostgresDSN(t *testing.T) {
	creds := &models.Credentials{
		User:     "admin",
		Password: "s3cret",
		Host:     "db.dev2.cloud",
		Port:     5432,
		Database: "postgres",
	}

	expected := "host=db.dev2.cloud port=5432 user=admin password=s3cret dbname=postgres sslmode=require"
	if got := PostgresDSN(creds); got != expected {
		t.Errorf("expected DSN %q, got %q", expected, got)
	}
}

func TestOpenPostgresWithoutCredentials(t *testing.T) {
	sandbox := &models.Sandbox{ID: "sb-1", SandboxType: models.SandboxTypePostgres}

	if _, err := OpenPostgres(context.Background(), sandbox); err == nil {
		t.Error("expected an error for a sandbox without credentials")
	}
}

func TestOpenRedisWithoutCredentials(t *testing.T) {
	sandbox := &models.Sandbox{ID: "sb-2", SandboxType: models.SandboxTypeRedis}

	if _, err := OpenRedis(context.Background(), sandbox); err == nil {
		t.Error("expected an error for a sandbox without credentials")
	}
}
