// Package models provides the typed records exchanged with the
// Dev2Cloud API.
package models

import (
	"fmt"
	"time"
)

// SandboxType identifies the data service backing a sandbox.
type SandboxType string

const (
	SandboxTypePostgres SandboxType = "postgres"
	SandboxTypeRedis    SandboxType = "redis"
)

// Status is the server-side lifecycle state of a sandbox. The server
// moves a sandbox from pending to running or failed asynchronously;
// the client only observes the transitions.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusFailed  Status = "failed"
)

// Credentials holds the connection details for a sandbox. The server
// populates them only once the sandbox is running; Database is empty
// for redis sandboxes.
type Credentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database,omitempty"`
}

// Sandbox represents one provisioned sandbox as reported by the API.
// Status and Credentials stay nil until the server has set them. Every
// Sandbox is a snapshot valid at response time only; re-fetch via the
// sandbox service to observe newer state.
type Sandbox struct {
	ID          string       `json:"id"`
	SandboxType SandboxType  `json:"sandbox_type,omitempty"`
	Status      *Status      `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// Type returns the sandbox type, defaulting to postgres when the
// server omitted the field (single-product deployments).
func (s *Sandbox) Type() SandboxType {
	if s.SandboxType == "" {
		return SandboxTypePostgres
	}
	return s.SandboxType
}

// StatusIs reports whether the sandbox currently has the given status.
func (s *Sandbox) StatusIs(status Status) bool {
	return s.Status != nil && *s.Status == status
}

// URL builds a connection string from the sandbox credentials, or ""
// while credentials are not yet available.
func (s *Sandbox) URL() string {
	c := s.Credentials
	if c == nil {
		return ""
	}
	switch s.Type() {
	case SandboxTypeRedis:
		return fmt.Sprintf("redis://%s:%s@%s:%d", c.User, c.Password, c.Host, c.Port)
	default:
		return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s", c.User, c.Password, c.Host, c.Port, c.Database)
	}
}
