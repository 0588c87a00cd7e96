// Package services implements the resource services exposed by the
// Dev2Cloud client.
//
// This file implements the SandboxService which covers the full
// sandbox lifecycle: listing, provisioning, polling a pending sandbox
// until it is usable, and single or bulk deletion. Provisioning is
// asynchronous on the server; CreateAndWait turns it into a
// synchronous call by re-fetching the sandbox until it leaves the
// pending status.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dev2cloud/d2c-go/models"
)

// ClientInterface defines the methods needed from Client
type ClientInterface interface {
	NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error)
	Do(req *http.Request) (*http.Response, error)
}

// DefaultCreateTimeout bounds how long CreateAndWait polls a pending
// sandbox before giving up.
const DefaultCreateTimeout = 180 * time.Second

const sandboxesPath = "/api/v1/sandboxes"

type SandboxService struct {
	client ClientInterface

	// pollInterval is how long CreateAndWait sleeps between status
	// re-fetches. Fixed at one second against the real API;
	// provisioning takes tens of seconds, so finer granularity buys
	// nothing.
	pollInterval time.Duration
}

func NewSandboxService(client ClientInterface) *SandboxService {
	return &SandboxService{
		client:       client,
		pollInterval: time.Second,
	}
}

// List retrieves all active sandboxes, in the server's order (by
// creation time).
func (s *SandboxService) List(ctx context.Context) ([]*models.Sandbox, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, sandboxesPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := errorFromResponse(resp); err != nil {
		return nil, err
	}

	var sandboxes []*models.Sandbox
	if err := json.NewDecoder(resp.Body).Decode(&sandboxes); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return sandboxes, nil
}

// Get retrieves a sandbox by its ID.
func (s *SandboxService) Get(ctx context.Context, sandboxID string) (*models.Sandbox, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%s", sandboxesPath, sandboxID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := errorFromResponse(resp); err != nil {
		return nil, err
	}

	var sandbox models.Sandbox
	if err := json.NewDecoder(resp.Body).Decode(&sandbox); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &sandbox, nil
}

// Create provisions a new sandbox and returns it immediately, usually
// still in the pending status. Use CreateAndWait to block until the
// sandbox is usable.
func (s *SandboxService) Create(ctx context.Context, sandboxType models.SandboxType) (*models.Sandbox, error) {
	body, err := json.Marshal(map[string]models.SandboxType{"sandbox_type": sandboxType})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := s.client.NewRequest(ctx, http.MethodPost, sandboxesPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := errorFromResponse(resp); err != nil {
		return nil, err
	}

	var sandbox models.Sandbox
	if err := json.NewDecoder(resp.Body).Decode(&sandbox); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &sandbox, nil
}

// CreateAndWait provisions a sandbox and polls its status once per
// second until it transitions out of pending. It returns the running
// record, whose credentials are populated by then, or an *APIError
// with status code 0 when the sandbox fails to provision or does not
// become ready within timeout. A timeout <= 0 means
// DefaultCreateTimeout.
func (s *SandboxService) CreateAndWait(ctx context.Context, sandboxType models.SandboxType, timeout time.Duration) (*models.Sandbox, error) {
	if timeout <= 0 {
		timeout = DefaultCreateTimeout
	}

	sandbox, err := s.Create(ctx, sandboxType)
	if err != nil {
		return nil, err
	}

	// The deadline is checked before each sleep, so the last re-fetch
	// can land arbitrarily close to the boundary but never after it.
	deadline := time.Now().Add(timeout)
	for sandbox.StatusIs(models.StatusPending) {
		if !time.Now().Before(deadline) {
			return nil, &models.APIError{
				StatusCode: 0,
				Detail:     fmt.Sprintf("sandbox %s did not become ready within %s", sandbox.ID, timeout),
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}

		if sandbox, err = s.Get(ctx, sandbox.ID); err != nil {
			return nil, err
		}
	}

	if sandbox.StatusIs(models.StatusFailed) {
		return nil, &models.APIError{
			StatusCode: 0,
			Detail:     fmt.Sprintf("sandbox %s failed to provision", sandbox.ID),
		}
	}

	return sandbox, nil
}

// Delete permanently deletes a sandbox. This is irreversible and
// revokes the connection credentials immediately.
func (s *SandboxService) Delete(ctx context.Context, sandboxID string) error {
	req, err := s.client.NewRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%s", sandboxesPath, sandboxID), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return errorFromResponse(resp)
}

// DeleteAll deletes every active sandbox, in listed order, and returns
// the IDs that were confirmed deleted. An *APIError on one sandbox is
// swallowed so that a sandbox that is already gone or mid-deletion
// does not block cleanup of the rest; any other error aborts the
// remaining deletions and is returned alongside the IDs deleted so
// far.
func (s *SandboxService) DeleteAll(ctx context.Context) ([]string, error) {
	sandboxes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	deleted := make([]string, 0, len(sandboxes))
	for _, sandbox := range sandboxes {
		if err := s.Delete(ctx, sandbox.ID); err != nil {
			var apiErr *models.APIError
			if errors.As(err, &apiErr) {
				continue
			}
			return deleted, err
		}
		deleted = append(deleted, sandbox.ID)
	}

	return deleted, nil
}

// errorFromResponse maps a non-2xx response to an *APIError. The
// detail is read from the body's "detail" field when the body parses
// as JSON, otherwise the HTTP status text is used.
func errorFromResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := http.StatusText(resp.StatusCode)
	if body, err := io.ReadAll(resp.Body); err == nil {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			detail = errResp.Detail
		}
	}

	return &models.APIError{StatusCode: resp.StatusCode, Detail: detail}
}
