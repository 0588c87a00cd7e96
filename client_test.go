package d2c

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	apiKey := "test-api-key"
	client := NewClient(apiKey)

	if client.apiKey != apiKey {
		t.Errorf("expected apiKey %s, got %s", apiKey, client.apiKey)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected baseURL %s, got %s", DefaultBaseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("expected httpClient to be initialized")
	}

	if client.headers == nil {
		t.Error("expected headers map to be initialized")
	}

	if client.Sandbox == nil {
		t.Error("expected Sandbox service to be initialized")
	}
}

func TestNewClientEmptyKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty API key")
		}
	}()
	NewClient("")
}

func TestClientOptions(t *testing.T) {
	apiKey := "test-api-key"
	customURL := "https://custom.api.com"
	customTimeout := 60 * time.Second

	client := NewClient(apiKey,
		WithBaseURL(customURL),
		WithTimeout(customTimeout),
		WithHeader("X-Custom-Header", "value"),
	)

	if client.baseURL != customURL {
		t.Errorf("expected baseURL %s, got %s", customURL, client.baseURL)
	}

	if client.httpClient.Timeout != customTimeout {
		t.Errorf("expected timeout %v, got %v", customTimeout, client.httpClient.Timeout)
	}

	if val, ok := client.headers["X-Custom-Header"]; !ok || val != "value" {
		t.Errorf("expected header X-Custom-Header with value 'value', got %v, %v", val, ok)
	}
}

func TestWithBaseURLTrimsTrailingSlash(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "single trailing slash",
			url:      "https://api.example.com/",
			expected: "https://api.example.com",
		},
		{
			name:     "multiple trailing slashes",
			url:      "https://api.example.com///",
			expected: "https://api.example.com",
		},
		{
			name:     "no trailing slash",
			url:      "https://api.example.com",
			expected: "https://api.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("test-key", WithBaseURL(tt.url))
			if client.baseURL != tt.expected {
				t.Errorf("expected baseURL %s, got %s", tt.expected, client.baseURL)
			}
		})
	}
}

func TestWithHeaders(t *testing.T) {
	headers := map[string]string{
		"X-Header-1": "value1",
		"X-Header-2": "value2",
	}

	client := NewClient("test-key", WithHeaders(headers))

	for k, v := range headers {
		if val, ok := client.headers[k]; !ok || val != v {
			t.Errorf("expected header %s with value %s, got %v, %v", k, v, val, ok)
		}
	}
}

func TestNewRequest(t *testing.T) {
	apiKey := "test-api-key"
	client := NewClient(apiKey,
		WithHeader("X-Custom-Header", "custom-value"),
	)

	ctx := context.Background()
	req, err := client.NewRequest(ctx, "GET", "/api/v1/sandboxes", nil)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if req.Method != "GET" {
		t.Errorf("expected method GET, got %s", req.Method)
	}

	expectedURL := DefaultBaseURL + "/api/v1/sandboxes"
	if req.URL.String() != expectedURL {
		t.Errorf("expected URL %s, got %s", expectedURL, req.URL.String())
	}

	// Check auth header
	if got := req.Header.Get("X-Api-Key"); got != apiKey {
		t.Errorf("expected X-Api-Key header %s, got %s", apiKey, got)
	}

	// Check default headers
	if req.Header.Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", req.Header.Get("Content-Type"))
	}

	if req.Header.Get("Accept") != "application/json" {
		t.Errorf("expected Accept application/json, got %s", req.Header.Get("Accept"))
	}

	// Check custom header
	if req.Header.Get("X-Custom-Header") != "custom-value" {
		t.Errorf("expected X-Custom-Header custom-value, got %s", req.Header.Get("X-Custom-Header"))
	}
}

func TestDo(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	req, _ := client.NewRequest(context.Background(), "GET", "/api/v1/sandboxes", nil)
	resp, err := client.Do(req)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	if gotKey != "test-key" {
		t.Errorf("expected server to receive X-Api-Key test-key, got %s", gotKey)
	}
}

func TestWithHTTPClient(t *testing.T) {
	customClient := &http.Client{
		Timeout: 5 * time.Second,
	}

	client := NewClient("test-key", WithHTTPClient(customClient))

	if client.httpClient != customClient {
		t.Error("expected custom HTTP client to be used")
	}
}
