package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("D2C_API_KEY", "")
	t.Setenv("D2C_API_URL", "")

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("expected no error for missing config file, got %v", err)
	}

	if config.APIKey != "" || config.APIURL != "" {
		t.Errorf("expected empty config, got %+v", config)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("D2C_API_KEY", "")
	t.Setenv("D2C_API_URL", "")

	dir := filepath.Join(home, ".d2c")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	content := "api_key: file-key\napi_url: https://staging.dev2.cloud\n"
	if err := os.WriteFile(filepath.Join(dir, configFilename), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if config.APIKey != "file-key" {
		t.Errorf("expected api_key from file, got %q", config.APIKey)
	}

	if config.APIURL != "https://staging.dev2.cloud" {
		t.Errorf("expected api_url from file, got %q", config.APIURL)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".d2c")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFilename), []byte("api_key: file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("D2C_API_KEY", "env-key")
	t.Setenv("D2C_API_URL", "https://env.dev2.cloud")

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if config.APIKey != "env-key" {
		t.Errorf("expected env to win, got %q", config.APIKey)
	}

	if config.APIURL != "https://env.dev2.cloud" {
		t.Errorf("expected env api_url, got %q", config.APIURL)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("D2C_API_KEY", "")
	t.Setenv("D2C_API_URL", "")

	saved := &Config{APIKey: "saved-key", APIURL: "https://custom.dev2.cloud"}
	if err := saveConfig(saved); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	info, err := os.Stat(configPath())
	if err != nil {
		t.Fatalf("expected config file to exist, got %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if config.APIKey != saved.APIKey || config.APIURL != saved.APIURL {
		t.Errorf("expected %+v, got %+v", saved, config)
	}
}
