package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const configFilename = "config.yml"

// Config holds the CLI configuration, read from ~/.d2c/config.yml.
// Environment variables take precedence over the file.
type Config struct {
	APIKey string `yaml:"api_key"`
	APIURL string `yaml:"api_url,omitempty"`
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".d2c")
}

func configPath() string {
	return filepath.Join(configDir(), configFilename)
}

// loadConfig reads the config file if it exists and overlays
// environment variables on top.
func loadConfig() (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath())
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath(), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if key := os.Getenv("D2C_API_KEY"); key != "" {
		config.APIKey = key
	}
	if url := os.Getenv("D2C_API_URL"); url != "" {
		config.APIURL = url
	}

	return &config, nil
}

// saveConfig writes the config file with owner-only permissions, since
// it holds the API key.
func saveConfig(config *Config) error {
	if err := os.MkdirAll(configDir(), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0o600)
}

func configureCmd() *cobra.Command {
	var apiKey, apiURL string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Write API credentials to ~/.d2c/config.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			if apiKey != "" {
				config.APIKey = apiKey
			}
			if apiURL != "" {
				config.APIURL = apiURL
			}

			if config.APIKey == "" {
				return fmt.Errorf("nothing to save: pass --api-key")
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			fmt.Println(successStyle.Render("✓ Saved " + configPath()))
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Dev2Cloud API key")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "API base URL override")

	return cmd
}
