package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads, env-expands and normalizes a configuration file.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadEnvFiles loads .env/.env.local if present. godotenv never overrides
// variables already set in the process environment.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err == nil {
				fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			}
		}
	}
}

// applyDefaults fills zero values with sensible defaults. All defaults can be
// overridden in the config file; none are embedded elsewhere.
func (c *Config) applyDefaults() {
	if c.Build.SourceRoot == "" {
		c.Build.SourceRoot = "."
	}
	if c.Build.EntryFile == "" {
		c.Build.EntryFile = "main.tex"
	}
	if c.Build.OutputDir == "" {
		c.Build.OutputDir = "build"
	}
	if c.Build.ArtifactExt == "" {
		c.Build.ArtifactExt = "pdf"
	}
	if c.Build.Interaction == "" {
		c.Build.Interaction = "nonstopmode"
	}
	if c.Environment.Runtime == "" {
		c.Environment.Runtime = RuntimeDocker
	}
	if c.Environment.Image == "" && c.Environment.Runtime != RuntimeNone {
		c.Environment.Image = "texlive/texlive:latest"
	}
	if c.Watch.Strategy == "" {
		c.Watch.Strategy = WatchStrategyTool
	}
	if c.Watch.DebounceMS <= 0 {
		c.Watch.DebounceMS = 300
	}
	if c.History.Path == "" {
		c.History.Path = ".texwatch/history.db"
	}
}

// Validate rejects configurations the orchestrator cannot act on.
func (c *Config) Validate() error {
	switch c.Environment.Runtime {
	case RuntimeDocker, RuntimePodman, RuntimeNone:
	default:
		return fmt.Errorf("unsupported runtime: %q (expected docker, podman or none)", c.Environment.Runtime)
	}
	switch c.Watch.Strategy {
	case WatchStrategyTool, WatchStrategyOrchestrator:
	default:
		return fmt.Errorf("unsupported watch strategy: %q (expected tool or orchestrator)", c.Watch.Strategy)
	}
	if c.Environment.Runtime != RuntimeNone && c.Environment.Image == "" {
		return fmt.Errorf("environment.image is required for runtime %q", c.Environment.Runtime)
	}
	return nil
}
