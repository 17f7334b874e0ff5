package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init writes a starter configuration file. Existing files are preserved
// unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Build: BuildConfig{
			SourceRoot:  "./thesis",
			EntryFile:   "thesis.tex",
			OutputDir:   "build",
			Interaction: "nonstopmode",
		},
		Environment: EnvironmentConfig{
			Runtime: RuntimeDocker,
			Image:   "texlive/texlive:latest",
		},
		Watch: WatchConfig{
			Strategy: WatchStrategyTool,
		},
		Viewer: ViewerConfig{
			Candidates: []ViewerCandidate{
				{Name: "SumatraPDF (64-bit)", Path: `C:\Program Files\SumatraPDF\SumatraPDF.exe`},
				{Name: "SumatraPDF (32-bit)", Path: `C:\Program Files (x86)\SumatraPDF\SumatraPDF.exe`},
			},
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
