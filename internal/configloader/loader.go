// Package configloader resolves the jpglitch configuration. It discovers config
// files in XDG and project locations, merges them over defaults, applies
// JPGLITCH_* environment overrides and CLI flags, and validates the result.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/jpglitch/pkg/config"
)

// ProjectConfigName is the file written by "jpglitch init".
const ProjectConfigName = ".jpglitch.yml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file given with --config. It is loaded after
	// every discovered file.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// NonInteractive suppresses hints meant for a person at a terminal.
	NonInteractive bool

	// CLIConfig contains configuration from CLI flags. It takes highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string

	// Hints are suggestions for interactive users.
	Hints []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (JPGLITCH_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.jpglitch.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/jpglitch/config.yaml)
//  6. System config (/etc/jpglitch/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		label  string
		path   string
		ignore bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}

		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.label, err)
		}

		fileValidation := ValidateWithFile(fileCfg, layer.path)
		for _, warning := range fileValidation.Warnings {
			result.Warnings = append(result.Warnings, warning.Error())
		}

		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		errs := make([]error, 0, len(validation.Errors))
		for idx := range validation.Errors {
			errs = append(errs, &validation.Errors[idx])
		}
		return nil, errors.Join(errs...)
	}

	if len(result.LoadedFrom) == 0 && !opts.NonInteractive && isInteractive() {
		result.Hints = append(result.Hints,
			fmt.Sprintf("no configuration found; run 'jpglitch init' to create %s", ProjectConfigName))
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	return cfg, nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
