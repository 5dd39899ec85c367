package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .figbridge/config.yaml.
type ProjectConfig struct {
	Version     string `yaml:"version"`
	Framework   string `yaml:"framework"`
	ProjectPath string `yaml:"project_path"`
	ToolLogPath string `yaml:"tool_log_path"`
}

// loadProjectConfig reads .figbridge/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".figbridge/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveFramework returns the framework to scan for, applying the fallback
// chain:
//  1. Explicit --framework flag value (non-empty override)
//  2. framework from .figbridge/config.yaml
//  3. Default: react
func resolveFramework(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.Framework != "" {
		return cfg.Framework
	}
	return "react"
}

// resolveProjectPath returns the source tree root, applying the same
// flag > config file > default chain. The default is the working directory.
func resolveProjectPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.ProjectPath != "" {
		return cfg.ProjectPath
	}
	return "."
}

// resolveToolLogPath returns the JSONL tool-call log path. Empty means
// logging is disabled.
func resolveToolLogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.ToolLogPath != "" {
		return cfg.ToolLogPath
	}
	return ""
}
