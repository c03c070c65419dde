// Package config loads and validates the optional .foreman YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for runner and parser configuration.
const (
	DefaultTimeout   = 5 * time.Minute
	DefaultMaxOutput = 1 << 20 // 1 MB per stream
	DefaultRawTail   = 2000    // rawOutput budget on parse degradation
)

// Config holds the parsed .foreman configuration.
// All fields are optional; zero values represent defaults.
type Config struct {
	Version      int                     `yaml:"version"`
	RawTimeout   string                  `yaml:"timeout"`    // e.g. "5m", "30s"
	RawMaxOutput int                     `yaml:"max_output"` // bytes per stream
	RawRawTail   int                     `yaml:"raw_tail"`   // chars of raw output kept on degrade
	Disabled     []string                `yaml:"disabled"`   // MCP tool names to hide (e.g. fm_docker_build)
	Tools        map[string]ToolOverride `yaml:"tools"`      // per-tool settings keyed by wrapped tool name
}

// ToolOverride carries per-tool settings.
type ToolOverride struct {
	Args []string `yaml:"args"` // extra flags appended to the tool's argv
}

// Timeout returns the configured timeout or the default.
func (c *Config) Timeout() time.Duration {
	if c.RawTimeout != "" {
		d, err := time.ParseDuration(c.RawTimeout)
		if err == nil && d > 0 {
			return d
		}
	}
	return DefaultTimeout
}

// MaxOutputBytes returns the configured max output size or the default.
func (c *Config) MaxOutputBytes() int {
	if c.RawMaxOutput > 0 {
		return c.RawMaxOutput
	}
	return DefaultMaxOutput
}

// RawTail returns the configured raw-output budget or the default.
func (c *Config) RawTail() int {
	if c.RawRawTail > 0 {
		return c.RawRawTail
	}
	return DefaultRawTail
}

// ExtraArgs returns the configured extra args for a wrapped tool.
func (c *Config) ExtraArgs(tool string) []string {
	if o, ok := c.Tools[tool]; ok {
		return o.Args
	}
	return nil
}

// IsDisabled reports whether an MCP tool name is disabled by configuration.
func (c *Config) IsDisabled(name string) bool {
	for _, d := range c.Disabled {
		if d == name {
			return true
		}
	}
	return false
}

// LoadResult holds the parsed config and the discovered repository root.
type LoadResult struct {
	Config   *Config
	RepoRoot string // nearest ancestor with a VCS or module marker; falls back to workspace
}

// rootMarkers identify a repository root, checked in order.
var rootMarkers = []string{".git", "go.mod", "pyproject.toml", "package.json", "Cargo.toml"}

// Load reads the .foreman file from the repository root.
// The repository root is discovered by walking upward from workspace
// looking for a root marker. If no .foreman file exists, a default
// Config is returned.
func Load(workspace string) (*LoadResult, error) {
	root, err := findRepoRoot(workspace)
	if err != nil {
		// No marker found; use workspace as root.
		root = workspace
	}

	path := filepath.Join(root, ".foreman")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadResult{Config: &Config{}, RepoRoot: root}, nil
		}
		return nil, fmt.Errorf("reading .foreman: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing .foreman: %w", err)
	}
	return &LoadResult{Config: cfg, RepoRoot: root}, nil
}

// findRepoRoot walks upward from dir looking for a directory containing
// one of the root markers.
func findRepoRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no repository root marker found")
		}
		dir = parent
	}
}
