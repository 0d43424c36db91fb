// Package branding provides compile-time identity and default values for the
// CLI.
//
// Defaults live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Projects vendoring the tool edit that file to change
// the generator label or the include-guard floor without touching flags.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	Generator       string `yaml:"generator"`
	CMakeMinVersion string `yaml:"cmake_min_version"`
	GitHubRepo      string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "modcmake",
			DisplayName:     "modcmake",
			Description:     "Generate CMake dependency-version files from MODULE.bazel",
			Generator:       "@//cmake:make_dependencies",
			CMakeMinVersion: "3.10",
			GitHubRepo:      "bzlmod-tools/modcmake",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "modcmake").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// Generator returns the default label written into the generated file header.
func Generator() string { load(); return defaults.Generator }

// CMakeMinVersion returns the default CMake version floor for include_guard().
func CMakeMinVersion() string { load(); return defaults.CMakeMinVersion }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }
