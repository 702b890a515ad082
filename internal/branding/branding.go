// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit the YAML.
package branding

import (
	_ "embed"
	"strings"
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
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	TemplateRepo string `yaml:"template_repo"`
	UserAgent    string `yaml:"user_agent"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "modinit",
			DisplayName:  "Hytale Mod Initializer",
			Description:  "Scaffold a new Hytale server plugin from the community template",
			HomeDir:      ".modinit",
			EnvPrefix:    "MODINIT",
			TemplateRepo: "https://github.com/HytaleModding/plugin-template",
			UserAgent:    "hytale-mod-initializer",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "modinit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".modinit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MODINIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateRepo returns the repository URL the template archive is fetched from.
func TemplateRepo() string { load(); return defaults.TemplateRepo }

// UserAgent returns the product token sent with download requests,
// e.g. UserAgent("0.1.0") → "hytale-mod-initializer/0.1.0".
func UserAgent(version string) string {
	load()
	if version == "" {
		return defaults.UserAgent
	}
	return defaults.UserAgent + "/" + version
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REF") → "MODINIT_REF".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
