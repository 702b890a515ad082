package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/hytalemodding/modinit/internal/branding"
	"github.com/hytalemodding/modinit/internal/fetcher"
	"github.com/hytalemodding/modinit/internal/writer"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyTemplateRepo = "template.repo"
	KeyTemplateRef  = "template.ref"
	KeyTemplateURL  = "template.url"
	KeyUserAgent    = "download.user_agent"
	KeyMaxRedirects = "download.max_redirects"
	KeyCopyExclude  = "copy.exclude"
)

// Keys lists every setting understood by the CLI.
var Keys = []string{
	KeyTemplateRepo,
	KeyTemplateRef,
	KeyTemplateURL,
	KeyUserAgent,
	KeyMaxRedirects,
	KeyCopyExclude,
}

// Dir returns the path to the config directory (~/.modinit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.modinit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyTemplateRepo, branding.TemplateRepo())
	viper.SetDefault(KeyTemplateRef, fetcher.DefaultRef)
	viper.SetDefault(KeyTemplateURL, "")
	viper.SetDefault(KeyUserAgent, "")
	viper.SetDefault(KeyMaxRedirects, fetcher.DefaultMaxRedirects)
	viper.SetDefault(KeyCopyExclude, writer.DefaultExclude)
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to variables with dots replaced by underscores, e.g.
// MODINIT_TEMPLATE_REF.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	switch key {
	case KeyMaxRedirects:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		viper.Set(key, n)
	case KeyCopyExclude:
		viper.Set(key, splitList(value))
	default:
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsKnown reports whether key is a recognized setting.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Template returns the archive source: the explicit template.url override
// when set, otherwise the URL resolved from template.repo and template.ref.
func Template() (fetcher.Source, error) {
	if url := viper.GetString(KeyTemplateURL); url != "" {
		return fetcher.Source{URL: url}, nil
	}
	return fetcher.ResolveSource(viper.GetString(KeyTemplateRepo), viper.GetString(KeyTemplateRef))
}

// UserAgent returns the configured user agent, or "" for the default.
func UserAgent() string {
	return viper.GetString(KeyUserAgent)
}

// MaxRedirects returns the redirect budget for downloads.
func MaxRedirects() int {
	return viper.GetInt(KeyMaxRedirects)
}

// CopyExclude returns the base names skipped when copying the template.
// A comma-separated environment value is split into entries.
func CopyExclude() []string {
	raw := viper.GetStringSlice(KeyCopyExclude)
	out := []string{}
	for _, r := range raw {
		out = append(out, splitList(r)...)
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
