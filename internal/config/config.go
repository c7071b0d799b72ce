// Package config loads runtime settings from flags, the environment, an
// optional .env file and an optional YAML config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/henrybloomingdale/get-papers-list/internal/eutils"
	"github.com/henrybloomingdale/get-papers-list/internal/ncbi"
)

const (
	// EnvPrefix prefixes environment variables, e.g. PAPERS_MAX_RESULTS.
	EnvPrefix = "PAPERS"
	// FileName is the config file base name searched for when no explicit
	// file is given.
	FileName = "get-papers-list"
)

// MinTimeout is the shortest request timeout Validate accepts.
const MinTimeout = time.Second

// Keys understood by Load.
const (
	KeyAPIKey        = "api_key"
	KeyEmail         = "email"
	KeyTool          = "tool"
	KeyBaseURL       = "base_url"
	KeyMaxResults    = "max_results"
	KeyTimeout       = "timeout"
	KeyKeywordsFile  = "keywords_file"
	KeyDedupeAuthors = "dedupe_authors"
	KeyDebug         = "debug"
)

// Config holds the resolved settings.
type Config struct {
	APIKey        string        `mapstructure:"api_key"`
	Email         string        `mapstructure:"email"`
	Tool          string        `mapstructure:"tool"`
	BaseURL       string        `mapstructure:"base_url"`
	MaxResults    int           `mapstructure:"max_results"`
	Timeout       time.Duration `mapstructure:"timeout"`
	KeywordsFile  string        `mapstructure:"keywords_file"`
	DedupeAuthors bool          `mapstructure:"dedupe_authors"`
	Debug         bool          `mapstructure:"debug"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEmail, ncbi.DefaultEmail)
	v.SetDefault(KeyTool, ncbi.DefaultTool)
	v.SetDefault(KeyBaseURL, ncbi.DefaultBaseURL)
	v.SetDefault(KeyMaxResults, eutils.DefaultMaxResults)
	v.SetDefault(KeyTimeout, ncbi.DefaultTimeout)
	v.SetDefault(KeyKeywordsFile, "")
	v.SetDefault(KeyDedupeAuthors, false)
	v.SetDefault(KeyDebug, false)
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load resolves a Config from v. Flags must already be bound to v. When
// file is empty, get-papers-list.yaml is looked up in the working
// directory and in ~/.config/get-papers-list; not finding it is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// NCBI's conventional variable names are honoured as fallbacks.
	if err := v.BindEnv(KeyAPIKey, EnvPrefix+"_API_KEY", "NCBI_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding env: %w", err)
	}
	if err := v.BindEnv(KeyEmail, EnvPrefix+"_EMAIL", "NCBI_EMAIL"); err != nil {
		return nil, fmt.Errorf("binding env: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("max_results must not be negative, got %d", c.MaxResults)
	}
	if c.MaxResults == 0 {
		c.MaxResults = eutils.DefaultMaxResults
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	// A bare integer decodes as nanoseconds; zero keeps the client default.
	if c.Timeout > 0 && c.Timeout < MinTimeout {
		return fmt.Errorf("timeout %s is below %s; give it a unit, e.g. \"30s\"", c.Timeout, MinTimeout)
	}
	if c.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	return nil
}

// ClientOptions translates the settings into eutils client options.
func (c *Config) ClientOptions() []eutils.Option {
	opts := []eutils.Option{
		eutils.WithBaseURL(c.BaseURL),
		eutils.WithTool(c.Tool),
		eutils.WithEmail(c.Email),
		eutils.WithTimeout(c.Timeout),
	}
	if c.APIKey != "" {
		opts = append(opts, eutils.WithAPIKey(c.APIKey))
	}
	return opts
}
