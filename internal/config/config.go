package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete docsage configuration
// The structure matches the config.yaml file and can be overridden by environment variables

type Config struct {
	Docsage DocsageConfig `json:"docsage" mapstructure:"docsage"`
}

// DocsageConfig contains the main docsage configuration

type DocsageConfig struct {
	Server   ServerConfig   `json:"server" mapstructure:"server"`
	Pipeline PipelineConfig `json:"pipeline" mapstructure:"pipeline"`
	Corpus   CorpusConfig   `json:"corpus" mapstructure:"corpus"`
	Audit    AuditConfig    `json:"audit" mapstructure:"audit"`
	Log      LogConfig      `json:"log" mapstructure:"log"`
}

// ServerConfig contains server-specific configuration

type ServerConfig struct {
	Addr           string `json:"addr" mapstructure:"addr"`
	MaxConnections int    `json:"max_connections" mapstructure:"max_connections"`
	Timeout        string `json:"timeout" mapstructure:"timeout"`
	RateLimit      int    `json:"rate_limit" mapstructure:"rate_limit"`
}

// PipelineConfig tunes the question-answering pipeline

type PipelineConfig struct {
	MaxCitations      int     `json:"max_citations" mapstructure:"max_citations"`
	SummaryThreshold  float64 `json:"summary_threshold" mapstructure:"summary_threshold"`
	FollowUpThreshold float64 `json:"follow_up_threshold" mapstructure:"follow_up_threshold"`
	MaxHistory        int     `json:"max_history" mapstructure:"max_history"`
}

// CorpusConfig selects where documents are loaded from

type CorpusConfig struct {
	Backend string `json:"backend" mapstructure:"backend"`
	Path    string `json:"path" mapstructure:"path"`
}

// AuditConfig controls the query audit log

type AuditConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" mapstructure:"path"`
}

// LogConfig controls structured logging output

type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Pretty bool   `json:"pretty" mapstructure:"pretty"`
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env first (ignore error if not present)
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.docsage")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("DOCSAGE")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found, using defaults")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Resolve paths (expand ~)
	cfg.Docsage.Corpus.Path = resolvePath(cfg.Docsage.Corpus.Path)
	if cfg.Docsage.Audit.Path != "" {
		cfg.Docsage.Audit.Path = resolvePath(cfg.Docsage.Audit.Path)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("DOCSAGE.SERVER.ADDR", ":8080")
	viper.SetDefault("DOCSAGE.SERVER.MAX_CONNECTIONS", 1000)
	viper.SetDefault("DOCSAGE.SERVER.TIMEOUT", "30s")
	viper.SetDefault("DOCSAGE.SERVER.RATELIMIT", 100)

	// Pipeline defaults
	viper.SetDefault("DOCSAGE.PIPELINE.MAX_CITATIONS", 2)
	viper.SetDefault("DOCSAGE.PIPELINE.SUMMARY_THRESHOLD", 0.7)
	viper.SetDefault("DOCSAGE.PIPELINE.FOLLOW_UP_THRESHOLD", 0.5)
	viper.SetDefault("DOCSAGE.PIPELINE.MAX_HISTORY", 20)

	// Corpus defaults
	viper.SetDefault("DOCSAGE.CORPUS.BACKEND", "builtin")
	viper.SetDefault("DOCSAGE.CORPUS.PATH", "")

	// Audit defaults
	viper.SetDefault("DOCSAGE.AUDIT.ENABLED", true)
	viper.SetDefault("DOCSAGE.AUDIT.PATH", "~/.docsage/audit.db")

	// Log defaults
	viper.SetDefault("DOCSAGE.LOG.LEVEL", "info")
	viper.SetDefault("DOCSAGE.LOG.PRETTY", false)
}

// resolvePath resolves ~ to home directory and cleans the path
func resolvePath(p string) string {
	if p == "" {
		return p
	}
	if p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return filepath.Clean(p)
}
