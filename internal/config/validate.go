package config

import (
	"errors"
	"fmt"
	"net"
	"time"
)

var validBackends = map[string]bool{
	"builtin": true,
	"yaml":    true,
	"sqlite":  true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	// Validate server configuration
	if c.Docsage.Server.Addr == "" {
		return errors.New("server address cannot be empty")
	}

	// Validate address format and port
	if _, err := net.ResolveTCPAddr("tcp", c.Docsage.Server.Addr); err != nil {
		return fmt.Errorf("invalid server address: %v", err)
	}

	if c.Docsage.Server.Timeout != "" {
		if _, err := time.ParseDuration(c.Docsage.Server.Timeout); err != nil {
			return fmt.Errorf("invalid server timeout: %v", err)
		}
	}

	// Validate pipeline configuration
	if c.Docsage.Pipeline.MaxCitations <= 0 {
		return errors.New("pipeline max_citations must be positive")
	}
	if c.Docsage.Pipeline.SummaryThreshold < 0 || c.Docsage.Pipeline.SummaryThreshold > 1 {
		return errors.New("pipeline summary_threshold must be between 0 and 1")
	}
	if c.Docsage.Pipeline.FollowUpThreshold < 0 || c.Docsage.Pipeline.FollowUpThreshold > 1 {
		return errors.New("pipeline follow_up_threshold must be between 0 and 1")
	}
	if c.Docsage.Pipeline.MaxHistory < 0 {
		return errors.New("pipeline max_history cannot be negative")
	}

	// Validate corpus configuration
	if !validBackends[c.Docsage.Corpus.Backend] {
		return fmt.Errorf("invalid corpus backend: %s", c.Docsage.Corpus.Backend)
	}
	if c.Docsage.Corpus.Backend != "builtin" && c.Docsage.Corpus.Path == "" {
		return fmt.Errorf("corpus path cannot be empty when backend is %s", c.Docsage.Corpus.Backend)
	}

	// Validate audit configuration
	if c.Docsage.Audit.Enabled && c.Docsage.Audit.Path == "" {
		return errors.New("audit path cannot be empty when audit is enabled")
	}

	// Validate log configuration
	if !validLogLevels[c.Docsage.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Docsage.Log.Level)
	}

	return nil
}
