package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// CompilerConfig holds typst settings taken from the environment.
type CompilerConfig struct {
	Binary  string
	Timeout time.Duration
}

// NewCompilerConfig reads TYPST_BIN (default: typst) and
// TYPST_TIMEOUT_SECONDS (default: 60).
func NewCompilerConfig() (*CompilerConfig, error) {
	binary := os.Getenv("TYPST_BIN")
	if binary == "" {
		binary = "typst"
	}

	timeoutStr := os.Getenv("TYPST_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = "60"
	}

	seconds, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TYPST_TIMEOUT_SECONDS: %v", err)
	}

	config := &CompilerConfig{
		Binary:  binary,
		Timeout: time.Duration(seconds) * time.Second,
	}
	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *CompilerConfig) normalize() error {
	if c.Timeout < time.Second {
		return fmt.Errorf("TYPST_TIMEOUT_SECONDS must be at least 1 second, got: %s", c.Timeout)
	}
	return nil
}

// ApplyEnv fills compiler and database settings from the environment
// where the config leaves them at their zero value.
func (c *Config) ApplyEnv() error {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.TypstBinary != "" && c.TimeoutSeconds != 0 {
		return nil
	}

	compiler, err := NewCompilerConfig()
	if err != nil {
		return err
	}
	if c.TypstBinary == "" {
		c.TypstBinary = compiler.Binary
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = int(compiler.Timeout / time.Second)
	}
	return nil
}

// CompileTimeout returns the configured compiler timeout
func (c *Config) CompileTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
