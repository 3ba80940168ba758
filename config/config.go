// Package config loads driver parameters from environment variables,
// with an optional dupire.yaml overlay, in the style of the pack's
// barracuda config loader: env defaults first, a silently-optional YAML
// file overriding what it sets.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// EngineConfig controls the Monte Carlo batch loop shared by Price and
// Risk.
type EngineConfig struct {
	Np       int     `yaml:"paths"`
	Nb       int     `yaml:"batch_size"`
	Nt       int     `yaml:"steps"`
	Epsilon  float64 `yaml:"epsilon"`
	Parallel bool    `yaml:"parallel"`
}

// ServerConfig controls the optional HTTP surface.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	APIKeyHash string `yaml:"api_key_hash"`
}

// LoggingConfig controls log verbosity and destination.
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Config is the fully resolved configuration for the CLI and API
// entrypoints.
type Config struct {
	Engine  EngineConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// yamlEngineConfig mirrors EngineConfig but carries Parallel as a
// pointer so the YAML loader can tell "key absent" from "key set to
// false" — a plain bool can't, since both unmarshal to the zero value.
type yamlEngineConfig struct {
	Np       int     `yaml:"paths"`
	Nb       int     `yaml:"batch_size"`
	Nt       int     `yaml:"steps"`
	Epsilon  float64 `yaml:"epsilon"`
	Parallel *bool   `yaml:"parallel"`
}

// yamlConfig mirrors the optional dupire.yaml file layout.
type yamlConfig struct {
	Engine  yamlEngineConfig `yaml:"engine"`
	Server  ServerConfig     `yaml:"server"`
	Logging LoggingConfig    `yaml:"logging"`
}

// Load builds a Config from environment variables, then overlays
// dupire.yaml if present in the working directory. A missing or
// unparsable YAML file is not an error: it is silently ignored and the
// environment/default values stand.
func Load() *Config {
	cfg := &Config{
		Engine: EngineConfig{
			Np:       getEnvInt("DUPIRE_NP", 100000),
			Nb:       getEnvInt("DUPIRE_NB", 1024),
			Nt:       getEnvInt("DUPIRE_NT", 48),
			Epsilon:  getEnvFloat("DUPIRE_EPSILON", 1.0),
			Parallel: getEnvBool("DUPIRE_PARALLEL", true),
		},
		Server: ServerConfig{
			ListenAddr: getEnv("DUPIRE_LISTEN_ADDR", ":8080"),
			APIKeyHash: getEnv("DUPIRE_API_KEY_HASH", ""),
		},
		Logging: LoggingConfig{
			LogLevel: getEnv("DUPIRE_LOG_LEVEL", "info"),
			LogFile:  getEnv("DUPIRE_LOG_FILE", ""),
		},
	}

	if yamlCfg := loadYAMLConfig("dupire.yaml"); yamlCfg != nil {
		if yamlCfg.Engine.Np > 0 {
			cfg.Engine.Np = yamlCfg.Engine.Np
		}
		if yamlCfg.Engine.Nb > 0 {
			cfg.Engine.Nb = yamlCfg.Engine.Nb
		}
		if yamlCfg.Engine.Nt > 0 {
			cfg.Engine.Nt = yamlCfg.Engine.Nt
		}
		if yamlCfg.Engine.Epsilon > 0 {
			cfg.Engine.Epsilon = yamlCfg.Engine.Epsilon
		}
		if yamlCfg.Engine.Parallel != nil {
			cfg.Engine.Parallel = *yamlCfg.Engine.Parallel
		}
		if yamlCfg.Server.ListenAddr != "" {
			cfg.Server.ListenAddr = yamlCfg.Server.ListenAddr
		}
		if yamlCfg.Server.APIKeyHash != "" {
			cfg.Server.APIKeyHash = yamlCfg.Server.APIKeyHash
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}
	}

	return cfg
}

func loadYAMLConfig(path string) *yamlConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil
	}
	return &y
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
