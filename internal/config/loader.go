package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix         = "TEXTRELAY"
	envConfigDir      = "TEXTRELAY_CONFIG_DIR"
	defaultConfigName = "config.yaml"
)

// Load resolves configuration with precedence defaults < config file
// < environment. When no config file exists one is seeded with the
// defaults so operators have something to edit. Returns the resolved
// config and the path that was consulted.
func Load(logger *zerolog.Logger, explicitPath string) (Config, string, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	for key, value := range map[string]any{
		"addr":                cfg.Addr,
		"read_header_timeout": cfg.ReadHeaderTimeout,
		"shutdown_timeout":    cfg.ShutdownTimeout,
		"log_level":           cfg.LogLevel,
		"log_format":          cfg.LogFormat,
		"message_rate_limit":  cfg.MessageRateLimit,
		"max_frame_bytes":     cfg.MaxFrameBytes,
	} {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := resolvePath(explicitPath)
	v.SetConfigFile(path)

	switch err := v.ReadInConfig(); {
	case err == nil:
	case isMissingConfig(err):
		if seedErr := seedConfigFile(path, cfg); seedErr != nil {
			logger.Warn().Err(seedErr).Str("path", path).Msg("could not seed default config")
		} else {
			logger.Info().Str("path", path).Msg("seeded default config")
			if readErr := v.ReadInConfig(); readErr != nil {
				logger.Warn().Err(readErr).Str("path", path).Msg("reread of seeded config failed")
			}
		}
	default:
		return cfg, path, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, path, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, path, nil
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func resolvePath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	if dir := os.Getenv(envConfigDir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return filepath.Join(dir, defaultConfigName)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return defaultConfigName
	}
	return filepath.Join(cwd, defaultConfigName)
}

func seedConfigFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
