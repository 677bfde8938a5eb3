package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "libris/internal/shared/config"
)

type Config struct {
	Server        sharedConfig.ServerConfig        `mapstructure:"server"`
	Database      sharedConfig.DatabaseConfig      `mapstructure:"database"`
	Logger        sharedConfig.LoggerConfig        `mapstructure:"logger"`
	Auth          sharedConfig.AuthConfig          `mapstructure:"auth"`
	Authorization sharedConfig.AuthorizationConfig `mapstructure:"authorization"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables. A missing
// config file is not fatal; defaults and LIBRIS_ env overrides apply.
func Load(env string) (*Config, error) {
	name := "config"
	if env != "" && env != "default" {
		name = "config." + env
	}
	viper.SetConfigName(name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("LIBRIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 4000)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "libris_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "change-me-in-production")
	viper.SetDefault("auth.token_exp_minutes", 60)
	viper.SetDefault("auth.bcrypt_cost", 12)
	viper.SetDefault("auth.admin_email", "admin@gmail.com")
	viper.SetDefault("auth.admin_password", "admin")
	viper.SetDefault("auth.seed_admin_account", true)
}
