package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. DMS_DATABASE_DSN overrides database.dsn.
const EnvPrefix = "DMS"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the server settings and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setRestDefaults registers every key so AutomaticEnv can override keys missing from the file
func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.db_name", "")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
}
