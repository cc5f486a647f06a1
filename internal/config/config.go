package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"calaudit/internal/audit"
	"calaudit/internal/schedule"
)

// Config holds all service configuration.
type Config struct {
	DB       DBConfig
	Google   GoogleConfig
	Audit    AuditConfig
	Schedule ScheduleConfig
	Logger   LoggerConfig
}

type DBConfig struct {
	Path string
}

type GoogleConfig struct {
	CredentialsFile string
}

type AuditConfig struct {
	LookaheadDays int
	// Recipient overrides the calendar owner's address; empty means
	// "send the report to myself".
	Recipient string
}

type ScheduleConfig struct {
	Spec string
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ., ./config, /etc/calaudit/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/calaudit/")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("calaudit")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.DB.Path = viper.GetString("db.path")
	cfg.Google.CredentialsFile = viper.GetString("google.credentials_file")
	cfg.Audit.LookaheadDays = viper.GetInt("audit.lookahead_days")
	cfg.Audit.Recipient = viper.GetString("audit.recipient")
	cfg.Schedule.Spec = viper.GetString("schedule.spec")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")

	if cfg.Audit.LookaheadDays <= 0 {
		cfg.Audit.LookaheadDays = audit.DefaultLookaheadDays
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("db.path", "calaudit.db")
	viper.SetDefault("google.credentials_file", "credentials.json")
	viper.SetDefault("audit.lookahead_days", audit.DefaultLookaheadDays)
	viper.SetDefault("schedule.spec", schedule.DailySpec)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
}
