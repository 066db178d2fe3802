package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mwhitley/capquiz/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig  `mapstructure:"app" validate:"required"`
	DB   DBConfig   `mapstructure:"db" validate:"required"`
	Data DataConfig `mapstructure:"data" validate:"required"`
	Env  string     `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type DBConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("db.path", "DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PATH: %w", err)
	}
	if err := v.BindEnv("data.file", "DATA_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind DATA_FILE: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
