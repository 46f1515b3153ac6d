package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	DefaultDifficulty string  `yaml:"default-difficulty" env:"DEFAULT_DIFFICULTY" env-default:"unbeatable"`
	EasySmartChance   float64 `yaml:"easy-smart-chance" env:"EASY_SMART_CHANCE" env-default:"0.3"`
	HardSearchDepth   int     `yaml:"hard-search-depth" env:"HARD_SEARCH_DEPTH" env-default:"3"`
	Stats             Stats   `yaml:"stats"`
}

type Stats struct {
	Backend    string `yaml:"backend" env:"STATS_BACKEND" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite-path" env:"STATS_SQLITE_PATH" env-default:"tictacai_stats.db"`
	Redis      Redis  `yaml:"redis"`
	History    int    `yaml:"history" env:"STATS_HISTORY" env-default:"20"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
