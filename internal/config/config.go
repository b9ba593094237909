package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeHTTP     = "http"
	ModeTerminal = "terminal"

	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	// LogFile is where the terminal client writes logs, empty discards them.
	LogFile  string        `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Mode     string        `yaml:"mode" env:"MODE" env-default:"http"`
	HTTPPort string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  string        `yaml:"storage" env:"STORAGE" env-default:"redis"`
	GameTTL  time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"24h"`
	BotDelay time.Duration `yaml:"bot-delay" env:"BOT_DELAY" env-default:"500ms"`
	Redis    Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yml file at path, applies env overrides and checks the values.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeHTTP, ModeTerminal:
	default:
		return fmt.Errorf("unknown mode %q", that.Mode)
	}

	switch that.Storage {
	case StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", that.Storage)
	}

	if that.BotDelay < 0 {
		return fmt.Errorf("bot delay must not be negative: %s", that.BotDelay)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
