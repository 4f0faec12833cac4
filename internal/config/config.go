// Package config содержит логику чтения конфигурации клиента DeliverUS.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAPIAddress используется, если адрес бэкенда не задан.
const DefaultAPIAddress = "localhost:3000"

// Config содержит параметры подключения к бэкенду DeliverUS.
// Токен сессии выдаётся внешним механизмом авторизации.
type Config struct {
	APIAddress     string        `env:"DELIVERUS_API_ADDRESS"`
	AuthToken      string        `env:"DELIVERUS_AUTH_TOKEN"`
	RequestTimeout time.Duration `env:"DELIVERUS_REQUEST_TIMEOUT"`
}

// Parse собирает конфигурацию из переменных окружения и значений флагов
// командной строки. Переменные окружения имеют приоритет над флагами.
func Parse(flagAddress, flagToken string, flagTimeout time.Duration) (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.APIAddress == "" {
		cfg.APIAddress = flagAddress
	}
	if cfg.AuthToken == "" {
		cfg.AuthToken = flagToken
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = flagTimeout
	}

	if cfg.APIAddress == "" {
		cfg.APIAddress = DefaultAPIAddress
	}

	return cfg, nil
}
