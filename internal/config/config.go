// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек клиента мини-приложения
type Config struct {
	Env      string `yaml:"env" env:"ENV" env-default:"local"`
	InitData string `yaml:"init_data" env:"TG_INIT_DATA"` // initData от Telegram WebApp
	Gateway  `yaml:"gateway"`
	Metrics  `yaml:"metrics"`
}

// Gateway структура для настройки подключения к бэкенду
type Gateway struct {
	BaseURL        string        `yaml:"base_url" env:"GATEWAY_BASE_URL"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps" env-default:"10"`
	RateLimitBurst int           `yaml:"rate_limit_burst" env-default:"20"`
}

// Metrics структура для настройки локального эндпоинта метрик
type Metrics struct {
	AddressMetrics string `yaml:"address" env-default:"127.0.0.1:9090"`
}

// MustLoad функция для загрузки конфига, завершает процесс при ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Gateway:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"  RateLimitRPS: %.1f\n"+
			"  RateLimitBurst: %d\n"+
			"Metrics:\n"+
			"  Address: %s\n",
		c.Env,
		c.BaseURL,
		c.Timeout,
		c.RateLimitRPS,
		c.RateLimitBurst,
		c.AddressMetrics,
	)
}
