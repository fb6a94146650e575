package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string `env:"LASERTAG_ADDR" envDefault:":8080"`
	LogFile     string `env:"LASERTAG_LOG_FILE" envDefault:"lasertag.log"`
	AllowOrigin string `env:"LASERTAG_ALLOW_ORIGIN" envDefault:"*"`
}

// Load reads an optional .env file, then the process environment. A missing
// .env is fine; real environment variables always win.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
