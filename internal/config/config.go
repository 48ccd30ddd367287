package config

import (
	"encoding/hex"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains application configuration parameters.
type Config struct {
	Env       string    `env:"APP_ENV" envDefault:"development"`
	LogLevel  int       `env:"LOG_LEVEL" envDefault:"0"`
	HTTP      HTTP      `envPrefix:"HTTP_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	JWT       JWT       `envPrefix:"JWT_"`
	Crypto    Crypto    `envPrefix:"ENCRYPTION_"`
	Processor Processor `envPrefix:"PROCESSOR_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// Redis contains store connection parameters.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Username string `env:"USER"`
	Password string `env:"PW"`
	DB       int    `env:"DB" envDefault:"0"`
}

// JWT contains token signing parameters. The secret has no default: startup
// fails when it is not supplied.
type JWT struct {
	Secret string `env:"SECRET,required"`
}

// Crypto contains the at-rest encryption key as hex. Like the JWT secret it
// must be supplied externally; there is no fallback value.
type Crypto struct {
	KeyHex string `env:"KEY,required"`
}

// Processor contains simulated payment processor parameters.
type Processor struct {
	Delay       int     `env:"DELAY_MS" envDefault:"2000"`
	SuccessRate float64 `env:"SUCCESS_RATE" envDefault:"0.9"`
}

// Key decodes the hex-encoded encryption key.
func (c Crypto) Key() ([]byte, error) {
	key, err := hex.DecodeString(c.KeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

// Production reports whether the app runs in production mode. It controls
// the Secure flag on the auth cookie.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// NewConfig loads configuration from an optional .env file and the
// environment.
func NewConfig() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.Crypto.Key(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
