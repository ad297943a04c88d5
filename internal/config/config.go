// Package config carga la configuración del servicio con viper: defaults,
// archivo YAML opcional y variables de entorno (estas pisan al archivo).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	App    string `mapstructure:"app"`
}

// RateLimitConfig: RPS 0 desactiva el limitador.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"gte=0"`
	Burst int     `mapstructure:"burst" validate:"gte=0"`
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// env mantiene los nombres de variables que ya usaba el servicio (PORT, LOG_LEVEL, ...).
var env = map[string]string{
	"server.port":          "PORT",
	"server.read_timeout":  "READ_TIMEOUT",
	"server.write_timeout": "WRITE_TIMEOUT",
	"log.level":            "LOG_LEVEL",
	"log.format":           "LOG_FORMAT",
	"log.app":              "APP_NAME",
	"rate_limit.rps":       "RATE_LIMIT_RPS",
	"rate_limit.burst":     "RATE_LIMIT_BURST",
}

// Load lee la configuración. path vacío = sin archivo; si se indica, debe existir.
func Load(path string) (*Config, error) {
	return load(viper.New(), path)
}

// LoadWith permite a la CLI pasar un viper con flags ya enlazados.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	return load(v, path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "pet-registry")
	v.SetDefault("rate_limit.rps", 0)
	v.SetDefault("rate_limit.burst", 0)

	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", name, err)
		}
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			parts := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				parts = append(parts, fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return nil, fmt.Errorf("invalid config: %s", strings.Join(parts, ", "))
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
