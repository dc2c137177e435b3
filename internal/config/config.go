// Package config resolves the server's listen configuration from the
// environment. Only PORT is read.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	constants "github.com/Alarion239/devops-webapp/internal/constants"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidPort = errors.New("invalid port")

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Port int `validate:"min=1,max=65535"`
}

// Addr returns the listen address for all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFromEnv(os.LookupEnv)
}

// LoadFromEnv resolves the configuration through lookup. An unset or empty
// PORT falls back to the default.
func LoadFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Port: constants.DEFAULT_PORT}

	raw, ok := lookup(constants.PORT)
	raw = strings.TrimSpace(raw)
	if ok && raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidPort, constants.PORT, raw)
		}
		cfg.Port = port
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s=%d must be between 1 and 65535: %v", ErrInvalidPort, constants.PORT, cfg.Port, err)
	}

	return cfg, nil
}
