// Package config loads service settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string        `env:"DATABASE_URL,required,notEmpty"`
	ListenAddr        string        `env:"LISTEN_ADDR" envDefault:"0.0.0.0:50051"`
	GRPCAuthKey       string        `env:"GRPC_AUTH_KEY"`
	GRPCAuthValue     string        `env:"GRPC_AUTH_VALUE"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"LOG_FORMAT" envDefault:"text"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// MissingEnvError reports a required variable that is not set.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing environment variable %s", e.Key)
}

// InvalidEnvError reports a variable whose value does not fit its field.
type InvalidEnvError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidEnvError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *InvalidEnvError) Unwrap() error {
	return e.Err
}

// Load reads the given dotenv files, or ./.env when none are given and
// it exists, and then the process environment. Non-empty process
// variables win over file entries.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}

	environ := map[string]string{}
	if len(files) > 0 {
		var err error
		environ, err = godotenv.Read(files...)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read dotenv: %w", err)
		}
		if environ == nil {
			environ = map[string]string{}
		}
	}

	for k, v := range env.ToMap(os.Environ()) {
		if v != "" {
			environ[k] = v
		}
	}

	return FromMap(environ)
}

// FromMap fills a Config from environ alone.
func FromMap(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, translate(err, environ)
	}

	return cfg, nil
}

// translate turns the first error env reports into MissingEnvError or
// InvalidEnvError.
func translate(err error, environ map[string]string) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) || len(agg.Errors) == 0 {
		return err
	}

	switch e := agg.Errors[0].(type) {
	case env.VarIsNotSetError:
		return &MissingEnvError{Key: e.Key}
	case env.EmptyVarError:
		return &MissingEnvError{Key: e.Key}
	case env.ParseError:
		key := envKey(e.Name)
		return &InvalidEnvError{Key: key, Value: environ[key], Err: e.Err}
	default:
		return err
	}
}

func envKey(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}

	key, _, _ := strings.Cut(f.Tag.Get("env"), ",")
	return key
}
