// internal/config/config.go
//
// Settings for a guess session and its logging.
// Sources, later ones overriding earlier ones:
//   1. Defaults (bounds 1–10, random secret, warn level, JSON logs).
//   2. Environment (a .env file is loaded by main before this runs):
//        GUESS_LOW, GUESS_HIGH, GUESS_SECRET, GUESS_VALUE, GUESS_DAILY_SALT,
//        LOG_LEVEL, LOG_FORMAT
//   3. An optional YAML file (see yamlConfig).
//   4. Command-line flags, applied by the cli package before Validate.
//
// low <= high is checked here; a violation is a configuration error and the
// session is never started.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/secret"
)

// Config holds everything needed to start one session.
type Config struct {
	Low       int64  `validate:"ltefield=High"`
	High      int64  `validate:"gtefield=Low"`
	Secret    string `validate:"oneof=random fixed daily"`
	Value     int64  // fixed secret, only with Secret == "fixed"
	DailySalt string `validate:"required_if=Secret daily"`
	LogLevel  string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat string `validate:"oneof=json console"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Low:       1,
		High:      10,
		Secret:    secret.ModeRandom,
		DailySalt: "local_dev_salt",
		LogLevel:  "warn",
		LogFormat: "json",
	}
}

// Load builds a Config from defaults, the environment and, if path is not empty,
// a YAML file. The result is validated.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read is Load without validation, for callers that apply more overrides first.
func Read(path string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate checks field constraints, including low <= high and a fixed secret
// that lies inside the bounds.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s", describe(verrs[0], c))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Secret == secret.ModeFixed && !c.Bounds().Contains(c.Value) {
		return fmt.Errorf("invalid config: fixed secret %d is outside %d-%d", c.Value, c.Low, c.High)
	}
	return nil
}

// Bounds returns the configured range.
func (c Config) Bounds() game.Bounds {
	return game.Bounds{Low: c.Low, High: c.High}
}

// describe renders the first validation failure in terms of config keys.
func describe(fe validator.FieldError, c Config) string {
	switch fe.Tag() {
	case "ltefield", "gtefield":
		return fmt.Sprintf("low (%d) must not be greater than high (%d)", c.Low, c.High)
	case "oneof":
		return fmt.Sprintf("%s %q must be one of [%s]", fe.Field(), fe.Value(), fe.Param())
	case "required_if":
		return fmt.Sprintf("%s is required when %s", fe.Field(), fe.Param())
	default:
		return fe.Error()
	}
}

func (c *Config) applyEnv() error {
	var err error
	if c.Low, err = envInt("GUESS_LOW", c.Low); err != nil {
		return err
	}
	if c.High, err = envInt("GUESS_HIGH", c.High); err != nil {
		return err
	}
	if c.Value, err = envInt("GUESS_VALUE", c.Value); err != nil {
		return err
	}
	c.Secret = getEnv("GUESS_SECRET", c.Secret)
	c.DailySalt = getEnv("GUESS_DAILY_SALT", c.DailySalt)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	return nil
}

// yamlConfig is the on-disk shape; nil fields leave the current value alone.
type yamlConfig struct {
	Low       *int64  `yaml:"low"`
	High      *int64  `yaml:"high"`
	Secret    *string `yaml:"secret"`
	Value     *int64  `yaml:"value"`
	DailySalt *string `yaml:"daily_salt"`
	Log       struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	setInt(&c.Low, dto.Low)
	setInt(&c.High, dto.High)
	setInt(&c.Value, dto.Value)
	setString(&c.Secret, dto.Secret)
	setString(&c.DailySalt, dto.DailySalt)
	setString(&c.LogLevel, dto.Log.Level)
	setString(&c.LogFormat, dto.Log.Format)
	return nil
}

func setInt(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as a base-10 int64, or returns def if unset/empty.
func envInt(k string, def int64) (int64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
