// Package config loads client settings from defaults, an optional YAML file,
// an optional .env file and MAGICEDEN_* environment variables, in that
// order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	magiceden "github.com/magiceden-go/client-go"
)

// EnvPrefix is the prefix of environment variables read by Load.
// MAGICEDEN_BACKOFF_MAXELAPSED maps to backoff.maxelapsed.
const EnvPrefix = "MAGICEDEN_"

// Config is the complete client configuration.
type Config struct {
	API     APIConfig     `koanf:"api"`
	HTTP    HTTPConfig    `koanf:"http"`
	Backoff BackoffConfig `koanf:"backoff"`
	Log     LogConfig     `koanf:"log"`
}

// APIConfig identifies the API and the caller.
type APIConfig struct {
	Key     string `koanf:"key" validate:"required"`
	BaseURL string `koanf:"baseurl" validate:"required,url"`
}

// HTTPConfig tunes the HTTP transport.
type HTTPConfig struct {
	Timeout   time.Duration `koanf:"timeout" validate:"gt=0"`
	UserAgent string        `koanf:"useragent"`
}

// BackoffConfig is the retry policy for rate-limited requests.
type BackoffConfig struct {
	Initial     time.Duration `koanf:"initial" validate:"gt=0"`
	Multiplier  float64       `koanf:"multiplier" validate:"gte=1"`
	MaxInterval time.Duration `koanf:"maxinterval" validate:"gtefield=Initial"`
	MaxElapsed  time.Duration `koanf:"maxelapsed" validate:"gte=0"`
}

// LogConfig controls the logger built by Config.Logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty"`
}

// Source names the optional files Load reads. Empty paths are skipped, as
// are files that do not exist.
type Source struct {
	File   string
	DotEnv string
	// Environ replaces os.Environ, mainly for tests.
	Environ func() []string
}

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. .env file
// 3. YAML configuration file
// 4. Default values (lowest priority)
func Load(src Source) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if src.File != "" {
		if _, err := os.Stat(src.File); err == nil {
			if err := k.Load(file.Provider(src.File), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", src.File, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", src.File, err)
		}
	}

	if src.DotEnv != "" {
		vars, err := godotenv.Read(src.DotEnv)
		switch {
		case err == nil:
			if err := k.Load(confmap.Provider(dotEnvKeys(vars), "."), nil); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", src.DotEnv, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", src.DotEnv, err)
		}
	}

	environ := src.Environ
	if environ == nil {
		environ = os.Environ
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKey(key), value
		},
		EnvironFunc: environ,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	policy := magiceden.DefaultBackoffPolicy()
	defaults := map[string]any{
		"api.key":     "",
		"api.baseurl": magiceden.DefaultBaseURL,

		"http.timeout":   magiceden.DefaultTimeout.String(),
		"http.useragent": magiceden.DefaultUserAgent,

		"backoff.initial":     policy.InitialInterval.String(),
		"backoff.multiplier":  policy.Multiplier,
		"backoff.maxinterval": policy.MaxInterval.String(),
		"backoff.maxelapsed":  policy.MaxElapsedTime.String(),

		"log.level":  "info",
		"log.pretty": false,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}

// envKey converts MAGICEDEN_API_BASEURL to api.baseurl.
func envKey(name string) string {
	name = strings.TrimPrefix(name, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(name), "_", ".")
}

func dotEnvKeys(vars map[string]string) map[string]any {
	out := make(map[string]any, len(vars))
	for name, value := range vars {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		out[envKey(name)] = value
	}
	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg for missing or out-of-range values.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// BackoffPolicy returns the configured retry policy.
func (c *Config) BackoffPolicy() magiceden.BackoffPolicy {
	return magiceden.BackoffPolicy{
		InitialInterval: c.Backoff.Initial,
		Multiplier:      c.Backoff.Multiplier,
		MaxInterval:     c.Backoff.MaxInterval,
		MaxElapsedTime:  c.Backoff.MaxElapsed,
	}
}

// ClientOptions converts the configuration to client options. The API key
// is passed to magiceden.New separately.
func (c *Config) ClientOptions() []magiceden.Option {
	return []magiceden.Option{
		magiceden.WithBaseURL(c.API.BaseURL),
		magiceden.WithTimeout(c.HTTP.Timeout),
		magiceden.WithUserAgent(c.HTTP.UserAgent),
		magiceden.WithBackoff(c.BackoffPolicy()),
	}
}

// NewClient creates a client from the configuration. extra options are
// applied last.
func (c *Config) NewClient(extra ...magiceden.Option) (*magiceden.Client, error) {
	return magiceden.New(c.API.Key, append(c.ClientOptions(), extra...)...)
}

// Logger builds a logger writing to w at the configured level. Pretty
// output uses a console writer.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if c.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}
