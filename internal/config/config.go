package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/perevodchik/internal/inference"
	"github.com/valpere/perevodchik/internal/judge"
	"github.com/valpere/perevodchik/internal/translator"
)

// Config keys. Each is also bound to the environment variable listed in envKeys.
const (
	KeyAPIKey           = "api_key"
	KeyEndpoint         = "endpoint"
	KeyMock             = "mock"
	KeyTimeout          = "timeout"
	KeyAddr             = "addr"
	KeyJournal          = "journal"
	KeyLocale           = "locale"
	KeyTranslationModel = "translation_model"
	KeyJudgeModel       = "judge_model"
	KeyDebug            = "debug"
)

var envKeys = map[string]string{
	KeyAPIKey:           "MENTORPIECE_API_KEY",
	KeyEndpoint:         "MENTORPIECE_ENDPOINT",
	KeyMock:             "MOCK_MENTORPIECE",
	KeyTimeout:          "MENTORPIECE_TIMEOUT",
	KeyAddr:             "PEREVODCHIK_ADDR",
	KeyJournal:          "PEREVODCHIK_JOURNAL",
	KeyLocale:           "PEREVODCHIK_LOCALE",
	KeyTranslationModel: "PEREVODCHIK_TRANSLATION_MODEL",
	KeyJudgeModel:       "PEREVODCHIK_JUDGE_MODEL",
	KeyDebug:            "PEREVODCHIK_DEBUG",
}

type Config struct {
	APIKey           string        `mapstructure:"api_key"`
	Endpoint         string        `mapstructure:"endpoint"`
	Mock             bool          `mapstructure:"mock"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Addr             string        `mapstructure:"addr"`
	Journal          string        `mapstructure:"journal"`
	Locale           string        `mapstructure:"locale"`
	TranslationModel string        `mapstructure:"translation_model"`
	JudgeModel       string        `mapstructure:"judge_model"`
	Debug            bool          `mapstructure:"debug"`
}

// LoadDotenv loads .env files into the process environment. Missing files
// are fine: variables may come from Docker or CI instead. Existing variables
// are never overridden.
func LoadDotenv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			slog.Debug("dotenv file not loaded", "file", f, "error", err)
		}
	}
}

// NewViper returns a viper instance with defaults and environment bindings.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyEndpoint, inference.DefaultEndpoint)
	v.SetDefault(KeyMock, false)
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyAddr, ":5000")
	v.SetDefault(KeyJournal, "")
	v.SetDefault(KeyLocale, "ru")
	v.SetDefault(KeyTranslationModel, translator.DefaultModel)
	v.SetDefault(KeyJudgeModel, judge.DefaultModel)
	v.SetDefault(KeyDebug, false)

	for key, env := range envKeys {
		// BindEnv only fails when called without arguments.
		_ = v.BindEnv(key, env)
	}

	return v
}

// ReadFile merges a yaml/toml/json config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		APIKey:           strings.TrimSpace(v.GetString(KeyAPIKey)),
		Endpoint:         strings.TrimSpace(v.GetString(KeyEndpoint)),
		Mock:             v.GetBool(KeyMock),
		Addr:             v.GetString(KeyAddr),
		Journal:          v.GetString(KeyJournal),
		Locale:           v.GetString(KeyLocale),
		TranslationModel: v.GetString(KeyTranslationModel),
		JudgeModel:       v.GetString(KeyJudgeModel),
		Debug:            v.GetBool(KeyDebug),
	}

	timeout, err := parseTimeout(v.GetString(KeyTimeout))
	if err != nil {
		return nil, err
	}
	cfg.Timeout = timeout

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Endpoint == "" {
		c.Endpoint = inference.DefaultEndpoint
	}

	parsed, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("config: invalid endpoint (%q): %w", c.Endpoint, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid endpoint (%q): missing scheme or host", c.Endpoint)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	if c.Timeout > 0 && c.Timeout < time.Millisecond {
		return fmt.Errorf("config: timeout %s is below 1ms, use a unit such as \"15s\"", c.Timeout)
	}

	if strings.TrimSpace(c.TranslationModel) == "" || strings.TrimSpace(c.JudgeModel) == "" {
		return fmt.Errorf("config: translation and judge model names are required")
	}

	if c.APIKey == "" && !c.Mock {
		slog.Info("MENTORPIECE_API_KEY not set in environment")
	}

	return nil
}

// parseTimeout reads a duration ("15s", "1m30s") or a bare number of seconds
// ("15", "2.5"). Empty means no timeout.
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid timeout %q: %w", raw, err)
	}
	return d, nil
}
