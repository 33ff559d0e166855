package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/valpere/perevodchik/internal/inference"
	"github.com/valpere/perevodchik/internal/judge"
	"github.com/valpere/perevodchik/internal/translator"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Endpoint != inference.DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.Addr != ":5000" {
		t.Errorf("expected ':5000', got %q", cfg.Addr)
	}
	if cfg.Timeout != 0 {
		t.Errorf("expected no timeout, got %v", cfg.Timeout)
	}
	if cfg.TranslationModel != translator.DefaultModel || cfg.JudgeModel != judge.DefaultModel {
		t.Errorf("unexpected models %q / %q", cfg.TranslationModel, cfg.JudgeModel)
	}
	if cfg.Locale != "ru" {
		t.Errorf("expected locale 'ru', got %q", cfg.Locale)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MENTORPIECE_API_KEY", "TEST_KEY")
	t.Setenv("MOCK_MENTORPIECE", "TRUE")
	t.Setenv("MENTORPIECE_TIMEOUT", "15s")
	t.Setenv("PEREVODCHIK_JOURNAL", "/tmp/journal.db")

	cfg, err := Load(NewViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "TEST_KEY" {
		t.Errorf("expected API key from env, got %q", cfg.APIKey)
	}
	if !cfg.Mock {
		t.Error("expected mock mode from env")
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("expected 15s, got %v", cfg.Timeout)
	}
	if cfg.Journal != "/tmp/journal.db" {
		t.Errorf("unexpected journal %q", cfg.Journal)
	}
}

func TestLoad_InvalidEndpoint(t *testing.T) {
	v := NewViper()
	v.Set(KeyEndpoint, "not-a-url")

	_, err := Load(v)
	if err == nil {
		t.Fatal("expected error for endpoint without scheme")
	}
	if !strings.Contains(err.Error(), "endpoint") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoad_NegativeTimeout(t *testing.T) {
	v := NewViper()
	v.Set(KeyTimeout, "-1s")

	if _, err := Load(v); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestLoad_UnitlessTimeout(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"15", 15 * time.Second},
		{"2.5", 2500 * time.Millisecond},
		{"0", 0},
		{"1m30s", 90 * time.Second},
		{"250ms", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("MENTORPIECE_TIMEOUT", tt.value)

			cfg, err := Load(NewViper())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Timeout != tt.want {
				t.Errorf("expected %v, got %v", tt.want, cfg.Timeout)
			}
		})
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	for _, value := range []string{"soon", "500ns", "-3"} {
		t.Run(value, func(t *testing.T) {
			v := NewViper()
			v.Set(KeyTimeout, value)

			_, err := Load(v)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "timeout") {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestLoad_EmptyModel(t *testing.T) {
	v := NewViper()
	v.Set(KeyJudgeModel, " ")

	if _, err := Load(v); err == nil {
		t.Error("expected error for empty judge model")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "endpoint: http://localhost:9999/v1/process-ai-request\naddr: \":8080\"\njudge_model: judge-small\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoint != "http://localhost:9999/v1/process-ai-request" {
		t.Errorf("unexpected endpoint %q", cfg.Endpoint)
	}
	if cfg.Addr != ":8080" || cfg.JudgeModel != "judge-small" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if err := ReadFile(NewViper(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
	if err := ReadFile(NewViper(), ""); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
}

func TestLoadDotenv(t *testing.T) {
	const key = "PEREVODCHIK_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	LoadDotenv(path, filepath.Join(t.TempDir(), "missing.env"))

	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
