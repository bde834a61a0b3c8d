package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if u := cfg.ApiUrl.String(); u != DefaultApiUrl {
		t.Errorf("expected api url %s, got %s", DefaultApiUrl, u)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.Language != "en" {
		t.Errorf("expected language en, got %s", cfg.Language)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profilechecker.yaml")
	content := []byte("api_url: http://localhost:9999\nlanguage: pt-BR\nwidget_ttl: 5m\nport: 3000\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROFILECHECKER_PORT", "4000")
	t.Setenv("PROFILECHECKER_DEBUG", "true")

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := load(v)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got := struct {
		Port      uint16
		ApiUrl    string
		Language  string
		WidgetTTL time.Duration
		Debug     bool
	}{cfg.Port, cfg.ApiUrl.String(), cfg.Language, cfg.WidgetTTL, cfg.Debug}
	expected := struct {
		Port      uint16
		ApiUrl    string
		Language  string
		WidgetTTL time.Duration
		Debug     bool
	}{4000, "http://localhost:9999", "pt-BR", 5 * time.Minute, true}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Error(diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"relative api url", "PROFILECHECKER_API_URL", "api.github.com"},
		{"short session key", "PROFILECHECKER_SESSION_KEY", "tooshort"},
		{"zero widget ttl", "PROFILECHECKER_WIDGET_TTL", "0s"},
		{"sub-second widget ttl", "PROFILECHECKER_WIDGET_TTL", "1ns"},
		{"negative widget ttl", "PROFILECHECKER_WIDGET_TTL", "-1m"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.val)
			if _, err := load(viper.New()); err == nil {
				t.Errorf("expected error for %s=%s", c.key, c.val)
			}
		})
	}
}
