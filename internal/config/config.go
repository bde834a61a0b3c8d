package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultApiUrl    = "https://api.github.com"
	DefaultUserAgent = "profilechecker"
	EnvPrefix        = "PROFILECHECKER"
	FileName         = "profilechecker"

	// MinWidgetTTL keeps the janitor, which sweeps every WidgetTTL/2, on a positive interval.
	MinWidgetTTL = time.Second
)

type Configuration struct {
	// Port is the port on which the web front end listens.
	Port uint16
	// ApiUrl is the base url of the GitHub REST API. Users are looked up at {ApiUrl}/users/{name}.
	ApiUrl *url.URL
	// UserAgent is sent with every outbound request; GitHub refuses requests without one.
	UserAgent string
	// RequestTimeout bounds a single lookup, including reading the response body.
	RequestTimeout time.Duration
	// StaticDir is the directory on which the stylesheet and other static files can be found.
	StaticDir string
	// Language selects the message catalog used to render status lines, e.g. "en" or "pt-BR".
	Language string
	// SessionKey signs and encrypts the visitor cookie. Must be 32 bytes long.
	SessionKey string
	// WidgetTTL is how long an idle visitor's widget is kept in memory.
	WidgetTTL time.Duration
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("api_url", DefaultApiUrl)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("static_dir", "static")
	v.SetDefault("language", "en")
	v.SetDefault("session_key", "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")
	v.SetDefault("widget_ttl", 30*time.Minute)
	v.SetDefault("debug", false)
}

// ReadConfig loads the configuration from an optional profilechecker.{yaml,toml,json} file found in the working
// directory or in $HOME/.config/profilechecker, overridden by PROFILECHECKER_* environment variables.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/profilechecker")
	return load(v)
}

func load(v *viper.Viper) (cfg Configuration, err error) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	}

	apiUrl, err := url.Parse(v.GetString("api_url"))
	if err != nil {
		return cfg, fmt.Errorf("invalid api_url: %w", err)
	}
	if apiUrl.Scheme == "" || apiUrl.Host == "" {
		return cfg, fmt.Errorf("invalid api_url %q: scheme and host are required", apiUrl)
	}

	cfg = Configuration{
		Port:           v.GetUint16("port"),
		ApiUrl:         apiUrl,
		UserAgent:      v.GetString("user_agent"),
		RequestTimeout: v.GetDuration("request_timeout"),
		StaticDir:      v.GetString("static_dir"),
		Language:       v.GetString("language"),
		SessionKey:     v.GetString("session_key"),
		WidgetTTL:      v.GetDuration("widget_ttl"),
		Debug:          v.GetBool("debug"),
	}

	if l := len(cfg.SessionKey); l != 32 {
		return cfg, fmt.Errorf("session_key must be 32 bytes long, got %d", l)
	}
	if cfg.WidgetTTL < MinWidgetTTL {
		return cfg, fmt.Errorf("widget_ttl must be at least %s, got %s", MinWidgetTTL, cfg.WidgetTTL)
	}
	return cfg, nil
}
