package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved client, renderer and service configuration.
type Config struct {
	APIURL          string
	Token           string
	EscapeProseText bool
	Sanitize        bool
	PreviewWidth    int
	PollInterval    time.Duration
	ServeAddr       string
	RedisAddr       string
	RedisTTL        time.Duration
	LogLevel        slog.Level
	TranscriptDir   string
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// A missing config file is not an error; an unreadable one is.
func Load(v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "lessonmark"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lessonmark"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// LESSONMARK_* overrides; nested keys use underscores (LESSONMARK_REDIS_ADDR).
	v.SetEnvPrefix("lessonmark")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("transcript_dir")) == "" {
		v.Set("transcript_dir", defaultTranscriptDir())
	}
	return nil
}

// Resolve validates v and returns the typed configuration.
func Resolve(v *viper.Viper) (Config, error) {
	if err := CheckConfigValidity(v); err != nil {
		return Config{}, err
	}
	level, _ := ParseLevel(v.GetString("log.level"))
	return Config{
		APIURL:          strings.TrimRight(v.GetString("api_url"), "/"),
		Token:           v.GetString("token"),
		EscapeProseText: v.GetBool("render.escape_prose_text"),
		Sanitize:        v.GetBool("render.sanitize"),
		PreviewWidth:    v.GetInt("preview.width"),
		PollInterval:    v.GetDuration("chat.poll_interval"),
		ServeAddr:       v.GetString("serve.addr"),
		RedisAddr:       v.GetString("redis.addr"),
		RedisTTL:        v.GetDuration("redis.ttl"),
		LogLevel:        level,
		TranscriptDir:   expandHome(v.GetString("transcript_dir")),
	}, nil
}

// CheckConfigValidity reports every invalid value at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if u, err := url.Parse(v.GetString("api_url")); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		add("api_url must be an http or https URL")
	}
	if v.GetInt("preview.width") < 0 {
		add("preview.width must not be negative")
	}
	if v.GetDuration("chat.poll_interval") < time.Second {
		add("chat.poll_interval must be at least 1s")
	}
	if strings.TrimSpace(v.GetString("serve.addr")) == "" {
		add("serve.addr is required")
	}
	if v.GetDuration("redis.ttl") < 0 {
		add("redis.ttl must not be negative")
	}
	if _, err := ParseLevel(v.GetString("log.level")); err != nil {
		add("log.level: %v", err)
	}
	if strings.TrimSpace(v.GetString("transcript_dir")) == "" {
		add("transcript_dir is required")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "lessonmark", "config.toml")
}

// defaultTranscriptDir resolves ~/.lessonmark/transcripts.
func defaultTranscriptDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lessonmark", "transcripts")
}

func expandHome(dir string) string {
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[1:])
		}
	}
	return dir
}
