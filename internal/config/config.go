package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Monitor       MonitorConfig
	Idle          IdleConfig
	Reminders     RemindersConfig
	Assistant     AssistantConfig
	Notifications NotificationsConfig
	Display       DisplayConfig
	Storage       StorageConfig
	Profile       ProfileConfig
}

type MonitorConfig struct {
	MetricIntervalSeconds int     `toml:"metric_interval_seconds"`
	StartScore            float64 `toml:"start_score"`
	StartOnLaunch         bool    `toml:"start_on_launch"`
}

type IdleConfig struct {
	CheckIntervalMinutes int  `toml:"check_interval_minutes"`
	StretchAfterMinutes  int  `toml:"stretch_after_minutes"`
	EyeAfterMinutes      int  `toml:"eye_after_minutes"`
	EyeRepeat            bool `toml:"eye_repeat"`
}

type RemindersConfig struct {
	Seed  bool `toml:"seed"`
	Recur bool `toml:"recur"`
}

type AssistantConfig struct {
	BaseURL     string  `toml:"base_url"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
}

type NotificationsConfig struct {
	SystemNotify bool `toml:"system_notify"`
	DedupMinutes int  `toml:"dedup_minutes"`
}

type DisplayConfig struct {
	EventBufferSize int `toml:"event_buffer_size"`
	RefreshRateMS   int `toml:"refresh_rate_ms"`
}

type StorageConfig struct {
	DBPath        string `toml:"db_path"`
	RetentionDays int    `toml:"retention_days"`
}

type ProfileConfig struct {
	UserID      string `toml:"user_id"`
	DisplayName string `toml:"display_name"`
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ergotop", "config.toml")
}

// DefaultPath returns the config file location honored by Load.
func DefaultPath() string {
	return defaultConfigPath()
}

func Load() (*LoadResult, error) {
	return LoadFrom(defaultConfigPath())
}

// WriteDefault writes the default configuration as TOML to path,
// creating parent directories as needed. It refuses to overwrite an
// existing file. The assistant API key is never part of the file; it
// comes from the environment only.
func WriteDefault(path string) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file already exists: %s", path)
		}
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	file := tomlFile{
		Monitor:       &cfg.Monitor,
		Idle:          &cfg.Idle,
		Reminders:     &cfg.Reminders,
		Assistant:     &cfg.Assistant,
		Notifications: &cfg.Notifications,
		Display:       &cfg.Display,
		Storage:       &cfg.Storage,
		Profile:       &cfg.Profile,
	}
	if err := toml.NewEncoder(f).Encode(file); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func LoadFrom(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			return &LoadResult{Config: cfg}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromString(string(data))
}

type tomlFile struct {
	Monitor       *MonitorConfig       `toml:"monitor"`
	Idle          *IdleConfig          `toml:"idle"`
	Reminders     *RemindersConfig     `toml:"reminders"`
	Assistant     *AssistantConfig     `toml:"assistant"`
	Notifications *NotificationsConfig `toml:"notifications"`
	Display       *DisplayConfig       `toml:"display"`
	Storage       *StorageConfig       `toml:"storage"`
	Profile       *ProfileConfig       `toml:"profile"`
}

func LoadFromString(data string) (*LoadResult, error) {
	cfg := DefaultConfig()
	result := &LoadResult{Config: cfg}

	if data == "" {
		return result, nil
	}

	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	knownTopLevel := map[string]bool{
		"monitor":       true,
		"idle":          true,
		"reminders":     true,
		"assistant":     true,
		"notifications": true,
		"display":       true,
		"storage":       true,
		"profile":       true,
	}
	for key := range raw {
		if !knownTopLevel[key] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key))
		}
	}

	var tf tomlFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	mergeFromRaw(&result.Config, &tf, raw)

	if err := validate(&result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

// mergeFromRaw applies only keys actually present in the file, so a
// partial config keeps defaults for everything it omits. This includes
// booleans and zero values, which a plain struct merge would clobber.
func mergeFromRaw(cfg *Config, tf *tomlFile, raw map[string]any) {
	if tf.Monitor != nil {
		if section, ok := rawSection(raw, "monitor"); ok {
			if _, exists := section["metric_interval_seconds"]; exists {
				cfg.Monitor.MetricIntervalSeconds = tf.Monitor.MetricIntervalSeconds
			}
			if _, exists := section["start_score"]; exists {
				cfg.Monitor.StartScore = tf.Monitor.StartScore
			}
			if _, exists := section["start_on_launch"]; exists {
				cfg.Monitor.StartOnLaunch = tf.Monitor.StartOnLaunch
			}
		}
	}
	if tf.Idle != nil {
		if section, ok := rawSection(raw, "idle"); ok {
			if _, exists := section["check_interval_minutes"]; exists {
				cfg.Idle.CheckIntervalMinutes = tf.Idle.CheckIntervalMinutes
			}
			if _, exists := section["stretch_after_minutes"]; exists {
				cfg.Idle.StretchAfterMinutes = tf.Idle.StretchAfterMinutes
			}
			if _, exists := section["eye_after_minutes"]; exists {
				cfg.Idle.EyeAfterMinutes = tf.Idle.EyeAfterMinutes
			}
			if _, exists := section["eye_repeat"]; exists {
				cfg.Idle.EyeRepeat = tf.Idle.EyeRepeat
			}
		}
	}
	if tf.Reminders != nil {
		if section, ok := rawSection(raw, "reminders"); ok {
			if _, exists := section["seed"]; exists {
				cfg.Reminders.Seed = tf.Reminders.Seed
			}
			if _, exists := section["recur"]; exists {
				cfg.Reminders.Recur = tf.Reminders.Recur
			}
		}
	}
	if tf.Assistant != nil {
		if section, ok := rawSection(raw, "assistant"); ok {
			if _, exists := section["base_url"]; exists {
				cfg.Assistant.BaseURL = tf.Assistant.BaseURL
			}
			if _, exists := section["model"]; exists {
				cfg.Assistant.Model = tf.Assistant.Model
			}
			if _, exists := section["max_tokens"]; exists {
				cfg.Assistant.MaxTokens = tf.Assistant.MaxTokens
			}
			if _, exists := section["temperature"]; exists {
				cfg.Assistant.Temperature = tf.Assistant.Temperature
			}
		}
	}
	if tf.Notifications != nil {
		if section, ok := rawSection(raw, "notifications"); ok {
			if _, exists := section["system_notify"]; exists {
				cfg.Notifications.SystemNotify = tf.Notifications.SystemNotify
			}
			if _, exists := section["dedup_minutes"]; exists {
				cfg.Notifications.DedupMinutes = tf.Notifications.DedupMinutes
			}
		}
	}
	if tf.Display != nil {
		if section, ok := rawSection(raw, "display"); ok {
			if _, exists := section["event_buffer_size"]; exists {
				cfg.Display.EventBufferSize = tf.Display.EventBufferSize
			}
			if _, exists := section["refresh_rate_ms"]; exists {
				cfg.Display.RefreshRateMS = tf.Display.RefreshRateMS
			}
		}
	}
	if tf.Storage != nil {
		if section, ok := rawSection(raw, "storage"); ok {
			if _, exists := section["db_path"]; exists {
				cfg.Storage.DBPath = tf.Storage.DBPath
			}
			if _, exists := section["retention_days"]; exists {
				cfg.Storage.RetentionDays = tf.Storage.RetentionDays
			}
		}
	}
	if tf.Profile != nil {
		if section, ok := rawSection(raw, "profile"); ok {
			if _, exists := section["user_id"]; exists {
				cfg.Profile.UserID = tf.Profile.UserID
			}
			if _, exists := section["display_name"]; exists {
				cfg.Profile.DisplayName = tf.Profile.DisplayName
			}
		}
	}
}

func rawSection(raw map[string]any, key string) (map[string]any, bool) {
	v, ok := raw[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.Monitor.MetricIntervalSeconds < 1 {
		errs = append(errs, fmt.Sprintf("monitor metric_interval_seconds must be positive, got %d", cfg.Monitor.MetricIntervalSeconds))
	}
	if cfg.Monitor.StartScore < 0 || cfg.Monitor.StartScore > 100 {
		errs = append(errs, fmt.Sprintf("monitor start_score must be 0-100, got %f", cfg.Monitor.StartScore))
	}

	if cfg.Idle.CheckIntervalMinutes < 1 {
		errs = append(errs, fmt.Sprintf("idle check_interval_minutes must be positive, got %d", cfg.Idle.CheckIntervalMinutes))
	}
	if cfg.Idle.StretchAfterMinutes < 1 {
		errs = append(errs, fmt.Sprintf("idle stretch_after_minutes must be positive, got %d", cfg.Idle.StretchAfterMinutes))
	}
	if cfg.Idle.EyeAfterMinutes < 1 {
		errs = append(errs, fmt.Sprintf("idle eye_after_minutes must be positive, got %d", cfg.Idle.EyeAfterMinutes))
	}

	if cfg.Assistant.MaxTokens < 1 {
		errs = append(errs, fmt.Sprintf("assistant max_tokens must be positive, got %d", cfg.Assistant.MaxTokens))
	}
	if cfg.Assistant.Temperature < 0 || cfg.Assistant.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("assistant temperature must be 0-2, got %f", cfg.Assistant.Temperature))
	}

	if cfg.Notifications.DedupMinutes < 0 {
		errs = append(errs, fmt.Sprintf("notifications dedup_minutes must not be negative, got %d", cfg.Notifications.DedupMinutes))
	}

	if cfg.Display.EventBufferSize < 1 {
		errs = append(errs, fmt.Sprintf("display event_buffer_size must be positive, got %d", cfg.Display.EventBufferSize))
	}
	if cfg.Display.RefreshRateMS < 1 {
		errs = append(errs, fmt.Sprintf("display refresh_rate_ms must be positive, got %d", cfg.Display.RefreshRateMS))
	}

	if cfg.Storage.RetentionDays < 1 {
		errs = append(errs, fmt.Sprintf("storage retention_days must be positive, got %d", cfg.Storage.RetentionDays))
	}

	if strings.TrimSpace(cfg.Profile.UserID) == "" {
		errs = append(errs, "profile user_id must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation error: %s", strings.Join(errs, "; "))
	}
	return nil
}
