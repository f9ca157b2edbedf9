package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Monitor.MetricIntervalSeconds != 3 {
		t.Errorf("default metric_interval_seconds: want 3, got %d", cfg.Monitor.MetricIntervalSeconds)
	}
	if cfg.Monitor.StartScore != 85 {
		t.Errorf("default start_score: want 85, got %f", cfg.Monitor.StartScore)
	}
	if cfg.Idle.CheckIntervalMinutes != 5 {
		t.Errorf("default check_interval_minutes: want 5, got %d", cfg.Idle.CheckIntervalMinutes)
	}
	if cfg.Idle.StretchAfterMinutes != 30 {
		t.Errorf("default stretch_after_minutes: want 30, got %d", cfg.Idle.StretchAfterMinutes)
	}
	if cfg.Idle.EyeAfterMinutes != 120 {
		t.Errorf("default eye_after_minutes: want 120, got %d", cfg.Idle.EyeAfterMinutes)
	}
	if !cfg.Idle.EyeRepeat {
		t.Error("default eye_repeat: want true")
	}
	if !cfg.Reminders.Seed {
		t.Error("default reminders seed: want true")
	}
	if cfg.Reminders.Recur {
		t.Error("default reminders recur: want false")
	}
	if cfg.Assistant.Model != "gpt-4o-mini" {
		t.Errorf("default assistant model: got %q", cfg.Assistant.Model)
	}
	if !cfg.Notifications.SystemNotify {
		t.Error("default system_notify: want true")
	}
	if cfg.Storage.RetentionDays != 90 {
		t.Errorf("default retention_days: want 90, got %d", cfg.Storage.RetentionDays)
	}
	if cfg.Profile.UserID == "" {
		t.Error("default user_id must not be empty")
	}

	if err := validate(&cfg); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromString_PartialOverride(t *testing.T) {
	result, err := LoadFromString(`
[monitor]
metric_interval_seconds = 10

[idle]
eye_repeat = false

[storage]
retention_days = 30
`)
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}

	cfg := result.Config
	if cfg.Monitor.MetricIntervalSeconds != 10 {
		t.Errorf("metric_interval_seconds: want 10, got %d", cfg.Monitor.MetricIntervalSeconds)
	}
	if cfg.Idle.EyeRepeat {
		t.Error("eye_repeat: want false after override")
	}
	if cfg.Storage.RetentionDays != 30 {
		t.Errorf("retention_days: want 30, got %d", cfg.Storage.RetentionDays)
	}

	// Untouched keys keep defaults.
	if cfg.Monitor.StartScore != 85 {
		t.Errorf("start_score should keep default 85, got %f", cfg.Monitor.StartScore)
	}
	if cfg.Idle.StretchAfterMinutes != 30 {
		t.Errorf("stretch_after_minutes should keep default 30, got %d", cfg.Idle.StretchAfterMinutes)
	}
}

func TestLoadFromString_FalseOverridesTrueDefault(t *testing.T) {
	result, err := LoadFromString(`
[notifications]
system_notify = false

[reminders]
seed = false
`)
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if result.Config.Notifications.SystemNotify {
		t.Error("system_notify = false in file must override the true default")
	}
	if result.Config.Reminders.Seed {
		t.Error("seed = false in file must override the true default")
	}
}

func TestLoadFromString_UnknownKeyWarns(t *testing.T) {
	result, err := LoadFromString(`
[monitor]
metric_interval_seconds = 5

[telemetry]
enabled = true
`)
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "telemetry") {
		t.Errorf("warning should name the unknown key, got %q", result.Warnings[0])
	}
}

func TestLoadFromString_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero metric interval", "[monitor]\nmetric_interval_seconds = 0"},
		{"score out of range", "[monitor]\nstart_score = 140.0"},
		{"zero idle check", "[idle]\ncheck_interval_minutes = 0"},
		{"negative stretch threshold", "[idle]\nstretch_after_minutes = -1"},
		{"zero max tokens", "[assistant]\nmax_tokens = 0"},
		{"temperature out of range", "[assistant]\ntemperature = 3.0"},
		{"zero buffer", "[display]\nevent_buffer_size = 0"},
		{"zero retention", "[storage]\nretention_days = 0"},
		{"empty user id", "[profile]\nuser_id = \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromString(tt.toml); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadFromString_CollectsAllErrors(t *testing.T) {
	_, err := LoadFromString(`
[monitor]
metric_interval_seconds = 0

[storage]
retention_days = -5
`)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "metric_interval_seconds") || !strings.Contains(msg, "retention_days") {
		t.Errorf("expected both problems reported, got %q", msg)
	}
}

func TestLoadFromString_MalformedTOML(t *testing.T) {
	if _, err := LoadFromString("[monitor\nbroken"); err == nil {
		t.Error("expected parse error for malformed TOML")
	}
}

func TestLoadFromString_Empty(t *testing.T) {
	result, err := LoadFromString("")
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if result.Config != DefaultConfig() {
		t.Error("empty input should yield defaults")
	}
}

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	result, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if result.Config != DefaultConfig() {
		t.Error("missing file should yield defaults")
	}
	if len(result.Warnings) != 0 {
		t.Errorf("missing file should not warn, got %v", result.Warnings)
	}
}

func TestLoadFrom_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[display]\nrefresh_rate_ms = 250\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	result, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if result.Config.Display.RefreshRateMS != 250 {
		t.Errorf("refresh_rate_ms: want 250, got %d", result.Config.Display.RefreshRateMS)
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	result, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if result.Config != DefaultConfig() {
		t.Error("written file should load back as the defaults")
	}
	if len(result.Warnings) != 0 {
		t.Errorf("written file should not warn, got %v", result.Warnings)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if strings.Contains(strings.ToLower(string(data)), "api_key") {
		t.Error("config file must never contain an API key field")
	}
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display]\n"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Fatal("WriteDefault should refuse to overwrite an existing file")
	}
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("ERGOTOP_OPENAI_API_KEY", "sk-test")
	s, err := LoadSecrets()
	if err != nil {
		t.Fatalf("LoadSecrets: %v", err)
	}
	if s.AssistantAPIKey != "sk-test" {
		t.Errorf("api key: got %q", s.AssistantAPIKey)
	}

	t.Setenv("ERGOTOP_OPENAI_API_KEY", "")
	s, err = LoadSecrets()
	if err != nil {
		t.Fatalf("LoadSecrets with unset key: %v", err)
	}
	if s.AssistantAPIKey != "" {
		t.Errorf("expected empty key, got %q", s.AssistantAPIKey)
	}
}
