// Package config loads and validates the ergotop configuration file.
// A missing file yields defaults; a present file overrides only the
// keys it sets.
package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the built-in configuration used when no config
// file exists.
func DefaultConfig() Config {
	return Config{
		Monitor: MonitorConfig{
			MetricIntervalSeconds: 3,
			StartScore:            85,
			StartOnLaunch:         false,
		},
		Idle: IdleConfig{
			CheckIntervalMinutes: 5,
			StretchAfterMinutes:  30,
			EyeAfterMinutes:      120,
			EyeRepeat:            true,
		},
		Reminders: RemindersConfig{
			Seed:  true,
			Recur: false,
		},
		Assistant: AssistantConfig{
			BaseURL:     "https://api.openai.com/v1/chat/completions",
			Model:       "gpt-4o-mini",
			MaxTokens:   500,
			Temperature: 0.7,
		},
		Notifications: NotificationsConfig{
			SystemNotify: true,
			DedupMinutes: 5,
		},
		Display: DisplayConfig{
			EventBufferSize: 100,
			RefreshRateMS:   1000,
		},
		Storage: StorageConfig{
			DBPath:        defaultDBPath(),
			RetentionDays: 90,
		},
		Profile: ProfileConfig{
			UserID:      "local",
			DisplayName: "You",
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ergotop.db"
	}
	return filepath.Join(home, ".local", "share", "ergotop", "ergotop.db")
}
