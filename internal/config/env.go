package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Secrets holds credentials read from the environment. They never live
// in the config file.
type Secrets struct {
	AssistantAPIKey string `env:"ERGOTOP_OPENAI_API_KEY"`
}

// LoadSecrets reads secrets from the environment. An unset key leaves
// the assistant in fallback-only mode; it is not an error.
func LoadSecrets() (Secrets, error) {
	var s Secrets
	if err := env.Parse(&s); err != nil {
		return Secrets{}, fmt.Errorf("parsing environment: %w", err)
	}
	return s, nil
}
