package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        int    `env:"PORT" envDefault:"3000"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"5"`

	// Inbound email. Recipient addresses look like
	// <prefix>+<workspace-id>@<domain>.
	InboundPrefix string `env:"INBOUND_PREFIX" envDefault:"inbound"`

	// Draft generation backend: "stub" or "openai"
	AIBackend   string `env:"AI_BACKEND" envDefault:"stub"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Pipeline tuning
	ContextMessages  int `env:"CONTEXT_MESSAGES" envDefault:"10"`
	KBWorkspaceLimit int `env:"KB_WORKSPACE_LIMIT" envDefault:"2"`
	KBPropertyLimit  int `env:"KB_PROPERTY_LIMIT" envDefault:"2"`
	KBFallbackLimit  int `env:"KB_FALLBACK_LIMIT" envDefault:"3"`

	// Telegram ops notifications (optional)
	NotifyBotToken        string `env:"NOTIFY_BOT_TOKEN"`
	NotifyChatID          int64  `env:"NOTIFY_CHAT_ID"`
	NotifyTopicEscalation int    `env:"NOTIFY_TOPIC_ESCALATION"`
	NotifyTopicError      int    `env:"NOTIFY_TOPIC_ERROR"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
