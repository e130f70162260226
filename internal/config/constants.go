package config

import "time"

const (
	// Keyword extraction
	MaxKeywords   = 5
	MinKeywordLen = 4

	// Draft generation deadline per request
	GenerateTimeout = 30 * time.Second

	// LLM composer prompt budget (tokens, cl100k_base)
	MaxPromptTokens = 4096

	// Telegram notification send timeout
	NotifyTimeout = 10 * time.Second

	// HTTP server
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second

	// Model identifier recorded on drafts from the rule-based composer
	StubModelName = "rules-v1"
)
