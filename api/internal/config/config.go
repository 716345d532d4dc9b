package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	// LLMProvider selects the completion engine: "gemini" (default) or "openai".
	LLMProvider string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8000"),

		LLMProvider: getEnv("LLM_PROVIDER", "gemini"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	// The selected provider's credential is a fatal startup condition.
	switch cfg.LLMProvider {
	case "openai":
		cfg.OpenAIAPIKey = mustEnv("OPENAI_API_KEY")
	default:
		cfg.GeminiAPIKey = mustEnv("GEMINI_API_KEY")
	}
	return cfg
}
