package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	// Pipeline knobs
	AgentTimeoutSec   int
	MinLodgingResults int

	// Sharing policy: when true an invite must be accepted before the
	// grantee can read the plan or the message log.
	RequireAcceptedRead bool

	// Optional rate-table files for the offline planner
	RatesCSV  string
	RatesXLSX string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:                get("PORT", "8080"),
		Timezone:            get("TZ", "UTC"),
		DBPath:              get("DB_PATH", "tripmind.db"),
		LLMEndpoint:         get("LLM_ENDPOINT", ""),
		LLMAPIKey:           get("LLM_API_KEY", ""),
		LLMModel:            get("LLM_MODEL", "gpt-4o-mini"),
		EmbEndpoint:         get("EMB_ENDPOINT", ""),
		EmbAPIKey:           get("EMB_API_KEY", ""),
		EmbModel:            get("EMB_MODEL", "text-embedding-3-small"),
		AgentTimeoutSec:     getInt("AGENT_TIMEOUT_SEC", 30),
		MinLodgingResults:   getInt("MIN_LODGING_RESULTS", 3),
		RequireAcceptedRead: get("REQUIRE_ACCEPTED_READ", "false") == "true",
		RatesCSV:            get("RATES_CSV", ""),
		RatesXLSX:           get("RATES_XLSX", ""),
	}
	log.Printf("[cfg] port=%s db=%s llm=%s accepted_read=%v", cfg.Port, cfg.DBPath, cfg.LLMModel, cfg.RequireAcceptedRead)
	return cfg
}
