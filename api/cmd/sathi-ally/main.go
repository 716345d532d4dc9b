package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"go.uber.org/zap"

	"sathi-ally/api/internal/coach"
	"sathi-ally/api/internal/coach/gemini"
	"sathi-ally/api/internal/coach/openai"
	"sathi-ally/api/internal/config"
	"sathi-ally/api/internal/handle"
	"sathi-ally/api/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zap:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --- Leaderboard store ---
	var board store.Leaderboard
	if dsn := resolveDSN(); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			logger.Fatal("sql.Open", zap.Error(err))
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		pg := store.NewPostgresLeaderboard(db)
		{
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.Fatal("db.Ping", zap.Error(err))
			}
			if err := pg.EnsureSchema(ctx); err != nil {
				logger.Fatal("leaderboard schema", zap.Error(err))
			}
		}
		logger.Info("db connected", zap.String("dsn", safeDSNSummary(dsn)))
		board = pg
	} else {
		logger.Warn("no DATABASE_URL; leaderboard kept in memory only")
		board = store.NewMemoryLeaderboard()
	}

	// --- Completion engine ---
	var llm coach.Completer
	switch cfg.LLMProvider {
	case "openai":
		llm = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		llm = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	logger.Info("completion engine ready", zap.String("engine", llm.Name()))

	svc := coach.NewService(llm)
	h := handle.New(svc, board, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to the Sathi Ally API!"}`))
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := board.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"db not ok"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"alive"}`))
	})

	mux.HandleFunc("/api/v1/score", h.Score)
	mux.HandleFunc("/api/v1/generate_scenario", h.GenerateScenario)
	mux.HandleFunc("/api/v1/learn", h.Learn)
	mux.HandleFunc("/api/v1/generate_quiz", h.GenerateQuiz)
	mux.HandleFunc("/api/v1/generate_game_item", h.GenerateGameItem)
	mux.HandleFunc("/api/v1/telemetry", h.Telemetry)
	mux.HandleFunc("/api/v1/update_score", h.UpdateScore)
	mux.HandleFunc("/api/v1/leaderboard", h.GetLeaderboard)

	addr := ":" + cfg.Port
	logger.Info("sathi-ally listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}

// ---------------- Helpers -----------------

func resolveDSN() string {
	// Prefer DATABASE_URL if provided
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	// Build DSN from POSTGRES_* / PG* env vars when a host is configured
	host := strings.TrimSpace(os.Getenv("PGHOST"))
	if host == "" {
		return ""
	}
	user := getenvDefault("POSTGRES_USER", "sathially")
	pass := os.Getenv("POSTGRES_PASSWORD")
	port := getenvDefault("PGPORT", "5432")
	db := getenvDefault("POSTGRES_DB", "sathially")

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func safeDSNSummary(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "dsn: parse error"
	}
	user := u.User.Username()
	host := u.Host
	port := ""
	if h, p, err := net.SplitHostPort(u.Host); err == nil {
		host, port = h, p
	}
	db := strings.TrimPrefix(u.Path, "/")
	if port == "" {
		return fmt.Sprintf("host=%s db=%s user=%s", host, db, user)
	}
	return fmt.Sprintf("host=%s port=%s db=%s user=%s", host, port, db, user)
}
