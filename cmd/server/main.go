package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/pefman/monster-mayhem/internal/game"
	"github.com/pefman/monster-mayhem/internal/hub"
	"github.com/pefman/monster-mayhem/internal/stats"
)

// ========================= Config (env-configurable) =========================
// Defaults can be overridden via environment variables (or a .env file):
//   GAME_PORT   (default: 8081; PORT wins when set)
//   STATS_FILE  (default: stats.json)

type config struct {
	Port      string `env:"GAME_PORT" envDefault:"8081"`
	StatsFile string `env:"STATS_FILE" envDefault:"stats.json"`
}

// Build metadata injected via -ldflags at build time
var (
	buildVersion = "dev"
	buildTime    = ""
)

func loadConfig() config {
	_ = godotenv.Load()
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	return cfg
}

// ========================= Main & HTTP Handlers =========================

func main() {
	cfg := loadConfig()
	store := stats.Load(cfg.StatsFile)
	h := hub.New(game.NewRegistry(nil), store)

	r := mux.NewRouter()
	r.HandleFunc("/", serveIndex)
	r.HandleFunc("/ws", h.HandleWS)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"version": buildVersion,
			"time":    buildTime,
		})
	})
	r.HandleFunc("/api/stats", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(store.Snapshot())
	})
	r.HandleFunc("/api/sessions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(h.Sessions())
	})

	addr := ":" + cfg.Port
	log.Printf("monster-mayhem %s listening on %s (stats=%s)", buildVersion, addr, cfg.StatsFile)
	log.Fatal(http.ListenAndServe(addr, r))
}

func serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := strings.ReplaceAll(indexHTML, "{{BUILD_VERSION}}", buildVersion)
	fmt.Fprint(w, html)
}
