// Command bgserver runs the backgammon rules API server.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/bgrules/pkg/api"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	host := flag.String("host", getEnv("BGSERVER_HOST", "localhost"), "Host to bind to (use 0.0.0.0 for all interfaces)")
	port := flag.Int("port", getEnvInt("BGSERVER_PORT", 8080), "Port to listen on")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	fastWorkers := flag.Int("fast-workers", 100, "Max concurrent fast operations")
	slowWorkers := flag.Int("slow-workers", 4, "Max concurrent turn enumerations")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("bgserver v%s\n", version)
		os.Exit(0)
	}

	config := api.ServerConfig{
		Host:           *host,
		Port:           *port,
		ReadTimeout:    *readTimeout,
		WriteTimeout:   *writeTimeout,
		IdleTimeout:    60 * time.Second,
		MaxFastWorkers: *fastWorkers,
		MaxSlowWorkers: *slowWorkers,
	}

	server := api.NewServer(config, version)

	log.Info().Str("version", version).Msg("bgserver starting")
	log.Info().Msg("  GET    /api/health            - Health check")
	log.Info().Msg("  POST   /api/games             - Create a game")
	log.Info().Msg("  GET    /api/games/{id}        - Game state")
	log.Info().Msg("  DELETE /api/games/{id}        - End a game")
	log.Info().Msg("  POST   /api/games/{id}/play   - Play a turn")
	log.Info().Msg("  GET    /api/games/{id}/turns  - Legal turns")
	log.Info().Msg("  GET    /api/games/{id}/events - SSE event stream")
	log.Info().Msg("  POST   /api/parse             - Parse move notation")
	log.Info().Msg("  POST   /api/turns             - Legal turns for a board ID")
	log.Info().Msg("  WS     /api/ws                - WebSocket channel")

	if err := server.ListenAndServeWithGracefulShutdown(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
