// Package config loads the georouted daemon settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the georouted daemon.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port for the JSON query API.
// - MonitorPort: The port for the metrics and health endpoints.
// - GraphPath: Path to the .graph file loaded at startup.
// - AllowOrigins: CORS origins accepted by the query API.
type Config struct {
	Env          string   // Env is the current environment: local, development, production.
	Port         int      // Port is the query API port.
	MonitorPort  int      // MonitorPort is the monitoring server port.
	GraphPath    string   // GraphPath locates the .graph data file.
	AllowOrigins []string // AllowOrigins lists CORS origins for the API.
}

// MustLoad reads the configuration from the environment, consulting a .env
// file when present, and panics on unparseable values. The graph path has
// no default: the daemon cannot run without data.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("GEOROUTE_PORT", "8080"))
	if err != nil {
		panic("failed to parse query API port from configuration")
	}

	monitorPort, err := strconv.Atoi(setDefaultEnv("GEOROUTE_MONITOR_PORT", "9090"))
	if err != nil {
		panic("failed to parse monitoring port from configuration")
	}

	graphPath := os.Getenv("GEOROUTE_GRAPH_PATH")
	if graphPath == "" {
		panic("GEOROUTE_GRAPH_PATH is required")
	}

	return &Config{
		Env:          setDefaultEnv("GEOROUTE_ENV", "production"),
		Port:         port,
		MonitorPort:  monitorPort,
		GraphPath:    graphPath,
		AllowOrigins: strings.Split(setDefaultEnv("GEOROUTE_ALLOW_ORIGINS", "*"), ","),
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
