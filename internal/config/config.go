package config // package config loads application configuration from environment variables

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	DatabaseURL string       // connection URL for the database pool
	SocketAddr  *net.TCPAddr // resolved address the HTTP server binds to
}

// rawConfig is the shape read straight from the environment before the
// socket address is resolved.
type rawConfig struct {
	DatabaseURL string `env:"DATABASE_URL"`
	SocketAddr  string `env:"SOCKET_ADDR"`
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already present in the process environment are not overwritten.
func LoadDotEnv() {
	loadDotEnv(".env")
}

func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return // no file, rely on the process environment
		}
		log.Printf("ignoring %s: %v", path, err)
	}
}

// Load reads configuration values from environment variables and returns a
// Config.  Missing or invalid values are reported as an error naming the
// offending variable; callers are expected to treat it as fatal.
func Load() (Config, error) {
	var raw rawConfig
	if err := env.Load(&raw, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return validate(raw)
}

func validate(raw rawConfig) (Config, error) {
	if raw.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL must be set")
	}
	if raw.SocketAddr == "" {
		return Config{}, errors.New("SOCKET_ADDR must be set")
	}
	addr, err := resolveSocketAddr(raw.SocketAddr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SOCKET_ADDR %q: %w", raw.SocketAddr, err)
	}
	return Config{DatabaseURL: raw.DatabaseURL, SocketAddr: addr}, nil
}

// resolveSocketAddr turns host:port into the first TCP address it resolves to.
func resolveSocketAddr(s string) (*net.TCPAddr, error) {
	if _, _, err := net.SplitHostPort(s); err != nil {
		return nil, err
	}
	return net.ResolveTCPAddr("tcp", s)
}
