package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultEnvironment is reported by /api/data when ENVIRONMENT is unset.
	DefaultEnvironment = "development"
	// DefaultHost binds all interfaces.
	DefaultHost = "0.0.0.0"
	// DefaultBackendPort is the backend listen port.
	DefaultBackendPort = 5000
	// DefaultFrontendPort is the frontend proxy listen port.
	DefaultFrontendPort = 3000
	// DefaultBackendURL is where the frontend proxy finds the backend.
	DefaultBackendURL = "http://localhost:5000"
	// DefaultEnvFile is merged into the process environment at startup.
	DefaultEnvFile = ".env"
)

// Server holds listener configuration.
type Server struct {
	Host string
	Port int
}

// Addr returns the host:port listen address.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoadEnvFiles merges the given dotenv files into the process environment.
// Variables already present in the process are not overridden. Missing files
// are skipped; unreadable or malformed files are reported.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading env file %s: %w", f, err)
		}
	}
	return nil
}

// EnvFile returns the dotenv path to load, honoring ENV_FILE.
func EnvFile() string {
	return fallback(strings.TrimSpace(os.Getenv("ENV_FILE")), DefaultEnvFile)
}

// ServerFromEnv reads HOST and PORT, applying defaultPort when PORT is unset.
func ServerFromEnv(defaultPort int) (Server, error) {
	cfg := Server{
		Host: fallback(strings.TrimSpace(os.Getenv("HOST")), DefaultHost),
		Port: defaultPort,
	}
	raw := strings.TrimSpace(os.Getenv("PORT"))
	if raw == "" {
		return cfg, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return Server{}, fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return Server{}, fmt.Errorf("invalid PORT %q: out of range", raw)
	}
	cfg.Port = port
	return cfg, nil
}

// Environment returns ENVIRONMENT as currently set in the process. A variable
// that is present but empty is returned as-is.
func Environment() string {
	if v, ok := os.LookupEnv("ENVIRONMENT"); ok {
		return v
	}
	return DefaultEnvironment
}

// BackendURL returns the base URL of the backend service without a trailing slash.
func BackendURL() string {
	u := fallback(strings.TrimSpace(os.Getenv("BACKEND_URL")), DefaultBackendURL)
	return strings.TrimRight(u, "/")
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
