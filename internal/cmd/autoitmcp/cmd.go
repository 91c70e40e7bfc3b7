// Package autoitmcp parses command flags and selects the stdio or websocket
// transport for the automation server.
package autoitmcp

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/winforge/autoit-mcp/internal/platform/config"
	"github.com/winforge/autoit-mcp/internal/platform/logging"
	"github.com/winforge/autoit-mcp/internal/platform/otel"
	"github.com/winforge/autoit-mcp/internal/services/automation/service"
)

// Config holds the automation server command configuration.
type Config struct {
	Transport    string   `env:"AUTOIT_MCP_TRANSPORT"     envDefault:"stdio"`
	WSAddr       string   `env:"AUTOIT_MCP_WS_ADDR"       envDefault:"localhost:8089"`
	AuditDBPath  string   `env:"AUTOIT_MCP_AUDIT_DB"`
	AllowedHosts []string `env:"AUTOIT_MCP_ALLOWED_HOSTS"`
	AuthToken    string   `env:"AUTOIT_MCP_AUTH_TOKEN"`
	LogLevel     string   `env:"AUTOIT_MCP_LOG_LEVEL"     envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	allowedHosts := strings.Join(cfg.AllowedHosts, ",")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or ws")
	fs.StringVar(&cfg.WSAddr, "ws-addr", cfg.WSAddr, "websocket listen address (for ws transport)")
	fs.StringVar(&cfg.AuditDBPath, "audit-db", cfg.AuditDBPath, "path to the SQLite invocation audit database")
	fs.StringVar(&allowedHosts, "allowed-hosts", allowedHosts, "comma-separated hosts admitted beyond loopback (for ws transport)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: error, info, or debug")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.AllowedHosts = splitHosts(allowedHosts)
	return cfg, nil
}

func splitHosts(value string) []string {
	var hosts []string
	for _, entry := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(entry)
		if trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	return hosts
}

func parseLogLevel(value string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return logging.LevelDebug
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// Run starts the automation MCP server.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.New(os.Stderr, "[autoit-mcp] ", parseLogLevel(cfg.LogLevel))

	shutdown, err := otel.Setup(ctx, "autoit-mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	logger.Infof("starting on %s transport", cfg.Transport)
	if cfg.AuditDBPath != "" {
		logger.Debugf("audit trail at %s", cfg.AuditDBPath)
	}

	return service.Run(ctx, service.Config{
		Transport:    cfg.Transport,
		WSAddr:       cfg.WSAddr,
		AuditDBPath:  cfg.AuditDBPath,
		AllowedHosts: cfg.AllowedHosts,
		AuthToken:    cfg.AuthToken,
		Logger:       logger,
	})
}
