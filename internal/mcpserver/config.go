package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/pinglow/apisidebar/sidebar"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Sidebar defaults, overridable per tool call.
	CategoryLabel string
	AnchorDoc     string
	HrefPrefix    string

	// Input and output limits.
	MaxInlineSize int64
	AllowWrite    bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from APISIDEBAR_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CategoryLabel: envString("APISIDEBAR_CATEGORY_LABEL", sidebar.DefaultCategoryLabel),
		AnchorDoc:     envString("APISIDEBAR_ANCHOR_DOC", sidebar.DefaultAnchorDoc),
		HrefPrefix:    envString("APISIDEBAR_HREF_PREFIX", sidebar.DefaultHrefPrefix),
		MaxInlineSize: int64(envInt("APISIDEBAR_MAX_INLINE_SIZE", 10*1024*1024)),
		AllowWrite:    envBool("APISIDEBAR_ALLOW_WRITE", true),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
