package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvFileEnvVar      = "CHILL_OVERLAY_ENV"
	DefaultTrayIcon    = "../assets/sprites/sprite-idle-128.png"
	DefaultTooltip     = "Chill the Ice Slime"
	DefaultFrontendDir = "frontend"
	DefaultWindowSize  = 200
)

type LoadOptions struct {
	TrayIconOverride    string
	FrontendDirOverride string
	HotkeyOverride      string
}

type Config struct {
	TrayIconPath      string
	Tooltip           string
	FrontendDir       string
	WindowWidth       int
	WindowHeight      int
	EnableFileLogging bool
	Hotkey            string
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Configuration sources in priority order:
	// 1) .env next to the executable
	// 2) the file named by CHILL_OVERLAY_ENV
	// Variables already set in the process environment are not overridden.
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		TrayIconPath:      override(opts.TrayIconOverride, getEnvWithDefault("TRAY_ICON_PATH", DefaultTrayIcon)),
		Tooltip:           getEnvWithDefault("TRAY_TOOLTIP", DefaultTooltip),
		FrontendDir:       override(opts.FrontendDirOverride, getEnvWithDefault("FRONTEND_DIR", DefaultFrontendDir)),
		WindowWidth:       getPositiveInt("WINDOW_WIDTH", DefaultWindowSize),
		WindowHeight:      getPositiveInt("WINDOW_HEIGHT", DefaultWindowSize),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		Hotkey:            override(opts.HotkeyOverride, strings.TrimSpace(os.Getenv("HOTKEY"))),
	}

	return cfg, nil
}

func resolveEnvPath() string {
	if execPath, err := os.Executable(); err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(EnvFileEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func override(flagValue, fallback string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return fallback
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getPositiveInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
