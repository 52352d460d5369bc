package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TRAY_ICON_PATH", "TRAY_TOOLTIP", "FRONTEND_DIR", "WINDOW_WIDTH", "WINDOW_HEIGHT", "ENABLE_FILE_LOGGING", "HOTKEY", EnvFileEnvVar} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.TrayIconPath != DefaultTrayIcon {
		t.Errorf("Expected TrayIconPath %q, got %q", DefaultTrayIcon, cfg.TrayIconPath)
	}
	if cfg.Tooltip != "Chill the Ice Slime" {
		t.Errorf("Expected default tooltip, got %q", cfg.Tooltip)
	}
	if cfg.WindowWidth != 200 || cfg.WindowHeight != 200 {
		t.Errorf("Expected 200x200 window, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.EnableFileLogging {
		t.Error("Expected file logging disabled by default")
	}
	if cfg.Hotkey != "" {
		t.Errorf("Expected no hotkey by default, got %q", cfg.Hotkey)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRAY_ICON_PATH", "/opt/chill/idle.png")
	t.Setenv("TRAY_TOOLTIP", "Slime")
	t.Setenv("WINDOW_WIDTH", "256")
	t.Setenv("WINDOW_HEIGHT", "not-a-number")
	t.Setenv("ENABLE_FILE_LOGGING", "TRUE")
	t.Setenv("HOTKEY", " Ctrl+Alt+S ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.TrayIconPath != "/opt/chill/idle.png" {
		t.Errorf("Expected TrayIconPath from env, got %q", cfg.TrayIconPath)
	}
	if cfg.Tooltip != "Slime" {
		t.Errorf("Expected tooltip from env, got %q", cfg.Tooltip)
	}
	if cfg.WindowWidth != 256 {
		t.Errorf("Expected WindowWidth 256, got %d", cfg.WindowWidth)
	}
	if cfg.WindowHeight != DefaultWindowSize {
		t.Errorf("Expected invalid WINDOW_HEIGHT to fall back to %d, got %d", DefaultWindowSize, cfg.WindowHeight)
	}
	if !cfg.EnableFileLogging {
		t.Error("Expected file logging enabled")
	}
	if cfg.Hotkey != "Ctrl+Alt+S" {
		t.Errorf("Expected trimmed hotkey, got %q", cfg.Hotkey)
	}
}

func TestLoadWithOptionsOverrides(t *testing.T) {
	t.Setenv("TRAY_ICON_PATH", "/from/env.png")
	t.Setenv("FRONTEND_DIR", "/from/env")

	cfg, err := LoadWithOptions(LoadOptions{
		TrayIconOverride:    "/from/flag.png",
		FrontendDirOverride: "  ",
		HotkeyOverride:      "F9",
	})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.TrayIconPath != "/from/flag.png" {
		t.Errorf("Expected flag override, got %q", cfg.TrayIconPath)
	}
	if cfg.FrontendDir != "/from/env" {
		t.Errorf("Expected blank override to keep env value, got %q", cfg.FrontendDir)
	}
	if cfg.Hotkey != "F9" {
		t.Errorf("Expected hotkey override, got %q", cfg.Hotkey)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "chill.env")
	if err := os.WriteFile(envFile, []byte("TRAY_TOOLTIP=From file\nWINDOW_WIDTH=320\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvFileEnvVar, envFile)
	// godotenv does not override variables that are already set, even when
	// empty. t.Setenv registers the restore, then the variables are removed.
	t.Setenv("TRAY_TOOLTIP", "")
	t.Setenv("WINDOW_WIDTH", "")
	os.Unsetenv("TRAY_TOOLTIP")
	os.Unsetenv("WINDOW_WIDTH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Tooltip != "From file" {
		t.Errorf("Expected tooltip from env file, got %q", cfg.Tooltip)
	}
	if cfg.WindowWidth != 320 {
		t.Errorf("Expected WindowWidth from env file, got %d", cfg.WindowWidth)
	}
}
