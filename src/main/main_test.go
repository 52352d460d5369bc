package main

import "testing"

func TestNewRootCmdParsesFlags(t *testing.T) {
	opts := &mainOptions{}
	cmd := newRootCmd(opts)
	if err := cmd.ParseFlags([]string{"--tray-icon", "/tmp/idle.png", "--frontend-dir", "/tmp/ui", "--hotkey", "Ctrl+Alt+S"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if opts.trayIcon != "/tmp/idle.png" {
		t.Errorf("Expected trayIcon=/tmp/idle.png, got %q", opts.trayIcon)
	}
	if opts.frontendDir != "/tmp/ui" {
		t.Errorf("Expected frontendDir=/tmp/ui, got %q", opts.frontendDir)
	}
	if opts.hotkey != "Ctrl+Alt+S" {
		t.Errorf("Expected hotkey=Ctrl+Alt+S, got %q", opts.hotkey)
	}
}

func TestDisplaysSubcommand(t *testing.T) {
	cmd := newRootCmd(&mainOptions{})
	sub, _, err := cmd.Find([]string{"displays"})
	if err != nil {
		t.Fatalf("Find displays: %v", err)
	}
	if sub.Name() != "displays" {
		t.Fatalf("Expected displays subcommand, got %q", sub.Name())
	}
	if sub.Flags().Lookup("copy") == nil {
		t.Error("Expected --copy flag")
	}
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd(&mainOptions{})
	cmd.SetArgs([]string{"unexpected"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected positional arguments to be rejected")
	}
}
