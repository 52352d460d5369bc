package singleinstance

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"
)

func usePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("loopback unavailable: %v", err)
	}
	port := lis.Addr().(*net.TCPAddr).Port
	_ = lis.Close()
	t.Setenv("SINGLEINSTANCE_PORT_START", strconv.Itoa(port))
	t.Setenv("SINGLEINSTANCE_PORT_END", strconv.Itoa(port))
	return port
}

func TestActivateResident(t *testing.T) {
	port := usePort(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv, err := Listen(ctx)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer srv.Close()
	if srv.Port() != port {
		t.Errorf("Expected port %d, got %d", port, srv.Port())
	}

	found, err := Activate(ctx)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !found {
		t.Fatal("Expected resident to be found")
	}

	select {
	case <-srv.Activations():
	case <-ctx.Done():
		t.Fatal("Expected an activation")
	}
}

func TestSecondListenFails(t *testing.T) {
	usePort(t)
	ctx := context.Background()

	srv, err := Listen(ctx)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer srv.Close()

	if _, err := Listen(ctx); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("Expected ErrAlreadyRunning, got %v", err)
	}
}

func TestActivateWithoutResident(t *testing.T) {
	usePort(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	found, err := Activate(ctx)
	if err != nil || found {
		t.Fatalf("Expected no resident, got found=%v err=%v", found, err)
	}
}

func TestPortRangeClamps(t *testing.T) {
	t.Setenv("SINGLEINSTANCE_PORT_START", "80")
	t.Setenv("SINGLEINSTANCE_PORT_END", "70000")
	start, end := PortRange()
	if start != 1024 || end != 65535 {
		t.Errorf("Expected [1024,65535], got [%d,%d]", start, end)
	}
}
