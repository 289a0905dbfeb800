package main

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"
)

type okHandler struct{}

func (okHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServer_ListensAndShutsDown(t *testing.T) {
	srv := startServer(okHandler{}, "0") // kernel-assigned port
	if srv == nil {
		t.Fatal("expected a server")
	}

	// Give the listener goroutine a moment to come up.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(okHandler{}, "0")

	cleaned := make(chan struct{})
	go gracefulShutdown(context.Background(), srv, func() { close(cleaned) })

	// Give the goroutine time to install its signal handler.
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup not called after SIGTERM")
	}
}

// TestMain_UnknownMode asserts the mode whitelist via subprocess: anything
// other than api or export must terminate the process.
func TestMain_UnknownMode(t *testing.T) {
	if os.Getenv("RUN_MAIN_UNKNOWN_MODE") == "1" {
		os.Args = []string{"brvmsim", "--mode", "replay"}
		main()
		t.Fatalf("main should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestMain_UnknownMode")
	cmd.Env = append(os.Environ(), "RUN_MAIN_UNKNOWN_MODE=1", "PERSISTENCE_BACKEND=memory")
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
