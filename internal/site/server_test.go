package site

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func startTestServer(t *testing.T, dir string, metricsHandler http.Handler) *Server {
	t.Helper()
	s := New(Config{Port: "0", Dir: dir}, nil, metricsHandler)
	if err := s.Start(); err != nil {
		t.Fatalf("failed to start server: %v", err)
	}
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

func TestServesStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>receipts</html>"), 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	s := startTestServer(t, dir, nil)

	resp, err := http.Get(s.URL() + "/index.html")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "<html>receipts</html>" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}
}

func TestMissingFileReturns404(t *testing.T) {
	s := startTestServer(t, t.TempDir(), nil)

	resp, err := http.Get(s.URL() + "/nope.css")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	s := startTestServer(t, t.TempDir(), nil)

	resp, err := http.Get(s.URL() + "/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestMetricsMountedWhenProvided(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})
	s := startTestServer(t, t.TempDir(), handler)

	resp, err := http.Get(s.URL() + "/metrics")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "metrics" {
		t.Fatalf("expected metrics handler response, got %q", body)
	}
}
