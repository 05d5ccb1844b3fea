package metrics

import (
	"bytes"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/crossline-labs/crossline-relayer/log"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestPrometheusEndpointFailureIsLoggedNotFatal(t *testing.T) {
	var buf syncBuffer
	if err := log.InitLoggerWithWriter("INFO", "json", &buf, false); err != nil {
		t.Fatal(err)
	}

	// occupy a port so the exposition endpoint cannot bind to it
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer lis.Close()

	exporter, err := NewPrometheusExporter(lis.Addr().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exporter == nil {
		t.Fatal("expected an exporter even when the endpoint cannot serve")
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), "prometheus exposition endpoint failed") {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("expected the bind failure to be logged")
}

func TestInitializeMetricsNullExporter(t *testing.T) {
	if err := InitializeMetrics(ExporterNull{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if err := ShutdownMetrics(context.Background()); err != nil {
			t.Errorf("shutdown failed: %v", err)
		}
	})
	// counting against the null exporter must be a safe no-op
	CountQuery(context.Background(), "ibc0", "client_state", true)
	CountQuery(context.Background(), "ibc0", "client_state", false)
}
