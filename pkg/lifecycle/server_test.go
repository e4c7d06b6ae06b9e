package lifecycle

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- RunServer(ctx, &ServerOptions{
			ListenAddr:  "127.0.0.1:0",
			ServiceName: "test",
			Handler:     http.NotFoundHandler(),
			Logger:      zerolog.Nop(),
		})
	}()

	// Let the listener come up before canceling.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancel")
	}
}

func TestRunServerSurfacesListenerError(t *testing.T) {
	err := RunServer(context.Background(), &ServerOptions{
		ListenAddr:  "256.256.256.256:0", // unbindable
		ServiceName: "test",
		Handler:     http.NotFoundHandler(),
		Logger:      zerolog.Nop(),
	})

	require.Error(t, err)
}
