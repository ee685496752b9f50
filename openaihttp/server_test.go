package openaihttp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LubyRuffy/easymaas"
	"github.com/LubyRuffy/easymaas/openaihttp"
)

func TestNewServer_RequiresRegistry(t *testing.T) {
	_, err := openaihttp.NewServer(":0", openaihttp.Config{})
	require.Error(t, err)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv, err := openaihttp.NewServer("127.0.0.1:0", openaihttp.Config{Registry: easymaas.NewRegistry()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	srv, err := openaihttp.NewServer("256.256.256.256:99999", openaihttp.Config{Registry: easymaas.NewRegistry()})
	require.NoError(t, err)

	require.Error(t, srv.Run(context.Background()))
}
