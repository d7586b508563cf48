package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-recipe-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-recipe-keeper/internal/handler/http"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoTransports(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCAddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}
	_, err = NewServer(handlers, config.Server{GRPCAddress: l.Addr().String()}, logger.Nop())

	require.ErrorIs(t, err, errGRPCListen)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddr(t), GRPCAddress: freeAddr(t)}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, logger.Nop()),
		GRPC: myGRPC.NewHandler(nil, logger.Nop()),
	}

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/no-such-route")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
