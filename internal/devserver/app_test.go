package devserver

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdash/internal/devserver/config"
	"github.com/dmitrijs2005/userdash/internal/devserver/users"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

func testApp() *App {
	var cfg config.Config
	cfg.LoadDefaults()
	return &App{
		config:      &cfg,
		logger:      logging.Discard(),
		userService: users.NewService(users.NewMemoryRepository(), &cfg),
	}
}

func TestApp_ServeAndShutdown(t *testing.T) {
	app := testApp()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestApp_RunListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	app := testApp()
	app.config.Addr = l.Addr().String()

	require.Error(t, app.Run(context.Background()))
}
