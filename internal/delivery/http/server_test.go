package http

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/DARSHAN2224/authentication/config"
)

func TestApplyTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	echoServer := echo.New()
	applyTimeouts(echoServer, cfg)

	assert.Equal(t, 10*time.Second, echoServer.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, echoServer.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, echoServer.Server.WriteTimeout)
	assert.Equal(t, time.Minute, echoServer.Server.IdleTimeout)
}
