package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
)

func TestNewHandlers(t *testing.T) {
	cfg := &config.ServerConfig{}
	cfg.Server.HTTPAddress = "localhost:8080"

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, &config.ServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}

func TestNewHandlers_NoServices(t *testing.T) {
	cfg := &config.ServerConfig{}
	cfg.Server.HTTPAddress = "localhost:8080"

	_, err := NewHandlers(nil, cfg, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
