package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/activitycart/pkg/config"
	"github.com/angelmondragon/activitycart/pkg/types"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	cfg.Cart.Backend = config.BackendMemory
	return cfg
}

func TestHealthLive(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthLive(testConfig()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, config.AppEnvDev, resp.Header().Get("X-ActivityCart-Env"))
}

func TestHealthReady(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthReady(testConfig(), nil, stubPinger{}).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "ready", envelope.Data["status"])
	assert.Equal(t, config.BackendMemory, envelope.Data["backend"])
}

func TestHealthReadyBackendDown(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthReady(testConfig(), nil, stubPinger{err: errors.New("dial tcp: refused")}).
		ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	var envelope types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "DEPENDENCY_ERROR", envelope.Error.Code)
}
