package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excuselab/excuse-engine/apimodels"
	"github.com/excuselab/excuse-engine/internal/config"
	"github.com/excuselab/excuse-engine/internal/generator"
	"github.com/excuselab/excuse-engine/internal/llm"
)

type stubProvider struct {
	content string
	err     error
}

func (s *stubProvider) Complete(_ context.Context, _, _ string, _ ...llm.Option) (*llm.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Content: s.content}, nil
}

func newTestServer(provider llm.Provider) *Server {
	cfg := config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           "0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			RequestTimeout: time.Second,
		},
		OpenAI: config.OpenAIConfig{Model: "gpt-4o-mini"},
	}
	gen := generator.New(provider, cfg.OpenAI)
	return New(cfg, gen)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestHandleGenerate(t *testing.T) {
	srv := newTestServer(&stubProvider{
		content: `{"options":[{"text":"Held at a signal outside the station, ten minutes away."}]}`,
	})

	body := `{"name":"Jordan","age":25,"scenario":"running late for the train","variants":1}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "Held at a signal outside the station, ten minutes away.", resp.Options[0].Text)
	assert.Equal(t, "gpt-4o-mini", resp.Metadata.Model)
}

func TestHandleGenerateBadBody(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "invalid request body")
}

func TestHandleGenerateValidation(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing scenario",
			body: `{"name":"Jo","age":20,"variants":1}`,
			want: "scenario is required",
		},
		{
			name: "variants above bound",
			body: `{"name":"Jo","age":20,"scenario":"late","variants":9}`,
			want: "variants must be between 1 and 5",
		},
		{
			name: "negative variants",
			body: `{"name":"Jo","age":20,"scenario":"late","variants":-1}`,
			want: "variants must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp apimodels.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.want, errResp.Error)
		})
	}
}

func TestHandleGenerateProviderFailure(t *testing.T) {
	srv := newTestServer(&stubProvider{err: errors.New("upstream quota exceeded")})

	body := `{"name":"Jo","age":20,"scenario":"late for work","variants":1}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "upstream quota exceeded")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
