package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost", client.BaseURL)
	assert.Equal(t, time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_WithCorrelationID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(CorrelationIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.WithCorrelationID("corr-42").Get("/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "corr-42", got)
}

func TestHTTPClient_CheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		readyCode  int
		paths      []string
		wantErr    string
		wantCalled []string
	}{
		{
			name:       "all healthy",
			readyCode:  http.StatusOK,
			paths:      []string{"/health", "/ready"},
			wantCalled: []string{"/health", "/ready"},
		},
		{
			name:       "not ready",
			readyCode:  http.StatusServiceUnavailable,
			paths:      []string{"/health", "/ready"},
			wantErr:    "/ready answered 503",
			wantCalled: []string{"/health", "/ready"},
		},
		{
			name:       "stops at first failure",
			readyCode:  http.StatusServiceUnavailable,
			paths:      []string{"/ready", "/health"},
			wantErr:    "/ready answered 503",
			wantCalled: []string{"/ready"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called []string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = append(called, r.URL.Path)
				assert.Equal(t, "hc-1", r.Header.Get(CorrelationIDHeader))
				if r.URL.Path == "/ready" {
					w.WriteHeader(tt.readyCode)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			err := NewHTTPClient(srv.URL, time.Second).CheckHealth(context.Background(), "hc-1", tt.paths...)

			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestHTTPClient_CheckHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewHTTPClient(url, time.Second).CheckHealth(context.Background(), "hc-2", "/health")

	assert.ErrorContains(t, err, "error requesting /health")
}
