package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDB struct {
	pingErr error
}

func (m *mockDB) Ping(ctx context.Context) error {
	return m.pingErr
}

func TestHealthHandler_Health(t *testing.T) {
	h := NewHealthHandler(&mockDB{})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		db         HealthChecker
		ready      bool
		wantStatus int
		wantChecks map[string]string
	}{
		{
			name:       "ready with healthy db",
			db:         &mockDB{},
			ready:      true,
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"app": "ok", "database": "ok"},
		},
		{
			name:       "not ready yet",
			db:         &mockDB{},
			ready:      false,
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"app": "not ready", "database": "ok"},
		},
		{
			name:       "db unreachable",
			db:         &mockDB{pingErr: errors.New("dial tcp: connection refused")},
			ready:      true,
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"app": "ok", "database": "unreachable"},
		},
		{
			name:       "no db configured",
			db:         nil,
			ready:      true,
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"app": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.db)
			h.SetReady(tt.ready)

			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ReadyResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantChecks, resp.Checks)
		})
	}
}
