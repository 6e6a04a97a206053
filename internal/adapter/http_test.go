package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/janus-tools/janus-sync/internal/config"
	"github.com/janus-tools/janus-sync/internal/logger"
	"github.com/janus-tools/janus-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		Address:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "host and port", input: "docs01:11000", expected: "http://docs01:11000"},
		{name: "full url", input: "https://docs01:11000/", expected: "https://docs01:11000"},
		{name: "whitespace trimmed", input: "  localhost:11000 ", expected: "http://localhost:11000"},
		{name: "empty", input: "", expectError: true},
		{name: "scheme only", input: "http://", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestGetScriptNames(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/scripts", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.ScriptNamesResponse{Names: []string{"a", "b"}})
	}))

	names, err := a.GetScriptNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestGetScriptStates(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scripts/states", r.URL.Path)

		var req models.ScriptStatesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a"}, req.Names)
		assert.Equal(t, 1, req.Length)

		_ = json.NewEncoder(w).Encode(models.ScriptStatesResponse{
			States: []models.ScriptState{{Name: "a", Hash: "h1"}},
		})
	}))

	states, err := a.GetScriptStates(context.Background(), []string{"a"})
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, models.ScriptState{Name: "a", Hash: "h1"}, states[0])
}

func TestDownloadScript(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/scripts/crmHelper", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.DownloadScriptResponse{
			Name:       "crmHelper",
			SourceCode: "util.log(1);",
		})
	}))

	script, err := a.DownloadScript(context.Background(), "crmHelper")
	require.NoError(t, err)
	assert.Equal(t, "crmHelper", script.Name)
	assert.Equal(t, "util.log(1);", script.SourceCode)
}

func TestDownloadScript_NotFound(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such script", http.StatusNotFound)
	}))

	_, err := a.DownloadScript(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScriptNotFound)
}

func TestUploadScript(t *testing.T) {
	var uploaded models.UploadScriptRequest
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/scripts/crmHelper", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&uploaded))
		w.WriteHeader(http.StatusOK)
	}))

	err := a.UploadScript(context.Background(), &models.Script{
		Name:       "crmHelper",
		SourceCode: "var x = 1;",
	})
	require.NoError(t, err)
	assert.Equal(t, "crmHelper", uploaded.Name)
	assert.Equal(t, "var x = 1;", uploaded.SourceCode)
}

func TestUploadScript_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "login required", http.StatusUnauthorized)
	}))

	err := a.UploadScript(context.Background(), &models.Script{Name: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRunScript(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scripts/job/run", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.RunScriptResponse{Output: "done"})
	}))

	out, err := a.RunScript(context.Background(), "job")
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestMapHTTPError_ServerUnavailable(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))

	_, err := a.GetScriptNames(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.True(t, strings.Contains(err.Error(), "maintenance"))
}
