package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/vulns/GHSA-29mw-wpgm-hmr9":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"GHSA-29mw-wpgm-hmr9","summary":"Command injection"}`))
		case "/v1/vulns/GHSA-empty":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	registry := &SourceRegistry{
		Sources: []SourceConfig{
			{Name: "osv", Kind: "osv", BaseURL: server.URL + "/v1/vulns/"},
		},
	}
	client := NewDetailClient(registry)

	t.Run("fetches and normalizes one record", func(t *testing.T) {
		records, err := client.Fetch(context.Background(), "osv", "GHSA-29mw-wpgm-hmr9")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "GHSA-29mw-wpgm-hmr9", records[0].CveID)
		assert.Equal(t, "Command injection", records[0].Summary)
	})

	t.Run("unidentifiable body yields empty slice", func(t *testing.T) {
		records, err := client.Fetch(context.Background(), "osv", "GHSA-empty")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("upstream error status propagates", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), "osv", "GHSA-missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("unknown source errors without a request", func(t *testing.T) {
		_, err := client.Fetch(context.Background(), "snyk", "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown vulnerability source")
	})
}
