package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClient_Validate(t *testing.T) {
	t.Run("OKStatusIsValid", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/validate", r.URL.Path)
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		valid, err := NewAuthClient(server.URL).Validate(context.Background(), "", "tok-123")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("NonOKStatusIsDefinitiveInvalid", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		valid, err := NewAuthClient(server.URL).Validate(context.Background(), "", "tok-123")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("TransportFailureIsAnError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := NewAuthClient(server.URL).Validate(context.Background(), "", "tok-123")
		assert.Error(t, err)
	})

	t.Run("OverrideReplacesDefaultBase", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		valid, err := NewAuthClient("http://127.0.0.1:1").Validate(context.Background(), server.URL, "tok-123")
		require.NoError(t, err)
		assert.True(t, valid)
	})
}
