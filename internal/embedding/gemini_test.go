package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiProviderEmbed(t *testing.T) {
	t.Run("successful embedding", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

			var req embedRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "models/text-embedding-004", req.Model)
			require.Len(t, req.Content.Parts, 1)
			assert.Equal(t, "hello world", req.Content.Parts[0].Text)

			fmt.Fprint(w, `{"embedding":{"values":[0.1,0.2,0.3]}}`)
		}))
		defer srv.Close()

		provider := NewGeminiProvider("secret", WithEndpoint(srv.URL))
		vec, err := provider.Embed(context.Background(), "hello world")
		require.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	})

	t.Run("non-200 status is a hard error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, "overloaded")
		}))
		defer srv.Close()

		provider := NewGeminiProvider("secret", WithEndpoint(srv.URL))
		_, err := provider.Embed(context.Background(), "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "overloaded")
	})

	t.Run("empty values rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"embedding":{"values":[]}}`)
		}))
		defer srv.Close()

		provider := NewGeminiProvider("secret", WithEndpoint(srv.URL))
		_, err := provider.Embed(context.Background(), "text")
		assert.Error(t, err)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `not json`)
		}))
		defer srv.Close()

		provider := NewGeminiProvider("secret", WithEndpoint(srv.URL))
		_, err := provider.Embed(context.Background(), "text")
		assert.Error(t, err)
	})
}
