package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// staticTokenManager always returns the same token.
type staticTokenManager struct {
	token string
	err   error
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

// fastRetry keeps retry backoff out of test runtime.
func fastRetry() Option {
	return WithRetryConfig(3, time.Millisecond, 5*time.Millisecond)
}

func TestClient_GetRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(nethttp.StatusInternalServerError)

			return
		}

		fmt.Fprint(w, `{"ok": true}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"}, fastRetry())

	resp, err := client.Get(context.Background(), "/thing", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), attempts.Load())
}

func TestClient_PostIsNeverRetried(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		attempts.Add(1)
		w.WriteHeader(nethttp.StatusInternalServerError)
		fmt.Fprint(w, `{"message": "boom"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"}, fastRetry())

	resp, err := client.Post(context.Background(), "/thing", map[string]string{"a": "b"})
	require.Error(t, err)
	assert.Equal(t, int64(1), attempts.Load())

	// The response still travels alongside the typed error.
	require.NotNil(t, resp)
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)

	var apiErr *frontegg.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"boom"}, apiErr.Messages)
}

func TestClient_DeleteIsNeverRetried(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		attempts.Add(1)
		w.WriteHeader(nethttp.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"}, fastRetry())

	_, err := client.Delete(context.Background(), "/thing/1")
	require.Error(t, err)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestClient_RequestHeaders(t *testing.T) {
	t.Parallel()

	var got nethttp.Header

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"}, WithUserAgent("fegg-test/1.0"))

	_, err := client.Do(context.Background(), &Request{
		Method:  nethttp.MethodPost,
		Path:    "/thing",
		Headers: map[string]string{"Frontegg-Tenant-Id": "tenant-1"},
		Body:    map[string]string{"a": "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "fegg-test/1.0", got.Get("User-Agent"))
	assert.Equal(t, "tenant-1", got.Get("Frontegg-Tenant-Id"))
}

func TestClient_BodylessRequestOmitsContentType(t *testing.T) {
	t.Parallel()

	var got nethttp.Header

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"})

	_, err := client.Get(context.Background(), "/thing", nil)
	require.NoError(t, err)
	assert.Empty(t, got.Get("Content-Type"))
}

func TestClient_QueryParameters(t *testing.T) {
	t.Parallel()

	var gotURL *url.URL

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotURL = r.URL
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"})

	query := url.Values{}
	query.Set("_limit", "25")
	query.Set("_offset", "50")

	_, err := client.Get(context.Background(), "/users", query)
	require.NoError(t, err)

	assert.Equal(t, "/users", gotURL.Path)
	assert.Equal(t, "25", gotURL.Query().Get("_limit"))
	assert.Equal(t, "50", gotURL.Query().Get("_offset"))
}

func TestClient_JSONBody(t *testing.T) {
	t.Parallel()

	var got map[string]any

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"})

	_, err := client.Post(context.Background(), "/thing", map[string]any{"name": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Acme"}, got)
}

func TestClient_DoUnauthenticated(t *testing.T) {
	t.Parallel()

	var got nethttp.Header

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"})

	_, err := client.DoUnauthenticated(context.Background(), &Request{
		Method: nethttp.MethodGet,
		Path:   "/",
	})
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_TokenManagerFailure(t *testing.T) {
	t.Parallel()

	tokenErr := errors.New("no credentials")

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{err: tokenErr})

	_, err := client.Get(context.Background(), "/thing", nil)
	assert.ErrorIs(t, err, tokenErr)
}

func TestClient_NilTokenManager(t *testing.T) {
	t.Parallel()

	var got nethttp.Header

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/thing", nil)
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_ErrorBodyDecoding(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
		fmt.Fprint(w, `{"errors": ["a", "b"], "message": "m"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokenManager{token: "tok"})

	_, err := client.Post(context.Background(), "/thing", nil)
	require.Error(t, err)

	var apiErr *frontegg.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, nethttp.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, []string{"a", "b", "m"}, apiErr.Messages)
}
