package relay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRelay(t *testing.T, url string) *UpstreamRelay {
	return &UpstreamRelay{
		client: resty.New(),
		url:    url,
		log:    zaptest.NewLogger(t),
	}
}

func TestForward_EchoesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":` + string(body) + `}`))
	}))
	defer srv.Close()

	relay := newTestRelay(t, srv.URL)

	decoded, err := relay.Forward(context.Background(), map[string]any{"a": 1})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"data": map[string]any{"a": float64(1)},
	}, decoded)
}

func TestForward_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	relay := newTestRelay(t, srv.URL)

	_, err := relay.Forward(context.Background(), map[string]any{"a": 1})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUpstreamRequest)
	assert.True(t, strings.HasPrefix(err.Error(), "API request failed:"))
}

func TestForward_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	relay := newTestRelay(t, srv.URL)

	_, err := relay.Forward(context.Background(), map[string]any{"a": 1})
	assert.ErrorIs(t, err, ErrUpstreamDecode)
}

func TestForward_DecodesErrorStatusBody(t *testing.T) {
	// A non-2xx upstream status is not a transport failure. As long as
	// the body decodes as JSON the relay passes it through.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"upstream exploded"}`))
	}))
	defer srv.Close()

	relay := newTestRelay(t, srv.URL)

	decoded, err := relay.Forward(context.Background(), map[string]any{"a": 1})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"error": "upstream exploded"}, decoded)
}

func TestForward_ScalarPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		wire    string
	}{
		{name: "number", payload: float64(42), wire: `42`},
		{name: "bool", payload: true, wire: `true`},
		{name: "string", payload: "hi", wire: `"hi"`},
		{name: "null", payload: nil, wire: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received []byte

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received, _ = io.ReadAll(r.Body)
				w.Write([]byte(`{"ok":true}`))
			}))
			defer srv.Close()

			relay := newTestRelay(t, srv.URL)

			decoded, err := relay.Forward(context.Background(), tt.payload)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"ok": true}, decoded)

			// The payload must arrive as its exact JSON encoding, quotes
			// and all, so the upstream sees the same value the caller sent.
			assert.Equal(t, tt.wire, string(received))

			var sent any
			require.NoError(t, json.Unmarshal(received, &sent))
			assert.Equal(t, tt.payload, sent)
		})
	}
}
