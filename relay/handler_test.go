package relay_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/relaykit/relay/relay"
)

// mockRelay implements the relay.Relay interface.
type mockRelay struct {
	mock.Mock
}

func (m *mockRelay) Forward(ctx context.Context, payload any) (any, error) {
	args := m.Called(ctx, payload)
	return args.Get(0), args.Error(1)
}

func setupHandler(t *testing.T, relayMock relay.Relay) relay.Handler {
	return relay.NewRelayHandler(relay.HandlerParams{
		Relay: relayMock,
		Log:   zaptest.NewLogger(t),
	})
}

func newHelloRequest(body string) relay.Request {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return relay.Request{
		Path:   "/hello",
		Method: http.MethodPost,
		Header: header,
		Body:   []byte(body),
	}
}

func TestHandle_Success(t *testing.T) {
	relayMock := new(mockRelay)
	relayMock.On("Forward", mock.Anything, map[string]any{"a": float64(1)}).
		Return(map[string]any{"json": map[string]any{"a": float64(1)}}, nil)

	handler := setupHandler(t, relayMock)

	res := handler.Handle(context.Background(), newHelloRequest(`{"a":1}`))

	expected, err := json.MarshalIndent(map[string]any{
		"json": map[string]any{"a": float64(1)},
	}, "", "  ")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, string(expected), string(res.Body))
	relayMock.AssertExpectations(t)
}

func TestHandle_ScalarPayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		payload any
	}{
		{name: "number", body: `5`, payload: float64(5)},
		{name: "bool", body: `true`, payload: true},
		{name: "string", body: `"hi"`, payload: "hi"},
		{name: "null", body: `null`, payload: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var forwarded any

			relayMock := new(mockRelay)
			relayMock.On("Forward", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					forwarded = args.Get(1)
				}).
				Return(map[string]any{"ok": true}, nil)

			handler := setupHandler(t, relayMock)

			res := handler.Handle(context.Background(), newHelloRequest(tt.body))

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, tt.payload, forwarded)
			relayMock.AssertExpectations(t)
		})
	}
}

func TestHandle_WrongMethod(t *testing.T) {
	relayMock := new(mockRelay)
	handler := setupHandler(t, relayMock)

	req := newHelloRequest(`{"a":1}`)
	req.Method = http.MethodGet

	res := handler.Handle(context.Background(), req)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Not Found", string(res.Body))
	relayMock.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}

func TestHandle_WrongPath(t *testing.T) {
	relayMock := new(mockRelay)
	handler := setupHandler(t, relayMock)

	req := newHelloRequest(`{"a":1}`)
	req.Path = "/goodbye"

	res := handler.Handle(context.Background(), req)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Not Found", string(res.Body))
	relayMock.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}

func TestHandle_ContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{name: "missing", contentType: ""},
		{name: "mismatching", contentType: "text/plain"},
		{name: "with parameters", contentType: "application/json; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relayMock := new(mockRelay)
			handler := setupHandler(t, relayMock)

			req := newHelloRequest(`{"a":1}`)
			req.Header = make(http.Header)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			res := handler.Handle(context.Background(), req)

			assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
			assert.Equal(t, "Expected application/json", string(res.Body))
			relayMock.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "truncated object", body: `{"a":`},
		{name: "bare word", body: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relayMock := new(mockRelay)
			handler := setupHandler(t, relayMock)

			res := handler.Handle(context.Background(), newHelloRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.Equal(t, "Invalid JSON format", string(res.Body))
			relayMock.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UpstreamRequestFailed(t *testing.T) {
	relayMock := new(mockRelay)
	relayMock.On("Forward", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: connection refused", relay.ErrUpstreamRequest))

	handler := setupHandler(t, relayMock)

	res := handler.Handle(context.Background(), newHelloRequest(`{"a":1}`))

	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.True(t, strings.HasPrefix(string(res.Body), "API request failed:"))
}

func TestHandle_UpstreamDecodeFailed(t *testing.T) {
	relayMock := new(mockRelay)
	relayMock.On("Forward", mock.Anything, mock.Anything).
		Return(nil, relay.ErrUpstreamDecode)

	handler := setupHandler(t, relayMock)

	res := handler.Handle(context.Background(), newHelloRequest(`{"a":1}`))

	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Equal(t, "Failed to decode API response", string(res.Body))
}

func TestHandle_Idempotent(t *testing.T) {
	relayMock := new(mockRelay)
	relayMock.On("Forward", mock.Anything, mock.Anything).
		Return(map[string]any{"json": map[string]any{"a": float64(1)}}, nil)

	handler := setupHandler(t, relayMock)

	first := handler.Handle(context.Background(), newHelloRequest(`{"a":1}`))
	second := handler.Handle(context.Background(), newHelloRequest(`{"a":1}`))

	assert.Equal(t, first, second)
	relayMock.AssertNumberOfCalls(t, "Forward", 2)
}
