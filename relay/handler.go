package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrNotFound         = errors.New("Not Found")
	ErrUnsupportedMedia = errors.New("Expected application/json")
	ErrInvalidJSON      = errors.New("Invalid JSON format")
	ErrUpstreamRequest  = errors.New("API request failed")
	ErrUpstreamDecode   = errors.New("Failed to decode API response")
)

var wellKnownErrors = map[error]int{
	ErrNotFound:         http.StatusNotFound,
	ErrUnsupportedMedia: http.StatusUnsupportedMediaType,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrUpstreamRequest:  http.StatusBadGateway,
	ErrUpstreamDecode:   http.StatusBadGateway,
}

// HandlerParams defines the dependencies for the relay handler.
type HandlerParams struct {
	fx.In

	Relay Relay

	Log *zap.Logger
}

// Request represents an incoming request.
type Request struct {
	Path   string
	Method string
	Body   []byte
	Header http.Header
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Handler is the interface for handling relay requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// RelayHandler validates an incoming request, forwards its payload
// through a Relay and shapes the terminal response.
type RelayHandler struct {
	relay Relay

	log *zap.Logger
}

// NewRelayHandler creates a new relay handler.
func NewRelayHandler(params HandlerParams) Handler {
	return &RelayHandler{
		relay: params.Relay,
		log:   params.Log,
	}
}

// Handle handles a relay request. Every failure short-circuits into a
// terminal response; nothing is retried.
func (h *RelayHandler) Handle(ctx context.Context, req Request) Response {
	log := h.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	if req.Method != http.MethodPost || req.Path != "/hello" {
		log.Debug("no such route")
		return newErrorResponse(ErrNotFound)
	}

	// The content type must match exactly, parameters included.
	if req.Header.Get("Content-Type") != "application/json" {
		log.Debug("unsupported content type",
			zap.String("content_type", req.Header.Get("Content-Type")),
		)
		return newErrorResponse(ErrUnsupportedMedia)
	}

	// Any JSON value is accepted: object, array or scalar. No schema
	// is enforced on the payload.
	var payload any
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		log.Debug("invalid json body", zap.Error(err))
		return newErrorResponse(ErrInvalidJSON)
	}

	echoed, err := h.relay.Forward(ctx, payload)
	if err != nil {
		log.Error("failed to forward payload", zap.Error(err))
		return newErrorResponse(err)
	}

	body, err := json.MarshalIndent(echoed, "", "  ")
	if err != nil {
		// Should not happen for a value just decoded from JSON. The
		// status stays 200 with a fixed text body.
		log.Error("failed to serialize response", zap.Error(err))
		return newTextResponse(http.StatusOK, []byte("Failed to serialize response"))
	}

	return newJSONResponse(http.StatusOK, body)
}
