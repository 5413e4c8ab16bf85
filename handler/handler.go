package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/relaykit/relay/relay"
)

type HelloHandlerParams struct {
	fx.In

	Handler relay.Handler
	Log     *zap.Logger
}

func NewHelloHandler(params HelloHandlerParams) *HelloHandler {
	return &HelloHandler{
		handler: params.Handler,
		log:     params.Log,
	}
}

// HelloHandler adapts an incoming http.Request to the relay pipeline
// and writes the pipeline's terminal response.
type HelloHandler struct {
	handler relay.Handler
	log     *zap.Logger
}

func (h *HelloHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	// Read the body. The whole payload is buffered in memory, with no
	// size limit enforced.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("failed to read body", zap.Error(err))
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	request := relay.Request{
		Path:   r.URL.Path,
		Method: r.Method,
		Header: r.Header,
		Body:   body,
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
