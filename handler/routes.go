package handler

import (
	"github.com/relaykit/relay/internal/server"
)

func NewHelloRoute(handler *HelloHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/hello", handler)
}

// NewFallbackRoute routes every other path through the same pipeline,
// which answers 404 for anything but POST /hello.
func NewFallbackRoute(handler *HelloHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
