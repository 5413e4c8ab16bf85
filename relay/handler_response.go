package relay

import (
	"errors"
	"net/http"
)

// getErrorStatusCode returns the status code for the given error.
func getErrorStatusCode(err error) int {
	for wellKnown, status := range wellKnownErrors {
		if errors.Is(err, wellKnown) {
			return status
		}
	}

	return http.StatusInternalServerError
}

// newErrorResponse creates a terminal response for the given error.
// Error bodies are plain text, mirroring what callers of the relay
// expect on every non-200 path.
func newErrorResponse(err error) Response {
	return newTextResponse(getErrorStatusCode(err), []byte(err.Error()))
}

// newTextResponse creates a new plain-text response.
func newTextResponse(status int, body []byte) Response {
	header := make(http.Header)
	header.Add("Content-Type", "text/plain; charset=utf-8")

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}

// newJSONResponse creates a new JSON response.
func newJSONResponse(status int, body []byte) Response {
	header := make(http.Header)
	header.Add("Content-Type", "application/json")

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}
