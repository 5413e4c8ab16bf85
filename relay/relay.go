package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// UpstreamURL is the fixed endpoint all payloads are forwarded to.
const UpstreamURL = "https://postman-echo.com/post"

// Relay forwards a decoded JSON payload to the upstream service and
// returns the upstream's decoded JSON response.
type Relay interface {
	Forward(ctx context.Context, payload any) (any, error)
}

// UpstreamRelay is a Relay backed by a single shared HTTP client.
type UpstreamRelay struct {
	client *resty.Client
	url    string

	log *zap.Logger
}

var _ Relay = (*UpstreamRelay)(nil)

// RelayParams defines the dependencies for the relay.
type RelayParams struct {
	fx.In

	// Log is the logger to use for the relay
	Log *zap.Logger
}

// NewRelay creates a new relay. The underlying client is constructed
// once and shared across all in-flight requests; its connection pool
// lives for the lifetime of the process.
func NewRelay(params RelayParams) (Relay, error) {
	return &UpstreamRelay{
		client: resty.New(),
		url:    UpstreamURL,
		log:    params.Log.Named("relay"),
	}, nil
}

func (r *UpstreamRelay) Forward(ctx context.Context, payload any) (any, error) {
	// Marshal the payload ourselves: the payload may be any JSON value,
	// scalars and null included, which the client would otherwise refuse
	// or send as raw unquoted bytes.
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamRequest, err)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(r.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamRequest, err)
	}

	var decoded any
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		r.log.Debug("undecodable upstream response",
			zap.Int("status", resp.StatusCode()),
			zap.Error(err),
		)
		return nil, ErrUpstreamDecode
	}

	return decoded, nil
}
