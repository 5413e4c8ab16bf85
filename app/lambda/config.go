package lambda

// ProxySource represents the event source the relay is invoked from
// when running as a Lambda.
type ProxySource string

const (
	// ProxySourceApiGatewayV1 represents an API Gateway v1 request.
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"

	// ProxySourceApiGatewayV2 represents an API Gateway v2 request.
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"

	// ProxySourceAlb represents an Application Load Balancer request.
	ProxySourceAlb ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

type Config struct {
	// ProxySource selects how incoming AWS Lambda events are translated
	// into http requests for the relay's mux.
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}
