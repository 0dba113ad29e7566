// Package client builds the outbound HTTP client shared by the roster loader,
// the messaging API client and the analytics forwarder.
package client

import (
	"net/http"

	"github.com/and161185/line-insight/internal/client/transport"
	"github.com/and161185/line-insight/internal/config"
)

// NewHTTPClient returns an http.Client with the configured timeout whose requests
// are logged at debug level.
func NewHTTPClient(cfg *config.InsightConfig) *http.Client {
	hc := &http.Client{Timeout: cfg.ClientTimeout}
	var rt http.RoundTripper = http.DefaultTransport
	if cfg.Logger != nil {
		rt = &transport.LogRoundTripper{Base: rt, Logger: cfg.Logger}
	}
	hc.Transport = rt
	return hc
}
