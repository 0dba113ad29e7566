package transport

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LogRoundTripper logs method, URL, status and duration of every outbound request.
type LogRoundTripper struct {
	Base   http.RoundTripper
	Logger *zap.SugaredLogger
}

func (l *LogRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rt := l.Base
	if rt == nil {
		rt = http.DefaultTransport
	}
	if l.Logger == nil {
		return rt.RoundTrip(req)
	}

	start := time.Now()
	resp, err := rt.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.Logger.Debugw("outbound request failed",
			"method", req.Method, "url", redactedURL(req), "duration", duration, "err", err)
		return nil, err
	}

	l.Logger.Debugw("outbound request",
		"method", req.Method, "url", redactedURL(req), "status", resp.StatusCode,
		"size", resp.ContentLength, "duration", duration)
	return resp, nil
}

// redactedURL drops the query string, which may carry tracking ids.
func redactedURL(req *http.Request) string {
	if req.URL == nil {
		return ""
	}
	u := *req.URL
	u.RawQuery = ""
	u.User = nil
	return u.String()
}
