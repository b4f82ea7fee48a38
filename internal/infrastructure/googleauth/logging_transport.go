package googleauth

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// loggingTransport wraps an existing http.RoundTripper and logs outgoing
// Google API requests and their status at debug level. Bodies are never
// logged: uploads carry the audio itself.
type loggingTransport struct {
	base   http.RoundTripper
	logger *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.logger.Debug("google api request", zap.String("method", req.Method), zap.String("url", req.URL.Redacted()))

	rt := t.base
	if rt == nil {
		rt = http.DefaultTransport
	}
	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.logger.Debug("google api error", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return resp, err
	}

	t.logger.Debug("google api response", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}
