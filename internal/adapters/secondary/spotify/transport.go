package spotify

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// loggingTransport logs every upstream call at debug level.
type loggingTransport struct {
	next http.RoundTripper
}

func newLoggingTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	entry := log.WithFields(log.Fields{
		"method":     req.Method,
		"url":        req.URL.Redacted(),
		"latency_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Debug("spotify request failed")
		return nil, err
	}

	entry.WithField("status", resp.StatusCode).Debug("spotify request completed")
	return resp, nil
}
