// Package probe implements the lightweight service-availability check that
// gates every remote call.
package probe

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single probe request. Probes are meant to be
// cheap; a service that cannot answer this fast is treated as down.
const DefaultTimeout = 3 * time.Second

// Service describes one probe target with its per-service heuristic for
// interpreting the HTTP status.
type Service struct {
	Name string
	URL  string
	// AcceptStatus reports whether the status code counts as "available".
	AcceptStatus func(status int) bool
}

// StatusOK accepts only 200.
func StatusOK(status int) bool { return status == http.StatusOK }

// NotServerError accepts anything below 500: a reachable service answering
// 4xx on its root page is still up.
func NotServerError(status int) bool { return status < http.StatusInternalServerError }

// Prober performs availability checks with a shared short-timeout client.
type Prober struct {
	client *http.Client
	log    *zap.Logger
}

// New creates a Prober. A zero timeout falls back to DefaultTimeout.
func New(timeout time.Duration, log *zap.Logger) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: timeout,
			},
		},
		log: log,
	}
}

// Available performs a GET against the service's probe URL and applies its
// status heuristic. Any transport failure, including timeout, yields false;
// the probe never returns an error.
func (p *Prober) Available(ctx context.Context, svc Service) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.URL, nil)
	if err != nil {
		p.log.Warn("invalid probe URL", zap.String("service", svc.Name), zap.Error(err))
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			p.log.Info("probe timed out", zap.String("service", svc.Name))
		} else {
			p.log.Info("probe failed", zap.String("service", svc.Name), zap.Error(err))
		}
		return false
	}
	defer resp.Body.Close()

	accept := svc.AcceptStatus
	if accept == nil {
		accept = StatusOK
	}
	up := accept(resp.StatusCode)
	if !up {
		p.log.Info("probe rejected status",
			zap.String("service", svc.Name), zap.Int("status", resp.StatusCode))
	}
	return up
}
