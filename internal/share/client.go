// Package share implements the ephemeral-link client: pushing a password to
// a Password-Pusher-compatible service, expiring links, and tracking the
// session link history.
package share

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/probe"
)

// DefaultBaseURL is the public share-service endpoint.
const DefaultBaseURL = "https://pwpush.com"

// ServiceName appears in logs and failure messages.
const ServiceName = "share service"

// PushOptions carry the creation parameters of an ephemeral link.
type PushOptions struct {
	ExpireDays        int
	ExpireViews       int
	DeletableByViewer bool
	RetrievalStep     bool
	Passphrase        string
	UseQRCode         bool
	// PreferCurl swaps the transport order so curl is tried first.
	PreferCurl bool
}

// Prober is the availability precondition gate.
type Prober interface {
	Available(ctx context.Context, svc probe.Service) bool
}

// Client talks to the share service. Push and Expire fold every failure
// into their result values; nothing propagates to the caller.
type Client struct {
	baseURL  string
	native   Transport
	fallback Transport
	prober   Prober
	history  *History
	log      *zap.Logger
}

// NewClient creates a Client against baseURL. curlBinary may be empty to use
// "curl" from PATH. A zero timeout defaults to 10 seconds.
func NewClient(baseURL, curlBinary string, timeout time.Duration, prober Prober, history *History, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		native:   newNativeTransport(timeout),
		fallback: newCurlTransport(curlBinary, timeout),
		prober:   prober,
		history:  history,
		log:      log,
	}
}

// History exposes the session link history.
func (c *Client) History() *History {
	return c.history
}

// ProbeService is the availability target for the share service. Any answer
// below 500 counts: the landing page may redirect or require cookies.
func (c *Client) ProbeService() probe.Service {
	return probe.Service{
		Name:         ServiceName,
		URL:          c.baseURL,
		AcceptStatus: probe.NotServerError,
	}
}

// Push creates an ephemeral link for the password. The primary transport is
// retried exactly once on the fallback before giving up. On success the
// canonical <service>/p/<token> URL is appended to the history.
func (c *Client) Push(ctx context.Context, password string, opts PushOptions) models.PushResult {
	if !c.prober.Available(ctx, c.ProbeService()) {
		return models.PushResult{Log: ServiceName + " unavailable"}
	}

	form := url.Values{}
	form.Set("password[payload]", password)
	form.Set("password[expire_after_days]", strconv.Itoa(opts.ExpireDays))
	form.Set("password[expire_after_views]", strconv.Itoa(opts.ExpireViews))
	form.Set("password[deletable_by_viewer]", strconv.FormatBool(opts.DeletableByViewer))
	form.Set("password[retrieval_step]", strconv.FormatBool(opts.RetrievalStep))
	if opts.Passphrase != "" {
		form.Set("password[passphrase]", opts.Passphrase)
	}
	if opts.UseQRCode {
		form.Set("password[kind]", "qr")
	}

	attemptID := uuid.NewString()
	endpoint := c.baseURL + "/p.json"
	transports := []Transport{c.native, c.fallback}
	if opts.PreferCurl {
		transports[0], transports[1] = transports[1], transports[0]
	}

	var lastLog string
	for _, tr := range transports {
		status, body, err := tr.PostForm(ctx, endpoint, form)
		if err != nil {
			lastLog = fmt.Sprintf("push via %s failed: %v", tr.Name(), err)
			c.log.Warn("share push transport failed",
				zap.String("attempt", attemptID),
				zap.String("transport", tr.Name()),
				zap.Error(err))
			continue
		}
		if status < 200 || status > 299 {
			lastLog = fmt.Sprintf("push via %s rejected: status %d", tr.Name(), status)
			c.log.Warn("share push rejected",
				zap.String("attempt", attemptID),
				zap.String("transport", tr.Name()),
				zap.Int("status", status))
			continue
		}

		token := gjson.GetBytes(body, "url_token").String()
		if token == "" {
			c.log.Warn("share response missing url_token",
				zap.String("attempt", attemptID),
				zap.String("transport", tr.Name()))
			return models.PushResult{Log: "share response carried no url_token"}
		}

		link := c.history.Append(c.baseURL + "/p/" + token)
		c.log.Info("share link created",
			zap.String("attempt", attemptID),
			zap.String("transport", tr.Name()),
			zap.String("url", link.URL))
		return models.PushResult{
			Success:  true,
			URL:      link.URL,
			IsQRCode: opts.UseQRCode,
			Log:      fmt.Sprintf("link created via %s", tr.Name()),
		}
	}

	return models.PushResult{Log: lastLog}
}

// Expire deletes the link with the given token. A 404 answer counts as
// success: an already-gone link is expired by definition.
func (c *Client) Expire(ctx context.Context, token string) models.ExpireResult {
	if !c.prober.Available(ctx, c.ProbeService()) {
		return models.ExpireResult{Log: ServiceName + " unavailable"}
	}

	status, _, err := c.native.Delete(ctx, c.baseURL+"/p/"+token+".json")
	if err != nil {
		c.log.Warn("share expire failed", zap.String("token", token), zap.Error(err))
		return models.ExpireResult{Log: fmt.Sprintf("expire failed: %v", err)}
	}
	if (status < 200 || status > 299) && status != http.StatusNotFound {
		c.log.Warn("share expire rejected", zap.String("token", token), zap.Int("status", status))
		return models.ExpireResult{Log: fmt.Sprintf("expire rejected: status %d", status)}
	}

	c.history.MarkExpired(token)
	return models.ExpireResult{Success: true, Log: "link expired"}
}
