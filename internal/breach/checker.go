// Package breach implements the k-anonymity breach lookup: only the first
// five characters of the password's SHA-1 digest ever leave the machine.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/probe"
)

// DefaultBaseURL is the public range endpoint of the breach database.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// ServiceName appears in logs and in the unavailable-result message.
const ServiceName = "breach database"

// Prober is the availability precondition gate.
type Prober interface {
	Available(ctx context.Context, svc probe.Service) bool
}

// Checker queries the range endpoint. All failures are folded into the
// returned BreachResult; Check never panics and never returns an error.
type Checker struct {
	baseURL string
	client  *http.Client
	prober  Prober
	log     *zap.Logger
}

// NewChecker creates a Checker against baseURL with the given request
// timeout. A zero timeout defaults to 10 seconds.
func NewChecker(baseURL string, timeout time.Duration, prober Prober, log *zap.Logger) *Checker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Checker{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		prober:  prober,
		log:     log,
	}
}

// ProbeService is the availability target for the breach database: a fixed
// range query that must answer 200.
func (c *Checker) ProbeService() probe.Service {
	return probe.Service{
		Name:         ServiceName,
		URL:          c.baseURL + "/range/AAAAA",
		AcceptStatus: probe.StatusOK,
	}
}

// Check looks the password up in the breach database. The SHA-1 digest is
// split into a 5-character prefix (sent) and a 35-character suffix (matched
// locally against the returned SUFFIX:COUNT lines).
func (c *Checker) Check(ctx context.Context, password string) models.BreachResult {
	if !c.prober.Available(ctx, c.ProbeService()) {
		return models.BreachResult{Error: ServiceName + " unavailable"}
	}

	sum := sha1.Sum([]byte(password))
	digest := fmt.Sprintf("%X", sum)
	prefix, suffix := digest[:5], digest[5:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/range/"+prefix, nil)
	if err != nil {
		return models.BreachResult{Error: err.Error()}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("breach lookup failed", zap.Error(err))
		return models.BreachResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("breach lookup rejected", zap.Int("status", resp.StatusCode))
		return models.BreachResult{Error: fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, ServiceName)}
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineSuffix, countStr, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if lineSuffix == suffix {
			count, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil {
				return models.BreachResult{Error: "malformed count in breach response"}
			}
			return models.BreachResult{Found: true, Count: count}
		}
	}
	if err := scanner.Err(); err != nil {
		c.log.Warn("breach response truncated", zap.Error(err))
		return models.BreachResult{Error: err.Error()}
	}

	return models.BreachResult{Found: false, Count: 0}
}
