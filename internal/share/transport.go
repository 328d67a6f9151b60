package share

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Transport is one strategy for talking to the share service. Strategies are
// functionally equivalent and tried in order; a failure of the first one
// triggers exactly one retry on the next.
type Transport interface {
	Name() string
	PostForm(ctx context.Context, endpoint string, form url.Values) (status int, body []byte, err error)
	Delete(ctx context.Context, endpoint string) (status int, body []byte, err error)
}

// nativeTransport uses the standard HTTP client.
type nativeTransport struct {
	client *http.Client
}

func newNativeTransport(timeout time.Duration) *nativeTransport {
	return &nativeTransport{client: &http.Client{Timeout: timeout}}
}

func (t *nativeTransport) Name() string { return "http" }

func (t *nativeTransport) PostForm(ctx context.Context, endpoint string, form url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return t.do(req)
}

func (t *nativeTransport) Delete(ctx context.Context, endpoint string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	return t.do(req)
}

func (t *nativeTransport) do(req *http.Request) (int, []byte, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// curlTransport shells out to the curl binary. It exists as a fallback for
// hosts where the native TLS stack is broken by interception proxies.
type curlTransport struct {
	binary  string
	timeout time.Duration
}

func newCurlTransport(binary string, timeout time.Duration) *curlTransport {
	if binary == "" {
		binary = "curl"
	}
	return &curlTransport{binary: binary, timeout: timeout}
}

func (t *curlTransport) Name() string { return "curl" }

func (t *curlTransport) PostForm(ctx context.Context, endpoint string, form url.Values) (int, []byte, error) {
	args := []string{"-s", "-S", "-X", "POST"}
	for key, values := range form {
		for _, v := range values {
			args = append(args, "--data-urlencode", key+"="+v)
		}
	}
	return t.run(ctx, endpoint, args)
}

func (t *curlTransport) Delete(ctx context.Context, endpoint string) (int, []byte, error) {
	return t.run(ctx, endpoint, []string{"-s", "-S", "-X", "DELETE"})
}

// run executes curl and splits the status code that -w appends after the body.
func (t *curlTransport) run(ctx context.Context, endpoint string, args []string) (int, []byte, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
		args = append(args, "--max-time", strconv.Itoa(int(t.timeout.Seconds())))
	}
	args = append(args,
		"-H", "Accept: application/json",
		"-w", "\n%{http_code}",
		endpoint,
	)

	out, err := exec.CommandContext(ctx, t.binary, args...).Output()
	if err != nil {
		return 0, nil, fmt.Errorf("curl: %w", err)
	}

	idx := bytes.LastIndexByte(out, '\n')
	if idx < 0 {
		return 0, nil, fmt.Errorf("curl: malformed output")
	}
	status, err := strconv.Atoi(strings.TrimSpace(string(out[idx+1:])))
	if err != nil {
		return 0, nil, fmt.Errorf("curl: malformed status: %w", err)
	}
	return status, out[:idx], nil
}
