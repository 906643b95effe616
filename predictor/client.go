// Package predictor submits sequences to an ESMFold-style structure
// prediction service and returns the predicted PDB text.
package predictor

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"love_fold_go/config"
	"love_fold_go/logger"
	"love_fold_go/seq_encoder"
)

// Folder turns a sequence into PDB text. Client and Cache implement it.
type Folder interface {
	Fold(ctx context.Context, sequence string) (string, error)
}

// ErrMalformedResponse is returned when a 2xx body holds no ATOM records.
var ErrMalformedResponse = errors.New("predictor response contains no ATOM records")

const maxErrorBody = 512

type Client struct {
	url     string
	http    *http.Client
	retries int
	backoff time.Duration
	log     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client from the predictor section of the configuration.
func New(cfg config.PredictorConfig, opts ...Option) *Client {
	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}
	c := &Client{
		url:     cfg.URL,
		http:    newHTTPClient(cfg.Timeout),
		retries: retries,
		backoff: cfg.Backoff,
		log:     logger.L(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: tr, Timeout: timeout}
}

// statusError carries a non-2xx response.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http status %d", e.Code)
	}
	return fmt.Sprintf("http status %d: %s", e.Code, e.Body)
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// Fold validates sequence, posts it and returns the PDB body. Transport
// errors, 429 and 5xx responses are retried with a linearly growing pause;
// other 4xx responses fail at once.
func (c *Client) Fold(ctx context.Context, sequence string) (string, error) {
	if err := seq_encoder.Validate(sequence); err != nil {
		return "", &config.OpError{Op: "predictor.fold", Kind: config.KindInvalidInput, Err: err}
	}

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			pause := c.backoff * time.Duration(attempt)
			c.log.Warn("predictor.retry", "attempt", attempt+1, "pause", pause, "error", lastErr)
			if err := sleep(ctx, pause); err != nil {
				return "", &config.OpError{Op: "predictor.fold", Kind: config.KindPredictor, Path: c.url, Err: err}
			}
		}

		start := time.Now()
		body, err := c.post(ctx, sequence)
		c.log.Debug("predictor.request", "url", c.url, "length", len(sequence), "attempt", attempt+1,
			"elapsed", time.Since(start), "ok", err == nil)
		if err == nil {
			if !strings.Contains(body, "ATOM") {
				return "", &config.OpError{Op: "predictor.fold", Kind: config.KindPredictor, Path: c.url, Err: ErrMalformedResponse}
			}
			return body, nil
		}

		lastErr = err
		var se *statusError
		if errors.As(err, &se) && !retryable(se.Code) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}
	return "", &config.OpError{Op: "predictor.fold", Kind: config.KindPredictor, Path: c.url, Err: lastErr}
}

func (c *Client) post(ctx context.Context, sequence string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(sequence))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "text/plain, chemical/x-pdb")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(raw))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return "", &statusError{Code: resp.StatusCode, Body: snippet}
	}
	if isGzip(raw) {
		if raw, err = gunzip(raw); err != nil {
			return "", err
		}
	}
	return string(raw), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isGzip(body []byte) bool {
	return len(body) >= 2 && body[0] == 0x1f && body[1] == 0x8b
}

func gunzip(body []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
