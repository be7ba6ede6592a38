package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPublicIPURL is the ipify endpoint answering {"ip": "<addr>"}.
const DefaultPublicIPURL = "https://api.ipify.org?format=json"

// maxBodySize caps how much of a response is read before parsing.
const maxBodySize = 1 << 20

var errMissingIP = errors.New(`response has no string "ip" field`)

// Observer is told about every finished lookup.
type Observer interface {
	ObserveLookup(outcome string, elapsed time.Duration)
}

// Resolver looks up the address this host is seen from on the internet.
// It holds no per-lookup state and is safe for concurrent use.
type Resolver struct {
	url      string
	client   *http.Client
	logger   *zap.Logger
	observer Observer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.client = c
	}
}

// WithLogger sets where lookup diagnostics are written.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// WithObserver registers an Observer, typically the metrics collector.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		r.observer = o
	}
}

// NewResolver returns a Resolver querying url. An empty url means
// DefaultPublicIPURL.
func NewResolver(url string, opts ...Option) *Resolver {
	if url == "" {
		url = DefaultPublicIPURL
	}
	r := &Resolver{
		url:    url,
		client: &http.Client{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// URL returns the endpoint the resolver queries.
func (r *Resolver) URL() string {
	return r.url
}

// Resolve performs one round trip to the lookup service. It never
// retries and always returns exactly one Result.
func (r *Resolver) Resolve(ctx context.Context) Result {
	id := uuid.NewString()
	start := time.Now()

	res := r.fetch(ctx)

	elapsed := time.Since(start)
	if res.OK() {
		r.logger.Debug("public ip resolved",
			zap.String("lookup_id", id),
			zap.String("ip", res.Address),
			zap.Duration("elapsed", elapsed))
	} else {
		r.logger.Warn("public ip lookup failed",
			zap.String("lookup_id", id),
			zap.Stringer("kind", res.Failure.Kind),
			zap.Error(res.Failure.Err),
			zap.Duration("elapsed", elapsed))
	}
	if r.observer != nil {
		r.observer.ObserveLookup(res.Outcome(), elapsed)
	}
	return res
}

// Go runs Resolve on its own goroutine. The returned channel delivers
// exactly one Result and is then closed.
func (r *Resolver) Go(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- r.Resolve(ctx)
	}()
	return ch
}

func (r *Resolver) fetch(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return Fail(NetworkError, fmt.Errorf("building request: %w", err))
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Fail(NetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Fail(NetworkError, fmt.Errorf("reading body: %w", err))
	}

	// Any non-2xx answer is a response of the wrong shape, whatever its body.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Fail(ParseError, fmt.Errorf("unexpected status %s", resp.Status))
	}

	addr, err := parseIP(body)
	if err != nil {
		return Fail(ParseError, err)
	}
	return Success(addr)
}

// parseIP wants the exact key "ip"; encoding/json would also accept "IP"
// or "Ip" when decoding into a struct.
func parseIP(body []byte) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", fmt.Errorf("decoding body: %w", err)
	}
	raw, ok := fields["ip"]
	if !ok {
		return "", errMissingIP
	}
	var ip *string
	if err := json.Unmarshal(raw, &ip); err != nil {
		return "", fmt.Errorf("decoding ip: %w", err)
	}
	if ip == nil {
		return "", errMissingIP
	}
	return *ip, nil
}
