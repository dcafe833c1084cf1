// Package probe smoke-checks running demo servers by calling every endpoint
// in the catalog once.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"apidemo/internal/domain/user"
	"apidemo/internal/http/routes"
	"apidemo/internal/httpclient"
	"apidemo/internal/logging"
)

const (
	SampleUserID = "42"
	SampleName   = "Ada Lovelace"
	SampleEmail  = "ada@example.com"
)

// Result is the outcome of one endpoint call. Status is 200 for any success
// and 0 when no response arrived at all.
type Result struct {
	Endpoint routes.Endpoint
	Status   int
	Elapsed  time.Duration
	Err      error
}

func (r Result) OK() bool { return r.Err == nil }

// Prober calls endpoints on the servers it has a client for.
type Prober struct {
	clients map[string]*httpclient.Client
	logger  logging.Logger
}

// New builds a prober. baseURLs maps a framework name to the root URL of
// its server, e.g. "fastapi" -> "http://127.0.0.1:8082".
func New(baseURLs map[string]string, timeout time.Duration, logger logging.Logger) (*Prober, error) {
	clients := make(map[string]*httpclient.Client, len(baseURLs))
	for name, base := range baseURLs {
		c, err := httpclient.New(base, timeout, logger)
		if err != nil {
			return nil, fmt.Errorf("client for %s: %w", name, err)
		}
		clients[name] = c
	}
	return &Prober{clients: clients, logger: logger}, nil
}

// Run probes every endpoint of the catalog that belongs to a known server.
// It stops early only when ctx is done.
func (p *Prober) Run(ctx context.Context, catalog routes.Catalog) []Result {
	var results []Result
	for _, ep := range catalog.Endpoints() {
		if _, ok := p.clients[ep.Framework]; !ok {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		res := p.Probe(ctx, ep)
		if res.Err != nil {
			p.logger.Warn("probe failed", "endpoint", ep.String(), "framework", ep.Framework, "error", res.Err)
		} else {
			p.logger.Info("probe ok", "endpoint", ep.String(), "framework", ep.Framework, "status", res.Status)
		}
		results = append(results, res)
	}
	return results
}

// Probe calls a single endpoint: a GET with the sample id substituted for
// any path parameter, or a POST carrying the sample user.
func (p *Prober) Probe(ctx context.Context, ep routes.Endpoint) Result {
	res := Result{Endpoint: ep}
	c, ok := p.clients[ep.Framework]
	if !ok {
		res.Err = fmt.Errorf("no server configured for %s", ep.Framework)
		return res
	}

	start := time.Now()
	var out map[string]any
	switch ep.Method {
	case http.MethodGet:
		path := ep.Path
		if _, hasParam := ep.Param(); hasParam {
			path = ep.Expand(url.PathEscape(SampleUserID))
		}
		res.Err = c.GetJSON(ctx, path, nil, &out)
	case http.MethodPost:
		res.Err = c.PostJSON(ctx, ep.Path, user.User{Name: SampleName, Email: SampleEmail}, &out)
	default:
		res.Err = fmt.Errorf("unsupported method %s", ep.Method)
		return res
	}
	res.Elapsed = time.Since(start)
	res.Status = statusOf(res.Err)
	return res
}

func statusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var herr *httpclient.HTTPError
	if errors.As(err, &herr) {
		return herr.StatusCode
	}
	return 0
}
