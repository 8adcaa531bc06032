// Package api is the typed HTTP client for the two admin backends. Every
// endpoint has its own method and its own response envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopadmin/config"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// Backend selects which remote service an endpoint lives on.
type Backend int

const (
	// AdminBackend serves admin users, products and retailer nested collections.
	AdminBackend Backend = iota
	// RetailBackend serves categories, roles, retailers, customers and tracking.
	RetailBackend
)

func (b Backend) String() string {
	if b == RetailBackend {
		return "retail"
	}
	return "admin"
}

// Options configures a Client.
type Options struct {
	AdminURL  string
	RetailURL string
	Token     string
	Timeout   time.Duration
	Logger    *zap.Logger
}

// Client talks to the admin and retail backends. It is safe for concurrent use.
type Client struct {
	adminURL  string
	retailURL string
	token     string
	timeout   time.Duration
	http      *fiber.Client
	log       *zap.Logger
}

// New creates a Client.
func New(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	retail := opts.RetailURL
	if retail == "" {
		retail = opts.AdminURL
	}
	return &Client{
		adminURL:  strings.TrimRight(opts.AdminURL, "/"),
		retailURL: strings.TrimRight(retail, "/"),
		token:     opts.Token,
		timeout:   opts.Timeout,
		http: &fiber.Client{
			UserAgent:   "shopadmin",
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
		log: log.Named("api"),
	}
}

// NewFromConfig creates a Client from the application configuration.
func NewFromConfig(cfg config.Config, log *zap.Logger) *Client {
	return New(Options{
		AdminURL:  cfg.AdminAPIURL,
		RetailURL: cfg.RetailAPIURL,
		Token:     cfg.APIToken,
		Timeout:   cfg.RequestTimeout,
		Logger:    log,
	})
}

type request struct {
	method  string
	backend Backend
	path    string
	query   url.Values
	body    any
}

func (r request) endpoint() string {
	return r.method + " " + r.path
}

type result struct {
	code int
	body []byte
	errs []error
}

// do performs one request and decodes a 2xx body into out (when non-nil).
// If ctx ends first the response is discarded; the request itself keeps
// running until the transport finishes with it.
func (c *Client) do(ctx context.Context, r request, out any) error {
	base := c.adminURL
	if r.backend == RetailBackend {
		base = c.retailURL
	}

	var payload []byte
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", r.endpoint(), err)
		}
		payload = b
	}

	agent := c.agent(r.method, base+r.path)
	reqID := uuid.NewString()
	agent.Set(HeaderRequestID, reqID)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if len(r.query) > 0 {
		agent.QueryString(r.query.Encode())
	}
	if payload != nil {
		agent.ContentType(fiber.MIMEApplicationJSON)
		agent.Body(payload)
	}
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}

	log := c.log.With(
		zap.String("endpoint", r.endpoint()),
		zap.Stringer("backend", r.backend),
		zap.String("request_id", reqID),
	)

	start := time.Now()
	done := make(chan result, 1)
	go func() {
		code, body, errs := agent.Bytes()
		done <- result{code: code, body: body, errs: errs}
	}()

	var res result
	select {
	case <-ctx.Done():
		log.Debug("response discarded", zap.Error(ctx.Err()))
		return ctx.Err()
	case res = <-done:
	}

	if len(res.errs) > 0 {
		err := &TransportError{Endpoint: r.endpoint(), Err: errors.Join(res.errs...)}
		log.Warn("request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return err
	}

	log.Debug("request completed", zap.Int("status", res.code), zap.Duration("elapsed", time.Since(start)))

	if res.code < 200 || res.code > 299 {
		err := newError(r.endpoint(), res.code, res.body)
		log.Warn("request rejected", zap.Int("status", res.code), zap.String("message", err.Message))
		return err
	}

	if out == nil || len(bytes.TrimSpace(res.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		derr := &DecodeError{Endpoint: r.endpoint(), Err: err}
		log.Warn("response decode failed", zap.Error(derr))
		return derr
	}
	return nil
}

func (c *Client) agent(method, uri string) *fiber.Agent {
	switch method {
	case fiber.MethodPost:
		return c.http.Post(uri)
	case fiber.MethodPut:
		return c.http.Put(uri)
	case fiber.MethodDelete:
		return c.http.Delete(uri)
	default:
		return c.http.Get(uri)
	}
}

func pathID(id string) string {
	return url.PathEscape(id)
}
