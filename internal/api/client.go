package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const basePath = "/api"

// Error is a non-2xx response from the backend. Detail carries the server's
// {"detail": ...} text verbatim when the body had one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.Status)
}

// Notifier receives user-visible failure notifications raised by the client.
type Notifier interface {
	Toast(kind, message string) // kind: "success", "error", "info"
}

type noopNotifier struct{}

func (noopNotifier) Toast(string, string) {}

// Client talks to the inventory/POS backend. Reads degrade to empty results
// on failure (the view shows "no data" instead of breaking); mutations run
// through a circuit breaker and report errors to both the notifier and the
// caller, so business flows decide whether to keep their pending state.
type Client struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	notifier Notifier
}

type Option func(*Client)

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

func New(baseURL string, opts ...Option) *Client {
	httpc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + basePath).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Reads are safe to retry; an order POST is not known to be
			// idempotent server-side.
			if r == nil || r.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	c := &Client{
		http:     httpc,
		notifier: noopNotifier{},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "pos-api",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.WithFields(log.Fields{
					"circuit": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Info("circuit breaker state changed")
			},
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// normalizePath forces a single leading slash and gives collection-root
// (single-segment) paths the trailing slash the backend's routers expect.
// Deeper paths are left without one.
func normalizePath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	if !strings.Contains(p, "/") {
		return "/" + p + "/"
	}
	return "/" + p
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	start := time.Now()
	resp, err := c.http.R().SetContext(ctx).Get(normalizePath(path))
	logCall(http.MethodGet, path, resp, start, err)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}

// getList fetches a collection and degrades to an empty slice on any
// failure, raising a notification instead of propagating the error.
func getList[T any](ctx context.Context, c *Client, path string) []T {
	var items []T
	if err := c.get(ctx, path, &items); err != nil {
		c.notifier.Toast("error", err.Error())
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// mutate issues a POST/PUT/DELETE through the circuit breaker. Failures are
// reported to the notifier and returned so the caller can preserve its
// pending local state.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any, headers map[string]string) error {
	start := time.Now()
	_, err := c.breaker.Execute(func() (any, error) {
		req := c.http.R().SetContext(ctx).SetHeaders(headers)
		if body != nil {
			req.SetBody(body)
		}
		resp, err := req.Execute(method, normalizePath(path))
		logCall(method, path, resp, start, err)
		if err != nil {
			return nil, fmt.Errorf("connection error: %w", err)
		}
		if resp.IsError() {
			return nil, decodeError(resp)
		}
		if out != nil {
			if err := json.Unmarshal(resp.Body(), out); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		}
		return nil, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			err = fmt.Errorf("service unavailable, try again shortly")
		}
		c.notifier.Toast("error", err.Error())
		return err
	}
	return nil
}

func decodeError(resp *resty.Response) error {
	apiErr := &Error{Status: resp.StatusCode()}
	var envelope struct {
		Detail string `json:"detail"`
	}
	if jsonErr := json.Unmarshal(resp.Body(), &envelope); jsonErr == nil {
		apiErr.Detail = envelope.Detail
	}
	return apiErr
}

func logCall(method, path string, resp *resty.Response, start time.Time, err error) {
	fields := log.Fields{
		"method":      method,
		"path":        path,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if resp != nil {
		fields["status"] = resp.StatusCode()
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("api call failed")
		return
	}
	log.WithFields(fields).Debug("api call")
}
