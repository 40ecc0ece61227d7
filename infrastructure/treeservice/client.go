// Package treeservice implements the HTTP client for the remote graph
// service that owns graph storage and path computation.
package treeservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"skilltree-backend/domain/graph"
	"skilltree-backend/pkg/errors"
	"skilltree-backend/pkg/observability"
)

// Client talks to the remote graph service:
//
//	GET {base}/tree                          -> universal Tree
//	GET {base}/paths/{startID}/{targetID}    -> induced path Tree
//
// Non-2xx responses and non-JSON bodies are failures, never empty results.
// Fetched trees are validated before they are handed to the application.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewClient creates a client for the graph service at baseURL
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Collector, logger *zap.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "graph-service",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Only trip once there are enough requests to make a decision
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchTree retrieves the complete universal tree. Any failure surfaces as a
// tree unavailable error, which the session treats as blocking.
func (c *Client) FetchTree(ctx context.Context) (*graph.Tree, error) {
	tree, err := c.getTree(ctx, "tree", c.baseURL+"/tree")
	if err != nil {
		if errors.IsMalformedGraph(err) {
			return nil, err
		}
		return nil, errors.NewTreeUnavailableError(err)
	}
	return tree, nil
}

// FetchPath retrieves the induced path subgraph from startID to targetID.
// A non-success status is a failure, not an empty path.
func (c *Client) FetchPath(ctx context.Context, startID, targetID string) (*graph.Tree, error) {
	endpoint := fmt.Sprintf("%s/paths/%s/%s",
		c.baseURL,
		url.PathEscape(startID),
		url.PathEscape(targetID),
	)
	tree, err := c.getTree(ctx, "path", endpoint)
	if err != nil {
		if errors.IsMalformedGraph(err) {
			return nil, err
		}
		return nil, errors.NewPathRequestFailedError(startID, targetID, err)
	}
	return tree, nil
}

// getTree performs a GET through the circuit breaker and decodes a Tree
func (c *Client) getTree(ctx context.Context, operation, endpoint string) (*graph.Tree, error) {
	start := time.Now()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
		}

		var tree graph.Tree
		if err := json.NewDecoder(resp.Body).Decode(&tree); err != nil {
			return nil, fmt.Errorf("decoding tree payload: %w", err)
		}

		return &tree, nil
	})

	c.metrics.RemoteDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.RemoteCalls.WithLabelValues(operation, "error").Inc()
		c.logger.Warn("Graph service call failed",
			zap.String("operation", operation),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, err
	}

	tree := result.(*graph.Tree)
	if err := tree.Validate(); err != nil {
		// Fail fast rather than silently rendering dangling edges
		c.metrics.RemoteCalls.WithLabelValues(operation, "malformed").Inc()
		return nil, err
	}

	c.metrics.RemoteCalls.WithLabelValues(operation, "ok").Inc()
	return tree, nil
}
