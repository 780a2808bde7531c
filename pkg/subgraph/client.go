// Package subgraph queries the veBAL lock records indexed by the Balancer
// subgraphs over GraphQL.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/network"
)

const (
	defaultHTTPTimeout = 15 * time.Second

	// Limit error-body reads so a misbehaving gateway cannot flood the logs.
	maxErrBodyBytes = 4096
)

// ErrUnknownNetwork is returned when no endpoint is configured for a network.
var ErrUnknownNetwork = errors.New("no subgraph endpoint for network")

// QueryError carries the errors array of a GraphQL response.
type QueryError struct {
	Network  network.Network
	Messages []string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("subgraph %s returned errors: %s", e.Network, strings.Join(e.Messages, "; "))
}

// Client runs queries against one subgraph endpoint per network.
type Client struct {
	endpoints  map[network.Network]string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client. A nil httpClient gets a default with a 15s timeout.
func NewClient(endpoints map[network.Network]string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	eps := make(map[network.Network]string, len(endpoints))
	for n, url := range endpoints {
		eps[n] = url
	}
	return &Client{
		endpoints:  eps,
		httpClient: httpClient,
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// query posts a GraphQL document to the endpoint of n and decodes its data
// member into out.
func (c *Client) query(ctx context.Context, n network.Network, query string, vars map[string]any, out any) error {
	url, ok := c.endpoints[n]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNetwork, n)
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("call subgraph %s: %w", n, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readHTTPError(n, resp)
	}

	var gr graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return fmt.Errorf("decode subgraph %s response: %w", n, err)
	}
	if len(gr.Errors) > 0 {
		qe := &QueryError{Network: n}
		for _, e := range gr.Errors {
			qe.Messages = append(qe.Messages, e.Message)
		}
		return qe
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return fmt.Errorf("subgraph %s response has no data", n)
	}
	if err := json.Unmarshal(gr.Data, out); err != nil {
		return fmt.Errorf("decode subgraph %s data: %w", n, err)
	}

	c.logger.Debug("Subgraph query completed",
		zap.String("network", n.String()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func readHTTPError(n network.Network, resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
	if err != nil {
		return fmt.Errorf("subgraph %s returned %d and body read failed: %w", n, resp.StatusCode, err)
	}
	return fmt.Errorf("subgraph %s returned %d: %s", n, resp.StatusCode, string(b))
}
