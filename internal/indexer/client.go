package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	"rebalancer/internal/gql"
)

// Default client settings.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 500 * time.Millisecond
	DefaultPageSize     = 100

	maxErrorBody = 512
)

// Request is a GraphQL-over-HTTP request body.
type Request struct {
	Query         string `json:"query"`
	Variables     any    `json:"variables,omitempty"`
	OperationName string `json:"operationName,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors gqlerror.List   `json:"errors,omitempty"`
}

// Client talks to the indexer GraphQL endpoint.
type Client struct {
	endpoint     string
	httpClient   *http.Client
	headers      http.Header
	maxRetries   int
	retryBackoff time.Duration
	validate     bool
	logger       *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-attempt HTTP timeout on a copy of the installed
// http.Client, so a client passed to WithHTTPClient is left as it was.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Add(key, value)
	}
}

// WithRetry sets the retry budget for transport failures and 5xx/429 answers.
func WithRetry(maxRetries int, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryBackoff = backoff
	}
}

// WithValidation checks every document against the embedded schema before
// it is sent.
func WithValidation(enabled bool) Option {
	return func(c *Client) {
		c.validate = enabled
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client for an http(s) endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("indexer url is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse indexer url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("indexer url must be http or https: %s", endpoint)
	}

	c := &Client{
		endpoint:     endpoint,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		headers:      make(http.Header),
		maxRetries:   DefaultMaxRetries,
		retryBackoff: DefaultRetryBackoff,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Do executes a request and decodes the data member into out. When the
// response carries errors the partial data is still decoded and a
// *ResponseError is returned.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if req.Query == "" {
		return fmt.Errorf("query is required")
	}
	if c.validate {
		if _, err := gql.ValidateDocument(req.Query); err != nil {
			return err
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var resp response
	attempt := 0
	err = withRetry(ctx, c.maxRetries, c.retryBackoff, func(ctx context.Context) error {
		attempt++
		resp = response{}
		err := c.post(ctx, body, &resp)
		if err != nil && isRetryable(err) {
			c.logger.Warn("indexer request failed",
				zap.String("operation", req.OperationName),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	})
	if err != nil {
		return err
	}

	if out != nil && len(resp.Data) > 0 && !bytes.Equal(resp.Data, []byte("null")) {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			if len(resp.Errors) == 0 {
				return &decodeError{err: err}
			}
			c.logger.Debug("partial data decode failed", zap.String("operation", req.OperationName), zap.Error(err))
		}
	}
	if len(resp.Errors) > 0 {
		return &ResponseError{Operation: req.OperationName, Errors: resp.Errors}
	}
	return nil
}

func (c *Client) post(ctx context.Context, body []byte, out *response) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for key, values := range c.headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post indexer: %w", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// GraphQL servers may answer 4xx with a regular errors body.
		if httpResp.StatusCode < 500 && json.Unmarshal(data, out) == nil && len(out.Errors) > 0 {
			return nil
		}
		return &HTTPError{StatusCode: httpResp.StatusCode, Body: excerpt(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &decodeError{err: err}
	}
	return nil
}

func excerpt(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) > maxErrorBody {
		return string(data[:maxErrorBody]) + "..."
	}
	return string(data)
}

// GetLatestBlock returns the most recently indexed block.
func (c *Client) GetLatestBlock(ctx context.Context) (*gql.Block, error) {
	var res gql.GetLatestBlockQuery
	err := c.Do(ctx, Request{
		Query:         gql.GetLatestBlockDocument,
		OperationName: gql.GetLatestBlockOperation,
	}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.Blocks) == 0 {
		return nil, fmt.Errorf("latest block: %w", ErrNotFound)
	}
	return &res.Blocks[0], nil
}

// GetRouter returns a router with its swap pools and backstop pool.
func (c *Client) GetRouter(ctx context.Context, id string) (*gql.Router, error) {
	if id == "" {
		return nil, fmt.Errorf("router id is required")
	}
	var res gql.GetRouterQuery
	err := c.Do(ctx, Request{
		Query:         gql.GetRouterDocument,
		OperationName: gql.GetRouterOperation,
		Variables:     gql.GetRouterQueryVariables{ID: id},
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.RouterByID == nil {
		return nil, fmt.Errorf("router %s: %w", id, ErrNotFound)
	}
	return res.RouterByID, nil
}

// GetSquidStatus returns the processor status reported by the indexer.
func (c *Client) GetSquidStatus(ctx context.Context) (*gql.SquidStatus, error) {
	var res gql.GetSquidStatusQuery
	err := c.Do(ctx, Request{
		Query:         gql.GetSquidStatusDocument,
		OperationName: gql.GetSquidStatusOperation,
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.SquidStatus == nil {
		return nil, fmt.Errorf("squid status: %w", ErrNotFound)
	}
	return res.SquidStatus, nil
}

// GetSwapPools runs one page of the swap pool listing.
func (c *Client) GetSwapPools(ctx context.Context, vars gql.GetSwapPoolsQueryVariables) ([]gql.SwapPool, error) {
	for _, order := range vars.OrderBy {
		if !order.IsValid() {
			return nil, fmt.Errorf("invalid swap pool order: %s", order)
		}
	}
	var res gql.GetSwapPoolsQuery
	err := c.Do(ctx, Request{
		Query:         gql.GetSwapPoolsDocument,
		OperationName: gql.GetSwapPoolsOperation,
		Variables:     vars,
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.SwapPools, nil
}

// AllSwapPools pages through every swap pool matching where, ordered by id,
// until the indexer returns a short page.
func (c *Client) AllSwapPools(ctx context.Context, where *gql.SwapPoolWhereInput, pageSize int) ([]gql.SwapPool, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []gql.SwapPool
	offset := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		limit := pageSize
		pageOffset := offset
		page, err := c.GetSwapPools(ctx, gql.GetSwapPoolsQueryVariables{
			Where:   where,
			OrderBy: []gql.SwapPoolOrderByInput{gql.SwapPoolOrderByIDAsc},
			Limit:   &limit,
			Offset:  &pageOffset,
		})
		if err != nil {
			return nil, fmt.Errorf("swap pools offset %d: %w", offset, err)
		}
		all = append(all, page...)
		c.logger.Debug("swap pool page", zap.Int("offset", offset), zap.Int("rows", len(page)))
		if len(page) < pageSize {
			return all, nil
		}
		offset += len(page)
	}
}
