package indexer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// ErrNotFound is returned when the indexer answers with a null entity or an
// empty result where one row was expected.
var ErrNotFound = errors.New("not found")

// HTTPError is a non-2xx answer from the indexer endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("indexer http status %d", e.StatusCode)
	}
	return fmt.Sprintf("indexer http status %d: %s", e.StatusCode, e.Body)
}

// ResponseError carries the errors array of a GraphQL response. Any partial
// data has already been decoded into the caller's result.
type ResponseError struct {
	Operation string
	Errors    gqlerror.List
}

func (e *ResponseError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("graphql: %s", strings.TrimSpace(e.Errors.Error()))
	}
	return fmt.Sprintf("graphql %s: %s", e.Operation, strings.TrimSpace(e.Errors.Error()))
}

type decodeError struct {
	err error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.err)
}

func (e *decodeError) Unwrap() error {
	return e.err
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == 429
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return false
	}
	var decErr *decodeError
	if errors.As(err, &decErr) {
		return false
	}
	return true
}
