package retrieval

import (
	"errors"
	"fmt"
)

// ErrNoArticle is returned when a page fetches fine but no readable article
// content can be isolated from it.
var ErrNoArticle = errors.New("no readable article content found")

// FetchError reports a failed attempt to reach the source page: either the
// request itself failed or the server answered with a non-success status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %v: %v", e.URL, e.Err)
	}

	return fmt.Sprintf("fetching %v: status %v", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// EmbeddingProviderError reports a failed embedding call. Batches are
// all-or-nothing, so none of the inputs have vectors when this is returned.
type EmbeddingProviderError struct {
	Err error
}

func (e *EmbeddingProviderError) Error() string {
	return fmt.Sprintf("embedding provider: %v", e.Err)
}

func (e *EmbeddingProviderError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed read or write against chunk storage.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("chunk storage %v: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
