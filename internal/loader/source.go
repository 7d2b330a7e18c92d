package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Source retrieves the raw bytes behind a resource locator
type Source interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// StatusError reports a retrieval that completed with a non-success
// status code.
type StatusError struct {
	Locator    string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s)", e.StatusCode, e.Locator)
}

// FSSource reads locators from a file system, typically os.DirFS of the
// site root.
type FSSource struct {
	FS fs.FS
}

// Fetch implements Source
func (s FSSource) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if s.FS == nil {
		return nil, errors.New("loader: fs is nil")
	}
	if locator == "" {
		return nil, errors.New("loader: locator is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	name := path.Clean(strings.TrimPrefix(locator, "/"))
	data, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// HTTPSource fetches locators relative to a base URL
type HTTPSource struct {
	Client  *http.Client
	BaseURL *url.URL
}

// NewHTTPSource parses base and returns a source using client, or
// http.DefaultClient when client is nil.
func NewHTTPSource(client *http.Client, base string) (*HTTPSource, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid base url %q: %w", base, err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{Client: client, BaseURL: u}, nil
}

// Fetch implements Source
func (s *HTTPSource) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if s.Client == nil || s.BaseURL == nil {
		return nil, errors.New("loader: http source is not configured")
	}
	if locator == "" {
		return nil, errors.New("loader: locator is required")
	}

	ref, err := url.Parse(locator)
	if err != nil {
		return nil, err
	}
	target := s.BaseURL.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Locator: locator, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}
