package repo

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Source yields the raw document of a collection, any error means there is no data
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

type (
	// HTTPSource fetches documents below a base url, like a browser fetching ../data/<name>
	HTTPSource struct {
		baseURL    string
		httpClient *http.Client
	}
	HTTPSourceOption func(*HTTPSource)
)

// StorageSource reads documents from a storage backend
type StorageSource struct {
	storage Storage
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewHTTPSource(baseURL string, opts ...HTTPSourceOption) *HTTPSource {
	inst := &HTTPSource{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

func NewStorageSource(storage Storage) *StorageSource {
	return &StorageSource{
		storage: storage,
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func HTTPSourceWithHTTPClient(v *http.Client) HTTPSourceOption {
	return func(o *HTTPSource) {
		o.httpClient = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.JoinPath(s.baseURL, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build document url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create document request")
	}
	response, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get document")
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("bad response code from data source %q want 2xx", response.Status)
	}

	buffer := &bytes.Buffer{}
	if _, err := io.Copy(buffer, response.Body); err != nil {
		return nil, errors.Wrap(err, "failed to copy IO stream")
	}
	return buffer.Bytes(), nil
}

func (s *StorageSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	return s.storage.Read(ctx, name)
}
