package ppp

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

//go:embed data/ppp.csv
var embeddedDataset []byte

// Source provides the raw PPP dataset.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPSource fetches the dataset from a fixed URL.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates a dataset source served over HTTP.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating dataset request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: dataset request failed: %w", domain.ErrDataFormat, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: dataset HTTP %d at %s", domain.ErrDataFormat, resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading dataset: %w", domain.ErrDataFormat, err)
	}
	return body, nil
}

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a dataset source backed by a local file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataFormat, err)
	}
	return data, nil
}

// EmbeddedSource serves the dataset bundled with the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Fetch(_ context.Context) ([]byte, error) {
	return embeddedDataset, nil
}
