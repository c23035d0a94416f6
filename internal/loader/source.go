package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Source yields the raw CSV text for one load. The fetch is a single
// fully-buffered read: no retry, no streaming.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// FileSource reads the CSV from a local path.
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HTTPSource fetches the CSV over HTTP with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", s.URL, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
