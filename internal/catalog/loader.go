package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// Loader fetches the content document once and caches the parsed Catalog.
// The catalog is immutable after Load; Catalog hands out the shared value.
type Loader struct {
	source string
	client *http.Client

	mu      sync.RWMutex
	catalog *Catalog
}

// NewLoader creates a loader for the given source, either a filesystem
// path or an http(s) URL.
func NewLoader(source string) *Loader {
	return &Loader{
		source: source,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches and parses the content document. Any failure is reported
// as ErrCatalogLoad; a previously loaded catalog stays available.
func (l *Loader) Load(ctx context.Context) error {
	data, err := l.fetch(ctx)
	if err != nil {
		return err
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.catalog = c
	l.mu.Unlock()

	slog.Info("catalog loaded", "source", l.source, "sections", len(c.Sections))
	return nil
}

// Catalog returns the loaded catalog, or false if Load has not succeeded.
func (l *Loader) Catalog() (*Catalog, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.catalog == nil {
		return nil, false
	}
	return l.catalog, true
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return l.fetchHTTP(ctx)
	}

	data, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrCatalogLoad, resp.StatusCode, l.source)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	return data, nil
}
