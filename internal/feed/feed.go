package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultSource is the well-known relative path the scrapers write to.
const DefaultSource = "jobs.json"

const maxBodySize = 32 << 20

type Loader struct {
	client  *http.Client
	timeout time.Duration
}

func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Loader{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		timeout: timeout,
	}
}

// Load fetches and parses the feed at source once. Source may be an http(s)
// URL, a file:// URL or a local path. An empty source means DefaultSource.
func (l *Loader) Load(ctx context.Context, source string) (*Feed, error) {
	if source == "" {
		source = DefaultSource
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	data, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(source, data)
}

// Result is the outcome of LoadWithBackup. PrimaryErr is set when the feed
// came from the backup source.
type Result struct {
	Feed       *Feed
	Backup     bool
	PrimaryErr error
}

// LoadWithBackup loads primary and, only if that fails and backup is set,
// loads backup once. When both fail the error joins both failures.
func (l *Loader) LoadWithBackup(ctx context.Context, primary, backup string) (Result, error) {
	f, err := l.Load(ctx, primary)
	if err == nil {
		return Result{Feed: f}, nil
	}
	if backup == "" || backup == primary {
		return Result{}, err
	}
	bf, berr := l.Load(ctx, backup)
	if berr != nil {
		return Result{}, errors.Join(err, fmt.Errorf("backup: %w", berr))
	}
	return Result{Feed: bf, Backup: true, PrimaryErr: err}, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	u, err := url.Parse(source)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return l.get(ctx, source)
	}

	path := source
	if err == nil && u.Scheme == "file" {
		path = u.Path
	}
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	return data, nil
}

func (l *Loader) get(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: source, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	return data, nil
}

// Parse decodes a feed document and applies defaulting: missing today,
// history and results become empty.
func Parse(source string, data []byte) (*Feed, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ParseError{Source: source, Err: errors.New("expected a JSON object")}
	}

	var f Feed
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if err := f.check(); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	if f.Today == nil {
		f.Today = []Listing{}
	}
	if f.History == nil {
		f.History = map[string][]Listing{}
	}
	if f.Results == nil {
		f.Results = map[string]SourceStatus{}
	}
	return &f, nil
}

// check rejects structural problems only. Listing fields were already
// defaulted while decoding.
func (f *Feed) check() error {
	for date := range f.History {
		if strings.TrimSpace(date) == "" {
			return errors.New("history: empty date key")
		}
	}
	for name, res := range f.Results {
		if res.Count < 0 {
			return fmt.Errorf("results[%s]: negative count %d", name, res.Count)
		}
	}
	return nil
}
