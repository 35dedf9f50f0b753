// Package source retrieves the three data files and turns them into domain
// records. A location is either an absolute http(s) URL, a path under a
// configured base URL, or a file under a local directory.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/weddingweek/internal/config"
	"github.com/JonMunkholm/weddingweek/internal/logging"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrTooLarge is returned when a body exceeds the configured limit.
var ErrTooLarge = errors.New("body too large")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s from %s", e.Status, e.URL)
}

// Fetcher reads data files over HTTP or from disk.
type Fetcher struct {
	client    *http.Client
	dir       string
	baseURL   string
	maxBytes  int64
	cacheBust bool
	limiter   *Limiter
	now       func() time.Time
}

// NewFetcher creates a Fetcher from the sources and fetch settings.
func NewFetcher(src config.SourcesConfig, fc config.FetchConfig) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: fc.Timeout},
		dir:       src.Dir,
		baseURL:   src.BaseURL,
		maxBytes:  fc.MaxBytes,
		cacheBust: fc.CacheBust,
		limiter:   NewLimiter(fc.MaxConcurrent, fc.MaxWait),
		now:       time.Now,
	}
}

// Slots reports how many fetches are running and how many may run at once.
func (f *Fetcher) Slots() (active, capacity int) {
	return f.limiter.Active(), f.limiter.Capacity()
}

// Resolve returns the URL or file path a location refers to, and whether it
// is fetched over HTTP.
func (f *Fetcher) Resolve(location string) (string, bool) {
	location = strings.TrimSpace(location)
	if isHTTP(location) {
		return location, true
	}
	if f.baseURL != "" {
		base := strings.TrimSuffix(f.baseURL, "/")
		return base + path.Clean("/"+location), true
	}
	// Clean against a rooted path so ".." cannot leave the directory.
	return filepath.Join(f.dir, filepath.FromSlash(path.Clean("/"+location))), false
}

func isHTTP(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch returns the decoded text of a location.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	target, remote := f.Resolve(location)

	if err := f.limiter.Acquire(ctx); err != nil {
		return "", fmt.Errorf("fetch %s: %w", target, err)
	}
	defer f.limiter.Release()

	var (
		raw []byte
		err error
	)
	if remote {
		raw, err = f.fetchHTTP(ctx, target)
	} else {
		raw, err = f.readFile(target)
	}
	if err != nil {
		return "", err
	}

	return decode(raw)
}

func (f *Fetcher) fetchHTTP(ctx context.Context, target string) ([]byte, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse url %s: %w", target, err)
	}
	if f.cacheBust {
		q := u.Query()
		q.Set("cb", strconv.FormatInt(f.now().UnixMilli(), 10))
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	logging.FromContext(ctx).Debug("source fetch start", "url", target)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := f.readLimited(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	return body, nil
}

func (f *Fetcher) readFile(p string) ([]byte, error) {
	file, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	body, err := f.readLimited(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return body, nil
}

func (f *Fetcher) readLimited(r io.Reader) ([]byte, error) {
	if f.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, ErrTooLarge
	}
	return body, nil
}

// decode converts a body to UTF-8 text. A UTF-16 byte order mark switches
// the decoding; a UTF-8 mark is dropped. Invalid bytes become U+FFFD.
func decode(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return string(out), nil
}
