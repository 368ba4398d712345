// Package source loads the job record collection from a URL or a local file.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ruminaider/job-browser/internal/apperr"
	"github.com/ruminaider/job-browser/internal/jobs"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a remote fetch.
const DefaultTimeout = 15 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 32 << 20

// Source loads the full record set once.
type Source interface {
	Load(ctx context.Context) ([]jobs.Record, error)
	String() string
}

// Open returns an HTTP source for http(s) locations, the bundled listings for
// DemoLocation and a file source for everything else.
func Open(location string, timeout time.Duration, logger *zap.Logger) Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == DemoLocation {
		return Demo{}
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		return &HTTP{
			URL:    location,
			Client: &http.Client{Timeout: timeout},
			Logger: logger,
		}
	}
	return &File{Path: strings.TrimPrefix(location, "file://"), Logger: logger}
}

// HTTP fetches a JSON array with a single GET.
type HTTP struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

func (s *HTTP) String() string { return s.URL }

// Load implements Source. Network failures, non-200 responses and malformed
// payloads all come back as apperr.KindLoadFailure.
func (s *HTTP) Load(ctx context.Context) ([]jobs.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, apperr.LoadFailure("creating request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.Client.Do(req)
	if err != nil {
		s.Logger.Error("failed to execute request", zap.String("url", s.URL), zap.Error(err))
		return nil, apperr.LoadFailure("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.Logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		s.Logger.Error("unexpected status code", zap.String("url", s.URL), zap.Int("status_code", resp.StatusCode))
		return nil, apperr.LoadFailure(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, apperr.LoadFailure("reading response", err)
	}

	records, err := jobs.Parse(data)
	if err != nil {
		s.Logger.Error("failed to decode response", zap.String("url", s.URL), zap.Error(err))
		return nil, apperr.LoadFailure("decoding response", err)
	}

	s.Logger.Debug("fetched job records",
		zap.String("url", s.URL),
		zap.Int("count", len(records)),
		zap.Duration("elapsed", time.Since(start)))
	return records, nil
}

// File reads a JSON array from disk.
type File struct {
	Path   string
	Logger *zap.Logger
}

func (s *File) String() string { return s.Path }

// Load implements Source.
func (s *File) Load(ctx context.Context) ([]jobs.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.LoadFailure("loading cancelled", err)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		s.Logger.Error("failed to read job file", zap.String("path", s.Path), zap.Error(err))
		return nil, apperr.LoadFailure("reading job file", err)
	}
	records, err := jobs.Parse(data)
	if err != nil {
		s.Logger.Error("failed to decode job file", zap.String("path", s.Path), zap.Error(err))
		return nil, apperr.LoadFailure("decoding job file", err)
	}
	s.Logger.Debug("read job records", zap.String("path", s.Path), zap.Int("count", len(records)))
	return records, nil
}

// Static serves records already in memory. It backs tests and demos.
type Static struct {
	Records []jobs.Record
	Err     error
}

func (s Static) String() string { return "static" }

// Load implements Source.
func (s Static) Load(context.Context) ([]jobs.Record, error) {
	if s.Err != nil {
		return nil, apperr.LoadFailure("loading static records", s.Err)
	}
	return append([]jobs.Record(nil), s.Records...), nil
}
