package talent

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	pkgerrors "hr-agent-service/pkg/errors"
)

// Response bodies larger than this are truncated; the upstream service
// returns small JSON documents.
const maxBodyBytes = 4 << 20

// Service proxies read requests to the external talent-acquisition
// backend. There is no fallback fixture: without a reachable upstream the
// endpoints return 502.
type Service struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// New creates a new talent Service. baseURL may be empty when the
// upstream is not configured.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Candidates forwards a candidate listing request upstream.
func (s *Service) Candidates(ctx context.Context, rawQuery string) (*Result, error) {
	return s.forward(ctx, "/candidates", rawQuery)
}

// Pipeline forwards a hiring pipeline request upstream.
func (s *Service) Pipeline(ctx context.Context, rawQuery string) (*Result, error) {
	return s.forward(ctx, "/pipeline", rawQuery)
}

func (s *Service) forward(ctx context.Context, path, rawQuery string) (*Result, error) {
	if s.baseURL == "" {
		return nil, pkgerrors.NewUpstreamError("talent backend is not configured", nil)
	}

	url := s.baseURL + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to build upstream request", err)
	}
	req.Header.Set("Accept", "application/json")

	s.log.Debug("forwarding talent request", zap.String("url", url))

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("talent upstream unreachable", zap.String("path", path), zap.Error(err))
		return nil, pkgerrors.NewUpstreamError("talent backend unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		s.log.Error("failed to read talent upstream response", zap.Error(err))
		return nil, pkgerrors.NewUpstreamError("failed to read talent backend response", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		s.log.Error("talent upstream returned server error", zap.Int("status", resp.StatusCode))
		return nil, pkgerrors.NewUpstreamError("talent backend returned an error", nil)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}
