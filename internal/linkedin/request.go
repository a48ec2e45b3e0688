package linkedin

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/spigell/applicant-filter/internal/logger"
)

const (
	contentType     = "application/json"
	restliHeader    = "X-Restli-Protocol-Version"
	restliVersion   = "2.0.0"
	maxURLLogLength = 200
)

func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", path, err)
	}

	return c.setHeaders(req), nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.AccessToken))
	}
	req.Header.Set(restliHeader, restliVersion)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)

	return req
}

func requestFields(req *http.Request) []zap.Field {
	return []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", logger.TruncateForLog(req.URL.String(), maxURLLogLength)),
	}
}
