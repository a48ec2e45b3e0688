package linkedin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/applicant-filter/internal/candidate"
)

const (
	DefaultBaseURL = "https://api.linkedin.com/v2"
	userAgent      = "spigell/applicant-filter"
	// Max results the search endpoint returns per request.
	defaultLimit = 100
)

var (
	// ErrNotConfigured is returned when API credentials are missing.
	ErrNotConfigured = errors.New("linkedin api credentials are not configured")
	// ErrNotImplemented is returned by every remote operation until the integration exists.
	ErrNotImplemented = errors.New("linkedin api integration is not implemented")
)

// API is the capability set of a networked candidate source.
type API interface {
	Authenticate(ctx context.Context) error
	SearchCandidates(ctx context.Context, params *SearchParams) ([]*candidate.Candidate, error)
	GetProfile(ctx context.Context, profileURL string) (*candidate.Candidate, error)
}

// Config holds API credentials and search defaults.
type Config struct {
	APIKey      string
	APISecret   string
	AccessToken string
	BaseURL     string
	// Keywords used by Candidates, typically the target positions.
	Keywords []string
}

// Client is a placeholder LinkedIn client. It validates input and prepares requests
// but never sends them, so every remote operation reports ErrNotImplemented.
type Client struct {
	cfg       Config
	logger    *zap.Logger
	UserAgent string
}

var (
	_ API              = (*Client)(nil)
	_ candidate.Source = (*Client)(nil)
)

func New(cfg Config, logger *zap.Logger) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		cfg:       cfg,
		logger:    logger,
		UserAgent: userAgent,
	}
}

// Configured reports whether API key and secret are present.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.cfg.APIKey) != "" && strings.TrimSpace(c.cfg.APISecret) != ""
}

// Authenticate would run the OAuth 2.0 flow.
func (c *Client) Authenticate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !c.Configured() {
		return ErrNotConfigured
	}

	c.logger.Debug("linkedin authentication requested", zap.Bool("has_access_token", c.cfg.AccessToken != ""))
	return fmt.Errorf("authenticate: %w", ErrNotImplemented)
}

// SearchCandidates builds the people search request for params and reports ErrNotImplemented.
func (c *Client) SearchCandidates(ctx context.Context, params *SearchParams) ([]*candidate.Candidate, error) {
	req, err := c.newSearchRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("linkedin search prepared, not sent", requestFields(req)...)
	return []*candidate.Candidate{}, fmt.Errorf("search candidates: %w", ErrNotImplemented)
}

// GetProfile would fetch a single profile.
func (c *Client) GetProfile(ctx context.Context, profileURL string) (*candidate.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profileURL = strings.TrimSpace(profileURL)
	if profileURL == "" {
		return nil, fmt.Errorf("profile url is required")
	}

	c.logger.Debug("linkedin profile fetch requested", zap.String("profile_url", profileURL))
	return nil, fmt.Errorf("get profile: %w", ErrNotImplemented)
}

// Candidates authenticates and searches with the configured keywords.
func (c *Client) Candidates(ctx context.Context) ([]*candidate.Candidate, error) {
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	return c.SearchCandidates(ctx, &SearchParams{Keywords: c.cfg.Keywords})
}
