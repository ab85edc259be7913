// Package news proxies the third-party cyber-law news feed with a short
// cache in front, returning the upstream JSON verbatim.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	cacheKey  = "news"
	userAgent = "CYBERLAW_CHATBOT/1.0"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

type Client struct {
	feedURL    string
	httpClient *http.Client
	cache      Cache
	logger     *zap.Logger
}

func NewClient(feedURL string, cache Cache, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		logger:     logger,
	}
}

// Fetch returns the feed payload, served from cache when fresh. There is no
// static fallback: a cold cache plus an unreachable upstream is an error.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if c.cache != nil {
		cached, hit, err := c.cache.Get(ctx, cacheKey)
		if err == nil && hit {
			return cached, nil
		}
		if err != nil {
			c.logger.Warn("news cache read failed", zap.Error(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build news request failed: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("news feed status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read news response failed: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("news feed returned invalid json")
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, raw); err != nil {
			c.logger.Warn("news cache write failed", zap.Error(err))
		}
	}
	return raw, nil
}
