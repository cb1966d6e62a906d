// Package regionapi talks to the external universe API that serves region
// reference data. The client is constructed once at startup from values held
// in the config collection and handed down to the bootstrap service.
package regionapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/corphq/api/internal/core/domain"
	"github.com/corphq/api/internal/core/ports"
	"github.com/corphq/api/internal/pkg/retry"
)

// Config collection keys that parameterize outbound calls.
const (
	ConfigKeyBaseURL   = "region_api_url"
	ConfigKeyUserAgent = "region_api_user_agent"
)

const requestTimeout = 30 * time.Second

// Config holds the resolved client settings.
type Config struct {
	BaseURL   string
	UserAgent string
}

// LoadConfig resolves the client settings from the config repository, falling
// back to the provided defaults for any entry that is absent.
func LoadConfig(ctx context.Context, store ports.ConfigRepository, fallback Config) (Config, error) {
	cfg := fallback

	url, err := store.Value(ctx, ConfigKeyBaseURL)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", ConfigKeyBaseURL, err)
	}
	if url != "" {
		cfg.BaseURL = url
	}

	agent, err := store.Value(ctx, ConfigKeyUserAgent)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", ConfigKeyUserAgent, err)
	}
	if agent != "" {
		cfg.UserAgent = agent
	}

	return cfg, nil
}

// Client fetches region data over HTTP. Both operations are wrapped in a
// bounded retry with randomized backoff; the only authentication the API
// expects is the configured User-Agent header.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	policy    retry.Policy
	log       zerolog.Logger
}

func New(cfg Config, policy retry.Policy, log zerolog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("regionapi: base URL is required")
	}
	return &Client{
		http:      &http.Client{Timeout: requestTimeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		policy:    policy,
		log:       log,
	}, nil
}

// RegionIDs lists every known region identifier.
func (c *Client) RegionIDs(ctx context.Context) ([]int, error) {
	return retry.Do(ctx, c.log, c.policy, func(ctx context.Context) ([]int, error) {
		var ids []int
		if err := c.getJSON(ctx, "/universe/regions/", &ids); err != nil {
			return nil, err
		}
		return ids, nil
	})
}

// regionDocument is the upstream wire shape for a region detail response.
type regionDocument struct {
	RegionID       int    `json:"region_id"`
	Name           string `json:"name"`
	Constellations []int  `json:"constellations"`
	Description    string `json:"description"`
}

// RegionDetails fetches the full record for one region.
func (c *Client) RegionDetails(ctx context.Context, regionID int) (*domain.Region, error) {
	path := fmt.Sprintf("/universe/regions/%d/", regionID)
	return retry.Do(ctx, c.log, c.policy, func(ctx context.Context) (*domain.Region, error) {
		var doc regionDocument
		if err := c.getJSON(ctx, path, &doc); err != nil {
			return nil, err
		}
		return &domain.Region{
			RegionID:       doc.RegionID,
			Name:           doc.Name,
			Constellations: doc.Constellations,
			Description:    doc.Description,
		}, nil
	})
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
