// Package neon is the HTTP client for the Neon console API. It handles
// authentication, pagination, and error classification; decoded records
// are handed to the core untouched.
package neon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"neoncost/core/metrics"
	"neoncost/internal/errors"
	"neoncost/internal/logging"
)

// DefaultBaseURL is the public Neon console API.
const DefaultBaseURL = "https://console.neon.tech/api/v2"

// pageLimit is the page size used for paginated listings.
const pageLimit = 100

var (
	idPattern    = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,255}$`)
	orgIDPattern = regexp.MustCompile(`^org-[a-zA-Z0-9-]{1,64}$`)
)

// Client talks to the Neon API with a Bearer API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Neon API client. An empty baseURL selects the
// public console API.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.Logger,
	}
}

type listProjectsResponse struct {
	Projects   []metrics.Project `json:"projects"`
	Pagination struct {
		Cursor string `json:"cursor"`
	} `json:"pagination"`
}

type consumptionHistoryResponse struct {
	Projects   []metrics.ConsumptionRecord `json:"projects"`
	Pagination struct {
		Cursor string `json:"cursor"`
	} `json:"pagination"`
}

// ListProjects fetches all projects visible to the API key, following the
// pagination cursor until the listing is exhausted. orgID may be empty for
// personal accounts.
func (c *Client) ListProjects(ctx context.Context, orgID string) ([]metrics.Project, error) {
	if err := validateOrgID(orgID); err != nil {
		return nil, err
	}

	var projects []metrics.Project
	cursor := ""
	for {
		params := url.Values{}
		params.Set("limit", fmt.Sprint(pageLimit))
		if orgID != "" {
			params.Set("org_id", orgID)
		}
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		var page listProjectsResponse
		if err := c.get(ctx, "projects", params, &page); err != nil {
			return nil, err
		}
		projects = append(projects, page.Projects...)

		if len(page.Projects) < pageLimit || page.Pagination.Cursor == "" {
			break
		}
		cursor = page.Pagination.Cursor
	}

	c.logger.Debug("listed projects", zap.Int("count", len(projects)))
	return projects, nil
}

// ConsumptionHistory fetches raw per-project consumption records for the
// window [from, to], bucketed by the given granularity.
func (c *Client) ConsumptionHistory(ctx context.Context, orgID string, from, to time.Time) ([]metrics.ConsumptionRecord, error) {
	if err := validateOrgID(orgID); err != nil {
		return nil, err
	}

	var records []metrics.ConsumptionRecord
	cursor := ""
	for {
		params := url.Values{}
		params.Set("limit", fmt.Sprint(pageLimit))
		params.Set("from", from.UTC().Format(time.RFC3339))
		params.Set("to", to.UTC().Format(time.RFC3339))
		params.Set("granularity", "daily")
		if orgID != "" {
			params.Set("org_id", orgID)
		}
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		var page consumptionHistoryResponse
		if err := c.get(ctx, "consumption_history/projects", params, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Projects...)

		if len(page.Projects) < pageLimit || page.Pagination.Cursor == "" {
			break
		}
		cursor = page.Pagination.Cursor
	}

	c.logger.Debug("fetched consumption history", zap.Int("projects", len(records)))
	return records, nil
}

// get performs an authenticated GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Internal("building request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Network("unable to reach Neon API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain without logging the body; API error details may carry
		// sensitive account information.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		apiErr := errors.FromHTTPStatus(resp.StatusCode, endpoint)
		c.logger.Warn("api request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(errors.TypeAPI, "decoding "+endpoint+" response", err)
	}
	return nil
}

// ValidateProjectID checks that an identifier is safe to interpolate into
// an API path.
func ValidateProjectID(id string) error {
	if !idPattern.MatchString(id) {
		return errors.Input(fmt.Sprintf("invalid project_id: %q", id))
	}
	return nil
}

func validateOrgID(orgID string) error {
	if orgID == "" {
		return nil
	}
	if !orgIDPattern.MatchString(orgID) {
		return errors.Input(fmt.Sprintf("invalid org_id format: %q (expected 'org-...')", orgID))
	}
	return nil
}
