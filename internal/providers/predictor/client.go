package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Flask service from the original model repo.
// Sample requests:
// - GET  http://127.0.0.1:5000/get_location_names
// - POST http://127.0.0.1:5000/predict_home_price (total_sqft=1000&bhk=2&bath=2&location=Indira+Nagar)
const (
	DefaultBaseURL = "http://127.0.0.1:5000"

	locationsPath = "/get_location_names"
	estimatePath  = "/predict_home_price"
)

// ErrMissingEstimate is returned when the service answers 200 without an estimated_price
var ErrMissingEstimate = errors.New("response has no estimated_price")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a prediction service client. A zero timeout means no client-side timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "predictor-client"),
	}
}

// GetLocationNames fetches the ordered list of locations the model knows about.
func (c *Client) GetLocationNames(ctx context.Context) (*LocationsAPIResponse, error) {
	u, err := c.endpoint(locationsPath)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching location names", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var apiResp LocationsAPIResponse
	if err := c.do(req, &apiResp); err != nil {
		c.logger.Error("failed to fetch location names", "error", err)
		return nil, err
	}

	c.logger.Debug("successfully fetched location names", "location_count", len(apiResp.Locations))

	return &apiResp, nil
}

// PredictHomePrice posts the house attributes and returns the estimate in Lakh.
func (c *Client) PredictHomePrice(ctx context.Context, in EstimateRequest) (*EstimateAPIResponse, error) {
	u, err := c.endpoint(estimatePath)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("total_sqft", strconv.FormatFloat(in.TotalSqft, 'f', -1, 64))
	form.Set("bhk", strconv.Itoa(in.BHK))
	form.Set("bath", strconv.Itoa(in.Bath))
	form.Set("location", in.Location)

	c.logger.Debug("requesting price estimate",
		"total_sqft", in.TotalSqft,
		"bhk", in.BHK,
		"bath", in.Bath,
		"location", in.Location,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var apiResp EstimateAPIResponse
	if err := c.do(req, &apiResp); err != nil {
		c.logger.Error("failed to fetch price estimate",
			"location", in.Location,
			"error", err,
		)
		return nil, err
	}
	if apiResp.EstimatedPrice == nil {
		c.logger.Error("price estimate response missing estimated_price", "location", in.Location)
		return nil, ErrMissingEstimate
	}

	c.logger.Debug("successfully fetched price estimate",
		"location", in.Location,
		"estimated_price", *apiResp.EstimatedPrice,
	)

	return &apiResp, nil
}

func (c *Client) endpoint(path string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String(), nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
