package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
	"github.com/flight-deals/flight-deal-radar/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// DefaultBaseURL points at the Amadeus self-service test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

// API paths under the base URL.
const (
	tokenPath  = "/v1/security/oauth2/token"
	searchPath = "/v2/shopping/flight-offers"
)

// Config holds the Amadeus client settings.
type Config struct {
	// APIKey and APISecret are the OAuth2 client credentials
	APIKey    string
	APISecret string

	// BaseURL is the API root (defaults to the test environment)
	BaseURL string

	// Currency is the ISO 4217 code offers are priced in
	Currency string

	// MaxOffers caps how many offers one search returns
	MaxOffers int

	// Timeout bounds each HTTP request
	Timeout time.Duration
}

// Client calls the Amadeus Flight Offers Search API.
// It fetches an OAuth token lazily, re-authenticates once on 401, and wraps
// transient transport failures in backoff retries. The client is used by the
// synchronous pipeline and performs no internal locking.
type Client struct {
	cfg        Config
	httpClient *http.Client
	token      string
	log        zerolog.Logger
}

// NewClient creates an Amadeus client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Currency == "" {
		cfg.Currency = "CAD"
	}
	if cfg.MaxOffers <= 0 {
		cfg.MaxOffers = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// SearchFlights searches one date and returns normalized records.
// It implements the pipeline's offer source interface.
func (c *Client) SearchFlights(ctx context.Context, criteria domain.SearchCriteria, date string) ([]domain.FlightRecord, error) {
	resp, err := c.SearchOffers(ctx, criteria, date)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		first := resp.Errors[0]
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("search error %d: %s", first.Code, first.Title))
	}
	return Normalize(resp, c.log), nil
}

// SearchOffers performs one flight-offers search and returns the raw payload.
func (c *Client) SearchOffers(ctx context.Context, criteria domain.SearchCriteria, date string) (*OffersResponse, error) {
	if c.token == "" {
		if err := c.authenticate(ctx); err != nil {
			return nil, err
		}
	}

	c.log.Info().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Str("date", date).
		Msg("Searching flights")

	return retry.DoWithResult(ctx, func() (*OffersResponse, error) {
		return c.searchOnce(ctx, criteria, date)
	}, retry.ProviderConfig)
}

// searchOnce performs a single search request, refreshing the token once on 401.
func (c *Client) searchOnce(ctx context.Context, criteria domain.SearchCriteria, date string) (*OffersResponse, error) {
	resp, body, err := c.doSearch(ctx, criteria, date)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn().Msg("Token expired, re-authenticating")
		if err := c.authenticate(ctx); err != nil {
			return nil, err
		}
		resp, body, err = c.doSearch(ctx, criteria, date)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode != http.StatusOK {
		err := domain.NewProviderError(ProviderName, fmt.Errorf("search failed with status %d", resp.StatusCode))
		if resp.StatusCode >= 500 {
			// transient upstream trouble is worth another attempt
			return nil, err
		}
		return nil, retry.NewPermanent(err)
	}

	parsed, err := ParseOffersResponse(body)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewProviderError(ProviderName, fmt.Errorf("decode search response: %w", err)))
	}
	return parsed, nil
}

// doSearch issues the search HTTP request and drains the body.
func (c *Client) doSearch(ctx context.Context, criteria domain.SearchCriteria, date string) (*http.Response, []byte, error) {
	params := url.Values{}
	params.Set("originLocationCode", criteria.Origin)
	params.Set("destinationLocationCode", criteria.Destination)
	params.Set("departureDate", date)
	params.Set("adults", strconv.Itoa(criteria.Adults))
	params.Set("children", strconv.Itoa(criteria.Children))
	params.Set("currencyCode", c.cfg.Currency)
	params.Set("max", strconv.Itoa(c.cfg.MaxOffers))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, nil, retry.NewPermanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, domain.NewRetryableProviderError(ProviderName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, domain.NewRetryableProviderError(ProviderName, err)
	}
	return resp, body, nil
}

// authenticate fetches a fresh OAuth2 access token with client credentials.
func (c *Client) authenticate(ctx context.Context) error {
	c.log.Info().Msg("Authenticating with Amadeus")

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.APIKey)
	form.Set("client_secret", c.cfg.APISecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewRetryableProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NewProviderError(ProviderName, fmt.Errorf("authentication failed with status %d", resp.StatusCode))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return domain.NewProviderError(ProviderName, fmt.Errorf("decode token response: %w", err))
	}
	if token.AccessToken == "" {
		return domain.NewProviderError(ProviderName, fmt.Errorf("empty access token"))
	}

	c.token = token.AccessToken
	c.log.Info().Msg("Amadeus authentication successful")
	return nil
}
