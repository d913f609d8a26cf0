// OMDb API implementation of [MovieService]
//
// Response shapes based on https://www.omdbapi.com/ - a flat field/value
// document where Response is "True" on a match and "False" otherwise.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/shared"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const defaultOMDBBaseURL = "https://www.omdbapi.com/"

// omdbRecord mirrors the provider's wire format for a single title.
type omdbRecord struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Director   string `json:"Director"`
	Genre      string `json:"Genre"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	Actors     string `json:"Actors"`
	Runtime    string `json:"Runtime"`
	ImdbRating string `json:"imdbRating"`
}

// OMDBService implements [MovieService] against the OMDb HTTP API.
// A client-side [rate.Limiter] keeps lookups under the provider's free-tier ceiling.
type OMDBService struct {
	baseURL    string
	apiKey     string
	plot       string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// OMDBOpts contains configuration options for creating an [OMDBService].
type OMDBOpts struct {
	BaseURL    string
	APIKey     string
	Plot       string
	RateLimit  float64
	HTTPClient *http.Client
	Logger     *log.Logger
}

// NewOMDBService creates a new OMDb service instance.
func NewOMDBService(opts OMDBOpts) *OMDBService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultOMDBBaseURL
	}
	if opts.Plot == "" {
		opts.Plot = "short"
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 2
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &OMDBService{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		plot:       opts.Plot,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		logger:     opts.Logger,
	}
}

// Name returns the provider name.
func (o *OMDBService) Name() string {
	return "OMDb"
}

// Lookup fetches metadata for a title.
//
// Fails fast with [shared.ErrMissingAPIKey] before any network I/O when no
// credential is configured. A provider-reported miss returns
// [shared.ErrTitleNotFound]; transport failures and non-2xx statuses return
// [shared.ErrAPIRequest]. No retries are attempted.
func (o *OMDBService) Lookup(ctx context.Context, title string) (*models.Movie, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", shared.ErrInvalidInput)
	}
	if o.apiKey == "" {
		o.logger.Error("lookup aborted", "event", "LookupFailed", "reason", "no API key configured")
		return nil, shared.ErrMissingAPIKey
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	params := url.Values{}
	params.Set("t", title)
	params.Set("apikey", o.apiKey)
	params.Set("plot", o.plot)
	params.Set("r", "json")

	o.logger.Info("querying provider", "event", "LookupAttempt", "title", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		o.logger.Error("lookup transport failure", "event", "LookupError", "title", title, "error", err)
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		o.logger.Error("lookup rejected", "event", "LookupError", "title", title, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var record omdbRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	if record.Response != "True" {
		o.logger.Warn("provider reported no match", "event", "LookupMiss", "title", title, "provider_error", record.Error)
		if record.Error != "" {
			return nil, fmt.Errorf("%w: %s", shared.ErrTitleNotFound, record.Error)
		}
		return nil, shared.ErrTitleNotFound
	}

	o.logger.Info("lookup succeeded", "event", "LookupSuccess", "title", record.Title, "imdb_id", record.ImdbID)

	return &models.Movie{
		ImdbID:     record.ImdbID,
		Title:      record.Title,
		Year:       record.Year,
		Director:   record.Director,
		Genre:      record.Genre,
		Poster:     record.Poster,
		Plot:       record.Plot,
		Actors:     record.Actors,
		Runtime:    record.Runtime,
		ImdbRating: record.ImdbRating,
	}, nil
}
