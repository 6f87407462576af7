package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"
const defaultTimeout = 10 * time.Second

// ErrNotFound is returned when TMDB answers 404.
var ErrNotFound = errors.New("resource not found")

// APIError is returned for any other non-2xx response.
type APIError struct {
	StatusCode int
	Status     string
	Message    string // TMDB status_message, if the body carried one
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("TMDB API error: %s: %s", e.Status, e.Message)
	}
	return "TMDB API error: " + e.Status
}

// Observer is told about every upstream call.
type Observer interface {
	ObserveRequest(endpoint string, status int, elapsed time.Duration)
}

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every upstream call. The HTTP client is copied first,
// so a client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithObserver registers an observer for upstream calls.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get calls a TMDB v3 endpoint (e.g. "/movie/550") with params and decodes
// the JSON body into out. The API key is added automatically.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out any) error {
	return c.get(ctx, endpoint, endpoint, params, out)
}

// get is Get with a separate low-cardinality label for observation.
func (c *Client) get(ctx context.Context, label, endpoint string, params url.Values, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)

	reqURL := c.baseURL + "/3" + endpoint + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(label, 0, start)
		// url.Error would echo the request URL, api key included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("execute request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.observe(label, resp.StatusCode, start)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", endpoint, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
		var body struct {
			StatusMessage string `json:"status_message"`
		}
		if json.NewDecoder(resp.Body).Decode(&body) == nil {
			apiErr.Message = body.StatusMessage
		}
		return apiErr
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) observe(label string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveRequest(label, status, time.Since(start))
	}
}

func (c *Client) object(ctx context.Context, label, endpoint string, params url.Values) (Object, error) {
	var obj Object
	if err := c.get(ctx, label, endpoint, params, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// SearchMovies runs a title search.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (Object, error) {
	return c.object(ctx, "/search/movie", "/search/movie", url.Values{
		"query": {query},
		"page":  {strconv.Itoa(page)},
	})
}

// SearchTitles runs a title search and decodes the first page into typed results.
func (c *Client) SearchTitles(ctx context.Context, query string) (*SearchPage, error) {
	var page SearchPage
	err := c.get(ctx, "/search/movie", "/search/movie", url.Values{
		"query": {query},
		"page":  {"1"},
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// DiscoverMovies lists movies in the given genres (comma or pipe separated
// TMDB genre IDs), most popular first.
func (c *Client) DiscoverMovies(ctx context.Context, genres string, page int) (Object, error) {
	return c.object(ctx, "/discover/movie", "/discover/movie", url.Values{
		"with_genres": {genres},
		"page":        {strconv.Itoa(page)},
		"sort_by":     {"popularity.desc"},
	})
}

// Genres returns the movie genre list.
func (c *Client) Genres(ctx context.Context) (Object, error) {
	return c.object(ctx, "/genre/movie/list", "/genre/movie/list", nil)
}

// Movie fetches movie details by TMDB ID.
func (c *Client) Movie(ctx context.Context, tmdbID int64) (Object, error) {
	return c.object(ctx, "/movie/{id}", fmt.Sprintf("/movie/%d", tmdbID), nil)
}

// Credits fetches the cast and crew of a movie.
func (c *Client) Credits(ctx context.Context, tmdbID int64) (*Credits, error) {
	var credits Credits
	if err := c.get(ctx, "/movie/{id}/credits", fmt.Sprintf("/movie/%d/credits", tmdbID), nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// Recommendations lists movies recommended for tmdbID.
func (c *Client) Recommendations(ctx context.Context, tmdbID int64, page int) (Object, error) {
	return c.object(ctx, "/movie/{id}/recommendations", fmt.Sprintf("/movie/%d/recommendations", tmdbID), url.Values{
		"page": {strconv.Itoa(page)},
	})
}

// Trending lists trending movies for a time window ("day" or "week").
func (c *Client) Trending(ctx context.Context, window string) (Object, error) {
	return c.object(ctx, "/trending/movie/{window}", "/trending/movie/"+window, nil)
}
