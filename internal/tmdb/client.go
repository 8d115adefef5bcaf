// Package tmdb implements the movie catalog on top of The Movie Database v3 API.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/mmcdole/reel/internal/domain"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultTimeout  = 30 * time.Second
	defaultLanguage = "en-US"
	defaultRPS      = 20
	userAgent       = "Reel/1.0"

	// maxMessageLen caps raw bodies quoted in errors
	maxMessageLen = 200
)

// Config is the immutable client configuration
type Config struct {
	BaseURL           string
	APIKey            string // v3 key or v4 read access token
	Language          string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client implements domain.Catalog for TMDB
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

var _ domain.Catalog = (*Client)(nil)

// NewClient creates a new TMDB API client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRPS
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(1, int(cfg.RequestsPerSecond))),
		logger:  logger,
	}
}

// SearchByTitle searches movies by free-text title, best match first
func (c *Client) SearchByTitle(ctx context.Context, query string) ([]domain.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Movie{}, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("include_adult", "false")

	var page PageResponse
	if err := c.get(ctx, "search", "/search/movie", params, &page); err != nil {
		return nil, err
	}

	movies := MapMovies(page.Results, c.logger)
	c.logger.Debug("search complete", "query", query, "results", len(movies))
	return movies, nil
}

// DiscoverByGenre lists movies having all of genreIDs, most voted first.
// No genre ids lists popular movies across the catalog.
func (c *Client) DiscoverByGenre(ctx context.Context, genreIDs []int, page int) ([]domain.Movie, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("sort_by", "vote_count.desc")
	params.Set("page", strconv.Itoa(page))
	if len(genreIDs) > 0 {
		params.Set("with_genres", joinIDs(genreIDs))
	}

	var resp PageResponse
	if err := c.get(ctx, "discover", "/discover/movie", params, &resp); err != nil {
		return nil, err
	}

	movies := MapMovies(resp.Results, c.logger)
	c.logger.Debug("discover complete", "genres", genreIDs, "page", page, "results", len(movies))
	return movies, nil
}

// ListGenres returns the movie genre list
func (c *Client) ListGenres(ctx context.Context) (domain.Genres, error) {
	var resp GenreListResponse
	if err := c.get(ctx, "genres", "/genre/movie/list", url.Values{}, &resp); err != nil {
		return nil, err
	}
	return MapGenres(resp.Genres), nil
}

// get performs an authenticated GET and decodes the JSON body into dest
func (c *Client) get(ctx context.Context, op, path string, query url.Values, dest any) error {
	body, err := c.doRequest(ctx, op, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "op", op, "error", err, "bodyLen", len(body))
		return &APIError{Op: op, Message: "malformed response", Err: err}
	}
	return nil
}

// doRequest performs a paced, authenticated GET request
func (c *Client) doRequest(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &APIError{Op: op, Err: err}
	}

	query.Set("language", c.cfg.Language)
	c.logger.Debug("tmdb request", "op", op, "path", path, "query", query.Encode())

	bearer := isReadAccessToken(c.cfg.APIKey)
	if !bearer {
		query.Set("api_key", c.cfg.APIKey)
	}
	reqURL := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &APIError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if bearer {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "op", op, "error", redact(err, c.cfg.APIKey))
		return nil, &APIError{Op: op, Err: redact(err, c.cfg.APIKey)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := statusMessage(body)
		c.logger.Error("tmdb request error", "op", op, "status", resp.StatusCode, "message", msg)
		return nil, &APIError{Op: op, Status: resp.StatusCode, Message: msg}
	}

	return body, nil
}

// statusMessage extracts TMDB's status_message, falling back to the raw body
func statusMessage(body []byte) string {
	var status StatusResponse
	if err := json.Unmarshal(body, &status); err == nil && status.StatusMessage != "" {
		return status.StatusMessage
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen] + "..."
	}
	return msg
}

// isReadAccessToken reports whether key is a v4 bearer token (a JWT)
func isReadAccessToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}

// redact removes the API key from transport errors, which quote the URL
func redact(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
