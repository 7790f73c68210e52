// Package cms talks to the headless CMS that stores bookings and the
// bookable catalog. It speaks the Strapi v4 REST dialect: every payload is
// wrapped in {"data": ...} and records come back as {"id", "attributes"}.
package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"staydrive/internal/pkg/logger"
)

const (
	collectionStays       = "bookings"
	collectionRentals     = "car-bookings"
	collectionGuestHouses = "guest-houses"
	collectionCars        = "cars"

	pageSize = 100
)

type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(cfg Config, log logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope[T any] struct {
	Data T    `json:"data"`
	Meta meta `json:"meta"`
}

type meta struct {
	Pagination struct {
		Page      int `json:"page"`
		PageSize  int `json:"pageSize"`
		PageCount int `json:"pageCount"`
		Total     int `json:"total"`
	} `json:"pagination"`
}

type entry[A any] struct {
	ID         int64 `json:"id"`
	Attributes A     `json:"attributes"`
}

// relation is how a populated to-one relation appears inside attributes.
type relation struct {
	Data *struct {
		ID int64 `json:"id"`
	} `json:"data"`
}

func (r relation) id() int64 {
	if r.Data == nil {
		return 0
	}
	return r.Data.ID
}

// do sends one request and decodes the JSON body into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/api/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cms: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("cms: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("cms_request method=%s path=%s status=%d latency=%s", method, path, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cms: read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cms: decode %s %s: %w", method, path, err)
	}
	return nil
}

// listAll walks every page of a collection.
func listAll[A any](ctx context.Context, c *Client, collection string, sort string) ([]entry[A], error) {
	var all []entry[A]
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("populate", "*")
		q.Set("pagination[page]", fmt.Sprint(page))
		q.Set("pagination[pageSize]", fmt.Sprint(pageSize))
		if sort != "" {
			q.Set("sort", sort)
		}

		var env envelope[[]entry[A]]
		if err := c.do(ctx, http.MethodGet, collection, q, nil, &env); err != nil {
			return nil, err
		}
		all = append(all, env.Data...)

		if page >= env.Meta.Pagination.PageCount || len(env.Data) == 0 {
			return all, nil
		}
	}
}

func getOne[A any](ctx context.Context, c *Client, collection string, id int64) (*entry[A], error) {
	q := url.Values{}
	q.Set("populate", "*")

	var env envelope[*entry[A]]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", collection, id), q, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &APIError{Method: http.MethodGet, Path: collection, Status: http.StatusNotFound, Message: "empty data"}
	}
	return env.Data, nil
}
