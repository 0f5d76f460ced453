package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"

	"github.com/go-resty/resty/v2"
)

// Client implements a QuoteProvider backed by the brapi.dev REST API.
type Client struct {
	client  *resty.Client
	token   string
	metrics drepo.Metrics
}

// New creates a new brapi QuoteProvider. The timeout bounds every outbound
// call; there are no retries.
func New(baseURL, token string, timeout time.Duration, metrics drepo.Metrics) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{client: client, token: token, metrics: metrics}
}

type listResponse struct {
	Stocks []models.TickerRecord `json:"stocks"`
}

type quoteResult struct {
	Symbol             string   `json:"symbol"`
	LongName           string   `json:"longName"`
	ShortName          string   `json:"shortName"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	MarketCap          *float64 `json:"marketCap"`
	Logo               string   `json:"logo"`
	Website            string   `json:"website"`
}

type quoteResponse struct {
	Results []quoteResult `json:"results"`
}

// ListTickers returns up to limit tickers sorted by descending trading
// volume, the provider's proxy for "most relevant first".
func (c *Client) ListTickers(ctx context.Context, limit int) ([]models.TickerRecord, error) {
	return c.list(ctx, map[string]string{
		"sortBy":    "volume",
		"sortOrder": "desc",
		"limit":     strconv.Itoa(limit),
		"token":     c.token,
	})
}

// SearchTickers returns up to limit tickers matching the query, filtered on
// the provider side.
func (c *Client) SearchTickers(ctx context.Context, query string, limit int) ([]models.TickerRecord, error) {
	return c.list(ctx, map[string]string{
		"search": query,
		"limit":  strconv.Itoa(limit),
		"token":  c.token,
	})
}

func (c *Client) list(ctx context.Context, params map[string]string) ([]models.TickerRecord, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/quote/list")
	c.observe("list", start)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", drepo.ErrUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", drepo.ErrUnavailable, resp.StatusCode())
	}

	var body listResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode list: %v", drepo.ErrUnavailable, err)
	}
	return body.Stocks, nil
}

// GetQuote returns the full quote for a single ticker symbol. An unknown
// symbol maps to ErrNotFound; transport and provider errors to ErrUnavailable.
func (c *Client) GetQuote(ctx context.Context, symbol string) (models.QuoteSnapshot, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("token", c.token).
		Get("/quote/" + url.PathEscape(symbol))
	c.observe("quote", start)

	if err != nil {
		return models.QuoteSnapshot{}, fmt.Errorf("%w: %v", drepo.ErrUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.QuoteSnapshot{}, fmt.Errorf("%w: %s", drepo.ErrNotFound, symbol)
	}
	if resp.IsError() {
		return models.QuoteSnapshot{}, fmt.Errorf("%w: status %d", drepo.ErrUnavailable, resp.StatusCode())
	}

	var body quoteResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.QuoteSnapshot{}, fmt.Errorf("%w: decode quote: %v", drepo.ErrUnavailable, err)
	}
	if len(body.Results) == 0 {
		return models.QuoteSnapshot{}, fmt.Errorf("%w: %s", drepo.ErrNotFound, symbol)
	}

	r := body.Results[0]
	return models.QuoteSnapshot{
		Symbol:    r.Symbol,
		LongName:  r.LongName,
		ShortName: r.ShortName,
		Price:     r.RegularMarketPrice,
		MarketCap: r.MarketCap,
		Logo:      r.Logo,
		Website:   r.Website,
	}, nil
}

func (c *Client) observe(endpoint string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamLatency(endpoint, time.Since(start).Seconds())
	}
}
