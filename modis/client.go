package modis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/morikuni/failure/v2"

	"github.com/fieldobs/modisub/log"
)

// DefaultBaseURL is the fixed entry point of the ORNL subset web service
const DefaultBaseURL = "https://modis.ornl.gov/rst/api/v1/"

// Document is a decoded JSON response body. The service's response shapes
// vary by product and band and are not validated against a schema.
type Document = any

// Client issues requests against the MODIS subset web service.
// The zero value is not usable; create one with New.
type Client struct {
	http *resty.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the service entry point, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithTimeout sets a request timeout. There is no timeout by default:
// the service can take a long while to assemble large subsets.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithTransport replaces the underlying HTTP transport
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.SetTransport(rt)
	}
}

// New creates a Client for the subset web service
func New(opts ...Option) *Client {
	c := &Client{http: resty.New()}
	c.http.SetBaseURL(DefaultBaseURL)
	c.http.SetTransport(log.Transport())
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Products lists the products available from the service
func (c *Client) Products(ctx context.Context) (Document, error) {
	return c.getJSON(ctx, "products", nil)
}

// Bands lists the bands available for a product. The product code is not
// validated locally; unknown codes are rejected by the service itself.
func (c *Client) Bands(ctx context.Context, product string) (Document, error) {
	return c.getJSON(ctx, product+"/bands", nil)
}

// Dates lists the observation dates available for a product at a location
func (c *Client) Dates(ctx context.Context, product string, longitude, latitude float64) (Document, error) {
	query := url.Values{}
	query.Set("latitude", formatNumber(latitude))
	query.Set("longitude", formatNumber(longitude))
	return c.getJSON(ctx, product+"/dates", query)
}

// getJSON performs one GET against a catalog endpoint and decodes the body.
// HTTP error statuses are not interpreted: the service reports its own
// failures as JSON bodies, so whatever comes back is decoded as-is.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (Document, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, failure.Translate(err, ErrTransport,
			failure.Message("request to the subset service failed"),
			failure.Context{"path": path},
		)
	}

	return decodeDocument(resp.Body(), resp.Request.URL)
}

func decodeDocument(body []byte, requestURL string) (Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, failure.Translate(err, ErrDecode,
			failure.Message("response body is not valid JSON"),
			failure.Context{"url": requestURL},
		)
	}
	return doc, nil
}

// formatNumber renders a numeric query value the shortest way that
// round-trips, so 1 stays "1" and -121.55527 stays "-121.55527"
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
