package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"unitconv/internal/domain"
	apperrors "unitconv/internal/errors"
)

// DefaultBaseURL is the public ExchangeRate-API v6 endpoint.
const DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

// DefaultTimeout bounds a lookup when the caller supplies no HTTP client.
const DefaultTimeout = 5 * time.Second

// tracer follows the global provider, so spans are exported once
// telemetry.Setup has registered one.
var tracer = otel.Tracer("unitconv/internal/rates")

// HTTP looks up exchange rates over HTTP.
type HTTP struct {
	Base   string
	APIKey string
	HTTP   *http.Client
}

// NewHTTP returns a client for base using apiKey. A nil client is replaced
// by one with DefaultTimeout.
func NewHTTP(base, apiKey string, client *http.Client) *HTTP {
	if base == "" {
		base = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTP{
		Base:   strings.TrimRight(base, "/"),
		APIKey: apiKey,
		HTTP:   client,
	}
}

// pairResponse is the provider's JSON body for the pair endpoint.
type pairResponse struct {
	Result           string   `json:"result"`
	ErrorType        string   `json:"error-type"`
	ConversionRate   float64  `json:"conversion_rate"`
	ConversionResult *float64 `json:"conversion_result"`
}

// LookupRate converts amount of from into to at the provider's live rate.
func (c *HTTP) LookupRate(ctx context.Context, from, to string, amount float64) (domain.Quote, error) {
	ctx, span := tracer.Start(ctx, "rates.LookupRate", trace.WithAttributes(
		attribute.String("rates.from", from),
		attribute.String("rates.to", to),
		attribute.Float64("rates.amount", amount),
	))
	defer span.End()

	q, err := c.lookup(ctx, from, to, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return domain.Quote{}, apperrors.RateUnavailable(from, to, err)
	}
	span.SetAttributes(attribute.Float64("rates.rate", q.Rate))
	return q, nil
}

func (c *HTTP) lookup(ctx context.Context, from, to string, amount float64) (domain.Quote, error) {
	if c.APIKey == "" {
		return domain.Quote{}, fmt.Errorf("no API key configured")
	}
	u := c.Base + "/" + url.PathEscape(c.APIKey) + "/pair/" +
		url.PathEscape(from) + "/" + url.PathEscape(to) + "/" +
		strconv.FormatFloat(amount, 'f', -1, 64)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Quote{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.Quote{}, redact(err, c.APIKey)
	}
	defer resp.Body.Close()

	var body pairResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)
	if body.Result == "error" {
		return domain.Quote{}, fmt.Errorf("provider error: %s", body.ErrorType)
	}
	if resp.StatusCode/100 != 2 {
		return domain.Quote{}, fmt.Errorf("rates get %s/%s: %s", from, to, resp.Status)
	}
	if decodeErr != nil {
		return domain.Quote{}, fmt.Errorf("decode response: %w", decodeErr)
	}
	if body.Result != "success" || body.ConversionResult == nil {
		return domain.Quote{}, fmt.Errorf("malformed response: result=%q", body.Result)
	}
	return domain.Quote{Rate: body.ConversionRate, Result: *body.ConversionResult}, nil
}

// redact keeps the API key, which is part of the request path, out of
// transport error messages. *url.Error prints the escaped path, so both
// forms are masked.
func redact(err error, key string) error {
	if key == "" {
		return err
	}
	msg := err.Error()
	masked := strings.ReplaceAll(msg, url.PathEscape(key), "***")
	masked = strings.ReplaceAll(masked, key, "***")
	if masked == msg {
		return err
	}
	return fmt.Errorf("%s", masked)
}

// Compile-time assertion that HTTP implements domain.RateLookup.
var _ domain.RateLookup = (*HTTP)(nil)
