package pricing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// QuoteServiceFlags is the subset of service flags the authoritative
// function prices.
type QuoteServiceFlags struct {
	Cooking           bool `json:"cooking"`
	SpecialNeeds      bool `json:"specialNeeds"`
	DrivingSupport    bool `json:"drivingSupport"`
	LightHousekeeping bool `json:"lightHousekeeping"`
}

// QuoteRequest is the payload for the remote authoritative short-term
// pricing function.
type QuoteRequest struct {
	BookingType   string            `json:"bookingType"`
	TotalHours    float64           `json:"totalHours"`
	Services      QuoteServiceFlags `json:"services"`
	SelectedDates []string          `json:"selectedDates"`
	HomeSize      string            `json:"homeSize,omitempty"`
}

// QuoteServiceLine is one priced service in the authoritative response.
type QuoteServiceLine struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`
	TotalCost  float64 `json:"totalCost"`
}

// QuoteResponse is the authoritative short-term pricing result.
type QuoteResponse struct {
	BaseHourlyRate      float64            `json:"baseHourlyRate"`
	Services            []QuoteServiceLine `json:"services"`
	Subtotal            float64            `json:"subtotal"`
	ServiceFee          float64            `json:"serviceFee"`
	EmergencySurcharge  float64            `json:"emergencySurcharge,omitempty"`
	Total               float64            `json:"total"`
	EffectiveHourlyRate float64            `json:"effectiveHourlyRate"`
}

// QuoteClient invokes the remote authoritative short-term pricing function.
// The local engine calculation is a fallback only.
type QuoteClient interface {
	GetQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
}

// RestQuoteClient is a resty-backed implementation of QuoteClient.
type RestQuoteClient struct {
	httpClient *resty.Client
}

// NewQuoteClient builds a pricing-function client for the given endpoint.
func NewQuoteClient(baseURL, apiKey string) *RestQuoteClient {
	client := resty.New()
	client.
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetTimeout(10 * time.Second)

	return &RestQuoteClient{httpClient: client}
}

func (c *RestQuoteClient) GetQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	var quote QuoteResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&quote).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("pricing function call failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("pricing function returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return &quote, nil
}
