package revenue

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// SplitRequest is the payload for the remote authoritative revenue-split
// function. It is invoked exactly once, immediately after a booking is
// durably created.
type SplitRequest struct {
	BookingID              string  `json:"bookingId"`
	ClientTotal            float64 `json:"clientTotal"`
	BookingType            string  `json:"bookingType"`
	LivingArrangement      string  `json:"livingArrangement,omitempty"`
	HomeSize               string  `json:"homeSize,omitempty"`
	AdditionalServicesCost float64 `json:"additionalServicesCost"`
}

// SplitResponse is the single-row authoritative result.
type SplitResponse struct {
	FixedFee          float64 `json:"fixedFee"`
	CommissionPercent float64 `json:"commissionPercent"`
	CommissionAmount  float64 `json:"commissionAmount"`
	AdminTotalRevenue float64 `json:"adminTotalRevenue"`
	NannyEarnings     float64 `json:"nannyEarnings"`
}

// SplitClient invokes the remote authoritative revenue-split function, the
// sole writer of truth for revenue breakdowns.
type SplitClient interface {
	ComputeSplit(ctx context.Context, req SplitRequest) (*SplitResponse, error)
}

// RestSplitClient is a resty-backed implementation of SplitClient.
type RestSplitClient struct {
	httpClient *resty.Client
}

// NewSplitClient builds a revenue-function client for the given endpoint.
func NewSplitClient(baseURL, apiKey string) *RestSplitClient {
	client := resty.New()
	client.
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetTimeout(10 * time.Second)

	return &RestSplitClient{httpClient: client}
}

func (c *RestSplitClient) ComputeSplit(ctx context.Context, req SplitRequest) (*SplitResponse, error) {
	var split SplitResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&split).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("revenue function call failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("revenue function returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return &split, nil
}
