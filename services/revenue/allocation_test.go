package revenue

import (
	"math"
	"testing"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

func TestCommissionPercent(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		baseRate float64
		want     float64
		wantErr  bool
	}{
		{"short term is flat regardless of rate", models.DurationShortTerm, 9999, 0.15, false},
		{"lowest long term bracket", models.DurationLongTerm, 3500, 0.10, false},
		{"low threshold is inclusive", models.DurationLongTerm, 4000, 0.10, false},
		{"middle bracket", models.DurationLongTerm, 4500, 0.15, false},
		{"just under the high threshold", models.DurationLongTerm, 5499, 0.15, false},
		{"high threshold is inclusive", models.DurationLongTerm, 5500, 0.20, false},
		{"surcharged base can cross a bracket", models.DurationLongTerm, 6000, 0.20, false},
		{"unknown mode", "weekly", 5000, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommissionPercent(tt.mode, tt.baseRate)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CommissionPercent returned error: %v", err)
			}
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("CommissionPercent(%s, %v) = %v, want %v", tt.mode, tt.baseRate, got, tt.want)
			}
		})
	}
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		mode         string
		baseRate     float64
		fixedFee     float64
		validateFunc func(t *testing.T, b models.RevenueBreakdown)
	}{
		{
			name:     "long term with placement fee",
			total:    5500, // 5000 base + 500 add-ons
			mode:     models.DurationLongTerm,
			baseRate: 5000,
			fixedFee: 2500,
			validateFunc: func(t *testing.T, b models.RevenueBreakdown) {
				// 15% bracket on the 5000 base only.
				if math.Abs(b.CommissionAmount-750.0) > 0.01 {
					t.Errorf("CommissionAmount = %v, want 750.0", b.CommissionAmount)
				}
				if math.Abs(b.ClientCharge-8000.0) > 0.01 {
					t.Errorf("ClientCharge = %v, want 8000.0 (monthly total + placement)", b.ClientCharge)
				}
				if math.Abs(b.NannyEarnings-4750.0) > 0.01 {
					t.Errorf("NannyEarnings = %v, want 4750.0", b.NannyEarnings)
				}
				if math.Abs(b.AdminTotalRevenue-3250.0) > 0.01 {
					t.Errorf("AdminTotalRevenue = %v, want 3250.0", b.AdminTotalRevenue)
				}
			},
		},
		{
			name:     "short term carves the fee out of the total",
			total:    920, // 720 labor + 150 cooking + 50 fee
			mode:     models.DurationShortTerm,
			baseRate: 720,
			fixedFee: 50,
			validateFunc: func(t *testing.T, b models.RevenueBreakdown) {
				if math.Abs(b.CommissionAmount-108.0) > 0.01 {
					t.Errorf("CommissionAmount = %v, want 108.0", b.CommissionAmount)
				}
				if math.Abs(b.ClientCharge-920.0) > 0.01 {
					t.Errorf("ClientCharge = %v, want 920.0", b.ClientCharge)
				}
				// Add-on revenue passes through to the caregiver uncommissioned.
				if math.Abs(b.NannyEarnings-762.0) > 0.01 {
					t.Errorf("NannyEarnings = %v, want 762.0", b.NannyEarnings)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Allocate(tt.total, tt.mode, tt.baseRate, tt.fixedFee)
			if err != nil {
				t.Fatalf("Allocate returned error: %v", err)
			}
			// The split always conserves the client charge.
			if math.Abs(b.ClientCharge-(b.AdminTotalRevenue+b.NannyEarnings)) > 0.01 {
				t.Errorf("split does not conserve: clientCharge=%v admin=%v nanny=%v",
					b.ClientCharge, b.AdminTotalRevenue, b.NannyEarnings)
			}
			tt.validateFunc(t, b)
		})
	}
}
