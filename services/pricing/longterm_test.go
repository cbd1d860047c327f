package pricing

import (
	"math"
	"testing"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

func TestComputeLongTerm(t *testing.T) {
	tests := []struct {
		name         string
		sel          models.ServiceSelection
		pc           models.PricingContext
		wantValid    bool
		validateFunc func(t *testing.T, result *models.PricingResult)
	}{
		{
			name: "three bedroom live out base rate",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeThreeBedroom,
				LivingArrangement: models.LiveOut,
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				if math.Abs(result.BaseRate-5000.0) > 0.01 {
					t.Errorf("BaseRate = %v, want 5000.0", result.BaseRate)
				}
				if math.Abs(result.Total-5000.0) > 0.01 {
					t.Errorf("Total = %v, want 5000.0", result.Total)
				}
				// Placement fee is half the post-surcharge base for this tier.
				if math.Abs(result.PlacementFee-2500.0) > 0.01 {
					t.Errorf("PlacementFee = %v, want 2500.0", result.PlacementFee)
				}
				if result.Label != "/month" {
					t.Errorf("Label = %q, want /month", result.Label)
				}
			},
		},
		{
			name: "smallest tiers pay flat placement fee",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeOneBedroom,
				LivingArrangement: models.LiveIn,
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				if math.Abs(result.BaseRate-3500.0) > 0.01 {
					t.Errorf("BaseRate = %v, want 3500.0", result.BaseRate)
				}
				if math.Abs(result.PlacementFee-1500.0) > 0.01 {
					t.Errorf("PlacementFee = %v, want flat 1500.0", result.PlacementFee)
				}
			},
		},
		{
			name: "child surcharge beyond the third eligible child",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeThreeBedroom,
				LivingArrangement: models.LiveIn,
				ChildrenAges:      []string{"2", "4 years", "18 months", "7", "10"},
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				// 5 eligible children, 2 beyond the included 3: 4500 + 2*250.
				if math.Abs(result.BaseRate-5000.0) > 0.01 {
					t.Errorf("BaseRate = %v, want 5000.0", result.BaseRate)
				}
				// Placement fee follows the surcharged base.
				if math.Abs(result.PlacementFee-2500.0) > 0.01 {
					t.Errorf("PlacementFee = %v, want 2500.0", result.PlacementFee)
				}
			},
		},
		{
			name: "adult children do not count, unparseable ages do",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeThreeBedroom,
				LivingArrangement: models.LiveIn,
				ChildrenAges:      []string{"19 years", "21", "toddler", "6", "9", "12"},
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				// "19 years" and "21" fall out; the other four count, one
				// beyond the included 3: 4500 + 250.
				if math.Abs(result.BaseRate-4750.0) > 0.01 {
					t.Errorf("BaseRate = %v, want 4750.0", result.BaseRate)
				}
			},
		},
		{
			name: "included counts add no surcharge at the boundary",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeThreeBedroom,
				LivingArrangement: models.LiveIn,
				ChildrenAges:      []string{"2", "5", "8"},
				OtherDependents:   2,
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				if math.Abs(result.BaseRate-4500.0) > 0.01 {
					t.Errorf("BaseRate = %v, want the unsurcharged 4500.0", result.BaseRate)
				}
			},
		},
		{
			name: "one increment each just past the boundary",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeThreeBedroom,
				LivingArrangement: models.LiveIn,
				ChildrenAges:      []string{"2", "5", "8", "11"},
				OtherDependents:   3,
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				// 4500 + one child increment + one dependent increment.
				if math.Abs(result.BaseRate-4950.0) > 0.01 {
					t.Errorf("BaseRate = %v, want 4950.0", result.BaseRate)
				}
			},
		},
		{
			name: "other dependents surcharge beyond the second",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeTwoBedroom,
				LivingArrangement: models.LiveOut,
				OtherDependents:   4,
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				// 4500 + 2*200 for the two dependents beyond the included 2.
				if math.Abs(result.BaseRate-4900.0) > 0.01 {
					t.Errorf("BaseRate = %v, want 4900.0", result.BaseRate)
				}
			},
		},
		{
			name: "service add-ons itemized with housekeeping at zero",
			sel: models.ServiceSelection{
				Cooking:           true,
				DrivingSupport:    true,
				LightHousekeeping: true,
			},
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          models.HomeFourBedroom,
				LivingArrangement: models.LiveIn,
			},
			wantValid: true,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				if math.Abs(result.Total-(5000.0+500.0+600.0)) > 0.01 {
					t.Errorf("Total = %v, want 6100.0", result.Total)
				}
				var housekeeping *models.ServiceFee
				for i := range result.ServiceFees {
					if result.ServiceFees[i].Name == "Light Housekeeping" {
						housekeeping = &result.ServiceFees[i]
					}
				}
				if housekeeping == nil {
					t.Fatal("expected an itemized Light Housekeeping line")
				}
				if housekeeping.Amount != 0 {
					t.Errorf("Light Housekeeping amount = %v, want 0 (bundled into base)", housekeeping.Amount)
				}
			},
		},
		{
			name: "missing home size and arrangement reports both problems",
			pc: models.PricingContext{
				DurationType: models.DurationLongTerm,
			},
			wantValid: false,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				if len(result.Errors) != 2 {
					t.Errorf("Errors = %v, want two missing-parameter entries", result.Errors)
				}
			},
		},
		{
			name: "unrecognized home size",
			pc: models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          "mansion",
				LivingArrangement: models.LiveIn,
			},
			wantValid: false,
			validateFunc: func(t *testing.T, result *models.PricingResult) {
				if len(result.Errors) != 1 || result.Errors[0] != "unrecognized homeSize: mansion" {
					t.Errorf("Errors = %v, want a single unrecognized homeSize entry", result.Errors)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := computeLongTerm(tt.sel, tt.pc)
			if result.IsValid != tt.wantValid {
				t.Fatalf("IsValid = %v, want %v (errors: %v)", result.IsValid, tt.wantValid, result.Errors)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, result)
			}
		})
	}
}

func TestPlacementFeeIgnoresAddOns(t *testing.T) {
	loaded := models.ServiceSelection{
		Cooking:      true,
		SpecialNeeds: true,
		PetCare:      true,
		ErrandRuns:   true,
	}

	tests := []struct {
		name     string
		homeSize string
		wantFee  float64
	}{
		{"percent tier", models.HomeFourBedroom, 2500.0}, // round(5000 * 0.5)
		{"flat tier", models.HomeTwoBedroom, 1500.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := models.PricingContext{
				DurationType:      models.DurationLongTerm,
				HomeSize:          tt.homeSize,
				LivingArrangement: models.LiveIn,
			}

			plain := computeLongTerm(models.ServiceSelection{}, pc)
			withAddOns := computeLongTerm(loaded, pc)

			if math.Abs(plain.PlacementFee-tt.wantFee) > 0.01 {
				t.Errorf("PlacementFee without add-ons = %v, want %v", plain.PlacementFee, tt.wantFee)
			}
			if math.Abs(withAddOns.PlacementFee-plain.PlacementFee) > 0.01 {
				t.Errorf("PlacementFee changed with add-ons selected: %v -> %v",
					plain.PlacementFee, withAddOns.PlacementFee)
			}
			if withAddOns.Total <= plain.Total {
				t.Error("add-ons must raise the monthly total while leaving the placement fee alone")
			}
		})
	}
}

func TestMonthlyBaseRateMatrixOrdering(t *testing.T) {
	for _, arrangement := range []string{models.LiveIn, models.LiveOut} {
		prev := 0.0
		for _, size := range models.HomeSizeOrder {
			rate, ok := MonthlyBaseRate(size, arrangement)
			if !ok {
				t.Fatalf("no rate for %s/%s", size, arrangement)
			}
			if rate < prev {
				t.Errorf("%s/%s rate %v decreases from previous %v", size, arrangement, rate, prev)
			}
			prev = rate
		}
	}

	// Live-in never exceeds live-out for the same home size.
	for _, size := range models.HomeSizeOrder {
		liveIn, _ := MonthlyBaseRate(size, models.LiveIn)
		liveOut, _ := MonthlyBaseRate(size, models.LiveOut)
		if liveIn > liveOut {
			t.Errorf("%s: live_in rate %v exceeds live_out rate %v", size, liveIn, liveOut)
		}
	}
}

func TestParseAgeYears(t *testing.T) {
	tests := []struct {
		raw       string
		wantYears float64
		wantOK    bool
	}{
		{"4", 4, true},
		{"4 years", 4, true},
		{"18 months", 1.5, true},
		{"6mo", 0.5, true},
		{"2.5", 2.5, true},
		{"toddler", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			years, ok := parseAgeYears(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("parseAgeYears(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && math.Abs(years-tt.wantYears) > 0.01 {
				t.Errorf("parseAgeYears(%q) = %v, want %v", tt.raw, years, tt.wantYears)
			}
		})
	}
}
