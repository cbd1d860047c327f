package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// serviceOrder fixes the itemization order of add-on lines.
var serviceOrder = []string{
	models.TagCooking,
	models.TagSpecialNeeds,
	models.TagDrivingSupport,
	models.TagPetCare,
	models.TagECDTraining,
	models.TagMontessori,
	models.TagBackupNanny,
	models.TagLightHousekeeping,
	models.TagErrandRuns,
}

// computeLongTerm prices an indefinite-duration placement: matrix base rate,
// dependent surcharges, flat monthly add-ons and the one-time placement fee.
// The placement fee is computed from the post-surcharge base rate only and
// is reported separately from the recurring monthly total.
func computeLongTerm(sel models.ServiceSelection, pc models.PricingContext) *models.PricingResult {
	// homeSize and livingArrangement are the two fields that never default.
	var errs []string
	if pc.HomeSize == "" {
		errs = append(errs, "missing required parameter: homeSize")
	}
	if pc.LivingArrangement == "" {
		errs = append(errs, "missing required parameter: livingArrangement")
	}
	if len(errs) > 0 {
		return &models.PricingResult{IsValid: false, Errors: errs, Label: "/month"}
	}

	base, ok := MonthlyBaseRate(pc.HomeSize, pc.LivingArrangement)
	if !ok {
		if _, known := monthlyBaseRates[pc.HomeSize]; !known {
			errs = append(errs, fmt.Sprintf("unrecognized homeSize: %s", pc.HomeSize))
		} else {
			errs = append(errs, fmt.Sprintf("unrecognized livingArrangement: %s", pc.LivingArrangement))
		}
		return &models.PricingResult{IsValid: false, Errors: errs, Label: "/month"}
	}

	// Dependent surcharges compound onto the base rate.
	children := countEligibleChildren(pc.ChildrenAges)
	if extra := children - IncludedChildren; extra > 0 {
		base += float64(extra) * ChildSurcharge
	}
	if extra := pc.OtherDependents - IncludedDependents; extra > 0 {
		base += float64(extra) * DependentSurcharge
	}

	var fees []models.ServiceFee
	var feeTotal float64
	for _, tag := range serviceOrder {
		if !serviceSelected(sel, tag) {
			continue
		}
		amount := longTermServiceFees[tag]
		fees = append(fees, models.ServiceFee{Name: ServiceDisplayName(tag), Amount: amount})
		feeTotal += amount
	}

	placement := PlacementFeeFlat
	if !placementFlatTiers[pc.HomeSize] {
		placement = math.Round(base * PlacementFeePercent)
	}

	return &models.PricingResult{
		BaseRate:     base,
		ServiceFees:  fees,
		Total:        base + feeTotal,
		PlacementFee: placement,
		Label:        "/month",
		IsValid:      true,
	}
}

func serviceSelected(sel models.ServiceSelection, tag string) bool {
	switch tag {
	case models.TagCooking:
		return sel.Cooking
	case models.TagSpecialNeeds:
		return sel.SpecialNeeds
	case models.TagDrivingSupport:
		return sel.DrivingSupport
	case models.TagPetCare:
		return sel.PetCare
	case models.TagECDTraining:
		return sel.ECDTraining
	case models.TagMontessori:
		return sel.Montessori
	case models.TagBackupNanny:
		return sel.BackupNanny
	case models.TagLightHousekeeping:
		return sel.LightHousekeeping
	case models.TagErrandRuns:
		return sel.ErrandRuns
	}
	return false
}

// countEligibleChildren counts descriptors parsing to at most ChildAgeCutoff
// years. Descriptors that cannot be parsed still count, so malformed input
// never undercounts a household.
func countEligibleChildren(ages []string) int {
	count := 0
	for _, raw := range ages {
		if years, ok := parseAgeYears(raw); !ok || years <= ChildAgeCutoff {
			count++
		}
	}
	return count
}

// parseAgeYears parses a free-text age descriptor such as "4", "4 years" or
// "18 months" into a year value. Month-denominated ages convert at 12
// months per year.
func parseAgeYears(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}

	unit := strings.TrimSpace(s[end:])
	if strings.HasPrefix(unit, "month") || unit == "mo" || unit == "mos" {
		return value / 12, true
	}
	return value, true
}
