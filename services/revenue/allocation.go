package revenue

import (
	"fmt"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
)

// CommissionPercent selects the platform commission for a booking mode.
// Long-term commission is tiered on the post-surcharge base rate, with the
// lowest rate bracket paying the lowest percentage; short-term is flat.
func CommissionPercent(mode string, baseRate float64) (float64, error) {
	switch mode {
	case models.DurationShortTerm:
		return pricing.ShortTermCommission, nil
	case models.DurationLongTerm:
		switch {
		case baseRate <= pricing.CommissionLowThreshold:
			return pricing.CommissionLowPercent, nil
		case baseRate >= pricing.CommissionHighThreshold:
			return pricing.CommissionHighPercent, nil
		default:
			return pricing.CommissionMidPercent, nil
		}
	}
	return 0, fmt.Errorf("unknown booking mode: %s", mode)
}

// Allocate derives the three-way split for a priced booking.
//
// total is the engine's charge for the engagement: the recurring monthly
// amount for long-term (the placement fee rides on top as fixedFee), or the
// overall short-term total (which already contains the flat service fee, so
// fixedFee is carved out of it). baseRate is the labor amount commission is
// charged on; add-on revenue is never commissioned and flows entirely to the
// caregiver.
func Allocate(total float64, mode string, baseRate, fixedFee float64) (models.RevenueBreakdown, error) {
	percent, err := CommissionPercent(mode, baseRate)
	if err != nil {
		return models.RevenueBreakdown{}, err
	}

	commission := baseRate * percent

	clientCharge := total
	nanny := total - fixedFee - commission
	if mode == models.DurationLongTerm {
		clientCharge = total + fixedFee
		nanny = total - commission
	}

	return models.RevenueBreakdown{
		FixedFee:          fixedFee,
		CommissionPercent: percent,
		CommissionAmount:  commission,
		AdminTotalRevenue: fixedFee + commission,
		NannyEarnings:     nanny,
		ClientCharge:      clientCharge,
	}, nil
}
