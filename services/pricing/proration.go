package pricing

import (
	"fmt"
	"time"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// Prorate computes the proposed cost deltas for adding or removing services
// on an active long-term booking mid-cycle. The partial current-cycle charge
// uses a 30-day month basis; the full adjustment is the unprorated ongoing
// delta. Removals are negative, additions positive. The caller persists the
// proposal for admin review; nothing is applied here.
func Prorate(changes []models.ServiceChange, today time.Time, currentTotal float64) (models.ProrationResult, error) {
	if len(changes) == 0 {
		return models.ProrationResult{}, NewContractError("no service changes requested")
	}

	var delta float64
	for _, change := range changes {
		rate, ok := ServiceMonthlyRate(change.Name)
		if !ok {
			return models.ProrationResult{}, NewContractError(fmt.Sprintf("unknown service: %s", change.Name))
		}
		switch change.Action {
		case models.ChangeActionAdd:
			delta += rate
		case models.ChangeActionRemove:
			delta -= rate
		default:
			return models.ProrationResult{}, NewContractError(fmt.Sprintf("unknown change action: %s", change.Action))
		}
	}

	daysRemaining := DaysRemainingInMonth(today)
	prorated := delta * float64(daysRemaining) / ProrationDayBasis

	return models.ProrationResult{
		ProratedAdjustment:    prorated,
		FullAdjustment:        delta,
		DaysRemaining:         daysRemaining,
		NextBillingCycleTotal: currentTotal + prorated,
		OngoingMonthlyTotal:   currentTotal + delta,
	}, nil
}

// DaysRemainingInMonth counts the days left in the calendar month, including
// today.
func DaysRemainingInMonth(today time.Time) int {
	firstOfNext := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
	lastDay := firstOfNext.AddDate(0, 0, -1).Day()
	return lastDay - today.Day() + 1
}
