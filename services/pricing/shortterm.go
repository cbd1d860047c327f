package pricing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

const (
	dateLayout    = "2006-01-02"
	timeLayout    = "15:04"
	quoteCacheTTL = 5 * time.Minute
)

// hourlyBookingTypes are the short-term subtypes billed by the hour.
var hourlyBookingTypes = map[string]bool{
	models.BookingTypeEmergency:     true,
	models.BookingTypeDateNight:     true,
	models.BookingTypeDateDay:       true,
	models.BookingTypeSchoolHoliday: true,
}

// computeShortTerm prices a bounded-duration booking. Hourly subtypes ask
// the remote authoritative function first and fall back to the local
// calculation with an "estimated" warning; the daily subtype is always
// priced locally.
func (e *Engine) computeShortTerm(ctx context.Context, sel models.ServiceSelection, pc models.PricingContext) (*models.PricingResult, error) {
	if pc.BookingType == models.BookingTypeTemporary {
		return e.computeDaily(sel, pc), nil
	}
	if !hourlyBookingTypes[pc.BookingType] {
		msg := fmt.Sprintf("unrecognized bookingType: %s", pc.BookingType)
		if pc.BookingType == "" {
			msg = "missing required parameter: bookingType"
		}
		return &models.PricingResult{IsValid: false, Errors: []string{msg}, Label: "/total"}, nil
	}
	return e.computeHourly(ctx, sel, pc), nil
}

func (e *Engine) computeHourly(ctx context.Context, sel models.ServiceSelection, pc models.PricingContext) *models.PricingResult {
	errs := validateShortTermContext(pc, false)
	if len(errs) > 0 {
		return &models.PricingResult{IsValid: false, Errors: errs, Label: "/total"}
	}

	hoursPerDay, err := totalSlotHours(pc.TimeSlots)
	if err != nil {
		return &models.PricingResult{IsValid: false, Errors: []string{err.Error()}, Label: "/total"}
	}
	totalHours := hoursPerDay * float64(len(pc.SelectedDates))

	req := QuoteRequest{
		BookingType: pc.BookingType,
		TotalHours:  totalHours,
		Services: QuoteServiceFlags{
			Cooking:           sel.Cooking,
			SpecialNeeds:      sel.SpecialNeeds,
			DrivingSupport:    sel.DrivingSupport,
			LightHousekeeping: sel.LightHousekeeping,
		},
		SelectedDates: pc.SelectedDates,
		HomeSize:      pc.HomeSize,
	}

	if quote := e.fetchQuote(ctx, req); quote != nil {
		return quoteToResult(quote)
	}

	// Remote authority unavailable: approximate locally with the same rate
	// constants and say so, so callers can render "estimated".
	result := e.computeHourlyLocal(sel, pc, totalHours)
	result.Estimated = true
	result.Warnings = append(result.Warnings, "estimated pricing: authoritative service unavailable, local rates applied")
	return result
}

// fetchQuote returns the authoritative quote, consulting the Redis cache
// first. A nil return means the caller must fall back locally.
func (e *Engine) fetchQuote(ctx context.Context, req QuoteRequest) *QuoteResponse {
	if e.Quotes == nil {
		return nil
	}

	key := quoteCacheKey(req)
	if e.Cache != nil {
		if raw, err := e.Cache.Get(ctx, key).Result(); err == nil {
			var cached QuoteResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached
			}
		}
	}

	quote, err := e.Quotes.GetQuote(ctx, req)
	if err != nil {
		e.Logger.Warn("authoritative pricing call failed, falling back to local rates",
			zap.String("bookingType", req.BookingType), zap.Error(err))
		return nil
	}

	if e.Cache != nil {
		if raw, err := json.Marshal(quote); err == nil {
			if err := e.Cache.Set(ctx, key, raw, quoteCacheTTL).Err(); err != nil {
				e.Logger.Warn("failed to cache pricing quote", zap.Error(err))
			}
		}
	}
	return quote
}

func quoteCacheKey(req QuoteRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return "pricing:quote:" + hex.EncodeToString(sum[:16])
}

func quoteToResult(quote *QuoteResponse) *models.PricingResult {
	fees := make([]models.ServiceFee, 0, len(quote.Services)+1)
	for _, line := range quote.Services {
		fees = append(fees, models.ServiceFee{Name: line.Name, Amount: line.TotalCost})
	}
	fees = append(fees, models.ServiceFee{Name: "Service Fee", Amount: quote.ServiceFee})
	if quote.EmergencySurcharge > 0 {
		fees = append(fees, models.ServiceFee{Name: "Emergency Surcharge", Amount: quote.EmergencySurcharge})
	}

	return &models.PricingResult{
		BaseRate:    quote.BaseHourlyRate,
		ServiceFees: fees,
		Total:       quote.Total,
		Label:       "/total",
		IsValid:     true,
	}
}

// computeHourlyLocal mirrors the authoritative hourly calculation:
// effective hourly rate times total hours, plus flat-billed services and the
// once-off platform service fee. Cooking bills as a flat daily amount even
// here, and light housekeeping is a flat charge scaled by home size.
func (e *Engine) computeHourlyLocal(sel models.ServiceSelection, pc models.PricingContext, totalHours float64) *models.PricingResult {
	baseRate := baseHourlyRates[pc.BookingType]
	effectiveRate := baseRate

	var fees []models.ServiceFee
	if sel.SpecialNeeds {
		surcharge := hourlyServiceSurcharges[models.TagSpecialNeeds]
		effectiveRate += surcharge
		fees = append(fees, models.ServiceFee{
			Name:   ServiceDisplayName(models.TagSpecialNeeds),
			Amount: surcharge * totalHours,
		})
	}
	if sel.DrivingSupport {
		surcharge := hourlyServiceSurcharges[models.TagDrivingSupport]
		effectiveRate += surcharge
		fees = append(fees, models.ServiceFee{
			Name:   ServiceDisplayName(models.TagDrivingSupport),
			Amount: surcharge * totalHours,
		})
	}

	var flatTotal float64
	if sel.Cooking {
		amount := CookingDailyFee * float64(len(pc.SelectedDates))
		fees = append(fees, models.ServiceFee{Name: ServiceDisplayName(models.TagCooking), Amount: amount})
		flatTotal += amount
	}
	if sel.LightHousekeeping {
		amount := housekeepingFlatFee(pc.HomeSize)
		fees = append(fees, models.ServiceFee{Name: ServiceDisplayName(models.TagLightHousekeeping), Amount: amount})
		flatTotal += amount
	}

	fees = append(fees, models.ServiceFee{Name: "Service Fee", Amount: HourlyModeServiceFee})

	subtotal := effectiveRate*totalHours + flatTotal
	return &models.PricingResult{
		BaseRate:    baseRate,
		ServiceFees: fees,
		Total:       subtotal + HourlyModeServiceFee,
		Label:       "/total",
		IsValid:     true,
	}
}

// computeDaily prices temporary support (gap coverage): each selected date
// individually rated at a weekday or weekend day rate, plus per-day service
// costs and the larger daily-mode service fee. Friday rates as a weekend day
// in this mode; the hourly modes use calendar Saturday/Sunday only.
func (e *Engine) computeDaily(sel models.ServiceSelection, pc models.PricingContext) *models.PricingResult {
	errs := validateShortTermContext(pc, true)
	if len(errs) > 0 {
		return &models.PricingResult{IsValid: false, Errors: errs, Label: "/total"}
	}

	var dayTotal float64
	for _, raw := range pc.SelectedDates {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return &models.PricingResult{
				IsValid: false,
				Errors:  []string{fmt.Sprintf("invalid date: %s", raw)},
				Label:   "/total",
			}
		}
		if isDailyModeWeekend(day.Weekday()) {
			dayTotal += WeekendDayRate
		} else {
			dayTotal += WeekdayDayRate
		}
	}

	var fees []models.ServiceFee
	var feeTotal float64
	if sel.Cooking {
		amount := CookingDailyFee * float64(len(pc.SelectedDates))
		fees = append(fees, models.ServiceFee{Name: ServiceDisplayName(models.TagCooking), Amount: amount})
		feeTotal += amount
	}
	if sel.LightHousekeeping {
		amount := housekeepingFlatFee(pc.HomeSize)
		fees = append(fees, models.ServiceFee{Name: ServiceDisplayName(models.TagLightHousekeeping), Amount: amount})
		feeTotal += amount
	}
	fees = append(fees, models.ServiceFee{Name: "Service Fee", Amount: DailyModeServiceFee})

	return &models.PricingResult{
		BaseRate:    dayTotal,
		ServiceFees: fees,
		Total:       dayTotal + feeTotal + DailyModeServiceFee,
		Label:       "/total",
		IsValid:     true,
	}
}

func isDailyModeWeekend(d time.Weekday) bool {
	return d == time.Friday || d == time.Saturday || d == time.Sunday
}

func validateShortTermContext(pc models.PricingContext, daily bool) []string {
	var errs []string
	if len(pc.SelectedDates) == 0 {
		errs = append(errs, "missing required parameter: selectedDates")
	}
	if daily {
		if len(pc.SelectedDates) > 0 && len(pc.SelectedDates) < MinTemporaryDays {
			errs = append(errs, fmt.Sprintf("temporary_support requires at least %d consecutive days", MinTemporaryDays))
		}
		if len(pc.SelectedDates) >= MinTemporaryDays && !datesConsecutive(pc.SelectedDates) {
			errs = append(errs, "temporary_support dates must be consecutive")
		}
	} else if len(pc.TimeSlots) == 0 {
		errs = append(errs, "missing required parameter: timeSlots")
	}
	return errs
}

func datesConsecutive(dates []string) bool {
	prev, err := time.Parse(dateLayout, dates[0])
	if err != nil {
		return false
	}
	for _, raw := range dates[1:] {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return false
		}
		if !day.Equal(prev.AddDate(0, 0, 1)) {
			return false
		}
		prev = day
	}
	return true
}

// totalSlotHours sums the duration of the same-day wall-clock slots.
func totalSlotHours(slots []models.TimeSlot) (float64, error) {
	var hours float64
	for _, slot := range slots {
		start, err := time.Parse(timeLayout, slot.Start)
		if err != nil {
			return 0, fmt.Errorf("invalid time slot start: %s", slot.Start)
		}
		end, err := time.Parse(timeLayout, slot.End)
		if err != nil {
			return 0, fmt.Errorf("invalid time slot end: %s", slot.End)
		}
		if !end.After(start) {
			return 0, fmt.Errorf("time slot must end after it starts: %s-%s", slot.Start, slot.End)
		}
		hours += end.Sub(start).Hours()
	}
	return hours, nil
}

// housekeepingFlatFee falls back to the smallest-tier amount when home size
// was not provided; it is optional for short-term bookings.
func housekeepingFlatFee(homeSize string) float64 {
	if fee, ok := lightHousekeepingFlat[homeSize]; ok {
		return fee
	}
	return lightHousekeepingFlat[models.HomeOneBedroom]
}
