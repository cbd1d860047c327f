package pricing

import "github.com/Tshikamisava/nanny-gold-sub003/models"

// All amounts are ZAR.

// monthlyBaseRates is the home-size by living-arrangement matrix for
// long-term placements. Rates are non-decreasing in home size for both
// arrangements, and live_in never exceeds live_out for a given size.
var monthlyBaseRates = map[string]map[string]float64{
	models.HomeOneBedroom: {
		models.LiveIn:  3500,
		models.LiveOut: 4000,
	},
	models.HomeTwoBedroom: {
		models.LiveIn:  4000,
		models.LiveOut: 4500,
	},
	models.HomeThreeBedroom: {
		models.LiveIn:  4500,
		models.LiveOut: 5000,
	},
	models.HomeFourBedroom: {
		models.LiveIn:  5000,
		models.LiveOut: 5500,
	},
	models.HomeFivePlusBedroom: {
		models.LiveIn:  5500,
		models.LiveOut: 6000,
	},
}

// Placement fee: flat for the two smallest tiers, 50% of the post-surcharge
// base rate (add-ons excluded) for the rest.
const (
	PlacementFeeFlat    = 1500.0
	PlacementFeePercent = 0.5
)

var placementFlatTiers = map[string]bool{
	models.HomeOneBedroom: true,
	models.HomeTwoBedroom: true,
}

// Dependent surcharges on the monthly base rate.
const (
	IncludedChildren   = 3
	ChildSurcharge     = 250.0 // per child beyond the 3rd
	IncludedDependents = 2
	DependentSurcharge = 200.0 // per other dependent beyond the 2nd
	ChildAgeCutoff     = 18.0  // years; older children do not count
)

// longTermServiceFees are flat monthly add-on amounts. Light housekeeping is
// bundled into the base rate and carries a zero amount, but it still appears
// as an itemized line for transparency.
var longTermServiceFees = map[string]float64{
	models.TagCooking:           500,
	models.TagSpecialNeeds:      750,
	models.TagDrivingSupport:    600,
	models.TagPetCare:           300,
	models.TagECDTraining:       450,
	models.TagMontessori:        650,
	models.TagBackupNanny:       400,
	models.TagErrandRuns:        350,
	models.TagLightHousekeeping: 0,
}

// baseHourlyRates by short-term booking subtype.
var baseHourlyRates = map[string]float64{
	models.BookingTypeEmergency:     120,
	models.BookingTypeDateNight:     90,
	models.BookingTypeDateDay:       80,
	models.BookingTypeSchoolHoliday: 85,
}

// hourlyServiceSurcharges are added to the effective hourly rate.
// Cooking is deliberately absent: it bills as a flat daily amount even in
// hourly-billed modes.
var hourlyServiceSurcharges = map[string]float64{
	models.TagSpecialNeeds:   25,
	models.TagDrivingSupport: 20,
}

// CookingDailyFee is the flat per-day cooking charge in every short-term mode.
const CookingDailyFee = 150.0

// lightHousekeepingFlat is the once-per-booking housekeeping charge,
// scaled by home size.
var lightHousekeepingFlat = map[string]float64{
	models.HomeOneBedroom:      80,
	models.HomeTwoBedroom:      100,
	models.HomeThreeBedroom:    120,
	models.HomeFourBedroom:     140,
	models.HomeFivePlusBedroom: 160,
}

// Flat platform service fees, charged once per short-term booking.
// The daily-mode fee is larger, reflecting the longer engagement.
const (
	HourlyModeServiceFee = 50.0
	DailyModeServiceFee  = 250.0
)

// Temporary support (gap coverage) day rates. Friday rates as a weekend day
// in this mode only.
const (
	WeekdayDayRate    = 650.0
	WeekendDayRate    = 800.0
	MinTemporaryDays  = 5
	ProrationDayBasis = 30
)

// Commission tiers. Long-term commission is selected on the post-surcharge
// base rate: the lowest rate tier pays the lowest percentage. Short-term is
// a single flat percentage.
const (
	CommissionLowThreshold  = 4000.0
	CommissionHighThreshold = 5500.0
	CommissionLowPercent    = 0.10
	CommissionMidPercent    = 0.15
	CommissionHighPercent   = 0.20
	ShortTermCommission     = 0.15
)

// serviceDisplayNames maps service tags to itemization labels.
var serviceDisplayNames = map[string]string{
	models.TagCooking:           "Cooking",
	models.TagSpecialNeeds:      "Special Needs Care",
	models.TagDrivingSupport:    "Driving Support",
	models.TagPetCare:           "Pet Care",
	models.TagECDTraining:       "ECD-Trained Nanny",
	models.TagMontessori:        "Montessori-Trained Nanny",
	models.TagBackupNanny:       "Backup Nanny Cover",
	models.TagLightHousekeeping: "Light Housekeeping",
	models.TagErrandRuns:        "Errand Runs",
}

// MonthlyBaseRate returns the matrix rate for a home size and living
// arrangement. ok is false for unrecognized inputs.
func MonthlyBaseRate(homeSize, arrangement string) (float64, bool) {
	byArrangement, ok := monthlyBaseRates[homeSize]
	if !ok {
		return 0, false
	}
	rate, ok := byArrangement[arrangement]
	return rate, ok
}

// ServiceMonthlyRate returns the long-term monthly fee for a service tag.
func ServiceMonthlyRate(tag string) (float64, bool) {
	fee, ok := longTermServiceFees[tag]
	return fee, ok
}

// ServiceDisplayName returns the itemization label for a service tag,
// falling back to the tag itself.
func ServiceDisplayName(tag string) string {
	if name, ok := serviceDisplayNames[tag]; ok {
		return name
	}
	return tag
}
