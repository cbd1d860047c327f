package models

// Duration types supported by the pricing engine.
const (
	DurationLongTerm  = "long_term"
	DurationShortTerm = "short_term"
)

// Booking subtypes. The first four are hourly-billed short-term modes,
// temporary_support is the daily-billed short-term mode.
const (
	BookingTypeEmergency     = "emergency"
	BookingTypeDateNight     = "date_night"
	BookingTypeDateDay       = "date_day"
	BookingTypeSchoolHoliday = "school_holiday"
	BookingTypeTemporary     = "temporary_support"
	BookingTypeLongTerm      = "long_term"
)

// Living arrangements for long-term placements.
const (
	LiveIn  = "live_in"
	LiveOut = "live_out"
)

// Home size tiers, ordered smallest to largest.
const (
	HomeOneBedroom      = "one_bedroom"
	HomeTwoBedroom      = "two_bedroom"
	HomeThreeBedroom    = "three_bedroom"
	HomeFourBedroom     = "four_bedroom"
	HomeFivePlusBedroom = "five_plus_bedroom"
)

// HomeSizeOrder lists the tiers smallest first. Rate lookups and the
// monotonicity guarantee both follow this ordering.
var HomeSizeOrder = []string{
	HomeOneBedroom,
	HomeTwoBedroom,
	HomeThreeBedroom,
	HomeFourBedroom,
	HomeFivePlusBedroom,
}

// Free-text tags used in the raw preference arrays.
const (
	TagCooking           = "cooking"
	TagSpecialNeeds      = "special_needs"
	TagDrivingSupport    = "driving_support"
	TagPetCare           = "pet_care"
	TagECDTraining       = "ecd_training"
	TagMontessori        = "montessori"
	TagBackupNanny       = "backup_nanny"
	TagLightHousekeeping = "light_housekeeping"
	TagErrandRuns        = "errand_runs"
)

// ServiceSelection is the normalized, mode-agnostic set of service flags.
// Once constructed by the mapping layer, no downstream code inspects the raw
// preference representation again.
type ServiceSelection struct {
	Cooking           bool `bson:"cooking" json:"cooking"`
	SpecialNeeds      bool `bson:"special_needs" json:"specialNeeds"`
	DrivingSupport    bool `bson:"driving_support" json:"drivingSupport"`
	PetCare           bool `bson:"pet_care" json:"petCare"`
	ECDTraining       bool `bson:"ecd_training" json:"ecdTraining"`
	Montessori        bool `bson:"montessori" json:"montessori"`
	BackupNanny       bool `bson:"backup_nanny" json:"backupNanny"`
	LightHousekeeping bool `bson:"light_housekeeping" json:"lightHousekeeping"`
	ErrandRuns        bool `bson:"errand_runs" json:"errandRuns"`
}

// RawServicePreferences is the loosely-typed preference blob as submitted by
// the two client flows. Long-term requests carry string arrays (Services,
// HouseholdTasks); short-term requests carry booleans plus HouseholdTasks.
// Only the mapping layer reads this type.
type RawServicePreferences struct {
	// Short-term boolean schema.
	Cooking        bool `json:"cooking"`
	SpecialNeeds   bool `json:"specialNeeds"`
	DrivingSupport bool `json:"drivingSupport"`
	PetCare        bool `json:"petCare"`

	// Long-term tag arrays.
	Services       []string `json:"services"`
	HouseholdTasks []string `json:"householdTasks"`
}

// TimeSlot is a same-day wall-clock interval ("15:04" format).
type TimeSlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// PricingContext is the immutable input bundle for a pricing computation.
type PricingContext struct {
	DurationType      string     `json:"durationType"`      // long_term | short_term
	BookingType       string     `json:"bookingType"`       // see BookingType constants
	HomeSize          string     `json:"homeSize"`          // see HomeSizeOrder
	LivingArrangement string     `json:"livingArrangement"` // live_in | live_out
	ChildrenAges      []string   `json:"childrenAges"`      // free-text age descriptors ("4", "18 months")
	OtherDependents   int        `json:"otherDependents"`   // non-negative
	SelectedDates     []string   `json:"selectedDates"`     // "2006-01-02" format
	TimeSlots         []TimeSlot `json:"timeSlots"`
}

// ServiceFee is one itemized line in a pricing result.
type ServiceFee struct {
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
}

// PricingResult is the normalized output of both pricing engines.
type PricingResult struct {
	BaseRate     float64      `json:"baseRate"`
	ServiceFees  []ServiceFee `json:"serviceFees"`
	Total        float64      `json:"total"`
	PlacementFee float64      `json:"placementFee,omitempty"` // long-term only
	Label        string       `json:"label"`                  // "/month" or "/total"; empty when durationType itself is invalid
	IsValid      bool         `json:"isValid"`
	Estimated    bool         `json:"estimated,omitempty"` // true when a local fallback replaced the remote authority
	Errors       []string     `json:"errors,omitempty"`
	Warnings     []string     `json:"warnings,omitempty"`
}

// Service change actions for booking modifications.
const (
	ChangeActionAdd    = "add"
	ChangeActionRemove = "remove"
)

// ServiceChange describes one service being added to or removed from an
// active long-term booking.
type ServiceChange struct {
	Name   string `json:"name"`   // service tag, see Tag constants
	Action string `json:"action"` // add | remove
}

// ProrationResult carries the proposed numbers for a mid-cycle modification.
// The engine only proposes; an admin reviewer applies or rejects.
type ProrationResult struct {
	ProratedAdjustment    float64 `json:"proratedAdjustment"` // partial current-cycle delta (signed)
	FullAdjustment        float64 `json:"fullAdjustment"`     // ongoing monthly delta (signed)
	DaysRemaining         int     `json:"daysRemaining"`      // days left in the calendar month, including today
	NextBillingCycleTotal float64 `json:"nextBillingCycleTotal"`
	OngoingMonthlyTotal   float64 `json:"ongoingMonthlyTotal"`
}
