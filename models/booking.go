package models

import "time"

// Booking statuses.
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID                string     `bson:"id" json:"id"`                                   // Unique booking identifier (UUID)
	UserID            string     `bson:"user_id" json:"user_id"`                         // Client who made the booking
	NannyID           string     `bson:"nanny_id,omitempty" json:"nanny_id,omitempty"`   // Assigned caregiver, if matched
	DurationType      string     `bson:"duration_type" json:"duration_type"`             // long_term | short_term
	BookingType       string     `bson:"booking_type" json:"booking_type"`               // booking subtype
	HomeSize          string     `bson:"home_size,omitempty" json:"home_size,omitempty"` // home size tier
	LivingArrangement string     `bson:"living_arrangement,omitempty" json:"living_arrangement,omitempty"`
	ChildrenAges      []string   `bson:"children_ages,omitempty" json:"children_ages,omitempty"`
	OtherDependents   int        `bson:"other_dependents,omitempty" json:"other_dependents,omitempty"`
	SelectedDates     []string   `bson:"selected_dates,omitempty" json:"selected_dates,omitempty"` // "YYYY-MM-DD"
	TimeSlots         []TimeSlot `bson:"time_slots,omitempty" json:"time_slots,omitempty"`

	Services ServiceSelection `bson:"services" json:"services"` // normalized selection as priced

	// Financials as computed by the pricing engine at creation time.
	BaseRate               float64 `bson:"base_rate" json:"base_rate"`
	AdditionalServicesCost float64 `bson:"additional_services_cost" json:"additional_services_cost"`
	TotalCost              float64 `bson:"total_cost" json:"total_cost"` // recurring monthly charge (long-term) or engagement total (short-term)
	PlacementFee           float64 `bson:"placement_fee,omitempty" json:"placement_fee,omitempty"`
	EstimatedPricing       bool    `bson:"estimated_pricing,omitempty" json:"estimated_pricing,omitempty"` // local fallback priced this booking

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
