package models

import "time"

// Modification request types.
const (
	ModificationServiceAddition = "service_addition"
	ModificationServiceRemoval  = "service_removal"
	ModificationCancellation    = "cancellation"
)

// Modification request states. pending_admin_review is the initial state;
// applied and rejected are terminal.
const (
	ModificationStatusPending  = "pending_admin_review"
	ModificationStatusApplied  = "applied"
	ModificationStatusRejected = "rejected"
)

// ModificationRequest is a durable record of a client's request to change an
// active booking. The proration engine computes the proposed numbers; an
// external reviewer moves the record to a terminal state.
type ModificationRequest struct {
	ID               string         `bson:"id" json:"id"`
	BookingID        string         `bson:"booking_id" json:"booking_id"`
	ModificationType string         `bson:"modification_type" json:"modification_type"`
	Changes          []ServiceChange `bson:"changes,omitempty" json:"changes,omitempty"`
	OldValues        map[string]any `bson:"old_values" json:"old_values"`
	NewValues        map[string]any `bson:"new_values" json:"new_values"`

	// Proposed financials, frozen at request time.
	PriceAdjustment       float64 `bson:"price_adjustment" json:"price_adjustment"` // prorated current-cycle delta (signed)
	FullAdjustment        float64 `bson:"full_adjustment" json:"full_adjustment"`   // ongoing monthly delta (signed)
	NextBillingCycleTotal float64 `bson:"next_billing_cycle_total" json:"next_billing_cycle_total"`
	OngoingMonthlyTotal   float64 `bson:"ongoing_monthly_total" json:"ongoing_monthly_total"`

	Status     string    `bson:"status" json:"status"`
	ReviewedBy string    `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	ReviewedAt time.Time `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
}
