package models

import "time"

// RevenueBreakdown is the authoritative three-way split for one booking.
// Created exactly once per booking id and never mutated in place; booking
// modifications produce adjustment records instead of editing history.
type RevenueBreakdown struct {
	ID                string    `bson:"id" json:"id"`
	BookingID         string    `bson:"booking_id" json:"booking_id"`
	FixedFee          float64   `bson:"fixed_fee" json:"fixed_fee"`                   // placement fee (long-term) or flat service fee (short-term)
	CommissionPercent float64   `bson:"commission_percent" json:"commission_percent"` // e.g. 0.15
	CommissionAmount  float64   `bson:"commission_amount" json:"commission_amount"`
	AdminTotalRevenue float64   `bson:"admin_total_revenue" json:"admin_total_revenue"`
	NannyEarnings     float64   `bson:"nanny_earnings" json:"nanny_earnings"`
	ClientCharge      float64   `bson:"client_charge" json:"client_charge"` // always equals NannyEarnings + AdminTotalRevenue
	Authoritative     bool      `bson:"authoritative" json:"authoritative"` // false when the local allocation substituted for the remote function
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
