package models

// BillingReminderPayload is the asynq task payload for billing-cycle
// reminders sent ahead of a long-term booking's next monthly charge.
type BillingReminderPayload struct {
	BookingID string  `json:"bookingId"`
	UserID    string  `json:"userId"`
	CycleDate string  `json:"cycleDate"` // "YYYY-MM-DD" of the upcoming charge
	Amount    float64 `json:"amount"`    // current recurring monthly total
}
