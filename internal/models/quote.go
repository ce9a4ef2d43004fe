package models

import "time"

// QuoteEstimate is the derived sizing/cost/savings snapshot. It is a pure
// function of the appliance list and is recomputed in full on every change.
type QuoteEstimate struct {
	TotalDailyKWh           float64 `json:"total_daily_kwh"`
	EstimatedSystemSizeKW   float64 `json:"estimated_system_size_kw"`
	EstimatedSystemCost     float64 `json:"estimated_system_cost"`
	EstimatedMonthlySavings float64 `json:"estimated_monthly_savings"`
}

// QuoteRequest is a persisted detailed-quote submission: contact details
// plus the estimate that was on screen when the user asked for it.
type QuoteRequest struct {
	ID             string        `json:"id"`
	SubmittedAt    time.Time     `json:"submitted_at"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Location       string        `json:"location"`
	Estimate       QuoteEstimate `json:"estimate"`
	ApplianceCount int           `json:"appliance_count"`
}
