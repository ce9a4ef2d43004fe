package service

import "solarquote/internal/models"

// ApplianceParams are the editable fields of one row. Values are stored as
// submitted; validity is judged by the calculator, not the store, so a row
// can sit in the list in an invalid state while the user edits it.
type ApplianceParams struct {
	Name        string
	Wattage     float64
	HoursPerDay float64
	Quantity    int
}

// Snapshot is what every list operation returns: the current rows, the
// recomputed estimate, and the single validation message when any row is
// invalid (in which case the estimate is all zeros).
type Snapshot struct {
	Appliances      []models.Appliance   `json:"appliances"`
	Estimate        models.QuoteEstimate `json:"estimate"`
	ValidationError string               `json:"validation_error,omitempty"`
}

// ContactForm is a detailed-quote submission.
type ContactForm struct {
	Name     string
	Email    string
	Phone    string
	Location string
}
