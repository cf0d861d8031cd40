package domain

import "time"

// Review is a rating and comment an account leaves on a vehicle.
// Text is 10–1000 characters, rating 1–5. Only the owning account may
// edit or delete it.
type Review struct {
	ID          int       `json:"review_id"`
	Text        string    `json:"review_text"`
	Rating      int       `json:"review_rating"`
	InventoryID int       `json:"inventory_id"`
	AccountID   int       `json:"account_id"`
	CreatedAt   time.Time `json:"review_date"`

	// Joined fields, populated by list queries only.
	ReviewerFirstName string `json:"account_firstname,omitempty"`
	ReviewerLastName  string `json:"account_lastname,omitempty"`
	VehicleMake       string `json:"inv_make,omitempty"`
	VehicleModel      string `json:"inv_model,omitempty"`
	VehicleYear       int    `json:"inv_year,omitempty"`
}
