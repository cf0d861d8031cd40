package domain

// Classification groups vehicles into browsable categories (SUV, Sedan, ...).
// Names are alphanumeric with no spaces.
type Classification struct {
	ID   int    `json:"classification_id"`
	Name string `json:"classification_name"`
}

// Vehicle is a single inventory listing.
type Vehicle struct {
	ID               int     `json:"inventory_id"`
	ClassificationID int     `json:"classification_id"`
	Make             string  `json:"inv_make"`
	Model            string  `json:"inv_model"`
	Year             int     `json:"inv_year"`
	Description      string  `json:"inv_description"`
	Image            string  `json:"inv_image"`
	Thumbnail        string  `json:"inv_thumbnail"`
	Price            float64 `json:"inv_price"`
	Miles            int     `json:"inv_miles"`
	Color            string  `json:"inv_color"`

	// ClassificationName is populated on joined reads only.
	ClassificationName string `json:"classification_name,omitempty"`
}
