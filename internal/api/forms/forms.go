// Package forms declares the per-endpoint request forms and their
// validation rules. Each mutating endpoint binds one form struct; rules are
// declarative validator tags plus two custom checks (classification names,
// password strength). Validation produces per-field messages for sticky
// re-renders and never partially applies a mutation.
package forms

import "strings"

// Registration backs POST /account/register.
type Registration struct {
	FirstName string `form:"account_firstname" validate:"required"`
	LastName  string `form:"account_lastname"  validate:"required"`
	Email     string `form:"account_email"     validate:"required,email"`
	Password  string `form:"account_password"  validate:"required,strongpassword"`
}

// Login backs POST /account/login.
type Login struct {
	Email    string `form:"account_email"    validate:"required,email"`
	Password string `form:"account_password" validate:"required"`
}

// AccountUpdate backs POST /account/update.
type AccountUpdate struct {
	AccountID int    `form:"account_id"        validate:"required,min=1"`
	FirstName string `form:"account_firstname" validate:"required"`
	LastName  string `form:"account_lastname"  validate:"required"`
	Email     string `form:"account_email"     validate:"required,email"`
}

// PasswordUpdate backs POST /account/update-password.
type PasswordUpdate struct {
	AccountID int    `form:"account_id"       validate:"required,min=1"`
	Password  string `form:"account_password" validate:"required,strongpassword"`
}

// Classification backs POST /inv/add-classification.
type Classification struct {
	Name string `form:"classification_name" validate:"required,classname"`
}

// Vehicle backs POST /inv/add-inventory.
type Vehicle struct {
	ClassificationID int     `form:"classification_id" validate:"required,min=1"`
	Make             string  `form:"inv_make"          validate:"required"`
	Model            string  `form:"inv_model"         validate:"required"`
	Year             int     `form:"inv_year"          validate:"required,min=1900,max=2100"`
	Description      string  `form:"inv_description"   validate:"required"`
	Image            string  `form:"inv_image"         validate:"required"`
	Thumbnail        string  `form:"inv_thumbnail"     validate:"required"`
	Price            float64 `form:"inv_price"         validate:"required,gt=0"`
	Miles            int     `form:"inv_miles"         validate:"min=0"`
	Color            string  `form:"inv_color"         validate:"required"`
}

// Review backs POST /review/add.
type Review struct {
	Text        string `form:"review_text"   validate:"required,min=10,max=1000"`
	Rating      int    `form:"review_rating" validate:"required,min=1,max=5"`
	InventoryID int    `form:"inventory_id"  validate:"required,min=1"`
}

// ReviewUpdate backs POST /review/update.
type ReviewUpdate struct {
	ReviewID int    `form:"review_id"     validate:"required,min=1"`
	Text     string `form:"review_text"   validate:"required,min=10,max=1000"`
	Rating   int    `form:"review_rating" validate:"required,min=1,max=5"`
}

// Trim normalizes whitespace on the string fields of a bound form the way
// the validation rules expect.
func Trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
