package view

import (
	"html/template"

	"github.com/cse-motors/dealership/internal/core/domain"
)

// Page carries the chrome every rendered view needs: title, navigation,
// one-time notices, and the logged-in flag. Errors holds per-field
// validation messages on sticky re-renders.
type Page struct {
	Title    string
	Nav      template.HTML
	Notices  []string
	LoggedIn bool
	Errors   map[string]string
}

type HomePage struct {
	Page
}

type LoginPage struct {
	Page
	Email string
}

type RegisterPage struct {
	Page
	FirstName string
	LastName  string
	Email     string
}

type ManagementPage struct {
	Page
	Account *domain.Account
}

type AccountUpdatePage struct {
	Page
	AccountID int
	FirstName string
	LastName  string
	Email     string
}

type ClassificationPage struct {
	Page
	Grid template.HTML
}

type DetailPage struct {
	Page
	Content     template.HTML
	Reviews     []domain.Review
	InventoryID int
	CanReview   bool
}

type InventoryManagementPage struct {
	Page
}

type AddClassificationPage struct {
	Page
	Name string
}

type AddVehiclePage struct {
	Page
	ClassificationList template.HTML
	Make               string
	Model              string
	Year               int
	Description        string
	Image              string
	Thumbnail          string
	Price              float64
	Miles              int
	Color              string
}

type MyReviewsPage struct {
	Page
	Reviews []domain.Review
}

type EditReviewPage struct {
	Page
	ReviewID int
	Text     string
	Rating   int
}

type ErrorPage struct {
	Page
	Message string
}
