package handler

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/dealership/internal/api/forms"
	"github.com/cse-motors/dealership/internal/api/middleware"
	"github.com/cse-motors/dealership/internal/api/session"
	"github.com/cse-motors/dealership/internal/api/view"
	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/ports"
)

type InventoryHandler struct {
	inventory ports.InventoryService
	reviews   ports.ReviewService
	sessions  *session.Manager
	validate  *forms.Validator
	pages     *PageBuilder
	log       zerolog.Logger
}

func NewInventoryHandler(inventory ports.InventoryService, reviews ports.ReviewService,
	sessions *session.Manager, validate *forms.Validator, pages *PageBuilder, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		reviews:   reviews,
		sessions:  sessions,
		validate:  validate,
		pages:     pages,
		log:       log,
	}
}

// ByClassification renders the vehicle grid for one classification.
func (h *InventoryHandler) ByClassification(c echo.Context) error {
	classificationID, err := strconv.Atoi(c.Param("classificationId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid classification id")
	}

	vehicles, err := h.inventory.VehiclesByClassification(c.Request().Context(), classificationID)
	if err != nil {
		return err
	}

	className := "Vehicles"
	if len(vehicles) > 0 {
		className = vehicles[0].ClassificationName + " Vehicles"
	}

	return c.Render(http.StatusOK, "inventory-classification", view.ClassificationPage{
		Page: h.pages.Page(c, className),
		Grid: view.ClassificationGrid(vehicles),
	})
}

// Detail renders a single vehicle with its reviews. A missing vehicle is a
// 404 handled by the central error handler.
func (h *InventoryHandler) Detail(c echo.Context) error {
	invID, err := strconv.Atoi(c.Param("invId"))
	if err != nil {
		return domain.ErrVehicleNotFound
	}

	vehicle, err := h.inventory.VehicleByID(c.Request().Context(), invID)
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ForVehicle(c.Request().Context(), invID)
	if err != nil {
		return err
	}

	_, loggedIn := middleware.IdentityFrom(c)
	return c.Render(http.StatusOK, "inventory-detail", view.DetailPage{
		Page:        h.pages.Page(c, vehicle.Make+" "+vehicle.Model),
		Content:     view.VehicleDetail(vehicle),
		Reviews:     reviews,
		InventoryID: invID,
		CanReview:   loggedIn,
	})
}

// Management renders the staff inventory management view.
func (h *InventoryHandler) Management(c echo.Context) error {
	return c.Render(http.StatusOK, "inventory-management", view.InventoryManagementPage{
		Page: h.pages.Page(c, "Inventory Management"),
	})
}

// BuildAddClassification renders the add-classification form.
func (h *InventoryHandler) BuildAddClassification(c echo.Context) error {
	return c.Render(http.StatusOK, "inventory-add-classification", view.AddClassificationPage{
		Page: h.pages.Page(c, "Add New Classification"),
	})
}

// AddClassification processes a new classification. Success renders the
// management view with a 201.
func (h *InventoryHandler) AddClassification(c echo.Context) error {
	var form forms.Classification
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	forms.Trim(&form.Name)

	if fieldErrors := h.validate.Check(form); fieldErrors != nil {
		page := h.pages.Page(c, "Add New Classification")
		page.Errors = fieldErrors
		return c.Render(http.StatusOK, "inventory-add-classification", view.AddClassificationPage{
			Page: page,
			Name: form.Name,
		})
	}

	if _, err := h.inventory.AddClassification(c.Request().Context(), form.Name); err != nil {
		h.log.Error().Err(err).Str("classification", form.Name).Msg("add classification failed")
		h.sessions.Flash(c, "Failed to add classification.")
		return c.Render(http.StatusInternalServerError, "inventory-add-classification", view.AddClassificationPage{
			Page: h.pages.Page(c, "Add New Classification"),
			Name: form.Name,
		})
	}

	h.sessions.Flash(c, "New classification added successfully!")
	return c.Render(http.StatusCreated, "inventory-management", view.InventoryManagementPage{
		Page: h.pages.Page(c, "Inventory Management"),
	})
}

// BuildAddInventory renders the add-vehicle form with the classification
// dropdown.
func (h *InventoryHandler) BuildAddInventory(c echo.Context) error {
	classificationList, err := h.classificationSelect(c, 0)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "inventory-add-inventory", view.AddVehiclePage{
		Page:               h.pages.Page(c, "Add Vehicle"),
		ClassificationList: classificationList,
	})
}

// AddInventory processes a new vehicle listing. Validation failures
// re-render with sticky fields and the submitted classification
// pre-selected.
func (h *InventoryHandler) AddInventory(c echo.Context) error {
	var form forms.Vehicle
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	forms.Trim(&form.Make, &form.Model, &form.Description, &form.Image, &form.Thumbnail, &form.Color)

	if fieldErrors := h.validate.Check(form); fieldErrors != nil {
		return h.renderAddInventory(c, http.StatusOK, form, fieldErrors)
	}

	vehicle := &domain.Vehicle{
		ClassificationID: form.ClassificationID,
		Make:             form.Make,
		Model:            form.Model,
		Year:             form.Year,
		Description:      form.Description,
		Image:            form.Image,
		Thumbnail:        form.Thumbnail,
		Price:            form.Price,
		Miles:            form.Miles,
		Color:            form.Color,
	}
	if _, err := h.inventory.AddVehicle(c.Request().Context(), vehicle); err != nil {
		h.log.Error().Err(err).Str("make", form.Make).Str("model", form.Model).Msg("add vehicle failed")
		h.sessions.Flash(c, "Failed to add vehicle. Please try again.")
		return h.renderAddInventory(c, http.StatusNotImplemented, form, nil)
	}

	h.sessions.Flash(c, "Vehicle successfully added.")
	return c.Redirect(http.StatusFound, "/inv/")
}

func (h *InventoryHandler) renderAddInventory(c echo.Context, status int, form forms.Vehicle, fieldErrors map[string]string) error {
	classificationList, err := h.classificationSelect(c, form.ClassificationID)
	if err != nil {
		return err
	}
	page := h.pages.Page(c, "Add Vehicle")
	page.Errors = fieldErrors
	return c.Render(status, "inventory-add-inventory", view.AddVehiclePage{
		Page:               page,
		ClassificationList: classificationList,
		Make:               form.Make,
		Model:              form.Model,
		Year:               form.Year,
		Description:        form.Description,
		Image:              form.Image,
		Thumbnail:          form.Thumbnail,
		Price:              form.Price,
		Miles:              form.Miles,
		Color:              form.Color,
	})
}

func (h *InventoryHandler) classificationSelect(c echo.Context, selectedID int) (template.HTML, error) {
	classifications, err := h.inventory.Classifications(c.Request().Context())
	if err != nil {
		return "", err
	}
	return view.ClassificationSelect(classifications, selectedID), nil
}
