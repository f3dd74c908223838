package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kunstbeheer/internal/model"
	"kunstbeheer/internal/service"
)

// LocationHandler handles location endpoints.
type LocationHandler struct {
	locationService service.LocationService
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// List godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match on name"
// @Param city query string false "Filter on city"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	page, limit := paging(c)
	locations, total, err := h.locationService.List(
		c.Request().Context(),
		c.QueryParam("search"),
		c.QueryParam("city"),
		page, limit,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse{Items: locations, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body model.Location true "Location payload"
// @Success 201 {object} model.Location
// @Failure 400 {object} errors.ErrorResponse
// @Router /locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	var location model.Location
	if err := c.Bind(&location); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.locationService.Create(c.Request().Context(), &location)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Get a location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} model.Location
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	location, err := h.locationService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, location)
}

// Update godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param location body model.Location true "Location payload"
// @Success 200 {object} model.Location
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [put]
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in model.Location
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	location, err := h.locationService.Update(c.Request().Context(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, location)
}

// Delete godoc
// @Summary Delete a location without artworks
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 204
// @Failure 400 {object} errors.ReferencedErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /locations/{id} [delete]
func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.locationService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
