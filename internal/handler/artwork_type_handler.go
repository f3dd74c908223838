package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kunstbeheer/internal/service"
)

// ArtworkTypeHandler handles artwork type endpoints.
type ArtworkTypeHandler struct {
	typeService service.ArtworkTypeService
}

// NewArtworkTypeHandler creates a new artwork type handler.
func NewArtworkTypeHandler(typeService service.ArtworkTypeService) *ArtworkTypeHandler {
	return &ArtworkTypeHandler{typeService: typeService}
}

// CreateTypeRequest represents a new artwork type.
type CreateTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

// List godoc
// @Summary List artwork types
// @Tags artwork-types
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ArtworkType
// @Failure 401 {object} errors.ErrorResponse
// @Router /artwork-types [get]
func (h *ArtworkTypeHandler) List(c echo.Context) error {
	types, err := h.typeService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, types)
}

// Create godoc
// @Summary Create an artwork type
// @Tags artwork-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTypeRequest true "Type name, unique ignoring case"
// @Success 201 {object} model.ArtworkType
// @Failure 400 {object} errors.ErrorResponse
// @Router /artwork-types [post]
func (h *ArtworkTypeHandler) Create(c echo.Context) error {
	var req CreateTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	t, err := h.typeService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}
