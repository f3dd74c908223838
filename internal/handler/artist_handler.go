package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kunstbeheer/internal/model"
	"kunstbeheer/internal/service"
)

// ArtistHandler handles artist endpoints.
type ArtistHandler struct {
	artistService service.ArtistService
}

// NewArtistHandler creates a new artist handler.
func NewArtistHandler(artistService service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// List godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match on name"
// @Param country query string false "Filter on country"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	page, limit := paging(c)
	artists, total, err := h.artistService.List(
		c.Request().Context(),
		c.QueryParam("search"),
		c.QueryParam("country"),
		page, limit,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse{Items: artists, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Create an artist
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artist body model.Artist true "Artist payload"
// @Success 201 {object} model.Artist
// @Failure 400 {object} errors.ErrorResponse
// @Router /artists [post]
func (h *ArtistHandler) Create(c echo.Context) error {
	var artist model.Artist
	if err := c.Bind(&artist); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.artistService.Create(c.Request().Context(), &artist)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Get an artist
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artist ID"
// @Success 200 {object} model.Artist
// @Failure 404 {object} errors.ErrorResponse
// @Router /artists/{id} [get]
func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	artist, err := h.artistService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, artist)
}

// Update godoc
// @Summary Update an artist
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artist ID"
// @Param artist body model.Artist true "Artist payload"
// @Success 200 {object} model.Artist
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /artists/{id} [put]
func (h *ArtistHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in model.Artist
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	artist, err := h.artistService.Update(c.Request().Context(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, artist)
}

// Delete godoc
// @Summary Delete an artist without artworks
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artist ID"
// @Success 204
// @Failure 400 {object} errors.ReferencedErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /artists/{id} [delete]
func (h *ArtistHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.artistService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
