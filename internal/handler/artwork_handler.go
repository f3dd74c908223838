package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
	"kunstbeheer/internal/service"
)

// ArtworkHandler handles artwork endpoints.
type ArtworkHandler struct {
	artworkService service.ArtworkService
}

// NewArtworkHandler creates a new artwork handler.
func NewArtworkHandler(artworkService service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{artworkService: artworkService}
}

func queryID(c echo.Context, name string) uint {
	id, _ := strconv.Atoi(c.QueryParam(name))
	if id < 0 {
		return 0
	}
	return uint(id)
}

// List godoc
// @Summary List artworks
// @Tags artworks
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match on title"
// @Param artistId query int false "Filter on artist"
// @Param locationId query int false "Filter on location"
// @Param typeId query int false "Filter on type"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /artworks [get]
func (h *ArtworkHandler) List(c echo.Context) error {
	page, limit := paging(c)
	filter := repository.ArtworkFilter{
		Search:     c.QueryParam("search"),
		ArtistID:   queryID(c, "artistId"),
		LocationID: queryID(c, "locationId"),
		TypeID:     queryID(c, "typeId"),
	}

	artworks, total, err := h.artworkService.List(c.Request().Context(), filter, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse{Items: artworks, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Create an artwork
// @Tags artworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artwork body model.Artwork true "Artwork payload"
// @Success 201 {object} model.Artwork
// @Failure 400 {object} errors.ErrorResponse
// @Router /artworks [post]
func (h *ArtworkHandler) Create(c echo.Context) error {
	var artwork model.Artwork
	if err := c.Bind(&artwork); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.artworkService.Create(c.Request().Context(), &artwork)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Get an artwork with relations
// @Tags artworks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artwork ID"
// @Success 200 {object} model.Artwork
// @Failure 404 {object} errors.ErrorResponse
// @Router /artworks/{id} [get]
func (h *ArtworkHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	artwork, err := h.artworkService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, artwork)
}

// Update godoc
// @Summary Update an artwork
// @Tags artworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artwork ID"
// @Param artwork body model.Artwork true "Artwork payload"
// @Success 200 {object} model.Artwork
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /artworks/{id} [put]
func (h *ArtworkHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in model.Artwork
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	artwork, err := h.artworkService.Update(c.Request().Context(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, artwork)
}

// Delete godoc
// @Summary Delete an artwork and its media
// @Tags artworks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artwork ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /artworks/{id} [delete]
func (h *ArtworkHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.artworkService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
