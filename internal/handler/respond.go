package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "kunstbeheer/internal/errors"
)

// respondError translates a domain error into the standard {"error": ...}
// body. Delete-guard errors additionally carry the blocking artwork count.
// Unexpected errors are logged with detail and answered with a generic body.
func respondError(c echo.Context, err error) error {
	var ref *apperrors.ReferencedError
	if errors.As(err, &ref) {
		return c.JSON(http.StatusBadRequest, apperrors.ReferencedErrorResponse{
			Error:        ref.Error(),
			ArtworkCount: ref.ArtworkCount,
		})
	}

	status := apperrors.StatusFor(err)
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		return c.JSON(status, apperrors.ErrorResponse{Error: "er is een onverwachte fout opgetreden"})
	}
	return c.JSON(status, apperrors.ErrorResponse{Error: err.Error()})
}

// ListResponse is the envelope for paginated list endpoints.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// paging reads page/limit query parameters with defaults and a cap.
func paging(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// pathID reads the numeric :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "ongeldig id")
	}
	return uint(id), nil
}
